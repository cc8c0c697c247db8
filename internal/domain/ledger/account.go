package ledger

// Account is a bank account tracked by the ledger. Balance is maintained
// incrementally by the store as transactions come and go; it is never
// recomputed from the transaction log.
type Account struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Bank     string  `json:"bank"`
	Balance  float64 `json:"balance"`
	Currency string  `json:"currency"`
}

// DefaultAccounts is the account set seeded when no accounts blob exists or
// the stored one cannot be parsed.
func DefaultAccounts() []Account {
	return []Account{
		{ID: "acc-1", Name: "Main account", Bank: "Dushanbe City", Balance: 0, Currency: "TJS"},
		{ID: "acc-2", Name: "Reserve account", Bank: "Alif Bank", Balance: 0, Currency: "TJS"},
	}
}
