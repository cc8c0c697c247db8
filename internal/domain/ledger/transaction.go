package ledger

// Transaction is a single ledger entry. JSON field names match the blobs the
// dashboard has always written, so previously persisted data loads unchanged.
type Transaction struct {
	ID          string          `json:"id"`
	Type        TransactionType `json:"type"`
	Description string          `json:"description"`
	Amount      float64         `json:"amount"`
	// Date is the user-supplied calendar date in YYYY-MM-DD form. It drives
	// filtering and sorting and is independent of CreatedAt.
	Date             string           `json:"date"`
	Status           Status           `json:"status"`
	AccountID        string           `json:"accountId"`
	SubscriptionType SubscriptionType `json:"subscriptionType,omitempty"`
	Category         ExpenseCategory  `json:"category,omitempty"`
	CreatedAt        string           `json:"createdAt"`
}

type TransactionType string

const (
	TypeIncome  TransactionType = "income"
	TypeExpense TransactionType = "expense"
)

func (t TransactionType) IsValid() bool {
	switch t {
	case TypeIncome, TypeExpense:
		return true
	}
	return false
}

type Status string

const (
	StatusCompleted Status = "completed"
	// Pending and Failed are reserved for externally seeded data; no store
	// operation ever assigns them.
	StatusPending Status = "pending"
	StatusFailed  Status = "failed"
)

type SubscriptionType string

const (
	SubscriptionYearly     SubscriptionType = "yearly"
	SubscriptionHalfYearly SubscriptionType = "halfYearly"
	SubscriptionMonthly    SubscriptionType = "monthly"
	SubscriptionCustom     SubscriptionType = "custom"
)

func (t SubscriptionType) IsValid() bool {
	switch t {
	case SubscriptionYearly, SubscriptionHalfYearly, SubscriptionMonthly, SubscriptionCustom:
		return true
	}
	return false
}

type ExpenseCategory string

const (
	CategoryServer      ExpenseCategory = "server"
	CategoryAdvertising ExpenseCategory = "advertising"
	CategorySalary      ExpenseCategory = "salary"
	CategoryTax         ExpenseCategory = "tax"
	CategoryOther       ExpenseCategory = "other"
)

func (c ExpenseCategory) IsValid() bool {
	switch c {
	case CategoryServer, CategoryAdvertising, CategorySalary, CategoryTax, CategoryOther:
		return true
	}
	return false
}

// Filter selects transactions by type in list queries.
type Filter string

const (
	FilterAll     Filter = "all"
	FilterIncome  Filter = "income"
	FilterExpense Filter = "expense"
)

func (f Filter) IsValid() bool {
	switch f {
	case FilterAll, FilterIncome, FilterExpense:
		return true
	}
	return false
}
