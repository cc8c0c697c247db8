package contracts

import "github.com/sabur-pro/rayan-admin/internal/domain/ledger"

type IncomeCreateRequest struct {
	Description      string  `json:"description" binding:"required,max=255"`
	Amount           float64 `json:"amount" binding:"required,gt=0"`
	Date             string  `json:"date" binding:"required,datetime=2006-01-02"`
	AccountID        string  `json:"accountId" binding:"required"`
	SubscriptionType string  `json:"subscriptionType" binding:"omitempty,oneof=yearly halfYearly monthly custom"`
}

type ExpenseCreateRequest struct {
	Description string  `json:"description" binding:"required,max=255"`
	Amount      float64 `json:"amount" binding:"required,gt=0"`
	Date        string  `json:"date" binding:"required,datetime=2006-01-02"`
	AccountID   string  `json:"accountId" binding:"required"`
	Category    string  `json:"category" binding:"omitempty,oneof=server advertising salary tax other"`
}

type TransactionCreateResponse struct {
	Message     string              `json:"message"`
	Transaction *ledger.Transaction `json:"transaction"`
}

type TransactionListResponse struct {
	Transactions []ledger.Transaction `json:"transactions"`
	Total        int                  `json:"total"`
}

type AccountCreateRequest struct {
	Name     string  `json:"name" binding:"required,max=100"`
	Bank     string  `json:"bank" binding:"required,max=100"`
	Balance  float64 `json:"balance" binding:"omitempty"`
	Currency string  `json:"currency" binding:"omitempty,max=10"`
}

type AccountUpdateRequest struct {
	Name     *string  `json:"name" binding:"omitempty,max=100"`
	Bank     *string  `json:"bank" binding:"omitempty,max=100"`
	Balance  *float64 `json:"balance" binding:"omitempty"`
	Currency *string  `json:"currency" binding:"omitempty,max=10"`
}

type AccountCreateResponse struct {
	Message string          `json:"message"`
	Account *ledger.Account `json:"account"`
}

type AccountListResponse struct {
	Accounts []ledger.Account `json:"accounts"`
	Total    int              `json:"total"`
}

type MessageResponse struct {
	Message string `json:"message"`
}
