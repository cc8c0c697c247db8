package routes

import (
	"net/http"

	"github.com/sabur-pro/rayan-admin/internal/contracts"
	"github.com/sabur-pro/rayan-admin/internal/domain/ledger"
	appErrors "github.com/sabur-pro/rayan-admin/internal/errors"
	"github.com/sabur-pro/rayan-admin/internal/pkg"

	"github.com/gin-gonic/gin"
)

func (h *Handler) CreateIncome(c *gin.Context) {
	var body contracts.IncomeCreateRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		h.respondError(c, appErrors.ParseValidationErrors(err))
		return
	}

	ctx := c.Request.Context()
	tx, err := h.LedgerService.AddIncome(ctx, &ledger.AddIncomeRequest{
		Description:      body.Description,
		Amount:           body.Amount,
		Date:             body.Date,
		AccountID:        body.AccountID,
		SubscriptionType: ledger.SubscriptionType(body.SubscriptionType),
	})
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, contracts.TransactionCreateResponse{
		Message:     "Income recorded",
		Transaction: tx,
	})
}

func (h *Handler) CreateExpense(c *gin.Context) {
	var body contracts.ExpenseCreateRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		h.respondError(c, appErrors.ParseValidationErrors(err))
		return
	}

	ctx := c.Request.Context()
	tx, err := h.LedgerService.AddExpense(ctx, &ledger.AddExpenseRequest{
		Description: body.Description,
		Amount:      body.Amount,
		Date:        body.Date,
		AccountID:   body.AccountID,
		Category:    ledger.ExpenseCategory(body.Category),
	})
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, contracts.TransactionCreateResponse{
		Message:     "Expense recorded",
		Transaction: tx,
	})
}

func (h *Handler) GetTransactions(c *gin.Context) {
	filter := ledger.Filter(c.DefaultQuery("filter", string(ledger.FilterAll)))
	if !filter.IsValid() {
		h.respondError(c, appErrors.NewValidationError("filter", "must be one of all, income, expense"))
		return
	}

	dateFrom := c.Query("date_from")
	dateTo := c.Query("date_to")
	pagination := h.parsePagination(c)

	transactions := h.LedgerService.FilteredTransactions(filter, dateFrom, dateTo)
	page := pkg.PageSlice(transactions, pagination)

	c.JSON(http.StatusOK, pkg.NewPaginatedResponse(page, pagination.Page, pagination.Limit, int64(len(transactions))))
}

func (h *Handler) DeleteTransaction(c *gin.Context) {
	ctx := c.Request.Context()
	if err := h.LedgerService.DeleteTransaction(ctx, c.Param("id")); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.MessageResponse{Message: "Transaction deleted"})
}

func (h *Handler) GetStats(c *gin.Context) {
	c.JSON(http.StatusOK, h.LedgerService.Stats())
}
