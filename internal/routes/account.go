package routes

import (
	"net/http"

	"github.com/sabur-pro/rayan-admin/internal/contracts"
	"github.com/sabur-pro/rayan-admin/internal/domain/ledger"
	appErrors "github.com/sabur-pro/rayan-admin/internal/errors"

	"github.com/gin-gonic/gin"
)

func (h *Handler) CreateAccount(c *gin.Context) {
	var body contracts.AccountCreateRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		h.respondError(c, appErrors.ParseValidationErrors(err))
		return
	}

	ctx := c.Request.Context()
	account, err := h.LedgerService.AddAccount(ctx, &ledger.AddAccountRequest{
		Name:     body.Name,
		Bank:     body.Bank,
		Balance:  body.Balance,
		Currency: body.Currency,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, contracts.AccountCreateResponse{
		Message: "Account created",
		Account: account,
	})
}

func (h *Handler) ListAccounts(c *gin.Context) {
	accounts := h.LedgerService.Accounts()
	c.JSON(http.StatusOK, contracts.AccountListResponse{
		Accounts: accounts,
		Total:    len(accounts),
	})
}

func (h *Handler) UpdateAccount(c *gin.Context) {
	var body contracts.AccountUpdateRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		h.respondError(c, appErrors.ParseValidationErrors(err))
		return
	}

	ctx := c.Request.Context()
	err := h.LedgerService.UpdateAccount(ctx, c.Param("id"), &ledger.UpdateAccountRequest{
		Name:     body.Name,
		Bank:     body.Bank,
		Balance:  body.Balance,
		Currency: body.Currency,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.MessageResponse{Message: "Account updated"})
}

func (h *Handler) DeleteAccount(c *gin.Context) {
	ctx := c.Request.Context()
	if err := h.LedgerService.DeleteAccount(ctx, c.Param("id")); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.MessageResponse{Message: "Account deleted"})
}
