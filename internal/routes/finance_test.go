package routes_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/sabur-pro/rayan-admin/internal/domain/ledger"
	"github.com/sabur-pro/rayan-admin/internal/kv"
	"github.com/sabur-pro/rayan-admin/internal/routes"
)

func newTestRouter(t *testing.T) (*gin.Engine, *ledger.Service) {
	t.Helper()

	gin.SetMode(gin.TestMode)

	svc := ledger.NewService(kv.NewMemStore())
	svc.Load(context.Background())

	handler := &routes.Handler{LedgerService: svc}

	router := gin.New()
	router.GET("/health", handler.Health)
	api := router.Group("/api/finance")
	{
		api.POST("/income", handler.CreateIncome)
		api.POST("/expense", handler.CreateExpense)
		api.GET("/transactions", handler.GetTransactions)
		api.DELETE("/transactions/:id", handler.DeleteTransaction)
		api.GET("/stats", handler.GetStats)
		api.POST("/accounts", handler.CreateAccount)
		api.GET("/accounts", handler.ListAccounts)
		api.PATCH("/accounts/:id", handler.UpdateAccount)
		api.DELETE("/accounts/:id", handler.DeleteAccount)
	}

	return router, svc
}

func doRequest(router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestCreateIncomeEndpoint(t *testing.T) {
	router, svc := newTestRouter(t)

	rec := doRequest(router, http.MethodPost, "/api/finance/income",
		`{"description":"yearly sub","amount":199.99,"date":"2025-03-10","accountId":"acc-1","subscriptionType":"yearly"}`)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		Message     string             `json:"message"`
		Transaction ledger.Transaction `json:"transaction"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if resp.Transaction.Status != ledger.StatusCompleted {
		t.Fatalf("expected completed status, got %s", resp.Transaction.Status)
	}
	if len(svc.Transactions()) != 1 {
		t.Fatalf("expected transaction stored")
	}
}

func TestCreateIncomeRejectsBadPayload(t *testing.T) {
	router, _ := newTestRouter(t)

	cases := []struct {
		name string
		body string
	}{
		{"missing amount", `{"description":"x","date":"2025-01-01","accountId":"acc-1"}`},
		{"negative amount", `{"description":"x","amount":-5,"date":"2025-01-01","accountId":"acc-1"}`},
		{"bad date", `{"description":"x","amount":5,"date":"01/01/2025","accountId":"acc-1"}`},
		{"bad subscription type", `{"description":"x","amount":5,"date":"2025-01-01","accountId":"acc-1","subscriptionType":"weekly"}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := doRequest(router, http.MethodPost, "/api/finance/income", tc.body)
			if rec.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d: %s", rec.Code, rec.Body.String())
			}
		})
	}
}

func TestGetTransactionsFilterAndPaging(t *testing.T) {
	router, svc := newTestRouter(t)
	ctx := context.Background()

	svc.AddExpense(ctx, &ledger.AddExpenseRequest{
		Description: "in window", Amount: 10, Date: "2025-01-15", AccountID: "acc-1", Category: ledger.CategoryServer,
	})
	svc.AddExpense(ctx, &ledger.AddExpenseRequest{
		Description: "outside", Amount: 10, Date: "2025-02-15", AccountID: "acc-1", Category: ledger.CategoryServer,
	})
	svc.AddIncome(ctx, &ledger.AddIncomeRequest{
		Description: "income", Amount: 10, Date: "2025-01-20", AccountID: "acc-1",
	})

	rec := doRequest(router, http.MethodGet,
		"/api/finance/transactions?filter=expense&date_from=2025-01-01&date_to=2025-01-31", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		Data  []ledger.Transaction `json:"data"`
		Total int64                `json:"total"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if resp.Total != 1 || len(resp.Data) != 1 || resp.Data[0].Description != "in window" {
		t.Fatalf("unexpected result: %+v", resp)
	}

	rec = doRequest(router, http.MethodGet, "/api/finance/transactions?filter=bogus", "")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for invalid filter, got %d", rec.Code)
	}
}

func TestDeleteAccountConflict(t *testing.T) {
	router, svc := newTestRouter(t)

	svc.AddExpense(context.Background(), &ledger.AddExpenseRequest{
		Description: "keeps acc-1 busy", Amount: 1, Date: "2025-01-01", AccountID: "acc-1", Category: ledger.CategoryOther,
	})

	rec := doRequest(router, http.MethodDelete, "/api/finance/accounts/acc-1", "")
	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if resp["error"] != "ACCOUNT_HAS_TRANSACTIONS" {
		t.Fatalf("unexpected error code: %v", resp["error"])
	}
}

func TestStatsEndpoint(t *testing.T) {
	router, svc := newTestRouter(t)

	svc.AddIncome(context.Background(), &ledger.AddIncomeRequest{
		Description: "sub", Amount: 100, Date: "2025-01-01", AccountID: "acc-1",
		SubscriptionType: ledger.SubscriptionMonthly,
	})

	rec := doRequest(router, http.MethodGet, "/api/finance/stats", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var stats ledger.FinanceStats
	if err := json.Unmarshal(rec.Body.Bytes(), &stats); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if stats.TotalIncome != 100 || stats.TaxRate != ledger.TaxRate {
		t.Fatalf("unexpected stats: %+v", stats)
	}
	if stats.SubscriptionBreakdown.Monthly.Count != 1 {
		t.Fatalf("expected monthly bucket populated: %+v", stats.SubscriptionBreakdown)
	}
}

func TestHealthReportsReadiness(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := doRequest(router, http.MethodGet, "/health", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if resp["status"] != "ok" || resp["ready"] != true {
		t.Fatalf("unexpected health payload: %+v", resp)
	}
}

func TestServiceUnavailableBeforeLoad(t *testing.T) {
	gin.SetMode(gin.TestMode)

	svc := ledger.NewService(kv.NewMemStore())
	handler := &routes.Handler{LedgerService: svc}

	router := gin.New()
	router.POST("/api/finance/income", handler.CreateIncome)

	rec := doRequest(router, http.MethodPost, "/api/finance/income",
		`{"description":"x","amount":5,"date":"2025-01-01","accountId":"acc-1"}`)
	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d: %s", rec.Code, rec.Body.String())
	}
}
