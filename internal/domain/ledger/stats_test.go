package ledger_test

import (
	"context"
	"math"
	"testing"

	"github.com/sabur-pro/rayan-admin/internal/domain/ledger"
	"github.com/sabur-pro/rayan-admin/internal/kv"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestStatsEmptyLedger(t *testing.T) {
	t.Parallel()

	svc, _ := newLoadedService(t)

	stats := svc.Stats()
	if stats.TotalIncome != 0 || stats.TotalExpense != 0 || stats.TaxAmount != 0 || stats.NetProfit != 0 {
		t.Fatalf("expected all-zero stats for empty ledger, got %+v", stats)
	}
	if stats.TaxRate != ledger.TaxRate {
		t.Fatalf("expected tax rate %v, got %v", ledger.TaxRate, stats.TaxRate)
	}
	if stats.SubscriptionBreakdown != (ledger.SubscriptionBreakdown{}) {
		t.Fatalf("expected empty subscription breakdown, got %+v", stats.SubscriptionBreakdown)
	}
	if got := stats.ExpenseBreakdown[ledger.CategoryTax]; got != 0 {
		t.Fatalf("expected zero tax bucket, got %v", got)
	}
}

func TestStatsDerivation(t *testing.T) {
	t.Parallel()

	svc, _ := newLoadedService(t)
	ctx := context.Background()

	svc.AddIncome(ctx, &ledger.AddIncomeRequest{
		Description: "sub a", Amount: 1000, Date: "2025-01-05", AccountID: "acc-1",
		SubscriptionType: ledger.SubscriptionYearly,
	})
	svc.AddIncome(ctx, &ledger.AddIncomeRequest{
		Description: "sub b", Amount: 500, Date: "2025-01-06", AccountID: "acc-1",
		SubscriptionType: ledger.SubscriptionYearly,
	})
	svc.AddIncome(ctx, &ledger.AddIncomeRequest{
		Description: "one-off", Amount: 200, Date: "2025-01-07", AccountID: "acc-2",
	})
	svc.AddExpense(ctx, &ledger.AddExpenseRequest{
		Description: "hosting", Amount: 300, Date: "2025-01-08", AccountID: "acc-1",
		Category: ledger.CategoryServer,
	})
	svc.AddExpense(ctx, &ledger.AddExpenseRequest{
		Description: "quarterly tax", Amount: 120, Date: "2025-01-09", AccountID: "acc-1",
		Category: ledger.CategoryTax,
	})

	stats := svc.Stats()

	if !almostEqual(stats.TotalIncome, 1700) {
		t.Fatalf("expected total income 1700, got %v", stats.TotalIncome)
	}
	// tax entries are tracked apart from the other expenses and re-added to
	// the reported total
	if !almostEqual(stats.TaxAmount, 120) {
		t.Fatalf("expected tax amount 120, got %v", stats.TaxAmount)
	}
	if !almostEqual(stats.TotalExpense, 420) {
		t.Fatalf("expected total expense 420, got %v", stats.TotalExpense)
	}
	if !almostEqual(stats.NetProfit, 1700-300-120) {
		t.Fatalf("expected net profit %v, got %v", 1700.0-300-120, stats.NetProfit)
	}

	yearly := stats.SubscriptionBreakdown.Yearly
	if yearly.Count != 2 || !almostEqual(yearly.Total, 1500) {
		t.Fatalf("unexpected yearly bucket: %+v", yearly)
	}
	custom := stats.SubscriptionBreakdown.Custom
	if custom.Count != 1 || !almostEqual(custom.Total, 200) {
		t.Fatalf("expected untyped income folded into custom, got %+v", custom)
	}

	if got := stats.ExpenseBreakdown[ledger.CategoryServer]; !almostEqual(got, 300) {
		t.Fatalf("expected server bucket 300, got %v", got)
	}
	if got := stats.ExpenseBreakdown[ledger.CategoryTax]; !almostEqual(got, 120) {
		t.Fatalf("expected tax bucket 120, got %v", got)
	}
}

func TestStatsUncategorizedExpenseFallsBackToOther(t *testing.T) {
	t.Parallel()

	svc, _ := newLoadedService(t)
	ctx := context.Background()

	svc.AddExpense(ctx, &ledger.AddExpenseRequest{
		Description: "misc", Amount: 42, Date: "2025-02-01", AccountID: "acc-1",
	})

	stats := svc.Stats()
	if got := stats.ExpenseBreakdown[ledger.CategoryOther]; !almostEqual(got, 42) {
		t.Fatalf("expected uncategorized expense in other bucket, got %v", got)
	}
}

// Property: totals are additive over the transaction list; recomputing after
// a deletion matches recomputing over the remaining transactions.
func TestStatsConsistentAfterDeletion(t *testing.T) {
	t.Parallel()

	svc, _ := newLoadedService(t)
	ctx := context.Background()

	svc.AddIncome(ctx, &ledger.AddIncomeRequest{
		Description: "keep", Amount: 100, Date: "2025-03-01", AccountID: "acc-1",
		SubscriptionType: ledger.SubscriptionMonthly,
	})
	tx, _ := svc.AddIncome(ctx, &ledger.AddIncomeRequest{
		Description: "drop", Amount: 900, Date: "2025-03-02", AccountID: "acc-1",
		SubscriptionType: ledger.SubscriptionHalfYearly,
	})

	if err := svc.DeleteTransaction(ctx, tx.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	stats := svc.Stats()
	if !almostEqual(stats.TotalIncome, 100) {
		t.Fatalf("expected total income 100 after deletion, got %v", stats.TotalIncome)
	}
	if stats.SubscriptionBreakdown.HalfYearly.Count != 0 {
		t.Fatalf("deleted subscription type must not appear in breakdown")
	}

	fresh := ledger.NewService(kv.NewMemStore())
	fresh.Load(ctx)
	fresh.AddIncome(ctx, &ledger.AddIncomeRequest{
		Description: "keep", Amount: 100, Date: "2025-03-01", AccountID: "acc-1",
		SubscriptionType: ledger.SubscriptionMonthly,
	})
	if got := fresh.Stats(); !almostEqual(got.TotalIncome, stats.TotalIncome) ||
		!almostEqual(got.NetProfit, stats.NetProfit) {
		t.Fatalf("stats after deletion diverge from fresh recomputation: %+v vs %+v", stats, got)
	}
}
