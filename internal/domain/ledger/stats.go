package ledger

// TaxRate is the platform's self-assessed tax rate on income.
const TaxRate = 0.06

type FinanceStats struct {
	TotalIncome  float64 `json:"totalIncome"`
	TotalExpense float64 `json:"totalExpense"`
	TaxRate      float64 `json:"taxRate"`
	TaxAmount    float64 `json:"taxAmount"`
	NetProfit    float64 `json:"netProfit"`

	SubscriptionBreakdown SubscriptionBreakdown       `json:"subscriptionBreakdown"`
	ExpenseBreakdown      map[ExpenseCategory]float64 `json:"expenseBreakdown"`
}

type SubscriptionBucket struct {
	Count int     `json:"count"`
	Total float64 `json:"total"`
}

type SubscriptionBreakdown struct {
	Yearly     SubscriptionBucket `json:"yearly"`
	HalfYearly SubscriptionBucket `json:"halfYearly"`
	Monthly    SubscriptionBucket `json:"monthly"`
	Custom     SubscriptionBucket `json:"custom"`
}

// computeStats derives the statistics for the current transaction list.
// Tax-category expenses are tracked separately: they count into TotalExpense
// and get their own TaxAmount, and the tax bucket of the expense breakdown is
// seeded from them rather than accumulated in the category loop.
func computeStats(transactions []Transaction) FinanceStats {
	var totalIncome, totalExpense, taxAmount float64

	breakdown := SubscriptionBreakdown{}
	expenses := map[ExpenseCategory]float64{
		CategoryServer:      0,
		CategoryAdvertising: 0,
		CategorySalary:      0,
		CategoryOther:       0,
	}

	for _, tx := range transactions {
		switch tx.Type {
		case TypeIncome:
			totalIncome += tx.Amount

			subType := tx.SubscriptionType
			if subType == "" {
				subType = SubscriptionCustom
			}
			switch subType {
			case SubscriptionYearly:
				breakdown.Yearly.Count++
				breakdown.Yearly.Total += tx.Amount
			case SubscriptionHalfYearly:
				breakdown.HalfYearly.Count++
				breakdown.HalfYearly.Total += tx.Amount
			case SubscriptionMonthly:
				breakdown.Monthly.Count++
				breakdown.Monthly.Total += tx.Amount
			default:
				breakdown.Custom.Count++
				breakdown.Custom.Total += tx.Amount
			}

		case TypeExpense:
			if tx.Category == CategoryTax {
				taxAmount += tx.Amount
				continue
			}

			totalExpense += tx.Amount

			cat := tx.Category
			if cat == "" {
				cat = CategoryOther
			}
			expenses[cat] += tx.Amount
		}
	}

	expenses[CategoryTax] = taxAmount

	return FinanceStats{
		TotalIncome:           totalIncome,
		TotalExpense:          totalExpense + taxAmount,
		TaxRate:               TaxRate,
		TaxAmount:             taxAmount,
		NetProfit:             totalIncome - totalExpense - taxAmount,
		SubscriptionBreakdown: breakdown,
		ExpenseBreakdown:      expenses,
	}
}
