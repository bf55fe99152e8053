package domain

import "time"

// The report helpers are pure functions over a transaction slice. They never
// touch a repository, accept empty input and return zero values for it.

// CategoryAmount is one row of an expenses-by-category breakdown.
type CategoryAmount struct {
	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
}

// MonthlySummary is one calendar-month bucket of a monthly trend report.
type MonthlySummary struct {
	Label    string  `json:"label"` // short month name, e.g. "Jan"
	Income   float64 `json:"income"`
	Expenses float64 `json:"expenses"`
}

// TotalIncome sums the amounts of all income transactions.
func TotalIncome(transactions []Transaction) float64 {
	var total float64
	for _, t := range transactions {
		if t.Type == TypeIncome {
			total += t.Amount
		}
	}
	return total
}

// TotalExpenses sums the amounts of all expense transactions.
func TotalExpenses(transactions []Transaction) float64 {
	var total float64
	for _, t := range transactions {
		if t.Type == TypeExpense {
			total += t.Amount
		}
	}
	return total
}

// TotalBalance is income minus expenses in a single pass.
func TotalBalance(transactions []Transaction) float64 {
	var total float64
	for _, t := range transactions {
		if t.Type == TypeIncome {
			total += t.Amount
		} else {
			total -= t.Amount
		}
	}
	return total
}

// Savings equals TotalBalance; it is kept as its own name because reports
// present it as a distinct figure.
func Savings(transactions []Transaction) float64 {
	return TotalIncome(transactions) - TotalExpenses(transactions)
}

// ExpensesByCategory groups expense transactions by category name and sums
// their amounts. Income transactions are excluded. Categories appear in
// first-seen order.
func ExpensesByCategory(transactions []Transaction) []CategoryAmount {
	sums := make(map[string]float64)
	var order []string
	for _, t := range transactions {
		if t.Type != TypeExpense {
			continue
		}
		if _, seen := sums[t.Category]; !seen {
			order = append(order, t.Category)
		}
		sums[t.Category] += t.Amount
	}

	result := make([]CategoryAmount, 0, len(order))
	for _, name := range order {
		result = append(result, CategoryAmount{Name: name, Amount: sums[name]})
	}
	return result
}

// MonthlyData buckets transactions into the last `months` calendar months
// ending at the month of `now`, oldest first. Matching is by calendar
// year+month; transactions outside the window (older or in the future) are
// ignored. The result always has exactly `months` entries.
func MonthlyData(transactions []Transaction, months int, now time.Time) []MonthlySummary {
	if months <= 0 {
		months = 6
	}

	data := make([]MonthlySummary, months)
	for i := 0; i < months; i++ {
		month := time.Date(now.Year(), now.Month()-time.Month(months-1-i), 1, 0, 0, 0, 0, now.Location())
		data[i] = MonthlySummary{Label: month.Format("Jan")}
	}

	for _, t := range transactions {
		monthDiff := (now.Year()-t.Date.Year())*12 + int(now.Month()) - int(t.Date.Month())
		if monthDiff < 0 || monthDiff >= months {
			continue
		}
		index := months - 1 - monthDiff
		if t.Type == TypeIncome {
			data[index].Income += t.Amount
		} else {
			data[index].Expenses += t.Amount
		}
	}

	return data
}

// GoalProgress returns how far savings have come toward target, as a
// percentage clamped to [0, 100]. A non-positive target yields 0.
func GoalProgress(savings, target float64) float64 {
	if target <= 0 {
		return 0
	}
	progress := savings / target * 100
	if progress < 0 {
		return 0
	}
	if progress > 100 {
		return 100
	}
	return progress
}
