package application

import (
	"time"

	"github.com/Desai0Aryan/finance-tracker/internal/finance/domain"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var currencyPrinter = message.NewPrinter(language.AmericanEnglish)

// FormatCurrency renders an amount as a US-locale dollar string, e.g.
// "$1,234.56". Display only; the result is not meant to be parsed back.
func FormatCurrency(amount float64) string {
	if amount < 0 {
		return "-" + currencyPrinter.Sprintf("$%.2f", -amount)
	}
	return currencyPrinter.Sprintf("$%.2f", amount)
}

// Summary is the dashboard headline: totals plus their display strings.
type Summary struct {
	Balance           float64 `json:"balance"`
	Income            float64 `json:"income"`
	Expenses          float64 `json:"expenses"`
	Savings           float64 `json:"savings"`
	FormattedBalance  string  `json:"formatted_balance"`
	FormattedIncome   string  `json:"formatted_income"`
	FormattedExpenses string  `json:"formatted_expenses"`
	FormattedSavings  string  `json:"formatted_savings"`
}

// GoalProgressReport pairs a savings goal with the progress derived from the
// user's current savings.
type GoalProgressReport struct {
	Goal            domain.SavingsGoal `json:"goal"`
	CurrentSavings  float64            `json:"current_savings"`
	ProgressPercent float64            `json:"progress_percent"`
}

// ReportService assembles the aggregated views over a user's transactions.
// The reference clock is injected so monthly bucketing is deterministic in
// tests; in production it is time.Now.
type ReportService struct {
	transactions domain.TransactionRepository
	goals        domain.GoalRepository
	now          func() time.Time
}

func NewReportService(transactions domain.TransactionRepository, goals domain.GoalRepository, now func() time.Time) *ReportService {
	if now == nil {
		now = time.Now
	}
	return &ReportService{transactions: transactions, goals: goals, now: now}
}

func (s *ReportService) GetSummary(userID string) (Summary, error) {
	transactions, err := s.transactions.FindTransactionsByUser(userID)
	if err != nil {
		return Summary{}, err
	}

	summary := Summary{
		Balance:  domain.TotalBalance(transactions),
		Income:   domain.TotalIncome(transactions),
		Expenses: domain.TotalExpenses(transactions),
		Savings:  domain.Savings(transactions),
	}
	summary.FormattedBalance = FormatCurrency(summary.Balance)
	summary.FormattedIncome = FormatCurrency(summary.Income)
	summary.FormattedExpenses = FormatCurrency(summary.Expenses)
	summary.FormattedSavings = FormatCurrency(summary.Savings)
	return summary, nil
}

func (s *ReportService) GetExpensesByCategory(userID string) ([]domain.CategoryAmount, error) {
	transactions, err := s.transactions.FindTransactionsByUser(userID)
	if err != nil {
		return nil, err
	}
	return domain.ExpensesByCategory(transactions), nil
}

// GetMonthlyData returns one bucket per calendar month for the last `months`
// months ending now, oldest first.
func (s *ReportService) GetMonthlyData(userID string, months int) ([]domain.MonthlySummary, error) {
	transactions, err := s.transactions.FindTransactionsByUser(userID)
	if err != nil {
		return nil, err
	}
	return domain.MonthlyData(transactions, months, s.now()), nil
}

func (s *ReportService) GetGoalProgress(userID string) ([]GoalProgressReport, error) {
	goals, err := s.goals.FindGoalsByUser(userID)
	if err != nil {
		return nil, err
	}
	transactions, err := s.transactions.FindTransactionsByUser(userID)
	if err != nil {
		return nil, err
	}

	savings := domain.Savings(transactions)
	reports := make([]GoalProgressReport, 0, len(goals))
	for _, goal := range goals {
		reports = append(reports, GoalProgressReport{
			Goal:            goal,
			CurrentSavings:  savings,
			ProgressPercent: domain.GoalProgress(savings, goal.TargetAmount),
		})
	}
	return reports, nil
}
