package models

import "github.com/shopspring/decimal"

// ChartSeriesConfig labels and colours one chart series.
type ChartSeriesConfig struct {
	Label string `json:"label"`
	Color string `json:"color"`
}

// MonthlyChartPoint holds income and expense totals of one calendar month.
type MonthlyChartPoint struct {
	Month    string          `json:"month"`
	Year     int             `json:"year"`
	Expenses decimal.Decimal `json:"expenses"`
	Income   decimal.Decimal `json:"income"`
}

// ChartData is the dashboard income/expense chart.
type ChartData struct {
	ChartData   []MonthlyChartPoint          `json:"chart_data"`
	ChartConfig map[string]ChartSeriesConfig `json:"chart_config"`
}

// DashboardAnalysis holds lifetime totals per transaction type.
type DashboardAnalysis struct {
	TotalIncome         decimal.Decimal `json:"total_income"`
	TotalExpenses       decimal.Decimal `json:"total_expenses"`
	TotalSavings        decimal.Decimal `json:"total_savings"`
	UnreadNotifications int64           `json:"unread_notifications"`
}

// BudgetChartEntry is one slice of the budget breakdown chart.
type BudgetChartEntry struct {
	Label  string          `json:"label"`
	Values decimal.Decimal `json:"values"`
	Fill   string          `json:"fill"`
}

// BudgetChart is the per-category budget breakdown.
type BudgetChart struct {
	ID          string                       `json:"id"`
	ChartData   []BudgetChartEntry           `json:"chartData"`
	ChartConfig map[string]ChartSeriesConfig `json:"chartConfig"`
}
