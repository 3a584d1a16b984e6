package services

import (
	"time"

	"fintrack/internal/models"
	"fintrack/internal/pagination"
)

// UserServicer defines the contract for user-related business logic.
type UserServicer interface {
	CreateUser(email, password, name string) (*models.User, error)
	GetUserByEmail(email string) (*models.User, error)
	GetUserByID(id string) (*models.User, error)
	VerifyPassword(user *models.User, password string) bool
	UpdateProfile(userID, name, email string) (*models.User, error)
	StoreRefreshTokenHash(userID, tokenHash string) error
	GetRefreshTokenHash(userID string) (string, error)
}

// CategoryServicer defines the contract for category-related business logic.
type CategoryServicer interface {
	CreateCategory(userID, name string, categoryType models.CategoryType, icon, color string, parentID *string) (*models.Category, error)
	GetUserCategories(userID string, categoryType *models.CategoryType, page pagination.PageRequest) (*pagination.PageResponse[models.Category], error)
	GetCategoryByID(userID, categoryID string) (*models.Category, error)
	UpdateCategory(userID, categoryID, name string, categoryType *models.CategoryType, icon, color string, parentID *string) (*models.Category, error)
	DeleteCategory(userID, categoryID string) error
}

// TransactionFilter holds optional filter parameters for listing transactions.
type TransactionFilter struct {
	CategoryID *string
	Type       *models.TransactionType
	FromDate   *time.Time
	ToDate     *time.Time
	MinAmount  *int64
	MaxAmount  *int64
}

// TransactionStats summarizes a user's transactions over an optional date range.
type TransactionStats struct {
	TotalIncome        int64                `json:"total_income"`
	TotalExpense       int64                `json:"total_expense"`
	Balance            int64                `json:"balance"`
	RecentTransactions []models.Transaction `json:"recent_transactions"`
}

// TransactionServicer defines the contract for transaction-related business logic.
type TransactionServicer interface {
	CreateTransaction(userID, categoryID string, transactionType models.TransactionType, amount int64, description string, date time.Time) (*models.Transaction, error)
	GetUserTransactions(userID string, page pagination.PageRequest, filter TransactionFilter) (*pagination.PageResponse[models.Transaction], error)
	GetTransactionByID(userID, transactionID string) (*models.Transaction, error)
	UpdateTransaction(userID, transactionID string, categoryID *string, transactionType *models.TransactionType, amount *int64, description *string, date *time.Time) (*models.Transaction, error)
	DeleteTransaction(userID, transactionID string) error
	GetStats(userID string, fromDate, toDate *time.Time) (*TransactionStats, error)
}

// BudgetView is a budget with its derived spend fields attached. Spent is
// always recomputed from transactions, never read from the cached column.
type BudgetView struct {
	models.Budget
	Spent      int64   `json:"spent"`
	Remaining  int64   `json:"remaining"`
	Percentage float64 `json:"percentage"`
}

// BudgetServicer defines the contract for budget-related business logic.
type BudgetServicer interface {
	CreateBudget(userID, categoryID, name string, amount int64, period models.BudgetPeriod, startDate, endDate time.Time, alertThreshold *int) (*models.Budget, error)
	GetUserBudgets(userID string, page pagination.PageRequest) (*pagination.PageResponse[BudgetView], error)
	GetBudgetByID(userID, budgetID string) (*BudgetView, error)
	UpdateBudget(userID, budgetID string, name string, amount *int64, period *models.BudgetPeriod, startDate, endDate *time.Time, alertThreshold *int, categoryID *string) (*models.Budget, error)
	DeleteBudget(userID, budgetID string) error
}

// BudgetStatus classifies a budget's consumption against its alert threshold
// and limit.
type BudgetStatus string

const (
	BudgetStatusGood     BudgetStatus = "good"
	BudgetStatusWarning  BudgetStatus = "warning"
	BudgetStatusExceeded BudgetStatus = "exceeded"
)

// BudgetReportEntry is a budget view with its status classification.
type BudgetReportEntry struct {
	BudgetView
	Status BudgetStatus `json:"status"`
}

// ReportPeriod describes the date window a report covers.
type ReportPeriod struct {
	Year      int       `json:"year"`
	Month     int       `json:"month"`
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
}

// ReportSummary holds aggregate totals for a reporting window.
type ReportSummary struct {
	TotalIncome      int64 `json:"total_income"`
	TotalExpense     int64 `json:"total_expense"`
	Balance          int64 `json:"balance"`
	TransactionCount int64 `json:"transaction_count"`
}

// CategoryBreakdownEntry holds per-category totals for a reporting window.
// Categories without any matching transactions are not included in breakdowns.
type CategoryBreakdownEntry struct {
	Category         models.Category `json:"category"`
	Income           int64           `json:"income"`
	Expense          int64           `json:"expense"`
	TransactionCount int64           `json:"transaction_count"`
}

// MonthlyReport is a full financial summary for one calendar month.
type MonthlyReport struct {
	Period            ReportPeriod             `json:"period"`
	Summary           ReportSummary            `json:"summary"`
	CategoryBreakdown []CategoryBreakdownEntry `json:"category_breakdown"`
	Transactions      []models.Transaction     `json:"transactions"`
}

// CategoryReport holds all transactions and totals for one category over an
// optional date range.
type CategoryReport struct {
	Category     models.Category      `json:"category"`
	Summary      ReportSummary        `json:"summary"`
	Transactions []models.Transaction `json:"transactions"`
}

// TrendPoint is the income/expense/balance summary for one calendar month.
type TrendPoint struct {
	Year    int   `json:"year"`
	Month   int   `json:"month"`
	Income  int64 `json:"income"`
	Expense int64 `json:"expense"`
	Balance int64 `json:"balance"`
}

// ReportServicer defines the contract for derived, read-only reporting views.
type ReportServicer interface {
	MonthlyReport(userID string, year, month int) (*MonthlyReport, error)
	CategoryReport(userID, categoryID string, fromDate, toDate *time.Time) (*CategoryReport, error)
	TrendReport(userID string, months int) ([]TrendPoint, error)
	BudgetReport(userID string) ([]BudgetReportEntry, error)
}

// ExportResult wraps exported data with its format and record count.
type ExportResult struct {
	Format string      `json:"format"`
	Data   interface{} `json:"data"`
	Count  int         `json:"count"`
}

// FullExport is a complete dump of a user's data.
type FullExport struct {
	ExportDate time.Time       `json:"export_date"`
	User       *models.User    `json:"user"`
	Data       FullExportData  `json:"data"`
	Stats      FullExportStats `json:"stats"`
}

// FullExportData groups the exported entity lists.
type FullExportData struct {
	Transactions []models.Transaction `json:"transactions"`
	Budgets      []BudgetView         `json:"budgets"`
	Categories   []models.Category    `json:"categories"`
}

// FullExportStats holds entity counts for a full export.
type FullExportStats struct {
	TransactionCount int `json:"transaction_count"`
	BudgetCount      int `json:"budget_count"`
	CategoryCount    int `json:"category_count"`
}

// ExportServicer defines the contract for exporting user data.
type ExportServicer interface {
	ExportTransactions(userID, format string, filter TransactionFilter) (*ExportResult, error)
	ExportBudgets(userID, format string) (*ExportResult, error)
	ExportCategories(userID, format string) (*ExportResult, error)
	ExportFullData(userID string) (*FullExport, error)
}
