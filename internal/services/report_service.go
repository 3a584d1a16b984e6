package services

import (
	"errors"
	"time"

	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	apperrors "fintrack/internal/errors"
	"fintrack/internal/models"
)

// defaultTrendMonths is the number of months a trend report covers when the
// caller does not specify one.
const defaultTrendMonths = 6

// reportService builds derived, read-only reporting views. All reports are
// recomputed from source transactions on every call.
type reportService struct {
	db *gorm.DB

	// now is swapped out in tests to pin the current month.
	now func() time.Time
}

// NewReportService creates a new ReportServicer.
func NewReportService(db *gorm.DB) ReportServicer {
	return &reportService{db: db, now: time.Now}
}

// monthWindow returns the inclusive bounds of a calendar month: the first
// instant of its first day through the last instant of its last day.
func monthWindow(year, month int, loc *time.Location) (time.Time, time.Time) {
	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, loc)
	end := start.AddDate(0, 1, 0).Add(-time.Nanosecond)
	return start, end
}

// MonthlyReport produces a full financial summary for one calendar month.
// The independent aggregates run concurrently; if any fails, the whole
// report fails with no partial result.
func (s *reportService) MonthlyReport(userID string, year, month int) (*MonthlyReport, error) {
	if month < 1 || month > 12 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "month must be between 1 and 12")
	}
	if year < 1 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "year must be positive")
	}

	start, end := monthWindow(year, month, time.Local)
	income := models.TransactionTypeIncome
	expense := models.TransactionTypeExpense

	var (
		totalIncome  int64
		totalExpense int64
		count        int64
		transactions []models.Transaction
		breakdown    []CategoryBreakdownEntry
	)

	var g errgroup.Group
	g.Go(func() error {
		var err error
		totalIncome, err = sumTransactions(s.db, userID, TransactionFilter{Type: &income, FromDate: &start, ToDate: &end})
		return err
	})
	g.Go(func() error {
		var err error
		totalExpense, err = sumTransactions(s.db, userID, TransactionFilter{Type: &expense, FromDate: &start, ToDate: &end})
		return err
	})
	g.Go(func() error {
		var err error
		count, err = countTransactions(s.db, userID, TransactionFilter{FromDate: &start, ToDate: &end})
		return err
	})
	g.Go(func() error {
		err := s.db.Preload("Category").
			Where("user_id = ? AND date >= ? AND date <= ?", userID, start, end).
			Order("date DESC").
			Find(&transactions).Error
		if err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		breakdown, err = s.categoryBreakdown(userID, start, end)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &MonthlyReport{
		Period: ReportPeriod{
			Year:      year,
			Month:     month,
			StartDate: start,
			EndDate:   end,
		},
		Summary: ReportSummary{
			TotalIncome:      totalIncome,
			TotalExpense:     totalExpense,
			Balance:          totalIncome - totalExpense,
			TransactionCount: count,
		},
		CategoryBreakdown: breakdown,
		Transactions:      transactions,
	}, nil
}

// breakdownRow is one (category, type) aggregate from the grouped query.
type breakdownRow struct {
	CategoryID string
	Type       models.TransactionType
	Total      int64
	Count      int64
}

// categoryBreakdown computes per-category income/expense totals for a window.
// Categories with no matching transactions are excluded.
func (s *reportService) categoryBreakdown(userID string, start, end time.Time) ([]CategoryBreakdownEntry, error) {
	var rows []breakdownRow
	err := s.db.Model(&models.Transaction{}).
		Select("category_id, type, COALESCE(SUM(amount), 0) AS total, COUNT(*) AS count").
		Where("user_id = ? AND date >= ? AND date <= ?", userID, start, end).
		Group("category_id, type").
		Scan(&rows).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var categories []models.Category
	if err := s.db.Where("user_id = ?", userID).Order("created_at ASC").Find(&categories).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	totals := make(map[string]*CategoryBreakdownEntry, len(categories))
	for _, row := range rows {
		entry, ok := totals[row.CategoryID]
		if !ok {
			entry = &CategoryBreakdownEntry{}
			totals[row.CategoryID] = entry
		}
		switch row.Type {
		case models.TransactionTypeIncome:
			entry.Income += row.Total
		case models.TransactionTypeExpense:
			entry.Expense += row.Total
		}
		entry.TransactionCount += row.Count
	}

	breakdown := make([]CategoryBreakdownEntry, 0, len(totals))
	for _, category := range categories {
		entry, ok := totals[category.ID]
		if !ok || entry.TransactionCount == 0 {
			continue
		}
		entry.Category = category
		breakdown = append(breakdown, *entry)
	}
	return breakdown, nil
}

// CategoryReport returns all transactions for one category over an optional
// date range, plus income/expense totals and the category's own metadata.
// Absence of data yields zero sums and an empty transaction list.
func (s *reportService) CategoryReport(userID, categoryID string, fromDate, toDate *time.Time) (*CategoryReport, error) {
	var category models.Category
	if err := s.db.Preload("Budgets").Where("id = ? AND user_id = ?", categoryID, userID).First(&category).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCategoryNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	income := models.TransactionTypeIncome
	expense := models.TransactionTypeExpense

	var (
		transactions []models.Transaction
		totalIncome  int64
		totalExpense int64
	)

	var g errgroup.Group
	g.Go(func() error {
		q := s.db.Where("user_id = ?", userID)
		q = applyTransactionFilters(q, TransactionFilter{CategoryID: &categoryID, FromDate: fromDate, ToDate: toDate})
		if err := q.Order("date DESC").Find(&transactions).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		totalIncome, err = sumTransactions(s.db, userID, TransactionFilter{CategoryID: &categoryID, Type: &income, FromDate: fromDate, ToDate: toDate})
		return err
	})
	g.Go(func() error {
		var err error
		totalExpense, err = sumTransactions(s.db, userID, TransactionFilter{CategoryID: &categoryID, Type: &expense, FromDate: fromDate, ToDate: toDate})
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if transactions == nil {
		transactions = []models.Transaction{}
	}

	return &CategoryReport{
		Category: category,
		Summary: ReportSummary{
			TotalIncome:      totalIncome,
			TotalExpense:     totalExpense,
			Balance:          totalIncome - totalExpense,
			TransactionCount: int64(len(transactions)),
		},
		Transactions: transactions,
	}, nil
}

// TrendReport produces income/expense/balance for each of the last N calendar
// months, oldest first. Month arithmetic borrows across year boundaries.
func (s *reportService) TrendReport(userID string, months int) ([]TrendPoint, error) {
	if months <= 0 {
		months = defaultTrendMonths
	}

	now := s.now()
	income := models.TransactionTypeIncome
	expense := models.TransactionTypeExpense

	trends := make([]TrendPoint, 0, months)
	for i := months - 1; i >= 0; i-- {
		// time.Date normalizes out-of-range months, so going back past
		// January lands in the previous year.
		anchor := time.Date(now.Year(), now.Month()-time.Month(i), 1, 0, 0, 0, 0, now.Location())
		start, end := monthWindow(anchor.Year(), int(anchor.Month()), anchor.Location())

		monthIncome, err := sumTransactions(s.db, userID, TransactionFilter{Type: &income, FromDate: &start, ToDate: &end})
		if err != nil {
			return nil, err
		}
		monthExpense, err := sumTransactions(s.db, userID, TransactionFilter{Type: &expense, FromDate: &start, ToDate: &end})
		if err != nil {
			return nil, err
		}

		trends = append(trends, TrendPoint{
			Year:    anchor.Year(),
			Month:   int(anchor.Month()),
			Income:  monthIncome,
			Expense: monthExpense,
			Balance: monthIncome - monthExpense,
		})
	}
	return trends, nil
}

// BudgetReport computes spend and a status classification for every budget
// owned by the user, independently per budget.
func (s *reportService) BudgetReport(userID string) ([]BudgetReportEntry, error) {
	var budgets []models.Budget
	if err := s.db.Preload("Category").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&budgets).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	entries := make([]BudgetReportEntry, 0, len(budgets))
	for i := range budgets {
		view, err := buildBudgetView(s.db, &budgets[i])
		if err != nil {
			return nil, err
		}
		entries = append(entries, BudgetReportEntry{
			BudgetView: *view,
			Status:     classifyBudget(view.Percentage, budgets[i].AlertThreshold),
		})
	}
	return entries, nil
}

// classifyBudget maps a consumption percentage to a status tier. A threshold
// of zero or below falls back to the default of 80.
func classifyBudget(percentage float64, alertThreshold int) BudgetStatus {
	if alertThreshold <= 0 {
		alertThreshold = models.DefaultAlertThreshold
	}
	switch {
	case percentage >= 100:
		return BudgetStatusExceeded
	case percentage >= float64(alertThreshold):
		return BudgetStatusWarning
	default:
		return BudgetStatusGood
	}
}
