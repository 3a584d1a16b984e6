package services

import (
	"bytes"
	"encoding/csv"
	"errors"
	"strconv"
	"time"

	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	apperrors "fintrack/internal/errors"
	"fintrack/internal/models"
)

// Export formats.
const (
	ExportFormatJSON = "json"
	ExportFormatCSV  = "csv"
)

const exportDateLayout = "2006-01-02"

// exportService produces JSON and CSV exports of a user's data.
type exportService struct {
	db *gorm.DB
}

// NewExportService creates a new ExportServicer.
func NewExportService(db *gorm.DB) ExportServicer {
	return &exportService{db: db}
}

func validateExportFormat(format string) error {
	if format != ExportFormatJSON && format != ExportFormatCSV {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "format must be 'json' or 'csv'")
	}
	return nil
}

// ExportTransactions exports the user's transactions, optionally filtered,
// most recent first.
func (s *exportService) ExportTransactions(userID, format string, filter TransactionFilter) (*ExportResult, error) {
	if err := validateExportFormat(format); err != nil {
		return nil, err
	}

	q := s.db.Where("user_id = ?", userID)
	q = applyTransactionFilters(q, filter)

	var transactions []models.Transaction
	if err := q.Preload("Category").Order("date DESC").Find(&transactions).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	if format == ExportFormatJSON {
		return &ExportResult{Format: format, Data: transactions, Count: len(transactions)}, nil
	}

	data, err := transactionsToCSV(transactions)
	if err != nil {
		return nil, err
	}
	return &ExportResult{Format: format, Data: data, Count: len(transactions)}, nil
}

// ExportBudgets exports the user's budgets with derived spend fields.
func (s *exportService) ExportBudgets(userID, format string) (*ExportResult, error) {
	if err := validateExportFormat(format); err != nil {
		return nil, err
	}

	views, err := s.budgetViews(userID)
	if err != nil {
		return nil, err
	}

	if format == ExportFormatJSON {
		return &ExportResult{Format: format, Data: views, Count: len(views)}, nil
	}

	data, err := budgetsToCSV(views)
	if err != nil {
		return nil, err
	}
	return &ExportResult{Format: format, Data: data, Count: len(views)}, nil
}

// ExportCategories exports the user's categories.
func (s *exportService) ExportCategories(userID, format string) (*ExportResult, error) {
	if err := validateExportFormat(format); err != nil {
		return nil, err
	}

	categories, err := s.userCategories(userID)
	if err != nil {
		return nil, err
	}

	if format == ExportFormatJSON {
		return &ExportResult{Format: format, Data: categories, Count: len(categories)}, nil
	}

	data, err := categoriesToCSV(categories)
	if err != nil {
		return nil, err
	}
	return &ExportResult{Format: format, Data: data, Count: len(categories)}, nil
}

// ExportFullData exports a complete dump of the user's data as one document.
func (s *exportService) ExportFullData(userID string) (*FullExport, error) {
	var user models.User
	if err := s.db.Where("id = ?", userID).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var (
		transactions []models.Transaction
		views        []BudgetView
		categories   []models.Category
	)

	var g errgroup.Group
	g.Go(func() error {
		err := s.db.Preload("Category").Where("user_id = ?", userID).Order("date DESC").Find(&transactions).Error
		if err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		views, err = s.budgetViews(userID)
		return err
	})
	g.Go(func() error {
		var err error
		categories, err = s.userCategories(userID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &FullExport{
		ExportDate: time.Now(),
		User:       &user,
		Data: FullExportData{
			Transactions: transactions,
			Budgets:      views,
			Categories:   categories,
		},
		Stats: FullExportStats{
			TransactionCount: len(transactions),
			BudgetCount:      len(views),
			CategoryCount:    len(categories),
		},
	}, nil
}

func (s *exportService) budgetViews(userID string) ([]BudgetView, error) {
	var budgets []models.Budget
	if err := s.db.Preload("Category").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&budgets).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	views := make([]BudgetView, 0, len(budgets))
	for i := range budgets {
		view, err := buildBudgetView(s.db, &budgets[i])
		if err != nil {
			return nil, err
		}
		views = append(views, *view)
	}
	return views, nil
}

func (s *exportService) userCategories(userID string) ([]models.Category, error) {
	var categories []models.Category
	if err := s.db.Preload("Parent").
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&categories).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return categories, nil
}

func transactionsToCSV(transactions []models.Transaction) (string, error) {
	records := [][]string{
		{"ID", "Date", "Type", "Category", "Amount", "Description", "Created At"},
	}
	for _, t := range transactions {
		records = append(records, []string{
			t.ID,
			t.Date.Format(exportDateLayout),
			string(t.Type),
			t.Category.Name,
			strconv.FormatInt(t.Amount, 10),
			t.Description,
			t.CreatedAt.Format(exportDateLayout),
		})
	}
	return writeCSV(records)
}

func budgetsToCSV(views []BudgetView) (string, error) {
	records := [][]string{
		{"ID", "Name", "Category", "Amount", "Spent", "Remaining", "Period", "Start Date", "End Date"},
	}
	for _, v := range views {
		records = append(records, []string{
			v.ID,
			v.Name,
			v.Category.Name,
			strconv.FormatInt(v.Amount, 10),
			strconv.FormatInt(v.Spent, 10),
			strconv.FormatInt(v.Remaining, 10),
			string(v.Period),
			v.StartDate.Format(exportDateLayout),
			v.EndDate.Format(exportDateLayout),
		})
	}
	return writeCSV(records)
}

func categoriesToCSV(categories []models.Category) (string, error) {
	records := [][]string{
		{"ID", "Name", "Type", "Icon", "Color", "Parent"},
	}
	for _, c := range categories {
		parentName := ""
		if c.Parent != nil {
			parentName = c.Parent.Name
		}
		records = append(records, []string{
			c.ID,
			c.Name,
			string(c.Type),
			c.Icon,
			c.Color,
			parentName,
		})
	}
	return writeCSV(records)
}

func writeCSV(records [][]string) (string, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.WriteAll(records); err != nil {
		return "", apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return buf.String(), nil
}
