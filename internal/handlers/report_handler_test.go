package handlers

import (
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "fintrack/internal/errors"
	"fintrack/internal/services"
)

// --- mock report service ---

type mockReportService struct {
	monthlyReportFn  func(userID string, year, month int) (*services.MonthlyReport, error)
	categoryReportFn func(userID, categoryID string, fromDate, toDate *time.Time) (*services.CategoryReport, error)
	trendReportFn    func(userID string, months int) ([]services.TrendPoint, error)
	budgetReportFn   func(userID string) ([]services.BudgetReportEntry, error)
}

func (m *mockReportService) MonthlyReport(userID string, year, month int) (*services.MonthlyReport, error) {
	if m.monthlyReportFn != nil {
		return m.monthlyReportFn(userID, year, month)
	}
	return &services.MonthlyReport{}, nil
}

func (m *mockReportService) CategoryReport(userID, categoryID string, fromDate, toDate *time.Time) (*services.CategoryReport, error) {
	if m.categoryReportFn != nil {
		return m.categoryReportFn(userID, categoryID, fromDate, toDate)
	}
	return &services.CategoryReport{}, nil
}

func (m *mockReportService) TrendReport(userID string, months int) ([]services.TrendPoint, error) {
	if m.trendReportFn != nil {
		return m.trendReportFn(userID, months)
	}
	return []services.TrendPoint{}, nil
}

func (m *mockReportService) BudgetReport(userID string) ([]services.BudgetReportEntry, error) {
	if m.budgetReportFn != nil {
		return m.budgetReportFn(userID)
	}
	return []services.BudgetReportEntry{}, nil
}

var _ services.ReportServicer = (*mockReportService)(nil)

func setupReportRouter(handler *ReportHandler) *gin.Engine {
	r := gin.New()
	auth := r.Group("", injectUserID(testUserID))
	auth.GET("/reports/monthly", handler.GetMonthlyReport)
	auth.GET("/reports/category/:id", handler.GetCategoryReport)
	auth.GET("/reports/trends", handler.GetTrendReport)
	auth.GET("/reports/budgets", handler.GetBudgetReport)
	return r
}

func TestReportHandler_GetMonthlyReport(t *testing.T) {
	t.Run("passes year and month through", func(t *testing.T) {
		var gotYear, gotMonth int
		reportSvc := &mockReportService{
			monthlyReportFn: func(_ string, year, month int) (*services.MonthlyReport, error) {
				gotYear, gotMonth = year, month
				return &services.MonthlyReport{}, nil
			},
		}
		r := setupReportRouter(NewReportHandler(reportSvc))

		rec := doRequest(r, "GET", "/reports/monthly?year=2025&month=12", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		if gotYear != 2025 || gotMonth != 12 {
			t.Errorf("expected 2025-12, got %d-%d", gotYear, gotMonth)
		}
	})

	t.Run("defaults to current month", func(t *testing.T) {
		now := time.Now()
		var gotYear, gotMonth int
		reportSvc := &mockReportService{
			monthlyReportFn: func(_ string, year, month int) (*services.MonthlyReport, error) {
				gotYear, gotMonth = year, month
				return &services.MonthlyReport{}, nil
			},
		}
		r := setupReportRouter(NewReportHandler(reportSvc))

		rec := doRequest(r, "GET", "/reports/monthly", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		if gotYear != now.Year() || gotMonth != int(now.Month()) {
			t.Errorf("expected current %d-%d, got %d-%d", now.Year(), int(now.Month()), gotYear, gotMonth)
		}
	})

	t.Run("returns 400 on non-numeric month", func(t *testing.T) {
		r := setupReportRouter(NewReportHandler(&mockReportService{}))

		rec := doRequest(r, "GET", "/reports/monthly?month=May", "")

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("returns 400 on out-of-range month", func(t *testing.T) {
		reportSvc := &mockReportService{
			monthlyReportFn: func(_ string, _, _ int) (*services.MonthlyReport, error) {
				return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "month must be between 1 and 12")
			},
		}
		r := setupReportRouter(NewReportHandler(reportSvc))

		rec := doRequest(r, "GET", "/reports/monthly?month=13", "")

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})
}

func TestReportHandler_GetCategoryReport(t *testing.T) {
	t.Run("parses date range", func(t *testing.T) {
		var gotFrom, gotTo *time.Time
		reportSvc := &mockReportService{
			categoryReportFn: func(_, _ string, fromDate, toDate *time.Time) (*services.CategoryReport, error) {
				gotFrom, gotTo = fromDate, toDate
				return &services.CategoryReport{}, nil
			},
		}
		r := setupReportRouter(NewReportHandler(reportSvc))

		rec := doRequest(r, "GET", "/reports/category/"+testCategoryID+"?start_date=2026-01-01&end_date=2026-03-31", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		if gotFrom == nil || gotFrom.Format("2006-01-02") != "2026-01-01" {
			t.Errorf("expected start 2026-01-01, got %v", gotFrom)
		}
		if gotTo == nil || gotTo.Format("2006-01-02") != "2026-03-31" {
			t.Errorf("expected end 2026-03-31, got %v", gotTo)
		}
	})

	t.Run("returns 400 on bad date", func(t *testing.T) {
		r := setupReportRouter(NewReportHandler(&mockReportService{}))

		rec := doRequest(r, "GET", "/reports/category/"+testCategoryID+"?start_date=January", "")

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("returns 404 on unknown category", func(t *testing.T) {
		reportSvc := &mockReportService{
			categoryReportFn: func(_, _ string, _, _ *time.Time) (*services.CategoryReport, error) {
				return nil, apperrors.ErrCategoryNotFound
			},
		}
		r := setupReportRouter(NewReportHandler(reportSvc))

		rec := doRequest(r, "GET", "/reports/category/"+testCategoryID, "")

		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
	})
}

func TestReportHandler_GetTrendReport(t *testing.T) {
	t.Run("passes months through", func(t *testing.T) {
		var gotMonths int
		reportSvc := &mockReportService{
			trendReportFn: func(_ string, months int) ([]services.TrendPoint, error) {
				gotMonths = months
				return []services.TrendPoint{}, nil
			},
		}
		r := setupReportRouter(NewReportHandler(reportSvc))

		rec := doRequest(r, "GET", "/reports/trends?months=12", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		if gotMonths != 12 {
			t.Errorf("expected 12 months, got %d", gotMonths)
		}
	})

	t.Run("missing months defaults downstream", func(t *testing.T) {
		var gotMonths = -1
		reportSvc := &mockReportService{
			trendReportFn: func(_ string, months int) ([]services.TrendPoint, error) {
				gotMonths = months
				return []services.TrendPoint{}, nil
			},
		}
		r := setupReportRouter(NewReportHandler(reportSvc))

		rec := doRequest(r, "GET", "/reports/trends", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		if gotMonths != 0 {
			t.Errorf("expected zero months passed through, got %d", gotMonths)
		}
	})
}

func TestReportHandler_GetBudgetReport(t *testing.T) {
	reportSvc := &mockReportService{
		budgetReportFn: func(_ string) ([]services.BudgetReportEntry, error) {
			return []services.BudgetReportEntry{
				{Status: services.BudgetStatusWarning},
			}, nil
		},
	}
	r := setupReportRouter(NewReportHandler(reportSvc))

	rec := doRequest(r, "GET", "/reports/budgets", "")

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	result := parseJSON(t, rec)
	budgets := result["budgets"].([]interface{})
	if len(budgets) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(budgets))
	}
	entry := budgets[0].(map[string]interface{})
	if entry["status"] != "warning" {
		t.Errorf("expected status warning, got %v", entry["status"])
	}
}
