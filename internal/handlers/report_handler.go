package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "fintrack/internal/errors"
	"fintrack/internal/services"
)

// ReportHandler handles reporting requests
type ReportHandler struct {
	reportService services.ReportServicer
}

// NewReportHandler creates a new ReportHandler
func NewReportHandler(reportService services.ReportServicer) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// GetMonthlyReport handles the monthly financial report.
// Defaults to the current month when year/month are absent.
// @Summary     Get monthly report
// @Description Get a full financial summary for one calendar month with per-category breakdown
// @Tags        reports
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       year  query int false "Report year (default current)"
// @Param       month query int false "Report month 1-12 (default current)"
// @Success     200 {object} services.MonthlyReport "Monthly report"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /reports/monthly [get]
func (h *ReportHandler) GetMonthlyReport(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	now := time.Now()
	year, err := parseQueryInt(c, "year", now.Year())
	if err != nil {
		respondWithError(c, err)
		return
	}
	month, err := parseQueryInt(c, "month", int(now.Month()))
	if err != nil {
		respondWithError(c, err)
		return
	}

	report, err := h.reportService.MonthlyReport(userID, year, month)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"report": report})
}

// GetCategoryReport handles the per-category report.
// @Summary     Get category report
// @Description Get totals and transactions for one category over an optional date range
// @Tags        reports
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id         path  string true  "Category ID"
// @Param       start_date query string false "Range start (YYYY-MM-DD)"
// @Param       end_date   query string false "Range end (YYYY-MM-DD)"
// @Success     200 {object} services.CategoryReport "Category report"
// @Failure     400 {object} ErrorResponse "Invalid input or category ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Category not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /reports/category/{id} [get]
func (h *ReportHandler) GetCategoryReport(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	categoryID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	fromDate, err := parseQueryDate(c, "start_date")
	if err != nil {
		respondWithError(c, err)
		return
	}
	toDate, err := parseQueryDate(c, "end_date")
	if err != nil {
		respondWithError(c, err)
		return
	}

	report, err := h.reportService.CategoryReport(userID, categoryID, fromDate, toDate)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"report": report})
}

// GetTrendReport handles the month-over-month trend report.
// @Summary     Get trend report
// @Description Get income/expense/balance per month for the last N months, oldest first
// @Tags        reports
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       months query int false "Number of months to include (default 6)"
// @Success     200 {object} []services.TrendPoint "Trend points"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /reports/trends [get]
func (h *ReportHandler) GetTrendReport(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	months, err := parseQueryInt(c, "months", 0)
	if err != nil {
		respondWithError(c, err)
		return
	}

	trends, err := h.reportService.TrendReport(userID, months)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"trends": trends})
}

// GetBudgetReport handles the budget status report.
// @Summary     Get budget report
// @Description Get all budgets with derived spend fields and a good/warning/exceeded status
// @Tags        reports
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} []services.BudgetReportEntry "Budget report entries"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /reports/budgets [get]
func (h *ReportHandler) GetBudgetReport(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	entries, err := h.reportService.BudgetReport(userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"budgets": entries})
}

// parseQueryInt parses an optional integer query parameter, falling back to
// def when absent.
func parseQueryInt(c *gin.Context, param string, def int) (int, error) {
	v := c.Query(param)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, apperrors.WithMessage(apperrors.ErrInvalidInput, param+" must be an integer")
	}
	return n, nil
}
