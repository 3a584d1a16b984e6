package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fintrack/internal/services"
)

// ExportHandler handles data export requests
type ExportHandler struct {
	exportService services.ExportServicer
}

// NewExportHandler creates a new ExportHandler
func NewExportHandler(exportService services.ExportServicer) *ExportHandler {
	return &ExportHandler{exportService: exportService}
}

// exportFormat reads the format query parameter, defaulting to JSON.
func exportFormat(c *gin.Context) string {
	return c.DefaultQuery("format", services.ExportFormatJSON)
}

// ExportTransactions handles exporting the user's transactions.
// @Summary     Export transactions
// @Description Export transactions as JSON or CSV, optionally filtered
// @Tags        export
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       format      query string false "Export format: json or csv (default json)"
// @Param       category_id query string false "Filter by category"
// @Param       type        query string false "Filter by type (income/expense)"
// @Param       start_date  query string false "Filter from date (YYYY-MM-DD)"
// @Param       end_date    query string false "Filter to date (YYYY-MM-DD)"
// @Success     200 {object} services.ExportResult "Exported transactions"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /export/transactions [get]
func (h *ExportHandler) ExportTransactions(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	filter, err := parseTransactionFilter(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	result, err := h.exportService.ExportTransactions(userID, exportFormat(c), *filter)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// ExportBudgets handles exporting the user's budgets.
// @Summary     Export budgets
// @Description Export budgets with derived spend fields as JSON or CSV
// @Tags        export
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       format query string false "Export format: json or csv (default json)"
// @Success     200 {object} services.ExportResult "Exported budgets"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /export/budgets [get]
func (h *ExportHandler) ExportBudgets(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	result, err := h.exportService.ExportBudgets(userID, exportFormat(c))
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// ExportCategories handles exporting the user's categories.
// @Summary     Export categories
// @Description Export categories as JSON or CSV
// @Tags        export
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       format query string false "Export format: json or csv (default json)"
// @Success     200 {object} services.ExportResult "Exported categories"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /export/categories [get]
func (h *ExportHandler) ExportCategories(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	result, err := h.exportService.ExportCategories(userID, exportFormat(c))
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// ExportFullData handles exporting all of the user's data as one document.
// @Summary     Export all data
// @Description Export the user's complete data set as a single JSON document
// @Tags        export
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} services.FullExport "Full data export"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /export/all [get]
func (h *ExportHandler) ExportFullData(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	export, err := h.exportService.ExportFullData(userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, export)
}
