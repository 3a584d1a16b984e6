package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	apperrors "fintrack/internal/errors"
	"fintrack/internal/models"
	"fintrack/internal/pagination"
)

// budgetService handles budget-related business logic.
type budgetService struct {
	db *gorm.DB
}

// NewBudgetService creates a new BudgetServicer.
func NewBudgetService(db *gorm.DB) BudgetServicer {
	return &budgetService{db: db}
}

// CreateBudget creates a new budget for a category.
func (s *budgetService) CreateBudget(
	userID, categoryID, name string,
	amount int64,
	period models.BudgetPeriod,
	startDate, endDate time.Time,
	alertThreshold *int,
) (*models.Budget, error) {
	if amount <= 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "amount must be greater than zero")
	}
	if startDate.After(endDate) {
		return nil, apperrors.ErrInvalidDateRange
	}

	// Verify category exists and belongs to user
	var category models.Category
	if err := s.db.Where("id = ? AND user_id = ?", categoryID, userID).First(&category).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCategoryNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	threshold := models.DefaultAlertThreshold
	if alertThreshold != nil {
		if *alertThreshold < 0 {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "alert threshold must not be negative")
		}
		threshold = *alertThreshold
	}

	budget := &models.Budget{
		UserID:         userID,
		CategoryID:     categoryID,
		Name:           name,
		Amount:         amount,
		Period:         period,
		StartDate:      startDate,
		EndDate:        endDate,
		AlertThreshold: threshold,
	}

	if err := s.db.Create(budget).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return budget, nil
}

// GetUserBudgets returns a paginated list of budgets for the user, most
// recently created first, each with derived spend fields attached.
func (s *budgetService) GetUserBudgets(userID string, page pagination.PageRequest) (*pagination.PageResponse[BudgetView], error) {
	page.Defaults()

	base := s.db.Model(&models.Budget{}).Where("user_id = ?", userID)

	var totalItems int64
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var budgets []models.Budget
	if err := base.Preload("Category").
		Scopes(pagination.Paginate(page)).
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

	result := pagination.NewPageResponse(views, page.Page, page.PageSize, totalItems)
	return &result, nil
}

// GetBudgetByID returns a budget by ID with derived spend fields if it
// belongs to the user.
func (s *budgetService) GetBudgetByID(userID, budgetID string) (*BudgetView, error) {
	var budget models.Budget
	if err := s.db.Preload("Category").Where("id = ? AND user_id = ?", budgetID, userID).First(&budget).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrBudgetNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return buildBudgetView(s.db, &budget)
}

// UpdateBudget updates an existing budget's fields.
func (s *budgetService) UpdateBudget(
	userID, budgetID string,
	name string,
	amount *int64,
	period *models.BudgetPeriod,
	startDate, endDate *time.Time,
	alertThreshold *int,
	categoryID *string,
) (*models.Budget, error) {
	var budget models.Budget
	if err := s.db.Where("id = ? AND user_id = ?", budgetID, userID).First(&budget).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrBudgetNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	if amount != nil && *amount <= 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "amount must be greater than zero")
	}

	// Validate the window the budget will have after the update.
	newStart := budget.StartDate
	newEnd := budget.EndDate
	if startDate != nil {
		newStart = *startDate
	}
	if endDate != nil {
		newEnd = *endDate
	}
	if newStart.After(newEnd) {
		return nil, apperrors.ErrInvalidDateRange
	}

	if categoryID != nil {
		var category models.Category
		if err := s.db.Where("id = ? AND user_id = ?", *categoryID, userID).First(&category).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.ErrCategoryNotFound
			}
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
	}

	updates := make(map[string]interface{})
	if name != "" {
		updates["name"] = name
	}
	if amount != nil {
		updates["amount"] = *amount
	}
	if period != nil {
		updates["period"] = *period
	}
	if startDate != nil {
		updates["start_date"] = *startDate
	}
	if endDate != nil {
		updates["end_date"] = *endDate
	}
	if alertThreshold != nil {
		if *alertThreshold < 0 {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "alert threshold must not be negative")
		}
		updates["alert_threshold"] = *alertThreshold
	}
	if categoryID != nil {
		updates["category_id"] = *categoryID
	}

	if len(updates) > 0 {
		if err := s.db.Model(&budget).Updates(updates).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
	}

	return &budget, nil
}

// DeleteBudget soft-deletes a budget.
func (s *budgetService) DeleteBudget(userID, budgetID string) error {
	var budget models.Budget
	if err := s.db.Where("id = ? AND user_id = ?", budgetID, userID).First(&budget).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrBudgetNotFound
		}
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	if err := s.db.Delete(&budget).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

// buildBudgetView attaches derived spend fields to a budget. Spend is
// recomputed from transactions; remaining may go negative when over budget.
func buildBudgetView(db *gorm.DB, budget *models.Budget) (*BudgetView, error) {
	spent, err := sumExpenses(db, budget.UserID, budget.CategoryID, budget.StartDate, budget.EndDate)
	if err != nil {
		return nil, err
	}

	return &BudgetView{
		Budget:     *budget,
		Spent:      spent,
		Remaining:  budget.Amount - spent,
		Percentage: budgetPercentage(budget.Amount, spent),
	}, nil
}
