package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	apperrors "fintrack/internal/errors"
	"fintrack/internal/models"
	"fintrack/internal/pagination"
)

// transactionService handles transaction-related business logic.
type transactionService struct {
	db              *gorm.DB
	categoryService CategoryServicer
}

// NewTransactionService creates a new TransactionServicer.
func NewTransactionService(db *gorm.DB, categoryService CategoryServicer) TransactionServicer {
	return &transactionService{
		db:              db,
		categoryService: categoryService,
	}
}

// CreateTransaction creates a new transaction for a user. Expense
// transactions refresh the cached spend on any budget of the same category.
func (s *transactionService) CreateTransaction(
	userID, categoryID string,
	transactionType models.TransactionType,
	amount int64,
	description string,
	date time.Time,
) (*models.Transaction, error) {
	if amount <= 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "amount must be greater than zero")
	}

	// Verify the category exists and belongs to the user
	if _, err := s.categoryService.GetCategoryByID(userID, categoryID); err != nil {
		return nil, err
	}

	if date.IsZero() {
		date = time.Now()
	}

	transaction := &models.Transaction{
		UserID:      userID,
		CategoryID:  categoryID,
		Type:        transactionType,
		Amount:      amount,
		Description: description,
		Date:        date,
	}

	if err := s.db.Create(transaction).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	if transactionType == models.TransactionTypeExpense {
		if err := s.refreshBudgetSpent(userID, categoryID); err != nil {
			return nil, err
		}
	}

	if err := s.db.Preload("Category").First(transaction, "id = ?", transaction.ID).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return transaction, nil
}

// GetUserTransactions retrieves a paginated, filtered list of transactions,
// most recent first.
func (s *transactionService) GetUserTransactions(userID string, page pagination.PageRequest, filter TransactionFilter) (*pagination.PageResponse[models.Transaction], error) {
	page.Defaults()

	base := s.db.Model(&models.Transaction{}).Where("user_id = ?", userID)
	base = applyTransactionFilters(base, filter)

	var totalItems int64
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var transactions []models.Transaction
	if err := base.Preload("Category").
		Scopes(pagination.Paginate(page)).
		Order("date DESC").
		Find(&transactions).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(transactions, page.Page, page.PageSize, totalItems)
	return &result, nil
}

// GetTransactionByID retrieves a transaction by ID for a specific user
func (s *transactionService) GetTransactionByID(userID, transactionID string) (*models.Transaction, error) {
	var transaction models.Transaction
	if err := s.db.Preload("Category").Where("id = ? AND user_id = ?", transactionID, userID).First(&transaction).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTransactionNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &transaction, nil
}

// UpdateTransaction updates an existing transaction. Budgets of the old and
// (if re-categorized) new category are refreshed when an expense is involved.
func (s *transactionService) UpdateTransaction(
	userID, transactionID string,
	categoryID *string,
	transactionType *models.TransactionType,
	amount *int64,
	description *string,
	date *time.Time,
) (*models.Transaction, error) {
	transaction, err := s.GetTransactionByID(userID, transactionID)
	if err != nil {
		return nil, err
	}

	if amount != nil && *amount <= 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "amount must be greater than zero")
	}

	if categoryID != nil {
		if _, err := s.categoryService.GetCategoryByID(userID, *categoryID); err != nil {
			return nil, err
		}
	}

	oldCategoryID := transaction.CategoryID
	wasExpense := transaction.Type == models.TransactionTypeExpense

	updates := make(map[string]interface{})
	if categoryID != nil {
		updates["category_id"] = *categoryID
	}
	if transactionType != nil {
		updates["type"] = *transactionType
	}
	if amount != nil {
		updates["amount"] = *amount
	}
	if description != nil {
		updates["description"] = *description
	}
	if date != nil {
		updates["date"] = *date
	}

	if len(updates) > 0 {
		// Update through a bare model: transaction carries the preloaded
		// Category, and saving through it would re-assert the old foreign key,
		// silently undoing a re-categorization.
		if err := s.db.Model(&models.Transaction{Base: models.Base{ID: transaction.ID}}).
			Updates(updates).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
	}

	newType := transaction.Type
	if transactionType != nil {
		newType = *transactionType
	}
	isExpense := newType == models.TransactionTypeExpense
	if wasExpense || isExpense {
		if err := s.refreshBudgetSpent(userID, oldCategoryID); err != nil {
			return nil, err
		}
		if categoryID != nil && *categoryID != oldCategoryID {
			if err := s.refreshBudgetSpent(userID, *categoryID); err != nil {
				return nil, err
			}
		}
	}

	if err := s.db.Preload("Category").First(transaction, "id = ?", transaction.ID).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return transaction, nil
}

// DeleteTransaction deletes a transaction and refreshes affected budgets.
func (s *transactionService) DeleteTransaction(userID, transactionID string) error {
	transaction, err := s.GetTransactionByID(userID, transactionID)
	if err != nil {
		return err
	}

	if err := s.db.Delete(transaction).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	if transaction.Type == models.TransactionTypeExpense {
		if err := s.refreshBudgetSpent(userID, transaction.CategoryID); err != nil {
			return err
		}
	}
	return nil
}

// GetStats summarizes a user's transactions over an optional date range.
func (s *transactionService) GetStats(userID string, fromDate, toDate *time.Time) (*TransactionStats, error) {
	income := models.TransactionTypeIncome
	expense := models.TransactionTypeExpense

	totalIncome, err := sumTransactions(s.db, userID, TransactionFilter{Type: &income, FromDate: fromDate, ToDate: toDate})
	if err != nil {
		return nil, err
	}
	totalExpense, err := sumTransactions(s.db, userID, TransactionFilter{Type: &expense, FromDate: fromDate, ToDate: toDate})
	if err != nil {
		return nil, err
	}

	q := s.db.Model(&models.Transaction{}).Where("user_id = ?", userID)
	q = applyTransactionFilters(q, TransactionFilter{FromDate: fromDate, ToDate: toDate})

	var recent []models.Transaction
	if err := q.Preload("Category").Order("date DESC").Limit(10).Find(&recent).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return &TransactionStats{
		TotalIncome:        totalIncome,
		TotalExpense:       totalExpense,
		Balance:            totalIncome - totalExpense,
		RecentTransactions: recent,
	}, nil
}

// refreshBudgetSpent recomputes and persists the cached spent value for every
// budget of the given category. This is a read-then-write without locking;
// concurrent transaction writes can race on the cached value, which is
// tolerated because reports always re-derive spend from transactions.
func (s *transactionService) refreshBudgetSpent(userID, categoryID string) error {
	var budgets []models.Budget
	if err := s.db.Where("user_id = ? AND category_id = ?", userID, categoryID).Find(&budgets).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	for i := range budgets {
		spent, err := sumExpenses(s.db, userID, categoryID, budgets[i].StartDate, budgets[i].EndDate)
		if err != nil {
			return err
		}
		if err := s.db.Model(&budgets[i]).Update("spent", spent).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
	}
	return nil
}
