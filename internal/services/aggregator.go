package services

import (
	"time"

	"gorm.io/gorm"

	apperrors "fintrack/internal/errors"
	"fintrack/internal/models"
)

// applyTransactionFilters narrows a transaction query by the optional fields
// of a TransactionFilter.
func applyTransactionFilters(q *gorm.DB, f TransactionFilter) *gorm.DB {
	if f.CategoryID != nil {
		q = q.Where("category_id = ?", *f.CategoryID)
	}
	if f.Type != nil {
		q = q.Where("type = ?", *f.Type)
	}
	if f.FromDate != nil {
		q = q.Where("date >= ?", *f.FromDate)
	}
	if f.ToDate != nil {
		q = q.Where("date <= ?", *f.ToDate)
	}
	if f.MinAmount != nil {
		q = q.Where("amount >= ?", *f.MinAmount)
	}
	if f.MaxAmount != nil {
		q = q.Where("amount <= ?", *f.MaxAmount)
	}
	return q
}

// sumTransactions sums transaction amounts for a user with the given filter,
// using the store's native aggregation. A successful aggregate over zero rows
// yields 0; store failures propagate unchanged.
func sumTransactions(db *gorm.DB, userID string, f TransactionFilter) (int64, error) {
	var total int64
	q := db.Model(&models.Transaction{}).Where("user_id = ?", userID)
	q = applyTransactionFilters(q, f)
	if err := q.Select("COALESCE(SUM(amount), 0)").Scan(&total).Error; err != nil {
		return 0, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return total, nil
}

// sumExpenses computes the total expense amount for one category within an
// inclusive date window. This is the single source of truth for budget spend.
func sumExpenses(db *gorm.DB, userID, categoryID string, from, to time.Time) (int64, error) {
	expense := models.TransactionTypeExpense
	return sumTransactions(db, userID, TransactionFilter{
		CategoryID: &categoryID,
		Type:       &expense,
		FromDate:   &from,
		ToDate:     &to,
	})
}

// countTransactions counts transactions for a user with the given filter.
func countTransactions(db *gorm.DB, userID string, f TransactionFilter) (int64, error) {
	var count int64
	q := db.Model(&models.Transaction{}).Where("user_id = ?", userID)
	q = applyTransactionFilters(q, f)
	if err := q.Count(&count).Error; err != nil {
		return 0, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return count, nil
}

// budgetPercentage returns spent as a percentage of the budget limit.
// A zero-amount budget reports 0 when nothing is spent and 100 otherwise,
// so any spend against a zero limit classifies as exceeded.
func budgetPercentage(amount, spent int64) float64 {
	if amount > 0 {
		return float64(spent) / float64(amount) * 100
	}
	if spent == 0 {
		return 0
	}
	return 100
}
