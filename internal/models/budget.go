package models

import "time"

// BudgetPeriod represents the period type for a budget. The period is
// informational; spend is always computed over [StartDate, EndDate].
type BudgetPeriod string

const (
	BudgetPeriodWeekly  BudgetPeriod = "weekly"
	BudgetPeriodMonthly BudgetPeriod = "monthly"
	BudgetPeriodYearly  BudgetPeriod = "yearly"
)

// DefaultAlertThreshold is the percentage at which a budget starts warning
// when no explicit threshold is set.
const DefaultAlertThreshold = 80

// Budget represents a spending limit for a category over a date window.
//
// Spent is a cached materialized value refreshed after expense transaction
// writes. It can be stale between a transaction write and the subsequent
// recompute; report output always re-derives spend from transactions.
type Budget struct {
	Base
	UserID         string       `gorm:"type:uuid;not null;index" json:"user_id"`
	CategoryID     string       `gorm:"type:uuid;not null;index" json:"category_id"`
	Name           string       `gorm:"not null" json:"name"`
	Amount         int64        `gorm:"type:bigint;not null" json:"amount"`
	Period         BudgetPeriod `gorm:"not null" json:"period"`
	StartDate      time.Time    `gorm:"not null" json:"start_date"`
	EndDate        time.Time    `gorm:"not null" json:"end_date"`
	AlertThreshold int          `gorm:"default:80" json:"alert_threshold"`
	Spent          int64        `gorm:"type:bigint;default:0" json:"spent"`

	// Relationships
	Category Category `gorm:"foreignKey:CategoryID" json:"category"`
}
