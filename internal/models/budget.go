package models

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Budget is the spending cap of an account for a category together with
// the amount already spent in it.
//
// Spent is derived from the expense transactions of the category, Remaining
// is derived from Limit and Spent and never trusted when read from storage.
type Budget struct {
	DefaultModel
	AccountID uint            `gorm:"uniqueIndex:idx_budget_account_category;not null"`
	Category  string          `gorm:"uniqueIndex:idx_budget_account_category;type:VARCHAR(50);not null"`
	Limit     decimal.Decimal `gorm:"column:budget_limit;type:DECIMAL(15,2);not null"`
	Spent     decimal.Decimal `gorm:"type:DECIMAL(15,2);not null;default:0"`
	Remaining decimal.Decimal `gorm:"type:DECIMAL(15,2)"`
}

var ErrBudgetCategoryNotUnique = fmt.Errorf("%w: there already is a budget for this category", ErrConstraintViolation)

// TableName sets the table name for budgets.
func (Budget) TableName() string {
	return "budget_aggregates"
}

// BeforeSave keeps Remaining consistent with Limit and Spent.
func (b *Budget) BeforeSave(_ *gorm.DB) error {
	b.Category = strings.TrimSpace(b.Category)
	if err := ValidateCategory(b.Category); err != nil {
		return err
	}

	if b.Limit.IsNegative() {
		return ErrLimitNegative
	}

	b.Remaining = b.Limit.Sub(b.Spent)
	return nil
}

// AfterFind recomputes Remaining, the stored value may have drifted.
func (b *Budget) AfterFind(tx *gorm.DB) error {
	err := b.DefaultModel.AfterFind(tx)
	if err != nil {
		return err
	}

	b.Remaining = b.Limit.Sub(b.Spent)
	return nil
}
