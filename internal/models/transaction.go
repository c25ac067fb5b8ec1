package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
	"gorm.io/gorm"
)

// Kind is the economic effect of a transaction on the account balance.
type Kind string

const (
	KindIncome  Kind = "Income"
	KindExpense Kind = "Expense"
)

const categoryMaxLength = 50

// ParseKind parses a transaction kind. Matching is case insensitive.
func ParseKind(s string) (Kind, error) {
	for _, k := range []Kind{KindIncome, KindExpense} {
		if strings.EqualFold(strings.TrimSpace(s), string(k)) {
			return k, nil
		}
	}

	return "", fmt.Errorf("%w, got '%s'", ErrKindInvalid, s)
}

// Valid reports whether k is a known kind.
func (k Kind) Valid() bool {
	return slices.Contains([]Kind{KindIncome, KindExpense}, k)
}

// Signed returns the amount with the sign of its effect on the balance.
func (k Kind) Signed(amount decimal.Decimal) decimal.Decimal {
	if k == KindExpense {
		return amount.Neg()
	}
	return amount
}

// Transaction is a single ledger entry of an account.
//
// RunningTotal is the cumulative net balance of the account as of this
// transaction, i.e. the sum of the signed amounts of all transactions of
// the account with an ID lower than or equal to this one.
type Transaction struct {
	DefaultModel
	AccountID    uint            `gorm:"index;not null"`
	Date         time.Time       `gorm:"not null"`
	Kind         Kind            `gorm:"type:VARCHAR(10);not null"`
	Category     string          `gorm:"type:VARCHAR(50);not null;index"`
	Amount       decimal.Decimal `gorm:"type:DECIMAL(15,2);not null"`
	RunningTotal decimal.Decimal `gorm:"type:DECIMAL(15,2)"`
}

// Signed returns the signed effect of the transaction on the balance.
func (t Transaction) Signed() decimal.Decimal {
	return t.Kind.Signed(t.Amount)
}

// AfterFind updates the timestamps to use UTC as
// timezone, not +0000. Yes, this is different.
//
// We already store them in UTC, but somehow reading
// them from the database returns them as +0000.
func (t *Transaction) AfterFind(tx *gorm.DB) (err error) {
	err = t.DefaultModel.AfterFind(tx)
	if err != nil {
		return err
	}

	// Enforce dates to be in UTC
	t.Date = t.Date.In(time.UTC)
	return
}

// BeforeSave
//   - sets the timezone for the Date for UTC, defaulting to now
//   - trims whitespace from the category
//   - validates kind, category and amount
func (t *Transaction) BeforeSave(_ *gorm.DB) (err error) {
	if t.Date.IsZero() {
		t.Date = time.Now().In(time.UTC)
	} else {
		t.Date = t.Date.In(time.UTC)
	}

	t.Category = strings.TrimSpace(t.Category)
	return t.Validate()
}

// Validate checks the user supplied fields of the transaction.
func (t Transaction) Validate() error {
	if !t.Kind.Valid() {
		return fmt.Errorf("%w, got '%s'", ErrKindInvalid, t.Kind)
	}

	return ValidateAmount(t.Amount, t.Category)
}

// ValidateAmount checks that the amount is positive with at most
// two decimal places and that the category is usable.
func ValidateAmount(amount decimal.Decimal, category string) error {
	if !amount.IsPositive() {
		return ErrAmountNotPositive
	}

	if !amount.Equal(amount.Round(2)) {
		return ErrAmountPrecision
	}

	return ValidateCategory(category)
}

// ValidateCategory checks that a category label is non-empty and fits the column.
func ValidateCategory(category string) error {
	category = strings.TrimSpace(category)
	if category == "" {
		return ErrCategoryEmpty
	}

	if len([]rune(category)) > categoryMaxLength {
		return ErrCategoryTooLong
	}

	return nil
}
