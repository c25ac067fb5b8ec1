package models

import (
	"fmt"
	"strings"

	"golang.org/x/text/currency"
	"gorm.io/gorm"
)

// Account is a user's financial profile. It owns all transactions and
// budgets recorded for it, deleting the account deletes them, too.
type Account struct {
	DefaultModel
	Name         string        `gorm:"uniqueIndex;type:VARCHAR(50);not null"`
	Currency     string        `gorm:"type:VARCHAR(3)"`
	Transactions []Transaction `gorm:"constraint:OnDelete:CASCADE"`
	Budgets      []Budget      `gorm:"constraint:OnDelete:CASCADE"`
}

var (
	ErrAccountNameEmpty     = fmt.Errorf("%w: the account name must not be empty", ErrInvalidInput)
	ErrAccountNameNotUnique = fmt.Errorf("%w: the account name must be unique", ErrConstraintViolation)
	ErrCurrencyInvalid      = fmt.Errorf("%w: the currency must be an ISO 4217 currency code", ErrInvalidInput)
)

// BeforeSave trims the name and normalizes the currency code.
func (a *Account) BeforeSave(_ *gorm.DB) error {
	a.Name = strings.TrimSpace(a.Name)
	if a.Name == "" {
		return ErrAccountNameEmpty
	}

	unit, err := ParseCurrency(a.Currency)
	if err != nil {
		return err
	}
	a.Currency = unit.String()

	return nil
}

// ParseCurrency parses an ISO 4217 currency code.
func ParseCurrency(code string) (currency.Unit, error) {
	unit, err := currency.ParseISO(strings.TrimSpace(code))
	if err != nil {
		return currency.Unit{}, fmt.Errorf("%w, got '%s'", ErrCurrencyInvalid, code)
	}

	return unit, nil
}

// CurrencySymbol returns the symbol for the account currency, e.g. "₹" for INR.
func (a Account) CurrencySymbol() string {
	unit, err := currency.ParseISO(a.Currency)
	if err != nil {
		return a.Currency
	}

	return fmt.Sprintf("%s", currency.Symbol(unit))
}
