package ledger

import (
	"context"
	"strings"

	"github.com/archons/backend/internal/events"
	"github.com/archons/backend/internal/models"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// adjustSpent changes the spent amount of the budget for the category by
// delta. Nothing happens when the account has no budget for the category.
func adjustSpent(tx *gorm.DB, accountID uint, category string, delta decimal.Decimal) error {
	var budgets []models.Budget

	// Find instead of First, a missing budget is not an error
	err := tx.Where(&models.Budget{AccountID: accountID, Category: category}).Limit(1).Find(&budgets).Error
	if err != nil {
		return err
	}

	if len(budgets) == 0 {
		return nil
	}

	budget := budgets[0]
	budget.Spent = budget.Spent.Add(delta)

	if budget.Spent.IsNegative() {
		budgetOverdrawn.Inc()
		log.Warn().
			Uint("account", accountID).
			Str("category", category).
			Str("spent", budget.Spent.StringFixed(2)).
			Msg("budget spent is negative, the budget is out of sync with the ledger. Set the budget again to recompute it")
	}

	return tx.Save(&budget).Error
}

// expenses returns the sum of all expenses of the account in the category.
func expenses(tx *gorm.DB, accountID uint, category string) (decimal.Decimal, error) {
	var transactions []models.Transaction

	err := tx.Where(&models.Transaction{AccountID: accountID, Kind: models.KindExpense, Category: category}).Find(&transactions).Error
	if err != nil {
		return decimal.Zero, err
	}

	spent := decimal.Zero
	for _, t := range transactions {
		spent = spent.Add(t.Amount)
	}
	return spent, nil
}

// SetBudget sets the limit for a category of the account.
//
// The spent amount is recomputed from all expenses in the category, so
// setting a budget also repairs a budget that is out of sync with the ledger.
func (s *Service) SetBudget(ctx context.Context, accountID uint, category string, limit decimal.Decimal) (models.Budget, error) {
	category = strings.TrimSpace(category)

	err := models.ValidateCategory(category)
	if err != nil {
		return models.Budget{}, err
	}

	if limit.IsNegative() {
		return models.Budget{}, models.ErrLimitNegative
	}

	if !limit.Equal(limit.Round(2)) {
		return models.Budget{}, models.ErrAmountPrecision
	}

	var budget models.Budget
	err = s.withAccount(ctx, accountID, func(tx *gorm.DB, _ models.Account) error {
		spent, err := expenses(tx, accountID, category)
		if err != nil {
			return err
		}

		var existing []models.Budget
		err = tx.Where(&models.Budget{AccountID: accountID, Category: category}).Limit(1).Find(&existing).Error
		if err != nil {
			return err
		}

		budget = models.Budget{AccountID: accountID, Category: category}
		if len(existing) > 0 {
			budget = existing[0]
		}

		budget.Limit = limit
		budget.Spent = spent
		return tx.Save(&budget).Error
	})
	if err != nil {
		return models.Budget{}, err
	}

	event := events.New(events.BudgetSet, accountID)
	event.Category = category
	s.publish(ctx, event)

	return budget, nil
}

// GetBudgets returns all budgets of the account ordered by category.
func (s *Service) GetBudgets(ctx context.Context, accountID uint) ([]models.Budget, error) {
	db := s.db.WithContext(ctx)

	var account models.Account
	err := db.First(&account, accountID).Error
	if err != nil {
		return nil, storageError(err)
	}

	var budgets []models.Budget
	err = db.Where(&models.Budget{AccountID: accountID}).Order("category ASC").Find(&budgets).Error
	if err != nil {
		return nil, storageError(err)
	}

	return budgets, nil
}
