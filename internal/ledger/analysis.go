package ledger

import (
	"context"
	"strings"

	"github.com/archons/backend/internal/models"
	"github.com/archons/backend/internal/types"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
)

// CategoryTotal is the sum of all transactions of one kind in a category.
type CategoryTotal struct {
	Category string          `json:"category" example:"Food"`
	Total    decimal.Decimal `json:"total" example:"120.5"`
}

// Summary compares the income and the expenses of an account.
type Summary struct {
	TotalIncome  decimal.Decimal `json:"totalIncome" example:"1000"`
	TotalExpense decimal.Decimal `json:"totalExpense" example:"200"`
	NetBalance   decimal.Decimal `json:"netBalance" example:"800"`
}

// scoped returns the transactions of the account, restricted to the month
// if it is not the zero month.
func (s *Service) scoped(ctx context.Context, accountID uint, month types.Month) ([]models.Transaction, error) {
	db := s.db.WithContext(ctx)

	var account models.Account
	err := db.First(&account, accountID).Error
	if err != nil {
		return nil, storageError(err)
	}

	q := db.Where("account_id = ?", accountID)
	if !month.IsZero() {
		q = q.Where("date >= ? AND date < ?", month.Start(), month.End())
	}

	var transactions []models.Transaction
	err = q.Order("id ASC").Find(&transactions).Error
	if err != nil {
		return nil, storageError(err)
	}

	return transactions, nil
}

// CategoryTotals sums the transactions of the kind per category, ordered by category.
func (s *Service) CategoryTotals(ctx context.Context, accountID uint, kind models.Kind, month types.Month) ([]CategoryTotal, error) {
	if !kind.Valid() {
		return nil, models.ErrKindInvalid
	}

	transactions, err := s.scoped(ctx, accountID, month)
	if err != nil {
		return nil, err
	}

	sums := make(map[string]decimal.Decimal)
	for _, t := range transactions {
		if t.Kind != kind {
			continue
		}
		sums[t.Category] = sums[t.Category].Add(t.Amount)
	}

	totals := make([]CategoryTotal, 0, len(sums))
	for category, total := range sums {
		totals = append(totals, CategoryTotal{Category: category, Total: total})
	}

	slices.SortFunc(totals, func(a, b CategoryTotal) int {
		return strings.Compare(a.Category, b.Category)
	})

	return totals, nil
}

// Summary returns the income, the expenses and their difference for the account.
func (s *Service) Summary(ctx context.Context, accountID uint, month types.Month) (Summary, error) {
	transactions, err := s.scoped(ctx, accountID, month)
	if err != nil {
		return Summary{}, err
	}

	summary := Summary{
		TotalIncome:  decimal.Zero,
		TotalExpense: decimal.Zero,
	}

	for _, t := range transactions {
		if t.Kind == models.KindExpense {
			summary.TotalExpense = summary.TotalExpense.Add(t.Amount)
		} else {
			summary.TotalIncome = summary.TotalIncome.Add(t.Amount)
		}
	}

	summary.NetBalance = summary.TotalIncome.Sub(summary.TotalExpense)
	return summary, nil
}
