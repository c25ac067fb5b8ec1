package ledger

import (
	"context"
	"strings"
	"time"

	"github.com/archons/backend/internal/events"
	"github.com/archons/backend/internal/models"
	"github.com/rs/zerolog/log"
	"github.com/ryanuber/go-glob"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// TransactionInput is the data for a new transaction.
type TransactionInput struct {
	Date     time.Time       // Defaults to now
	Kind     models.Kind     // Income or Expense
	Category string          // Free form label
	Amount   decimal.Decimal // Greater than zero, at most two decimal places
}

// TransactionPatch changes the fields of a transaction that are set.
type TransactionPatch struct {
	Date     *time.Time
	Kind     *models.Kind
	Category *string
	Amount   *decimal.Decimal
}

func (p TransactionPatch) apply(t *models.Transaction) {
	if p.Date != nil {
		t.Date = *p.Date
	}

	if p.Kind != nil {
		t.Kind = *p.Kind
	}

	if p.Category != nil {
		t.Category = *p.Category
	}

	if p.Amount != nil {
		t.Amount = *p.Amount
	}
}

// TransactionFilter restricts the transactions returned by ListTransactions.
type TransactionFilter struct {
	Kind     models.Kind // Only transactions of this kind
	Category string      // Glob pattern for the category, e.g. "Food*"
}

func (f TransactionFilter) matches(t models.Transaction) bool {
	if f.Kind != "" && t.Kind != f.Kind {
		return false
	}

	if f.Category != "" && !glob.Glob(f.Category, t.Category) {
		return false
	}

	return true
}

// AddTransaction records a new transaction for the account.
//
// The running total of the new transaction is the balance of the account
// including the transaction. Expenses count towards the budget of their
// category if there is one.
func (s *Service) AddTransaction(ctx context.Context, accountID uint, in TransactionInput) (models.Transaction, error) {
	transaction := models.Transaction{
		AccountID: accountID,
		Date:      in.Date,
		Kind:      in.Kind,
		Category:  strings.TrimSpace(in.Category),
		Amount:    in.Amount,
	}

	err := transaction.Validate()
	if err != nil {
		return models.Transaction{}, err
	}

	err = s.withAccount(ctx, accountID, func(tx *gorm.DB, _ models.Account) error {
		current, err := balance(tx, accountID)
		if err != nil {
			return err
		}

		transaction.RunningTotal = current.Add(transaction.Signed())
		err = tx.Create(&transaction).Error
		if err != nil {
			return err
		}

		if transaction.Kind == models.KindExpense {
			return adjustSpent(tx, accountID, transaction.Category, transaction.Amount)
		}
		return nil
	})
	if err != nil {
		return models.Transaction{}, err
	}

	event := events.New(events.TransactionAdded, accountID)
	event.TransactionID = transaction.ID
	event.Category = transaction.Category
	s.publish(ctx, event)

	return transaction, nil
}

// GetTransaction returns the transaction with the ID.
func (s *Service) GetTransaction(ctx context.Context, id uint) (models.Transaction, error) {
	var transaction models.Transaction

	err := s.db.WithContext(ctx).First(&transaction, id).Error
	if err != nil {
		return models.Transaction{}, storageError(err)
	}

	return transaction, nil
}

// ListTransactions returns the transactions of the account matching the
// filter in ledger order.
func (s *Service) ListTransactions(ctx context.Context, accountID uint, filter TransactionFilter) ([]models.Transaction, error) {
	db := s.db.WithContext(ctx)

	var account models.Account
	err := db.First(&account, accountID).Error
	if err != nil {
		return nil, storageError(err)
	}

	q := db.Where("account_id = ?", accountID)
	if filter.Kind != "" {
		q = q.Where("kind = ?", filter.Kind)
	}

	var transactions []models.Transaction
	err = q.Order("id ASC").Find(&transactions).Error
	if err != nil {
		return nil, storageError(err)
	}

	filtered := make([]models.Transaction, 0, len(transactions))
	for _, t := range transactions {
		if filter.matches(t) {
			filtered = append(filtered, t)
		}
	}

	return filtered, nil
}

// accountOf returns the ID of the account owning the transaction.
func (s *Service) accountOf(ctx context.Context, id uint) (uint, error) {
	transaction, err := s.GetTransaction(ctx, id)
	if err != nil {
		return 0, err
	}
	return transaction.AccountID, nil
}

// UpdateTransaction changes the transaction and recomputes the running
// totals of it and all later transactions of the account. The budgets
// of the old and the new category are reconciled.
//
// It returns the updated transaction and the net balance of the account.
func (s *Service) UpdateTransaction(ctx context.Context, id uint, patch TransactionPatch) (models.Transaction, decimal.Decimal, error) {
	accountID, err := s.accountOf(ctx, id)
	if err != nil {
		return models.Transaction{}, decimal.Zero, err
	}

	var (
		updated models.Transaction
		total   decimal.Decimal
	)

	err = s.withAccount(ctx, accountID, func(tx *gorm.DB, _ models.Account) error {
		// Re-read under the lock, the transaction may have changed since
		var old models.Transaction
		err := tx.Where("account_id = ?", accountID).First(&old, id).Error
		if err != nil {
			return err
		}

		updated = old
		patch.apply(&updated)
		err = tx.Save(&updated).Error
		if err != nil {
			return err
		}

		if old.Kind == models.KindExpense {
			err = adjustSpent(tx, accountID, old.Category, old.Amount.Neg())
			if err != nil {
				return err
			}
		}

		if updated.Kind == models.KindExpense {
			err = adjustSpent(tx, accountID, updated.Category, updated.Amount)
			if err != nil {
				return err
			}
		}

		_, err = sweep(tx, accountID, id)
		if err != nil {
			return err
		}

		err = tx.First(&updated, id).Error
		if err != nil {
			return err
		}

		total, err = balance(tx, accountID)
		return err
	})
	if err != nil {
		return models.Transaction{}, decimal.Zero, err
	}

	event := events.New(events.TransactionUpdated, accountID)
	event.TransactionID = id
	event.Category = updated.Category
	s.publish(ctx, event)

	return updated, total, nil
}

// DeleteTransaction removes the transaction and recomputes the running
// totals of all later transactions of the account.
func (s *Service) DeleteTransaction(ctx context.Context, id uint) error {
	accountID, err := s.accountOf(ctx, id)
	if err != nil {
		return err
	}

	var category string
	err = s.withAccount(ctx, accountID, func(tx *gorm.DB, _ models.Account) error {
		var transaction models.Transaction
		err := tx.Where("account_id = ?", accountID).First(&transaction, id).Error
		if err != nil {
			return err
		}
		category = transaction.Category

		if transaction.Kind == models.KindExpense {
			err = adjustSpent(tx, accountID, transaction.Category, transaction.Amount.Neg())
			if err != nil {
				return err
			}
		}

		err = tx.Delete(&transaction).Error
		if err != nil {
			return err
		}

		_, err = sweep(tx, accountID, id)
		return err
	})
	if err != nil {
		return err
	}

	log.Debug().Uint("account", accountID).Uint("transaction", id).Msg("deleted transaction")

	event := events.New(events.TransactionDeleted, accountID)
	event.TransactionID = id
	event.Category = category
	s.publish(ctx, event)

	return nil
}
