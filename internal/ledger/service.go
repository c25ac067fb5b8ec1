// Package ledger keeps the transaction ledger of every account and the
// budgets derived from it consistent.
//
// All writes for an account are serialized: an in-process lock per account
// guards the read-modify-write cycle, and every operation runs in a single
// database transaction that also locks the account row where the database
// supports it. A failure anywhere rolls back the whole operation.
package ledger

import (
	"context"
	"errors"

	"github.com/archons/backend/internal/events"
	"github.com/archons/backend/internal/models"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// DefaultCurrency is used for accounts created without a currency.
const DefaultCurrency = "INR"

// Options configure a Service.
type Options struct {
	Publisher       events.Publisher // Receives committed changes. Defaults to events.Nop
	DefaultCurrency string           // Currency for new accounts. Defaults to DefaultCurrency
}

// Service is the only component writing transactions and budgets.
type Service struct {
	db              *gorm.DB
	locks           *lockTable
	publisher       events.Publisher
	defaultCurrency string
}

// NewService returns a Service working on db.
func NewService(db *gorm.DB, opts Options) *Service {
	if opts.Publisher == nil {
		opts.Publisher = events.Nop{}
	}

	if opts.DefaultCurrency == "" {
		opts.DefaultCurrency = DefaultCurrency
	}

	return &Service{
		db:              db,
		locks:           newLockTable(),
		publisher:       opts.Publisher,
		defaultCurrency: opts.DefaultCurrency,
	}
}

// DB returns the database handle of the service.
func (s *Service) DB() *gorm.DB {
	return s.db
}

// withAccount runs fn in a database transaction while holding the lock for
// the account. The account row is re-read inside the transaction, so fn
// only runs if the account exists.
func (s *Service) withAccount(ctx context.Context, accountID uint, fn func(tx *gorm.DB, account models.Account) error) error {
	unlock := s.locks.lock(accountID)
	defer unlock()

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var account models.Account

		// sqlite ignores the locking clause, it only ever has one writer
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&account, accountID).Error
		if err != nil {
			return err
		}

		return fn(tx, account)
	})

	return storageError(err)
}

// publish sends an event for a committed change. Failures are only logged.
func (s *Service) publish(ctx context.Context, event events.Event) {
	err := s.publisher.Publish(ctx, event)
	if err != nil {
		log.Warn().Err(err).Str("event", event.ID).Str("type", string(event.Type)).Uint("account", event.AccountID).Msg("could not publish ledger event")
	}
}

// storageError makes sure that every error carries an error kind.
// Errors the database callbacks could not classify are logged and
// reported as ErrGeneral.
func storageError(err error) error {
	if err == nil || models.IsKnown(err) {
		return err
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.ErrResourceNotFound
	}

	log.Error().Msgf("%T: %v", err, err.Error())
	return models.ErrGeneral
}

// CreateAccount creates an account. An empty currency uses the default currency.
func (s *Service) CreateAccount(ctx context.Context, name, currency string) (models.Account, error) {
	if currency == "" {
		currency = s.defaultCurrency
	}

	account := models.Account{
		Name:     name,
		Currency: currency,
	}

	err := s.db.WithContext(ctx).Create(&account).Error
	if err != nil {
		return models.Account{}, storageError(err)
	}

	return account, nil
}

// GetAccount returns the account with the ID.
func (s *Service) GetAccount(ctx context.Context, id uint) (models.Account, error) {
	var account models.Account

	err := s.db.WithContext(ctx).First(&account, id).Error
	if err != nil {
		return models.Account{}, storageError(err)
	}

	return account, nil
}

// DeleteAccount deletes the account together with all of its transactions and budgets.
func (s *Service) DeleteAccount(ctx context.Context, id uint) error {
	err := s.withAccount(ctx, id, func(tx *gorm.DB, account models.Account) error {
		// The foreign keys cascade, deleting the associations explicitly
		// also covers databases created without the constraints
		return tx.Select(clause.Associations).Delete(&account).Error
	})
	if err != nil {
		return err
	}

	s.publish(ctx, events.New(events.AccountDeleted, id))
	return nil
}
