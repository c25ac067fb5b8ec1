// Package events publishes notifications about committed ledger changes.
//
// Events are sent after the database transaction of an operation has been
// committed. A failing publisher never changes the outcome of the operation.
package events

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Type names the ledger change. It doubles as the routing key.
type Type string

const (
	TransactionAdded   Type = "ledger.transaction.added"
	TransactionUpdated Type = "ledger.transaction.updated"
	TransactionDeleted Type = "ledger.transaction.deleted"
	BudgetSet          Type = "ledger.budget.set"
	AccountDeleted     Type = "ledger.account.deleted"
)

// Event describes one committed ledger change.
type Event struct {
	ID            string    `json:"id"`
	Type          Type      `json:"type"`
	AccountID     uint      `json:"accountId"`
	TransactionID uint      `json:"transactionId,omitempty"`
	Category      string    `json:"category,omitempty"`
	OccurredAt    time.Time `json:"occurredAt"`
}

// New returns an event of the given type for an account.
func New(t Type, accountID uint) Event {
	return Event{
		ID:         uuid.NewString(),
		Type:       t,
		AccountID:  accountID,
		OccurredAt: time.Now().In(time.UTC),
	}
}

// ToJSON converts the event to JSON bytes
func (e Event) ToJSON() ([]byte, error) {
	return json.Marshal(e)
}

// Publisher sends ledger events to interested parties.
type Publisher interface {
	Publish(ctx context.Context, event Event) error
	Close() error
}

// Nop discards all events.
type Nop struct{}

func (Nop) Publish(context.Context, Event) error { return nil }
func (Nop) Close() error                         { return nil }

// Recorder keeps all published events in memory.
type Recorder struct {
	mu     sync.Mutex
	events []Event
}

func (r *Recorder) Publish(_ context.Context, event Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.events = append(r.events, event)
	return nil
}

func (r *Recorder) Close() error { return nil }

// Events returns a copy of all recorded events in publishing order.
func (r *Recorder) Events() []Event {
	r.mu.Lock()
	defer r.mu.Unlock()

	return append([]Event(nil), r.events...)
}
