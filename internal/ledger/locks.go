package ledger

import "sync"

// lockTable hands out one mutex per account. Entries are reference counted
// and removed once nobody holds or waits for them.
type lockTable struct {
	mu    sync.Mutex
	locks map[uint]*accountLock
}

type accountLock struct {
	sync.Mutex
	refs int
}

func newLockTable() *lockTable {
	return &lockTable{locks: make(map[uint]*accountLock)}
}

// lock blocks until the account is free and returns the function releasing it.
func (t *lockTable) lock(accountID uint) (unlock func()) {
	t.mu.Lock()
	l, ok := t.locks[accountID]
	if !ok {
		l = &accountLock{}
		t.locks[accountID] = l
	}
	l.refs++
	t.mu.Unlock()

	l.Lock()

	return func() {
		l.Unlock()

		t.mu.Lock()
		l.refs--
		if l.refs == 0 {
			delete(t.locks, accountID)
		}
		t.mu.Unlock()
	}
}

// size returns the number of accounts currently locked or waited for.
func (t *lockTable) size() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.locks)
}
