// Package docstore persists the back office's datasets as JSON array documents,
// one document per dataset key, and adapts them into typed repositories.
package docstore

import (
	"context"
	"sync"
)

// Dataset keys.
const (
	TenantsKey          = "tenants"
	LeasesKey           = "leases"
	BankTransactionsKey = "bank_transactions"
	ManualPaymentsKey   = "manual_payments"
	DepositsKey         = "deposits"
	UtilityChargesKey   = "utility_charges"
)

// UpdateFunc receives the current document (nil when the key has never been
// written) and returns its replacement. Returning an error aborts the write.
type UpdateFunc func(current []byte) ([]byte, error)

// Store is a key/value document store. Writes to one key are serialized;
// reads never block on writers.
type Store interface {
	// Get returns the stored document, or nil if the key does not exist.
	Get(ctx context.Context, key string) ([]byte, error)

	// Update applies fn to the current document under the key's write lock.
	Update(ctx context.Context, key string, fn UpdateFunc) error
}

// KeyedMutex hands out one mutex per key. Locks are never removed; the key
// space is the fixed set of dataset names.
type KeyedMutex struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// Lock blocks until the key's lock is held and returns its unlock function.
func (k *KeyedMutex) Lock(key string) func() {
	k.mu.Lock()
	if k.locks == nil {
		k.locks = make(map[string]*sync.Mutex)
	}
	l, ok := k.locks[key]
	if !ok {
		l = &sync.Mutex{}
		k.locks[key] = l
	}
	k.mu.Unlock()

	l.Lock()
	return l.Unlock
}
