// Package usecase contains application use cases.
package usecase

import (
	"context"

	"github.com/trustyhq/trusty/internal/domain"
)

// InitStoreOutput contains the result of initializing the store.
type InitStoreOutput struct {
	AlreadyInitialized bool // True if the store already existed
}

// InitStore is the use case for initializing task storage.
type InitStore struct {
	store domain.StoreInitializer
}

// NewInitStore creates a new InitStore use case.
func NewInitStore(store domain.StoreInitializer) *InitStore {
	return &InitStore{store: store}
}

// Execute creates the task storage directory. Re-running against an
// existing store is not an error.
func (uc *InitStore) Execute(_ context.Context) (*InitStoreOutput, error) {
	already := uc.store.IsInitialized()
	if err := uc.store.Initialize(); err != nil {
		return nil, err
	}
	return &InitStoreOutput{AlreadyInitialized: already}, nil
}
