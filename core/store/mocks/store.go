package mocks

import (
	"context"

	"webhook-relay/core/store"

	"github.com/stretchr/testify/mock"
)

// Store is a mock implementation of store.Store
type Store struct {
	mock.Mock
}

func (m *Store) Load(ctx context.Context) ([]store.Record, error) {
	args := m.Called(ctx)
	if records, ok := args.Get(0).([]store.Record); ok {
		return records, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *Store) Save(ctx context.Context, records []store.Record) error {
	args := m.Called(ctx, records)
	return args.Error(0)
}
