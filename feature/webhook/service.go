package webhook

import (
	"context"
	"fmt"
	"sync"
	"time"

	"webhook-relay/core/dispatch"
	"webhook-relay/core/store"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Forwarder delivers a payload to a list of targets.
type Forwarder interface {
	Forward(ctx context.Context, targets []string, payload []byte, headers map[string][]string) ([]dispatch.Result, error)
}

// Service is the adapter registry. It is the only writer of the record store
// and enforces the identity and timestamp invariants: id, url and createdAt
// are assigned at creation and can never be overwritten by callers.
//
// Mutations are serialized behind a single mutex; the underlying store is a
// whole-file load-modify-save, so unserialized writers would silently lose
// updates to each other.
type Service struct {
	store     store.Store
	forwarder Forwarder
	baseURL   string
	logger    *zap.Logger

	mu sync.Mutex
}

// NewService creates the registry service. baseURL is the public base URL
// used to derive adapter webhook URLs.
func NewService(st store.Store, fw Forwarder, baseURL string, logger *zap.Logger) *Service {
	return &Service{
		store:     st,
		forwarder: fw,
		baseURL:   baseURL,
		logger:    logger,
	}
}

// CreateInput holds the caller-suppliable fields for a new adapter.
type CreateInput struct {
	Name        string
	Description string
	Targets     []string
	Enabled     bool
}

// UpdateInput lists every mutable adapter field. A nil field means
// "unchanged". Immutable fields (id, url, createdAt) are structurally absent
// so they cannot be overwritten even accidentally.
type UpdateInput struct {
	Name        *string
	Description *string
	Targets     []string
	Enabled     *bool
}

// List returns the full current adapter collection in store order.
func (s *Service) List(ctx context.Context) ([]store.Record, error) {
	return s.store.Load(ctx)
}

// Get resolves an identifier (id or webhook URL) to a single adapter.
func (s *Service) Get(ctx context.Context, identifier string) (store.Record, error) {
	if normalizeIdentifier(identifier) == "" {
		return store.Record{}, ErrNotFound
	}
	records, err := s.store.Load(ctx)
	if err != nil {
		return store.Record{}, err
	}
	record, ok := resolve(records, identifier)
	if !ok {
		return store.Record{}, ErrNotFound
	}
	return record, nil
}

// Create registers a new adapter. The id is generated, the webhook URL is
// derived from it and both timestamps are set to now.
func (s *Service) Create(ctx context.Context, in CreateInput) (store.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := s.store.Load(ctx)
	if err != nil {
		return store.Record{}, err
	}

	targets := in.Targets
	if targets == nil {
		targets = []string{}
	}

	now := time.Now().UTC()
	id := uuid.NewString()
	record := store.Record{
		ID:          id,
		Name:        in.Name,
		Description: in.Description,
		URL:         fmt.Sprintf("%s/api/webhook/%s", s.baseURL, id),
		Targets:     targets,
		Enabled:     in.Enabled,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	records = append(records, record)
	if err := s.store.Save(ctx, records); err != nil {
		return store.Record{}, err
	}

	s.logger.Info("Adapter created",
		zap.String("id", record.ID),
		zap.String("name", record.Name),
		zap.Int("targets", len(record.Targets)))
	return record, nil
}

// Update merges the given fields over the resolved adapter. id, url and
// createdAt keep their prior values; updatedAt is refreshed.
func (s *Service) Update(ctx context.Context, identifier string, in UpdateInput) (store.Record, error) {
	if normalizeIdentifier(identifier) == "" {
		return store.Record{}, fmt.Errorf("%w: identifier is required", ErrInvalidInput)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := s.store.Load(ctx)
	if err != nil {
		return store.Record{}, err
	}

	resolved, ok := resolve(records, identifier)
	if !ok {
		return store.Record{}, ErrNotFound
	}

	for i := range records {
		if records[i].ID != resolved.ID {
			continue
		}
		if in.Name != nil {
			records[i].Name = *in.Name
		}
		if in.Description != nil {
			records[i].Description = *in.Description
		}
		if in.Targets != nil {
			records[i].Targets = in.Targets
		}
		if in.Enabled != nil {
			records[i].Enabled = *in.Enabled
		}
		records[i].UpdatedAt = time.Now().UTC()

		if err := s.store.Save(ctx, records); err != nil {
			return store.Record{}, err
		}

		s.logger.Info("Adapter updated", zap.String("id", records[i].ID))
		return records[i], nil
	}

	return store.Record{}, ErrNotFound
}

// Delete removes the resolved adapter. Deleting an unknown identifier
// returns ErrNotFound and leaves the collection untouched.
func (s *Service) Delete(ctx context.Context, identifier string) error {
	if normalizeIdentifier(identifier) == "" {
		return fmt.Errorf("%w: identifier is required", ErrInvalidInput)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := s.store.Load(ctx)
	if err != nil {
		return err
	}

	resolved, ok := resolve(records, identifier)
	if !ok {
		return ErrNotFound
	}

	kept := records[:0]
	for _, r := range records {
		if r.ID != resolved.ID {
			kept = append(kept, r)
		}
	}
	if err := s.store.Save(ctx, kept); err != nil {
		return err
	}

	s.logger.Info("Adapter deleted", zap.String("id", resolved.ID))
	return nil
}

// Trigger resolves an adapter and relays the raw payload to all of its
// targets. Disabled adapters refuse triggers; adapters without targets
// return dispatch.ErrNoTargets. Per-target failures are reported in the
// results, not as an error.
func (s *Service) Trigger(ctx context.Context, identifier string, payload []byte, headers map[string][]string) ([]dispatch.Result, error) {
	record, err := s.Get(ctx, identifier)
	if err != nil {
		return nil, err
	}
	if !record.Enabled {
		return nil, ErrDisabled
	}
	return s.forwarder.Forward(ctx, record.Targets, payload, headers)
}
