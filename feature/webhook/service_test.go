package webhook

import (
	"context"
	"path/filepath"
	"testing"

	"webhook-relay/core/dispatch"
	"webhook-relay/core/store"
	"webhook-relay/core/store/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// stubForwarder records the last forward call instead of delivering.
type stubForwarder struct {
	targets []string
	payload []byte
	headers map[string][]string
	calls   int
}

func (f *stubForwarder) Forward(_ context.Context, targets []string, payload []byte, headers map[string][]string) ([]dispatch.Result, error) {
	f.calls++
	f.targets = targets
	f.payload = payload
	f.headers = headers
	if len(targets) == 0 {
		return nil, dispatch.ErrNoTargets
	}
	results := make([]dispatch.Result, len(targets))
	for i, t := range targets {
		results[i] = dispatch.Result{Target: t, StatusCode: 200}
	}
	return results, nil
}

func newTestService(t *testing.T) (*Service, *stubForwarder) {
	st := store.New(store.Config{Path: filepath.Join(t.TempDir(), "adapters.json")}, zap.NewNop())
	fw := &stubForwarder{}
	return NewService(st, fw, "http://localhost:8080", zap.NewNop()), fw
}

func TestService_CreateGetRoundTrip(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, CreateInput{
		Name:        "orders",
		Description: "order events",
		Targets:     []string{"http://a.example", "http://b.example"},
		Enabled:     true,
	})
	require.NoError(t, err)

	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "http://localhost:8080/api/webhook/"+created.ID, created.URL)
	assert.False(t, created.CreatedAt.IsZero())
	assert.True(t, created.UpdatedAt.Equal(created.CreatedAt))

	got, err := svc.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, created.Name, got.Name)
	assert.Equal(t, created.Description, got.Description)
	assert.Equal(t, created.URL, got.URL)
	assert.Equal(t, created.Targets, got.Targets)
	assert.Equal(t, created.Enabled, got.Enabled)
	assert.True(t, created.CreatedAt.Equal(got.CreatedAt))
	assert.True(t, created.UpdatedAt.Equal(got.UpdatedAt))
}

func TestService_GetResolvesVariants(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, CreateInput{Name: "n", Enabled: true})
	require.NoError(t, err)

	for _, id := range []string{
		created.ID,
		"  " + created.ID + "  ",
		"​" + created.ID,
	} {
		got, err := svc.Get(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, created.ID, got.ID)
	}

	_, err = svc.Get(ctx, "")
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = svc.Get(ctx, "unknown")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestService_UpdateKeepsImmutableFields(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, CreateInput{Name: "before", Enabled: true})
	require.NoError(t, err)

	name := "after"
	desc := "new description"
	enabled := false
	updated, err := svc.Update(ctx, created.ID, UpdateInput{
		Name:        &name,
		Description: &desc,
		Targets:     []string{"http://c.example"},
		Enabled:     &enabled,
	})
	require.NoError(t, err)

	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, created.URL, updated.URL)
	assert.True(t, created.CreatedAt.Equal(updated.CreatedAt))
	assert.False(t, updated.UpdatedAt.Before(created.UpdatedAt))

	assert.Equal(t, "after", updated.Name)
	assert.Equal(t, "new description", updated.Description)
	assert.Equal(t, []string{"http://c.example"}, updated.Targets)
	assert.False(t, updated.Enabled)
}

func TestService_UpdatePartialFields(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, CreateInput{
		Name:        "keep",
		Description: "keep too",
		Targets:     []string{"http://a.example"},
		Enabled:     true,
	})
	require.NoError(t, err)

	desc := "changed"
	updated, err := svc.Update(ctx, created.ID, UpdateInput{Description: &desc})
	require.NoError(t, err)

	assert.Equal(t, "keep", updated.Name)
	assert.Equal(t, "changed", updated.Description)
	assert.Equal(t, []string{"http://a.example"}, updated.Targets)
	assert.True(t, updated.Enabled)
}

func TestService_UpdateErrors(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.Update(ctx, "", UpdateInput{})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.Update(ctx, "unknown", UpdateInput{})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestService_DeleteIdempotent(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, CreateInput{Enabled: true})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, created.ID))

	// Second delete finds nothing and leaves the store untouched
	assert.ErrorIs(t, svc.Delete(ctx, created.ID), ErrNotFound)

	records, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, records)

	assert.ErrorIs(t, svc.Delete(ctx, ""), ErrInvalidInput)
}

func TestService_ListOrder(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	first, err := svc.Create(ctx, CreateInput{Name: "first", Enabled: true})
	require.NoError(t, err)
	second, err := svc.Create(ctx, CreateInput{Name: "second", Enabled: true})
	require.NoError(t, err)

	records, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, first.ID, records[0].ID)
	assert.Equal(t, second.ID, records[1].ID)
}

func TestService_TriggerForwardsRawPayload(t *testing.T) {
	svc, fw := newTestService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, CreateInput{
		Targets: []string{"http://a.example", "http://b.example"},
		Enabled: true,
	})
	require.NoError(t, err)

	payload := []byte(`<not json>`)
	headers := map[string][]string{"X-Sig": {"abc"}}
	results, err := svc.Trigger(ctx, created.ID, payload, headers)
	require.NoError(t, err)
	assert.Len(t, results, 2)

	assert.Equal(t, created.Targets, fw.targets)
	assert.Equal(t, payload, fw.payload)
	assert.Equal(t, headers, fw.headers)
}

func TestService_TriggerDisabled(t *testing.T) {
	svc, fw := newTestService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, CreateInput{
		Targets: []string{"http://a.example"},
		Enabled: false,
	})
	require.NoError(t, err)

	_, err = svc.Trigger(ctx, created.ID, []byte("x"), nil)
	assert.ErrorIs(t, err, ErrDisabled)
	assert.Zero(t, fw.calls)
}

func TestService_TriggerNoTargets(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, CreateInput{Enabled: true})
	require.NoError(t, err)

	_, err = svc.Trigger(ctx, created.ID, []byte("x"), nil)
	assert.ErrorIs(t, err, dispatch.ErrNoTargets)
}

func TestService_TriggerUnknown(t *testing.T) {
	svc, fw := newTestService(t)

	_, err := svc.Trigger(context.Background(), "unknown", []byte("x"), nil)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Zero(t, fw.calls)
}

func TestService_StorageFailurePropagates(t *testing.T) {
	st := new(mocks.Store)
	st.On("Load", mock.Anything).Return(nil, assert.AnError)

	svc := NewService(st, &stubForwarder{}, "http://localhost:8080", zap.NewNop())

	_, err := svc.List(context.Background())
	assert.ErrorIs(t, err, assert.AnError)

	_, err = svc.Create(context.Background(), CreateInput{})
	assert.ErrorIs(t, err, assert.AnError)
}
