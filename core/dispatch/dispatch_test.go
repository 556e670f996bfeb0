package dispatch

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestDispatcher() *Dispatcher {
	return New(Config{TimeoutSeconds: 5}, zap.NewNop())
}

func newTarget(t *testing.T, status int, hits *atomic.Int32, lastBody *atomic.Value) *httptest.Server {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		if lastBody != nil {
			body, _ := io.ReadAll(r.Body)
			lastBody.Store(string(body))
		}
		w.WriteHeader(status)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestForward_NoTargets(t *testing.T) {
	d := newTestDispatcher()

	results, err := d.Forward(context.Background(), nil, []byte("x"), nil)
	assert.ErrorIs(t, err, ErrNoTargets)
	assert.Nil(t, results)

	results, err = d.Forward(context.Background(), []string{}, []byte("x"), nil)
	assert.ErrorIs(t, err, ErrNoTargets)
	assert.Nil(t, results)
}

func TestForward_AllTargetsAttempted(t *testing.T) {
	var hitsA, hitsB, hitsC atomic.Int32
	a := newTarget(t, 200, &hitsA, nil)
	c := newTarget(t, 200, &hitsC, nil)

	// B is unreachable
	b := newTarget(t, 200, &hitsB, nil)
	bURL := b.URL
	b.Close()

	d := newTestDispatcher()
	results, err := d.Forward(context.Background(), []string{a.URL, bURL, c.URL}, []byte("payload"), nil)
	require.NoError(t, err)
	require.Len(t, results, 3)

	assert.Equal(t, int32(1), hitsA.Load())
	assert.Equal(t, int32(1), hitsC.Load())

	assert.True(t, results[0].OK())
	assert.False(t, results[1].OK())
	assert.Error(t, results[1].Err)
	assert.True(t, results[2].OK())
}

func TestForward_NonSuccessStatusIsFailure(t *testing.T) {
	var hits atomic.Int32
	srv := newTarget(t, 500, &hits, nil)

	d := newTestDispatcher()
	results, err := d.Forward(context.Background(), []string{srv.URL}, []byte("x"), nil)
	require.NoError(t, err)
	require.Len(t, results, 1)

	assert.Equal(t, 500, results[0].StatusCode)
	assert.False(t, results[0].OK())
	assert.NoError(t, results[0].Err)
}

func TestForward_PayloadAndHeadersForwarded(t *testing.T) {
	var gotBody, gotHeader, gotHost atomic.Value
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		gotBody.Store(string(body))
		gotHeader.Store(r.Header.Get("X-Event-Type"))
		gotHost.Store(r.Host)
		w.WriteHeader(204)
	}))
	t.Cleanup(srv.Close)

	headers := map[string][]string{
		"X-Event-Type": {"order.created"},
		"Host":         {"upstream.example.com"},
	}
	payload := []byte(`{"raw":"bytes"}`)

	d := newTestDispatcher()
	results, err := d.Forward(context.Background(), []string{srv.URL}, payload, headers)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.True(t, results[0].OK())

	assert.Equal(t, `{"raw":"bytes"}`, gotBody.Load())
	assert.Equal(t, "order.created", gotHeader.Load())
	// The inbound Host must not leak to the target
	assert.NotEqual(t, "upstream.example.com", gotHost.Load())
}

func TestForward_ConcurrencyCap(t *testing.T) {
	var hits atomic.Int32
	srv := newTarget(t, 200, &hits, nil)

	d := New(Config{TimeoutSeconds: 5, MaxConcurrent: 2}, zap.NewNop())
	targets := []string{srv.URL, srv.URL, srv.URL, srv.URL, srv.URL}

	results, err := d.Forward(context.Background(), targets, []byte("x"), nil)
	require.NoError(t, err)
	assert.Len(t, results, 5)
	assert.Equal(t, int32(5), hits.Load())
}

func TestResult_OK(t *testing.T) {
	assert.True(t, Result{StatusCode: 200}.OK())
	assert.True(t, Result{StatusCode: 204}.OK())
	assert.False(t, Result{StatusCode: 302}.OK())
	assert.False(t, Result{StatusCode: 404}.OK())
	assert.False(t, Result{StatusCode: 200, Err: assert.AnError}.OK())
	assert.False(t, Result{}.OK())
}
