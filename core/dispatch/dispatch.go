package dispatch

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// ErrNoTargets is returned when an adapter has no forwarding destinations.
var ErrNoTargets = errors.New("no targets configured")

// Result is the outcome of one delivery attempt.
type Result struct {
	// Target is the destination address.
	Target string
	// StatusCode is the HTTP status returned by the target, 0 on transport failure.
	StatusCode int
	// Duration is the time the delivery attempt took.
	Duration time.Duration
	// Err is set when the target was unreachable or the request could not be built.
	Err error
}

// OK reports whether the target accepted the delivery.
func (r Result) OK() bool {
	return r.Err == nil && r.StatusCode >= 200 && r.StatusCode < 300
}

// Dispatcher forwards raw payloads to adapter targets.
type Dispatcher struct {
	timeout time.Duration
	limit   int
	logger  *zap.Logger
}

// New creates a dispatcher from the configuration.
func New(cfg Config, logger *zap.Logger) *Dispatcher {
	timeout := cfg.TimeoutSeconds
	if timeout <= 0 {
		timeout = 30
	}
	return &Dispatcher{
		timeout: time.Duration(timeout) * time.Second,
		limit:   cfg.MaxConcurrent,
		logger:  logger,
	}
}

// Forward delivers the payload to every target concurrently and returns one
// Result per target, in target order. It returns ErrNoTargets when the target
// list is empty and performs no deliveries in that case. Individual delivery
// failures are recorded in the results and logged, never escalated.
func (d *Dispatcher) Forward(ctx context.Context, targets []string, payload []byte, headers map[string][]string) ([]Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if len(targets) == 0 {
		return nil, ErrNoTargets
	}

	results := make([]Result, len(targets))

	var g errgroup.Group
	if d.limit > 0 {
		g.SetLimit(d.limit)
	}
	for i, target := range targets {
		g.Go(func() error {
			res := d.deliver(target, payload, headers)
			results[i] = res
			if res.OK() {
				d.logger.Info("Delivered webhook payload",
					zap.String("target", res.Target),
					zap.Int("status", res.StatusCode),
					zap.Duration("duration", res.Duration))
			} else {
				d.logger.Warn("Webhook delivery failed",
					zap.String("target", res.Target),
					zap.Int("status", res.StatusCode),
					zap.Duration("duration", res.Duration),
					zap.Error(res.Err))
			}
			// Failures stay per-target; never abort the group
			return nil
		})
	}
	_ = g.Wait()

	return results, nil
}

func (d *Dispatcher) deliver(target string, payload []byte, headers map[string][]string) Result {
	start := time.Now()

	a := fiber.AcquireAgent()
	defer fiber.ReleaseAgent(a)

	req := a.Request()
	req.Header.SetMethod(fiber.MethodPost)
	req.SetRequestURI(target)

	for key, values := range headers {
		if skipHeader(key) {
			continue
		}
		for _, value := range values {
			req.Header.Add(key, value)
		}
	}
	req.SetBody(payload)

	if err := a.Parse(); err != nil {
		return Result{Target: target, Duration: time.Since(start), Err: err}
	}

	code, _, errs := a.Timeout(d.timeout).Bytes()
	res := Result{Target: target, StatusCode: code, Duration: time.Since(start)}
	if len(errs) > 0 {
		res.Err = errs[0]
	}
	return res
}

// skipHeader reports whether a header is hop-specific and must not be
// forwarded. Host would make many targets reject the request outright;
// Content-Length is recomputed by the client.
func skipHeader(key string) bool {
	return strings.EqualFold(key, fiber.HeaderHost) ||
		strings.EqualFold(key, fiber.HeaderContentLength)
}
