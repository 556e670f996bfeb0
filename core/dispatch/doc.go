// Package dispatch delivers a triggered webhook payload to its targets.
//
// One delivery is issued per target, concurrently. Deliveries are fully
// independent: a failing or slow target never prevents or retries delivery
// to the others, and the call returns once every target has been attempted.
// Delivery is at-most-once per target; there is no retry or backoff.
//
// The payload and the caller-provided headers are forwarded byte-for-byte.
// Hop-specific headers (Host, Content-Length) are stripped before forwarding.
//
// # Usage
//
//	d := dispatch.New(cfg, logger)
//	results, err := d.Forward(ctx, adapter.Targets, body, headers)
package dispatch
