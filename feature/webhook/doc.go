// Package webhook implements the adapter registry and the trigger endpoint.
//
// An adapter is a named registration representing one logical webhook
// endpoint and its fan-out target list. The registry is the only writer of
// the record store; it owns id generation, canonical URL derivation and
// timestamp handling. Triggered payloads are relayed unmodified to every
// target of the resolved adapter via core/dispatch.
//
// # Identifier resolution
//
// Callers may address an adapter by its id or by its full webhook URL; the
// resolver tolerates surrounding whitespace, zero-width characters and case
// differences. Read and write paths resolve identically.
//
// # HTTP Endpoints
//
//   - GET    /api/webhooks     : List all adapters.
//   - POST   /api/webhook      : Create an adapter.
//   - POST   /api/webhook/:id  : Trigger; relays the raw body to all targets.
//   - PUT    /api/webhook/:id  : Update an adapter's mutable fields.
//   - DELETE /api/webhook/:id  : Delete an adapter.
package webhook
