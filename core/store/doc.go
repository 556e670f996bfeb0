// Package store provides durable persistence for webhook adapter records.
//
// The full adapter collection is kept as a single JSON array on disk. Every
// load re-reads the file and every save rewrites it as a whole; there is no
// in-memory cache. This is a deliberate simplicity trade-off that caps out at
// a few thousand adapters.
//
// # Atomicity
//
// Save writes to a co-located temporary file and renames it over the primary
// file, so a reader never observes a partially written collection.
//
// # Corruption policy
//
// A backing file that fails to parse is reset to an empty collection rather
// than surfacing a fatal error. Adapter registrations are considered
// recreatable, an unreadable store is not.
//
// # Store Interface
//
// The Store interface abstracts the file-backed implementation, making it
// easy to mock persistence for unit testing (see core/store/mocks).
//
// # Usage
//
//	s := store.New(cfg, logger)
//	records, err := s.Load(ctx)
package store
