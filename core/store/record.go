package store

import "time"

// Record is the persistent representation of a webhook adapter: a named
// endpoint with a list of forwarding targets.
//
// ID, URL and CreatedAt are write-once; the registry assigns them at creation
// and pins them on every update.
type Record struct {
	// ID is the opaque unique identifier, generated at creation.
	ID string `json:"id"`
	// Name is an optional display label.
	Name string `json:"name,omitempty"`
	// Description is optional free text.
	Description string `json:"description,omitempty"`
	// URL is the canonical trigger address embedding the ID.
	URL string `json:"url"`
	// Targets is the ordered list of destination addresses. May be empty.
	Targets []string `json:"targets"`
	// Enabled gates dispatch; disabled adapters refuse triggers.
	Enabled bool `json:"enabled"`
	// CreatedAt is set once at creation.
	CreatedAt time.Time `json:"createdAt"`
	// UpdatedAt is refreshed on every mutation.
	UpdatedAt time.Time `json:"updatedAt"`
}
