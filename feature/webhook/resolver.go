package webhook

import (
	"strings"

	"webhook-relay/core/store"
)

// normalizeIdentifier prepares a caller-supplied identifier for comparison:
// surrounding whitespace is trimmed, zero-width characters are stripped and
// the result is lowercased. Copy-pasted ids from chat clients and spreadsheets
// regularly carry all three.
func normalizeIdentifier(s string) string {
	s = strings.TrimSpace(s)
	s = strings.Map(func(r rune) rune {
		switch r {
		case '​', '‌', '‍', '﻿':
			return -1
		}
		return r
	}, s)
	return strings.ToLower(s)
}

// resolve maps an identifier to exactly one record. Resolution is two-stage,
// first match wins:
//
//  1. exact case-insensitive match against the record id
//  2. case-insensitive match against the final path segment of the record URL,
//     for callers who pass the full webhook URL instead of the bare id
//
// An empty identifier resolves to not-found.
func resolve(records []store.Record, identifier string) (store.Record, bool) {
	key := normalizeIdentifier(identifier)
	if key == "" {
		return store.Record{}, false
	}

	for _, r := range records {
		if strings.ToLower(r.ID) == key {
			return r, true
		}
	}

	for _, r := range records {
		if r.URL == "" {
			continue
		}
		parts := strings.Split(r.URL, "/")
		last := parts[len(parts)-1]
		if strings.ToLower(last) == key {
			return r, true
		}
	}

	return store.Record{}, false
}
