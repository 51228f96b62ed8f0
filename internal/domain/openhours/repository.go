package openhours

import "context"

// Finder lists the restaurants open at a point of the week. Every backend
// (memory, raw SQL, query builder) answers from Rule.
type Finder interface {
	ListOpen(
		ctx context.Context,
		day Day,
		at Clock,
	) ([]Restaurant, error)
}

// Store persists parsed restaurants for the relational finders.
type Store interface {
	// ReplaceAll drops every stored restaurant and its open hours and
	// inserts rs, assigning IDs in place.
	ReplaceAll(
		ctx context.Context,
		rs []Restaurant,
	) error
}
