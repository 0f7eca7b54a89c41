// Package store provides local persistence for spiral's core data.
//
// It contains concrete implementations of the domain storage interfaces.
// Settings and the auth session are JSON files under the app home, written
// atomically; the API key is sealed on disk with a per-install secret; and
// journal entries live in a SQLite database. All methods are
// concurrency-safe via internal locking or database/sql.
package store
