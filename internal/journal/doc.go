// Package journal holds the in-memory entry draft and the service that
// turns drafts into persisted entries.
package journal
