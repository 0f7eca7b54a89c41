// Package domain defines core data models and interfaces shared across the app.
// It contains plain types (settings/session/journal state) and contracts
// (interfaces) only.
package domain
