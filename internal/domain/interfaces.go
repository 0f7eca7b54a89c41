package domain

import "context"

// ConfigStore persists local configuration: the credential and the
// settings flags. Flag getters return the effective value (defaults
// applied) even when nothing has been written yet.
type ConfigStore interface {
	SetCredential(key string) error
	// Credential returns the stored API key; ok is false when none is set.
	Credential() (key string, ok bool, err error)

	SetConfigured(v bool) error
	SetDemoMode(v bool) error
	SetAnalysisEnabled(v bool) error
	Settings() (Settings, error)
}

// SessionStore persists the anonymous auth session.
type SessionStore interface {
	SaveSession(s Session) error
	LoadSession() (Session, bool, error)
}

// EntryStore persists journal entries.
type EntryStore interface {
	AppendEntry(ctx context.Context, e Entry) error
	// ListEntries returns up to limit entries, most recent first.
	// limit <= 0 means no limit.
	ListEntries(ctx context.Context, limit int) ([]Entry, error)
}

// Authenticator is how we talk to the backend auth service.
type Authenticator interface {
	AnonymousSignIn(ctx context.Context) (Session, error)
}
