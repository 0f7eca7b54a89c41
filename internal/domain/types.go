package domain

import "time"

// Settings are the persisted local configuration flags.
//
// AnalysisEnabled gates the AI-analysis features; it defaults to true when
// never written so that an API-key setup leaves analysis available without
// touching the flag.
type Settings struct {
	Configured      bool `json:"configured"`
	DemoMode        bool `json:"demo_mode"`
	AnalysisEnabled bool `json:"analysis_enabled"`
}

// Session is an anonymous sign-in result from the auth service.
type Session struct {
	UserID      string    `json:"user_id"`
	AccessToken string    `json:"access_token"`
	ExpiresAt   time.Time `json:"expires_at"`
}

// Expired reports whether the session's token is past its expiry.
func (s Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.IsZero() && now.After(s.ExpiresAt)
}

// Entry is one saved journal entry.
type Entry struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	Moods     []string  `json:"moods"`
	Text      string    `json:"text"`
}
