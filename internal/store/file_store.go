package store

import (
	"crypto/rand"
	"path/filepath"
	"sync"

	"spiral/internal/domain"
)

const (
	settingsFile   = "settings.json"
	credentialFile = "credential.enc" // sealed blob, see crypto_envelope.go
	sessionFile    = "session.json"
	secretFile     = "spiral.key" // per-install random secret sealing the credential
)

// settings is the on-disk shape of the flags. AnalysisEnabled is a pointer
// so "never written" is distinguishable from "explicitly off".
type settings struct {
	Configured      bool  `json:"configured"`
	DemoMode        bool  `json:"demo_mode"`
	AnalysisEnabled *bool `json:"analysis_enabled,omitempty"`
}

// FileStore persists configuration and the auth session under dir.
type FileStore struct {
	dir string
	mu  sync.Mutex
}

// NewFileStore returns a store rooted at dir. The directory must exist.
func NewFileStore(dir string) *FileStore { return &FileStore{dir: dir} }

func (s *FileStore) path(name string) string { return filepath.Join(s.dir, name) }

// ---------- Credential ----------

func (s *FileStore) SetCredential(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	secret, err := s.installSecret()
	if err != nil {
		return err
	}
	N, r, p := scryptParamsDefault()
	sealed, err := seal(secret, []byte(key), N, r, p)
	if err != nil {
		return err
	}
	return writeFile(s.path(credentialFile), sealed, 0o600)
}

func (s *FileStore) Credential() (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sealed, err := readFile(s.path(credentialFile))
	if err != nil {
		return "", false, err
	}
	if sealed == nil {
		return "", false, nil
	}
	secret, err := s.installSecret()
	if err != nil {
		return "", false, err
	}
	raw, err := unseal(secret, sealed)
	if err != nil {
		return "", false, err
	}
	return string(raw), true, nil
}

// installSecret loads the per-install secret, generating it on first use.
// Caller holds s.mu.
func (s *FileStore) installSecret() ([]byte, error) {
	b, err := readFile(s.path(secretFile))
	if err != nil {
		return nil, err
	}
	if b != nil {
		return b, nil
	}
	b = make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return nil, err
	}
	if err := writeFile(s.path(secretFile), b, 0o600); err != nil {
		return nil, err
	}
	return b, nil
}

// ---------- Settings flags ----------

func (s *FileStore) SetConfigured(v bool) error {
	return s.updateSettings(func(st *settings) { st.Configured = v })
}

func (s *FileStore) SetDemoMode(v bool) error {
	return s.updateSettings(func(st *settings) { st.DemoMode = v })
}

func (s *FileStore) SetAnalysisEnabled(v bool) error {
	return s.updateSettings(func(st *settings) { st.AnalysisEnabled = &v })
}

func (s *FileStore) Settings() (domain.Settings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var st settings
	if _, err := readJSON(s.path(settingsFile), &st); err != nil {
		return domain.Settings{}, err
	}
	out := domain.Settings{
		Configured:      st.Configured,
		DemoMode:        st.DemoMode,
		AnalysisEnabled: true, // default when never written
	}
	if st.AnalysisEnabled != nil {
		out.AnalysisEnabled = *st.AnalysisEnabled
	}
	return out, nil
}

func (s *FileStore) updateSettings(mutate func(*settings)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var st settings
	if _, err := readJSON(s.path(settingsFile), &st); err != nil {
		return err
	}
	mutate(&st)
	return writeJSON(s.path(settingsFile), st, 0o600)
}

// ---------- Session ----------

func (s *FileStore) SaveSession(sess domain.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return writeJSON(s.path(sessionFile), sess, 0o600)
}

func (s *FileStore) LoadSession() (domain.Session, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var sess domain.Session
	found, err := readJSON(s.path(sessionFile), &sess)
	if err != nil {
		return domain.Session{}, false, err
	}
	return sess, found, nil
}

var (
	_ domain.ConfigStore  = (*FileStore)(nil)
	_ domain.SessionStore = (*FileStore)(nil)
)
