package setup

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"spiral/internal/domain"
)

// credentialPrefix is the required literal prefix of an Anthropic API key.
const credentialPrefix = "sk-ant-"

var (
	// ErrEmptyCredential is returned when the trimmed API key is empty.
	ErrEmptyCredential = errors.New("API key is empty")

	// ErrBadCredentialFormat is returned when the API key does not start
	// with the required prefix.
	ErrBadCredentialFormat = fmt.Errorf("API key must start with %q", credentialPrefix)

	// ErrSetupInProgress is returned when Run is invoked while a prior
	// attempt is still pending. The second invocation performs no writes
	// and no auth call.
	ErrSetupInProgress = errors.New("setup already in progress")
)

// ValidateCredential trims raw and checks its shape. Emptiness takes
// precedence over the prefix check.
func ValidateCredential(raw string) (string, error) {
	key := strings.TrimSpace(raw)
	if key == "" {
		return "", ErrEmptyCredential
	}
	if !strings.HasPrefix(key, credentialPrefix) {
		return "", ErrBadCredentialFormat
	}
	return key, nil
}

// Stage identifies which step of the setup sequence failed.
type Stage string

const (
	StageConfigWrite Stage = "config-write"
	StageAuth        Stage = "auth"
)

// Error wraps a failure of one stage. Configuration persisted before
// an auth failure is left in place; the caller may retry from scratch.
type Error struct {
	Stage Stage
	Cause error
}

func (e *Error) Error() string {
	return fmt.Sprintf("setup %s failed: %v", e.Stage, e.Cause)
}

func (e *Error) Unwrap() error { return e.Cause }

// State is the sequencer's observable lifecycle state.
type State string

const (
	StateIdle      State = "idle"
	StateRunning   State = "running"
	StateSucceeded State = "succeeded"
	StateFailed    State = "failed"
)

// Mode selects how setup configures the app.
type Mode interface{ mode() }

// APIKeyMode configures the app with a validated credential, unlocking
// AI analysis.
type APIKeyMode struct {
	Credential string
}

func (APIKeyMode) mode() {}

// DemoMode configures the app without a credential; analysis is disabled.
type DemoMode struct{}

func (DemoMode) mode() {}

// Sequencer performs the ordered configure-then-authenticate handshake.
// The busy guard is owned by the instance; only one Run may be pending
// at a time.
type Sequencer struct {
	config   domain.ConfigStore
	sessions domain.SessionStore
	auth     domain.Authenticator

	mu      sync.Mutex
	running bool
	state   State
}

// New returns an idle sequencer using the given collaborators.
func New(config domain.ConfigStore, sessions domain.SessionStore, auth domain.Authenticator) *Sequencer {
	return &Sequencer{
		config:   config,
		sessions: sessions,
		auth:     auth,
		state:    StateIdle,
	}
}

// State reports the current lifecycle state.
func (s *Sequencer) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Run executes one setup attempt: persist configuration, then sign in
// anonymously and store the session. Auth is never attempted before every
// configuration write has completed. If a prior attempt is still pending,
// Run returns ErrSetupInProgress without side effects.
func (s *Sequencer) Run(ctx context.Context, m Mode) error {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		return ErrSetupInProgress
	}
	s.running = true
	s.state = StateRunning
	s.mu.Unlock()

	err := s.run(ctx, m)

	s.mu.Lock()
	s.running = false
	if err != nil {
		s.state = StateFailed
	} else {
		s.state = StateSucceeded
	}
	s.mu.Unlock()
	return err
}

func (s *Sequencer) run(ctx context.Context, m Mode) error {
	// Stage 1: configuration writes.
	if err := s.persist(m); err != nil {
		return &Error{Stage: StageConfigWrite, Cause: err}
	}

	// Stage 2: anonymous sign-in. The handshake is complete once the
	// session is stored. No rollback of stage 1 on failure.
	sess, err := s.auth.AnonymousSignIn(ctx)
	if err != nil {
		return &Error{Stage: StageAuth, Cause: err}
	}
	if err := s.sessions.SaveSession(sess); err != nil {
		return &Error{Stage: StageAuth, Cause: err}
	}
	return nil
}

func (s *Sequencer) persist(m Mode) error {
	switch m := m.(type) {
	case APIKeyMode:
		key, err := ValidateCredential(m.Credential)
		if err != nil {
			return err
		}
		if err := s.config.SetCredential(key); err != nil {
			return err
		}
		if err := s.config.SetConfigured(true); err != nil {
			return err
		}
		// analysis_enabled is left untouched; it defaults to on.
		return s.config.SetDemoMode(false)
	case DemoMode:
		if err := s.config.SetConfigured(true); err != nil {
			return err
		}
		if err := s.config.SetDemoMode(true); err != nil {
			return err
		}
		return s.config.SetAnalysisEnabled(false)
	default:
		return fmt.Errorf("unknown setup mode %T", m)
	}
}
