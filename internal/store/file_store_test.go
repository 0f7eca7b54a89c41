// internal/store/file_store_test.go
package store_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"spiral/internal/domain"
	"spiral/internal/store"
)

func TestCredential_SetGet_OK(t *testing.T) {
	home := t.TempDir()
	var cfg domain.ConfigStore = store.NewFileStore(home)

	if _, ok, err := cfg.Credential(); err != nil || ok {
		t.Fatalf("fresh store: ok=%v err=%v, want absent", ok, err)
	}

	if err := cfg.SetCredential("sk-ant-abc123"); err != nil {
		t.Fatalf("set credential: %v", err)
	}
	got, ok, err := cfg.Credential()
	if err != nil {
		t.Fatalf("get credential: %v", err)
	}
	if !ok || got != "sk-ant-abc123" {
		t.Fatalf("credential = %q ok=%v, want sk-ant-abc123", got, ok)
	}
}

func TestCredential_NotStoredInPlaintext(t *testing.T) {
	home := t.TempDir()
	cfg := store.NewFileStore(home)

	if err := cfg.SetCredential("sk-ant-secret-value"); err != nil {
		t.Fatalf("set credential: %v", err)
	}
	b, err := os.ReadFile(filepath.Join(home, "credential.enc"))
	if err != nil {
		t.Fatalf("read credential file: %v", err)
	}
	if bytes.Contains(b, []byte("sk-ant-secret-value")) {
		t.Fatal("credential stored in plaintext")
	}
}

func TestSettings_DefaultsAndWrites(t *testing.T) {
	home := t.TempDir()
	var cfg domain.ConfigStore = store.NewFileStore(home)

	st, err := cfg.Settings()
	if err != nil {
		t.Fatalf("settings: %v", err)
	}
	if st.Configured || st.DemoMode {
		t.Fatalf("fresh settings = %+v, want unconfigured", st)
	}
	if !st.AnalysisEnabled {
		t.Fatal("analysis should default to enabled")
	}

	if err := cfg.SetConfigured(true); err != nil {
		t.Fatalf("set configured: %v", err)
	}
	if err := cfg.SetDemoMode(true); err != nil {
		t.Fatalf("set demo: %v", err)
	}
	if err := cfg.SetAnalysisEnabled(false); err != nil {
		t.Fatalf("set analysis: %v", err)
	}

	st, err = cfg.Settings()
	if err != nil {
		t.Fatalf("settings: %v", err)
	}
	if !st.Configured || !st.DemoMode || st.AnalysisEnabled {
		t.Fatalf("settings = %+v, want configured demo analysis-off", st)
	}
}

func TestSettings_WritesDontClobberOtherFlags(t *testing.T) {
	home := t.TempDir()
	cfg := store.NewFileStore(home)

	if err := cfg.SetAnalysisEnabled(false); err != nil {
		t.Fatalf("set analysis: %v", err)
	}
	if err := cfg.SetConfigured(true); err != nil {
		t.Fatalf("set configured: %v", err)
	}

	st, err := cfg.Settings()
	if err != nil {
		t.Fatalf("settings: %v", err)
	}
	if st.AnalysisEnabled {
		t.Fatal("configured write reset the analysis flag")
	}
}

func TestSession_SaveLoad(t *testing.T) {
	home := t.TempDir()
	var sessions domain.SessionStore = store.NewFileStore(home)

	if _, ok, err := sessions.LoadSession(); err != nil || ok {
		t.Fatalf("fresh store: ok=%v err=%v, want absent", ok, err)
	}

	in := domain.Session{UserID: "anon-42", AccessToken: "tok"}
	if err := sessions.SaveSession(in); err != nil {
		t.Fatalf("save session: %v", err)
	}
	got, ok, err := sessions.LoadSession()
	if err != nil || !ok {
		t.Fatalf("load session: ok=%v err=%v", ok, err)
	}
	if got.UserID != in.UserID || got.AccessToken != in.AccessToken {
		t.Fatalf("session = %+v, want %+v", got, in)
	}
}
