package auth_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"spiral/internal/auth"
)

func TestAnonymousSignIn_OK(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/v1/auth/anonymous" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
			http.NotFound(w, r)
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"user_id":      "anon-7",
			"access_token": "tok-7",
			"expires_at":   time.Now().Add(time.Hour).UTC(),
		})
	}))
	defer srv.Close()

	c := auth.NewHTTP(srv.URL, srv.Client())
	sess, err := c.AnonymousSignIn(context.Background())
	if err != nil {
		t.Fatalf("sign in: %v", err)
	}
	if sess.UserID != "anon-7" || sess.AccessToken != "tok-7" {
		t.Fatalf("session = %+v", sess)
	}
	if sess.Expired(time.Now()) {
		t.Fatal("fresh session already expired")
	}
}

func TestAnonymousSignIn_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := auth.NewHTTP(srv.URL, srv.Client())
	if _, err := c.AnonymousSignIn(context.Background()); err == nil {
		t.Fatal("expected error on 500")
	}
}

func TestAnonymousSignIn_IncompleteBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{"user_id": "anon-7"})
	}))
	defer srv.Close()

	c := auth.NewHTTP(srv.URL, srv.Client())
	if _, err := c.AnonymousSignIn(context.Background()); err == nil {
		t.Fatal("expected error on incomplete session")
	}
}

func TestAnonymousSignIn_ContextCancelled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	c := auth.NewHTTP(srv.URL, srv.Client())
	if _, err := c.AnonymousSignIn(ctx); err == nil {
		t.Fatal("expected context deadline error")
	}
}
