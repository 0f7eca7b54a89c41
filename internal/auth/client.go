package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"spiral/internal/domain"
)

// anonymousPath is the sign-in endpoint on the auth service.
const anonymousPath = "/v1/auth/anonymous"

// HTTPClient talks to the auth service over JSON/HTTP.
type HTTPClient struct {
	Base string
	HTTP *http.Client
}

// NewHTTP returns a client for the service at base.
func NewHTTP(base string, httpClient *http.Client) *HTTPClient {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &HTTPClient{Base: base, HTTP: httpClient}
}

type anonymousResponse struct {
	UserID      string    `json:"user_id"`
	AccessToken string    `json:"access_token"`
	ExpiresAt   time.Time `json:"expires_at"`
}

// AnonymousSignIn requests a fresh anonymous session.
func (c *HTTPClient) AnonymousSignIn(ctx context.Context) (domain.Session, error) {
	u := c.Base + anonymousPath
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u, nil)
	if err != nil {
		return domain.Session{}, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return domain.Session{}, err
	}
	defer resp.Body.Close()
	if resp.StatusCode/100 != 2 {
		return domain.Session{}, fmt.Errorf("auth post %s: %s", u, resp.Status)
	}

	var out anonymousResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return domain.Session{}, err
	}
	if out.UserID == "" || out.AccessToken == "" {
		return domain.Session{}, fmt.Errorf("auth post %s: incomplete session in response", u)
	}
	return domain.Session{
		UserID:      out.UserID,
		AccessToken: out.AccessToken,
		ExpiresAt:   out.ExpiresAt,
	}, nil
}

var _ domain.Authenticator = (*HTTPClient)(nil)
