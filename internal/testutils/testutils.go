package testutils

import (
	"testing"
	"time"

	"github.com/nfrund/profileview/internal/config"
)

// SessionSecret is a cookie-store key long enough to pass config validation.
const SessionSecret = "a-very-secret-key-for-testing-!!"

// ConfigForTests returns a valid configuration pointing at profileAPIURL.
// Tests get their own copy and may adjust it before use.
func ConfigForTests(t *testing.T, profileAPIURL string) *config.Config {
	t.Helper()

	return &config.Config{
		Addr:               ":0",
		SessionSecret:      SessionSecret,
		ProfileAPIURL:      profileAPIURL,
		ProfileAPITimeout:  5 * time.Second,
		LoginURL:           "/login",
		AuthServiceURL:     "https://auth.example.com/signin",
		CredentialCookie:   "auth_token",
		RateLimitPerMinute: 1000,
		LogFormat:          "text",
		LogLevel:           "error",
	}
}
