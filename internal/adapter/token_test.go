package adapter

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tokenExpiringAt(t *testing.T, exp time.Time) string {
	t.Helper()

	claims := jwt.RegisteredClaims{Subject: "1", ExpiresAt: jwt.NewNumericDate(exp)}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("unrelated-key"))
	require.NoError(t, err)
	return token
}

func TestIsValidTokenAt_Offsets(t *testing.T) {
	now := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name   string
		offset time.Duration
		want   bool
	}{
		{name: "expired a day ago", offset: -24 * time.Hour, want: false},
		{name: "expired a second ago", offset: -time.Second, want: false},
		{name: "expires now", offset: 0, want: false},
		{name: "expires in a second", offset: time.Second, want: true},
		{name: "expires in an hour", offset: time.Hour, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token := tokenExpiringAt(t, now.Add(tt.offset))
			assert.Equal(t, tt.want, isValidTokenAt(token, now))
		})
	}
}

func TestIsValidToken_Invalid(t *testing.T) {
	noExp, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{Subject: "1"}).SignedString([]byte("k"))
	require.NoError(t, err)

	for name, token := range map[string]string{
		"empty":          "",
		"not a jwt":      "access-1",
		"two segments":   "a.b",
		"garbage claims": "eyJhbGciOiJIUzI1NiJ9.bm90LWpzb24.sig",
		"no exp claim":   noExp,
	} {
		t.Run(name, func(t *testing.T) {
			assert.False(t, IsValidToken(token))
		})
	}
}

func TestIsValidToken_IgnoresSignature(t *testing.T) {
	assert.True(t, IsValidToken(tokenExpiringAt(t, time.Now().Add(time.Hour))))
}

func TestClient_IsValidTokenUsesClock(t *testing.T) {
	now := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	token := tokenExpiringAt(t, now.Add(time.Minute))

	c, _ := newTestClient(t, "http://localhost", WithClock(func() time.Time { return now }))
	assert.True(t, c.IsValidToken(token))

	later, _ := newTestClient(t, "http://localhost", WithClock(func() time.Time { return now.Add(2 * time.Minute) }))
	assert.False(t, later.IsValidToken(token))
}
