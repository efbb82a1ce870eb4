package jwt

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/kemalettinboyukdikmen-cmd/KODE-Official/internal/models"
)

func TestSignParseRoundtrip(t *testing.T) {
	SetSecret("test-secret-1")

	token, err := Sign("user-1", "a@example.com", models.RoleEditor, time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := Parse(token)
	require.NoError(t, err)
	require.Equal(t, "user-1", claims.UserID)
	require.Equal(t, "a@example.com", claims.Email)
	require.Equal(t, models.RoleEditor, claims.Role)
}

func TestParseExpiredToken(t *testing.T) {
	SetSecret("test-secret-1")

	token, err := Sign("user-1", "a@example.com", models.RoleUser, -time.Minute)
	require.NoError(t, err)

	_, err = Parse(token)
	require.Error(t, err)
}

func TestParseTamperedSignature(t *testing.T) {
	SetSecret("test-secret-1")

	token, err := Sign("user-1", "a@example.com", models.RoleUser, time.Hour)
	require.NoError(t, err)

	parts := strings.Split(token, ".")
	require.Len(t, parts, 3)
	tampered := parts[0] + "." + parts[1] + "." + "AAAA" + parts[2][4:]

	_, err = Parse(tampered)
	require.Error(t, err)
}

func TestParseMalformedToken(t *testing.T) {
	SetSecret("test-secret-1")

	for _, raw := range []string{"", "garbage", "a.b", "a.b.c.d"} {
		_, err := Parse(raw)
		require.Error(t, err, "input %q", raw)
	}
}

func TestParseWrongSecret(t *testing.T) {
	SetSecret("test-secret-1")
	token, err := Sign("user-1", "a@example.com", models.RoleUser, time.Hour)
	require.NoError(t, err)

	SetSecret("test-secret-2")
	_, err = Parse(token)
	require.Error(t, err)
}
