package tokens

import (
	"context"
	"testing"
	"time"

	"github.com/nwpolishing/backend/internal/config"
	"github.com/nwpolishing/backend/internal/operators"
	"github.com/stretchr/testify/require"
)

func testConfig(secret string) *config.Config {
	return &config.Config{JWT: config.JWTConfig{Secret: secret}}
}

func TestGenerateAndVerifyAccessToken(t *testing.T) {
	cfg := testConfig("unit-test-secret")
	op := &operators.Operator{ID: "op-1", Name: "Staff User", Email: "staff@nwpolishing.co.uk"}

	raw, err := GenerateAccessToken(cfg, op, 15*time.Minute)
	require.NoError(t, err)
	require.NotEmpty(t, raw)

	ver := NewLocalVerifier("unit-test-secret")
	tok, err := ver.Verify(context.Background(), raw)
	require.NoError(t, err)

	var claims map[string]interface{}
	require.NoError(t, tok.Claims(&claims))
	require.Equal(t, "op-1", claims["sub"])
	require.Equal(t, "staff@nwpolishing.co.uk", claims["email"])
}

func TestVerify_WrongSecret(t *testing.T) {
	cfg := testConfig("secret-a")
	op := &operators.Operator{ID: "op-1"}
	raw, err := GenerateAccessToken(cfg, op, time.Minute)
	require.NoError(t, err)

	ver := NewLocalVerifier("secret-b")
	_, err = ver.Verify(context.Background(), raw)
	require.Error(t, err)
}

func TestVerify_Expired(t *testing.T) {
	cfg := testConfig("secret-a")
	op := &operators.Operator{ID: "op-1"}
	raw, err := GenerateAccessToken(cfg, op, -time.Minute)
	require.NoError(t, err)

	ver := NewLocalVerifier("secret-a")
	_, err = ver.Verify(context.Background(), raw)
	require.Error(t, err)
}
