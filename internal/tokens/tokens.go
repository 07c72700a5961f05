package tokens

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/nwpolishing/backend/internal/config"
	"github.com/nwpolishing/backend/internal/operators"
	"github.com/nwpolishing/backend/pkg/middleware"
)

// GenerateAccessToken creates a signed JWT access token for the operator
func GenerateAccessToken(cfg *config.Config, op *operators.Operator, ttl time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"sub":   op.ID,
		"name":  op.Name,
		"email": op.Email,
		"iat":   time.Now().Unix(),
		"exp":   time.Now().Add(ttl).Unix(),
	}
	jt := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return jt.SignedString([]byte(cfg.JWT.Secret))
}

// localToken adapts parsed JWT claims to the middleware.Token interface.
type localToken struct {
	claims jwt.MapClaims
}

func (t *localToken) Claims(v interface{}) error {
	b, err := json.Marshal(t.claims)
	if err != nil {
		return err
	}
	return json.Unmarshal(b, v)
}

// LocalVerifier verifies HS256 access tokens issued by this service. It is
// the default operator verifier when no external OIDC issuer is configured.
type LocalVerifier struct {
	secret []byte
}

func NewLocalVerifier(secret string) *LocalVerifier {
	return &LocalVerifier{secret: []byte(secret)}
}

func (v *LocalVerifier) Verify(ctx context.Context, raw string) (middleware.Token, error) {
	parsed, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return v.secret, nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	if err != nil {
		return nil, err
	}
	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok || !parsed.Valid {
		return nil, fmt.Errorf("invalid token claims")
	}
	return &localToken{claims: claims}, nil
}
