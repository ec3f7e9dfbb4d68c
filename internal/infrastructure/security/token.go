package security

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/pos-system/auth-service/internal/core/domain"
	"github.com/pos-system/auth-service/internal/core/ports"
)

const defaultTokenTTL = 24 * time.Hour

// TokenConfig is the signing configuration, loaded once at startup.
type TokenConfig struct {
	Secret     string
	Algorithm  string
	TTL        time.Duration
	BcryptCost int
}

type claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// TokenService signs HMAC JWTs and hashes passwords. It satisfies
// ports.TokenService.
type TokenService struct {
	secret    []byte
	method    jwt.SigningMethod
	ttl       time.Duration
	passwords *PasswordHasher
}

var _ ports.TokenService = (*TokenService)(nil)

// NewTokenService validates cfg and returns a ready TokenService. Only HMAC
// algorithms are accepted since the key is a shared secret.
func NewTokenService(cfg TokenConfig) (*TokenService, error) {
	if cfg.Secret == "" {
		return nil, errors.New("token service: empty signing secret")
	}
	alg := cfg.Algorithm
	if alg == "" {
		alg = jwt.SigningMethodHS256.Alg()
	}
	method, ok := jwt.GetSigningMethod(alg).(*jwt.SigningMethodHMAC)
	if !ok {
		return nil, fmt.Errorf("token service: unsupported algorithm %q", alg)
	}
	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = defaultTokenTTL
	}
	passwords, err := NewPasswordHasher(cfg.BcryptCost)
	if err != nil {
		return nil, fmt.Errorf("token service: %w", err)
	}
	return &TokenService{
		secret:    []byte(cfg.Secret),
		method:    method,
		ttl:       ttl,
		passwords: passwords,
	}, nil
}

func (s *TokenService) HashPassword(plain string) (string, error) {
	return s.passwords.Hash(plain)
}

// VerifyPassword also accepts an empty hash, which never matches but costs
// a full bcrypt comparison. Login uses it for unknown usernames.
func (s *TokenService) VerifyPassword(plain, hash string) bool {
	return s.passwords.Verify(plain, hash)
}

// IssueToken signs {sub, role, iat, exp} with exp = now + TTL.
func (s *TokenService) IssueToken(subject string, role domain.Role, now time.Time) (string, error) {
	c := claims{
		Role: string(role),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}
	signed, err := jwt.NewWithClaims(s.method, c).SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// VerifyToken accepts the token only if it was signed with the configured
// algorithm and secret, carries a subject, and now is strictly before exp.
func (s *TokenService) VerifyToken(token string, now time.Time) (*ports.TokenClaims, error) {
	var c claims
	parsed, err := jwt.ParseWithClaims(token, &c, func(*jwt.Token) (any, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{s.method.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(func() time.Time { return now }),
	)
	if err != nil || !parsed.Valid {
		return nil, domain.ErrInvalidToken
	}
	if c.Subject == "" || c.Role == "" {
		return nil, domain.ErrInvalidToken
	}
	return &ports.TokenClaims{Subject: c.Subject, Role: domain.Role(c.Role)}, nil
}
