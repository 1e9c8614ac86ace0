package hmactoken

import (
	"context"
	"errors"
	"strings"
	"time"

	"reptile-husbandry/internal/ports/auth"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrSecretEmpty  = errors.New("signing secret is empty")
	ErrTokenEmpty   = errors.New("token is empty")
	ErrTokenInvalid = errors.New("token is invalid")
)

// DefaultTTL es la vida útil del token de sesión.
const DefaultTTL = 10 * time.Minute

// Config del firmador/verificador HMAC.
// Secret normalmente viene de JWT_SECRET en el servicio que lo instancie.
type Config struct {
	Secret string

	// TTL opcional; si es <= 0 se usa DefaultTTL.
	TTL time.Duration
}

// Service implementa auth.TokenIssuer y auth.TokenVerifier con
// JWT HS256 firmados localmente. El payload lleva userId, igual que
// el contrato original de la API.
type Service struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

type sessionClaims struct {
	UserID int64 `json:"userId"`
	jwt.RegisteredClaims
}

func New(cfg Config) (*Service, error) {
	secret := strings.TrimSpace(cfg.Secret)
	if secret == "" {
		return nil, ErrSecretEmpty
	}

	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = DefaultTTL
	}

	return &Service{
		secret: []byte(secret),
		ttl:    ttl,
		now:    time.Now,
	}, nil
}

func (s *Service) Issue(ctx context.Context, userID int64) (string, error) {
	if userID <= 0 {
		return "", errors.New("user id required")
	}

	now := s.now()
	claims := sessionClaims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

func (s *Service) Verify(ctx context.Context, token string) (auth.Claims, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return auth.Claims{}, ErrTokenEmpty
	}

	var claims sessionClaims
	parsed, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (any, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil || !parsed.Valid {
		return auth.Claims{}, ErrTokenInvalid
	}

	if claims.UserID <= 0 {
		return auth.Claims{}, ErrTokenInvalid
	}

	return auth.Claims{UserID: claims.UserID}, nil
}
