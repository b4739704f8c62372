package token

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/exp/slog"
)

// DefaultTTL is the lifetime of an access token.
const DefaultTTL = 15 * time.Minute

type Servicer interface {
	Issue(ctx context.Context, userID int, email string) (string, error)
	Parse(ctx context.Context, token string) (Claims, error)
}

// Claims - полезная нагрузка токена: sub = id пользователя, email.
type Claims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// UserID decodes the subject claim.
func (c Claims) UserID() (int, error) {
	id, err := strconv.Atoi(c.Subject)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: bad subject %q", ErrInvalid, c.Subject)
	}
	return id, nil
}

// Issuer выпускает и проверяет stateless-токены HS256.
type Issuer struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
	log    *slog.Logger
}

func NewIssuer(secret string, ttl time.Duration, log *slog.Logger) *Issuer {
	if ttl <= 0 {
		ttl = DefaultTTL
	}

	return &Issuer{
		secret: []byte(secret),
		ttl:    ttl,
		now:    time.Now,
		log:    log.With("component", "token_issuer"),
	}
}

func (i *Issuer) Issue(_ context.Context, userID int, email string) (string, error) {
	now := i.now()

	claims := Claims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.Itoa(userID),
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(i.ttl)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}

	return signed, nil
}

func (i *Issuer) Parse(_ context.Context, tokenString string) (Claims, error) {
	var claims Claims

	token, err := jwt.ParseWithClaims(tokenString, &claims,
		func(t *jwt.Token) (any, error) {
			return i.secret, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(i.now),
	)
	if err != nil {
		i.log.Debug("token rejected", "error", err)
		if errors.Is(err, jwt.ErrTokenExpired) {
			return Claims{}, ErrExpired
		}
		return Claims{}, fmt.Errorf("%w: %v", ErrInvalid, err)
	}

	if !token.Valid {
		return Claims{}, ErrInvalid
	}

	return claims, nil
}
