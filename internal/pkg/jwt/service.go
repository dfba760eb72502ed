package jwt

import (
	"errors"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrTokenExpired = errors.New("token expired")
	ErrTokenInvalid = errors.New("token invalid")
)

// Claims are the identity a token proves. Validity is signature plus expiry;
// there is no server-side session and no revocation before expiry.
type Claims struct {
	UserID uuid.UUID `json:"user_id"`
	Name   string    `json:"name"`

	jwtlib.RegisteredClaims
}

type Service interface {
	Issue(userID uuid.UUID, name string) (string, error)
	Verify(tokenString string) (Claims, error)
}

type HMACService struct {
	secret   []byte
	lifetime time.Duration

	now func() time.Time
}

func NewHMACService(secret string, lifetime time.Duration) *HMACService {
	return &HMACService{
		secret:   []byte(secret),
		lifetime: lifetime,
		now:      time.Now,
	}
}

func (s *HMACService) Issue(userID uuid.UUID, name string) (string, error) {
	if len(s.secret) == 0 || s.lifetime <= 0 {
		return "", ErrTokenInvalid
	}

	now := s.now().UTC()
	c := Claims{
		UserID: userID,
		Name:   name,
		RegisteredClaims: jwtlib.RegisteredClaims{
			IssuedAt:  jwtlib.NewNumericDate(now),
			ExpiresAt: jwtlib.NewNumericDate(now.Add(s.lifetime)),
			Subject:   userID.String(),
		},
	}

	t := jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, c)
	return t.SignedString(s.secret)
}

func (s *HMACService) Verify(tokenString string) (Claims, error) {
	p := jwtlib.NewParser(
		jwtlib.WithValidMethods([]string{jwtlib.SigningMethodHS256.Alg()}),
		jwtlib.WithTimeFunc(func() time.Time { return s.now() }),
	)

	var c Claims
	tok, err := p.ParseWithClaims(tokenString, &c, func(token *jwtlib.Token) (any, error) {
		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwtlib.ErrTokenExpired) {
			return Claims{}, ErrTokenExpired
		}
		return Claims{}, ErrTokenInvalid
	}
	if tok == nil || !tok.Valid {
		return Claims{}, ErrTokenInvalid
	}
	if c.UserID == uuid.Nil {
		return Claims{}, ErrTokenInvalid
	}

	return c, nil
}
