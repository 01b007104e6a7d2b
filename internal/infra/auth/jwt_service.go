// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"surplus/config"
	"surplus/internal/domain/service"
	"surplus/internal/errors"
)

const tokenIssuer = "surplus"

// ErrMalformedSubject is returned when a correctly signed token carries a subject that is not a user id.
var ErrMalformedSubject = errors.New("token subject is not a user id")

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
// Tokens are long-lived; revocation happens by removing the stored token.
type jwtService struct {
	secret []byte
}

// NewJWTService is the constructor for jwtService.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Token == "" {
		return nil, errors.New("token secret must be provided")
	}

	return &jwtService{secret: []byte(cfg.SecretKey.Token)}, nil
}

// Issue creates a signed token for the user. Every call yields a distinct token.
func (s *jwtService) Issue(userID uuid.UUID) (string, error) {
	claims := jwt.RegisteredClaims{
		Issuer:   tokenIssuer,
		Subject:  userID.String(), // Subject (who the token is for)
		IssuedAt: jwt.NewNumericDate(time.Now()),
		ID:       uuid.NewString(), // Unique token id
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", errors.Wrap(err, "failed to sign token")
	}

	return signed, nil
}

// Verify checks the signature and issuer and returns the user the token was issued to.
func (s *jwtService) Verify(tokenString string) (uuid.UUID, error) {
	claims := &jwt.RegisteredClaims{}

	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return s.secret, nil
	}, jwt.WithIssuer(tokenIssuer), jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return uuid.Nil, errors.Wrap(err, "failed to parse token")
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return uuid.Nil, ErrMalformedSubject
	}

	return userID, nil
}
