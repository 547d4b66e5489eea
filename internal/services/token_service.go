package services

import (
	"fmt"
	"time"

	"github.com/dgrijalva/jwt-go"
)

// VerifyOutcome classifies why token verification failed. The external
// contract stays a single pass/fail; the outcome exists for logging.
type VerifyOutcome int

const (
	VerifyOK VerifyOutcome = iota
	VerifyExpired
	VerifyBadSignature
	VerifyMalformed
)

func (o VerifyOutcome) String() string {
	switch o {
	case VerifyOK:
		return "ok"
	case VerifyExpired:
		return "expired"
	case VerifyBadSignature:
		return "bad signature"
	default:
		return "malformed"
	}
}

// TokenService issues and verifies signed, time-limited identity tokens.
type TokenService struct {
	secret []byte
	method jwt.SigningMethod
	ttl    time.Duration
}

// NewTokenService creates a TokenService with the given secret, signing
// algorithm name (HMAC family; unknown names fall back to HS256) and token
// lifetime in minutes.
func NewTokenService(secret, algorithm string, ttlMinutes int) *TokenService {
	method := jwt.GetSigningMethod(algorithm)
	if _, ok := method.(*jwt.SigningMethodHMAC); !ok {
		method = jwt.SigningMethodHS256
	}
	return &TokenService{
		secret: []byte(secret),
		method: method,
		ttl:    time.Duration(ttlMinutes) * time.Minute,
	}
}

// Issue signs the caller-supplied claims after stamping an expiration of
// now + TTL, returning the encoded token string.
func (s *TokenService) Issue(claims jwt.MapClaims) (string, error) {
	toEncode := jwt.MapClaims{}
	for k, v := range claims {
		toEncode[k] = v
	}
	toEncode["exp"] = time.Now().Add(s.ttl).Unix()

	token := jwt.NewWithClaims(s.method, toEncode)
	tokenString, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return tokenString, nil
}

// Verify decodes and validates a token, returning its claims on success and
// nil on any failure. Callers that need the failure cause use VerifyDetailed.
func (s *TokenService) Verify(tokenString string) jwt.MapClaims {
	claims, outcome := s.VerifyDetailed(tokenString)
	if outcome != VerifyOK {
		return nil
	}
	return claims
}

// VerifyDetailed decodes and validates a token, tagging failures as expired,
// bad signature or malformed.
func (s *TokenService) VerifyDetailed(tokenString string) (jwt.MapClaims, VerifyOutcome) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		if vErr, ok := err.(*jwt.ValidationError); ok {
			switch {
			case vErr.Errors&jwt.ValidationErrorExpired != 0:
				return nil, VerifyExpired
			case vErr.Errors&jwt.ValidationErrorSignatureInvalid != 0:
				return nil, VerifyBadSignature
			}
		}
		return nil, VerifyMalformed
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, VerifyMalformed
	}
	return claims, VerifyOK
}
