package utils

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-note-keeper/models"
	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidTokenParams is returned by [GenerateJWTToken] when a required
// parameter is empty or zero.
var ErrInvalidTokenParams = errors.New("invalid params for generating JWT Token")

// GenerateJWTToken creates a signed HMAC-SHA256 JWT token.
//
// The token includes the following standard claims:
//   - Issuer    (iss): identifies the service that issued the token
//   - Subject   (sub): the account email
//   - ID        (jti): unique token id, used to revoke the token on logout
//   - IssuedAt  (iat): now
//   - ExpiresAt (exp): now plus tokenDuration, rounded up to a whole second
//
// now is passed in so callers control the clock.
//
// Example usage:
//
//	token, err := utils.GenerateJWTToken("notes", "a@b.co", id, time.Now(), 30*time.Minute, "secret")
func GenerateJWTToken(issuer, subject, tokenID string, now time.Time, tokenDuration time.Duration, signKey string) (models.Token, error) {
	if issuer == "" || subject == "" || tokenID == "" || tokenDuration <= 0 || signKey == "" {
		return models.Token{}, ErrInvalidTokenParams
	}

	claims := jwt.RegisteredClaims{
		Issuer:    issuer,
		Subject:   subject,
		ID:        tokenID,
		ExpiresAt: jwt.NewNumericDate(ceilSecond(now.Add(tokenDuration))),
		IssuedAt:  jwt.NewNumericDate(now),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(signKey))
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during signing JWT token: %w", err)
	}

	return models.Token{Token: token, RegisteredClaims: claims, SignedString: tokenString}, nil
}

// ValidateAndParseJWTToken validates the given JWT token string and extracts its claims.
//
// Validation includes:
//   - Signature verification with HS256 and the provided sign key
//   - Issuer (iss) claim check against tokenIssuer
//   - Expiration (exp) claim presence; the token is expired once now is
//     past exp, so a token checked at exactly exp is still valid
//   - Subject (sub) claim presence
//
// The returned error wraps the jwt/v5 sentinel errors, so callers can tell
// an expired token apart with errors.Is(err, jwt.ErrTokenExpired).
func ValidateAndParseJWTToken(tokenString, tokenSignKey, tokenIssuer string, now time.Time) (models.Token, error) {
	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return []byte(tokenSignKey), nil
	},
		jwt.WithIssuer(tokenIssuer),
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(func() time.Time { return now }),
		// jwt/v5 treats now == exp as expired; the leeway moves that edge
		// and the check below restores the exact boundary
		jwt.WithLeeway(time.Second),
	)
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred validating and parsing token: %w", err)
	}
	if now.After(claims.ExpiresAt.Time) {
		return models.Token{}, fmt.Errorf("error occurred validating and parsing token: %w", jwt.ErrTokenExpired)
	}

	if claims.Subject == "" {
		return models.Token{}, fmt.Errorf("%w: empty subject", jwt.ErrTokenInvalidSubject)
	}

	return models.Token{Token: token, RegisteredClaims: *claims, SignedString: tokenString}, nil
}

// ceilSecond rounds t up to the next whole second. exp is stored with second
// precision and must never fall before the requested lifetime ends.
func ceilSecond(t time.Time) time.Time {
	if truncated := t.Truncate(time.Second); !truncated.Equal(t) {
		return truncated.Add(time.Second)
	}
	return t
}

// ParseBearerToken extracts the token from an "Authorization: Bearer <token>"
// header value.
func ParseBearerToken(authorizationHeader string) (string, error) {
	parts := strings.Fields(authorizationHeader)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", errors.New("invalid authorization header")
	}
	return parts[1], nil
}
