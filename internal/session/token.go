package session

import (
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// CookieName carries the signed session token. HttpOnly; the browser never
// needs to read it.
const CookieName = "session"

// TTL bounds how long a login lasts. There is no refresh; users log in again.
const TTL = 24 * time.Hour

// Signer issues and verifies the session token. The username travels inside
// the token as the subject claim, but it is only trusted after signature and
// expiry verification, so the client cannot forge a principal.
type Signer struct {
	Secret []byte
}

// Issue signs a token for username.
func (s Signer) Issue(username string) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": username,
		"exp": time.Now().Add(TTL).Unix(),
	})
	return token.SignedString(s.Secret)
}

// Principal verifies tokenString and returns the username it carries.
// Any failure (bad signature, wrong algorithm, expired) means
// unauthenticated, never an error surfaced to the caller.
func (s Signer) Principal(tokenString string) (string, bool) {
	if strings.TrimSpace(tokenString) == "" {
		return "", false
	}
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return s.Secret, nil
	})
	if err != nil || !token.Valid {
		return "", false
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", false
	}
	sub, _ := claims["sub"].(string)
	if strings.TrimSpace(sub) == "" {
		return "", false
	}
	return sub, true
}
