package utils

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// SessionClaims are carried by the session cookie. ID is the Redis session
// key, Subject the user id.
type SessionClaims struct {
	jwt.RegisteredClaims
}

func (c *SessionClaims) SessionID() (uuid.UUID, error) {
	return uuid.Parse(c.ID)
}

func (c *SessionClaims) UserID() (int64, error) {
	return strconv.ParseInt(c.Subject, 10, 64)
}

// GenerateSessionToken signs an HS256 token for the given session.
func GenerateSessionToken(secret []byte, sessionID uuid.UUID, userID int64, issuedAt time.Time, ttl time.Duration) (string, error) {
	claims := &SessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        sessionID.String(),
			Subject:   strconv.FormatInt(userID, 10),
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(issuedAt.Add(ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

// VerifySessionToken parses and validates a session token string.
func VerifySessionToken(tokenStr string, secret []byte) (*SessionClaims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &SessionClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return secret, nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*SessionClaims)
	if !ok || !token.Valid {
		return nil, jwt.ErrSignatureInvalid
	}
	if claims.ID == "" || claims.Subject == "" {
		return nil, errors.New("session token is missing its id or subject")
	}
	return claims, nil
}
