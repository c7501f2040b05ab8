package auth

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims defines the JWT claims carried by the session cookie. The token
// does not authenticate a user; it only pins a client to its session key
// so the key cannot be forged.
type Claims struct {
	SessionID string `json:"sessionId"`
	jwt.RegisteredClaims
}

// SessionIDKey is the context key for the request's session id.
type contextKey string

const SessionIDKey = contextKey("sessionID")

// SessionCookieName is the cookie the session token rides in.
const SessionCookieName = "session"

// GenerateSessionToken creates a signed token for a session id.
func GenerateSessionToken(secret []byte, sessionID string, ttl time.Duration) (string, error) {
	claims := &Claims{
		SessionID: sessionID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

// ValidateSessionToken parses and validates a session token string.
func ValidateSessionToken(secret []byte, tokenStr string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		return secret, nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}
	return claims, nil
}

// SessionMiddleware resolves the caller's session id from the session
// cookie, minting a fresh session (and cookie) when the cookie is missing,
// expired or tampered with. The id is passed down via the request context.
func SessionMiddleware(secret []byte, ttl time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var sessionID string

			if cookie, err := r.Cookie(SessionCookieName); err == nil {
				if claims, err := ValidateSessionToken(secret, cookie.Value); err == nil {
					sessionID = claims.SessionID
				}
			}

			if sessionID == "" {
				sessionID = uuid.New().String()

				token, err := GenerateSessionToken(secret, sessionID, ttl)
				if err != nil {
					w.Header().Set("Content-Type", "application/json")
					w.WriteHeader(http.StatusInternalServerError)
					w.Write([]byte(`{"error":"Failed to create session"}`))
					return
				}

				// Set Secure flag based on environment.
				isProd := os.Getenv("APP_ENV") == "production"

				http.SetCookie(w, &http.Cookie{
					Name:     SessionCookieName,
					Value:    token,
					Expires:  time.Now().Add(ttl),
					HttpOnly: true,
					Secure:   isProd,
					SameSite: http.SameSiteStrictMode,
					Path:     "/",
				})
			}

			ctx := context.WithValue(r.Context(), SessionIDKey, sessionID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// SessionIDFromContext returns the session id stored by SessionMiddleware.
func SessionIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(SessionIDKey).(string)
	return id
}
