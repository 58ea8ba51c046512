package middleware

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pontopro/backend/internal/models"
	"github.com/pontopro/backend/internal/services"
)

type contextKey string

const sessionKey contextKey = "session"

// RevocationChecker reports whether a token was revoked by a logout
type RevocationChecker interface {
	IsRevoked(ctx context.Context, token string) (bool, error)
}

// ProfileLoader resolves the profile behind a session
type ProfileLoader interface {
	Load(ctx context.Context, session *models.Session) (*models.User, error)
}

// Authenticator validates bearer tokens issued by the identity provider
type Authenticator struct {
	secret  []byte
	revoked RevocationChecker
}

func NewAuthenticator(secret string, revoked RevocationChecker) *Authenticator {
	return &Authenticator{
		secret:  []byte(secret),
		revoked: revoked,
	}
}

// WithSession stores the session in ctx
func WithSession(ctx context.Context, session *models.Session) context.Context {
	return context.WithValue(ctx, sessionKey, session)
}

// SessionFromContext returns the session placed by Authenticate
func SessionFromContext(ctx context.Context) (*models.Session, bool) {
	session, ok := ctx.Value(sessionKey).(*models.Session)
	return session, ok && session != nil
}

func (a *Authenticator) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			services.SendErrorResponse(w, "Authorization header required", http.StatusUnauthorized, nil)
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
			services.SendErrorResponse(w, "Invalid authorization header format", http.StatusUnauthorized, nil)
			return
		}
		token := parts[1]

		session, err := a.validateToken(token)
		if err != nil {
			log.Printf("[AUTH] Rejected token: %v", err)
			services.SendErrorResponse(w, "Invalid token", http.StatusUnauthorized, nil)
			return
		}

		if a.revoked != nil {
			revoked, err := a.revoked.IsRevoked(r.Context(), token)
			if err != nil {
				log.Printf("[AUTH] Blacklist lookup failed: %v", err)
				services.SendErrorResponse(w, "Session check unavailable", http.StatusServiceUnavailable, nil)
				return
			}
			if revoked {
				services.SendErrorResponse(w, "Session has ended", http.StatusUnauthorized, nil)
				return
			}
		}

		next.ServeHTTP(w, r.WithContext(WithSession(r.Context(), session)))
	})
}

func (a *Authenticator) validateToken(tokenString string) (*models.Session, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		return a.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithExpirationRequired())
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, errors.New("token is not valid")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.New("unexpected claims type")
	}

	sub, err := claims.GetSubject()
	if err != nil || sub == "" {
		return nil, fmt.Errorf("token has no subject")
	}

	session := &models.Session{UserID: sub, AccessToken: tokenString}
	if email, ok := claims["email"].(string); ok {
		session.Email = email
	}
	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		session.ExpiresAt = exp.Time
	}
	return session, nil
}

// RequireAdmin loads the caller's profile once and admits administrators only
func RequireAdmin(profiles ProfileLoader) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			session, ok := SessionFromContext(r.Context())
			if !ok {
				services.SendErrorResponse(w, "Unauthorized", http.StatusUnauthorized, nil)
				return
			}

			profile, err := profiles.Load(r.Context(), session)
			if errors.Is(err, services.ErrNotFound) {
				services.SendErrorResponse(w, "Unauthorized", http.StatusUnauthorized, nil)
				return
			}
			if err != nil {
				log.Printf("[AUTH] Profile lookup failed for %s: %v", session.UserID, err)
				services.SendErrorResponse(w, "Failed to load profile", http.StatusInternalServerError, nil)
				return
			}
			if !profile.IsAdmin() {
				log.Printf("[AUTH] Access denied for %s (perfil=%s)", session.UserID, profile.Perfil)
				services.SendErrorResponse(w, "access denied", http.StatusForbidden, nil)
				return
			}

			withProfile := *session
			withProfile.Profile = profile
			next.ServeHTTP(w, r.WithContext(WithSession(r.Context(), &withProfile)))
		})
	}
}

// SecurityHeaders sets conservative browser security headers
func SecurityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()
		h.Set("X-Content-Type-Options", "nosniff")
		h.Set("X-Frame-Options", "DENY")
		h.Set("Referrer-Policy", "no-referrer")
		next.ServeHTTP(w, r)
	})
}

// ClientIP is the caller address after chi's RealIP rewrote RemoteAddr
func ClientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
