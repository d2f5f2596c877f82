package middleware

import (
	"context"
	"net/http"

	"github.com/pubudubandara/portfolio-new/internal/auth"
	"github.com/pubudubandara/portfolio-new/internal/transport"
)

// SessionCookie is the HTTP-only cookie carrying the admin session token.
const SessionCookie = "token"

type sessionKey struct{}

// SessionAuth gates every mutating and upload route. A missing, malformed,
// expired or forged token is one and the same outcome for the caller.
func SessionAuth(manager *auth.Manager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if manager == nil {
				transport.WriteError(w, http.StatusServiceUnavailable, transport.CodeInternal, "admin auth not configured", nil)
				return
			}

			cookie, err := r.Cookie(SessionCookie)
			if err != nil || cookie.Value == "" {
				transport.WriteError(w, http.StatusUnauthorized, transport.CodeUnauthorized, "unauthorized", nil)
				return
			}

			claims, err := manager.Parse(cookie.Value)
			if err != nil {
				transport.WriteError(w, http.StatusUnauthorized, transport.CodeUnauthorized, "unauthorized", nil)
				return
			}

			ctx := context.WithValue(r.Context(), sessionKey{}, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func SessionFromContext(ctx context.Context) *auth.Claims {
	if v := ctx.Value(sessionKey{}); v != nil {
		if claims, ok := v.(*auth.Claims); ok {
			return claims
		}
	}
	return nil
}
