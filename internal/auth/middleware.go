package auth

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/example/perfdash/internal/config"
)

type contextKey string

const claimsContextKey contextKey = "user_claims"

var ErrNoClaims = errors.New("no user claims in context")

// AuthMiddleware validates the access token from the cookie or the
// Authorization header and stores the claims in the request context.
func AuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tokenStr := tokenFromRequest(r)
		if tokenStr == "" {
			config.Error(w, http.StatusUnauthorized, "unauthorized")
			return
		}

		claims, err := ValidateJWT(tokenStr)
		if err != nil {
			config.WithContext(r.Context()).WithError(err).Warn("Rejected invalid access token")
			config.Error(w, http.StatusUnauthorized, "unauthorized")
			return
		}

		ctx := context.WithValue(r.Context(), claimsContextKey, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func tokenFromRequest(r *http.Request) string {
	if cookie, err := r.Cookie("access_token"); err == nil && cookie.Value != "" {
		return cookie.Value
	}
	header := r.Header.Get("Authorization")
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}
	return ""
}

func GetUserClaimsFromContext(ctx context.Context) (*Claims, error) {
	claims, ok := ctx.Value(claimsContextKey).(*Claims)
	if !ok || claims == nil {
		return nil, ErrNoClaims
	}
	return claims, nil
}

// WithClaims injects claims into ctx. Used by the lambda adapter and tests.
func WithClaims(ctx context.Context, claims *Claims) context.Context {
	return context.WithValue(ctx, claimsContextKey, claims)
}
