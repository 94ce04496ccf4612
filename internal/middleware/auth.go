package middleware

import (
	"context"
	"net/http"

	"koffiehuis-be/internal/auth"
	"koffiehuis-be/internal/utils"
)

type contextKey string

const PrincipalKey contextKey = "principal"

// PrincipalFrom returns the verified principal attached by RequireAdmin.
func PrincipalFrom(ctx context.Context) (auth.Principal, bool) {
	p, ok := ctx.Value(PrincipalKey).(auth.Principal)
	return p, ok
}

// RequireAdmin rejects requests without a valid bearer token carrying
// the admin role, and attaches the principal to the request context.
func RequireAdmin(authSvc *auth.Service) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tokenStr := auth.ExtractBearer(r)
			if tokenStr == "" {
				utils.WriteJSONError(w, "No token provided", http.StatusUnauthorized)
				return
			}

			principal, err := authSvc.Verify(tokenStr)
			if err != nil {
				utils.WriteJSONError(w, "Invalid or expired token", http.StatusUnauthorized)
				return
			}

			if principal.Role != "admin" {
				utils.WriteJSONError(w, "Admin access required", http.StatusForbidden)
				return
			}

			ctx := context.WithValue(r.Context(), PrincipalKey, principal)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
