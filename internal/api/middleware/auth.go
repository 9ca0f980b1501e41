package middleware

import (
	"context"
	"net/http"

	"code_arena/internal/app/service"
	"code_arena/internal/common"
	"code_arena/internal/common/security"
	"code_arena/internal/domain/model"

	"github.com/go-chi/jwtauth/v5"
)

type contextKey string

const userCtxKey contextKey = "currentUser"

// Authenticator requires a valid bearer token and resolves its subject
// (email) to a persisted user, which is placed on the request context.
// jwtauth.Verifier must run earlier in the chain.
func Authenticator(authService *service.AuthService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, claims, err := jwtauth.FromContext(r.Context())
			if err != nil || token == nil {
				common.RespondWithError(w, http.StatusUnauthorized, "Could not validate credentials")
				return
			}

			email, err := security.GetSubjectFromClaims(claims)
			if err != nil {
				common.RespondWithError(w, http.StatusUnauthorized, "Could not validate credentials")
				return
			}

			user, err := authService.Authenticate(r.Context(), email)
			if err != nil {
				common.RespondWithError(w, common.HTTPStatusFromError(err), "Could not validate credentials")
				return
			}

			ctx := context.WithValue(r.Context(), userCtxKey, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func GetUserFromContext(ctx context.Context) (*model.User, bool) {
	user, ok := ctx.Value(userCtxKey).(*model.User)
	return user, ok
}
