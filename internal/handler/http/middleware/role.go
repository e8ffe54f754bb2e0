package middleware

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"

	"github.com/kaamsetu/kaamsetu-backend-go/internal/domain/user"
	"github.com/kaamsetu/kaamsetu-backend-go/internal/handler/http/response"
)

func requireRole(role user.Role, deniedErr error) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, claims, err := jwtauth.FromContext(r.Context())
			if err != nil {
				response.HandleError(w, deniedErr)
				return
			}

			roleStr, ok := claims["role"].(string)
			if !ok || user.Role(roleStr) != role {
				response.HandleError(w, deniedErr)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// AdminOnly restricts the route to moderator accounts
func AdminOnly(next http.Handler) http.Handler {
	return requireRole(user.RoleAdmin, user.ErrAdminPrivilegeRequired)(next)
}

// RequireEmployer restricts the route to employer accounts
func RequireEmployer(next http.Handler) http.Handler {
	return requireRole(user.RoleEmployer, user.ErrEmployerRoleRequired)(next)
}

// RequireCandidate restricts the route to candidate accounts
func RequireCandidate(next http.Handler) http.Handler {
	return requireRole(user.RoleCandidate, user.ErrCandidateRoleRequired)(next)
}
