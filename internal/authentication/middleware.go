package authentication

import (
	"context"
	"net/http"

	"github.com/rs/zerolog"
)

var UserIDCtxKey = contextKey{"userId"}

type contextKey struct {
	name string
}

// Middleware authenticates the request from its Authorization header and stores the user id
// in the request context. Requests without the header go through anonymously; the resolvers
// decide what an anonymous caller may do.
func Middleware(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")

			if header == "" {
				next.ServeHTTP(w, r)
				return
			}

			userID, err := ParseToken(secret, header)

			if err != nil {
				zerolog.Ctx(r.Context()).Debug().Err(err).Msg("rejected access token")
				http.Error(w, "Invalid token", http.StatusForbidden)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithUserID(r.Context(), userID)))
		})
	}
}

func WithUserID(ctx context.Context, userID uint) context.Context {
	return context.WithValue(ctx, UserIDCtxKey, userID)
}

// ForContext returns the authenticated user id, or 0 for anonymous requests.
func ForContext(ctx context.Context) uint {
	userID, _ := ctx.Value(UserIDCtxKey).(uint)

	return userID
}
