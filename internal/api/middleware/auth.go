package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/m04kA/GSO-BookingService/internal/api/handlers"
)

// UserNameHeader имя оператора, выставляется шлюзом
const UserNameHeader = "X-User-Name"

const msgUserRequired = "требуется заголовок " + UserNameHeader

type userKey struct{}

// Auth пропускает запрос дальше только с непустым X-User-Name.
// Значение становится автором записей аудита.
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user := strings.TrimSpace(r.Header.Get(UserNameHeader))
		if user == "" {
			handlers.RespondUnauthorized(w, msgUserRequired)
			return
		}
		next.ServeHTTP(w, r.WithContext(WithUser(r.Context(), user)))
	})
}

func WithUser(ctx context.Context, user string) context.Context {
	return context.WithValue(ctx, userKey{}, user)
}

// UserFromContext возвращает оператора или пустую строку
func UserFromContext(ctx context.Context) string {
	user, _ := ctx.Value(userKey{}).(string)
	return user
}
