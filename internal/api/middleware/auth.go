package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/m04kA/SMC-SalonService/internal/api/handlers"
)

// AdminTokenHeader заголовок с токеном администратора
const AdminTokenHeader = "X-Admin-Token"

// AdminAuth закрывает административные маршруты общим токеном из конфигурации.
// Это не полноценная аутентификация, а защитная заглушка для демо-стенда.
func AdminAuth(token string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got := r.Header.Get(AdminTokenHeader)

			if token == "" || subtle.ConstantTimeCompare([]byte(got), []byte(token)) != 1 {
				handlers.RespondError(w, http.StatusUnauthorized, "требуется токен администратора")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
