package middleware

import (
	"net/http"
	"strconv"

	"github.com/m04kA/SMC-ParkingService/internal/api/handlers"
)

const (
	msgMissingUserID = "отсутствует заголовок X-User-ID"
	msgInvalidUserID = "некорректный заголовок X-User-ID"
)

// Auth проверяет наличие заголовка X-User-ID.
// Сервис доверяет API Gateway: заголовок считается уже аутентифицированным.
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID := r.Header.Get("X-User-ID")
		if userID == "" {
			handlers.RespondError(w, http.StatusUnauthorized, msgMissingUserID)
			return
		}

		if _, err := strconv.ParseInt(userID, 10, 64); err != nil {
			handlers.RespondError(w, http.StatusUnauthorized, msgInvalidUserID)
			return
		}

		next.ServeHTTP(w, r)
	})
}
