package middleware

import (
	"context"
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/AM-Studio-19/am-booking/internal/api/handlers"
)

const (
	// HeaderSessionID заголовок анонимной сессии мини-приложения
	HeaderSessionID = "X-Session-ID"

	// HeaderAdminPin заголовок с PIN-кодом админки студии
	HeaderAdminPin = "X-Admin-Pin"
)

const (
	msgMissingSession = "缺少連線識別碼"
	msgInvalidPin     = "管理密碼錯誤"
)

type contextKey string

const sessionIDKey contextKey = "sessionID"

// Auth проверяет наличие анонимной сессии мини-приложения
// Сессию выдаёт клиентская часть LINE, сервер её не регистрирует -
// заголовок нужен для связывания запросов клиента в логах
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sessionID := strings.TrimSpace(r.Header.Get(HeaderSessionID))
		if sessionID == "" {
			handlers.RespondUnauthorized(w, msgMissingSession)
			return
		}

		ctx := context.WithValue(r.Context(), sessionIDKey, sessionID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetSessionID извлекает идентификатор сессии из контекста
func GetSessionID(ctx context.Context) (string, bool) {
	sessionID, ok := ctx.Value(sessionIDKey).(string)
	return sessionID, ok
}

// AdminAuth проверяет PIN-код админки студии
func AdminAuth(pin string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			provided := r.Header.Get(HeaderAdminPin)
			if subtle.ConstantTimeCompare([]byte(provided), []byte(pin)) != 1 {
				handlers.RespondForbidden(w, msgInvalidPin)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
