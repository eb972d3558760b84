package middleware

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	apierrors "auth-service/internal/errors"
	"auth-service/internal/models"
	"auth-service/internal/service"
)

type principalKey struct{}

// Authenticator проверяет access-токен и возвращает принципала.
type Authenticator interface {
	AuthenticateToken(ctx context.Context, accessToken string) (*models.User, error)
}

// Authenticate извлекает Bearer-токен из Authorization, валидирует его через
// сервис и кладёт аутентифицированного пользователя в контекст запроса.
//
// Отсутствующий заголовок, пустой/мусорный токен, просроченный токен и токен
// не того типа дают один и тот же 401-ответ — различия остаются в логах.
func Authenticate(auth Authenticator) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := bearerToken(r)
			if !ok {
				apierrors.WriteError(w, r, fmt.Errorf("authenticate: %w", service.ErrInvalidCredentials))
				return
			}

			user, err := auth.AuthenticateToken(r.Context(), token)
			if err != nil {
				apierrors.WriteError(w, r, err)
				return
			}

			ctx := context.WithValue(r.Context(), principalKey{}, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// CurrentUser возвращает принципала, положенного Authenticate.
func CurrentUser(ctx context.Context) (*models.User, bool) {
	user, ok := ctx.Value(principalKey{}).(*models.User)
	return user, ok && user != nil
}

// bearerToken достаёт токен из "Authorization: Bearer <token>".
func bearerToken(r *http.Request) (string, bool) {
	auth := r.Header.Get("Authorization")
	if auth == "" {
		return "", false
	}

	const prefix = "Bearer "
	if !strings.HasPrefix(auth, prefix) || len(auth) <= len(prefix) {
		return "", false
	}

	token := strings.TrimSpace(auth[len(prefix):])
	if token == "" {
		return "", false
	}

	return token, true
}
