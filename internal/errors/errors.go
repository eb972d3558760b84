// errors стандартизирует ответы об ошибках HTTP-слоя.
// На вход он принимает ошибку доменного слоя (service/storage),
// а на выход даёт:
//   - корректный HTTP-статус;
//   - краткое безопасное message без утечки деталей.
//
// Все ошибки аутентификации (неверные учётные данные, битый/просроченный
// токен, токен не того типа, удалённый аккаунт) схлопываются в один и тот же
// 401-ответ с заголовком WWW-Authenticate: Bearer — снаружи они неразличимы.
// Детали остаются в логах.
package errors

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"auth-service/internal/service"
)

// Нестандартный код часто используемый для "клиент закрыл соединение".
const StatusClientClosedRequest = 499

// APIError — единый формат для фронта.
// Code — короткий стабильный код для машиночитаемой обработки на FE.
// Message — безопасное человекочитаемое описание.
// RequestID — прокидывается из X-Request-Id, если есть (для трассировки).
type APIError struct {
	Code      string `json:"code"`
	Message   string `json:"message"`
	RequestID string `json:"request_id,omitempty"`
}

// ErrorResponse — корневой объект в ответе.
type ErrorResponse struct {
	Error APIError `json:"error"`
}

// ErrInvalidArgument — локальная ошибка HTTP-слоя (битый JSON и т.п.) -> 400.
var ErrInvalidArgument = errors.New("invalid argument")

// ToHTTP конвертирует ошибку доменного слоя в HTTP-статус и
// унифицированный ответ для фронта.
//
// Поведение:
//   - err == nil — это программная ошибка вызова: возвращаем 500/internal,
//     чтобы не послать "200 OK" с телом ошибки и не маскировать баг;
//   - ошибки валидации -> 400 с различимыми кодами (invalid_email/weak_password);
//   - занятый email -> 409;
//   - все ошибки аутентификации -> один и тот же 401/unauthenticated;
//   - отмена/таймаут контекста -> 499/504;
//   - прочее -> 500/internal (без утечки деталей).
func ToHTTP(err error) (int, ErrorResponse) {
	if err == nil {
		return http.StatusInternalServerError, newResponse("internal", "internal error")
	}

	switch {
	case errors.Is(err, ErrInvalidArgument):
		return http.StatusBadRequest, newResponse("invalid_argument", "invalid argument")
	case errors.Is(err, service.ErrInvalidEmail):
		return http.StatusBadRequest, newResponse("invalid_email", "invalid email format")
	case errors.Is(err, service.ErrWeakPassword), errors.Is(err, service.ErrEmptyPassword):
		return http.StatusBadRequest, newResponse("weak_password", "password must be at least 8 characters long and contain both letters and numbers")
	case errors.Is(err, service.ErrEmailTaken):
		return http.StatusConflict, newResponse("already_exists", "already exists")
	case errors.Is(err, service.ErrInvalidCredentials),
		errors.Is(err, service.ErrInvalidToken),
		errors.Is(err, service.ErrTokenExpired),
		errors.Is(err, service.ErrWrongTokenType):
		return http.StatusUnauthorized, newResponse("unauthenticated", "unauthenticated")
	case errors.Is(err, context.Canceled):
		return StatusClientClosedRequest, newResponse("canceled", "canceled")
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout, newResponse("deadline_exceeded", "deadline exceeded")
	default:
		return http.StatusInternalServerError, newResponse("internal", "internal error")
	}
}

// WriteError — хелпер для HTTP-хендлеров.
// Пишет корректный статус/тело, добавляет request_id из заголовка, если он есть.
// Для 401 добавляет WWW-Authenticate: Bearer.
func WriteError(w http.ResponseWriter, r *http.Request, err error) {
	status, resp := ToHTTP(err)

	// Прокидываем request_id для фронта, чтобы он мог репортить баги с привязкой.
	if rid := r.Header.Get("X-Request-Id"); rid != "" {
		resp.Error.RequestID = rid
	}

	if status == http.StatusUnauthorized {
		w.Header().Set("WWW-Authenticate", "Bearer")
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(resp)
}

func newResponse(code, message string) ErrorResponse {
	return ErrorResponse{Error: APIError{Code: code, Message: message}}
}
