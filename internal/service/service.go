// service содержит бизнес-логику auth-сервиса:
// регистрацию/аутентификацию пользователей, выпуск/проверку токенов
// и работу с хранилищем через интерфейсы из пакета storage.
//
// Основные аспекты:
//   - Пакет не хранит состояние запроса внутри Service; экземпляр Service
//     безопасен для конкурентного использования из разных горутин при условии,
//     что переданное хранилище (storage.Storage) потокобезопасно.
//   - Ошибки возвращаются и далее маппятся HTTP-слоем на статус-коды
//     (см. комментарии к переменным ошибок ниже). Все ошибки аутентификации
//     снаружи неразличимы (единый 401), различия остаются только для логов.
package service

import (
	"errors"

	"auth-service/internal/config"
	"auth-service/internal/storage"
)

var (
	// ErrInvalidCredentials — пара логин/пароль неверна или пользователь не найден.
	// HTTP-слой: 401. Причины (нет пользователя / неверный пароль / битый или
	// просроченный токен) снаружи не различаются.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrInvalidToken — токен некорректен по формату/подписи. HTTP-слой: 401.
	ErrInvalidToken = errors.New("invalid token")

	// ErrTokenExpired — срок действия токена истёк. HTTP-слой: 401.
	ErrTokenExpired = errors.New("token expired")

	// ErrWrongTokenType — предъявлен токен не того типа (например, refresh там,
	// где ожидается access). HTTP-слой: 401, неотличимо от прочих 401.
	ErrWrongTokenType = errors.New("wrong token type")

	// ErrEmailTaken — e-mail уже занят другим пользователем. HTTP-слой: 409.
	ErrEmailTaken = errors.New("email already taken")

	// ErrInvalidEmail — e-mail имеет некорректный формат. HTTP-слой: 400.
	ErrInvalidEmail = errors.New("invalid email format")

	// ErrWeakPassword — пароль не удовлетворяет требованиям
	// (минимум 8 символов, хотя бы одна буква и одна цифра). HTTP-слой: 400.
	ErrWeakPassword = errors.New("password requirements not met")

	// ErrEmptyPassword — пароль пустой. HTTP-слой: 400.
	ErrEmptyPassword = errors.New("password is empty")
)

// Service описывает бизнес-логику auth-сервиса.
type Service struct {
	storage storage.Storage
	cfg     config.AuthConfig
}

// New создаёт новый экземпляр Service.
func New(storage storage.Storage, cfg config.AuthConfig) *Service {
	return &Service{
		storage: storage,
		cfg:     cfg,
	}
}
