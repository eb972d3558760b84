package models

import (
	"time"

	"github.com/google/uuid"
)

// User - модель пользователя в системе.
//
// PasswordHash - bcrypt-хэш пароля (самоописываемый формат: версия алгоритма,
// cost и соль внутри строки); исходный пароль нигде не хранится и не логируется.
type User struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
