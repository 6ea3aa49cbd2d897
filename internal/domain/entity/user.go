package entity

import "time"

// Estados válidos para User.
const (
	StatusActive   = "active"
	StatusDisabled = "disabled"
)

// User representa una cuenta de usuario. El email es único dentro de la
// colección de usuarios (no se cruza con la de admins) y se guarda en minúsculas.
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Status       string // active | disabled
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
