package entity

import "time"

// Admin representa una cuenta de administrador. Mismo ciclo de vida que User
// pero sin campo status.
type Admin struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
