package entity

import "time"

// Estados posibles de un usuario.
const (
	UserStatusActive   = "active"
	UserStatusDisabled = "disabled"
)

// User dueño del negocio: cada usuario ve únicamente sus propios artículos,
// compras y ventas.
type User struct {
	ID           string
	Email        string
	PasswordHash string
	BusinessName string
	Status       string // "active" | "disabled"
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
