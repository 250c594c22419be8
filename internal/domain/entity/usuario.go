package entity

import "time"

// Usuario es el profesional dueño de la cuenta. Cada usuario es un tenant:
// todas las demás entidades llevan su UserID y las consultas se filtran por él.
type Usuario struct {
	ID           string
	Email        string
	PasswordHash string
	Nombre       string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
