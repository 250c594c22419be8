package entity

import "time"

// ObraSocial representa un pagador de salud (obra social / prepaga).
type ObraSocial struct {
	ID        string
	UserID    string
	Nombre    string
	CUIT      string
	Email     string
	Telefono  string
	CreatedAt time.Time
	UpdatedAt time.Time
}
