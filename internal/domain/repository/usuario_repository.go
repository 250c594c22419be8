package repository

import "github.com/medagenda/consultorio-api/internal/domain/entity"

// UsuarioRepository define el puerto de persistencia para Usuario (auth).
type UsuarioRepository interface {
	Create(u *entity.Usuario) error
	GetByID(id string) (*entity.Usuario, error)
	FindByEmail(email string) (*entity.Usuario, error)
}
