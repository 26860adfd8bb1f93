package entity

import (
	"context"
	"time"
)

// Entidad: Usuario. Contrasena guarda el hash bcrypt, nunca el texto
// plano, y no se serializa en las respuestas.
type Usuario struct {
	IDUsuario  int       `json:"id_usuario"`
	Nombre     string    `json:"nombre"`
	Email      string    `json:"email"`
	Contrasena string    `json:"-"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

type UsuarioRepositoryInterface interface {
	FindAll(ctx context.Context) ([]Usuario, error)
	FindByID(ctx context.Context, id int) (*Usuario, error)
	FindByEmail(ctx context.Context, email string) (*Usuario, error)
	Create(ctx context.Context, u *Usuario) error
	Update(ctx context.Context, u *Usuario) error
	Delete(ctx context.Context, id int) error
}
