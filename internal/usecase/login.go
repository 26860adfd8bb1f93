package usecase

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"github.com/academia-crm/backend/internal/entity"
)

// ErrCredencialesInvalidas cubre tanto email inexistente como contraseña
// equivocada: el cliente no distingue los dos casos.
var ErrCredencialesInvalidas = errors.New("Credenciales inválidas")

type LoginInput struct {
	Email      string `json:"email"`
	Contrasena string `json:"contrasena"`
}

type LoginUseCase struct {
	Repo entity.UsuarioRepositoryInterface
}

func NewLoginUseCase(repo entity.UsuarioRepositoryInterface) *LoginUseCase {
	return &LoginUseCase{Repo: repo}
}

func (uc *LoginUseCase) Execute(ctx context.Context, input LoginInput) (*entity.Usuario, error) {
	if input.Email == "" || input.Contrasena == "" {
		return nil, ErrFaltanCredenciales
	}

	usuario, err := uc.Repo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, entity.ErrUsuarioNotFound) {
			return nil, ErrCredencialesInvalidas
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(usuario.Contrasena), []byte(input.Contrasena)); err != nil {
		return nil, ErrCredencialesInvalidas
	}

	return usuario, nil
}

// HashContrasena genera el hash bcrypt que se guarda en la base.
func HashContrasena(contrasena string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(contrasena), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
