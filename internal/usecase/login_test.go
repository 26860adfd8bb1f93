package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/academia-crm/backend/internal/entity"
)

type MockUsuarioRepository struct {
	mock.Mock
}

func (m *MockUsuarioRepository) FindAll(ctx context.Context) ([]entity.Usuario, error) {
	args := m.Called(ctx)
	return args.Get(0).([]entity.Usuario), args.Error(1)
}

func (m *MockUsuarioRepository) FindByID(ctx context.Context, id int) (*entity.Usuario, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Usuario), args.Error(1)
}

func (m *MockUsuarioRepository) FindByEmail(ctx context.Context, email string) (*entity.Usuario, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Usuario), args.Error(1)
}

func (m *MockUsuarioRepository) Create(ctx context.Context, u *entity.Usuario) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *MockUsuarioRepository) Update(ctx context.Context, u *entity.Usuario) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *MockUsuarioRepository) Delete(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func TestLoginExitoso(t *testing.T) {
	repo := new(MockUsuarioRepository)

	hash, err := HashContrasena("secreta123")
	assert.NoError(t, err)

	repo.On("FindByEmail", mock.Anything, "maria@academia.com").Return(&entity.Usuario{
		IDUsuario:  1,
		Nombre:     "María",
		Email:      "maria@academia.com",
		Contrasena: hash,
	}, nil)

	uc := NewLoginUseCase(repo)
	usuario, err := uc.Execute(context.Background(), LoginInput{
		Email:      "maria@academia.com",
		Contrasena: "secreta123",
	})

	assert.NoError(t, err)
	assert.Equal(t, 1, usuario.IDUsuario)
}

func TestLoginContrasenaIncorrecta(t *testing.T) {
	repo := new(MockUsuarioRepository)

	hash, _ := HashContrasena("secreta123")
	repo.On("FindByEmail", mock.Anything, "maria@academia.com").Return(&entity.Usuario{
		Email:      "maria@academia.com",
		Contrasena: hash,
	}, nil)

	uc := NewLoginUseCase(repo)
	usuario, err := uc.Execute(context.Background(), LoginInput{
		Email:      "maria@academia.com",
		Contrasena: "otra",
	})

	assert.Nil(t, usuario)
	assert.ErrorIs(t, err, ErrCredencialesInvalidas)
}

// Email inexistente y contraseña equivocada devuelven el mismo error: el
// cliente no puede enumerar cuentas.
func TestLoginEmailInexistente(t *testing.T) {
	repo := new(MockUsuarioRepository)
	repo.On("FindByEmail", mock.Anything, "nadie@academia.com").Return(nil, entity.ErrUsuarioNotFound)

	uc := NewLoginUseCase(repo)
	usuario, err := uc.Execute(context.Background(), LoginInput{
		Email:      "nadie@academia.com",
		Contrasena: "loquesea",
	})

	assert.Nil(t, usuario)
	assert.ErrorIs(t, err, ErrCredencialesInvalidas)
}

func TestLoginFaltanCredenciales(t *testing.T) {
	repo := new(MockUsuarioRepository)
	uc := NewLoginUseCase(repo)

	_, err := uc.Execute(context.Background(), LoginInput{Email: "maria@academia.com"})
	assert.ErrorIs(t, err, ErrFaltanCredenciales)

	_, err = uc.Execute(context.Background(), LoginInput{Contrasena: "secreta123"})
	assert.ErrorIs(t, err, ErrFaltanCredenciales)

	repo.AssertNotCalled(t, "FindByEmail", mock.Anything, mock.Anything)
}

func TestHashContrasenaNoEsTextoPlano(t *testing.T) {
	hash, err := HashContrasena("secreta123")
	assert.NoError(t, err)
	assert.NotEqual(t, "secreta123", hash)
	assert.Contains(t, hash, "$2a$")
}
