package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	"github.com/academia-crm/backend/internal/entity"
	"github.com/academia-crm/backend/internal/infra/queue"
)

type MockSeguimientoRepository struct {
	mock.Mock
}

func (m *MockSeguimientoRepository) FindAll(ctx context.Context) ([]entity.Seguimiento, error) {
	args := m.Called(ctx)
	return args.Get(0).([]entity.Seguimiento), args.Error(1)
}

func (m *MockSeguimientoRepository) FindAllConRegistro(ctx context.Context) ([]entity.Seguimiento, error) {
	args := m.Called(ctx)
	return args.Get(0).([]entity.Seguimiento), args.Error(1)
}

func (m *MockSeguimientoRepository) FindByRegistro(ctx context.Context, idReg int) ([]entity.Seguimiento, error) {
	args := m.Called(ctx, idReg)
	return args.Get(0).([]entity.Seguimiento), args.Error(1)
}

func (m *MockSeguimientoRepository) Create(ctx context.Context, s *entity.Seguimiento) error {
	args := m.Called(ctx, s)
	if args.Error(0) == nil {
		s.IDSeg = 42
	}
	return args.Error(0)
}

func (m *MockSeguimientoRepository) Delete(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockRegistroRepository struct {
	mock.Mock
}

func (m *MockRegistroRepository) FindAll(ctx context.Context) ([]entity.Registro, error) {
	args := m.Called(ctx)
	return args.Get(0).([]entity.Registro), args.Error(1)
}

func (m *MockRegistroRepository) FindByID(ctx context.Context, id int) (*entity.Registro, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Registro), args.Error(1)
}

func (m *MockRegistroRepository) FindByCelular(ctx context.Context, celular string) (*entity.Registro, error) {
	args := m.Called(ctx, celular)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Registro), args.Error(1)
}

func (m *MockRegistroRepository) Create(ctx context.Context, r *entity.Registro) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockRegistroRepository) Update(ctx context.Context, r *entity.Registro) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockRegistroRepository) Delete(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockProducer struct {
	mock.Mock
}

func (m *MockProducer) PublishSeguimiento(ctx context.Context, event queue.SeguimientoEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func validInput() CreateSeguimientoInput {
	return CreateSeguimientoInput{
		IDReg:     7,
		Fecha:     "2024-01-11",
		Hora:      "10:00",
		Motivo:    "1RA LLAMADA",
		Estado:    "EN SEGUIMIENTO",
		IDUsuario: 1,
	}
}

func newUC(repo *MockSeguimientoRepository, registroRepo *MockRegistroRepository, producer queue.ProducerInterface) *CreateSeguimientoUseCase {
	return NewCreateSeguimientoUseCase(repo, registroRepo, producer, zap.NewNop().Sugar())
}

func TestCreateSeguimientoCamposObligatorios(t *testing.T) {
	repo := new(MockSeguimientoRepository)
	registroRepo := new(MockRegistroRepository)

	// Cada variante con un campo obligatorio ausente se rechaza antes de
	// tocar el repositorio.
	casos := []func(*CreateSeguimientoInput){
		func(in *CreateSeguimientoInput) { in.IDReg = 0 },
		func(in *CreateSeguimientoInput) { in.Fecha = "" },
		func(in *CreateSeguimientoInput) { in.Hora = "" },
		func(in *CreateSeguimientoInput) { in.Motivo = "" },
		func(in *CreateSeguimientoInput) { in.Estado = "" },
		func(in *CreateSeguimientoInput) { in.IDUsuario = 0 },
	}

	uc := newUC(repo, registroRepo, nil)
	for _, mutar := range casos {
		input := validInput()
		mutar(&input)

		seguimiento, err := uc.Execute(context.Background(), input)
		assert.Nil(t, seguimiento)
		assert.ErrorIs(t, err, ErrCamposObligatorios)
	}

	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreateSeguimientoNotasOpcionales(t *testing.T) {
	repo := new(MockSeguimientoRepository)
	registroRepo := new(MockRegistroRepository)
	registroRepo.On("FindByID", mock.Anything, 7).Return(&entity.Registro{IDReg: 7}, nil)
	repo.On("Create", mock.Anything, mock.Anything).Return(nil)

	input := validInput()
	input.Notas = ""

	uc := newUC(repo, registroRepo, nil)
	seguimiento, err := uc.Execute(context.Background(), input)
	assert.NoError(t, err)
	assert.NotNil(t, seguimiento)
}

func TestCreateSeguimientoMotivoNoValido(t *testing.T) {
	repo := new(MockSeguimientoRepository)
	registroRepo := new(MockRegistroRepository)

	input := validInput()
	input.Motivo = "LLAMADA INVALIDA"

	uc := newUC(repo, registroRepo, nil)
	seguimiento, err := uc.Execute(context.Background(), input)
	assert.Nil(t, seguimiento)
	assert.ErrorIs(t, err, ErrMotivoNoValido)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreateSeguimientoEstadoNoValido(t *testing.T) {
	repo := new(MockSeguimientoRepository)
	registroRepo := new(MockRegistroRepository)

	input := validInput()
	input.Estado = "ABIERTO"

	uc := newUC(repo, registroRepo, nil)
	seguimiento, err := uc.Execute(context.Background(), input)
	assert.Nil(t, seguimiento)
	assert.ErrorIs(t, err, ErrEstadoNoValido)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

// El motivo se valida antes que el estado: con ambos inválidos gana el
// mensaje de motivo.
func TestCreateSeguimientoOrdenDeValidacion(t *testing.T) {
	repo := new(MockSeguimientoRepository)
	registroRepo := new(MockRegistroRepository)

	input := validInput()
	input.Motivo = "XXX"
	input.Estado = "YYY"

	uc := newUC(repo, registroRepo, nil)
	_, err := uc.Execute(context.Background(), input)
	assert.ErrorIs(t, err, ErrMotivoNoValido)
}

func TestCreateSeguimientoPublicaEvento(t *testing.T) {
	repo := new(MockSeguimientoRepository)
	registroRepo := new(MockRegistroRepository)
	producer := new(MockProducer)

	registro := &entity.Registro{
		IDReg:       7,
		NombreReg:   "Ana",
		ApellidoReg: "Diaz",
		CelReg:      "3001234567",
		CursoReg:    "Inglés",
	}

	repo.On("Create", mock.Anything, mock.Anything).Return(nil)
	registroRepo.On("FindByID", mock.Anything, 7).Return(registro, nil)
	producer.On("PublishSeguimiento", mock.Anything, mock.MatchedBy(func(e queue.SeguimientoEvent) bool {
		return e.IDSeg == 42 && e.NombreLead == "Ana Diaz" && e.CelLead == "3001234567"
	})).Return(nil)

	uc := newUC(repo, registroRepo, producer)
	seguimiento, err := uc.Execute(context.Background(), validInput())

	assert.NoError(t, err)
	assert.Equal(t, 42, seguimiento.IDSeg)
	producer.AssertExpectations(t)
}

// Una falla al publicar no tumba la petición: el seguimiento ya quedó
// persistido.
func TestCreateSeguimientoPublicacionBestEffort(t *testing.T) {
	repo := new(MockSeguimientoRepository)
	registroRepo := new(MockRegistroRepository)
	producer := new(MockProducer)

	repo.On("Create", mock.Anything, mock.Anything).Return(nil)
	registroRepo.On("FindByID", mock.Anything, 7).Return(nil, entity.ErrRegistroNotFound)
	producer.On("PublishSeguimiento", mock.Anything, mock.Anything).Return(errors.New("broker caído"))

	uc := newUC(repo, registroRepo, producer)
	seguimiento, err := uc.Execute(context.Background(), validInput())

	assert.NoError(t, err)
	assert.NotNil(t, seguimiento)
}

func TestCreateSeguimientoErrorDeBase(t *testing.T) {
	repo := new(MockSeguimientoRepository)
	registroRepo := new(MockRegistroRepository)

	repo.On("Create", mock.Anything, mock.Anything).Return(errors.New("conexión perdida"))

	uc := newUC(repo, registroRepo, nil)
	seguimiento, err := uc.Execute(context.Background(), validInput())

	assert.Nil(t, seguimiento)
	assert.Error(t, err)
	assert.False(t, IsValidationError(err))
}
