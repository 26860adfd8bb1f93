package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	"github.com/academia-crm/backend/internal/entity"
	"github.com/academia-crm/backend/internal/usecase"
)

type MockSeguimientoRepo struct {
	mock.Mock
}

func (m *MockSeguimientoRepo) FindAll(ctx context.Context) ([]entity.Seguimiento, error) {
	args := m.Called(ctx)
	return args.Get(0).([]entity.Seguimiento), args.Error(1)
}

func (m *MockSeguimientoRepo) FindAllConRegistro(ctx context.Context) ([]entity.Seguimiento, error) {
	args := m.Called(ctx)
	return args.Get(0).([]entity.Seguimiento), args.Error(1)
}

func (m *MockSeguimientoRepo) FindByRegistro(ctx context.Context, idReg int) ([]entity.Seguimiento, error) {
	args := m.Called(ctx, idReg)
	return args.Get(0).([]entity.Seguimiento), args.Error(1)
}

func (m *MockSeguimientoRepo) Create(ctx context.Context, s *entity.Seguimiento) error {
	args := m.Called(ctx, s)
	if args.Error(0) == nil {
		s.IDSeg = 1
	}
	return args.Error(0)
}

func (m *MockSeguimientoRepo) Delete(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func newSeguimientoRouter(repo *MockSeguimientoRepo, registroRepo *MockRegistroRepo) *chi.Mux {
	log := zap.NewNop().Sugar()
	uc := usecase.NewCreateSeguimientoUseCase(repo, registroRepo, nil, log)
	handler := NewSeguimientoHandler(repo, uc, log)

	r := chi.NewRouter()
	r.Route("/api/seguimientos", func(r chi.Router) {
		r.Get("/", handler.List)
		r.Get("/joinRegistros", handler.ListConRegistros)
		r.Get("/registro/{id}", handler.ListByRegistro)
		r.Post("/", handler.Create)
		r.Delete("/{id}", handler.Delete)
	})
	return r
}

func TestCrearSeguimientoValido(t *testing.T) {
	repo := new(MockSeguimientoRepo)
	registroRepo := new(MockRegistroRepo)
	repo.On("Create", mock.Anything, mock.Anything).Return(nil)

	body, _ := json.Marshal(map[string]interface{}{
		"id_reg":     7,
		"fecha":      "2024-01-11",
		"hora":       "10:00",
		"motivo":     "1RA LLAMADA",
		"estado":     "EN SEGUIMIENTO",
		"id_usuario": 1,
	})

	req := httptest.NewRequest("POST", "/api/seguimientos", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	newSeguimientoRouter(repo, registroRepo).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)

	var seguimiento entity.Seguimiento
	json.Unmarshal(rec.Body.Bytes(), &seguimiento)
	assert.Equal(t, 1, seguimiento.IDSeg)
	assert.Equal(t, entity.MotivoPrimeraLlamada, seguimiento.Motivo)
}

func TestCrearSeguimientoMotivoNoValido(t *testing.T) {
	repo := new(MockSeguimientoRepo)
	registroRepo := new(MockRegistroRepo)

	body, _ := json.Marshal(map[string]interface{}{
		"id_reg":     7,
		"fecha":      "2024-01-11",
		"hora":       "10:00",
		"motivo":     "LLAMADA INVALIDA",
		"estado":     "EN SEGUIMIENTO",
		"id_usuario": 1,
	})

	req := httptest.NewRequest("POST", "/api/seguimientos", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	newSeguimientoRouter(repo, registroRepo).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"Motivo no válido"}`, rec.Body.String())
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCrearSeguimientoEstadoNoValido(t *testing.T) {
	repo := new(MockSeguimientoRepo)
	registroRepo := new(MockRegistroRepo)

	body, _ := json.Marshal(map[string]interface{}{
		"id_reg":     7,
		"fecha":      "2024-01-11",
		"hora":       "10:00",
		"motivo":     "1RA LLAMADA",
		"estado":     "ABIERTO",
		"id_usuario": 1,
	})

	req := httptest.NewRequest("POST", "/api/seguimientos", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	newSeguimientoRouter(repo, registroRepo).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"Estado no válido"}`, rec.Body.String())
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCrearSeguimientoCamposFaltantes(t *testing.T) {
	repo := new(MockSeguimientoRepo)
	registroRepo := new(MockRegistroRepo)

	// Sin hora ni id_usuario.
	body, _ := json.Marshal(map[string]interface{}{
		"id_reg": 7,
		"fecha":  "2024-01-11",
		"motivo": "1RA LLAMADA",
		"estado": "EN SEGUIMIENTO",
	})

	req := httptest.NewRequest("POST", "/api/seguimientos", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	newSeguimientoRouter(repo, registroRepo).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"Faltan campos obligatorios"}`, rec.Body.String())
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestListarSeguimientosPorRegistro(t *testing.T) {
	repo := new(MockSeguimientoRepo)
	registroRepo := new(MockRegistroRepo)

	repo.On("FindByRegistro", mock.Anything, 7).Return([]entity.Seguimiento{
		{IDSeg: 2, IDReg: 7, Fecha: "2024-01-12", Hora: "09:30", Motivo: entity.MotivoSegundaLlamada, Estado: entity.EstadoPendiente, IDUsuario: 1},
		{IDSeg: 1, IDReg: 7, Fecha: "2024-01-11", Hora: "10:00", Motivo: entity.MotivoPrimeraLlamada, Estado: entity.EstadoEnSeguimiento, IDUsuario: 1},
	}, nil)

	req := httptest.NewRequest("GET", "/api/seguimientos/registro/7", nil)
	rec := httptest.NewRecorder()
	newSeguimientoRouter(repo, registroRepo).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var seguimientos []entity.Seguimiento
	json.Unmarshal(rec.Body.Bytes(), &seguimientos)
	assert.Len(t, seguimientos, 2)
	// El repositorio entrega del más reciente al más antiguo.
	assert.Equal(t, "2024-01-12", seguimientos[0].Fecha)
}

func TestListarSeguimientosConRegistro(t *testing.T) {
	repo := new(MockSeguimientoRepo)
	registroRepo := new(MockRegistroRepo)

	repo.On("FindAllConRegistro", mock.Anything).Return([]entity.Seguimiento{
		{IDSeg: 1, IDReg: 7, Motivo: entity.MotivoPrimeraLlamada, Estado: entity.EstadoEnSeguimiento, MedioReg: "WhatsApp"},
	}, nil)

	req := httptest.NewRequest("GET", "/api/seguimientos/joinRegistros", nil)
	rec := httptest.NewRecorder()
	newSeguimientoRouter(repo, registroRepo).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"medio_reg":"WhatsApp"`)
}

func TestEliminarSeguimiento(t *testing.T) {
	repo := new(MockSeguimientoRepo)
	registroRepo := new(MockRegistroRepo)

	// Borrar un id inexistente responde igual que uno real.
	repo.On("Delete", mock.Anything, 99).Return(nil)

	req := httptest.NewRequest("DELETE", "/api/seguimientos/99", nil)
	rec := httptest.NewRecorder()
	newSeguimientoRouter(repo, registroRepo).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())
}
