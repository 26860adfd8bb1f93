package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/academia-crm/backend/internal/entity"
	"github.com/academia-crm/backend/internal/usecase"
)

type UsuarioHandler struct {
	Repo    entity.UsuarioRepositoryInterface
	LoginUC *usecase.LoginUseCase
	Log     *zap.SugaredLogger
}

func NewUsuarioHandler(repo entity.UsuarioRepositoryInterface, loginUC *usecase.LoginUseCase, log *zap.SugaredLogger) *UsuarioHandler {
	return &UsuarioHandler{Repo: repo, LoginUC: loginUC, Log: log}
}

type UsuarioInput struct {
	Nombre     string `json:"nombre"`
	Email      string `json:"email"`
	Contrasena string `json:"contrasena"`
}

// GET /api/usuarios
func (h *UsuarioHandler) List(w http.ResponseWriter, r *http.Request) {
	usuarios, err := h.Repo.FindAll(r.Context())
	if err != nil {
		h.Log.Errorw("error al obtener usuarios", "error", err)
		respondErr(w, http.StatusInternalServerError, "Error al obtener usuarios")
		return
	}
	respond(w, http.StatusOK, usuarios)
}

// GET /api/usuarios/{id}
func (h *UsuarioHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		respondErr(w, http.StatusBadRequest, "ID inválido")
		return
	}

	usuario, err := h.Repo.FindByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, entity.ErrUsuarioNotFound) {
			respondEmpty(w)
			return
		}
		h.Log.Errorw("error al obtener usuario", "id", id, "error", err)
		respondErr(w, http.StatusInternalServerError, "Error al obtener usuario")
		return
	}
	respond(w, http.StatusOK, usuario)
}

// POST /api/usuarios
func (h *UsuarioHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input UsuarioInput
	if err := decode(r, &input); err != nil {
		respondErr(w, http.StatusBadRequest, "JSON inválido")
		return
	}

	hash, err := usecase.HashContrasena(input.Contrasena)
	if err != nil {
		h.Log.Errorw("error al hashear contraseña", "error", err)
		respondErr(w, http.StatusInternalServerError, "Error al crear usuario")
		return
	}

	usuario := entity.Usuario{
		Nombre:     input.Nombre,
		Email:      input.Email,
		Contrasena: hash,
	}

	if err := h.Repo.Create(r.Context(), &usuario); err != nil {
		if errors.Is(err, entity.ErrEmailAlreadyExists) {
			respondErr(w, http.StatusConflict, "Ya existe un usuario con ese email")
			return
		}
		h.Log.Errorw("error creando usuario", "error", err)
		respondErr(w, http.StatusInternalServerError, "Error al crear usuario")
		return
	}
	respond(w, http.StatusCreated, usuario)
}

// PUT /api/usuarios/{id}
func (h *UsuarioHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		respondErr(w, http.StatusBadRequest, "ID inválido")
		return
	}

	var input UsuarioInput
	if err := decode(r, &input); err != nil {
		respondErr(w, http.StatusBadRequest, "JSON inválido")
		return
	}

	hash, err := usecase.HashContrasena(input.Contrasena)
	if err != nil {
		h.Log.Errorw("error al hashear contraseña", "error", err)
		respondErr(w, http.StatusInternalServerError, "Error al actualizar usuario")
		return
	}

	usuario := entity.Usuario{
		IDUsuario:  id,
		Nombre:     input.Nombre,
		Email:      input.Email,
		Contrasena: hash,
	}

	if err := h.Repo.Update(r.Context(), &usuario); err != nil {
		if errors.Is(err, entity.ErrUsuarioNotFound) {
			respondEmpty(w)
			return
		}
		h.Log.Errorw("error al actualizar usuario", "id", id, "error", err)
		respondErr(w, http.StatusInternalServerError, "Error al actualizar usuario")
		return
	}
	respond(w, http.StatusOK, usuario)
}

// DELETE /api/usuarios/{id}
func (h *UsuarioHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		respondErr(w, http.StatusBadRequest, "ID inválido")
		return
	}

	if err := h.Repo.Delete(r.Context(), id); err != nil {
		h.Log.Errorw("error al eliminar usuario", "id", id, "error", err)
		respondErr(w, http.StatusInternalServerError, "Error al eliminar usuario")
		return
	}
	respond(w, http.StatusNoContent, nil)
}

// POST /api/usuarios/login
func (h *UsuarioHandler) Login(w http.ResponseWriter, r *http.Request) {
	var input usecase.LoginInput
	if err := decode(r, &input); err != nil {
		respondErr(w, http.StatusBadRequest, "JSON inválido")
		return
	}

	usuario, err := h.LoginUC.Execute(r.Context(), input)
	if err != nil {
		switch {
		case usecase.IsValidationError(err):
			respondErr(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, usecase.ErrCredencialesInvalidas):
			respondErr(w, http.StatusUnauthorized, "Credenciales inválidas")
		default:
			h.Log.Errorw("error en login", "error", err)
			respondErr(w, http.StatusInternalServerError, "Error del servidor")
		}
		return
	}

	respond(w, http.StatusOK, map[string]interface{}{
		"message": "Login exitoso",
		"user":    usuario,
	})
}
