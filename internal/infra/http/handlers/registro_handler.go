package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/academia-crm/backend/internal/entity"
)

type RegistroHandler struct {
	Repo entity.RegistroRepositoryInterface
	Log  *zap.SugaredLogger
}

func NewRegistroHandler(repo entity.RegistroRepositoryInterface, log *zap.SugaredLogger) *RegistroHandler {
	return &RegistroHandler{Repo: repo, Log: log}
}

// GET /api/registros
func (h *RegistroHandler) List(w http.ResponseWriter, r *http.Request) {
	registros, err := h.Repo.FindAll(r.Context())
	if err != nil {
		h.Log.Errorw("error al obtener registros", "error", err)
		respondErr(w, http.StatusInternalServerError, "Error al obtener registros")
		return
	}
	respond(w, http.StatusOK, registros)
}

// GET /api/registros/cel/{celular}
func (h *RegistroHandler) GetByCelular(w http.ResponseWriter, r *http.Request) {
	celular := chi.URLParam(r, "celular")

	registro, err := h.Repo.FindByCelular(r.Context(), celular)
	if err != nil {
		h.Log.Errorw("error al buscar registro por celular", "celular", celular, "error", err)
		respondErr(w, http.StatusInternalServerError, "Error al buscar registro por celular")
		return
	}
	if registro == nil {
		// Sin coincidencia no es error: objeto vacío y el cliente decide.
		respondEmpty(w)
		return
	}
	respond(w, http.StatusOK, registro)
}

// GET /api/registros/{id}
func (h *RegistroHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		respondErr(w, http.StatusBadRequest, "ID inválido")
		return
	}

	registro, err := h.Repo.FindByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, entity.ErrRegistroNotFound) {
			respondErr(w, http.StatusNotFound, "Registro no encontrado")
			return
		}
		h.Log.Errorw("error al obtener registro por ID", "id", id, "error", err)
		respondErr(w, http.StatusInternalServerError, "Error al obtener registro")
		return
	}
	respond(w, http.StatusOK, registro)
}

// POST /api/registros
func (h *RegistroHandler) Create(w http.ResponseWriter, r *http.Request) {
	var registro entity.Registro
	if err := decode(r, &registro); err != nil {
		respondErr(w, http.StatusBadRequest, "JSON inválido")
		return
	}

	if err := h.Repo.Create(r.Context(), &registro); err != nil {
		h.Log.Errorw("error al crear registro", "error", err)
		respondErr(w, http.StatusInternalServerError, "Error al crear registro")
		return
	}
	respond(w, http.StatusCreated, registro)
}

// PUT /api/registros/{id}
func (h *RegistroHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		respondErr(w, http.StatusBadRequest, "ID inválido")
		return
	}

	var registro entity.Registro
	if err := decode(r, &registro); err != nil {
		respondErr(w, http.StatusBadRequest, "JSON inválido")
		return
	}
	registro.IDReg = id

	if err := h.Repo.Update(r.Context(), &registro); err != nil {
		if errors.Is(err, entity.ErrRegistroNotFound) {
			respondErr(w, http.StatusNotFound, "Registro no encontrado para actualizar")
			return
		}
		h.Log.Errorw("error al actualizar registro", "id", id, "error", err)
		respondErr(w, http.StatusInternalServerError, "Error al actualizar registro")
		return
	}
	respond(w, http.StatusOK, registro)
}

// DELETE /api/registros/{id}
func (h *RegistroHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		respondErr(w, http.StatusBadRequest, "ID inválido")
		return
	}

	if err := h.Repo.Delete(r.Context(), id); err != nil {
		if errors.Is(err, entity.ErrRegistroNotFound) {
			respondErr(w, http.StatusNotFound, "Registro no encontrado para eliminar")
			return
		}
		h.Log.Errorw("error al eliminar registro", "id", id, "error", err)
		respondErr(w, http.StatusInternalServerError, "Error al eliminar registro")
		return
	}
	respond(w, http.StatusNoContent, nil)
}
