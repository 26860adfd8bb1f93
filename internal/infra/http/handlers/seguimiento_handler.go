package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/academia-crm/backend/internal/entity"
	"github.com/academia-crm/backend/internal/usecase"
)

type SeguimientoHandler struct {
	Repo     entity.SeguimientoRepositoryInterface
	CreateUC *usecase.CreateSeguimientoUseCase
	Log      *zap.SugaredLogger
}

func NewSeguimientoHandler(
	repo entity.SeguimientoRepositoryInterface,
	createUC *usecase.CreateSeguimientoUseCase,
	log *zap.SugaredLogger,
) *SeguimientoHandler {
	return &SeguimientoHandler{Repo: repo, CreateUC: createUC, Log: log}
}

// GET /api/seguimientos
func (h *SeguimientoHandler) List(w http.ResponseWriter, r *http.Request) {
	seguimientos, err := h.Repo.FindAll(r.Context())
	if err != nil {
		h.Log.Errorw("error al obtener seguimientos", "error", err)
		respondErr(w, http.StatusInternalServerError, "Error al obtener seguimientos")
		return
	}
	respond(w, http.StatusOK, seguimientos)
}

// GET /api/seguimientos/joinRegistros
func (h *SeguimientoHandler) ListConRegistros(w http.ResponseWriter, r *http.Request) {
	seguimientos, err := h.Repo.FindAllConRegistro(r.Context())
	if err != nil {
		h.Log.Errorw("error en el JOIN de seguimientos", "error", err)
		respondErr(w, http.StatusInternalServerError, "Error al obtener los seguimientos con registros")
		return
	}
	respond(w, http.StatusOK, seguimientos)
}

// GET /api/seguimientos/registro/{id}
func (h *SeguimientoHandler) ListByRegistro(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		respondErr(w, http.StatusBadRequest, "ID inválido")
		return
	}

	seguimientos, err := h.Repo.FindByRegistro(r.Context(), id)
	if err != nil {
		h.Log.Errorw("error al obtener seguimientos por registro", "id_reg", id, "error", err)
		respondErr(w, http.StatusInternalServerError, "Error al obtener seguimientos del registro")
		return
	}
	respond(w, http.StatusOK, seguimientos)
}

// POST /api/seguimientos
func (h *SeguimientoHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input usecase.CreateSeguimientoInput
	if err := decode(r, &input); err != nil {
		respondErr(w, http.StatusBadRequest, "JSON inválido")
		return
	}

	seguimiento, err := h.CreateUC.Execute(r.Context(), input)
	if err != nil {
		if usecase.IsValidationError(err) {
			respondErr(w, http.StatusBadRequest, err.Error())
			return
		}
		h.Log.Errorw("error al agregar seguimiento", "error", err)
		respondErr(w, http.StatusInternalServerError, "No se pudo agregar el seguimiento")
		return
	}
	respond(w, http.StatusCreated, seguimiento)
}

// DELETE /api/seguimientos/{id}
func (h *SeguimientoHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		respondErr(w, http.StatusBadRequest, "ID inválido")
		return
	}

	// Borrar un id inexistente no se distingue de un borrado real.
	if err := h.Repo.Delete(r.Context(), id); err != nil {
		h.Log.Errorw("error al eliminar seguimiento", "id_seg", id, "error", err)
		respondErr(w, http.StatusInternalServerError, "Error al eliminar seguimiento")
		return
	}
	respond(w, http.StatusNoContent, nil)
}
