package handlers

import (
	"database/sql"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/academia-crm/backend/internal/entity"
)

type AsistenciaHandler struct {
	Repo entity.AsistenciaRepositoryInterface
	Log  *zap.SugaredLogger
}

func NewAsistenciaHandler(repo entity.AsistenciaRepositoryInterface, log *zap.SugaredLogger) *AsistenciaHandler {
	return &AsistenciaHandler{Repo: repo, Log: log}
}

// List entrega la vista con JOIN: nombre del estudiante, salón y docente.
func (h *AsistenciaHandler) List(w http.ResponseWriter, r *http.Request) {
	asistencias, err := h.Repo.FindAllDetalle(r.Context())
	if err != nil {
		h.Log.Errorw("error al obtener asistencias", "error", err)
		respondErr(w, http.StatusInternalServerError, "Error al obtener asistencias")
		return
	}
	respond(w, http.StatusOK, asistencias)
}

func (h *AsistenciaHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		respondErr(w, http.StatusBadRequest, "ID inválido")
		return
	}

	asistencia, err := h.Repo.FindByID(r.Context(), id)
	if err != nil {
		h.Log.Errorw("error al obtener asistencia", "id", id, "error", err)
		respondErr(w, http.StatusInternalServerError, "Error al obtener asistencia")
		return
	}
	if asistencia == nil {
		respondEmpty(w)
		return
	}
	respond(w, http.StatusOK, asistencia)
}

func (h *AsistenciaHandler) Create(w http.ResponseWriter, r *http.Request) {
	var asistencia entity.Asistencia
	if err := decode(r, &asistencia); err != nil {
		respondErr(w, http.StatusBadRequest, "JSON inválido")
		return
	}

	if err := h.Repo.Create(r.Context(), &asistencia); err != nil {
		h.Log.Errorw("error al crear asistencia", "error", err)
		respondErr(w, http.StatusInternalServerError, "Error al crear asistencia")
		return
	}
	respond(w, http.StatusCreated, asistencia)
}

func (h *AsistenciaHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		respondErr(w, http.StatusBadRequest, "ID inválido")
		return
	}

	var asistencia entity.Asistencia
	if err := decode(r, &asistencia); err != nil {
		respondErr(w, http.StatusBadRequest, "JSON inválido")
		return
	}
	asistencia.IDAsistencia = id

	if err := h.Repo.Update(r.Context(), &asistencia); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			respondEmpty(w)
			return
		}
		h.Log.Errorw("error al actualizar asistencia", "id", id, "error", err)
		respondErr(w, http.StatusInternalServerError, "Error al actualizar asistencia")
		return
	}
	respond(w, http.StatusOK, asistencia)
}

func (h *AsistenciaHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		respondErr(w, http.StatusBadRequest, "ID inválido")
		return
	}

	if err := h.Repo.Delete(r.Context(), id); err != nil {
		h.Log.Errorw("error al eliminar asistencia", "id", id, "error", err)
		respondErr(w, http.StatusInternalServerError, "Error al eliminar asistencia")
		return
	}
	respond(w, http.StatusNoContent, nil)
}
