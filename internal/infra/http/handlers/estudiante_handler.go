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

type EstudianteHandler struct {
	Repo entity.EstudianteRepositoryInterface
	Log  *zap.SugaredLogger
}

func NewEstudianteHandler(repo entity.EstudianteRepositoryInterface, log *zap.SugaredLogger) *EstudianteHandler {
	return &EstudianteHandler{Repo: repo, Log: log}
}

func (h *EstudianteHandler) List(w http.ResponseWriter, r *http.Request) {
	estudiantes, err := h.Repo.FindAll(r.Context())
	if err != nil {
		h.Log.Errorw("error al obtener estudiantes", "error", err)
		respondErr(w, http.StatusInternalServerError, "Error al obtener estudiantes")
		return
	}
	respond(w, http.StatusOK, estudiantes)
}

func (h *EstudianteHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		respondErr(w, http.StatusBadRequest, "ID inválido")
		return
	}

	estudiante, err := h.Repo.FindByID(r.Context(), id)
	if err != nil {
		h.Log.Errorw("error al obtener estudiante", "id", id, "error", err)
		respondErr(w, http.StatusInternalServerError, "Error al obtener estudiante")
		return
	}
	if estudiante == nil {
		respondEmpty(w)
		return
	}
	respond(w, http.StatusOK, estudiante)
}

func (h *EstudianteHandler) Create(w http.ResponseWriter, r *http.Request) {
	var estudiante entity.Estudiante
	if err := decode(r, &estudiante); err != nil {
		respondErr(w, http.StatusBadRequest, "JSON inválido")
		return
	}

	if err := h.Repo.Create(r.Context(), &estudiante); err != nil {
		h.Log.Errorw("error al crear estudiante", "error", err)
		respondErr(w, http.StatusInternalServerError, "Error al crear estudiante")
		return
	}
	respond(w, http.StatusCreated, estudiante)
}

func (h *EstudianteHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		respondErr(w, http.StatusBadRequest, "ID inválido")
		return
	}

	var estudiante entity.Estudiante
	if err := decode(r, &estudiante); err != nil {
		respondErr(w, http.StatusBadRequest, "JSON inválido")
		return
	}
	estudiante.IDEstudiante = id

	if err := h.Repo.Update(r.Context(), &estudiante); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			respondEmpty(w)
			return
		}
		h.Log.Errorw("error al actualizar estudiante", "id", id, "error", err)
		respondErr(w, http.StatusInternalServerError, "Error al actualizar estudiante")
		return
	}
	respond(w, http.StatusOK, estudiante)
}

func (h *EstudianteHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		respondErr(w, http.StatusBadRequest, "ID inválido")
		return
	}

	if err := h.Repo.Delete(r.Context(), id); err != nil {
		h.Log.Errorw("error al eliminar estudiante", "id", id, "error", err)
		respondErr(w, http.StatusInternalServerError, "Error al eliminar estudiante")
		return
	}
	respond(w, http.StatusNoContent, nil)
}
