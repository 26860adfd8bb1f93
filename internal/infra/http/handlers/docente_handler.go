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

type DocenteHandler struct {
	Repo entity.DocenteRepositoryInterface
	Log  *zap.SugaredLogger
}

func NewDocenteHandler(repo entity.DocenteRepositoryInterface, log *zap.SugaredLogger) *DocenteHandler {
	return &DocenteHandler{Repo: repo, Log: log}
}

func (h *DocenteHandler) List(w http.ResponseWriter, r *http.Request) {
	docentes, err := h.Repo.FindAll(r.Context())
	if err != nil {
		h.Log.Errorw("error al obtener docentes", "error", err)
		respondErr(w, http.StatusInternalServerError, "Error al obtener docentes")
		return
	}
	respond(w, http.StatusOK, docentes)
}

func (h *DocenteHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		respondErr(w, http.StatusBadRequest, "ID inválido")
		return
	}

	docente, err := h.Repo.FindByID(r.Context(), id)
	if err != nil {
		h.Log.Errorw("error al obtener docente", "id", id, "error", err)
		respondErr(w, http.StatusInternalServerError, "Error al obtener docente")
		return
	}
	if docente == nil {
		respondEmpty(w)
		return
	}
	respond(w, http.StatusOK, docente)
}

func (h *DocenteHandler) Create(w http.ResponseWriter, r *http.Request) {
	var docente entity.Docente
	if err := decode(r, &docente); err != nil {
		respondErr(w, http.StatusBadRequest, "JSON inválido")
		return
	}

	if err := h.Repo.Create(r.Context(), &docente); err != nil {
		h.Log.Errorw("error al crear docente", "error", err)
		respondErr(w, http.StatusInternalServerError, "Error al crear docente")
		return
	}
	respond(w, http.StatusCreated, docente)
}

func (h *DocenteHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		respondErr(w, http.StatusBadRequest, "ID inválido")
		return
	}

	var docente entity.Docente
	if err := decode(r, &docente); err != nil {
		respondErr(w, http.StatusBadRequest, "JSON inválido")
		return
	}
	docente.IDDocentes = id

	if err := h.Repo.Update(r.Context(), &docente); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			respondEmpty(w)
			return
		}
		h.Log.Errorw("error al actualizar docente", "id", id, "error", err)
		respondErr(w, http.StatusInternalServerError, "Error al actualizar docente")
		return
	}
	respond(w, http.StatusOK, docente)
}

func (h *DocenteHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		respondErr(w, http.StatusBadRequest, "ID inválido")
		return
	}

	if err := h.Repo.Delete(r.Context(), id); err != nil {
		h.Log.Errorw("error al eliminar docente", "id", id, "error", err)
		respondErr(w, http.StatusInternalServerError, "Error al eliminar docente")
		return
	}
	respond(w, http.StatusNoContent, nil)
}
