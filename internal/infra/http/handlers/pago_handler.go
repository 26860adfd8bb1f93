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

type PagoHandler struct {
	Repo entity.PagoRepositoryInterface
	Log  *zap.SugaredLogger
}

func NewPagoHandler(repo entity.PagoRepositoryInterface, log *zap.SugaredLogger) *PagoHandler {
	return &PagoHandler{Repo: repo, Log: log}
}

func (h *PagoHandler) List(w http.ResponseWriter, r *http.Request) {
	pagos, err := h.Repo.FindAll(r.Context())
	if err != nil {
		h.Log.Errorw("error al obtener pagos", "error", err)
		respondErr(w, http.StatusInternalServerError, "Error al obtener pagos")
		return
	}
	respond(w, http.StatusOK, pagos)
}

func (h *PagoHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		respondErr(w, http.StatusBadRequest, "ID inválido")
		return
	}

	pago, err := h.Repo.FindByID(r.Context(), id)
	if err != nil {
		h.Log.Errorw("error al obtener pago", "id", id, "error", err)
		respondErr(w, http.StatusInternalServerError, "Error al obtener pago")
		return
	}
	if pago == nil {
		respondEmpty(w)
		return
	}
	respond(w, http.StatusOK, pago)
}

func (h *PagoHandler) Create(w http.ResponseWriter, r *http.Request) {
	var pago entity.Pago
	if err := decode(r, &pago); err != nil {
		respondErr(w, http.StatusBadRequest, "JSON inválido")
		return
	}

	if err := h.Repo.Create(r.Context(), &pago); err != nil {
		h.Log.Errorw("error al crear pago", "error", err)
		respondErr(w, http.StatusInternalServerError, "Error al crear pago")
		return
	}
	respond(w, http.StatusCreated, pago)
}

func (h *PagoHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		respondErr(w, http.StatusBadRequest, "ID inválido")
		return
	}

	var pago entity.Pago
	if err := decode(r, &pago); err != nil {
		respondErr(w, http.StatusBadRequest, "JSON inválido")
		return
	}
	pago.IDPago = id

	if err := h.Repo.Update(r.Context(), &pago); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			respondEmpty(w)
			return
		}
		h.Log.Errorw("error al actualizar pago", "id", id, "error", err)
		respondErr(w, http.StatusInternalServerError, "Error al actualizar pago")
		return
	}
	respond(w, http.StatusOK, pago)
}

func (h *PagoHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		respondErr(w, http.StatusBadRequest, "ID inválido")
		return
	}

	if err := h.Repo.Delete(r.Context(), id); err != nil {
		h.Log.Errorw("error al eliminar pago", "id", id, "error", err)
		respondErr(w, http.StatusInternalServerError, "Error al eliminar pago")
		return
	}
	respond(w, http.StatusNoContent, nil)
}
