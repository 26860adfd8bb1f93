package handlers

import (
	"encoding/json"
	"io"
	"net/http"
)

func decode(r *http.Request, into interface{}) error {
	rawJSON, err := io.ReadAll(r.Body)
	if err != nil {
		return err
	}
	return json.Unmarshal(rawJSON, into)
}

func respond(w http.ResponseWriter, status int, data interface{}) {
	if status == http.StatusNoContent || data == nil {
		w.WriteHeader(status)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// respondErr arma el payload de error del contrato: {"error": "<mensaje>"}.
func respondErr(w http.ResponseWriter, status int, mensaje string) {
	respond(w, status, map[string]string{"error": mensaje})
}

// respondEmpty responde 200 con objeto vacío: el contrato de los GET por
// id que no encuentran fila (distinto del 404 de update/delete).
func respondEmpty(w http.ResponseWriter) {
	respond(w, http.StatusOK, struct{}{})
}
