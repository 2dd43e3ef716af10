package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/smartstudy/flashcards-api/apperr"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("encode response", "error", err)
	}
}

type detailResponse struct {
	Detail string `json:"detail"`
}

// handleErr logs the failure and writes it as a {"detail": ...} body,
// the error shape existing clients expect.
func handleErr(w http.ResponseWriter, r *http.Request, err error) {
	slog.Error("request error",
		"error", err,
		"method", r.Method,
		"url", r.URL.String(),
	)

	var ae *apperr.Error
	if errors.As(err, &ae) {
		writeJSON(w, ae.StatusCode, detailResponse{Detail: ae.Msg})
		return
	}

	writeJSON(w, http.StatusInternalServerError, detailResponse{Detail: "Internal Server Error"})
}
