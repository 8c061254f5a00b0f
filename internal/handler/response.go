package handler

import (
	"net/http"

	"github.com/bytedance/sonic"
	"github.com/kdduha/diagram-ai-backend/internal/models"
)

func writeJSON(w http.ResponseWriter, code int, v any) {
	data, err := sonic.ConfigDefault.Marshal(v)
	if err != nil {
		http.Error(w, "failed to encode response", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_, _ = w.Write(data)
}

func writeError(w http.ResponseWriter, code int, detail string) {
	writeJSON(w, code, models.ErrorResponse{Detail: detail})
}
