package handler

import (
	"net/http"

	"go.uber.org/zap"
)

// HandlePing проверяет доступность backend API
func (h *Handler) HandlePing(w http.ResponseWriter, r *http.Request) {
	if err := h.service.CheckConnection(r.Context()); err != nil {
		h.logger.Error("Backend connection check failed", zap.Error(err))
		http.Error(w, backendFailedMessage, http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
}
