// Package handler содержит HTTP обработчики страниц и прокси к backend API.
package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/InQaaaaGit/trunc_web/internal/auth"
	"github.com/InQaaaaGit/trunc_web/internal/config"
	"github.com/InQaaaaGit/trunc_web/internal/middleware"
	"github.com/InQaaaaGit/trunc_web/internal/models"
	"github.com/InQaaaaGit/trunc_web/internal/service"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

const (
	contentTypeJSON = "application/json"
	contentTypeHTML = "text/html; charset=utf-8"

	// maxPayloadBytes ограничивает тело запроса на создание ссылки после распаковки
	maxPayloadBytes = 1 << 20
)

// Сообщения об ошибках, которые видит клиент
const (
	invalidJSONMessage    = "Invalid JSON payload"
	noSessionMessage      = "No session found"
	secretMissingMessage  = "JWT Secret missing"
	invalidTokenMessage   = "Invalid token payload"
	createFailedMessage   = "Failed to create shortened URL"
	fetchFailedMessage    = "Failed to fetch URLs"
	deleteFailedMessage   = "Failed to delete URL"
	backendFailedMessage  = "Backend connection error"
	internalErrorMessage  = "Internal server error"
	loginFailedMessage    = "Login failed"
	signupFailedMessage   = "Signup failed"
	invalidURLFormMessage = "Please enter a valid URL"
)

type Handler struct {
	service   service.URLService
	cfg       *config.Config
	verifier  auth.TokenVerifier
	logger    *zap.Logger
	templates *pageTemplates
}

func NewHandler(service service.URLService, cfg *config.Config, verifier auth.TokenVerifier, logger *zap.Logger) *Handler {
	return &Handler{
		service:   service,
		cfg:       cfg,
		verifier:  verifier,
		logger:    logger,
		templates: mustParseTemplates(),
	}
}

// writeJSONError пишет ответ вида {"error": "..."}
func (h *Handler) writeJSONError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", contentTypeJSON)
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(models.ErrorResponse{Error: message}); err != nil {
		h.logger.Error("Error writing JSON error response", zap.Error(err))
	}
}

// writeBackendBody отдает тело ответа backend без изменений
func (h *Handler) writeBackendBody(w http.ResponseWriter, body []byte) {
	w.Header().Set("Content-Type", contentTypeJSON)
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(body); err != nil {
		h.logger.Error("Error writing response", zap.Error(err))
	}
}

// authenticate заново проверяет сессию запроса. Заголовки, выставленные
// middleware, не используются. При ошибке ответ уже записан.
func (h *Handler) authenticate(w http.ResponseWriter, r *http.Request) (*auth.Session, bool) {
	sess, err := auth.FromRequest(r, h.cfg.JWTSecret, h.verifier)
	if err == nil {
		return sess, true
	}

	fields := []zap.Field{
		zap.String("path", r.URL.Path),
		zap.String("request_id", middleware.GetRequestID(r.Context())),
		zap.Error(err),
	}
	switch {
	case errors.Is(err, auth.ErrNoSession):
		h.logger.Info("Request without session", fields...)
		h.writeJSONError(w, http.StatusUnauthorized, noSessionMessage)
	case errors.Is(err, auth.ErrSecretMissing):
		h.logger.Error("JWT secret is not configured", fields...)
		h.writeJSONError(w, http.StatusInternalServerError, secretMissingMessage)
	default:
		h.logger.Warn("Session token rejected", fields...)
		h.writeJSONError(w, http.StatusUnauthorized, invalidTokenMessage)
	}
	return nil, false
}

// HandleCreateURL обрабатывает POST /api/create-url
func (h *Handler) HandleCreateURL(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxPayloadBytes)
	data, err := io.ReadAll(r.Body)
	if err != nil {
		h.logger.Info("Error reading request body", zap.Error(err))
		h.writeJSONError(w, http.StatusBadRequest, invalidJSONMessage)
		return
	}

	// null и не-объекты тоже считаются некорректным телом
	var payload map[string]any
	if err := json.Unmarshal(data, &payload); err != nil || payload == nil {
		h.writeJSONError(w, http.StatusBadRequest, invalidJSONMessage)
		return
	}

	sess, ok := h.authenticate(w, r)
	if !ok {
		return
	}

	body, err := h.service.CreateShortURL(r.Context(), sess, payload)
	if err != nil {
		h.logger.Error("Error creating shortened URL",
			zap.String("user_id", sess.UserID()),
			zap.String("request_id", middleware.GetRequestID(r.Context())),
			zap.Error(err))
		h.writeJSONError(w, http.StatusInternalServerError, createFailedMessage)
		return
	}

	h.writeBackendBody(w, body)
}

// HandleGetURLs обрабатывает GET /api/get-urls
func (h *Handler) HandleGetURLs(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.authenticate(w, r)
	if !ok {
		return
	}

	body, err := h.service.GetUserURLs(r.Context(), sess)
	if err != nil {
		h.logger.Error("Error fetching URLs",
			zap.String("user_id", sess.UserID()),
			zap.String("request_id", middleware.GetRequestID(r.Context())),
			zap.Error(err))
		h.writeJSONError(w, http.StatusInternalServerError, fetchFailedMessage)
		return
	}

	h.writeBackendBody(w, body)
}

// HandleDeleteURL обрабатывает DELETE /api/delete-url/{id}
func (h *Handler) HandleDeleteURL(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.authenticate(w, r)
	if !ok {
		return
	}

	id := chi.URLParam(r, "id")
	body, err := h.service.DeleteURL(r.Context(), sess, id)
	if err != nil {
		h.logger.Error("Error deleting URL",
			zap.String("user_id", sess.UserID()),
			zap.String("url_id", id),
			zap.String("request_id", middleware.GetRequestID(r.Context())),
			zap.Error(err))
		h.writeJSONError(w, http.StatusInternalServerError, deleteFailedMessage)
		return
	}

	h.writeBackendBody(w, body)
}
