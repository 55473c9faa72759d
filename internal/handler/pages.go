package handler

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"github.com/InQaaaaGit/trunc_web/internal/auth"
	"github.com/InQaaaaGit/trunc_web/internal/backend"
	"github.com/InQaaaaGit/trunc_web/internal/middleware"
	"github.com/InQaaaaGit/trunc_web/internal/models"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// Значения параметра status после post/redirect/get
const (
	statusCreated      = "created"
	statusDeleted      = "deleted"
	statusCreateFailed = "create-failed"
	statusDeleteFailed = "delete-failed"
	statusInvalidURL   = "invalid-url"
)

var statusNotices = map[string]string{
	statusCreated: "Short URL created",
	statusDeleted: "URL deleted",
}

var statusErrors = map[string]string{
	statusCreateFailed: createFailedMessage,
	statusDeleteFailed: deleteFailedMessage,
	statusInvalidURL:   invalidURLFormMessage,
}

type landingPage struct {
	Error string
}

type dashboardPage struct {
	Dashboard *models.Dashboard
	Notice    string
	Error     string
}

// HandleLanding отдает страницу входа и регистрации
func (h *Handler) HandleLanding(w http.ResponseWriter, r *http.Request) {
	h.render(w, http.StatusOK, landingTemplate, landingPage{})
}

// HandleDashboard отдает список ссылок пользователя с аналитикой
func (h *Handler) HandleDashboard(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.pageSession(w, r)
	if !ok {
		return
	}

	status := r.URL.Query().Get("status")
	page := dashboardPage{
		Notice: statusNotices[status],
		Error:  statusErrors[status],
	}

	dashboard, err := h.service.GetDashboard(r.Context(), sess)
	if err != nil {
		h.logger.Error("Error building dashboard",
			zap.String("user_id", sess.UserID()),
			zap.String("request_id", middleware.GetRequestID(r.Context())),
			zap.Error(err))
		page.Notice = ""
		page.Error = fetchFailedMessage
		h.render(w, http.StatusInternalServerError, dashboardTemplate, page)
		return
	}

	page.Dashboard = dashboard
	h.render(w, http.StatusOK, dashboardTemplate, page)
}

// HandleCreateURLForm создает ссылку из формы дашборда
func (h *Handler) HandleCreateURLForm(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.pageSession(w, r)
	if !ok {
		return
	}

	if err := r.ParseForm(); err != nil {
		redirectDashboard(w, r, statusInvalidURL)
		return
	}

	target := strings.TrimSpace(r.PostForm.Get("url"))
	if !isValidURL(target) {
		redirectDashboard(w, r, statusInvalidURL)
		return
	}

	payload := map[string]any{"url": target}
	if code := strings.TrimSpace(r.PostForm.Get("customCode")); code != "" {
		payload["customCode"] = code
	}

	if _, err := h.service.CreateShortURL(r.Context(), sess, payload); err != nil {
		h.logger.Error("Error creating shortened URL from form",
			zap.String("user_id", sess.UserID()),
			zap.String("request_id", middleware.GetRequestID(r.Context())),
			zap.Error(err))
		redirectDashboard(w, r, statusCreateFailed)
		return
	}

	redirectDashboard(w, r, statusCreated)
}

// HandleDeleteURLForm удаляет ссылку из формы дашборда
func (h *Handler) HandleDeleteURLForm(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.pageSession(w, r)
	if !ok {
		return
	}

	id := chi.URLParam(r, "id")
	if _, err := h.service.DeleteURL(r.Context(), sess, id); err != nil {
		h.logger.Error("Error deleting URL from form",
			zap.String("user_id", sess.UserID()),
			zap.String("url_id", id),
			zap.String("request_id", middleware.GetRequestID(r.Context())),
			zap.Error(err))
		redirectDashboard(w, r, statusDeleteFailed)
		return
	}

	redirectDashboard(w, r, statusDeleted)
}

// HandleLogin передает учетные данные backend и выставляет полученную cookie
func (h *Handler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	h.forwardCredentials(w, r, h.service.Login, loginFailedMessage, DashboardRedirect)
}

// HandleSignup регистрирует пользователя и возвращает на главную
func (h *Handler) HandleSignup(w http.ResponseWriter, r *http.Request) {
	h.forwardCredentials(w, r, h.service.Signup, signupFailedMessage, LandingRedirect)
}

// HandleLogout завершает сессию на backend
func (h *Handler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	var token string
	if cookie, err := r.Cookie(auth.CookieName); err == nil {
		token = cookie.Value
	}

	resp, err := h.service.Logout(r.Context(), token)
	if err != nil {
		h.logger.Error("Logout failed",
			zap.String("request_id", middleware.GetRequestID(r.Context())),
			zap.Error(err))
		http.Redirect(w, r, DashboardRedirect, http.StatusSeeOther)
		return
	}

	if !relayCookies(w, resp) {
		http.SetCookie(w, &http.Cookie{
			Name:     auth.CookieName,
			Value:    "",
			Path:     "/",
			MaxAge:   -1,
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})
	}
	http.Redirect(w, r, LandingRedirect, http.StatusSeeOther)
}

// Адреса перенаправления после входа, регистрации и выхода
const (
	LandingRedirect   = middleware.LandingPath
	DashboardRedirect = middleware.DashboardPath
)

type credentialsCall func(ctx context.Context, creds models.Credentials) (*backend.Response, error)

func (h *Handler) forwardCredentials(w http.ResponseWriter, r *http.Request, call credentialsCall, failMessage, redirectTo string) {
	if err := r.ParseForm(); err != nil {
		h.render(w, http.StatusBadRequest, landingTemplate, landingPage{Error: failMessage})
		return
	}

	creds := models.Credentials{
		Username: strings.TrimSpace(r.PostForm.Get("username")),
		Email:    strings.TrimSpace(r.PostForm.Get("email")),
		Password: r.PostForm.Get("password"),
	}

	resp, err := call(r.Context(), creds)
	if err != nil {
		// учетные данные в лог не попадают
		h.logger.Warn("Credentials rejected by backend",
			zap.String("path", r.URL.Path),
			zap.String("username", creds.Username),
			zap.String("request_id", middleware.GetRequestID(r.Context())),
			zap.Error(err))
		h.render(w, http.StatusUnauthorized, landingTemplate, landingPage{Error: failMessage})
		return
	}

	relayCookies(w, resp)
	http.Redirect(w, r, redirectTo, http.StatusSeeOther)
}

// relayCookies переносит cookie backend на домен этого сервиса.
// Возвращает true, если среди них была cookie сессии.
func relayCookies(w http.ResponseWriter, resp *backend.Response) bool {
	var hasSession bool
	for _, c := range resp.Cookies {
		relayed := *c
		relayed.Domain = ""
		if relayed.Path == "" {
			relayed.Path = "/"
		}
		// формы дашборда и /api не защищены CSRF-токеном, поэтому cookie
		// этого сервиса не уходит с кросс-сайтовыми POST запросами
		if relayed.SameSite != http.SameSiteStrictMode {
			relayed.SameSite = http.SameSiteLaxMode
		}
		http.SetCookie(w, &relayed)
		if c.Name == auth.CookieName {
			hasSession = true
		}
	}
	return hasSession
}

// pageSession проверяет сессию для страниц дашборда, при ошибке отправляет на главную
func (h *Handler) pageSession(w http.ResponseWriter, r *http.Request) (*auth.Session, bool) {
	sess, err := auth.FromRequest(r, h.cfg.JWTSecret, h.verifier)
	if err != nil {
		h.logger.Warn("Dashboard request without valid session",
			zap.String("path", r.URL.Path),
			zap.String("request_id", middleware.GetRequestID(r.Context())),
			zap.Error(err))
		http.Redirect(w, r, LandingRedirect, http.StatusTemporaryRedirect)
		return nil, false
	}
	return sess, true
}

func redirectDashboard(w http.ResponseWriter, r *http.Request, status string) {
	http.Redirect(w, r, DashboardRedirect+"?status="+url.QueryEscape(status), http.StatusSeeOther)
}

func isValidURL(raw string) bool {
	u, err := url.ParseRequestURI(raw)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
