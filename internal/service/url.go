// Package service реализует операции над ссылками пользователя поверх backend API.
package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/InQaaaaGit/trunc_web/internal/auth"
	"github.com/InQaaaaGit/trunc_web/internal/backend"
	"github.com/InQaaaaGit/trunc_web/internal/config"
	"github.com/InQaaaaGit/trunc_web/internal/models"
	"go.uber.org/zap"
)

const (
	createURLPath  = "/create-short-url/"
	listURLsPath   = "/get-all-urls/"
	deleteURLPath  = "/delete-url/"
	loginPath      = "/login"
	signupPath     = "/signup"
	logoutPath     = "/logout"
	userIDBodyName = "user_id"
)

// ErrNoConnectionCheck возвращается, когда клиент backend не умеет проверять соединение
var ErrNoConnectionCheck = errors.New("backend client does not support connection check")

// ErrInvalidURLID возвращается для идентификатора, который не может быть сегментом пути
var ErrInvalidURLID = errors.New("invalid URL id")

// URLService определяет интерфейс сервиса для работы со ссылками пользователя
type URLService interface {
	// CreateShortURL создает ссылку, подставляя user_id из сессии
	CreateShortURL(ctx context.Context, sess *auth.Session, payload map[string]any) ([]byte, error)
	// GetUserURLs возвращает тело ответа backend со ссылками пользователя
	GetUserURLs(ctx context.Context, sess *auth.Session) ([]byte, error)
	// DeleteURL удаляет ссылку по идентификатору
	DeleteURL(ctx context.Context, sess *auth.Session, id string) ([]byte, error)
	// GetDashboard собирает сводку по ссылкам пользователя
	GetDashboard(ctx context.Context, sess *auth.Session) (*models.Dashboard, error)
	Login(ctx context.Context, creds models.Credentials) (*backend.Response, error)
	Signup(ctx context.Context, creds models.Credentials) (*backend.Response, error)
	Logout(ctx context.Context, token string) (*backend.Response, error)
	CheckConnection(ctx context.Context) error
}

// URLServiceImpl реализует URLService
type URLServiceImpl struct {
	client backend.Client
	config *config.Config
	logger *zap.Logger
}

// NewURLService создает сервис с HTTP клиентом backend из конфигурации
func NewURLService(cfg *config.Config, logger *zap.Logger) *URLServiceImpl {
	return NewURLServiceWithClient(backend.NewHTTPClient(cfg.BackendURL, logger), cfg, logger)
}

// NewURLServiceWithClient создает сервис с переданным клиентом backend
func NewURLServiceWithClient(client backend.Client, cfg *config.Config, logger *zap.Logger) *URLServiceImpl {
	return &URLServiceImpl{
		client: client,
		config: cfg,
		logger: logger,
	}
}

// call выполняет запрос и возвращает тело только для ответа 200
func (s *URLServiceImpl) call(ctx context.Context, op string, req backend.Request) ([]byte, error) {
	resp, err := s.forward(ctx, op, req)
	if err != nil {
		return nil, err
	}
	return resp.Body, nil
}

// CreateShortURL создает короткую ссылку. Значение user_id из payload всегда заменяется.
func (s *URLServiceImpl) CreateShortURL(ctx context.Context, sess *auth.Session, payload map[string]any) ([]byte, error) {
	body := make(map[string]any, len(payload)+1)
	for k, v := range payload {
		body[k] = v
	}
	body[userIDBodyName] = sess.UserID()

	return s.call(ctx, "create short URL", backend.Request{
		Method: http.MethodPost,
		Path:   createURLPath,
		Body:   body,
		Token:  sess.Token,
	})
}

// GetUserURLs получает ссылки пользователя
func (s *URLServiceImpl) GetUserURLs(ctx context.Context, sess *auth.Session) ([]byte, error) {
	return s.call(ctx, "get user URLs", backend.Request{
		Method: http.MethodGet,
		Path:   listURLsPath + url.PathEscape(sess.UserID()),
		Token:  sess.Token,
	})
}

// DeleteURL удаляет ссылку
func (s *URLServiceImpl) DeleteURL(ctx context.Context, sess *auth.Session, id string) ([]byte, error) {
	// PathEscape не трогает точки, а "." и ".." схлопываются при разборе пути
	switch id {
	case "", ".", "..":
		return nil, fmt.Errorf("delete URL: %w: %q", ErrInvalidURLID, id)
	}
	return s.call(ctx, "delete URL", backend.Request{
		Method: http.MethodDelete,
		Path:   deleteURLPath + url.PathEscape(id),
		Token:  sess.Token,
	})
}

// GetDashboard получает ссылки пользователя и считает по ним аналитику
func (s *URLServiceImpl) GetDashboard(ctx context.Context, sess *auth.Session) (*models.Dashboard, error) {
	body, err := s.GetUserURLs(ctx, sess)
	if err != nil {
		return nil, err
	}

	var list models.URLListResponse
	if err := json.Unmarshal(body, &list); err != nil {
		return nil, fmt.Errorf("error decoding URL list: %w", err)
	}

	username := ""
	if sess.Claims != nil {
		username = sess.Claims.Username
	}
	return BuildDashboard(username, list.Data, s.config.ShortLinkBaseURL), nil
}

// Login передает учетные данные backend. Ответ возвращается целиком, чтобы передать cookie клиенту.
func (s *URLServiceImpl) Login(ctx context.Context, creds models.Credentials) (*backend.Response, error) {
	return s.forward(ctx, "login", backend.Request{Method: http.MethodPost, Path: loginPath, Body: creds})
}

// Signup регистрирует пользователя на backend
func (s *URLServiceImpl) Signup(ctx context.Context, creds models.Credentials) (*backend.Response, error) {
	return s.forward(ctx, "signup", backend.Request{Method: http.MethodPost, Path: signupPath, Body: creds})
}

// Logout завершает сессию на backend
func (s *URLServiceImpl) Logout(ctx context.Context, token string) (*backend.Response, error) {
	return s.forward(ctx, "logout", backend.Request{Method: http.MethodPost, Path: logoutPath, Token: token})
}

func (s *URLServiceImpl) forward(ctx context.Context, op string, req backend.Request) (*backend.Response, error) {
	resp, err := s.client.Do(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if !resp.OK() {
		return nil, fmt.Errorf("%w: %s: status %d: %s", backend.ErrUnexpectedStatus, op, resp.StatusCode, resp.Body)
	}
	return resp, nil
}

// CheckConnection проверяет доступность backend
func (s *URLServiceImpl) CheckConnection(ctx context.Context) error {
	if checker, ok := s.client.(backend.ConnectionChecker); ok {
		return checker.CheckConnection(ctx)
	}
	return ErrNoConnectionCheck
}
