// Package backend содержит клиент удалённого API сокращения ссылок.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/InQaaaaGit/trunc_web/internal/auth"
	"github.com/InQaaaaGit/trunc_web/internal/middleware"
	"go.uber.org/zap"
)

// Request описывает один вызов backend API
type Request struct {
	Method string
	// Path уже экранированный путь относительно базового URL
	Path  string
	Body  any
	Token string
}

// Response ответ backend API
type Response struct {
	StatusCode int
	Body       []byte
	Cookies    []*http.Cookie
}

// OK сообщает, что backend ответил ровно 200
func (r *Response) OK() bool {
	return r != nil && r.StatusCode == http.StatusOK
}

// Client интерфейс для обращения к backend API
type Client interface {
	Do(ctx context.Context, req Request) (*Response, error)
}

// ConnectionChecker интерфейс для проверки доступности backend
type ConnectionChecker interface {
	CheckConnection(ctx context.Context) error
}

// HTTPClient реализует Client поверх net/http
type HTTPClient struct {
	baseURL string
	client  *http.Client
	logger  *zap.Logger
}

// NewHTTPClient создает клиент для backend с указанным базовым URL
func NewHTTPClient(baseURL string, logger *zap.Logger) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		// Таймаут не задан: вызов живёт столько же, сколько входящий запрос
		client: &http.Client{},
		logger: logger,
	}
}

func (c *HTTPClient) url(path string) string {
	return c.baseURL + "/" + strings.TrimLeft(path, "/")
}

// Do выполняет запрос к backend и полностью читает тело ответа
func (c *HTTPClient) Do(ctx context.Context, req Request) (*Response, error) {
	var body io.Reader
	if req.Body != nil {
		data, err := json.Marshal(req.Body)
		if err != nil {
			return nil, fmt.Errorf("error marshaling request body: %w", err)
		}
		body = bytes.NewReader(data)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, c.url(req.Path), body)
	if err != nil {
		return nil, fmt.Errorf("error building backend request: %w", err)
	}
	if req.Body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}
	httpReq.Header.Set("Accept", "application/json")
	if req.Token != "" {
		httpReq.AddCookie(&http.Cookie{Name: auth.CookieName, Value: req.Token})
	}
	if requestID := middleware.GetRequestID(ctx); requestID != "" {
		httpReq.Header.Set(middleware.HeaderRequestID, requestID)
	}

	resp, err := c.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("backend request %s %s failed: %w", req.Method, req.Path, err)
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			c.logger.Error("Error closing backend response body", zap.Error(err))
		}
	}()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("error reading backend response: %w", err)
	}

	c.logger.Debug("Backend call finished",
		zap.String("method", req.Method),
		zap.String("path", req.Path),
		zap.Int("status", resp.StatusCode),
		zap.String("request_id", middleware.GetRequestID(ctx)),
	)

	return &Response{
		StatusCode: resp.StatusCode,
		Body:       data,
		Cookies:    resp.Cookies(),
	}, nil
}

// CheckConnection проверяет, что backend отвечает без ошибки сервера
func (c *HTTPClient) CheckConnection(ctx context.Context) error {
	resp, err := c.Do(ctx, Request{Method: http.MethodGet, Path: "/"})
	if err != nil {
		return err
	}
	if resp.StatusCode >= http.StatusInternalServerError {
		return fmt.Errorf("%w: status %d", ErrBackendUnavailable, resp.StatusCode)
	}
	return nil
}
