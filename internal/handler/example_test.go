package handler_test

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"

	"github.com/InQaaaaGit/trunc_web/internal/auth"
	"github.com/InQaaaaGit/trunc_web/internal/config"
	"github.com/InQaaaaGit/trunc_web/internal/handler"
	"github.com/InQaaaaGit/trunc_web/internal/service"
	"go.uber.org/zap"
)

// ExampleHandler_HandleCreateURL демонстрирует ответ на запрос без cookie сессии.
func ExampleHandler_HandleCreateURL() {
	cfg := &config.Config{
		BackendURL: "http://backend.invalid",
		JWTSecret:  "secret",
	}
	logger := zap.NewNop()
	h := handler.NewHandler(service.NewURLService(cfg, logger), cfg, auth.NewHMACVerifier(), logger)

	req := httptest.NewRequest(http.MethodPost, "/api/create-url", strings.NewReader(`{"url":"https://practicum.yandex.ru/"}`))
	w := httptest.NewRecorder()
	h.HandleCreateURL(w, req)

	fmt.Println(w.Code)
	fmt.Print(w.Body.String())

	// Output:
	// 401
	// {"error":"No session found"}
}

// ExampleHandler_HandleGetURLs демонстрирует ответ, когда секрет подписи не настроен.
func ExampleHandler_HandleGetURLs() {
	cfg := &config.Config{BackendURL: "http://backend.invalid"}
	logger := zap.NewNop()
	h := handler.NewHandler(service.NewURLService(cfg, logger), cfg, auth.NewHMACVerifier(), logger)

	req := httptest.NewRequest(http.MethodGet, "/api/get-urls", nil)
	req.AddCookie(&http.Cookie{Name: auth.CookieName, Value: "any-token"})
	w := httptest.NewRecorder()
	h.HandleGetURLs(w, req)

	fmt.Println(w.Code)
	fmt.Print(w.Body.String())

	// Output:
	// 500
	// {"error":"JWT Secret missing"}
}
