// Package app собирает HTTP роутер веб-клиента: middleware, страницы и прокси к backend API.
package app

import (
	"net/http"
	"net/http/pprof"
	"time"

	"github.com/InQaaaaGit/trunc_web/internal/auth"
	"github.com/InQaaaaGit/trunc_web/internal/config"
	"github.com/InQaaaaGit/trunc_web/internal/handler"
	"github.com/InQaaaaGit/trunc_web/internal/middleware"
	"github.com/InQaaaaGit/trunc_web/internal/service"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"
	"go.uber.org/zap"
)

// App представляет веб-приложение.
// Инкапсулирует конфигурацию, HTTP роутер, логгер и обработчики запросов.
type App struct {
	config  *config.Config   // Конфигурация приложения
	router  *chi.Mux         // HTTP роутер для обработки запросов
	logger  *zap.Logger      // Логгер для записи событий приложения
	handler *handler.Handler // Обработчики HTTP запросов
}

// NewApp создает приложение с сервисом поверх HTTP клиента backend и настраивает маршруты.
func NewApp(cfg *config.Config, logger *zap.Logger) *App {
	return NewAppWithService(cfg, service.NewURLService(cfg, logger), logger)
}

// NewAppWithService создает приложение с переданным сервисным слоем.
func NewAppWithService(cfg *config.Config, svc service.URLService, logger *zap.Logger) *App {
	if !cfg.HasJWTSecret() {
		logger.Error("JWT_TOKEN is not set, every authenticated request will be rejected")
	}

	a := &App{
		config:  cfg,
		router:  chi.NewRouter(),
		logger:  logger,
		handler: handler.NewHandler(svc, cfg, auth.NewHMACVerifier(), logger),
	}
	a.setupRoutes()
	return a
}

// setupRoutes регистрирует middleware и маршруты.
// Session gate стоит последним, чтобы его редиректы тоже попадали в лог запросов.
func (a *App) setupRoutes() {
	a.router.Use(middleware.RequestID)
	a.router.Use(middleware.LoggerMiddleware(a.logger))
	a.router.Use(chimiddleware.Recoverer)
	a.router.Use(middleware.GzipMiddleware)
	a.router.Use(middleware.SessionGate(a.config.JWTSecret, auth.NewHMACVerifier(), a.logger))

	// Страницы
	a.router.Get(middleware.LandingPath, a.handler.HandleLanding)
	a.router.Route(middleware.DashboardPath, func(r chi.Router) {
		r.Get("/", a.handler.HandleDashboard)
		r.Post("/urls", a.handler.HandleCreateURLForm)
		r.Post("/urls/{id}/delete", a.handler.HandleDeleteURLForm)
	})

	a.router.Post("/login", a.handler.HandleLogin)
	a.router.Post("/signup", a.handler.HandleSignup)
	a.router.Post("/logout", a.handler.HandleLogout)

	// JSON прокси к backend
	a.router.Route("/api", func(r chi.Router) {
		if len(a.config.AllowedOrigins) > 0 {
			r.Use(cors.New(cors.Options{
				AllowedOrigins:   a.config.AllowedOrigins,
				AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
				AllowedHeaders:   []string{"Content-Type", middleware.HeaderRequestID},
				AllowCredentials: true,
			}).Handler)
		}
		r.Post("/create-url", a.handler.HandleCreateURL)
		r.Get("/get-urls", a.handler.HandleGetURLs)
		r.Delete("/delete-url/{id}", a.handler.HandleDeleteURL)
	})

	a.router.Get("/ping", a.handler.HandlePing)

	// Профилирование доступно только в debug режиме
	if a.config.LogLevel == "debug" {
		a.router.HandleFunc("/debug/pprof/*", pprof.Index)
		a.router.HandleFunc("/debug/pprof/cmdline", pprof.Cmdline)
		a.router.HandleFunc("/debug/pprof/profile", pprof.Profile)
		a.router.HandleFunc("/debug/pprof/symbol", pprof.Symbol)
		a.router.HandleFunc("/debug/pprof/trace", pprof.Trace)
	}
}

// Handler возвращает настроенный роутер приложения.
func (a *App) Handler() http.Handler {
	return a.router
}

// GetServer создает HTTP сервер с таймаутами поверх роутера приложения.
func (a *App) GetServer() *http.Server {
	return &http.Server{
		Addr:         a.config.ServerAddress,
		Handler:      a.router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}
}
