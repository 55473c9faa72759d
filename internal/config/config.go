// Package config собирает конфигурацию веб-клиента сервиса сокращения ссылок.
// Источники в порядке возрастания приоритета: значения по умолчанию,
// JSON-файл, флаги командной строки, переменные окружения.
package config

import (
	"flag"
	"os"
	"strings"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

// Config хранит конфигурацию приложения.
type Config struct {
	ServerAddress    string   `env:"SERVER_ADDRESS"`       // Адрес для запуска HTTP-сервера
	BackendURL       string   `env:"API_BASE_URL"`         // Базовый адрес внешнего API сокращения ссылок
	ShortLinkBaseURL string   `env:"SHORT_LINK_BASE_URL"`  // Префикс публичных коротких ссылок
	JWTSecret        string   `env:"JWT_TOKEN"`            // Секрет для проверки подписи токена сессии
	LogLevel         string   `env:"LOG_LEVEL"`            // Уровень логирования
	AllowedOrigins   []string `env:"CORS_ALLOWED_ORIGINS" envSeparator:","`
	EnableHTTPS      string   `env:"ENABLE_HTTPS"`
	TLSCertFile      string   `env:"TLS_CERT_FILE"`
	TLSKeyFile       string   `env:"TLS_KEY_FILE"`
	ConfigFile       string   `env:"CONFIG"`
}

// Значения по умолчанию.
const (
	DefaultServerAddress    = ":8080"
	DefaultBackendURL       = "https://url.dipdev.xyz/"
	DefaultShortLinkBaseURL = "https://url.dipdev.xyz/r/"
	DefaultLogLevel         = "info"
	DefaultTLSCertFile      = "server.crt"
	DefaultTLSKeyFile       = "server.key"
)

// NewConfig инициализирует конфигурацию, читая .env, JSON-файл, флаги и переменные окружения.
func NewConfig() (*Config, error) {
	// .env нужен только при локальной разработке, его отсутствие не ошибка
	_ = godotenv.Load()

	cfg := &Config{
		ServerAddress:    DefaultServerAddress,
		BackendURL:       DefaultBackendURL,
		ShortLinkBaseURL: DefaultShortLinkBaseURL,
		LogLevel:         DefaultLogLevel,
		TLSCertFile:      DefaultTLSCertFile,
		TLSKeyFile:       DefaultTLSKeyFile,
	}

	// Путь к JSON-файлу нужен до разбора остальных флагов
	cfg.ConfigFile = lookupConfigFile(os.Args[1:])
	if cfg.ConfigFile != "" {
		jsonCfg, err := loadJSONConfig(cfg.ConfigFile)
		if err != nil {
			return nil, err
		}
		applyJSONConfig(cfg, jsonCfg)
	}

	var enableHTTPS bool
	flag.StringVar(&cfg.ServerAddress, "a", cfg.ServerAddress, "Адрес запуска HTTP-сервера (env: SERVER_ADDRESS)")
	flag.StringVar(&cfg.BackendURL, "b", cfg.BackendURL, "Базовый адрес API сокращения ссылок (env: API_BASE_URL)")
	flag.StringVar(&cfg.ShortLinkBaseURL, "r", cfg.ShortLinkBaseURL, "Префикс коротких ссылок (env: SHORT_LINK_BASE_URL)")
	flag.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "Уровень логирования (env: LOG_LEVEL)")
	flag.StringVar(&cfg.ConfigFile, "c", cfg.ConfigFile, "Путь к JSON-файлу конфигурации (env: CONFIG)")
	flag.BoolVar(&enableHTTPS, "s", cfg.IsHTTPSEnabled(), "Включить HTTPS (env: ENABLE_HTTPS)")

	flag.Parse()

	if enableHTTPS {
		cfg.EnableHTTPS = "true"
	}

	// Переменные окружения имеют наивысший приоритет
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// IsHTTPSEnabled сообщает, нужно ли запускать сервер с TLS.
// Любое непустое значение, кроме "false" и "0", включает HTTPS.
func (c *Config) IsHTTPSEnabled() bool {
	switch strings.ToLower(strings.TrimSpace(c.EnableHTTPS)) {
	case "", "false", "0":
		return false
	default:
		return true
	}
}

// HasJWTSecret сообщает, задан ли секрет проверки токенов.
func (c *Config) HasJWTSecret() bool {
	return c.JWTSecret != ""
}

// lookupConfigFile ищет флаг -c среди аргументов без вызова flag.Parse.
// Переменная CONFIG, как и остальные переменные окружения, важнее флага.
func lookupConfigFile(args []string) string {
	if path := os.Getenv("CONFIG"); path != "" {
		return path
	}
	var path string
	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch {
		case arg == "-c" || arg == "--c":
			if i+1 < len(args) {
				path = args[i+1]
				i++
			}
		case strings.HasPrefix(arg, "-c="):
			path = strings.TrimPrefix(arg, "-c=")
		case strings.HasPrefix(arg, "--c="):
			path = strings.TrimPrefix(arg, "--c=")
		}
	}
	return path
}
