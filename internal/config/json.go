package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// JSONConfig описывает файл конфигурации. Указатели позволяют отличить
// отсутствующее поле от пустого значения.
type JSONConfig struct {
	ServerAddress    *string  `json:"server_address"`
	BackendURL       *string  `json:"api_base_url"`
	ShortLinkBaseURL *string  `json:"short_link_base_url"`
	LogLevel         *string  `json:"log_level"`
	AllowedOrigins   []string `json:"cors_allowed_origins"`
	EnableHTTPS      *bool    `json:"enable_https"`
	TLSCertFile      *string  `json:"tls_cert_file"`
	TLSKeyFile       *string  `json:"tls_key_file"`
}

// loadJSONConfig читает JSON-файл конфигурации. Пустое имя файла не ошибка.
func loadJSONConfig(filename string) (*JSONConfig, error) {
	if filename == "" {
		return &JSONConfig{}, nil
	}

	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("reading config file %s: %w", filename, err)
	}

	var cfg JSONConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config file %s: %w", filename, err)
	}

	return &cfg, nil
}

// applyJSONConfig переносит заданные в файле значения поверх значений по умолчанию.
// Секрет JWT намеренно не читается из файла.
func applyJSONConfig(cfg *Config, jsonCfg *JSONConfig) {
	if jsonCfg == nil {
		return
	}
	if jsonCfg.ServerAddress != nil {
		cfg.ServerAddress = *jsonCfg.ServerAddress
	}
	if jsonCfg.BackendURL != nil {
		cfg.BackendURL = *jsonCfg.BackendURL
	}
	if jsonCfg.ShortLinkBaseURL != nil {
		cfg.ShortLinkBaseURL = *jsonCfg.ShortLinkBaseURL
	}
	if jsonCfg.LogLevel != nil {
		cfg.LogLevel = *jsonCfg.LogLevel
	}
	if len(jsonCfg.AllowedOrigins) > 0 {
		cfg.AllowedOrigins = jsonCfg.AllowedOrigins
	}
	if jsonCfg.EnableHTTPS != nil {
		if *jsonCfg.EnableHTTPS {
			cfg.EnableHTTPS = "true"
		} else {
			cfg.EnableHTTPS = ""
		}
	}
	if jsonCfg.TLSCertFile != nil {
		cfg.TLSCertFile = *jsonCfg.TLSCertFile
	}
	if jsonCfg.TLSKeyFile != nil {
		cfg.TLSKeyFile = *jsonCfg.TLSKeyFile
	}
}
