package config

import (
	"testing"
)

func TestHTTPSConfig(t *testing.T) {
	tests := []struct {
		name        string
		enableHTTPS string
		expected    bool
	}{
		{
			name:        "HTTPS disabled empty string",
			enableHTTPS: "",
			expected:    false,
		},
		{
			name:        "HTTPS disabled with false",
			enableHTTPS: "false",
			expected:    false,
		},
		{
			name:        "HTTPS disabled with 0",
			enableHTTPS: "0",
			expected:    false,
		},
		{
			name:        "HTTPS enabled with true",
			enableHTTPS: "true",
			expected:    true,
		},
		{
			name:        "HTTPS enabled with any value",
			enableHTTPS: "yes",
			expected:    true,
		},
		{
			name:        "HTTPS enabled with 1",
			enableHTTPS: "1",
			expected:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := &Config{
				EnableHTTPS: tt.enableHTTPS,
			}

			if got := config.IsHTTPSEnabled(); got != tt.expected {
				t.Errorf("IsHTTPSEnabled() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestHTTPSConfigFromEnv(t *testing.T) {
	resetEnvironment(t)
	t.Setenv("ENABLE_HTTPS", "true")
	t.Setenv("TLS_CERT_FILE", "test.crt")
	t.Setenv("TLS_KEY_FILE", "test.key")

	config, err := NewConfig()
	if err != nil {
		t.Fatalf("NewConfig() error = %v", err)
	}

	if !config.IsHTTPSEnabled() {
		t.Error("Expected HTTPS to be enabled when ENABLE_HTTPS=true")
	}
	if config.TLSCertFile != "test.crt" {
		t.Errorf("Expected TLSCertFile to be 'test.crt', got '%s'", config.TLSCertFile)
	}
	if config.TLSKeyFile != "test.key" {
		t.Errorf("Expected TLSKeyFile to be 'test.key', got '%s'", config.TLSKeyFile)
	}
}
