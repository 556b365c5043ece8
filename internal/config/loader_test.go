package config

import (
	"errors"
	"log/slog"
	"os"
	"testing"
)

// setTestEnv sets the notifier environment variables.
// It uses t.Setenv so values are automatically cleaned up after the test.
func setTestEnv(t *testing.T) {
	t.Helper()
	t.Setenv("ENV", "dev")
	t.Setenv("APP_CONFIG_PATH", "digitized_av_trigger")
	t.Setenv("AWS_DEFAULT_REGION", "us-west-2")
	t.Setenv("LOG_LEVEL", "debug")
}

// unsetEnv removes key for the duration of the test. envconfig only applies
// a default when the variable is absent; an empty value is taken as-is.
func unsetEnv(t *testing.T, key string) {
	t.Helper()
	t.Setenv(key, "") // registers restore on cleanup
	if err := os.Unsetenv(key); err != nil {
		t.Fatalf("unsetenv %s: %v", key, err)
	}
}

// clearOptionalEnv makes sure defaults are exercised regardless of the
// developer's shell.
func clearOptionalEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"ENV", "APP_CONFIG_PATH", "AWS_DEFAULT_REGION", "AWS_ENDPOINT_URL", "LOG_LEVEL",
		"WEBHOOK_URL_KEY", "ENABLE_METRICS", "METRIC_NAMESPACE",
	} {
		unsetEnv(t, key)
	}
}

func TestLoadConfigSuccess(t *testing.T) {
	clearOptionalEnv(t)
	setTestEnv(t)

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}

	if cfg.Environment != "dev" {
		t.Errorf("Environment = %q, want %q", cfg.Environment, "dev")
	}
	if cfg.AppConfigPath != "digitized_av_trigger" {
		t.Errorf("AppConfigPath = %q, want %q", cfg.AppConfigPath, "digitized_av_trigger")
	}
	if cfg.AWS.Region != "us-west-2" {
		t.Errorf("AWS.Region = %q, want %q", cfg.AWS.Region, "us-west-2")
	}
	if cfg.ParameterPath() != "/dev/digitized_av_trigger" {
		t.Errorf("ParameterPath() = %q, want %q", cfg.ParameterPath(), "/dev/digitized_av_trigger")
	}
	if cfg.Build.Version != "dev" {
		t.Errorf("Build.Version = %q, want %q", cfg.Build.Version, "dev")
	}
}

// TestLoadConfigDefaults verifies the fallbacks applied when optional
// variables are absent.
func TestLoadConfigDefaults(t *testing.T) {
	clearOptionalEnv(t)

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}

	if cfg.AWS.Region != "us-east-1" {
		t.Errorf("AWS.Region = %q, want default %q", cfg.AWS.Region, "us-east-1")
	}
	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %q, want default %q", cfg.LogLevel, "info")
	}
	if cfg.Webhook.URLKey != "TEAMS_URL" {
		t.Errorf("Webhook.URLKey = %q, want default %q", cfg.Webhook.URLKey, "TEAMS_URL")
	}
	if cfg.Observability.EnableMetrics {
		t.Error("Observability.EnableMetrics should default to false")
	}
	if cfg.Observability.MetricNamespace != "DigitizedAV" {
		t.Errorf("Observability.MetricNamespace = %q, want default", cfg.Observability.MetricNamespace)
	}
	// ENV and APP_CONFIG_PATH are optional: empty segments, no error.
	if cfg.ParameterPath() != "//" {
		t.Errorf("ParameterPath() = %q, want %q", cfg.ParameterPath(), "//")
	}
}

func TestLoadConfigInvalidLogLevel(t *testing.T) {
	clearOptionalEnv(t)
	setTestEnv(t)
	t.Setenv("LOG_LEVEL", "verbose")

	_, err := LoadConfig()
	if err == nil {
		t.Fatal("expected error for invalid LOG_LEVEL, got nil")
	}

	var cfgErr *ConfigError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("expected *ConfigError, got %T: %v", err, err)
	}
	if cfgErr.Type != ErrValidation {
		t.Errorf("ConfigError.Type = %q, want %q", cfgErr.Type, ErrValidation)
	}
}

func TestLoadConfigInvalidEndpointURL(t *testing.T) {
	clearOptionalEnv(t)
	setTestEnv(t)
	t.Setenv("AWS_ENDPOINT_URL", "not a url")

	_, err := LoadConfig()
	var cfgErr *ConfigError
	if !errors.As(err, &cfgErr) || cfgErr.Type != ErrValidation {
		t.Fatalf("expected validation ConfigError, got %v", err)
	}
}

func TestLoadConfigParsingError(t *testing.T) {
	clearOptionalEnv(t)
	setTestEnv(t)
	t.Setenv("ENABLE_METRICS", "sometimes")

	_, err := LoadConfig()
	var cfgErr *ConfigError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("expected *ConfigError, got %T: %v", err, err)
	}
	if cfgErr.Type != ErrParsing {
		t.Errorf("ConfigError.Type = %q, want %q", cfgErr.Type, ErrParsing)
	}
	if errors.Unwrap(cfgErr) == nil {
		t.Error("ConfigError should wrap the envconfig error")
	}
}

func TestConfigErrorMessage(t *testing.T) {
	withCause := &ConfigError{Type: ErrParsing, Message: "bad", Err: errors.New("cause")}
	if got := withCause.Error(); got != "[PARSING_FAILED] bad: cause" {
		t.Errorf("Error() = %q", got)
	}
	bare := &ConfigError{Type: ErrValidation, Message: "bad"}
	if got := bare.Error(); got != "[VALIDATION_FAILED] bad" {
		t.Errorf("Error() = %q", got)
	}
}

func TestConfigIsLocal(t *testing.T) {
	if !(&Config{Environment: "local"}).IsLocal() {
		t.Error("IsLocal() = false for ENV=local")
	}
	if (&Config{Environment: "prod"}).IsLocal() {
		t.Error("IsLocal() = true for ENV=prod")
	}
}

func TestConfigSlogLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug": slog.LevelDebug,
		"info":  slog.LevelInfo,
		"warn":  slog.LevelWarn,
		"error": slog.LevelError,
		"":      slog.LevelInfo,
	}
	for level, want := range tests {
		cfg := &Config{LogLevel: level}
		if got := cfg.SlogLevel(); got != want {
			t.Errorf("SlogLevel(%q) = %v, want %v", level, got, want)
		}
	}
}
