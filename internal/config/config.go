// Package config defines the process configuration for the digitized AV
// notifier Lambda. Configuration is loaded once at process initialization
// (Lambda Cold Start) and is immutable thereafter.
//
// Values are resolved via a priority chain:
//
//	OS Environment (Highest) -> Dotenv File -> Struct Defaults (Lowest)
//
// Runtime parameters that live in AWS SSM Parameter Store (the webhook URL)
// are NOT part of Config. They are fetched per invocation through a
// ParameterStore so that rotations take effect without a redeploy.
package config

import (
	"fmt"
	"log/slog"
	"strings"
)

// localEnv is the ENV value that swaps SSM for environment-backed parameters.
const localEnv = "local"

// Config is the top-level configuration struct for the notifier.
type Config struct {
	// Environment is the deployment environment name and the first segment
	// of the parameter path. Left optional: an unset value produces an
	// empty segment and the parameter fetch degrades to an empty result.
	Environment string `envconfig:"ENV"`
	// AppConfigPath is the application identifier, the second path segment.
	AppConfigPath string `envconfig:"APP_CONFIG_PATH"`
	LogLevel      string `envconfig:"LOG_LEVEL" default:"info" validate:"oneof=debug info warn error"`

	AWS           AWSConfig
	Webhook       WebhookConfig
	Observability ObservabilityConfig

	// Build Metadata (Injected via ldflags, not Env)
	Build BuildInfo
}

// AWSConfig holds AWS regional configuration for the SDK clients.
type AWSConfig struct {
	Region string `envconfig:"AWS_DEFAULT_REGION" default:"us-east-1" validate:"required"`

	// LocalStack Support (Empty in Prod)
	EndpointURL string `envconfig:"AWS_ENDPOINT_URL" validate:"omitempty,url"`
}

// WebhookConfig holds settings for the outbound Teams webhook.
type WebhookConfig struct {
	// URLKey is the parameter name (last path segment) holding the webhook URL.
	URLKey string `envconfig:"WEBHOOK_URL_KEY" default:"TEAMS_URL" validate:"required"`
}

// ObservabilityConfig holds telemetry settings.
type ObservabilityConfig struct {
	EnableMetrics   bool   `envconfig:"ENABLE_METRICS" default:"false"`
	MetricNamespace string `envconfig:"METRIC_NAMESPACE" default:"DigitizedAV" validate:"required"`
}

// BuildInfo holds build-time metadata injected via ldflags.
type BuildInfo struct {
	Version   string
	Commit    string
	BuildTime string
}

// ParameterPath returns the Parameter Store path /<ENV>/<APP_CONFIG_PATH>.
func (c *Config) ParameterPath() string {
	return fmt.Sprintf("/%s/%s", c.Environment, c.AppConfigPath)
}

// IsLocal reports whether parameters should be read from the environment
// instead of SSM.
func (c *Config) IsLocal() bool {
	return c.Environment == localEnv
}

// SlogLevel maps LogLevel onto a slog.Level. Unknown values map to Info.
func (c *Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// ConfigErrorType categorizes configuration loading failures to aid debugging.
type ConfigErrorType string

const (
	// ErrValidation indicates the configuration failed struct validation rules.
	ErrValidation ConfigErrorType = "VALIDATION_FAILED"
	// ErrParsing indicates a failure when parsing environment variable values
	// into their target types.
	ErrParsing ConfigErrorType = "PARSING_FAILED"
)
