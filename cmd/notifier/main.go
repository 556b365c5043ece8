// Package main is the entrypoint for the digitized AV notifier Lambda function.
//
// The notifier is subscribed to the SNS topic on which the validation service
// publishes package outcomes. For each event it posts a Teams MessageCard to
// the webhook whose URL is stored in SSM Parameter Store.
//
// Cold Start (main):
//  1. Initialize structured logger.
//  2. Load process configuration (ENV, APP_CONFIG_PATH, region).
//  3. Initialize the ParameterStore (SSM, or environment when ENV=local).
//  4. Initialize the webhook Sender with a pooled HTTP client.
//  5. Initialize optional CloudWatch delivery metrics.
//  6. Register handler and call lambda.Start.
//
// Handler flow:
//  1. Fetch parameters under /<ENV>/<APP_CONFIG_PATH> (failures are logged,
//     processing continues with whatever was fetched).
//  2. Read the title and attributes from the first SNS record.
//  3. Extract the outcome attributes and derive the card color.
//  4. Render the MessageCard with facts Service, Outcome, Format, RefID.
//  5. POST it once to the configured webhook URL.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/aws/aws-lambda-go/lambdacontext"
	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatch"

	"avnotify/internal/config"
	"avnotify/internal/notifications/core"
	"avnotify/internal/notifications/webhook"
	"avnotify/internal/types"
)

// ErrNoRecords is returned when the SNS event carries no record.
var ErrNoRecords = errors.New("sns event contains no records")

// slogAdapter wraps *slog.Logger to implement the types.Logger interface.
// slog.Logger satisfies Info, Error and Warn but its With returns
// *slog.Logger, not types.Logger, so an adapter is necessary.
type slogAdapter struct {
	logger *slog.Logger
}

func (a *slogAdapter) Info(msg string, args ...any)  { a.logger.Info(msg, args...) }
func (a *slogAdapter) Error(msg string, args ...any) { a.logger.Error(msg, args...) }
func (a *slogAdapter) Warn(msg string, args ...any)  { a.logger.Warn(msg, args...) }
func (a *slogAdapter) With(args ...any) types.Logger {
	return &slogAdapter{logger: a.logger.With(args...)}
}

// Handler holds the dependencies of the notifier. It is built once per cold
// start and reused by every invocation of the execution environment.
type Handler struct {
	params        config.ParameterStore
	parameterPath string
	urlKey        string
	formatter     *webhook.TeamsFormatter
	sender        *webhook.Sender
	metrics       core.DeliveryMetrics
	logger        types.Logger
}

// Handle processes one SNS event. Only the first record is read.
//
// A malformed event (no record, missing required attribute) is returned as
// an error so the Lambda runtime reports the failed invocation. Webhook
// answers, successful or not, are only logged.
func (h *Handler) Handle(ctx context.Context, event events.SNSEvent) error {
	logger := h.logger
	if lc, ok := lambdacontext.FromContext(ctx); ok {
		logger = logger.With("request_id", lc.AwsRequestID)
	}

	logger.Info("message received", "records", len(event.Records))

	params := h.params.GetParametersByPath(ctx, h.parameterPath)
	if params.Status != config.FetchComplete {
		logger.Warn("continuing with incomplete configuration",
			"path", h.parameterPath,
			"status", string(params.Status),
			"loaded", len(params.Values),
		)
	}

	if len(event.Records) == 0 {
		return ErrNoRecords
	}
	record := event.Records[0].SNS

	attrs, err := core.ParseAttributes(record.MessageAttributes)
	if err != nil {
		return fmt.Errorf("parsing message %s: %w", record.MessageID, err)
	}

	logger = logger.With(
		"refid", attrs.RefID,
		"service", attrs.Service,
		"outcome", attrs.Outcome,
	)

	payload, err := h.formatter.Format(
		attrs.Color,
		record.Message,
		attrs.Message,
		webhook.ValidationFacts(attrs.Service, attrs.Outcome, attrs.Format, attrs.RefID),
	)
	if err != nil {
		return err
	}

	url, ok := params.Get(h.urlKey)
	if !ok {
		logger.Warn("webhook URL parameter not found", "key", h.urlKey)
	}

	result, err := h.sender.Send(ctx, payload, types.SecretString(url))
	if err != nil {
		h.metrics.RecordDelivery(ctx, attrs, core.MetricFailed)
		return err
	}

	if result.OK() {
		h.metrics.RecordDelivery(ctx, attrs, core.MetricSuccess)
	} else {
		h.metrics.RecordDelivery(ctx, attrs, core.MetricFailed)
	}
	return nil
}

// newParameterStore selects the parameter backend for the environment.
func newParameterStore(cfg *config.Config, logger types.Logger) config.ParameterStore {
	if cfg.IsLocal() {
		return config.NewEnvVarProvider(cfg.Webhook.URLKey)
	}
	return config.NewSSMProvider(cfg.AWS.Region, cfg.AWS.EndpointURL, logger)
}

// newDeliveryMetrics returns CloudWatch metrics when enabled, otherwise a no-op.
func newDeliveryMetrics(ctx context.Context, cfg *config.Config, logger types.Logger) (core.DeliveryMetrics, error) {
	if !cfg.Observability.EnableMetrics {
		return core.NopDeliveryMetrics{}, nil
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.AWS.Region))
	if err != nil {
		return nil, fmt.Errorf("loading AWS config for CloudWatch: %w", err)
	}
	client := cloudwatch.NewFromConfig(awsCfg, func(o *cloudwatch.Options) {
		if cfg.AWS.EndpointURL != "" {
			o.BaseEndpoint = aws.String(cfg.AWS.EndpointURL)
		}
	})
	return core.NewCloudWatchDeliveryMetrics(client, cfg.Observability.MetricNamespace, logger), nil
}

func main() {
	// Initialize structured logger at startup (Cold Start). The level is
	// adjusted once the configuration is loaded.
	level := new(slog.LevelVar)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: level,
	}))

	logger.Info("Notifier Lambda initializing (cold start)")

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}
	level.Set(cfg.SlogLevel())

	typedLogger := &slogAdapter{logger: logger}

	metrics, err := newDeliveryMetrics(context.Background(), cfg, typedLogger)
	if err != nil {
		logger.Error("Failed to initialize delivery metrics", "error", err)
		os.Exit(1)
	}

	handler := &Handler{
		params:        newParameterStore(cfg, typedLogger),
		parameterPath: cfg.ParameterPath(),
		urlKey:        cfg.Webhook.URLKey,
		formatter:     &webhook.TeamsFormatter{},
		sender:        webhook.NewSender(&http.Client{}, typedLogger),
		metrics:       metrics,
		logger:        typedLogger,
	}

	logger.Info("Notifier Lambda initialized",
		"environment", cfg.Environment,
		"parameter_path", handler.parameterPath,
		"region", cfg.AWS.Region,
		"metrics_enabled", cfg.Observability.EnableMetrics,
		"version", cfg.Build.Version,
		"commit", cfg.Build.Commit,
	)

	lambda.Start(handler.Handle)
}

// Compile-time assertion that slogAdapter implements types.Logger.
var _ types.Logger = (*slogAdapter)(nil)
