package core

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatch"
	cwtypes "github.com/aws/aws-sdk-go-v2/service/cloudwatch/types"

	"avnotify/internal/types"
)

// MetricResult is the Result dimension of a delivery metric.
type MetricResult string

const (
	// MetricSuccess marks a POST answered with a 2xx status.
	MetricSuccess MetricResult = "success"
	// MetricFailed marks a transport error or a non-2xx status.
	MetricFailed MetricResult = "failed"
)

// DeliveryMetrics records the outcome of a webhook delivery. Implementations
// must not fail the invocation: errors are logged and dropped.
type DeliveryMetrics interface {
	RecordDelivery(ctx context.Context, attrs Attributes, result MetricResult)
}

// CloudWatchClient abstracts the CloudWatch PutMetricData operation for testability.
type CloudWatchClient interface {
	PutMetricData(ctx context.Context, params *cloudwatch.PutMetricDataInput, optFns ...func(*cloudwatch.Options)) (*cloudwatch.PutMetricDataOutput, error)
}

// Compile-time assertion that CloudWatchDeliveryMetrics implements DeliveryMetrics.
var _ DeliveryMetrics = (*CloudWatchDeliveryMetrics)(nil)

// CloudWatchDeliveryMetrics emits one DeliveryAttempt count per delivery with
// dimensions {Service, Outcome, Result}.
type CloudWatchDeliveryMetrics struct {
	client    CloudWatchClient
	namespace string
	logger    types.Logger
}

// NewCloudWatchDeliveryMetrics creates a CloudWatchDeliveryMetrics that
// publishes to namespace.
func NewCloudWatchDeliveryMetrics(client CloudWatchClient, namespace string, logger types.Logger) *CloudWatchDeliveryMetrics {
	return &CloudWatchDeliveryMetrics{
		client:    client,
		namespace: namespace,
		logger:    logger,
	}
}

// RecordDelivery emits a DeliveryAttempt metric.
func (m *CloudWatchDeliveryMetrics) RecordDelivery(ctx context.Context, attrs Attributes, result MetricResult) {
	input := &cloudwatch.PutMetricDataInput{
		Namespace: aws.String(m.namespace),
		MetricData: []cwtypes.MetricDatum{
			{
				MetricName: aws.String(types.MetricDeliveryAttempt),
				Value:      aws.Float64(1),
				Unit:       cwtypes.StandardUnitCount,
				Dimensions: []cwtypes.Dimension{
					{
						Name:  aws.String(types.DimService),
						Value: aws.String(attrs.Service),
					},
					{
						Name:  aws.String(types.DimOutcome),
						Value: aws.String(attrs.Outcome),
					},
					{
						Name:  aws.String(types.DimResult),
						Value: aws.String(string(result)),
					},
				},
			},
		},
	}

	if _, err := m.client.PutMetricData(ctx, input); err != nil {
		m.logger.Error("failed to record delivery metric",
			"error", err.Error(),
			"outcome", attrs.Outcome,
			"result", string(result),
		)
	}
}

// NopDeliveryMetrics is used when metrics are disabled.
type NopDeliveryMetrics struct{}

// RecordDelivery does nothing.
func (NopDeliveryMetrics) RecordDelivery(context.Context, Attributes, MetricResult) {}
