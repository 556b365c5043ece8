package types

// Telemetry metric names for CloudWatch.
const (
	// Metric Names
	MetricDeliveryAttempt = "DeliveryAttempt"

	// Dimension Keys
	DimOutcome = "Outcome"
	DimResult  = "Result"
	DimService = "Service"
)
