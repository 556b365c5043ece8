// Package webhook renders validation notifications as Microsoft Teams
// MessageCards and delivers them to an incoming webhook.
//
// Delivery is a single synchronous POST. There is no retry, signing or
// custom header handling: the webhook URL is the only credential.
package webhook

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/google/uuid"

	"avnotify/internal/types"
)

// ErrNoWebhookURL is returned by Send when the destination is empty, which
// happens when the parameter fetch failed or the URL parameter is missing.
var ErrNoWebhookURL = errors.New("webhook: destination URL is empty")

// Sender delivers rendered payloads. The http.Client is shared across
// invocations so its connection pool survives between warm starts.
type Sender struct {
	httpClient *http.Client
	formatter  *TeamsFormatter
	logger     types.Logger
	newID      func() string
}

// NewSender creates a Sender. A nil httpClient uses a zero http.Client
// (default transport and no timeout override).
func NewSender(httpClient *http.Client, logger types.Logger) *Sender {
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	return &Sender{
		httpClient: httpClient,
		formatter:  &TeamsFormatter{},
		logger:     logger,
		newID:      uuid.NewString,
	}
}

// Send POSTs payload to destination once and logs the status code and the
// response body.
//
// A non-2xx answer is logged, not returned as an error: the result carries
// the status for the caller to inspect. Transport failures are returned
// unhandled.
func (s *Sender) Send(ctx context.Context, payload []byte, destination types.SecretString) (*DeliveryResult, error) {
	if destination.IsZero() {
		return nil, ErrNoWebhookURL
	}

	deliveryID := s.newID()
	logger := s.logger.With("delivery_id", deliveryID)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, destination.Unmask(), bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("webhook: failed to create request for %s", destination)
	}

	logger.Info("delivering webhook",
		"destination", destination,
		"payload_size", len(payload),
	)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		// Unwrap *url.Error so the URL does not end up in the logs.
		var urlErr *url.Error
		if errors.As(err, &urlErr) {
			err = urlErr.Err
		}
		return nil, fmt.Errorf("webhook: POST failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("webhook: reading response: %w", err)
	}

	result := &DeliveryResult{
		DeliveryID: deliveryID,
		StatusCode: resp.StatusCode,
		Body:       body,
	}

	logger.Info("webhook response",
		"status_code", resp.StatusCode,
		"response", string(body),
	)
	if err := s.formatter.ValidateResponse(resp.StatusCode, body); err != nil {
		logger.Warn("webhook rejected notification", "error", err.Error())
	}

	return result, nil
}
