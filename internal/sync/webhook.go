// Package sync pushes transactions to external targets. Every target is
// best-effort: a failed push is logged and swallowed, and local state is
// never touched.
package sync

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/semneura/semneura/internal/common"
	"github.com/semneura/semneura/internal/model"
)

// Webhook posts single transactions to a user-supplied URL (typically a
// Google Apps Script endpoint). The response body is never read: success is
// opaque beyond the status line.
type Webhook struct {
	httpClient *http.Client
	url        string
}

// NewWebhook creates a webhook target for the given URL.
func NewWebhook(url string) (*Webhook, error) {
	if url == "" {
		return nil, fmt.Errorf("%w: webhook URL", common.ErrMissingConfig)
	}
	return &Webhook{
		url: url,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}, nil
}

// Push sends one transaction as JSON. Transient failures are retried with
// backoff; callers treat any residual error as a degraded sync, not a fault.
func (w *Webhook) Push(ctx context.Context, txn model.Transaction) error {
	body, err := json.Marshal(txn)
	if err != nil {
		return fmt.Errorf("failed to encode transaction: %w", err)
	}

	return common.WithRetry(ctx, func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, w.url, strings.NewReader(string(body)))
		if err != nil {
			return &common.RetryableError{Err: err, Retryable: false}
		}
		req.Header.Set("Content-Type", "application/json")

		resp, err := w.httpClient.Do(req)
		if err != nil {
			return err
		}
		// Drain and discard: the endpoint's response is opaque.
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()

		if resp.StatusCode >= http.StatusInternalServerError {
			return fmt.Errorf("webhook returned status %d", resp.StatusCode)
		}
		return nil
	}, common.RetryOptions{MaxAttempts: 3, InitialDelay: 200 * time.Millisecond})
}
