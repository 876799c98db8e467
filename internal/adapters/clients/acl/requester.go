package acl

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/jsamuelsen11/go-ediscovery-transforms/internal/domain"
	"github.com/jsamuelsen11/go-ediscovery-transforms/internal/platform/httpclient"
)

// maxResponseBytes caps a decoded downstream body. The largest legitimate
// one is a report container with its content list.
const maxResponseBytes = 16 << 20

// call is one JSON exchange with a downstream API.
type call struct {
	method string
	path   string
	header http.Header

	// want is the only status treated as success.
	want int

	// in is encoded as the request body when non-nil; out receives the
	// decoded response when non-nil.
	in  any
	out any
}

// Requester runs calls over an [httpclient.Client] and turns every failure
// into an error the domain understands. Non-matching statuses go through
// [TranslateHTTPError]. Transport failures and an open breaker wrap
// [domain.ErrUnavailable] next to their cause; context errors pass through.
type Requester struct {
	client *httpclient.Client
	logger *slog.Logger
}

// NewRequester creates a Requester over client.
func NewRequester(client *httpclient.Client, logger *slog.Logger) *Requester {
	return &Requester{client: client, logger: logger}
}

// HealthCheck reports the state of the underlying client's circuit breaker.
func (r *Requester) HealthCheck(ctx context.Context) error {
	return r.client.HealthCheck(ctx)
}

// Send performs c. The response body is always closed.
func (r *Requester) Send(ctx context.Context, c call) error {
	req, err := r.newRequest(ctx, c)
	if err != nil {
		return err
	}

	resp, err := r.client.Do(ctx, req)
	if resp != nil {
		defer r.closeBody(ctx, resp)
	}

	// An exhausted retry on a 5xx or 429 returns the last response with the
	// error; its body carries the downstream's reason.
	var statusErr *httpclient.StatusError
	if err != nil && (resp == nil || !errors.As(err, &statusErr)) {
		r.logger.WarnContext(ctx, "downstream call failed",
			slog.String("peer", r.client.Name()),
			slog.String("method", c.method),
			slog.String("path", c.path),
			slog.Any("error", err),
		)
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return fmt.Errorf("%s %s: %w", c.method, c.path, err)
		}
		return fmt.Errorf("%s %s: %w: %w", c.method, c.path, domain.ErrUnavailable, err)
	}

	if resp.StatusCode != c.want {
		r.logger.WarnContext(ctx, "downstream rejected call",
			slog.String("peer", r.client.Name()),
			slog.String("method", c.method),
			slog.String("path", c.path),
			slog.Int("status", resp.StatusCode),
			slog.Int("want_status", c.want),
		)
		return TranslateHTTPError(r.client.Name(), resp)
	}

	if c.out == nil {
		return nil
	}
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseBytes)).Decode(c.out); err != nil {
		return fmt.Errorf("decoding %s response to %s %s: %w", r.client.Name(), c.method, c.path, err)
	}
	return nil
}

func (r *Requester) newRequest(ctx context.Context, c call) (*http.Request, error) {
	body := io.Reader(http.NoBody)
	if c.in != nil {
		b, err := json.Marshal(c.in)
		if err != nil {
			return nil, fmt.Errorf("encoding %s %s body: %w", c.method, c.path, err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, c.method, r.client.BaseURL()+c.path, body)
	if err != nil {
		return nil, fmt.Errorf("building %s %s: %w", c.method, c.path, err)
	}
	if c.in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	for k, vs := range c.header {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}
	return req, nil
}

func (r *Requester) closeBody(ctx context.Context, resp *http.Response) {
	if err := resp.Body.Close(); err != nil {
		r.logger.DebugContext(ctx, "closing response body", slog.Any("error", err))
	}
}
