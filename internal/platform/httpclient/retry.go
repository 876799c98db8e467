package httpclient

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/jsamuelsen11/go-ediscovery-transforms/internal/platform/retry"
)

// StatusError is a response status the client retries: 429 or any 5xx.
// When attempts run out it is returned together with the last response,
// whose body is left unread for the caller.
type StatusError struct {
	Service    string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("HTTP %d from %s", e.StatusCode, e.Service)
}

// doWithRetry sends req under the client's retry policy, replaying a
// buffered copy of the body on each attempt. The response goes to resp
// rather than a return value to keep the bodyclose linter quiet; the caller
// closes it.
func (c *Client) doWithRetry(ctx context.Context, req *http.Request, resp **http.Response) error {
	body, err := bufferRequestBody(req)
	if err != nil {
		return err
	}

	classify := c.retryPolicy.Retryable
	if classify == nil {
		classify = retry.IsRetryable
	}
	policy := c.retryPolicy.WithRetryable(func(err error) bool {
		var se *StatusError
		return errors.As(err, &se) || classify(err)
	})
	op := fmt.Sprintf("httpclient.Do %s %s", req.Method, c.serviceName)

	err = retry.Do(ctx, policy, op, func(context.Context) error {
		if *resp != nil {
			drainResponseBody(*resp)
			*resp = nil
		}
		replayRequestBody(req, body)

		r, err := c.httpClient.Do(req)
		if err != nil {
			return err
		}
		*resp = r
		if isRetryableStatus(r.StatusCode) {
			return &StatusError{Service: c.serviceName, StatusCode: r.StatusCode}
		}
		return nil
	})

	var se *StatusError
	if err != nil && !errors.As(err, &se) && *resp != nil {
		// Canceled while backing off after a retryable status.
		drainResponseBody(*resp)
		*resp = nil
	}
	return err
}

// bufferRequestBody reads and closes the request body so it can be replayed.
// A nil body stays nil.
func bufferRequestBody(req *http.Request) ([]byte, error) {
	if req.Body == nil || req.Body == http.NoBody {
		return nil, nil
	}
	defer func() { _ = req.Body.Close() }()

	b, err := io.ReadAll(req.Body)
	if err != nil {
		return nil, fmt.Errorf("reading request body: %w", err)
	}
	return b, nil
}

func replayRequestBody(req *http.Request, body []byte) {
	if body == nil {
		return
	}
	req.Body = io.NopCloser(bytes.NewReader(body))
	req.ContentLength = int64(len(body))
}

// drainResponseBody discards and closes the body so the connection is reused.
func drainResponseBody(resp *http.Response) {
	_, _ = io.Copy(io.Discard, resp.Body)
	_ = resp.Body.Close()
}

func isRetryableStatus(code int) bool {
	return code == http.StatusTooManyRequests || code >= http.StatusInternalServerError
}
