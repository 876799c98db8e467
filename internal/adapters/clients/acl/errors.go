// Package acl implements the Anti-Corruption Layer that translates between
// the representations of the downstream key-management gateway and eDiscovery
// service and domain types. Resource-specific translators live in
// subpackages (acl/kms, acl/ediscovery); shared error mapping lives here.
package acl

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strings"

	"github.com/jsamuelsen11/go-ediscovery-transforms/internal/domain"
)

// maxErrorBodySize limits how much of an error response body we read.
const maxErrorBodySize = 64 << 10

// errorBody is the union of the two error shapes the downstream services
// return: RFC 9457 problem details from the eDiscovery API, and the
// {"message": ..., "code": ...} object of the key-management gateway.
type errorBody struct {
	Detail  string        `json:"detail"`
	Message string        `json:"message"`
	Code    string        `json:"code"`
	Errors  []errorDetail `json:"errors"`
}

// errorDetail is one field-level error of a problem details body.
type errorDetail struct {
	Location string `json:"location"`
	Message  string `json:"message"`
}

func (b errorBody) detail(status int) string {
	var msg string
	switch {
	case b.Detail != "":
		msg = b.Detail
	case b.Message != "":
		msg = b.Message
	default:
		msg = http.StatusText(status)
	}
	if b.Code != "" {
		msg += " (" + b.Code + ")"
	}
	return msg
}

// statusErrors maps downstream statuses to domain errors. 423 is the gateway's
// answer for a disabled key; 429 is retried by the transform engine like a
// 5xx.
var statusErrors = map[int]error{
	http.StatusUnauthorized:    domain.ErrForbidden,
	http.StatusForbidden:       domain.ErrForbidden,
	http.StatusLocked:          domain.ErrForbidden,
	http.StatusNotFound:        domain.ErrNotFound,
	http.StatusConflict:        domain.ErrConflict,
	http.StatusTooManyRequests: domain.ErrUnavailable,
}

// TranslateHTTPError maps an error response from service to a domain error
// whose message names the service. 400 and 422 bodies with field errors
// become a *domain.ValidationError; every 5xx becomes domain.ErrUnavailable.
func TranslateHTTPError(service string, resp *http.Response) error {
	body := parseErrorBody(resp)
	status := resp.StatusCode

	if status == http.StatusBadRequest || status == http.StatusUnprocessableEntity {
		if len(body.Errors) > 0 {
			return toValidationError(body.Errors)
		}
		return fmt.Errorf("%s: %s: %w", service, body.detail(status), domain.ErrValidation)
	}

	target, ok := statusErrors[status]
	if !ok && status >= http.StatusInternalServerError {
		target, ok = domain.ErrUnavailable, true
	}
	if !ok {
		return fmt.Errorf("%s: unexpected status %d: %s", service, status, body.detail(status))
	}
	return fmt.Errorf("%s: %s: %w", service, body.detail(status), target)
}

// parseErrorBody reads a JSON error body. Anything else, including a
// truncated or malformed body, yields an empty errorBody.
func parseErrorBody(resp *http.Response) errorBody {
	if resp.Body == nil {
		return errorBody{}
	}

	mediaType, _, err := mime.ParseMediaType(resp.Header.Get("Content-Type"))
	if err != nil || (mediaType != "application/json" && mediaType != "application/problem+json") {
		return errorBody{}
	}

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodySize))
	if err != nil && !errors.Is(err, io.EOF) {
		return errorBody{}
	}

	var b errorBody
	if err := json.Unmarshal(raw, &b); err != nil {
		return errorBody{}
	}
	return b
}

// toValidationError converts field errors to a domain ValidationError,
// stripping the "body." prefix from locations.
func toValidationError(details []errorDetail) *domain.ValidationError {
	fields := make(map[string]string, len(details))
	for _, d := range details {
		fields[strings.TrimPrefix(d.Location, "body.")] = d.Message
	}
	return &domain.ValidationError{Fields: fields}
}
