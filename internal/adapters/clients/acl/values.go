package acl

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/jsamuelsen/dailyquote/internal/adapters/clients"
	"github.com/jsamuelsen/dailyquote/internal/domain"
)

// maxBody caps how much of any values API response is read.
const maxBody = 8 << 20

// sheetReader reads JSON resources from the values API and reports every
// failure as a domain.UnavailableError for service.
type sheetReader struct {
	client  *clients.Client
	service string
}

// getJSON fetches path and decodes the body into dst. op names the call in
// error reasons.
func (r sheetReader) getJSON(ctx context.Context, path string, query url.Values, op string, dst any) error {
	resp, err := r.client.Get(ctx, path, query)
	if err != nil {
		return feedError(r.service, op, nil, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if err := feedError(r.service, op, resp, nil); err != nil {
		return err
	}

	if err := json.NewDecoder(io.LimitReader(resp.Body, maxBody)).Decode(dst); err != nil {
		return domain.NewUnavailableError(r.service, fmt.Sprintf("%s: decoding response: %v", op, err))
	}

	return nil
}

// feedError maps a failed call to a domain.UnavailableError, or returns nil
// for a 2xx response. A missing sheet, a rejected key and a 503 all mean the
// feed cannot be read right now; the upstream status is kept so that
// domain.IsRetryable can tell them apart.
func feedError(service, op string, resp *http.Response, callErr error) error {
	switch {
	case errors.Is(callErr, clients.ErrCircuitOpen):
		return domain.NewUnavailableError(service, "circuit breaker open during "+op)
	case callErr != nil:
		return domain.NewUnavailableError(service, fmt.Sprintf("%s failed: %v", op, callErr))
	case resp == nil:
		return domain.NewUnavailableError(service, "no response received")
	case resp.StatusCode >= http.StatusOK && resp.StatusCode < http.StatusMultipleChoices:
		return nil
	}

	reason := apiErrorMessage(resp.Body)
	if reason == "" {
		reason = statusReason(resp.StatusCode, op)
	}

	return domain.NewHTTPUnavailableError(service, resp.StatusCode, reason)
}

// apiError is the values API error envelope:
//
//	{"error": {"code": 403, "message": "...", "status": "PERMISSION_DENIED"}}
type apiError struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Status  string `json:"status"`
	} `json:"error"`
}

// apiErrorMessage returns the message, or else the status, of an error
// envelope. It returns "" when body is not one.
func apiErrorMessage(body io.Reader) string {
	if body == nil {
		return ""
	}

	var env apiError
	if json.NewDecoder(io.LimitReader(body, maxBody)).Decode(&env) != nil {
		return ""
	}

	if env.Error.Message != "" {
		return env.Error.Message
	}

	return env.Error.Status
}

func statusReason(status int, op string) string {
	switch status {
	case http.StatusNotFound:
		return "spreadsheet or range not found"
	case http.StatusBadRequest:
		return "invalid range"
	case http.StatusUnauthorized, http.StatusForbidden:
		return "access denied"
	case http.StatusTooManyRequests:
		return "rate limit exceeded"
	case http.StatusServiceUnavailable:
		return "service temporarily unavailable"
	default:
		return fmt.Sprintf("%s failed with status %d", op, status)
	}
}

// mapRows maps each row with fn and keeps the ones that map. It also returns
// how many rows were dropped.
func mapRows[T any](rows []Row, fn func(*Row) (*T, error)) ([]T, int) {
	out := make([]T, 0, len(rows))

	for i := range rows {
		v, err := fn(&rows[i])
		if err != nil {
			continue
		}

		out = append(out, *v)
	}

	return out, len(rows) - len(out)
}

// required rejects a blank cell.
func required(value, field string) error {
	if strings.TrimSpace(value) == "" {
		return domain.NewValidationError(field, "is required")
	}

	return nil
}
