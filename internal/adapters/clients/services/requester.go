package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/conductorhq/conductor/internal/domain"
	"github.com/conductorhq/conductor/internal/platform/httpclient"
)

// maxErrorBodyBytes caps how much of a failing response body is carried into
// the AdapterError message.
const maxErrorBodyBytes = 2048

// requester centralizes the JSON request lifecycle for service adapters:
// request creation, bearer auth, execution via httpclient.Client, status
// validation, error translation to *domain.AdapterError, and JSON decoding.
type requester struct {
	client *httpclient.Client
	// headers are set on every outbound request (e.g. the GitHub Accept
	// header).
	headers map[string]string
	logger  *slog.Logger
}

func newRequester(client *httpclient.Client, headers map[string]string, logger *slog.Logger) *requester {
	return &requester{client: client, headers: headers, logger: logger}
}

// doJSON executes one JSON request against the configured base URL and
// decodes the response into a map. A nil body sends no payload; an empty
// response body decodes to nil. Any failure comes back as a
// *domain.AdapterError.
func (r *requester) doJSON(ctx context.Context, method, path, token string, query url.Values, body any) (map[string]any, error) {
	u := r.client.BaseURL() + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var payload io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return nil, &domain.AdapterError{Message: fmt.Sprintf("marshaling %s body for %s: %v", method, path, err)}
		}
		payload = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, payload)
	if err != nil {
		return nil, &domain.AdapterError{Message: fmt.Sprintf("creating %s request for %s: %v", method, path, err)}
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	for k, v := range r.headers {
		req.Header.Set(k, v)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := r.client.Do(ctx, req)
	if err != nil && resp == nil {
		r.logger.ErrorContext(ctx, "request failed",
			slog.String("method", method),
			slog.String("path", path),
			slog.String("error", err.Error()),
		)
		return nil, &domain.AdapterError{Message: err.Error()}
	}
	defer r.closeBody(ctx, resp)

	// httpclient.Do returns both resp and err when retries are exhausted on
	// a retryable status; the status code is the more useful signal.
	if resp.StatusCode >= http.StatusBadRequest {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes))
		r.logger.ErrorContext(ctx, "downstream error",
			slog.String("method", method),
			slog.String("path", path),
			slog.Int("status", resp.StatusCode),
		)
		return nil, &domain.AdapterError{
			Status:  resp.StatusCode,
			Message: strings.TrimSpace(string(snippet)),
		}
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &domain.AdapterError{Message: fmt.Sprintf("reading response from %s %s: %v", method, path, err)}
	}
	if len(bytes.TrimSpace(raw)) == 0 {
		return nil, nil
	}

	var out map[string]any
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, &domain.AdapterError{Message: fmt.Sprintf("decoding response from %s %s: %v", method, path, err)}
	}
	return out, nil
}

func (r *requester) closeBody(ctx context.Context, resp *http.Response) {
	if err := resp.Body.Close(); err != nil {
		r.logger.WarnContext(ctx, "failed to close response body",
			slog.String("error", err.Error()),
		)
	}
}

// unsupported is the uniform error for a function the adapter does not
// implement. The dispatcher validates against the catalog first, so hitting
// this means catalog and adapter have drifted.
func unsupported(service domain.Service, function string) error {
	return &domain.AdapterError{Message: fmt.Sprintf("unsupported %s function %q", service, function)}
}
