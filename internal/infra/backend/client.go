// Package backend is the typed client for the venue booking REST API.
// Each call is one request and one response: no retries, no caching.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"venue-booking-web/internal/infra/metrics"
	"venue-booking-web/internal/pkg/config"
	"venue-booking-web/internal/pkg/errs"
)

// maxBodyBytes bounds how much of a response body is read.
const maxBodyBytes = 4 << 20

type Client struct {
	baseURL    string
	httpClient *http.Client
	metrics    *metrics.Metrics
	logger     *slog.Logger
}

func NewClient(cfg config.BackendConfig, m *metrics.Metrics, logger *slog.Logger) *Client {
	return NewClientWithHTTP(cfg.BaseURL, &http.Client{Timeout: cfg.Timeout}, m, logger)
}

func NewClientWithHTTP(baseURL string, httpClient *http.Client, m *metrics.Metrics, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
		metrics:    m,
		logger:     logger,
	}
}

// call describes one backend request. route is the path template used as a metrics label.
type call struct {
	method string
	route  string
	path   string
	token  string
	body   any
	query  map[string]string
}

// do performs c and decodes a JSON success payload into T.
// 204 and non-JSON success bodies yield T's zero value.
func do[T any](ctx context.Context, cl *Client, c call) (T, error) {
	var zero T

	payload, contentIsJSON, err := cl.roundTrip(ctx, c)
	if err != nil {
		return zero, err
	}
	if payload == nil || !contentIsJSON {
		return zero, nil
	}

	var out T
	if err := json.Unmarshal(payload, &out); err != nil {
		// Best effort: an unparsable success body is treated as empty.
		cl.logger.Warn("backend returned unparsable JSON", "route", c.route, "error", err.Error())
		return zero, nil
	}
	return out, nil
}

// exec performs c and discards any success payload.
func exec(ctx context.Context, cl *Client, c call) error {
	_, _, err := cl.roundTrip(ctx, c)
	return err
}

func (cl *Client) roundTrip(ctx context.Context, c call) (body []byte, isJSON bool, err error) {
	req, err := cl.newRequest(ctx, c)
	if err != nil {
		return nil, false, err
	}

	started := time.Now()
	res, err := cl.httpClient.Do(req)
	if err != nil {
		cl.metrics.ObserveBackend(c.method, c.route, 0, time.Since(started))
		cl.logger.Warn("backend request failed", "method", c.method, "route", c.route, "error", err.Error())
		return nil, false, errs.Mark(errs.Wrapf(err, "%s %s", c.method, c.route), ErrRequestFailed)
	}
	defer res.Body.Close()
	cl.metrics.ObserveBackend(c.method, c.route, res.StatusCode, time.Since(started))

	if res.StatusCode == http.StatusNoContent {
		return nil, false, nil
	}

	isJSON = strings.Contains(res.Header.Get("Content-Type"), "application/json")
	raw, readErr := io.ReadAll(io.LimitReader(res.Body, maxBodyBytes))
	if readErr != nil {
		raw = nil
	}

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return nil, false, newAPIError(res.StatusCode, decodeErrorPayload(raw, isJSON))
	}
	if len(raw) == 0 {
		return nil, isJSON, nil
	}
	return raw, isJSON, nil
}

func (cl *Client) newRequest(ctx context.Context, c call) (*http.Request, error) {
	u, err := url.Parse(cl.baseURL + c.path)
	if err != nil {
		return nil, errs.Wrapf(err, "invalid backend url for %s", c.route)
	}
	if len(c.query) > 0 {
		q := u.Query()
		for k, v := range c.query {
			if v == "" {
				continue
			}
			q.Set(k, v)
		}
		u.RawQuery = q.Encode()
	}

	var body io.Reader
	if c.body != nil {
		buf, err := json.Marshal(c.body)
		if err != nil {
			return nil, errs.Wrapf(err, "failed to encode %s body", c.route)
		}
		body = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, c.method, u.String(), body)
	if err != nil {
		return nil, errs.Wrapf(err, "failed to build %s request", c.route)
	}
	req.Header.Set("Accept", "application/json")
	if c.body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	return req, nil
}

// decodeErrorPayload never fails: JSON that does not parse becomes nil, text stays text.
func decodeErrorPayload(raw []byte, isJSON bool) any {
	if len(raw) == 0 {
		return nil
	}
	if !isJSON {
		return string(raw)
	}
	var payload any
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil
	}
	return payload
}
