// Package backend is the HTTP client of the school translation backend.
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

	"schoolnote/config"
	deliverycontext "schoolnote/internal/delivery/context"
	domainerrors "schoolnote/internal/domain/errors"
	"schoolnote/internal/domain/service"
	"schoolnote/internal/infra/metrics"

	"github.com/pkg/errors"
	"golang.org/x/time/rate"
)

// maxResponseSize bounds how much of a response body is read.
const maxResponseSize = 32 << 20

var (
	_ service.AuthAPI        = (*Client)(nil)
	_ service.TranslationAPI = (*Client)(nil)
	_ service.MessageAPI     = (*Client)(nil)
	_ service.ProfileAPI     = (*Client)(nil)
	_ service.HistoryAPI     = (*Client)(nil)
)

// Client implements every backend port over one http.Client.
type Client struct {
	httpClient *http.Client
	baseURL    *url.URL
	endpoints  config.EndpointsConfig
	userAgent  string
	limiter    *rate.Limiter
	metrics    *metrics.Metrics
	logger     *slog.Logger
}

// NewClient builds the backend client from the api section of the config.
func NewClient(cfg *config.Config, m *metrics.Metrics, logger *slog.Logger) (*Client, error) {
	if cfg.API == nil {
		return nil, errors.New("api config is required")
	}

	baseURL, err := url.Parse(strings.TrimRight(cfg.API.BaseURL, "/"))
	if err != nil {
		return nil, errors.Wrapf(err, "invalid api.baseUrl %q", cfg.API.BaseURL)
	}
	if baseURL.Scheme == "" || baseURL.Host == "" {
		return nil, errors.Errorf("api.baseUrl %q must be absolute", cfg.API.BaseURL)
	}

	limiter := rate.NewLimiter(rate.Inf, 0)
	if cfg.API.RateLimit > 0 {
		burst := cfg.API.Burst
		if burst <= 0 {
			burst = 1
		}
		limiter = rate.NewLimiter(rate.Limit(cfg.API.RateLimit), burst)
	}

	return &Client{
		httpClient: &http.Client{Timeout: cfg.API.Timeout},
		baseURL:    baseURL,
		endpoints:  cfg.API.Endpoints,
		userAgent:  cfg.API.UserAgent,
		limiter:    limiter,
		metrics:    m,
		logger:     logger,
	}, nil
}

// envelope is the {isSuccess, result} wrapper most endpoints answer with.
type envelope struct {
	IsSuccess bool            `json:"isSuccess"`
	Code      string          `json:"code,omitempty"`
	Message   string          `json:"message,omitempty"`
	Result    json.RawMessage `json:"result"`
}

// errorBody is the best-effort shape of non-2xx responses.
type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Error   string `json:"error"`
}

// call describes one backend request.
type call struct {
	method      string
	path        string
	route       string // metrics label; defaults to path
	token       string
	body        io.Reader
	contentType string
	// enveloped responses are unwrapped from {isSuccess, result}; bare ones are decoded as is.
	enveloped bool
}

func (c *Client) url(path string) string {
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return path
	}

	return c.baseURL.String() + "/" + strings.TrimLeft(path, "/")
}

func (c *Client) jsonCall(method, path, token string, payload any, enveloped bool) (call, error) {
	cl := call{method: method, path: path, token: token, enveloped: enveloped}
	if payload != nil {
		body, err := json.Marshal(payload)
		if err != nil {
			return cl, errors.WithStack(err)
		}
		cl.body = bytes.NewReader(body)
		cl.contentType = "application/json"
	}

	return cl, nil
}

// do sends the request and decodes the response into out, which may be nil.
func (c *Client) do(ctx context.Context, cl call, out any) error {
	logger := deliverycontext.GetLoggerOrDefault(ctx, c.logger)
	route := cl.route
	if route == "" {
		route = cl.path
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return domainerrors.NewNetworkError(cl.path, err)
	}

	req, err := http.NewRequestWithContext(ctx, cl.method, c.url(cl.path), cl.body)
	if err != nil {
		return errors.WithStack(err)
	}

	requestID := deliverycontext.OutboundRequestID(ctx)
	req.Header.Set(deliverycontext.HeaderXRequestID, requestID)
	req.Header.Set("Accept", "application/json")
	if cl.contentType != "" {
		req.Header.Set("Content-Type", cl.contentType)
	}
	if cl.token != "" {
		req.Header.Set("Authorization", "Bearer "+cl.token)
	}
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.metrics.ObserveBackend(route, 0, time.Since(start))
		logger.Warn("Backend request failed",
			slog.String("method", cl.method),
			slog.String("path", cl.path),
			slog.String("request_id", requestID),
			slog.Any("error", err),
		)

		return domainerrors.NewNetworkError(cl.path, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	elapsed := time.Since(start)
	c.metrics.ObserveBackend(route, resp.StatusCode, elapsed)
	if err != nil {
		return domainerrors.NewNetworkError(cl.path, err)
	}

	logger.Debug("Backend request completed",
		slog.String("method", cl.method),
		slog.String("path", cl.path),
		slog.Int("status", resp.StatusCode),
		slog.Duration("latency", elapsed),
		slog.String("request_id", requestID),
	)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return decodeError(cl.path, resp.StatusCode, body)
	}

	payload := json.RawMessage(body)
	if cl.enveloped {
		var env envelope
		if err := json.Unmarshal(body, &env); err != nil {
			return errors.Wrapf(err, "decode %s envelope", cl.path)
		}
		if !env.IsSuccess {
			return domainerrors.NewBackendError(cl.path, resp.StatusCode, env.Code, env.Message)
		}
		payload = env.Result
	}

	if out == nil || len(payload) == 0 || string(payload) == "null" {
		return nil
	}
	if err := json.Unmarshal(payload, out); err != nil {
		return errors.Wrapf(err, "decode %s response", cl.path)
	}

	return nil
}

func decodeError(path string, status int, body []byte) error {
	var parsed errorBody
	if err := json.Unmarshal(body, &parsed); err == nil {
		reason := parsed.Message
		if reason == "" {
			reason = parsed.Error
		}

		return domainerrors.NewBackendError(path, status, parsed.Code, reason)
	}

	return domainerrors.NewBackendError(path, status, "", strings.TrimSpace(string(body)))
}

func emptyField(path, field string) error {
	return domainerrors.NewBackendError(path, http.StatusOK, "EMPTY_RESPONSE", field+" is missing")
}
