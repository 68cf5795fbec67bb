package jobapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/louisbranch/jobportal/internal/platform/logging"
	"github.com/louisbranch/jobportal/internal/platform/timeouts"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// maxResponseBytes bounds how much of a backend response is read.
const maxResponseBytes = 4 << 20

var tracer = otel.Tracer("github.com/louisbranch/jobportal/internal/services/web/integration/jobapi")

// Config holds the backend base URLs.
type Config struct {
	CategoryURL string
	JobURL      string
	CompanyURL  string
	Timeout     time.Duration
}

// Client calls the backend REST API.
type Client struct {
	http   *http.Client
	logger *zap.Logger
	cfg    Config
}

// Option customizes a Client.
type Option func(*Client)

// WithHTTPClient replaces the instrumented default HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		if client != nil {
			c.http = client
		}
	}
}

// New builds a Client. The default HTTP client propagates trace context.
func New(cfg Config, logger *zap.Logger, opts ...Option) (*Client, error) {
	for name, raw := range map[string]string{"category": cfg.CategoryURL, "job": cfg.JobURL, "company": cfg.CompanyURL} {
		if err := validateBaseURL(raw); err != nil {
			return nil, fmt.Errorf("jobapi: %s url: %w", name, err)
		}
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = timeouts.BackendRequest
	}
	c := &Client{
		http: &http.Client{
			Timeout:   timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
		logger: logging.OrNop(logger).Named("jobapi"),
		cfg:    cfg,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}
	return c, nil
}

func validateBaseURL(raw string) error {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return fmt.Errorf("is required")
	}
	parsed, err := url.Parse(raw)
	if err != nil {
		return err
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return fmt.Errorf("scheme must be http or https, got %q", parsed.Scheme)
	}
	if parsed.Host == "" {
		return fmt.Errorf("host is required")
	}
	return nil
}

func endpoint(base string, path string) string {
	return strings.TrimRight(strings.TrimSpace(base), "/") + path
}

// ListCategories fetches every category.
func (c *Client) ListCategories(ctx context.Context) ([]Category, error) {
	var resp categoriesResponse
	if err := c.do(ctx, "list categories", http.MethodGet, endpoint(c.cfg.CategoryURL, "/get"), nil, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Categories, nil
}

// ListCompanies fetches the companies visible to creds.
func (c *Client) ListCompanies(ctx context.Context, creds Credentials) ([]Company, error) {
	var resp companiesResponse
	if err := c.do(ctx, "list companies", http.MethodGet, endpoint(c.cfg.CompanyURL, "/get"), creds, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Companies, nil
}

// ListJobs fetches public jobs, optionally filtered by category id.
func (c *Client) ListJobs(ctx context.Context, categoryID string) ([]Job, error) {
	target := endpoint(c.cfg.JobURL, "/get")
	if categoryID != "" {
		target += "?" + url.Values{"category": {categoryID}}.Encode()
	}
	var resp jobsResponse
	if err := c.do(ctx, "list jobs", http.MethodGet, target, nil, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Jobs, nil
}

// ListAdminJobs fetches the jobs posted by the recruiter identified by creds.
func (c *Client) ListAdminJobs(ctx context.Context, creds Credentials) ([]Job, error) {
	var resp jobsResponse
	if err := c.do(ctx, "list admin jobs", http.MethodGet, endpoint(c.cfg.JobURL, "/getadminjobs"), creds, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Jobs, nil
}

// CreateJob posts a job and returns the backend confirmation message.
func (c *Client) CreateJob(ctx context.Context, creds Credentials, payload JobPayload) (string, error) {
	var resp createJobResponse
	if err := c.do(ctx, "create job", http.MethodPost, endpoint(c.cfg.JobURL, "/post"), creds, payload, &resp); err != nil {
		return "", err
	}
	return resp.Message, nil
}

func (c *Client) do(ctx context.Context, op string, method string, target string, creds Credentials, body any, out response) (err error) {
	ctx, span := tracer.Start(ctx, "jobapi."+strings.ReplaceAll(op, " ", "_"), trace.WithSpanKind(trace.SpanKindClient))
	defer span.End()
	span.SetAttributes(
		attribute.String("http.request.method", method),
		attribute.String("url.full", target),
	)
	logger := c.logger.With(zap.String("op", op), zap.String("method", method), zap.String("url", target))
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, op)
			logger.Warn("backend request failed", zap.Error(err))
		}
	}()

	var reader io.Reader
	if body != nil {
		payload, marshalErr := json.Marshal(body)
		if marshalErr != nil {
			return &RequestFailure{Op: op, Err: marshalErr}
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return &RequestFailure{Op: op, Err: err}
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	creds.apply(req)

	started := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return &RequestFailure{Op: op, Err: err}
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			logger.Debug("failed to close response body", zap.Error(cerr))
		}
	}()
	span.SetAttributes(attribute.Int("http.response.status_code", resp.StatusCode))

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return &RequestFailure{Op: op, Status: resp.StatusCode, Err: err}
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		var env envelope
		_ = json.Unmarshal(raw, &env)
		return &RequestFailure{Op: op, Status: resp.StatusCode, Message: env.Message}
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return &RequestFailure{Op: op, Status: resp.StatusCode, Err: fmt.Errorf("decode response: %w", err)}
	}
	status := out.status()
	if !status.Success {
		return &ApplicationFailure{Op: op, Message: status.Message}
	}
	logger.Debug("backend request completed", zap.Int("status", resp.StatusCode), zap.Duration("duration", time.Since(started)))
	return nil
}
