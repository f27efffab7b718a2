package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/Veraticus/ecoscan/internal/common"
	"github.com/Veraticus/ecoscan/internal/model"
	"github.com/google/uuid"
)

// Endpoint paths.
const (
	PathPredict      = "/api/predict"
	PathStats        = "/api/stats"
	PathHistory      = "/api/history"
	PathAchievements = "/api/achievements"
	PathChat         = "/api/chat"
)

// RequestIDHeader carries a per-request correlation id.
const RequestIDHeader = "X-Request-ID"

// maxErrorBody bounds how much of an error response is kept.
const maxErrorBody = 512

// UploadWrapper decorates the image reader during upload, e.g. to report
// progress. size is the file size in bytes.
type UploadWrapper func(r io.Reader, size int64) io.Reader

// Client talks to the waste classification backend.
type Client struct {
	httpClient *http.Client
	wrapUpload UploadWrapper
	baseURL    *url.URL
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithTimeout sets a request timeout. Zero leaves requests unbounded.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = d
	}
}

// WithUploadWrapper installs an UploadWrapper for Predict.
func WithUploadWrapper(w UploadWrapper) Option {
	return func(c *Client) {
		c.wrapUpload = w
	}
}

// New creates a client for the backend at baseURL.
func New(baseURL string, opts ...Option) (*Client, error) {
	if strings.TrimSpace(baseURL) == "" {
		return nil, fmt.Errorf("%w: backend URL is required", common.ErrInvalidConfig)
	}
	u, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("%w: invalid backend URL: %v", common.ErrInvalidConfig, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("%w: backend URL must be http or https: %s", common.ErrInvalidConfig, baseURL)
	}

	c := &Client{
		baseURL:    u,
		httpClient: &http.Client{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// ResolveURL turns a backend-relative resource path into an absolute URL.
func (c *Client) ResolveURL(resource string) string {
	ref, err := url.Parse("/" + strings.TrimLeft(resource, "/"))
	if err != nil {
		return resource
	}
	return c.baseURL.ResolveReference(ref).String()
}

// Predict uploads the image and returns the classification.
func (c *Client) Predict(ctx context.Context, file model.ImageFile) (*model.ClassificationResult, error) {
	f, err := os.Open(file.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image: %w", err)
	}
	defer func() { _ = f.Close() }()

	var src io.Reader = f
	if c.wrapUpload != nil {
		src = c.wrapUpload(f, file.Size)
	}

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename=%q`, file.Name))
	header.Set("Content-Type", file.MediaType)
	part, err := mw.CreatePart(header)
	if err != nil {
		return nil, fmt.Errorf("failed to create form part: %w", err)
	}
	if _, err := io.Copy(part, src); err != nil {
		return nil, fmt.Errorf("failed to read image: %w", err)
	}
	if err := mw.Close(); err != nil {
		return nil, fmt.Errorf("failed to finish form: %w", err)
	}

	var result model.ClassificationResult
	if err := c.do(ctx, http.MethodPost, PathPredict, nil, mw.FormDataContentType(), &body, &result); err != nil {
		return nil, err
	}
	if result.Label == "" {
		return nil, fmt.Errorf("%s: %w: missing label", PathPredict, common.ErrEmptyResponse)
	}
	return &result, nil
}

// Stats fetches the aggregate statistics.
func (c *Client) Stats(ctx context.Context) (model.Stats, error) {
	var stats model.Stats
	if err := c.do(ctx, http.MethodGet, PathStats, nil, "", nil, &stats); err != nil {
		return model.Stats{}, err
	}
	return stats, nil
}

// History fetches the most recent scans, newest first.
func (c *Client) History(ctx context.Context, limit int) ([]model.HistoryItem, error) {
	q := url.Values{}
	if limit > 0 {
		q.Set("limit", strconv.Itoa(limit))
	}
	var items []model.HistoryItem
	if err := c.do(ctx, http.MethodGet, PathHistory, q, "", nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// Achievements fetches the unlocked achievements.
func (c *Client) Achievements(ctx context.Context) ([]model.Achievement, error) {
	var achievements []model.Achievement
	if err := c.do(ctx, http.MethodGet, PathAchievements, nil, "", nil, &achievements); err != nil {
		return nil, err
	}
	return achievements, nil
}

// Chat sends one coach exchange and returns the reply text.
func (c *Client) Chat(ctx context.Context, req model.ChatRequest) (string, error) {
	if req.History == nil {
		req.History = []model.CoachMessage{}
	}
	payload, err := json.Marshal(req)
	if err != nil {
		return "", fmt.Errorf("failed to marshal chat request: %w", err)
	}

	var resp model.ChatResponse
	if err := c.do(ctx, http.MethodPost, PathChat, nil, "application/json", bytes.NewReader(payload), &resp); err != nil {
		return "", err
	}
	if resp.Response == "" {
		return "", fmt.Errorf("%s: %w", PathChat, common.ErrEmptyResponse)
	}
	return resp.Response, nil
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, contentType string, body io.Reader, out any) error {
	u := *c.baseURL
	u.Path = strings.TrimRight(u.Path, "/") + path
	if query != nil {
		u.RawQuery = query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), body)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	requestID := uuid.NewString()
	req.Header.Set(RequestIDHeader, requestID)
	req.Header.Set("Accept", "application/json")
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s failed: %w", method, path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	slog.Debug("Backend request completed",
		"method", method,
		"path", path,
		"status", resp.StatusCode,
		"request_id", requestID,
		"duration", time.Since(start))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return &common.StatusError{
			Endpoint:   path,
			StatusCode: resp.StatusCode,
			Body:       strings.TrimSpace(string(raw)),
		}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode %s response: %w", path, err)
	}
	return nil
}
