package searchindex

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/poiesic/docpipe/core"
)

// UploadBatchSize is the number of records sent per upload request.
const UploadBatchSize = 32

// defaultAPIVersions are probed in order when no explicit API version is
// configured. The older preview versions are broadly available across
// regions.
var defaultAPIVersions = []string{
	"2024-10-01-Preview",
	"2024-05-01-Preview",
	"2023-11-01",
	"2023-11-01-Preview",
}

// Indexer is the slice of the search service the ingestion pipeline
// needs: one-time provisioning and idempotent record upload.
type Indexer interface {
	// EnsureIndex creates or updates the index schema for the given
	// embedding dimension.
	EnsureIndex(ctx context.Context, dimension int) error

	// Upload upserts records into the index. Records are keyed by their
	// ID, so re-uploading overwrites in place.
	Upload(ctx context.Context, records []core.IndexRecord) error
}

// Client talks to the Azure AI Search REST API.
type Client struct {
	endpoint   string
	key        string
	index      string
	apiVersion string
	httpClient *http.Client
	logger     *slog.Logger
}

var _ Indexer = (*Client)(nil)

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the HTTP client, mainly for tests.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithAPIVersion pins the API version, skipping probing.
func WithAPIVersion(version string) Option {
	return func(c *Client) {
		c.apiVersion = version
	}
}

// NewClient creates a search client for one index.
func NewClient(endpoint, key, index string, opts ...Option) (*Client, error) {
	if endpoint == "" {
		return nil, ErrEndpointRequired
	}
	if key == "" {
		return nil, ErrKeyRequired
	}
	if index == "" {
		return nil, ErrIndexNameRequired
	}

	c := &Client{
		endpoint:   strings.TrimSuffix(endpoint, "/"),
		key:        key,
		index:      index,
		httpClient: &http.Client{Timeout: 30 * time.Second},
		logger:     slog.Default().With("component", "search-index", "index", index),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// ResolveAPIVersion picks a working API version. A configured version is
// used as-is; otherwise the known versions are probed against the service
// in order. Auth failures abort immediately since no other version would
// fare better.
func (c *Client) ResolveAPIVersion(ctx context.Context) error {
	if c.apiVersion != "" {
		c.logger.Info("using configured API version", "version", c.apiVersion)
		return nil
	}

	for _, version := range defaultAPIVersions {
		url := fmt.Sprintf("%s/indexes?api-version=%s", c.endpoint, version)
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return err
		}
		req.Header.Set("api-key", c.key)

		resp, err := c.httpClient.Do(req)
		if err != nil {
			c.logger.Warn("API version probe failed", "version", version, "err", err)
			continue
		}
		io.Copy(io.Discard, resp.Body)
		resp.Body.Close()

		switch resp.StatusCode {
		case http.StatusOK:
			c.logger.Info("detected supported API version", "version", version)
			c.apiVersion = version
			return nil
		case http.StatusUnauthorized:
			return fmt.Errorf("%w: check the search service key", ErrUnauthorized)
		case http.StatusForbidden:
			return fmt.Errorf("%w: key may lack permissions", ErrForbidden)
		default:
			c.logger.Info("API version not accepted", "version", version, "status", resp.StatusCode)
		}
	}

	return fmt.Errorf("%w: tried %s", ErrNoSupportedAPIVersion, strings.Join(defaultAPIVersions, ", "))
}

// EnsureIndex creates or updates the index schema.
func (c *Client) EnsureIndex(ctx context.Context, dimension int) error {
	if c.apiVersion == "" {
		return ErrAPIVersionUnresolved
	}
	if dimension <= 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidDimension, dimension)
	}

	url := fmt.Sprintf("%s/indexes('%s')?api-version=%s", c.endpoint, c.index, c.apiVersion)
	definition := newIndexDefinition(c.index, dimension)

	status, body, err := c.send(ctx, http.MethodPut, url, definition)
	if err != nil {
		return fmt.Errorf("index create/update: %w", err)
	}
	if status < 200 || status >= 300 {
		return fmt.Errorf("index create/update failed: status %d: %s", status, body)
	}

	c.logger.Info("index created or updated", "dimension", dimension)
	return nil
}

type uploadAction struct {
	core.IndexRecord
	Action string `json:"@search.action"`
}

type uploadPayload struct {
	Value []uploadAction `json:"value"`
}

// Upload upserts records in batches of UploadBatchSize.
func (c *Client) Upload(ctx context.Context, records []core.IndexRecord) error {
	if c.apiVersion == "" {
		return ErrAPIVersionUnresolved
	}
	if len(records) == 0 {
		c.logger.Info("no records to upload")
		return nil
	}

	url := fmt.Sprintf("%s/indexes('%s')/docs/index?api-version=%s", c.endpoint, c.index, c.apiVersion)

	for start := 0; start < len(records); start += UploadBatchSize {
		end := start + UploadBatchSize
		if end > len(records) {
			end = len(records)
		}

		payload := uploadPayload{Value: make([]uploadAction, 0, end-start)}
		for _, record := range records[start:end] {
			payload.Value = append(payload.Value, uploadAction{IndexRecord: record, Action: "upload"})
		}

		status, body, err := c.send(ctx, http.MethodPost, url, payload)
		if err != nil {
			return fmt.Errorf("uploading records %d-%d: %w", start+1, end, err)
		}
		if status < 200 || status >= 300 {
			return fmt.Errorf("uploading records %d-%d failed: status %d: %s", start+1, end, status, body)
		}

		c.logger.Info("uploaded batch", "from", start+1, "to", end)
	}

	return nil
}

// send marshals body, performs the request, and returns the status code
// and response body.
func (c *Client) send(ctx context.Context, method, url string, body any) (int, string, error) {
	encoded, err := json.Marshal(body)
	if err != nil {
		return 0, "", err
	}

	req, err := http.NewRequestWithContext(ctx, method, url, bytes.NewReader(encoded))
	if err != nil {
		return 0, "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("api-key", c.key)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, "", err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, "", err
	}
	return resp.StatusCode, string(respBody), nil
}
