// Package analysis talks to the external video-analysis service. The
// service itself is a black box: the client uploads one video file and
// renders whatever JSON comes back.
package analysis

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"path/filepath"

	"github.com/akyairhashvil/coachtrack/internal/config"
	"github.com/akyairhashvil/coachtrack/internal/models"
)

// FileField is the multipart field name the service expects.
const FileField = "video"

// ErrService marks a non-2xx response, as opposed to a transport failure.
// The two surface identically to the user but are logged differently.
var ErrService = errors.New("analysis service error")

// Analyzer uploads a video and returns the service's analysis result.
//
//go:generate mockgen -source=client.go -destination=mocks/mock_analyzer.go -package=mocks
type Analyzer interface {
	Analyze(ctx context.Context, name string, video io.Reader) (*models.AnalysisResult, error)
}

// Client is the HTTP implementation of Analyzer.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewClient builds a client for the given base URL. The HTTP client
// carries the analyze timeout; there is no retry.
func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL:    baseURL,
		HTTPClient: &http.Client{Timeout: config.AnalyzeTimeout},
	}
}

var _ Analyzer = (*Client)(nil)

// Analyze posts the video as multipart form data to /api/analyze and
// decodes the JSON result. Any non-2xx status is a generic failure; the
// response body is not inspected for error detail.
func (c *Client) Analyze(ctx context.Context, name string, video io.Reader) (*models.AnalysisResult, error) {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile(FileField, filepath.Base(name))
	if err != nil {
		return nil, fmt.Errorf("build upload: %w", err)
	}
	if _, err := io.Copy(part, video); err != nil {
		return nil, fmt.Errorf("read video: %w", err)
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("build upload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/api/analyze", &body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("analysis request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: returned %s", ErrService, resp.Status)
	}

	var result models.AnalysisResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("decode analysis result: %w", err)
	}
	return &result, nil
}
