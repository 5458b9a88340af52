package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/quillon/companyscope/internal/models"
)

const (
	researchPath = "/research"
	healthPath   = "/"
)

// FallbackErrorMessage is shown when the backend fails without a usable
// detail field in its error body.
const FallbackErrorMessage = "Something went wrong. Please try again."

// Client talks to the Company Research API.
type Client struct {
	BaseURL    string
	AuthToken  string
	HTTPClient *http.Client
}

// NewClient creates a research API client. A zero timeout means the request
// runs until the backend answers or the transport fails.
func NewClient(baseURL, authToken string, timeout time.Duration) *Client {
	return &Client{
		BaseURL:   strings.TrimRight(baseURL, "/"),
		AuthToken: authToken,
		HTTPClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// Research requests a report for the given company name and returns the
// markdown report text.
//
// Error mapping follows what the UI surfaces verbatim: a non-2xx response
// with a detail field becomes an error carrying exactly that detail, a
// non-2xx response without one becomes FallbackErrorMessage, and transport
// or decode failures keep their own message.
func (c *Client) Research(ctx context.Context, companyName string) (string, error) {
	jsonBody, err := json.Marshal(models.ResearchRequest{CompanyName: companyName})
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+researchPath, bytes.NewReader(jsonBody))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	c.setHeaders(req)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to reach research backend: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", decodeError(resp.Body)
	}

	var result models.ResearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}

	return result.Report, nil
}

// Health calls the backend's health endpoint and returns its status string.
func (c *Client) Health(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+healthPath, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	c.setHeaders(req)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to reach research backend: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return "", decodeError(resp.Body)
	}

	var health models.HealthResponse
	if err := json.NewDecoder(resp.Body).Decode(&health); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}

	return health.Status, nil
}

func (c *Client) setHeaders(req *http.Request) {
	req.Header.Set("Content-Type", "application/json")
	if c.AuthToken != "" {
		req.Header.Set("Authorization", "Bearer "+c.AuthToken)
	}
}

// decodeError extracts the backend's detail message from a failure body.
// A missing detail field or an undecodable body collapses into the generic
// fallback, matching the observed UI behavior.
func decodeError(body io.Reader) error {
	raw, err := io.ReadAll(body)
	if err != nil {
		return errors.New(FallbackErrorMessage)
	}

	var errBody models.ErrorResponse
	if err := json.Unmarshal(raw, &errBody); err != nil || errBody.Detail == "" {
		return errors.New(FallbackErrorMessage)
	}

	return errors.New(errBody.Detail)
}
