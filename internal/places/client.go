package places

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/makanlab/restaurant-locator/internal/dto"
)

// fieldMask restricts the upstream response to the fields the normalizer
// consumes. Requesting less keeps the quota cost per call down.
const fieldMask = "places.displayName,places.formattedAddress,places.priceLevel,places.rating"

// Client calls the Google Places text-search endpoint scoped to a fixed
// region. One call per Search invocation, no retries.
type Client struct {
	client     *http.Client
	baseURL    string
	apiKey     string
	region     string
	maxResults int
}

// NewClient builds a places client. The http.Client owns the request timeout;
// a nil client gets a conservative 10 second default.
func NewClient(client *http.Client, baseURL, apiKey, region string, maxResults int) *Client {
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}
	if region == "" {
		region = "Singapore"
	}
	if maxResults <= 0 {
		maxResults = 10
	}
	return &Client{
		client:     client,
		baseURL:    baseURL,
		apiKey:     apiKey,
		region:     region,
		maxResults: maxResults,
	}
}

// Search issues one text-search request for the given query and returns the
// normalized results in upstream order. The query is assumed to be validated
// and trimmed by the caller.
func (c *Client) Search(ctx context.Context, query string) ([]dto.RestaurantResult, error) {
	body, err := json.Marshal(searchTextRequest{
		TextQuery:      fmt.Sprintf("%s in %s", query, c.region),
		MaxResultCount: c.maxResults,
	})
	if err != nil {
		return nil, fmt.Errorf("marshal search request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create search request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Goog-Api-Key", c.apiKey)
	req.Header.Set("X-Goog-FieldMask", fieldMask)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, &UpstreamError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, upstreamErrorFromResponse(resp)
	}

	var payload searchTextResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil && err != io.EOF {
		return nil, &UpstreamError{
			StatusCode: resp.StatusCode,
			Message:    "malformed response body",
			Err:        err,
		}
	}

	return Normalize(payload.Places), nil
}

// upstreamErrorFromResponse maps a non-2xx answer onto an UpstreamError,
// pulling status and message out of the Google error envelope when the body
// carries one.
func upstreamErrorFromResponse(resp *http.Response) *UpstreamError {
	ue := &UpstreamError{StatusCode: resp.StatusCode}

	data, err := io.ReadAll(io.LimitReader(resp.Body, 1<<16))
	if err != nil || len(data) == 0 {
		return ue
	}

	var envelope errorResponse
	if err := json.Unmarshal(data, &envelope); err == nil && envelope.Error.Message != "" {
		ue.Status = envelope.Error.Status
		ue.Message = envelope.Error.Message
	}
	return ue
}
