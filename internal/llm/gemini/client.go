package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"hirehub/assessment/internal/llm"
)

// requestTimeout bounds a single generateContent call. There are no retries;
// callers decide whether a failed call is fatal for their flow.
const requestTimeout = 30 * time.Second

// Client calls the Gemini generateContent REST endpoint.
type Client struct {
	config     *Config
	httpClient *http.Client
}

type generateRequest struct {
	Contents []content `json:"contents"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []part `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

func NewClient(config *Config) (*Client, error) {
	return &Client{
		config: config,
		httpClient: &http.Client{
			Timeout: requestTimeout,
		},
	}, nil
}

// GenerateText makes exactly one call to the generateContent endpoint and
// returns the first candidate's text. A response without the expected
// candidates path yields llm.NoContent rather than an error; only transport
// and HTTP-status failures are surfaced as errors.
func (c *Client) GenerateText(ctx context.Context, prompt string) (string, error) {
	body, err := json.Marshal(generateRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
	})
	if err != nil {
		return "", &llm.ProviderError{
			Provider: "gemini",
			Code:     llm.ErrCodeServiceDown,
			Message:  "Failed to encode request",
			Err:      err,
		}
	}

	url := fmt.Sprintf("%s/models/%s:generateContent?key=%s", c.config.BaseURL, c.config.Model, c.config.APIKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", &llm.ProviderError{
			Provider: "gemini",
			Code:     llm.ErrCodeServiceDown,
			Message:  "Failed to build request",
			Err:      err,
		}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", &llm.ProviderError{
			Provider: "gemini",
			Code:     llm.ErrCodeServiceDown,
			Message:  "Failed to reach generateContent endpoint",
			Err:      err,
		}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		payload, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return "", &llm.ProviderError{
			Provider: "gemini",
			Code:     statusErrorCode(resp.StatusCode),
			Message:  fmt.Sprintf("generateContent returned status %d: %s", resp.StatusCode, string(payload)),
		}
	}

	var decoded generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		// A 200 with an unreadable body is treated the same as a missing
		// candidates path: degraded output, not a hard failure.
		return llm.NoContent, nil
	}

	if len(decoded.Candidates) == 0 || len(decoded.Candidates[0].Content.Parts) == 0 {
		return llm.NoContent, nil
	}
	text := decoded.Candidates[0].Content.Parts[0].Text
	if text == "" {
		return llm.NoContent, nil
	}
	return text, nil
}

func (c *Client) GetProviderName() string {
	return "gemini"
}

func statusErrorCode(status int) string {
	switch status {
	case http.StatusUnauthorized, http.StatusForbidden:
		return llm.ErrCodeAPIKey
	case http.StatusTooManyRequests:
		return llm.ErrCodeRateLimit
	default:
		return llm.ErrCodeBadStatus
	}
}
