package openaiclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"time"

	"viralpack/httpclient"
)

const maxBodySize = 5 * 1024 * 1024

// Client calls the OpenAI Responses API: a single free-text instruction in,
// generated text out. One network call per invocation, no retries.
type Client struct {
	base   *httpclient.BaseClient
	apiKey string
	model  string
}

// HTTPError is a non-2xx provider response, normalized to the provider's own
// error message when one is present.
type HTTPError struct {
	StatusCode int
	Message    string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// New creates a client from explicit credentials and model name; nothing is
// read from ambient state after construction.
func New(apiKey, model string, timeout time.Duration) *Client {
	baseURL := os.Getenv("OPENAI_BASE_URL")
	if baseURL == "" {
		baseURL = "https://api.openai.com"
	}

	hc := httpclient.New(httpclient.Config{Timeout: timeout})
	return &Client{
		base:   httpclient.NewBaseClientWithClient(hc, baseURL),
		apiKey: apiKey,
		model:  model,
	}
}

func (c *Client) Model() string { return c.model }

type responsesRequest struct {
	Model string      `json:"model"`
	Input string      `json:"input"`
	Text  *textFormat `json:"text,omitempty"`
}

type textFormat struct {
	Format formatSpec `json:"format"`
}

type formatSpec struct {
	Type string `json:"type"`
}

// Complete sends the prompt and returns the extracted plain text.
// With jsonMode set the request asks the provider to constrain its own
// output to a JSON object.
func (c *Client) Complete(ctx context.Context, prompt string, jsonMode bool) (string, error) {
	payload := responsesRequest{Model: c.model, Input: prompt}
	if jsonMode {
		payload.Text = &textFormat{Format: formatSpec{Type: "json_object"}}
	}

	buf, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}

	headers := http.Header{}
	headers.Set("Authorization", "Bearer "+c.apiKey)

	status, body, err := c.base.PostJSON(ctx, "/v1/responses", buf, headers, maxBodySize)
	if err != nil {
		return "", err
	}
	if status < 200 || status >= 300 {
		return "", &HTTPError{StatusCode: status, Message: errorMessage(body, status)}
	}

	return ParseEnvelope(body).Text(), nil
}

// errorMessage pulls the provider's error.message field out of a failure
// body, falling back to a generic message carrying the status code.
func errorMessage(body []byte, status int) string {
	var failure struct {
		Error struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.Unmarshal(body, &failure); err == nil && failure.Error.Message != "" {
		return failure.Error.Message
	}
	return fmt.Sprintf("OpenAI request failed (%d)", status)
}
