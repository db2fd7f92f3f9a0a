package xaiclient

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

// SystemInstruction pins the trend-scan persona for every call.
const SystemInstruction = "You are a trend analyst. Be concise and concrete."

// Temperature is fixed low to bias toward deterministic, literal output.
const Temperature = 0.2

// Client calls the xAI chat completions API. One network call per
// invocation, no retries.
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

func New(apiKey, model string, timeout time.Duration) *Client {
	baseURL := os.Getenv("XAI_BASE_URL")
	if baseURL == "" {
		baseURL = "https://api.x.ai"
	}

	hc := httpclient.New(httpclient.Config{Timeout: timeout})
	return &Client{
		base:   httpclient.NewBaseClientWithClient(hc, baseURL),
		apiKey: apiKey,
		model:  model,
	}
}

func (c *Client) Model() string { return c.model }

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Role    string `json:"role"`
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// Scan sends the prompt as a single user message under the fixed system
// instruction and returns the first choice's content. An empty answer is
// returned as "" without error.
func (c *Client) Scan(ctx context.Context, prompt string) (string, error) {
	payload := chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: SystemInstruction},
			{Role: "user", Content: prompt},
		},
		Temperature: Temperature,
	}

	buf, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}

	headers := http.Header{}
	headers.Set("Authorization", "Bearer "+c.apiKey)

	status, body, err := c.base.PostJSON(ctx, "/v1/chat/completions", buf, headers, maxBodySize)
	if err != nil {
		return "", err
	}
	if status < 200 || status >= 300 {
		return "", &HTTPError{StatusCode: status, Message: errorMessage(body, status)}
	}

	var resp chatResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return "", nil
	}
	if len(resp.Choices) == 0 {
		return "", nil
	}
	return resp.Choices[0].Message.Content, nil
}

// errorMessage handles both failure shapes this provider uses: an error
// object with a message field and a bare string under "error".
func errorMessage(body []byte, status int) string {
	var withMessage struct {
		Error struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.Unmarshal(body, &withMessage); err == nil && withMessage.Error.Message != "" {
		return withMessage.Error.Message
	}

	var withString struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(body, &withString); err == nil && withString.Error != "" {
		return withString.Error
	}

	return fmt.Sprintf("xAI request failed (%d)", status)
}
