// Package inference calls the hosted text-generation endpoint that
// answers free-text questions. One attempt, short timeout; retries are
// the user's button press.
package inference

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/benuhq/benubot/core/logger"
	"github.com/google/uuid"
)

const (
	defaultTimeout  = 10 * time.Second
	systemInstruct  = "You are a helpful AI for startup founders. "
	maxNewTokens    = 200
	temperature     = 0.7
	maxResponseSize = 1 << 20
)

// ErrUnavailable wraps every upstream failure; callers show one generic
// try-again message regardless of the cause.
var ErrUnavailable = errors.New("inference: upstream unavailable")

// Client is the text-generation API client.
type Client struct {
	url    string
	apiKey string
	http   *http.Client
}

// New builds a Client for the given endpoint.
func New(url, apiKey string) *Client {
	return &Client{
		url:    url,
		apiKey: apiKey,
		http:   &http.Client{Timeout: defaultTimeout},
	}
}

type request struct {
	Inputs     string     `json:"inputs"`
	Parameters parameters `json:"parameters"`
}

type parameters struct {
	MaxNewTokens   int     `json:"max_new_tokens"`
	Temperature    float64 `json:"temperature"`
	ReturnFullText bool    `json:"return_full_text"`
}

type generation struct {
	GeneratedText string `json:"generated_text"`
}

// Ask sends one question and returns the first completion, trimmed.
func (c *Client) Ask(ctx context.Context, question string) (string, error) {
	body, err := json.Marshal(request{
		Inputs: systemInstruct + question,
		Parameters: parameters{
			MaxNewTokens:   maxNewTokens,
			Temperature:    temperature,
			ReturnFullText: false,
		},
	})
	if err != nil {
		return "", fmt.Errorf("marshal inference request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("build inference request: %w", err)
	}
	reqID := uuid.NewString()
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("X-Request-ID", reqID)

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		logger.SVCInference.LogAttrs(ctx, slog.LevelWarn, "ask.failed",
			slog.String("request_id", reqID),
			slog.String("err", err.Error()),
		)
		return "", fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		logger.SVCInference.LogAttrs(ctx, slog.LevelWarn, "ask.failed",
			slog.String("request_id", reqID),
			slog.Int("http_status", resp.StatusCode),
		)
		return "", fmt.Errorf("%w: status %d", ErrUnavailable, resp.StatusCode)
	}

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return "", fmt.Errorf("%w: read body: %v", ErrUnavailable, err)
	}
	var completions []generation
	if err := json.Unmarshal(raw, &completions); err != nil || len(completions) == 0 {
		return "", fmt.Errorf("%w: malformed response", ErrUnavailable)
	}

	answer := strings.TrimSpace(completions[0].GeneratedText)
	logger.SVCInference.LogAttrs(ctx, slog.LevelInfo, "ask.answered",
		slog.String("request_id", reqID),
		slog.Int("answer_len", len(answer)),
		slog.Duration("duration", logger.RoundMS(time.Since(start))),
	)
	return answer, nil
}
