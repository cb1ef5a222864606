package qa

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/vokinneberg/askdesk/internal/types"
)

// errNullAnswer rejects a literal null body, which carries no payload object
var errNullAnswer = errors.New("answer body is null")

// StatusError is returned when the endpoint answers with a non-2xx status
type StatusError struct {
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("HTTP error: %d", e.StatusCode)
}

// Send POSTs question to the endpoint and returns the raw response.
// The caller must close the response body.
func (c *Client) Send(ctx context.Context, question string) (*http.Response, error) {
	jsonData, err := json.Marshal(types.QuestionRequest{Question: question})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal question: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send question: %w", err)
	}

	return resp, nil
}

// Ask sends question and decodes the answer payload.
// Transport failures, non-2xx statuses and undecodable bodies are all
// returned as errors; a non-2xx status is a *StatusError.
func (c *Client) Ask(ctx context.Context, question string) (*types.AnswerPayload, error) {
	resp, err := c.Send(ctx, question)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read answer: %w", err)
	}

	var payload types.AnswerPayload
	if bytes.Equal(bytes.TrimSpace(body), []byte("null")) {
		return nil, fmt.Errorf("failed to decode answer: %w", errNullAnswer)
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("failed to decode answer: %w", err)
	}

	return &payload, nil
}
