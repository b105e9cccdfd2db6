// Package completion wraps the external text-completion service. The
// service is plain text in, plain text out, and treated as unreliable:
// callers are expected to catch every error and degrade gracefully.
package completion

import (
	"encoding/json"
	"fmt"

	"padho/config"

	"github.com/go-resty/resty/v2"
)

// Client is the contract callers program against; tests substitute a fake.
type Client interface {
	Complete(systemMessage, userMessage string) (string, error)
}

type restyClient struct {
	http *resty.Client
}

// NewClient returns a Client backed by the configured chat-completions
// endpoint. Config is read per call, not at construction.
func NewClient() Client {
	return &restyClient{http: resty.New()}
}

func (rc *restyClient) Complete(systemMessage, userMessage string) (string, error) {
	payload := map[string]interface{}{
		"model": config.AppConfig.LLMModel,
		"messages": []map[string]string{
			{"role": "system", "content": systemMessage},
			{"role": "user", "content": userMessage},
		},
	}

	resp, err := rc.http.R().
		SetHeader("Authorization", "Bearer "+config.AppConfig.LLMApiKey).
		SetHeader("Content-Type", "application/json").
		SetBody(payload).
		Post(config.AppConfig.LLMApiURL)
	if err != nil {
		return "", err
	}
	if resp.StatusCode() != 200 {
		return "", fmt.Errorf("completion service returned %d", resp.StatusCode())
	}

	var out struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.Unmarshal(resp.Body(), &out); err != nil {
		return "", err
	}
	if len(out.Choices) == 0 {
		return "", fmt.Errorf("completion service returned no choices")
	}

	return out.Choices[0].Message.Content, nil
}
