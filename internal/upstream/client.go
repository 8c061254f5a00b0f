// Package upstream talks to the OpenAI-compatible chat completion service.
package upstream

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/kdduha/diagram-ai-backend/internal/config"
	"github.com/kdduha/diagram-ai-backend/internal/models"
	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
	"github.com/openai/openai-go/v3/shared"
)

const DefaultModel = "gpt-4.1"

var (
	ErrNotConfigured = errors.New("upstream is not configured")
	ErrNoChoices     = errors.New("upstream returned no choices")
)

type Client struct {
	openaiClient openai.Client
	modelName    string
	temperature  float64
}

// New builds a client from cfg. It opens no connection; the first request does.
func New(cfg config.UpstreamConfig, opts ...option.RequestOption) (*Client, error) {
	var result *multierror.Error
	if strings.TrimSpace(cfg.BaseURL) == "" {
		result = multierror.Append(result, fmt.Errorf("%w: AI_UPSTREAM_BASE_URL is empty", ErrNotConfigured))
	}
	if strings.TrimSpace(cfg.APIKey) == "" {
		result = multierror.Append(result, fmt.Errorf("%w: AI_UPSTREAM_API_KEY is empty", ErrNotConfigured))
	}
	if err := result.ErrorOrNil(); err != nil {
		return nil, err
	}

	modelName := cfg.Model
	if modelName == "" {
		modelName = DefaultModel
	}

	clientOpts := append([]option.RequestOption{
		option.WithBaseURL(cfg.BaseURL),
		option.WithAPIKey(cfg.APIKey),
		option.WithMaxRetries(0),
	}, opts...)

	return &Client{
		openaiClient: openai.NewClient(clientOpts...),
		modelName:    modelName,
		temperature:  cfg.Temperature,
	}, nil
}

func (c *Client) Model() string {
	return c.modelName
}

// Complete sends one chat completion and returns the content of the first choice.
func (c *Client) Complete(ctx context.Context, messages []models.ChatMessage) (string, error) {
	params := openai.ChatCompletionNewParams{
		Model:       shared.ChatModel(c.modelName),
		Messages:    toParams(messages),
		Temperature: openai.Float(c.temperature),
	}

	resp, err := c.openaiClient.Chat.Completions.New(ctx, params)
	if err != nil {
		return "", fmt.Errorf("chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", ErrNoChoices
	}
	return resp.Choices[0].Message.Content, nil
}

func toParams(messages []models.ChatMessage) []openai.ChatCompletionMessageParamUnion {
	params := make([]openai.ChatCompletionMessageParamUnion, 0, len(messages))
	for _, m := range messages {
		switch m.Role {
		case models.RoleSystem:
			params = append(params, openai.SystemMessage(m.Content))
		default:
			params = append(params, openai.UserMessage(m.Content))
		}
	}
	return params
}
