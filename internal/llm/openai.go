// Copyright (c) SmartRecipe (dev@smartrecipe.app)
// SPDX-License-Identifier: MIT

package llm

import (
	"context"
	"errors"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
)

// Compile-time interface check.
var _ Client = (*OpenAIClient)(nil)

// OpenAIConfig configures the OpenAI completion client.
type OpenAIConfig struct {
	// APIKey is the completion credential. Empty or placeholder values make
	// every Complete call fail with ErrMissingAPIKey before any network
	// attempt.
	APIKey string

	// Model is the chat completion model, e.g. "gpt-3.5-turbo".
	Model string

	// Temperature is the sampling temperature.
	Temperature float64

	// MaxTokens caps the completion length.
	MaxTokens int64
}

// NewOpenAI returns a Client backed by the OpenAI chat completions API.
// Extra request options are used by tests to point at a fake endpoint.
func NewOpenAI(conf OpenAIConfig, opts ...option.RequestOption) *OpenAIClient {
	c := &OpenAIClient{
		model:       conf.Model,
		temperature: conf.Temperature,
		maxTokens:   conf.MaxTokens,
	}
	if !validAPIKey(conf.APIKey) {
		c.credentialErr = ErrMissingAPIKey
		return c
	}
	reqOpts := append([]option.RequestOption{
		option.WithAPIKey(conf.APIKey),
		option.WithMaxRetries(0),
	}, opts...)
	c.client = openai.NewClient(reqOpts...)
	return c
}

// OpenAIClient talks to the OpenAI chat completions endpoint.
type OpenAIClient struct {
	client        openai.Client
	model         string
	temperature   float64
	maxTokens     int64
	credentialErr error
}

func (c *OpenAIClient) Complete(ctx context.Context, prompt string, mode Mode) (string, error) {
	if c.credentialErr != nil {
		return "", c.credentialErr
	}

	res, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(c.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(SystemInstruction(mode)),
			openai.UserMessage(prompt),
		},
		Temperature: openai.Float(c.temperature),
		MaxTokens:   openai.Int(c.maxTokens),
	})
	if err != nil {
		var apierr *openai.Error
		if errors.As(err, &apierr) {
			return "", &UpstreamError{StatusCode: apierr.StatusCode, Message: apierr.Message}
		}
		return "", &TransportError{Err: err}
	}
	if len(res.Choices) == 0 {
		return "", &UpstreamError{Message: "completion response contained no choices"}
	}
	return res.Choices[0].Message.Content, nil
}
