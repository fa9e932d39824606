// Copyright (c) SmartRecipe (dev@smartrecipe.app)
// SPDX-License-Identifier: MIT

package llm

import (
	"context"
	"errors"
	"fmt"

	"google.golang.org/genai"
)

// Compile-time interface check.
var _ Client = (*GeminiClient)(nil)

// GeminiConfig configures the Gemini completion client.
type GeminiConfig struct {
	// APIKey is the completion credential. Empty or placeholder values make
	// every Complete call fail with ErrMissingAPIKey before any network
	// attempt.
	APIKey string

	// Model is the generation model, e.g. "gemini-2.5-flash".
	Model string

	// Temperature is the sampling temperature.
	Temperature float64

	// MaxTokens caps the completion length.
	MaxTokens int64
}

// NewGemini returns a Client backed by the Gemini API.
func NewGemini(ctx context.Context, conf GeminiConfig) (*GeminiClient, error) {
	c := &GeminiClient{
		model:       conf.Model,
		temperature: conf.Temperature,
		maxTokens:   conf.MaxTokens,
	}
	if !validAPIKey(conf.APIKey) {
		c.credentialErr = ErrMissingAPIKey
		return c, nil
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		Backend: genai.BackendGeminiAPI,
		APIKey:  conf.APIKey,
	})
	if err != nil {
		return nil, fmt.Errorf("llm: creating genai client: %w", err)
	}
	c.client = client
	return c, nil
}

// GeminiClient talks to the Gemini generate-content endpoint.
type GeminiClient struct {
	client        *genai.Client
	model         string
	temperature   float64
	maxTokens     int64
	credentialErr error
}

func (c *GeminiClient) Complete(ctx context.Context, prompt string, mode Mode) (string, error) {
	if c.credentialErr != nil {
		return "", c.credentialErr
	}

	conf := &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(SystemInstruction(mode), genai.RoleModel),
		Temperature:       genai.Ptr(float32(c.temperature)),
		MaxOutputTokens:   int32(c.maxTokens),
	}
	if mode == ModeRecipe {
		conf.ResponseMIMEType = "application/json"
	}

	res, err := c.client.Models.GenerateContent(ctx, c.model, []*genai.Content{
		genai.NewContentFromText(prompt, genai.RoleUser),
	}, conf)
	if err != nil {
		var apierr genai.APIError
		if errors.As(err, &apierr) {
			return "", &UpstreamError{StatusCode: apierr.Code, Message: apierr.Message}
		}
		return "", &TransportError{Err: err}
	}
	if len(res.Candidates) != 1 || res.Candidates[0].Content == nil ||
		len(res.Candidates[0].Content.Parts) != 1 || res.Candidates[0].Content.Parts[0].Text == "" {
		return "", &UpstreamError{Message: "unexpected response from generate ai"}
	}
	return res.Candidates[0].Content.Parts[0].Text, nil
}
