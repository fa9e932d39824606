// Copyright (c) SmartRecipe (dev@smartrecipe.app)
// SPDX-License-Identifier: MIT

// Package llm provides completion clients for the assistant. Two providers
// are supported, selected by configuration: OpenAI chat completions and
// Gemini. Both send a single system+user prompt pair and return the raw text
// reply; nothing is retried.
package llm

import (
	"context"
	"errors"
	"fmt"
)

// Mode selects the system instruction for a completion.
type Mode int

const (
	// ModeRecipe instructs the model to reply with a single recipe JSON object.
	ModeRecipe Mode = iota
	// ModeChat instructs the model to reply with free-form cooking advice.
	ModeChat
)

func (m Mode) String() string {
	if m == ModeRecipe {
		return "recipe"
	}
	return "chat"
}

// Client sends a single prompt to a completion endpoint and returns the raw
// text reply. One outbound call per invocation, no retry.
type Client interface {
	Complete(ctx context.Context, prompt string, mode Mode) (string, error)
}

// placeholderAPIKey is the well-known placeholder shipped in example
// configuration. A key equal to it is treated the same as no key.
const placeholderAPIKey = "sk-your-api-key-here"

// ErrMissingAPIKey is returned before any network attempt when the completion
// credential is empty or still the configuration placeholder.
var ErrMissingAPIKey = errors.New("llm: completion API key is missing or a placeholder")

// validAPIKey reports whether key is a usable credential.
func validAPIKey(key string) bool {
	return key != "" && key != placeholderAPIKey
}

// TransportError wraps a failure to complete the network round trip, or a
// non-success status with no structured error body.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("llm: completion request failed: %v", e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// UpstreamError carries an error reported by the remote endpoint itself.
type UpstreamError struct {
	StatusCode int
	Message    string
}

func (e *UpstreamError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("llm: upstream error (status %d): %s", e.StatusCode, e.Message)
	}
	return "llm: upstream error: " + e.Message
}
