// Copyright (c) SmartRecipe (dev@smartrecipe.app)
// SPDX-License-Identifier: MIT

package config

import (
	"github.com/curioswitch/go-curiostack/config"
)

type OpenAI struct {
	// APIKey is the OpenAI API key. Required for the openai provider; the
	// shipped placeholder is rejected before any completion call.
	APIKey string `koanf:"apikey"`

	// Model is the chat completion model.
	Model string `koanf:"model"`
}

type Gemini struct {
	// APIKey is the Gemini API key. Required for the gemini provider.
	APIKey string `koanf:"apikey"`

	// Model is the generation model.
	Model string `koanf:"model"`
}

type LLM struct {
	// Provider selects the completion backend, "openai" or "gemini".
	Provider string `koanf:"provider"`

	// Temperature is the sampling temperature for completions.
	Temperature float64 `koanf:"temperature"`

	// MaxTokens caps the completion length.
	MaxTokens int64 `koanf:"maxtokens"`

	// OpenAI is the configuration for the openai provider.
	OpenAI OpenAI `koanf:"openai"`

	// Gemini is the configuration for the gemini provider.
	Gemini Gemini `koanf:"gemini"`
}

type Recipe struct {
	// FallbackStrategy selects the parser fallback for unparseable replies,
	// "placeholder" or "lineSplit".
	FallbackStrategy string `koanf:"fallbackstrategy"`
}

type Config struct {
	config.Common

	// LLM is the configuration for the completion client.
	LLM LLM `koanf:"llm"`

	// Recipe is the configuration for recipe parsing.
	Recipe Recipe `koanf:"recipe"`
}
