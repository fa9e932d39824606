// Copyright (c) SmartRecipe (dev@smartrecipe.app)
// SPDX-License-Identifier: MIT

// Package assistant orchestrates recipe generation and follow-up chat. The
// controller owns all mutable assistant state: the current recipe and the
// chat transcript.
package assistant

import (
	"context"
	"errors"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/smartrecipe/assistant/internal/chat"
	"github.com/smartrecipe/assistant/internal/llm"
	"github.com/smartrecipe/assistant/internal/recipedb"
	"github.com/smartrecipe/assistant/internal/recipeparse"
)

// ErrEmptyIngredients is returned by GenerateRecipe before any completion
// call when the ingredient input is empty or whitespace.
var ErrEmptyIngredients = errors.New("assistant: ingredients must not be empty")

// ErrStaleGeneration is returned when a completion finished after a newer
// generation request was issued. The stale result is discarded, never
// published.
var ErrStaleGeneration = errors.New("assistant: superseded by a newer request")

// chatErrorReply is appended as an assistant turn when a chat completion
// fails, so the transcript stays consistent with the already-recorded user
// turn.
const chatErrorReply = "Sorry, I encountered an error. Please try again."

// NewController returns a Controller with an empty transcript and no current
// recipe.
func NewController(client llm.Client, parser *recipeparse.Parser) *Controller {
	c := &Controller{
		client:     client,
		parser:     parser,
		transcript: chat.NewSession(),
	}
	c.touch()
	return c
}

// Controller coordinates the completion client, parser, and transcript for a
// single user session.
type Controller struct {
	client llm.Client
	parser *recipeparse.Parser

	mu      sync.Mutex
	current *recipedb.Recipe

	transcript *chat.Session

	generation atomic.Uint64
	lastActive atomic.Int64
}

// GenerateRecipe builds a recipe-mode prompt from the inputs, issues exactly
// one completion call, and publishes the parsed result as the current recipe.
// Each call supersedes any outstanding one: a completion that returns after a
// newer call was issued is discarded with ErrStaleGeneration. Completion
// failures propagate and leave the prior recipe untouched.
func (c *Controller) GenerateRecipe(ctx context.Context, ingredients string, dietary string, cuisine string) (recipedb.Recipe, error) {
	c.touch()
	if strings.TrimSpace(ingredients) == "" {
		return recipedb.Recipe{}, ErrEmptyIngredients
	}

	gen := c.generation.Add(1)

	raw, err := c.client.Complete(ctx, llm.RecipePrompt(ingredients, dietary, cuisine), llm.ModeRecipe)
	if err != nil {
		return recipedb.Recipe{}, err
	}

	recipe := c.parser.Parse(raw, ingredients)

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.generation.Load() != gen {
		return recipedb.Recipe{}, ErrStaleGeneration
	}
	c.current = &recipe
	return recipe, nil
}

// SendChatMessage appends the user turn, asks the completion endpoint for
// advice, and appends the reply as an assistant turn. Empty or whitespace
// text is a no-op. The current recipe's title is passed as prompt context
// when present. A completion failure is absorbed into the transcript as an
// assistant-role error turn rather than propagated. Returns the transcript
// after the exchange.
func (c *Controller) SendChatMessage(ctx context.Context, text string) ([]recipedb.ChatMessage, error) {
	c.touch()
	if strings.TrimSpace(text) == "" {
		return c.transcript.Messages(), nil
	}

	c.transcript.AppendUser(text)

	title := ""
	c.mu.Lock()
	if c.current != nil {
		title = c.current.Title
	}
	c.mu.Unlock()

	reply, err := c.client.Complete(ctx, llm.ChatPrompt(text, title), llm.ModeChat)
	if err != nil {
		// A missing credential is a blocking configuration problem, not a
		// chat failure; it propagates instead of joining the transcript.
		if errors.Is(err, llm.ErrMissingAPIKey) {
			return c.transcript.Messages(), err
		}
		c.transcript.AppendAssistant(chatErrorReply)
		return c.transcript.Messages(), nil
	}
	c.transcript.AppendAssistant(reply)
	return c.transcript.Messages(), nil
}

// CurrentRecipe returns the published recipe, or nil before the first
// successful generation.
func (c *Controller) CurrentRecipe() *recipedb.Recipe {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.current == nil {
		return nil
	}
	recipe := *c.current
	return &recipe
}

// Transcript returns a copy of the chat transcript in insertion order.
func (c *Controller) Transcript() []recipedb.ChatMessage {
	return c.transcript.Messages()
}

// LastActive returns the time of the most recent operation.
func (c *Controller) LastActive() time.Time {
	return time.Unix(0, c.lastActive.Load())
}

func (c *Controller) touch() {
	c.lastActive.Store(time.Now().UnixNano())
}
