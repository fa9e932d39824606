// Copyright (c) SmartRecipe (dev@smartrecipe.app)
// SPDX-License-Identifier: MIT

// Package chat holds the in-memory chat transcript. Messages are append-only
// and never edited or removed; insertion order governs rendering order.
package chat

import (
	"sync"

	"github.com/smartrecipe/assistant/internal/recipedb"
)

// NewSession returns an empty transcript.
func NewSession() *Session {
	return &Session{}
}

// Session is an ordered transcript of user and assistant turns. Safe for
// concurrent appends.
type Session struct {
	mu       sync.Mutex
	messages []recipedb.ChatMessage
}

// AppendUser appends a user turn.
func (s *Session) AppendUser(text string) {
	s.append(recipedb.ChatRoleUser, text)
}

// AppendAssistant appends an assistant turn.
func (s *Session) AppendAssistant(text string) {
	s.append(recipedb.ChatRoleAssistant, text)
}

func (s *Session) append(role recipedb.ChatRole, text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.messages = append(s.messages, recipedb.ChatMessage{Role: role, Content: text})
}

// Messages returns a copy of the transcript in insertion order.
func (s *Session) Messages() []recipedb.ChatMessage {
	s.mu.Lock()
	defer s.mu.Unlock()
	messages := make([]recipedb.ChatMessage, len(s.messages))
	copy(messages, s.messages)
	return messages
}
