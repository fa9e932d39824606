// Copyright (c) SmartRecipe (dev@smartrecipe.app)
// SPDX-License-Identifier: MIT

package sendchat

import (
	"context"
	"errors"
	"net/http"

	"github.com/curioswitch/go-usegcp/middleware/firebaseauth"

	"github.com/smartrecipe/assistant/internal/assistant"
	"github.com/smartrecipe/assistant/internal/httpjson"
	"github.com/smartrecipe/assistant/internal/llm"
	"github.com/smartrecipe/assistant/internal/recipedb"
)

// Request is a chat message from the user.
type Request struct {
	Message string `json:"message"`
}

// Response carries the full transcript after the exchange.
type Response struct {
	Messages []recipedb.ChatMessage `json:"messages"`
}

// NewHandler returns a Handler.
func NewHandler(sessions *assistant.Manager) *Handler {
	return &Handler{
		sessions: sessions,
	}
}

// Handler handles follow-up chat messages.
type Handler struct {
	sessions *assistant.Manager
}

func (h *Handler) SendChat(ctx context.Context, req *Request) (*Response, error) {
	userID := firebaseauth.TokenFromContext(ctx).UID

	messages, err := h.sessions.ForUser(userID).SendChatMessage(ctx, req.Message)
	if err != nil {
		// Completion failures are absorbed into the transcript; only a
		// missing credential surfaces here.
		if errors.Is(err, llm.ErrMissingAPIKey) {
			return nil, httpjson.NewError(http.StatusServiceUnavailable, err)
		}
		return nil, err
	}

	return &Response{Messages: messages}, nil
}
