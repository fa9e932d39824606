// Copyright (c) SmartRecipe (dev@smartrecipe.app)
// SPDX-License-Identifier: MIT

package generaterecipe

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

// Request is a recipe generation request.
type Request struct {
	Ingredients       string `json:"ingredients"`
	DietaryPreference string `json:"dietaryPreference"`
	CuisineStyle      string `json:"cuisineStyle"`
}

// Response carries the generated recipe and its displayable metadata.
type Response struct {
	Recipe recipedb.Recipe      `json:"recipe"`
	Meta   []recipedb.MetaField `json:"meta"`
}

// NewHandler returns a Handler.
func NewHandler(sessions *assistant.Manager) *Handler {
	return &Handler{
		sessions: sessions,
	}
}

// Handler generates recipes.
type Handler struct {
	sessions *assistant.Manager
}

func (h *Handler) GenerateRecipe(ctx context.Context, req *Request) (*Response, error) {
	userID := firebaseauth.TokenFromContext(ctx).UID

	recipe, err := h.sessions.ForUser(userID).GenerateRecipe(ctx, req.Ingredients, req.DietaryPreference, req.CuisineStyle)
	if err != nil {
		switch {
		case errors.Is(err, assistant.ErrEmptyIngredients):
			return nil, httpjson.NewError(http.StatusBadRequest, err)
		case errors.Is(err, assistant.ErrStaleGeneration):
			return nil, httpjson.NewError(http.StatusConflict, err)
		case errors.Is(err, llm.ErrMissingAPIKey):
			return nil, httpjson.NewError(http.StatusServiceUnavailable, err)
		default:
			return nil, httpjson.NewError(http.StatusBadGateway, err)
		}
	}

	return &Response{
		Recipe: recipe,
		Meta:   recipe.DisplayMeta(),
	}, nil
}
