// Copyright (c) SmartRecipe (dev@smartrecipe.app)
// SPDX-License-Identifier: MIT

package listrecipes

import (
	"context"
	"fmt"

	"github.com/curioswitch/go-usegcp/middleware/firebaseauth"

	"github.com/smartrecipe/assistant/internal/recipedb"
)

// Request is an empty list request; the owner comes from the auth token.
type Request struct{}

// Response carries the owner's stored recipes, newest first.
type Response struct {
	Recipes []recipedb.StoredRecipe `json:"recipes"`
}

// NewHandler returns a Handler.
func NewHandler(store recipedb.Store) *Handler {
	return &Handler{
		store: store,
	}
}

// Handler lists saved recipes.
type Handler struct {
	store recipedb.Store
}

func (h *Handler) ListRecipes(ctx context.Context, _ *Request) (*Response, error) {
	userID := firebaseauth.TokenFromContext(ctx).UID

	recipes, err := h.store.List(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("listrecipes: listing recipes: %w", err)
	}
	if recipes == nil {
		recipes = []recipedb.StoredRecipe{}
	}
	return &Response{Recipes: recipes}, nil
}
