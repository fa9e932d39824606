// Copyright (c) SmartRecipe (dev@smartrecipe.app)
// SPDX-License-Identifier: MIT

package saverecipe

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/curioswitch/go-usegcp/middleware/firebaseauth"

	"github.com/smartrecipe/assistant/internal/httpjson"
	"github.com/smartrecipe/assistant/internal/recipedb"
)

// Request is a save request. Saving the same recipe twice creates two
// distinct records.
type Request struct {
	Recipe            recipedb.Recipe `json:"recipe"`
	DietaryPreference string          `json:"dietaryPreference"`
	CuisineStyle      string          `json:"cuisineStyle"`
}

// Response carries the stored record.
type Response struct {
	Recipe recipedb.StoredRecipe `json:"recipe"`
}

// NewHandler returns a Handler.
func NewHandler(store recipedb.Store) *Handler {
	return &Handler{
		store: store,
	}
}

// Handler saves recipes.
type Handler struct {
	store recipedb.Store
}

func (h *Handler) SaveRecipe(ctx context.Context, req *Request) (*Response, error) {
	if req.Recipe.Title == "" {
		return nil, httpjson.NewError(http.StatusBadRequest, errors.New("saverecipe: recipe title must not be empty"))
	}

	userID := firebaseauth.TokenFromContext(ctx).UID

	stored, err := h.store.Save(ctx, userID, req.Recipe, req.DietaryPreference, req.CuisineStyle)
	if err != nil {
		return nil, fmt.Errorf("saverecipe: saving recipe: %w", err)
	}
	return &Response{Recipe: stored}, nil
}
