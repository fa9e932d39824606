// Copyright (c) SmartRecipe (dev@smartrecipe.app)
// SPDX-License-Identifier: MIT

package deleterecipe

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/curioswitch/go-usegcp/middleware/firebaseauth"

	"github.com/smartrecipe/assistant/internal/httpjson"
	"github.com/smartrecipe/assistant/internal/recipedb"
)

// Request identifies the stored recipe to delete. The UI confirms with the
// user before calling this.
type Request struct {
	RecipeID string `json:"recipeId"`
}

// Response is empty on success.
type Response struct{}

// NewHandler returns a Handler.
func NewHandler(store recipedb.Store) *Handler {
	return &Handler{
		store: store,
	}
}

// Handler deletes saved recipes.
type Handler struct {
	store recipedb.Store
}

func (h *Handler) DeleteRecipe(ctx context.Context, req *Request) (*Response, error) {
	if req.RecipeID == "" {
		return nil, httpjson.NewError(http.StatusBadRequest, errors.New("deleterecipe: recipeId must not be empty"))
	}

	userID := firebaseauth.TokenFromContext(ctx).UID

	if err := h.store.Delete(ctx, userID, req.RecipeID); err != nil {
		if errors.Is(err, recipedb.ErrNotFound) {
			return nil, httpjson.NewError(http.StatusNotFound, err)
		}
		return nil, fmt.Errorf("deleterecipe: deleting recipe: %w", err)
	}
	return &Response{}, nil
}
