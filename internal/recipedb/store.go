// Copyright (c) SmartRecipe (dev@smartrecipe.app)
// SPDX-License-Identifier: MIT

package recipedb

import (
	"context"
	"errors"
)

// ErrNotFound is returned when a stored recipe does not exist for the owner.
var ErrNotFound = errors.New("recipedb: recipe not found")

// Store persists recipes scoped to an owner identity.
type Store interface {
	// List returns the owner's stored recipes ordered newest-first.
	List(ctx context.Context, ownerID string) ([]StoredRecipe, error)

	// Save stores a recipe for the owner and returns the stored record.
	// Saving the same recipe twice creates two distinct records.
	Save(ctx context.Context, ownerID string, recipe Recipe, dietary string, cuisine string) (StoredRecipe, error)

	// Delete removes a stored recipe. The recipe is deleted only if it
	// belongs to the owner; ErrNotFound otherwise.
	Delete(ctx context.Context, ownerID string, id string) error
}
