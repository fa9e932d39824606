// Copyright (c) SmartRecipe (dev@smartrecipe.app)
// SPDX-License-Identifier: MIT

package recipedb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
)

// Compile-time interface check.
var _ Store = (*FirestoreStore)(nil)

// NewFirestoreStore returns a Store backed by Firestore. Recipes live in a
// per-user subcollection, users/{ownerID}/recipes.
func NewFirestoreStore(client *firestore.Client) *FirestoreStore {
	return &FirestoreStore{
		client: client,
	}
}

// FirestoreStore stores recipes in Firestore. Consistency guarantees are
// delegated entirely to the backend.
type FirestoreStore struct {
	client *firestore.Client
}

func (s *FirestoreStore) recipes(ownerID string) *firestore.CollectionRef {
	return s.client.Collection("users").Doc(ownerID).Collection("recipes")
}

func (s *FirestoreStore) List(ctx context.Context, ownerID string) ([]StoredRecipe, error) {
	iter := s.recipes(ownerID).Query.OrderBy("createdAt", firestore.Desc).Documents(ctx)
	defer iter.Stop()

	var recipes []StoredRecipe
	for {
		doc, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("recipedb: fetching recipes: %w", err)
		}

		var recipe StoredRecipe
		if err := doc.DataTo(&recipe); err != nil {
			return nil, fmt.Errorf("recipedb: decoding recipe: %w", err)
		}
		recipes = append(recipes, recipe)
	}
	return recipes, nil
}

func (s *FirestoreStore) Save(ctx context.Context, ownerID string, recipe Recipe, dietary string, cuisine string) (StoredRecipe, error) {
	recipe.Normalize()

	doc := s.recipes(ownerID).NewDoc()
	stored := StoredRecipe{
		ID:                doc.ID,
		OwnerID:           ownerID,
		CreatedAt:         time.Now(),
		DietaryPreference: dietary,
		CuisineStyle:      cuisine,
		Recipe:            recipe,
	}
	if _, err := doc.Create(ctx, stored); err != nil {
		return StoredRecipe{}, fmt.Errorf("recipedb: creating recipe: %w", err)
	}
	return stored, nil
}

func (s *FirestoreStore) Delete(ctx context.Context, ownerID string, id string) error {
	doc, err := s.recipes(ownerID).Where("id", "==", id).Limit(1).Documents(ctx).Next()
	if errors.Is(err, iterator.Done) {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("recipedb: looking up recipe: %w", err)
	}
	if _, err := doc.Ref.Delete(ctx); err != nil {
		return fmt.Errorf("recipedb: deleting recipe: %w", err)
	}
	return nil
}
