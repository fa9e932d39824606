// Copyright (c) SmartRecipe (dev@smartrecipe.app)
// SPDX-License-Identifier: MIT

package recipedb

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Compile-time interface check.
var _ Store = (*MemoryStore)(nil)

// NewMemoryStore returns an empty in-memory Store. It is used for local
// development and tests. Safe for concurrent access.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		recipes: make(map[string][]StoredRecipe),
	}
}

// MemoryStore keeps stored recipes per owner in insertion order.
type MemoryStore struct {
	mu      sync.RWMutex
	recipes map[string][]StoredRecipe
}

func (s *MemoryStore) List(_ context.Context, ownerID string) ([]StoredRecipe, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	owned := s.recipes[ownerID]
	recipes := make([]StoredRecipe, 0, len(owned))
	for i := len(owned) - 1; i >= 0; i-- {
		recipes = append(recipes, owned[i])
	}
	return recipes, nil
}

func (s *MemoryStore) Save(_ context.Context, ownerID string, recipe Recipe, dietary string, cuisine string) (StoredRecipe, error) {
	recipe.Normalize()

	stored := StoredRecipe{
		ID:                uuid.New().String(),
		OwnerID:           ownerID,
		CreatedAt:         time.Now(),
		DietaryPreference: dietary,
		CuisineStyle:      cuisine,
		Recipe:            recipe,
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.recipes[ownerID] = append(s.recipes[ownerID], stored)
	return stored, nil
}

func (s *MemoryStore) Delete(_ context.Context, ownerID string, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	owned := s.recipes[ownerID]
	for i, r := range owned {
		if r.ID == id {
			s.recipes[ownerID] = append(owned[:i:i], owned[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}
