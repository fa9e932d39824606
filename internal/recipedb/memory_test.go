// Copyright (c) SmartRecipe (dev@smartrecipe.app)
// SPDX-License-Identifier: MIT

package recipedb

import (
	"context"
	"errors"
	"testing"
)

func testRecipe(title string) Recipe {
	return Recipe{
		Title:        title,
		Ingredients:  []string{"rice"},
		Instructions: []string{"cook"},
		PrepTime:     "5 minutes",
		CookTime:     "10 minutes",
		Servings:     "2",
	}
}

func TestMemoryStoreSaveAssignsDistinctIDs(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	first, err := s.Save(ctx, "alice", testRecipe("Fried Rice"), "", "")
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	second, err := s.Save(ctx, "alice", testRecipe("Fried Rice"), "", "")
	if err != nil {
		t.Fatalf("save: %v", err)
	}

	if first.ID == "" || second.ID == "" {
		t.Fatal("saved recipe has empty ID")
	}
	if first.ID == second.ID {
		t.Errorf("identical saves share ID %q", first.ID)
	}

	recipes, err := s.List(ctx, "alice")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(recipes) != 2 {
		t.Errorf("got %d recipes, want 2", len(recipes))
	}
}

func TestMemoryStoreListNewestFirst(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	for _, title := range []string{"first", "second", "third"} {
		if _, err := s.Save(ctx, "alice", testRecipe(title), "", ""); err != nil {
			t.Fatalf("save: %v", err)
		}
	}

	recipes, err := s.List(ctx, "alice")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	want := []string{"third", "second", "first"}
	for i, title := range want {
		if recipes[i].Recipe.Title != title {
			t.Errorf("recipe %d: got title %q, want %q", i, recipes[i].Recipe.Title, title)
		}
	}
}

func TestMemoryStoreListEmptyOwner(t *testing.T) {
	s := NewMemoryStore()

	recipes, err := s.List(context.Background(), "nobody")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if recipes == nil {
		t.Error("got nil slice, want empty")
	}
	if len(recipes) != 0 {
		t.Errorf("got %d recipes, want 0", len(recipes))
	}
}

func TestMemoryStoreSaveScopedToOwner(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	if _, err := s.Save(ctx, "alice", testRecipe("Curry"), "vegan", "indian"); err != nil {
		t.Fatalf("save: %v", err)
	}

	recipes, err := s.List(ctx, "bob")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(recipes) != 0 {
		t.Errorf("bob sees %d of alice's recipes", len(recipes))
	}
}

func TestMemoryStoreSaveKeepsGenerationInputs(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	stored, err := s.Save(ctx, "alice", testRecipe("Curry"), "vegan", "indian")
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if stored.DietaryPreference != "vegan" || stored.CuisineStyle != "indian" {
		t.Errorf("generation inputs not stored: %+v", stored)
	}
	if stored.OwnerID != "alice" {
		t.Errorf("got owner %q, want alice", stored.OwnerID)
	}
	if stored.CreatedAt.IsZero() {
		t.Error("created time not set")
	}
}

func TestMemoryStoreSaveNormalizesNilSlices(t *testing.T) {
	stored, err := NewMemoryStore().Save(context.Background(), "alice", Recipe{Title: "Bare"}, "", "")
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if stored.Recipe.Ingredients == nil || stored.Recipe.Instructions == nil {
		t.Errorf("nil slices not normalized: %+v", stored.Recipe)
	}
}

func TestMemoryStoreDelete(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	stored, err := s.Save(ctx, "alice", testRecipe("Curry"), "", "")
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if _, err := s.Save(ctx, "alice", testRecipe("Soup"), "", ""); err != nil {
		t.Fatalf("save: %v", err)
	}

	if err := s.Delete(ctx, "alice", stored.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}

	recipes, err := s.List(ctx, "alice")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(recipes) != 1 || recipes[0].Recipe.Title != "Soup" {
		t.Errorf("got %+v, want only Soup", recipes)
	}

	if err := s.Delete(ctx, "alice", stored.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("second delete: got %v, want ErrNotFound", err)
	}
}

func TestMemoryStoreDeleteOtherOwnersRecipe(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	stored, err := s.Save(ctx, "alice", testRecipe("Curry"), "", "")
	if err != nil {
		t.Fatalf("save: %v", err)
	}

	if err := s.Delete(ctx, "bob", stored.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("got %v, want ErrNotFound", err)
	}

	recipes, err := s.List(ctx, "alice")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(recipes) != 1 {
		t.Errorf("alice's recipe was removed by bob's delete")
	}
}
