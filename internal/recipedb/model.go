// Copyright (c) SmartRecipe (dev@smartrecipe.app)
// SPDX-License-Identifier: MIT

package recipedb

import "time"

// Recipe is the structured output of a recipe generation.
type Recipe struct {
	// Title is the title of the recipe.
	Title string `firestore:"title" json:"title"`

	// Ingredients are the ingredients of the recipe, in order.
	Ingredients []string `firestore:"ingredients" json:"ingredients"`

	// Instructions are the preparation steps of the recipe, in order.
	Instructions []string `firestore:"instructions" json:"instructions"`

	// PrepTime is the preparation time as free-form text, "N/A" when unknown.
	PrepTime string `firestore:"prepTime" json:"prepTime"`

	// CookTime is the cooking time as free-form text, "N/A" when unknown.
	CookTime string `firestore:"cookTime" json:"cookTime"`

	// Servings is the number of servings as free-form text, "N/A" when unknown.
	Servings string `firestore:"servings" json:"servings"`
}

// Normalize replaces nil ingredient and instruction slices with empty ones.
// An empty sequence is valid and renders as empty; nil never escapes this
// package's producers.
func (r *Recipe) Normalize() {
	if r.Ingredients == nil {
		r.Ingredients = []string{}
	}
	if r.Instructions == nil {
		r.Instructions = []string{}
	}
}

// MetaField is a single displayable timing or serving attribute.
type MetaField struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// DisplayMeta returns the timing and serving fields that should be shown to
// the user. Fields equal to "N/A" or empty are omitted.
func (r Recipe) DisplayMeta() []MetaField {
	fields := []MetaField{
		{Label: "Prep", Value: r.PrepTime},
		{Label: "Cook", Value: r.CookTime},
		{Label: "Serves", Value: r.Servings},
	}
	meta := make([]MetaField, 0, len(fields))
	for _, f := range fields {
		if f.Value == "" || f.Value == "N/A" {
			continue
		}
		meta = append(meta, f)
	}
	return meta
}

type ChatRole string

const (
	// ChatRoleUser represents a user message.
	ChatRoleUser ChatRole = "user"
	// ChatRoleAssistant represents an assistant message.
	ChatRoleAssistant ChatRole = "assistant"
)

// ChatMessage represents a message in a chat transcript.
type ChatMessage struct {
	// Role is the role of the message sender.
	Role ChatRole `firestore:"role" json:"role"`

	// Content is the text content of the message.
	Content string `firestore:"content" json:"content"`
}

// StoredRecipe is a recipe saved by a user. Stored recipes are immutable
// once created; there is no update operation.
type StoredRecipe struct {
	// ID is the unique identifier of the stored recipe.
	ID string `firestore:"id" json:"id"`

	// OwnerID is the ID of the user who saved the recipe.
	OwnerID string `firestore:"ownerId" json:"ownerId"`

	// CreatedAt is the time the recipe was saved.
	CreatedAt time.Time `firestore:"createdAt" json:"createdAt"`

	// DietaryPreference is the dietary preference used for generation.
	DietaryPreference string `firestore:"dietaryPreference" json:"dietaryPreference"`

	// CuisineStyle is the cuisine style used for generation.
	CuisineStyle string `firestore:"cuisineStyle" json:"cuisineStyle"`

	// Recipe is the recipe content.
	Recipe Recipe `firestore:"recipe" json:"recipe"`
}
