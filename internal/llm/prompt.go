// Copyright (c) SmartRecipe (dev@smartrecipe.app)
// SPDX-License-Identifier: MIT

package llm

import (
	"fmt"
	"strings"
)

// System instructions live here so wording changes are a single-file edit.
// The recipe instruction fixes the exact JSON field names the parser and the
// persistence layer depend on; do not reword the structure clause.

const recipeSystemPrompt = `You are a helpful cooking assistant. When generating recipes, always format your response as a JSON object with the following structure: {"title": "Recipe Name", "ingredients": ["ingredient 1", "ingredient 2", ...], "instructions": ["step 1", "step 2", ...], "prepTime": "X minutes", "cookTime": "X minutes", "servings": "X"}. Respond with the JSON object and nothing else.`

const chatSystemPrompt = `You are a helpful cooking assistant. Provide helpful cooking advice as plain text.`

// SystemInstruction returns the system instruction for a completion mode.
func SystemInstruction(mode Mode) string {
	if mode == ModeRecipe {
		return recipeSystemPrompt
	}
	return chatSystemPrompt
}

// RecipePrompt builds the user prompt for recipe generation. The dietary and
// cuisine clauses are included only when set.
func RecipePrompt(ingredients string, dietary string, cuisine string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Create a recipe using these ingredients: %s. ", ingredients)
	if dietary != "" {
		fmt.Fprintf(&b, "Dietary preference: %s. ", dietary)
	}
	if cuisine != "" {
		fmt.Fprintf(&b, "Cuisine style: %s. ", cuisine)
	}
	b.WriteString("Please provide a complete recipe with ingredients list and step-by-step instructions.")
	return b.String()
}

// ChatPrompt builds the user prompt for a cooking question. When the user is
// working with a recipe, its title is passed as context; the context clause
// is omitted otherwise.
func ChatPrompt(question string, recipeTitle string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Answer this cooking question: %s. ", question)
	if recipeTitle != "" {
		fmt.Fprintf(&b, "Context: User is working with this recipe: %s. ", recipeTitle)
	}
	b.WriteString("Provide helpful, practical cooking advice.")
	return b.String()
}
