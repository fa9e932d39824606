// Copyright (c) SmartRecipe (dev@smartrecipe.app)
// SPDX-License-Identifier: MIT

// Package recipeparse turns free-form model output into a structured recipe.
// Parsing is total: a reply that cannot be understood produces a deterministic
// fallback recipe instead of an error.
package recipeparse

import (
	"encoding/json"
	"strings"

	"github.com/smartrecipe/assistant/internal/recipedb"
)

// Strategy selects the fallback behavior when a reply is not valid recipe
// JSON. The two strategies come from different revisions of the product and
// are never merged; exactly one runs per parse.
type Strategy string

const (
	// StrategyPlaceholder substitutes a fixed placeholder recipe that tells
	// the user the reply could not be parsed.
	StrategyPlaceholder Strategy = "placeholder"

	// StrategyLineSplit is the legacy heuristic: the first non-blank line
	// becomes the title, the first half of the remaining lines the
	// ingredients, and the second half the instructions.
	StrategyLineSplit Strategy = "lineSplit"
)

// New returns a Parser using the given fallback strategy. Unknown strategies
// fall back to StrategyPlaceholder.
func New(strategy Strategy) *Parser {
	if strategy != StrategyLineSplit {
		strategy = StrategyPlaceholder
	}
	return &Parser{strategy: strategy}
}

// Parser parses completion replies into recipes.
type Parser struct {
	strategy Strategy
}

// rawRecipe detects field presence so a reply missing required fields or
// carrying wrong types takes the fallback path instead of leaking malformed
// data.
type rawRecipe struct {
	Title        *string   `json:"title"`
	Ingredients  *[]string `json:"ingredients"`
	Instructions *[]string `json:"instructions"`
	PrepTime     string    `json:"prepTime"`
	CookTime     string    `json:"cookTime"`
	Servings     string    `json:"servings"`
}

// Parse converts a raw completion reply into a recipe. ingredientInput is the
// user's original ingredient text, referenced by the placeholder fallback.
// Parse never fails.
func (p *Parser) Parse(raw string, ingredientInput string) recipedb.Recipe {
	if recipe, ok := parseStrict(raw); ok {
		return recipe
	}
	if p.strategy == StrategyLineSplit {
		return lineSplitFallback(raw)
	}
	return placeholderFallback(ingredientInput)
}

func parseStrict(raw string) (recipedb.Recipe, bool) {
	var parsed rawRecipe
	if err := json.Unmarshal([]byte(stripFences(raw)), &parsed); err != nil {
		return recipedb.Recipe{}, false
	}
	if parsed.Title == nil || parsed.Ingredients == nil || parsed.Instructions == nil {
		return recipedb.Recipe{}, false
	}
	recipe := recipedb.Recipe{
		Title:        *parsed.Title,
		Ingredients:  *parsed.Ingredients,
		Instructions: *parsed.Instructions,
		PrepTime:     parsed.PrepTime,
		CookTime:     parsed.CookTime,
		Servings:     parsed.Servings,
	}
	recipe.Normalize()
	return recipe, true
}

// stripFences removes a surrounding markdown code fence, which some models
// wrap around JSON replies despite instructions.
func stripFences(raw string) string {
	s := strings.TrimSpace(raw)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}

func placeholderFallback(ingredientInput string) recipedb.Recipe {
	return recipedb.Recipe{
		Title:        "Generated Recipe",
		Ingredients:  []string{"Using: " + ingredientInput},
		Instructions: []string{"Unable to parse recipe. Please try again."},
		PrepTime:     "N/A",
		CookTime:     "N/A",
		Servings:     "N/A",
	}
}

func lineSplitFallback(raw string) recipedb.Recipe {
	var lines []string
	for _, line := range strings.Split(raw, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			lines = append(lines, trimmed)
		}
	}

	recipe := recipedb.Recipe{
		Title:    "AI Generated Recipe",
		PrepTime: "15 minutes",
		CookTime: "25 minutes",
		Servings: "4",
	}
	if len(lines) > 0 {
		recipe.Title = lines[0]
	}
	half := len(lines) / 2
	if half > 1 {
		recipe.Ingredients = lines[1:half]
	}
	if half > 0 {
		recipe.Instructions = lines[half:]
	}
	recipe.Normalize()
	return recipe
}
