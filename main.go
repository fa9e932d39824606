// Copyright (c) SmartRecipe (dev@smartrecipe.app)
// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"strings"

	firebase "firebase.google.com/go/v4"
	"github.com/curioswitch/go-curiostack/server"
	"github.com/curioswitch/go-usegcp/middleware/firebaseauth"
	"github.com/go-chi/chi/v5/middleware"
	"golang.org/x/sync/errgroup"

	"github.com/smartrecipe/assistant/internal/assistant"
	"github.com/smartrecipe/assistant/internal/config"
	"github.com/smartrecipe/assistant/internal/handler/deleterecipe"
	"github.com/smartrecipe/assistant/internal/handler/generaterecipe"
	"github.com/smartrecipe/assistant/internal/handler/listrecipes"
	"github.com/smartrecipe/assistant/internal/handler/saverecipe"
	"github.com/smartrecipe/assistant/internal/handler/sendchat"
	"github.com/smartrecipe/assistant/internal/httpjson"
	"github.com/smartrecipe/assistant/internal/llm"
	"github.com/smartrecipe/assistant/internal/recipedb"
	"github.com/smartrecipe/assistant/internal/recipeparse"
)

//go:embed conf/*.yaml
var confFiles embed.FS

func main() {
	conf, _ := fs.Sub(confFiles, "conf")
	os.Exit(server.Main(&config.Config{}, conf, setupServer))
}

func setupServer(ctx context.Context, conf *config.Config, s *server.Server) error {
	mux := server.Mux(s)

	fbApp, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: conf.Google.Project})
	if err != nil {
		return fmt.Errorf("main: create firebase app: %w", err)
	}

	fbAuth, err := fbApp.Auth(ctx)
	if err != nil {
		return fmt.Errorf("main: create firebase auth client: %w", err)
	}

	firestore, err := fbApp.Firestore(ctx)
	if err != nil {
		return fmt.Errorf("main: create firestore client: %w", err)
	}
	defer func() {
		if err := firestore.Close(); err != nil {
			slog.ErrorContext(ctx, "main: close firestore client", "error", err)
		}
	}()

	client, err := newCompletionClient(ctx, conf)
	if err != nil {
		return err
	}

	parser := recipeparse.New(recipeparse.Strategy(conf.Recipe.FallbackStrategy))
	sessions := assistant.NewManager(client, parser)
	store := recipedb.NewFirestoreStore(firestore)

	fbMW := firebaseauth.NewMiddleware(fbAuth)
	mux.Use(middleware.Maybe(fbMW, func(r *http.Request) bool {
		return !strings.HasPrefix(r.URL.Path, "/internal/")
	}))

	httpjson.Handle(mux, "/api/generate-recipe", generaterecipe.NewHandler(sessions).GenerateRecipe)
	httpjson.Handle(mux, "/api/send-chat", sendchat.NewHandler(sessions).SendChat)
	httpjson.Handle(mux, "/api/list-recipes", listrecipes.NewHandler(store).ListRecipes)
	httpjson.Handle(mux, "/api/save-recipe", saverecipe.NewHandler(store).SaveRecipe)
	httpjson.Handle(mux, "/api/delete-recipe", deleterecipe.NewHandler(store).DeleteRecipe)

	mux.Get("/internal/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	grp, gctx := errgroup.WithContext(ctx)
	grp.Go(func() error {
		return sessions.RunJanitor(gctx)
	})
	grp.Go(func() error {
		return server.Start(gctx, s)
	})
	if err := grp.Wait(); err != nil {
		return fmt.Errorf("main: starting server: %w", err)
	}
	return nil
}

func newCompletionClient(ctx context.Context, conf *config.Config) (llm.Client, error) {
	switch conf.LLM.Provider {
	case "gemini":
		client, err := llm.NewGemini(ctx, llm.GeminiConfig{
			APIKey:      conf.LLM.Gemini.APIKey,
			Model:       conf.LLM.Gemini.Model,
			Temperature: conf.LLM.Temperature,
			MaxTokens:   conf.LLM.MaxTokens,
		})
		if err != nil {
			return nil, fmt.Errorf("main: create gemini client: %w", err)
		}
		return client, nil
	case "", "openai":
		return llm.NewOpenAI(llm.OpenAIConfig{
			APIKey:      conf.LLM.OpenAI.APIKey,
			Model:       conf.LLM.OpenAI.Model,
			Temperature: conf.LLM.Temperature,
			MaxTokens:   conf.LLM.MaxTokens,
		}), nil
	default:
		return nil, fmt.Errorf("main: unknown llm provider %q", conf.LLM.Provider)
	}
}
