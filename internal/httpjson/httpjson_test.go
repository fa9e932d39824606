// Copyright (c) SmartRecipe (dev@smartrecipe.app)
// SPDX-License-Identifier: MIT

package httpjson

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
)

type echoRequest struct {
	Name string `json:"name"`
}

type echoResponse struct {
	Greeting string `json:"greeting"`
}

func TestHandleDecodesAndEncodes(t *testing.T) {
	mux := chi.NewMux()
	Handle(mux, "/api/echo", func(_ context.Context, req *echoRequest) (*echoResponse, error) {
		return &echoResponse{Greeting: "hello " + req.Name}, nil
	})

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/echo", strings.NewReader(`{"name":"alice"}`)))

	if rec.Code != http.StatusOK {
		t.Fatalf("got status %d, want 200", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("got content type %q", ct)
	}
	var res echoResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if res.Greeting != "hello alice" {
		t.Errorf("got greeting %q", res.Greeting)
	}
}

func TestHandleEmptyBody(t *testing.T) {
	mux := chi.NewMux()
	Handle(mux, "/api/echo", func(_ context.Context, req *echoRequest) (*echoResponse, error) {
		return &echoResponse{Greeting: "hello " + req.Name}, nil
	})

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/echo", nil))

	if rec.Code != http.StatusOK {
		t.Errorf("got status %d, want 200 for empty body", rec.Code)
	}
}

func TestHandleMalformedBody(t *testing.T) {
	mux := chi.NewMux()
	Handle(mux, "/api/echo", func(_ context.Context, _ *echoRequest) (*echoResponse, error) {
		t.Error("handler called despite malformed body")
		return nil, nil
	})

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/echo", strings.NewReader("{not json")))

	if rec.Code != http.StatusBadRequest {
		t.Errorf("got status %d, want 400", rec.Code)
	}
}

func TestHandleStatusFromError(t *testing.T) {
	mux := chi.NewMux()
	Handle(mux, "/api/echo", func(_ context.Context, _ *echoRequest) (*echoResponse, error) {
		return nil, NewError(http.StatusNotFound, errors.New("no such recipe"))
	})

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/echo", strings.NewReader(`{}`)))

	if rec.Code != http.StatusNotFound {
		t.Fatalf("got status %d, want 404", rec.Code)
	}
	var body struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode error body: %v", err)
	}
	if body.Error != "no such recipe" {
		t.Errorf("got error %q, want the unwrapped message", body.Error)
	}
}

func TestHandlePlainErrorIsInternal(t *testing.T) {
	mux := chi.NewMux()
	Handle(mux, "/api/echo", func(_ context.Context, _ *echoRequest) (*echoResponse, error) {
		return nil, errors.New("boom")
	})

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/echo", strings.NewReader(`{}`)))

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("got status %d, want 500", rec.Code)
	}
}

func TestHandleRejectsGet(t *testing.T) {
	mux := chi.NewMux()
	Handle(mux, "/api/echo", func(_ context.Context, _ *echoRequest) (*echoResponse, error) {
		return &echoResponse{}, nil
	})

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/echo", nil))

	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("got status %d, want 405", rec.Code)
	}
}
