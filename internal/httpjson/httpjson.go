// Copyright (c) SmartRecipe (dev@smartrecipe.app)
// SPDX-License-Identifier: MIT

// Package httpjson adapts ctx/request/response handlers to HTTP. Operations
// are RPC-style POST routes with JSON bodies.
package httpjson

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Error pairs a handler error with the HTTP status to report it with.
type Error struct {
	Status int
	Err    error
}

// NewError wraps err with an HTTP status so the transport layer knows how to
// report it.
func NewError(status int, err error) *Error {
	return &Error{Status: status, Err: err}
}

func (e *Error) Error() string {
	return fmt.Sprintf("status %d: %v", e.Status, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

type errorBody struct {
	Error string `json:"error"`
}

// Handle registers fn as a POST route on mux. The request body is decoded as
// JSON into Req; an empty body yields the zero request.
func Handle[Req any, Res any](mux *chi.Mux, pattern string, fn func(ctx context.Context, req *Req) (*Res, error)) {
	mux.Post(pattern, func(w http.ResponseWriter, r *http.Request) {
		var req Req
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
			writeError(w, http.StatusBadRequest, fmt.Errorf("httpjson: decoding request: %w", err))
			return
		}

		res, err := fn(r.Context(), &req)
		if err != nil {
			status := http.StatusInternalServerError
			var herr *Error
			if errors.As(err, &herr) {
				status = herr.Status
				err = herr.Err
			}
			slog.ErrorContext(r.Context(), "httpjson: handler error", "path", r.URL.Path, "error", err)
			writeError(w, status, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(res); err != nil {
			slog.ErrorContext(r.Context(), "httpjson: encoding response", "path", r.URL.Path, "error", err)
		}
	})
}

func writeError(w http.ResponseWriter, status int, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(errorBody{Error: err.Error()})
}
