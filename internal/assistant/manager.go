// Copyright (c) SmartRecipe (dev@smartrecipe.app)
// SPDX-License-Identifier: MIT

package assistant

import (
	"context"
	"sync"
	"time"

	"github.com/smartrecipe/assistant/internal/llm"
	"github.com/smartrecipe/assistant/internal/recipeparse"
)

const (
	sweepInterval = 10 * time.Minute
	maxIdle       = time.Hour
)

// NewManager returns a Manager that creates controllers on demand.
func NewManager(client llm.Client, parser *recipeparse.Parser) *Manager {
	return &Manager{
		client:   client,
		parser:   parser,
		sessions: make(map[string]*Controller),
	}
}

// Manager holds one Controller per user. Controllers are in-memory only;
// an idle session is dropped by the janitor and recreated empty on the next
// request.
type Manager struct {
	client llm.Client
	parser *recipeparse.Parser

	mu       sync.Mutex
	sessions map[string]*Controller
}

// ForUser returns the user's controller, creating it if needed.
func (m *Manager) ForUser(userID string) *Controller {
	m.mu.Lock()
	defer m.mu.Unlock()
	if c, ok := m.sessions[userID]; ok {
		return c
	}
	c := NewController(m.client, m.parser)
	m.sessions[userID] = c
	return c
}

// SweepIdle drops controllers that have been inactive longer than idle and
// returns how many were dropped.
func (m *Manager) SweepIdle(idle time.Duration) int {
	cutoff := time.Now().Add(-idle)

	m.mu.Lock()
	defer m.mu.Unlock()
	dropped := 0
	for id, c := range m.sessions {
		if c.LastActive().Before(cutoff) {
			delete(m.sessions, id)
			dropped++
		}
	}
	return dropped
}

// RunJanitor sweeps idle sessions until ctx is done.
func (m *Manager) RunJanitor(ctx context.Context) error {
	ticker := time.NewTicker(sweepInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			m.SweepIdle(maxIdle)
		}
	}
}
