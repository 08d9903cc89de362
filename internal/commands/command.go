// Package commands turns validated user intent into model operations.
// Parsing lives in package parser; a command only sees primitives that
// already passed format checks.
package commands

import (
	"clientbook/internal/apperr"
	"clientbook/internal/index"
	"clientbook/internal/model"
)

// Model is the state a command reads and mutates.
type Model interface {
	FilteredClients() []*model.Client
	UpdateFilter(model.Predicate)
	HasClient(*model.Client) bool
	AddClient(*model.Client) error
	DeleteClient(*model.Client)
}

// Result is the feedback shown to the user after a successful command.
type Result struct {
	Feedback string
}

// Command is executed against a Model. A failing command leaves the model as it found it.
type Command interface {
	Execute(m Model) (Result, error)
	Word() string
}

const (
	CodeInvalidClientIndex             = "INVALID_CLIENT_INDEX"
	MessageInvalidClientDisplayedIndex = "The client index provided is invalid"
)

var ErrInvalidClientIndex = apperr.Sentinel(CodeInvalidClientIndex)

// clientAt resolves a 1-based display index against the filtered list.
func clientAt(m Model, idx index.Index) (*model.Client, error) {
	clients := m.FilteredClients()
	if idx.ZeroBased() >= len(clients) {
		return nil, apperr.NewState(CodeInvalidClientIndex, MessageInvalidClientDisplayedIndex)
	}
	return clients[idx.ZeroBased()], nil
}
