package model

import "clientbook/internal/jsonpatch"

type Response struct {
	Metadata Metadata `json:"metadata"`
	Result   Result   `json:"result"`
}

type Metadata struct {
	RunID       string `json:"run_id"`
	StartedAt   string `json:"started_at"`
	CompletedAt string `json:"completed_at"`
	DurationMs  int64  `json:"duration_ms"`
	Outcome     string `json:"outcome"`
}

type Result struct {
	Messages    []Message             `json:"messages"`
	Commands    []ProcessedCommand    `json:"commands"`
	Patch       []jsonpatch.Operation `json:"patch"`
	ClientCount int                   `json:"client_count"`
}

// ProcessedCommand points at the messages one input line produced.
type ProcessedCommand struct {
	Input          string `json:"input"`
	Command        string `json:"command,omitempty"`
	MessageIndexes []int  `json:"message_indexes,omitempty"`
}

type ErrorResponse struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}

const (
	OutcomeSuccess = "SUCCESS"
	OutcomeFailure = "FAILURE"
)
