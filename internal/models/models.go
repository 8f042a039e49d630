package models

import (
	"time"

	"github.com/google/uuid"
)

// Version is the release reported by the API and the CLI
const Version = "0.1.0"

// GenerationOutcome represents how a generation ended
type GenerationOutcome string

const (
	GenerationOutcomeSucceeded GenerationOutcome = "succeeded"
	GenerationOutcomeFailed    GenerationOutcome = "failed"
)

// Language is the only output language the generator produces
const Language = "javascript"

// GenerateAgentRequest is the request body for generating agent code
type GenerateAgentRequest struct {
	TaskDescription string `json:"task_description" example:"An agent that translates English text to French"`
}

// GenerateAgentResponse is the response for a successful generation
type GenerateAgentResponse struct {
	GenerationID uuid.UUID `json:"generation_id"`
	Code         string    `json:"code"`
	Language     string    `json:"language" example:"javascript"`
	Model        string    `json:"model" example:"gemini-2.5-flash"`
	LatencyMs    int64     `json:"latency_ms"`
}

// GenerationEvent is emitted once per generation attempt.
// It is published for observers only and never stored by this service.
type GenerationEvent struct {
	ID        uuid.UUID         `json:"id"`
	Outcome   GenerationOutcome `json:"outcome"`
	ErrorKind string            `json:"error_kind,omitempty"`
	Model     string            `json:"model"`
	LatencyMs int64             `json:"latency_ms"`
	TaskChars int               `json:"task_chars"`
	CodeChars int               `json:"code_chars,omitempty"`
	Timestamp time.Time         `json:"timestamp"`
}

// Subject returns the event bus subject for the event
func (e GenerationEvent) Subject() string {
	return "agentgen.generation." + string(e.Outcome)
}
