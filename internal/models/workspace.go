package models

import "time"

// Workspace mirrors what the user currently sees: inputs, last outputs and settings.
type Workspace struct {
	ResumeText     string           `json:"resume_text"`
	JobDescription string           `json:"job_description"`
	TextToRephrase string           `json:"text_to_rephrase"`
	Analysis       string           `json:"analysis"`
	RephrasedText  string           `json:"rephrased_text"`
	Settings       GenerationParams `json:"settings"`
	UpdatedAt      time.Time        `json:"updated_at"`
}

type Action string

const (
	ActionExtract  Action = "extract"
	ActionAnalyze  Action = "analyze"
	ActionRephrase Action = "rephrase"
)

type EventStatus string

const (
	EventProcessing EventStatus = "processing"
	EventCompleted  EventStatus = "completed"
	EventFailed     EventStatus = "failed"
)

type WorkspaceEvent struct {
	ID        string      `json:"id"`
	Action    Action      `json:"action"`
	Status    EventStatus `json:"status"`
	Message   string      `json:"message"`
	Timestamp time.Time   `json:"timestamp"`
}
