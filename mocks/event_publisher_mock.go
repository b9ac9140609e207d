package mocks

import (
	"context"
	"sync"

	"alfredoptarigan/ats-resume-analyzer/internal/models"
)

// RecordingPublisher keeps every event it is given.
type RecordingPublisher struct {
	mu     sync.Mutex
	Err    error
	events []models.WorkspaceEvent
}

func (p *RecordingPublisher) Publish(_ context.Context, event models.WorkspaceEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)
	return p.Err
}

func (p *RecordingPublisher) Close() error { return nil }

func (p *RecordingPublisher) Events() []models.WorkspaceEvent {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]models.WorkspaceEvent, len(p.events))
	copy(out, p.events)
	return out
}
