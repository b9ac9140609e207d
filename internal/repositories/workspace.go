package repositories

import (
	"sync"
	"time"

	"alfredoptarigan/ats-resume-analyzer/internal/models"
)

// WorkspaceRepository holds the single in-process workspace.
type WorkspaceRepository interface {
	Snapshot() models.Workspace
	SetResumeText(text string)
	SetJobDescription(text string)
	SetTextToRephrase(text string)
	SetAnalysis(markdown string)
	SetRephrasedText(markdown string)
	Settings() models.GenerationParams
	UpdateSettings(params models.GenerationParams)
	Clear()
}

type workspaceRepository struct {
	mu        sync.RWMutex
	workspace models.Workspace
}

func NewWorkspaceRepository(defaults models.GenerationParams) WorkspaceRepository {
	return &workspaceRepository{
		workspace: models.Workspace{
			Settings:  defaults,
			UpdatedAt: time.Now(),
		},
	}
}

func (r *workspaceRepository) Snapshot() models.Workspace {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.workspace
}

func (r *workspaceRepository) SetResumeText(text string) {
	r.update(func(w *models.Workspace) { w.ResumeText = text })
}

func (r *workspaceRepository) SetJobDescription(text string) {
	r.update(func(w *models.Workspace) { w.JobDescription = text })
}

func (r *workspaceRepository) SetTextToRephrase(text string) {
	r.update(func(w *models.Workspace) { w.TextToRephrase = text })
}

func (r *workspaceRepository) SetAnalysis(markdown string) {
	r.update(func(w *models.Workspace) { w.Analysis = markdown })
}

func (r *workspaceRepository) SetRephrasedText(markdown string) {
	r.update(func(w *models.Workspace) { w.RephrasedText = markdown })
}

func (r *workspaceRepository) Settings() models.GenerationParams {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.workspace.Settings
}

func (r *workspaceRepository) UpdateSettings(params models.GenerationParams) {
	r.update(func(w *models.Workspace) { w.Settings = params })
}

// Clear drops the résumé and both outputs. Typed inputs and settings survive.
func (r *workspaceRepository) Clear() {
	r.update(func(w *models.Workspace) {
		w.ResumeText = ""
		w.Analysis = ""
		w.RephrasedText = ""
	})
}

func (r *workspaceRepository) update(fn func(w *models.Workspace)) {
	r.mu.Lock()
	defer r.mu.Unlock()
	fn(&r.workspace)
	r.workspace.UpdatedAt = time.Now()
}
