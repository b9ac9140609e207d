package models

const (
	MinTemperature float32 = 0
	MaxTemperature float32 = 1
	MinMaxTokens   int32   = 50
	MaxMaxTokens   int32   = 1024
)

// GenerationParams are the shared sampling settings sent with every completion.
type GenerationParams struct {
	Temperature float32 `json:"temperature"`
	MaxTokens   int32   `json:"max_tokens"`
}

// InRange reports whether the params fit the bounds of the settings panel.
func (p GenerationParams) InRange() bool {
	return p.Temperature >= MinTemperature && p.Temperature <= MaxTemperature &&
		p.MaxTokens >= MinMaxTokens && p.MaxTokens <= MaxMaxTokens
}

type AnalyzeRequest struct {
	ResumeText     *string  `json:"resume_text"`
	JobDescription *string  `json:"job_description"`
	Temperature    *float32 `json:"temperature"`
	MaxTokens      *int32   `json:"max_tokens"`
}

type RephraseRequest struct {
	Text        *string  `json:"text"`
	Temperature *float32 `json:"temperature"`
	MaxTokens   *int32   `json:"max_tokens"`
}

type SettingsRequest struct {
	Temperature *float32 `json:"temperature"`
	MaxTokens   *int32   `json:"max_tokens"`
}

type ActionResponse struct {
	ID       string           `json:"id"`
	Action   string           `json:"action"`
	Markdown string           `json:"markdown"`
	Params   GenerationParams `json:"params"`
}
