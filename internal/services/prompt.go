package services

import (
	"strings"
)

// Prompt is a rendered two-message conversation.
type Prompt struct {
	System string
	User   string
}

// PromptTemplate is a fixed instruction followed by one labelled line per field.
// Values are inserted verbatim.
type PromptTemplate struct {
	System      string
	Instruction string
	Fields      []string
}

// Render fills the template fields in order. Missing values render empty.
func (t PromptTemplate) Render(values ...string) Prompt {
	var sb strings.Builder
	sb.WriteString(t.Instruction)
	sb.WriteString("\n")

	for i, field := range t.Fields {
		value := ""
		if i < len(values) {
			value = values[i]
		}
		sb.WriteString(field)
		sb.WriteString(": ")
		sb.WriteString(value)
		sb.WriteString("\n")
	}

	return Prompt{System: t.System, User: sb.String()}
}

var AnalysisTemplate = PromptTemplate{
	System: "You are an expert ATS resume analyzer.",
	Instruction: `Please analyze the following resume in the context of the job description provided. Strictly check every single line in the job description and analyze the resume for exact matches. Maintain high ATS standards and give scores only to the correct matches. Focus on missing hard skills and soft skills. Provide the following details:
1. The match percentage of the resume to the job description.
2. A list of accurate missing keywords.
3. Final thoughts on the resume's overall match with the job description in 3 lines.
4. Recommendations on how to add the missing keywords and improve the resume in 3-4 points with examples.`,
	Fields: []string{"Job Description", "Resume"},
}

var RephraseTemplate = PromptTemplate{
	System:      "You are an expert in rephrasing content for ATS optimization.",
	Instruction: "Please rephrase the following text according to ATS standards, including quantifiable measures and improvements where possible. Maintain precise and concise points which will pass ATS screening:",
	Fields:      []string{"Original Text"},
}

type PromptBuilder struct {
	analysis PromptTemplate
	rephrase PromptTemplate
}

func NewPromptBuilder() *PromptBuilder {
	return &PromptBuilder{
		analysis: AnalysisTemplate,
		rephrase: RephraseTemplate,
	}
}

// BuildAnalysisPrompt creates the resume vs job description match prompt
func (pb *PromptBuilder) BuildAnalysisPrompt(resumeText, jobDescription string) Prompt {
	return pb.analysis.Render(jobDescription, resumeText)
}

// BuildRephrasePrompt creates the ATS rephrasing prompt
func (pb *PromptBuilder) BuildRephrasePrompt(text string) Prompt {
	return pb.rephrase.Render(text)
}
