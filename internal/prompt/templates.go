package prompt

import (
	"fmt"
	"strings"
)

// ModelFamily selects the prompt/response conventions of the underlying
// instruct model. Anything that is not mistral gets the llama conventions.
type ModelFamily int

const (
	FamilyLlama ModelFamily = iota
	FamilyMistral
)

func FamilyFor(modelType string) ModelFamily {
	if modelType == "mistral" {
		return FamilyMistral
	}
	return FamilyLlama
}

// BuildQuestionPrompt assembles the ask-next-question prompt. History is only
// handed to the model as a do-not-repeat instruction; nothing filters repeats
// in code.
func BuildQuestionPrompt(family ModelFamily, skillsText, career string, history []string) string {
	if family == FamilyMistral {
		skillsLine := ""
		if skillsText != "" {
			skillsLine = fmt.Sprintf("Candidate's skills: %s.", skillsText)
		}
		careerLine := ""
		if career != "" {
			careerLine = fmt.Sprintf("Target Career: %s.", career)
		}
		return fmt.Sprintf(`<s>[INST] You are an encouraging interview coach for women in India.
%s
%s
Generate ONE practical interview question to test career readiness.
Do NOT repeat: %s.
REPLY WITH ONLY THE QUESTION. [/INST]`, skillsLine, careerLine, historyOr(history, " | ", "none"))
	}

	if career == "" && skillsText == "" {
		return fmt.Sprintf(`<|begin_of_text|><|start_header_id|>system<|end_header_id|>
You are an AI career coach. Ask ONE general soft-skill question to help the user find their path.
Previous questions: %s.
REPLY ONLY WITH THE QUESTION TEXT.<|eot_id|><|start_header_id|>assistant<|end_header_id|>`, historyOr(history, ", ", "None"))
	}

	careerPart := ""
	if career != "" {
		careerPart = fmt.Sprintf("The user is interested in: %s.", career)
	}
	skillsPart := ""
	if skillsText != "" {
		skillsPart = fmt.Sprintf("The user has these skills: %s.", skillsText)
	}
	return fmt.Sprintf(`<|begin_of_text|><|start_header_id|>system<|end_header_id|>
You are an AI career coach for women in India. %s %s
Generate ONE smart, practical interview question related to this career path and these skills.
Keep it warm and encouraging. Previous questions: %s.
REPLY ONLY WITH THE QUESTION TEXT.<|eot_id|><|start_header_id|>assistant<|end_header_id|>`, careerPart, skillsPart, historyOr(history, ", ", "None"))
}

// BuildAssessmentPrompt assembles the assess-answer prompt. The mistral family
// asks for SCORE:/FEEDBACK: labelled lines, the llama family for a single
// pipe-delimited pair; ParseAssessment understands both.
func BuildAssessmentPrompt(family ModelFamily, question, answer string) string {
	if family == FamilyMistral {
		return fmt.Sprintf(`<s>[INST] You are an expert interview evaluator.
Question asked: "%s"
Candidate's answer: "%s"

Evaluate this answer for:
- Communication clarity
- Relevance
- Confidence indicators
- Practical examples

Respond ONLY in this exact format:
SCORE: [number 0-10]
FEEDBACK: [one encouraging sentence of feedback] [/INST]`, question, answer)
	}

	return fmt.Sprintf(`<|begin_of_text|><|start_header_id|>system<|end_header_id|>
You are an expert interview evaluator.
Question asked: "%s"
Candidate's answer: "%s"

Provide a score from 0 to 10 and a short (1 sentence) piece of encouraging feedback.
Output format: SCORE|FEEDBACK<|eot_id|><|start_header_id|>assistant<|end_header_id|>`, question, answer)
}

func historyOr(history []string, sep, fallback string) string {
	if len(history) == 0 {
		return fallback
	}
	return strings.Join(history, sep)
}
