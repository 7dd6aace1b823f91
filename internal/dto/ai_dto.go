package dto

import (
	"encoding/json"
	"strings"
)

// FlexibleSkills accepts the two wire shapes clients send for skills: a single
// comma-separated string or a JSON array of labels. Either way it lands as one
// comma-joined string.
type FlexibleSkills string

func (s *FlexibleSkills) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err == nil {
		*s = FlexibleSkills(str)
		return nil
	}
	var list []string
	if err := json.Unmarshal(data, &list); err == nil {
		*s = FlexibleSkills(strings.Join(list, ", "))
		return nil
	}
	*s = ""
	return nil
}

type AskRequest struct {
	Skills    FlexibleSkills `json:"skills"`
	Career    string         `json:"career"`
	History   []string       `json:"history"`
	ModelType string         `json:"modelType"`
}

type AskResponse struct {
	Question string `json:"question"`
}

type AssessRequest struct {
	Question  string `json:"question"`
	Answer    string `json:"answer"`
	ModelType string `json:"modelType"`
}

type TranscribeResponse struct {
	Text string `json:"text"`
}

type GeminiGenerateRequest struct {
	Prompt          string   `json:"prompt"`
	MaxOutputTokens int      `json:"maxOutputTokens"`
	Temperature     *float64 `json:"temperature"`
}

type GeminiGenerateResponse struct {
	Text string `json:"text"`
}
