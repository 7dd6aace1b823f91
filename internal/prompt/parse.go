package prompt

import (
	"regexp"
	"strconv"
	"strings"
)

const (
	// DefaultQuestion stands in when the model returns nothing usable.
	DefaultQuestion = "Tell me about a time you solved a problem with a neighbor or friend?"
	// DefaultFeedback stands in when the model output carries no feedback.
	DefaultFeedback = "That's a very thoughtful answer, Rani!"
	// DefaultScore stands in when the score is absent or non-numeric.
	DefaultScore = 7
)

// Assessment is the typed result of one assess-answer round.
type Assessment struct {
	Score    int    `json:"score"`
	Feedback string `json:"feedback"`
}

var (
	scoreRe    = regexp.MustCompile(`(?i)SCORE:\s*(\d+)`)
	feedbackRe = regexp.MustCompile(`(?is)FEEDBACK:\s*(.+)`)
	leadingInt = regexp.MustCompile(`^\s*(-?\d+)`)
)

// ParseQuestion extracts the generated question from raw model output. Instruct
// endpoints often echo the prompt back; the echo is stripped and only the first
// remaining line is kept. Empty output degrades to DefaultQuestion.
func ParseQuestion(raw, echoedPrompt string) string {
	cleaned := strings.TrimSpace(strings.Replace(raw, echoedPrompt, "", 1))
	line := strings.SplitN(cleaned, "\n", 2)[0]
	if strings.TrimSpace(line) == "" {
		return DefaultQuestion
	}
	return line
}

// ParseAssessment extracts score and feedback from raw model output in the
// family's delimited format. Every parse failure falls back to the named
// defaults; upstream output format is not guaranteed, so this never errors.
func ParseAssessment(family ModelFamily, raw, echoedPrompt string) Assessment {
	cleaned := strings.TrimSpace(strings.Replace(raw, echoedPrompt, "", 1))

	result := Assessment{Score: DefaultScore, Feedback: DefaultFeedback}

	if family == FamilyMistral {
		if m := scoreRe.FindStringSubmatch(cleaned); m != nil {
			if n, err := strconv.Atoi(m[1]); err == nil {
				result.Score = clampScore(n)
			}
		}
		if m := feedbackRe.FindStringSubmatch(cleaned); m != nil {
			result.Feedback = strings.SplitN(strings.TrimSpace(m[1]), "\n", 2)[0]
		}
		return result
	}

	parts := strings.Split(cleaned, "|")
	if m := leadingInt.FindStringSubmatch(parts[0]); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil {
			result.Score = clampScore(n)
		}
	}
	if len(parts) > 1 {
		if feedback := strings.Join(parts[1:], "|"); feedback != "" {
			result.Feedback = feedback
		}
	}
	return result
}

func clampScore(n int) int {
	if n < 0 {
		return 0
	}
	if n > 10 {
		return 10
	}
	return n
}
