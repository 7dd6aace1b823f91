package prompt

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFamilyFor(t *testing.T) {
	assert.Equal(t, FamilyMistral, FamilyFor("mistral"))
	assert.Equal(t, FamilyLlama, FamilyFor("llama"))
	assert.Equal(t, FamilyLlama, FamilyFor(""))
	assert.Equal(t, FamilyLlama, FamilyFor("anything-else"))
}

func TestBuildQuestionPromptMistral(t *testing.T) {
	p := BuildQuestionPrompt(FamilyMistral, "tailoring, cooking", "Boutique Owner", []string{"q1", "q2"})

	assert.True(t, strings.HasPrefix(p, "<s>[INST]"))
	assert.Contains(t, p, "Candidate's skills: tailoring, cooking.")
	assert.Contains(t, p, "Target Career: Boutique Owner.")
	assert.Contains(t, p, "Generate ONE practical interview question")
	assert.Contains(t, p, "Do NOT repeat: q1 | q2.")
	assert.True(t, strings.HasSuffix(p, "[/INST]"))
}

func TestBuildQuestionPromptMistralEmptyHistory(t *testing.T) {
	p := BuildQuestionPrompt(FamilyMistral, "", "", nil)

	assert.Contains(t, p, "Do NOT repeat: none.")
	assert.NotContains(t, p, "Candidate's skills")
	assert.NotContains(t, p, "Target Career")
}

func TestBuildQuestionPromptLlama(t *testing.T) {
	p := BuildQuestionPrompt(FamilyLlama, "typing", "Data Entry", []string{"q1", "q2"})

	assert.True(t, strings.HasPrefix(p, "<|begin_of_text|>"))
	assert.Contains(t, p, "The user is interested in: Data Entry.")
	assert.Contains(t, p, "The user has these skills: typing.")
	assert.Contains(t, p, "Previous questions: q1, q2.")
}

func TestBuildQuestionPromptLlamaNoContext(t *testing.T) {
	p := BuildQuestionPrompt(FamilyLlama, "", "", nil)

	assert.Contains(t, p, "ONE general soft-skill question")
	assert.Contains(t, p, "Previous questions: None.")
}

func TestBuildAssessmentPromptFormats(t *testing.T) {
	mistral := BuildAssessmentPrompt(FamilyMistral, "Why this career?", "Because I love it")
	assert.Contains(t, mistral, `Question asked: "Why this career?"`)
	assert.Contains(t, mistral, "Evaluate this answer for:")
	assert.Contains(t, mistral, "SCORE: [number 0-10]")

	llama := BuildAssessmentPrompt(FamilyLlama, "Why this career?", "Because I love it")
	assert.Contains(t, llama, "Output format: SCORE|FEEDBACK")
}

func TestParseQuestionStripsEchoAndKeepsFirstLine(t *testing.T) {
	p := BuildQuestionPrompt(FamilyLlama, "typing", "", nil)
	raw := p + "\nHow would you organise your first week?\nSecond line noise"

	assert.Equal(t, "How would you organise your first week?", ParseQuestion(raw, p))
}

func TestParseQuestionDefaults(t *testing.T) {
	p := "some prompt"
	assert.Equal(t, DefaultQuestion, ParseQuestion("", p))
	assert.Equal(t, DefaultQuestion, ParseQuestion(p, p))
	assert.Equal(t, DefaultQuestion, ParseQuestion("   \n  ", p))
}

func TestParseAssessmentMistral(t *testing.T) {
	cases := []struct {
		name         string
		raw          string
		wantScore    int
		wantFeedback string
	}{
		{"labelled lines", "SCORE: 9\nFEEDBACK: Nice work\ntrailing", 9, "Nice work"},
		{"score above range", "SCORE: 15\nFEEDBACK: Too generous", 10, "Too generous"},
		{"missing labels", "the model rambled instead", DefaultScore, DefaultFeedback},
		{"mock assessment", "SCORE: 8\nFEEDBACK: Great job! Your answer was clear and practical.", 8, "Great job! Your answer was clear and practical."},
		{"case insensitive", "score: 6\nfeedback: okay", 6, "okay"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ParseAssessment(FamilyMistral, tc.raw, "")
			assert.Equal(t, tc.wantScore, got.Score)
			assert.Equal(t, tc.wantFeedback, got.Feedback)
		})
	}
}

func TestParseAssessmentLlama(t *testing.T) {
	cases := []struct {
		name         string
		raw          string
		wantScore    int
		wantFeedback string
	}{
		{"pipe pair", "8|Great confidence", 8, "Great confidence"},
		{"extra pipes stay in feedback", "6|solid|keep going", 6, "solid|keep going"},
		{"non numeric score", "excellent|well done", DefaultScore, "well done"},
		{"negative clamped", "-3|harsh", 0, "harsh"},
		{"no delimiter", "just text", DefaultScore, DefaultFeedback},
		{"empty", "", DefaultScore, DefaultFeedback},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ParseAssessment(FamilyLlama, tc.raw, "")
			assert.Equal(t, tc.wantScore, got.Score)
			assert.Equal(t, tc.wantFeedback, got.Feedback)
		})
	}
}

func TestParseAssessmentStripsEchoedPrompt(t *testing.T) {
	p := BuildAssessmentPrompt(FamilyMistral, "Q", "A")
	raw := p + "\nSCORE: 7\nFEEDBACK: Balanced answer"

	got := ParseAssessment(FamilyMistral, raw, p)

	assert.Equal(t, 7, got.Score)
	assert.Equal(t, "Balanced answer", got.Feedback)
}
