package usecase

import (
	"context"
	"testing"

	"github.com/sakhisetu/skillbridge-backend/internal/prompt"
	"github.com/sakhisetu/skillbridge-backend/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubInference struct {
	result      service.InferenceResult
	lastModel   string
	lastPayload any
	lastBinary  bool
}

func (s *stubInference) Query(_ context.Context, model string, payload any, isBinary bool) service.InferenceResult {
	s.lastModel = model
	s.lastPayload = payload
	s.lastBinary = isBinary
	return s.result
}

func (s *stubInference) Warmup(context.Context) {}

func TestAskQuestionUsesMistralModel(t *testing.T) {
	stub := &stubInference{result: service.InferenceResult{GeneratedText: "What is your proudest moment?"}}
	uc := NewInterviewUsecase(stub)

	question := uc.AskQuestion(context.Background(), "tailoring", "Boutique Owner", []string{"q1"}, "mistral")

	assert.Equal(t, service.MistralModel, stub.lastModel)
	assert.Equal(t, "What is your proudest moment?", question)

	payload, ok := stub.lastPayload.(service.TextPayload)
	require.True(t, ok)
	require.NotNil(t, payload.Parameters)
	assert.Equal(t, 150, payload.Parameters.MaxNewTokens)
	assert.InDelta(t, 0.7, payload.Parameters.Temperature, 0.0001)
	assert.Contains(t, payload.Inputs, "Candidate's skills: tailoring.")
	assert.False(t, stub.lastBinary)
}

func TestAskQuestionDefaultsToLlama(t *testing.T) {
	stub := &stubInference{result: service.InferenceResult{GeneratedText: "Q?"}}
	uc := NewInterviewUsecase(stub)

	uc.AskQuestion(context.Background(), "", "", nil, "")

	assert.Equal(t, service.LlamaModel, stub.lastModel)
}

func TestAskQuestionStripsEchoedPrompt(t *testing.T) {
	stub := &stubInference{}
	uc := NewInterviewUsecase(stub)

	// first call captures the prompt the usecase builds
	uc.AskQuestion(context.Background(), "typing", "Data Entry", nil, "llama")
	built := stub.lastPayload.(service.TextPayload).Inputs

	stub.result = service.InferenceResult{GeneratedText: built + "\nHow do you prioritise tasks?\nnoise"}
	question := uc.AskQuestion(context.Background(), "typing", "Data Entry", nil, "llama")

	assert.Equal(t, "How do you prioritise tasks?", question)
}

func TestAskQuestionFallsBackToDefault(t *testing.T) {
	stub := &stubInference{result: service.InferenceResult{}}
	uc := NewInterviewUsecase(stub)

	question := uc.AskQuestion(context.Background(), "", "", nil, "mistral")

	assert.Equal(t, prompt.DefaultQuestion, question)
}

func TestAssessAnswerParsesScore(t *testing.T) {
	stub := &stubInference{result: service.InferenceResult{GeneratedText: "SCORE: 9\nFEEDBACK: Clear and confident"}}
	uc := NewInterviewUsecase(stub)

	assessment := uc.AssessAnswer(context.Background(), "Why this role?", "Because...", "mistral")

	assert.Equal(t, 9, assessment.Score)
	assert.Equal(t, "Clear and confident", assessment.Feedback)

	payload := stub.lastPayload.(service.TextPayload)
	require.NotNil(t, payload.Parameters)
	assert.Equal(t, 100, payload.Parameters.MaxNewTokens)
	assert.InDelta(t, 0.5, payload.Parameters.Temperature, 0.0001)
}

func TestAssessAnswerMockPathScoresEight(t *testing.T) {
	stub := &stubInference{result: service.InferenceResult{GeneratedText: service.MockAssessment, Mock: true}}
	uc := NewInterviewUsecase(stub)

	assessment := uc.AssessAnswer(context.Background(), "Q", "A", "mistral")

	assert.Equal(t, 8, assessment.Score)
	assert.Equal(t, "Great job! Your answer was clear and practical.", assessment.Feedback)
}

func TestTranscribe(t *testing.T) {
	stub := &stubInference{result: service.InferenceResult{Transcription: "I teach sewing"}}
	uc := NewInterviewUsecase(stub)

	text := uc.Transcribe(context.Background(), []byte("audio"))

	assert.Equal(t, service.WhisperModel, stub.lastModel)
	assert.True(t, stub.lastBinary)
	assert.Equal(t, "I teach sewing", text)
}

func TestTranscribeFallsBackWhenEmpty(t *testing.T) {
	stub := &stubInference{result: service.InferenceResult{}}
	uc := NewInterviewUsecase(stub)

	assert.Equal(t, DefaultTranscription, uc.Transcribe(context.Background(), nil))
}
