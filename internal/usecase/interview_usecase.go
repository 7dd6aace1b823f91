package usecase

import (
	"context"

	"github.com/sakhisetu/skillbridge-backend/internal/prompt"
	"github.com/sakhisetu/skillbridge-backend/internal/service"
)

// DefaultTranscription is returned when the audio model hears nothing.
const DefaultTranscription = "I'm sorry, I couldn't hear that clearly. Could you try again?"

// InterviewUsecase runs the ask/assess/transcribe AI rounds. It never returns
// an error: the inference gateway degrades to mocks and the parsers degrade to
// defaults, so every call produces something usable for the candidate.
type InterviewUsecase struct {
	inference service.InferenceServiceInterface
}

func NewInterviewUsecase(inference service.InferenceServiceInterface) *InterviewUsecase {
	return &InterviewUsecase{inference: inference}
}

func modelFor(family prompt.ModelFamily) string {
	if family == prompt.FamilyMistral {
		return service.MistralModel
	}
	return service.LlamaModel
}

// AskQuestion generates the next interview question for the candidate's
// skills and target career, steering the model away from history.
func (uc *InterviewUsecase) AskQuestion(ctx context.Context, skillsText, career string, history []string, modelType string) string {
	family := prompt.FamilyFor(modelType)
	questionPrompt := prompt.BuildQuestionPrompt(family, skillsText, career, history)

	result := uc.inference.Query(ctx, modelFor(family), service.TextPayload{
		Inputs:     questionPrompt,
		Parameters: &service.GenerationParameters{MaxNewTokens: 150, Temperature: 0.7},
	}, false)

	return prompt.ParseQuestion(result.GeneratedText, questionPrompt)
}

// AssessAnswer scores the candidate's answer to one question.
func (uc *InterviewUsecase) AssessAnswer(ctx context.Context, question, answer, modelType string) prompt.Assessment {
	family := prompt.FamilyFor(modelType)
	assessPrompt := prompt.BuildAssessmentPrompt(family, question, answer)

	result := uc.inference.Query(ctx, modelFor(family), service.TextPayload{
		Inputs:     assessPrompt,
		Parameters: &service.GenerationParameters{MaxNewTokens: 100, Temperature: 0.5},
	}, false)

	return prompt.ParseAssessment(family, result.GeneratedText, assessPrompt)
}

// Transcribe converts the candidate's recorded answer to text.
func (uc *InterviewUsecase) Transcribe(ctx context.Context, audio []byte) string {
	result := uc.inference.Query(ctx, service.WhisperModel, audio, true)
	if result.Transcription == "" {
		return DefaultTranscription
	}
	return result.Transcription
}
