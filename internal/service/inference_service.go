package service

import (
	"context"
	"log"
	"math/rand"
	"strings"

	"github.com/go-resty/resty/v2"
	"github.com/sakhisetu/skillbridge-backend/internal/config"
	"github.com/tidwall/gjson"
)

const (
	MistralModel = "mistralai/Mistral-7B-Instruct-v0.2"
	LlamaModel   = "meta-llama/Meta-Llama-3-8B-Instruct"
	WhisperModel = "openai/whisper-large-v3"
)

// MockTranscription is returned for audio models whenever real inference is
// unavailable.
const MockTranscription = "This is a simulated transcription. (API Token might be invalid or model loading)"

// MockQuestions are the canned interview questions served when question
// generation falls back to a mock; one is picked uniformly at random.
var MockQuestions = []string{
	"Can you describe a time when you successfully solved a problem in your community?",
	"How would you handle a situation where you had to learn a new skill quickly?",
	"Tell us about a time you worked as part of a team to achieve a common goal.",
}

// MockAssessment encodes a fixed score of 8 plus fixed feedback in the
// labelled-line format the assessment parser understands.
const MockAssessment = "SCORE: 8\nFEEDBACK: Great job! Your answer was clear and practical."

const mockGenericResponse = "This is a simulated AI response."

type GenerationParameters struct {
	MaxNewTokens int     `json:"max_new_tokens,omitempty"`
	Temperature  float64 `json:"temperature,omitempty"`
}

// TextPayload is the JSON body posted to hosted text-generation models.
type TextPayload struct {
	Inputs     string                `json:"inputs"`
	Parameters *GenerationParameters `json:"parameters,omitempty"`
}

// InferenceResult is what callers get back from Query. Exactly one of
// GeneratedText or Transcription is set; Mock marks canned responses.
type InferenceResult struct {
	GeneratedText string
	Transcription string
	Mock          bool
}

type InferenceServiceInterface interface {
	Query(ctx context.Context, model string, payload any, isBinary bool) InferenceResult
	Warmup(ctx context.Context)
}

// InferenceService mediates calls to the hosted inference endpoints. Its
// contract is always-degrade-never-crash: a missing token, transport failure,
// non-2xx status or undecodable body all produce a mock result, so callers
// never observe a hard error.
type InferenceService struct {
	Token   string
	BaseURL string
	client  *resty.Client
}

func NewInferenceService() *InferenceService {
	hfConfig := config.LoadHuggingFaceConfig()
	return &InferenceService{
		Token:   hfConfig.Token,
		BaseURL: hfConfig.BaseURL,
		client:  resty.New(),
	}
}

// Query posts the payload to the named model. The payload is either a
// TextPayload (isBinary false) or a raw audio buffer (isBinary true).
func (s *InferenceService) Query(ctx context.Context, model string, payload any, isBinary bool) InferenceResult {
	inputs := ""
	if text, ok := payload.(TextPayload); ok {
		inputs = text.Inputs
	}

	if s.Token == "" {
		log.Printf("HUGGINGFACE_TOKEN missing. Falling back to mock for %s", model)
		return s.mockResponse(model, inputs)
	}

	req := s.client.R().
		SetContext(ctx).
		SetHeader("Authorization", "Bearer "+s.Token)
	if isBinary {
		req.SetHeader("Content-Type", "application/octet-stream").SetBody(payload)
	} else {
		req.SetHeader("Content-Type", "application/json").SetBody(payload)
	}

	resp, err := req.Post(s.BaseURL + "/" + model)
	if err != nil {
		log.Printf("Inference API error (%s): %v", model, err)
		return s.mockResponse(model, inputs)
	}

	body := resp.Body()
	if !resp.IsSuccess() {
		// Error envelopes sometimes come back as octet-stream; gjson reads
		// them the same either way.
		errMsg := gjson.GetBytes(body, "error").String()
		if errMsg == "" {
			errMsg = resp.Status()
		}
		log.Printf("Inference API error (%s): %s", model, errMsg)
		return s.mockResponse(model, inputs)
	}

	if result, ok := decodeBody(body); ok {
		return result
	}
	log.Printf("Inference API error (%s): undecodable response body", model)
	return s.mockResponse(model, inputs)
}

// decodeBody accepts both response shapes the hosted endpoints produce: an
// array of {generated_text} objects and a flat {text} transcription object.
func decodeBody(body []byte) (InferenceResult, bool) {
	if generated := gjson.GetBytes(body, "0.generated_text"); generated.Exists() {
		return InferenceResult{GeneratedText: generated.String()}, true
	}
	if generated := gjson.GetBytes(body, "generated_text"); generated.Exists() {
		return InferenceResult{GeneratedText: generated.String()}, true
	}
	if text := gjson.GetBytes(body, "text"); text.Exists() {
		return InferenceResult{Transcription: text.String()}, true
	}
	return InferenceResult{}, false
}

func (s *InferenceService) mockResponse(model, inputs string) InferenceResult {
	log.Printf("Using mock response for %s", model)
	if strings.Contains(model, "whisper") {
		return InferenceResult{Transcription: MockTranscription, Mock: true}
	}
	if strings.Contains(inputs, "Generate ONE practical interview question") {
		return InferenceResult{GeneratedText: MockQuestions[rand.Intn(len(MockQuestions))], Mock: true}
	}
	if strings.Contains(inputs, "Evaluate this answer for") {
		return InferenceResult{GeneratedText: MockAssessment, Mock: true}
	}
	return InferenceResult{GeneratedText: mockGenericResponse, Mock: true}
}

// Warmup fires one trivial request at each model so the first real request
// does not pay the cold-start cost. Results and failures are discarded; a
// request served before warm-up finishes is only slower, never wrong.
func (s *InferenceService) Warmup(ctx context.Context) {
	if s.Token == "" {
		log.Println("HUGGINGFACE_TOKEN missing. AI features will run on canned responses.")
		return
	}
	log.Println("Pre-warming inference models...")
	go s.Query(ctx, MistralModel, TextPayload{Inputs: "Hello"}, false)
	go s.Query(ctx, LlamaModel, TextPayload{Inputs: "Hello"}, false)
	go s.Query(ctx, WhisperModel, []byte{}, true)
}
