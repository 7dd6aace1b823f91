package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/sakhisetu/skillbridge-backend/internal/matching"
	"github.com/sakhisetu/skillbridge-backend/internal/model"
	"github.com/sakhisetu/skillbridge-backend/internal/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubJobSource struct {
	jobs []model.Job
	err  error
}

func (s *stubJobSource) GetJobs() ([]model.Job, error) {
	return s.jobs, s.err
}

type stubBarterSource struct {
	offers []model.BarterOffer
	err    error
}

func (s *stubBarterSource) SearchMatches(string, string) ([]model.BarterOffer, error) {
	return s.offers, s.err
}

func newMatchApp(jobs usecase.JobSource, offers usecase.BarterSource) *fiber.App {
	app := fiber.New()
	engine := matching.NewEngine(matching.DefaultSynonymGroups(), matching.DefaultCareerCourses())
	NewMatchHandler(usecase.NewMatchingUsecase(jobs, offers, engine)).RegisterRoutes(app)
	return app
}

func decodeArray(t *testing.T, resp *http.Response) []map[string]any {
	t.Helper()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var body []map[string]any
	require.NoError(t, json.Unmarshal(raw, &body))
	return body
}

func TestMatchJobsRoute(t *testing.T) {
	jobs := &stubJobSource{jobs: []model.Job{
		{ID: 1, Title: "Boutique Tailor", RequiredSkills: model.StringList{"tailoring", "digital marketing"}},
		{ID: 2, Title: "Cook", RequiredSkills: model.StringList{"cooking"}},
	}}
	app := newMatchApp(jobs, &stubBarterSource{})

	resp := postJSON(t, app, "/api/jobs", `{"skills":"stitching"}`)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body := decodeArray(t, resp)
	require.Len(t, body, 2)

	// the tailoring job ranks first via synonym expansion
	assert.Equal(t, "Boutique Tailor", body[0]["title"])
	assert.Equal(t, float64(50), body[0]["match"])
	assert.Equal(t, []any{"tailoring"}, body[0]["matches"])
	assert.Equal(t, []any{"digital marketing"}, body[0]["missing_skills"])
}

func TestMatchJobsRouteAcceptsSkillArray(t *testing.T) {
	jobs := &stubJobSource{jobs: []model.Job{
		{ID: 1, RequiredSkills: model.StringList{"cooking"}},
	}}
	app := newMatchApp(jobs, &stubBarterSource{})

	resp := postJSON(t, app, "/api/jobs", `{"skills":["food","typing"]}`)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body := decodeArray(t, resp)
	require.Len(t, body, 1)
	assert.Equal(t, float64(100), body[0]["match"])
}

func TestMatchJobsRouteRepoError(t *testing.T) {
	app := newMatchApp(&stubJobSource{err: errors.New("connection refused")}, &stubBarterSource{})

	resp := postJSON(t, app, "/api/jobs", `{"skills":"cooking"}`)

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Equal(t, "Failed to fetch jobs", body["error"])
}

func TestMatchBarterRoute(t *testing.T) {
	offers := &stubBarterSource{offers: []model.BarterOffer{
		{ID: 1, UserID: 10, Want: "Cooking", Offer: "Tailoring"},
		{ID: 2, UserID: 11, Want: "Driving", Offer: "Tailoring"},
		{ID: 3, UserID: 5, Want: "Cooking", Offer: "Tailoring"},
	}}
	app := newMatchApp(&stubJobSource{}, offers)

	resp := postJSON(t, app, "/api/barter/match", `{"mySkill":"cooking","targetSkill":"tailoring","userId":5}`)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body := decodeArray(t, resp)
	require.Len(t, body, 2)

	assert.Equal(t, float64(1), body[0]["id"])
	assert.Equal(t, float64(3), body[0]["matchScore"])
	assert.Equal(t, []any{"cooking", "tailoring"}, body[0]["matchedSkills"])
	assert.Equal(t, float64(1), body[1]["matchScore"])
}

func TestMatchBarterRouteEmptyTerms(t *testing.T) {
	offers := &stubBarterSource{offers: []model.BarterOffer{
		{ID: 1, UserID: 10, Want: "Cooking", Offer: "Tailoring"},
	}}
	app := newMatchApp(&stubJobSource{}, offers)

	resp := postJSON(t, app, "/api/barter/match", `{}`)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body := decodeArray(t, resp)
	assert.Empty(t, body)
}
