package matching

import (
	"fmt"
	"testing"

	"github.com/sakhisetu/skillbridge-backend/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEngine() *Engine {
	return NewEngine(DefaultSynonymGroups(), DefaultCareerCourses())
}

func TestSplitSkills(t *testing.T) {
	assert.Equal(t, []string{"tailoring", "cooking", "", ""}, SplitSkills(" tailoring , cooking ,, "))
	assert.Equal(t, []string{""}, SplitSkills(""))
}

func TestExpandSkillsIncludesWholeGroup(t *testing.T) {
	engine := newTestEngine()

	expanded := engine.ExpandSkills([]string{"stitching"})

	for _, want := range []string{"stitching", "tailoring", "sewing", "embroidery"} {
		assert.Contains(t, expanded, want)
	}
}

func TestExpandSkillsKeyContainment(t *testing.T) {
	engine := newTestEngine()

	// "home cooking" is no exact group member but contains the "cooking" key
	expanded := engine.ExpandSkills([]string{"Home Cooking"})

	assert.Contains(t, expanded, "home cooking")
	assert.Contains(t, expanded, "catering")
	assert.Contains(t, expanded, "chef")
}

func TestExpandSkillsUnknownTokenPassesThrough(t *testing.T) {
	engine := newTestEngine()

	expanded := engine.ExpandSkills([]string{"Carpentry"})

	assert.Equal(t, []string{"carpentry"}, expanded)
}

func TestMatchJobsScenario(t *testing.T) {
	engine := newTestEngine()
	jobs := []model.Job{
		{ID: 1, Title: "Boutique Tailor", RequiredSkills: model.StringList{"tailoring", "digital marketing"}},
	}

	matches := engine.MatchJobs("stitching, cooking", jobs)

	require.Len(t, matches, 1)
	assert.Equal(t, 50, matches[0].Match)
	assert.Equal(t, []string{"tailoring"}, matches[0].Matches)
	assert.Equal(t, []string{"digital marketing"}, matches[0].MissingSkills)
}

func TestMatchJobsBlankSkillsMatchEverything(t *testing.T) {
	engine := newTestEngine()
	jobs := []model.Job{
		{ID: 1, RequiredSkills: model.StringList{"welding", "plumbing", "masonry", "electrician", "driving"}},
		{ID: 2, RequiredSkills: model.StringList{"tailoring"}},
	}

	// the empty token substring-matches every required skill
	matches := engine.MatchJobs("", jobs)

	require.Len(t, matches, 2)
	for _, m := range matches {
		assert.Equal(t, 100, m.Match)
		assert.Empty(t, m.MissingSkills)
	}
	assert.Equal(t, []string{"welding", "plumbing", "masonry", "electrician", "driving"}, matches[0].Matches)
}

func TestMatchJobsTrailingComma(t *testing.T) {
	engine := newTestEngine()
	jobs := []model.Job{
		{ID: 1, RequiredSkills: model.StringList{"driving"}},
	}

	matches := engine.MatchJobs("cooking,", jobs)

	require.Len(t, matches, 1)
	assert.Equal(t, 100, matches[0].Match)
}

func TestMatchJobsEmptyRequiredSkills(t *testing.T) {
	engine := newTestEngine()
	jobs := []model.Job{
		{ID: 1, Title: "Anything Goes", RequiredSkills: model.StringList{}},
	}

	matches := engine.MatchJobs("cooking", jobs)

	// zero percent, retained only because nothing is missing
	require.Len(t, matches, 1)
	assert.Equal(t, 0, matches[0].Match)
	assert.Empty(t, matches[0].MissingSkills)
}

func TestMatchJobsDropsFarMisses(t *testing.T) {
	engine := newTestEngine()
	jobs := []model.Job{
		{ID: 1, RequiredSkills: model.StringList{"welding", "plumbing", "masonry", "electrician", "driving"}},
	}

	matches := engine.MatchJobs("cooking", jobs)

	assert.Empty(t, matches)
}

func TestMatchJobsKeepsAlmostReachable(t *testing.T) {
	engine := newTestEngine()
	jobs := []model.Job{
		{ID: 1, RequiredSkills: model.StringList{"welding", "plumbing", "masonry", "driving"}},
	}

	matches := engine.MatchJobs("cooking", jobs)

	require.Len(t, matches, 1)
	assert.Equal(t, 0, matches[0].Match)
}

func TestMatchJobsCapAndStableOrder(t *testing.T) {
	engine := newTestEngine()

	jobs := make([]model.Job, 0, 8)
	for i := 1; i <= 8; i++ {
		jobs = append(jobs, model.Job{
			ID:             i,
			Title:          fmt.Sprintf("Job %d", i),
			RequiredSkills: model.StringList{"cooking"},
		})
	}
	// one partial match ranks below the full matches
	jobs = append(jobs, model.Job{ID: 99, RequiredSkills: model.StringList{"cooking", "driving"}})

	matches := engine.MatchJobs("cooking", jobs)

	require.Len(t, matches, 6)
	for i := 1; i <= 6; i++ {
		assert.Equal(t, i, matches[i-1].ID, "ties must preserve input order")
		assert.Equal(t, 100, matches[i-1].Match)
	}
}

func TestMatchJobsIdempotent(t *testing.T) {
	engine := newTestEngine()
	jobs := []model.Job{
		{ID: 1, RequiredSkills: model.StringList{"cooking"}},
		{ID: 2, RequiredSkills: model.StringList{"tailoring"}},
		{ID: 3, RequiredSkills: model.StringList{"cooking", "tailoring"}},
	}

	first := engine.MatchJobs("cooking, stitching", jobs)
	second := engine.MatchJobs("cooking, stitching", jobs)

	assert.Equal(t, first, second)
}

func TestMatchBarterScoring(t *testing.T) {
	engine := newTestEngine()
	offers := []model.BarterOffer{
		{ID: 1, UserID: 10, Want: "Cooking", Offer: "Tailoring"},
		{ID: 2, UserID: 11, Want: "Cooking", Offer: "Typing"},
		{ID: 3, UserID: 12, Want: "Driving", Offer: "Tailoring"},
		{ID: 4, UserID: 13, Want: "Driving", Offer: "Typing"},
	}

	matches := engine.MatchBarter("cooking", "tailoring", offers, 0)

	require.Len(t, matches, 4)
	assert.Equal(t, 3, matches[0].MatchScore)
	assert.Equal(t, []string{"cooking", "tailoring"}, matches[0].MatchedSkills)
	assert.Equal(t, 2, matches[1].MatchScore)
	assert.Equal(t, []string{"cooking"}, matches[1].MatchedSkills)
	assert.Equal(t, 1, matches[2].MatchScore)
	assert.Equal(t, []string{"tailoring"}, matches[2].MatchedSkills)
	assert.Equal(t, 0, matches[3].MatchScore)
	assert.Empty(t, matches[3].MatchedSkills)
}

func TestMatchBarterExcludesOwner(t *testing.T) {
	engine := newTestEngine()
	offers := []model.BarterOffer{
		{ID: 1, UserID: 10, Want: "Cooking", Offer: "Tailoring"},
		{ID: 2, UserID: 20, Want: "Cooking", Offer: "Tailoring"},
	}

	matches := engine.MatchBarter("cooking", "tailoring", offers, 10)

	require.Len(t, matches, 1)
	assert.Equal(t, 2, matches[0].ID)
}

func TestMatchBarterSingleTerm(t *testing.T) {
	engine := newTestEngine()
	offers := []model.BarterOffer{
		{ID: 1, UserID: 10, Want: "Basic cooking lessons", Offer: "Mehendi"},
	}

	matches := engine.MatchBarter("cooking", "", offers, 0)

	require.Len(t, matches, 1)
	assert.Equal(t, 2, matches[0].MatchScore)
}

func TestSuggestCourses(t *testing.T) {
	engine := newTestEngine()

	cases := []struct {
		intent string
		want   []string
	}{
		{"I want to become a tailoring expert", []string{"Advanced Embroidery"}},
		{"Data Entry Operator", []string{"Typing Masterclass", "Computer Literacy 101"}},
		{"Computer teacher", []string{"Computer Literacy 101", "Typing Masterclass"}},
		{"Astronaut", nil},
		{"", nil},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, engine.SuggestCourses(tc.intent), "intent %q", tc.intent)
	}
}
