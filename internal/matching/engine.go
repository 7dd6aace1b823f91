package matching

import (
	"math"
	"sort"
	"strings"

	"github.com/sakhisetu/skillbridge-backend/internal/model"
)

// Engine scores postings against a user's declared skills. All matching is
// literal case-insensitive substring containment over synonym-expanded tokens;
// there is no semantic component, so identical inputs always produce identical
// ordered output.
type Engine struct {
	synonyms      []SynonymGroup
	careerCourses []CareerCourses
}

func NewEngine(synonyms []SynonymGroup, careerCourses []CareerCourses) *Engine {
	return &Engine{synonyms: synonyms, careerCourses: careerCourses}
}

// JobMatch is a job posting augmented with its computed overlap. Never
// persisted, recomputed on every request.
type JobMatch struct {
	model.Job
	Match         int      `json:"match"`
	Matches       []string `json:"matches"`
	MissingSkills []string `json:"missing_skills"`
}

// BarterMatch is a barter offer augmented with its reciprocity score.
type BarterMatch struct {
	model.BarterOffer
	MatchScore    int      `json:"matchScore"`
	MatchedSkills []string `json:"matchedSkills"`
}

// SplitSkills turns free skill text into trimmed tokens. Empty tokens are
// kept: downstream an empty token substring-matches every required skill, so
// blank input ranks every posting at 100%. Case is preserved for ExpandSkills
// to lower at the end.
func SplitSkills(raw string) []string {
	parts := strings.Split(raw, ",")
	tokens := make([]string, len(parts))
	for i, p := range parts {
		tokens[i] = strings.TrimSpace(p)
	}
	return tokens
}

// ExpandSkills widens the user's tokens with every synonym group they touch.
// A token touches a group when the group holds the lowered token verbatim, or
// the lowered token contains the group key. The result is lower-cased with
// order-preserving dedup.
func (e *Engine) ExpandSkills(tokens []string) []string {
	expanded := make([]string, 0, len(tokens))
	seen := make(map[string]bool, len(tokens))
	add := func(s string) {
		if !seen[s] {
			seen[s] = true
			expanded = append(expanded, s)
		}
	}
	for _, t := range tokens {
		add(t)
	}
	for _, t := range tokens {
		lower := strings.ToLower(t)
		for _, group := range e.synonyms {
			if containsTerm(group.Terms, lower) || strings.Contains(lower, group.Key) {
				for _, syn := range group.Terms {
					add(syn)
				}
			}
		}
	}
	for i, s := range expanded {
		expanded[i] = strings.ToLower(s)
	}
	return expanded
}

func containsTerm(terms []string, s string) bool {
	for _, t := range terms {
		if t == s {
			return true
		}
	}
	return false
}

// MatchJobs ranks job postings against the user's skill text. A posting is
// kept when it has any overlap, or when it misses at most 4 skills so nearly
// reachable roles still surface. Output is capped at 6, ordered by match
// percentage descending with the incoming order preserved on ties.
func (e *Engine) MatchJobs(skillsText string, jobs []model.Job) []JobMatch {
	userSkills := e.ExpandSkills(SplitSkills(strings.ToLower(skillsText)))

	results := make([]JobMatch, 0, len(jobs))
	for _, job := range jobs {
		required := job.RequiredSkills

		matches := make([]string, 0, len(required))
		missing := make([]string, 0, len(required))
		for _, req := range required {
			if overlapsAny(userSkills, strings.ToLower(req)) {
				matches = append(matches, strings.ToLower(req))
			} else {
				missing = append(missing, req)
			}
		}

		percentage := int(math.Round(float64(len(matches)) / math.Max(float64(len(required)), 1) * 100))
		if percentage > 0 || len(missing) <= 4 {
			results = append(results, JobMatch{
				Job:           job,
				Match:         percentage,
				Matches:       matches,
				MissingSkills: missing,
			})
		}
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Match > results[j].Match
	})
	if len(results) > 6 {
		results = results[:6]
	}
	return results
}

func overlapsAny(userSkills []string, required string) bool {
	for _, us := range userSkills {
		if strings.Contains(us, required) || strings.Contains(required, us) {
			return true
		}
	}
	return false
}

// MatchBarter scores barter offers against what the caller can teach (mySkill)
// and what they want to learn (targetSkill). An offer wanting the caller's
// skill scores 2, an offer teaching the caller's target scores 1, so
// reciprocal matches always rank first. Offers owned by excludeUserID are
// dropped; zero disables the exclusion. No cap is applied.
func (e *Engine) MatchBarter(mySkill, targetSkill string, offers []model.BarterOffer, excludeUserID int) []BarterMatch {
	results := make([]BarterMatch, 0, len(offers))
	for _, offer := range offers {
		if excludeUserID != 0 && offer.UserID == excludeUserID {
			continue
		}

		score := 0
		matched := []string{}
		if mySkill != "" && strings.Contains(strings.ToLower(offer.Want), strings.ToLower(mySkill)) {
			score += 2
			matched = append(matched, mySkill)
		}
		if targetSkill != "" && strings.Contains(strings.ToLower(offer.Offer), strings.ToLower(targetSkill)) {
			score += 1
			matched = append(matched, targetSkill)
		}

		results = append(results, BarterMatch{
			BarterOffer:   offer,
			MatchScore:    score,
			MatchedSkills: matched,
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].MatchScore > results[j].MatchScore
	})
	return results
}

// SuggestCourses returns the course names mapped to the first career keyword
// contained in the intent, or nil when nothing matches.
func (e *Engine) SuggestCourses(careerIntent string) []string {
	intent := strings.ToLower(careerIntent)
	for _, mapping := range e.careerCourses {
		if strings.Contains(intent, mapping.Key) {
			return mapping.Courses
		}
	}
	return nil
}
