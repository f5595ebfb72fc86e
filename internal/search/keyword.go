// Package search ranks the static profile record against a free-text query.
// Matching is plain substring containment over lower-cased field text; no
// stemming, no fuzziness. The whole dataset is small enough that a full scan
// per query is the right trade-off.
package search

import (
	"sort"
	"strings"

	"github.com/HassanA01/AskAneeq/internal/profile"
	"github.com/HassanA01/AskAneeq/internal/view"
)

// Result is one ranked section match. Data wraps the matched entity in the
// shape its view renders: a singleton slice for experience, projects, and
// recommendations; the full category list for skills; the full education
// list for education.
type Result struct {
	View          view.Name
	Data          view.Data
	Score         int
	MatchedFields []string
}

// scoredField pairs a field name with its derived text and weight. Weight 2
// marks name-like fields (company, project name, author), weight 1 free text.
type scoredField struct {
	name   string
	text   string
	weight int
}

// Search scans every profile section and returns matches ordered by score
// descending. Ties keep section scan order (experience, projects, skills,
// overview, education, recommendations, and declaration order within a
// section), which makes the full ordering deterministic. A blank query
// returns nil without scanning.
func Search(query string, rec *profile.Record) []Result {
	tokens := strings.Fields(strings.ToLower(query))
	if len(tokens) == 0 {
		return nil
	}

	var results []Result

	for _, exp := range rec.Experience {
		fields := []scoredField{
			{"company", exp.Company, 2},
			{"role", exp.Role, 2},
			{"technologies", strings.Join(exp.Technologies, " "), 1},
			{"achievements", strings.Join(exp.Achievements, " "), 1},
		}
		if score, matched := scoreFields(tokens, fields); score > 0 {
			results = append(results, Result{
				View:          view.NameExperience,
				Data:          view.Experience{exp},
				Score:         score,
				MatchedFields: matched,
			})
		}
	}

	for _, p := range rec.Projects {
		fields := []scoredField{
			{"name", p.Name, 2},
			{"techStack", strings.Join(p.TechStack, " "), 1},
			{"description", p.Description, 1},
			{"impact", p.Impact, 1},
		}
		if score, matched := scoreFields(tokens, fields); score > 0 {
			results = append(results, Result{
				View:          view.NameProjects,
				Data:          view.Projects{p},
				Score:         score,
				MatchedFields: matched,
			})
		}
	}

	// Skills are scored per category, but only the single best category is
	// emitted and its payload is always the entire skills list: the skills
	// view renders all categories and highlights nothing.
	bestScore, bestMatched := 0, []string(nil)
	for _, cat := range rec.Skills {
		names := make([]string, len(cat.Skills))
		for i, s := range cat.Skills {
			names[i] = s.Name
		}
		fields := []scoredField{
			{"category", cat.Category, 2},
			{"skills", strings.Join(names, " "), 1},
		}
		if score, matched := scoreFields(tokens, fields); score > bestScore {
			bestScore, bestMatched = score, matched
		}
	}
	if bestScore > 0 {
		results = append(results, Result{
			View:          view.NameSkills,
			Data:          view.Skills(rec.Skills),
			Score:         bestScore,
			MatchedFields: bestMatched,
		})
	}

	overviewFields := []scoredField{
		{"name", rec.Overview.Name, 2},
		{"title", rec.Overview.Title, 2},
		{"tagline", rec.Overview.Tagline, 1},
	}
	if score, matched := scoreFields(tokens, overviewFields); score > 0 {
		results = append(results, Result{
			View:          view.NameOverview,
			Data:          view.Overview(rec.Overview),
			Score:         score,
			MatchedFields: matched,
		})
	}

	// Education payloads carry the whole education list, not the matched
	// entry: the education view is unary and renders the full history.
	for _, edu := range rec.Education {
		fields := []scoredField{
			{"institution", edu.Institution, 2},
			{"degree", edu.Degree, 2},
			{"field", edu.Field, 1},
			{"highlights", strings.Join(edu.Highlights, " "), 1},
		}
		if score, matched := scoreFields(tokens, fields); score > 0 {
			results = append(results, Result{
				View:          view.NameEducation,
				Data:          view.Education(rec.Education),
				Score:         score,
				MatchedFields: matched,
			})
		}
	}

	for _, rc := range rec.Recommendations {
		fields := []scoredField{
			{"author", rc.Author, 2},
			{"company", rc.Company, 1},
			{"role", rc.Role, 1},
			{"text", rc.Text, 1},
		}
		if score, matched := scoreFields(tokens, fields); score > 0 {
			results = append(results, Result{
				View:          view.NameRecommendations,
				Data:          view.Recommendations{rc},
				Score:         score,
				MatchedFields: matched,
			})
		}
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})
	return results
}

// scoreFields counts token hits per field. Each token that appears as a
// substring of the lower-cased field text counts once; a field's
// contribution is hits times weight. Fields with at least one hit are
// reported in the matched list in field-declaration order.
func scoreFields(tokens []string, fields []scoredField) (int, []string) {
	score := 0
	var matched []string

	for _, f := range fields {
		if f.text == "" {
			continue
		}
		lower := strings.ToLower(f.text)
		hits := 0
		for _, tok := range tokens {
			if strings.Contains(lower, tok) {
				hits++
			}
		}
		if hits > 0 {
			score += hits * f.weight
			matched = append(matched, f.name)
		}
	}

	return score, matched
}
