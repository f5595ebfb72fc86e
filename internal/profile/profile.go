// Package profile holds the static profile dataset served by the connector.
// The record is compiled in and immutable: every accessor returns either a
// copy or shared read-only state that callers must not modify.
package profile

import "strings"

// Data returns the compiled-in profile record.
func Data() *Record {
	return &record
}

// CurrentRole returns the experience entry marked current, if any.
// The dataset keeps at most one such entry.
func (r *Record) CurrentRole() (Experience, bool) {
	for _, exp := range r.Experience {
		if exp.Current {
			return exp, true
		}
	}
	return Experience{}, false
}

// FeaturedProjects returns the projects flagged as featured, in declaration order.
func (r *Record) FeaturedProjects() []Project {
	var featured []Project
	for _, p := range r.Projects {
		if p.Featured {
			featured = append(featured, p)
		}
	}
	return featured
}

// ExpertSkills returns the names of all skills with expert proficiency,
// flattened across categories.
func (r *Record) ExpertSkills() []string {
	var names []string
	for _, cat := range r.Skills {
		for _, s := range cat.Skills {
			if s.Proficiency == Expert {
				names = append(names, s.Name)
			}
		}
	}
	return names
}

// SkillMatch is the lookup result for a single queried skill name.
// Proficiency is "not found" and Category nil when the skill is unknown.
type SkillMatch struct {
	Name        string  `json:"name"`
	Proficiency string  `json:"proficiency"`
	Category    *string `json:"category"`
}

// NotFound is the proficiency placeholder for skills absent from the dataset.
const NotFound = "not found"

// MatchSkill looks up a skill by case-insensitive exact name across all
// categories. The returned match echoes the dataset's canonical casing when
// found and the caller's spelling otherwise.
func (r *Record) MatchSkill(name string) SkillMatch {
	lower := strings.ToLower(name)
	for _, cat := range r.Skills {
		for _, s := range cat.Skills {
			if strings.ToLower(s.Name) == lower {
				category := cat.Category
				return SkillMatch{
					Name:        s.Name,
					Proficiency: string(s.Proficiency),
					Category:    &category,
				}
			}
		}
	}
	return SkillMatch{Name: name, Proficiency: NotFound}
}
