// Package view defines the typed payloads a tool response can carry. Each
// payload type knows its view name, so the wire tag always agrees with the
// payload shape: the envelope {view, data, ...} consumed by the profile
// widget and the admin dashboard cannot be constructed inconsistently.
package view

import "github.com/HassanA01/AskAneeq/internal/profile"

// Name identifies which profile section a response renders as.
type Name string

const (
	NameOverview        Name = "overview"
	NameExperience      Name = "experience"
	NameProjects        Name = "projects"
	NameSkills          Name = "skills"
	NameSkillComparison Name = "skill-comparison"
	NameRecommendations Name = "recommendations"
	NameAvailability    Name = "availability"
	NameAnalytics       Name = "analytics"
	NameEducation       Name = "education"
	NameContact         Name = "contact"
	NameHobbies         Name = "hobbies"
	NameResume          Name = "resume"
)

// Data is the sum of payload shapes a response can carry.
type Data interface {
	ViewName() Name
}

type Overview profile.Overview

func (Overview) ViewName() Name { return NameOverview }

type Experience []profile.Experience

func (Experience) ViewName() Name { return NameExperience }

type Projects []profile.Project

func (Projects) ViewName() Name { return NameProjects }

type Skills []profile.SkillCategory

func (Skills) ViewName() Name { return NameSkills }

type SkillComparison []profile.SkillMatch

func (SkillComparison) ViewName() Name { return NameSkillComparison }

type Recommendations []profile.Recommendation

func (Recommendations) ViewName() Name { return NameRecommendations }

type Education []profile.Education

func (Education) ViewName() Name { return NameEducation }

type Contact profile.Contact

func (Contact) ViewName() Name { return NameContact }

type Hobbies []string

func (Hobbies) ViewName() Name { return NameHobbies }

type Availability struct {
	BookingURL string `json:"bookingUrl"`
	Name       string `json:"name"`
}

func (Availability) ViewName() Name { return NameAvailability }

type Analytics struct {
	Logged bool `json:"logged"`
}

func (Analytics) ViewName() Name { return NameAnalytics }

// Resume aggregates the overview with the rest of the profile. The embedded
// Overview inlines its fields at the top level of the JSON object, matching
// the flattened resume shape the widget renders.
type Resume struct {
	profile.Overview
	Experience []profile.Experience    `json:"experience"`
	Projects   []profile.Project       `json:"projects"`
	Skills     []profile.SkillCategory `json:"skills"`
	Education  []profile.Education     `json:"education"`
	Contact    profile.Contact         `json:"contact"`
}

func (Resume) ViewName() Name { return NameResume }

// Envelope is the structured content of a tool response. View is always
// derived from Data; the optional fields are populated per tool.
type Envelope struct {
	View             Name   `json:"view"`
	Data             Data   `json:"data"`
	Format           string `json:"format,omitempty"`
	FocusID          string `json:"focusId,omitempty"`
	SearchQuery      string `json:"searchQuery,omitempty"`
	TechnologyFilter string `json:"technologyFilter,omitempty"`
}

// Wrap builds an envelope whose view tag matches the payload type.
func Wrap(d Data) Envelope {
	return Envelope{View: d.ViewName(), Data: d}
}
