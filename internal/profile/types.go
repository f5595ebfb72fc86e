package profile

// Proficiency is the self-assessed skill level used throughout the skill
// categories. Only the three values below appear in the dataset.
type Proficiency string

const (
	Expert       Proficiency = "expert"
	Advanced     Proficiency = "advanced"
	Intermediate Proficiency = "intermediate"
)

// Overview is the headline summary of the profile subject.
type Overview struct {
	Name            string   `json:"name"`
	Title           string   `json:"title"`
	Tagline         string   `json:"tagline"`
	YearsExperience int      `json:"yearsExperience"`
	Languages       []string `json:"languages"`
}

// Experience is one work-history entry. At most one entry has Current set.
type Experience struct {
	ID           string   `json:"id"`
	Company      string   `json:"company"`
	Role         string   `json:"role"`
	Duration     string   `json:"duration"`
	Location     string   `json:"location"`
	Technologies []string `json:"technologies"`
	Achievements []string `json:"achievements"`
	Current      bool     `json:"current"`
}

// ProjectLinks holds optional external URLs for a project.
type ProjectLinks struct {
	GitHub string `json:"github,omitempty"`
	Demo   string `json:"demo,omitempty"`
}

// Project is one portfolio project.
type Project struct {
	ID          string        `json:"id"`
	Name        string        `json:"name"`
	Description string        `json:"description"`
	TechStack   []string      `json:"techStack"`
	Impact      string        `json:"impact,omitempty"`
	Metrics     string        `json:"metrics,omitempty"`
	Links       *ProjectLinks `json:"links,omitempty"`
	Featured    bool          `json:"featured"`
}

// Skill is a named skill with a proficiency level.
type Skill struct {
	Name        string      `json:"name"`
	Proficiency Proficiency `json:"proficiency"`
}

// SkillCategory groups skills under a category name.
type SkillCategory struct {
	Category string  `json:"category"`
	Skills   []Skill `json:"skills"`
}

// Education is one education entry.
type Education struct {
	Institution string   `json:"institution"`
	Degree      string   `json:"degree"`
	Field       string   `json:"field"`
	Duration    string   `json:"duration"`
	Highlights  []string `json:"highlights"`
}

// Contact holds the subject's contact channels.
type Contact struct {
	Email     string `json:"email"`
	GitHub    string `json:"github"`
	LinkedIn  string `json:"linkedin"`
	Portfolio string `json:"portfolio"`
}

// Recommendation is an endorsement from a colleague.
type Recommendation struct {
	ID       string `json:"id"`
	Author   string `json:"author"`
	Role     string `json:"role"`
	Company  string `json:"company"`
	Text     string `json:"text"`
	LinkedIn string `json:"linkedIn,omitempty"`
}

// Record is the complete profile dataset. It is compiled in, loaded once,
// and never mutated afterwards; callers share a single read-only instance.
type Record struct {
	Overview        Overview         `json:"overview"`
	Experience      []Experience     `json:"experience"`
	Projects        []Project        `json:"projects"`
	Skills          []SkillCategory  `json:"skills"`
	Education       []Education      `json:"education"`
	Contact         Contact          `json:"contact"`
	Hobbies         []string         `json:"hobbies"`
	Recommendations []Recommendation `json:"recommendations"`
}
