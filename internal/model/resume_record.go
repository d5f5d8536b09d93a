package model

// ResumeRecord is the structured extraction of a resume. It is produced
// once by the resume analyzer and never mutated afterwards; a failed parse
// is replaced wholesale by FallbackResumeRecord.
type ResumeRecord struct {
	Name           string            `json:"name"`
	Email          string            `json:"email"`
	Phone          string            `json:"phone"`
	Location       string            `json:"location"`
	Summary        string            `json:"summary"`
	Skills         []string          `json:"skills"`
	Experience     []ExperienceEntry `json:"experience"`
	Education      []EducationEntry  `json:"education"`
	Certifications []string          `json:"certifications"`
	Achievements   []string          `json:"achievements"`
}

type ExperienceEntry struct {
	Title       string `json:"title"`
	Company     string `json:"company"`
	Duration    string `json:"duration"`
	Description string `json:"description"`
}

type EducationEntry struct {
	Degree      string `json:"degree"`
	Institution string `json:"institution"`
	Year        string `json:"year"`
}

// FallbackResumeRecord returns the static placeholder substituted when the
// model reply cannot be parsed. Always schema-valid, always renderable.
func FallbackResumeRecord() *ResumeRecord {
	return &ResumeRecord{
		Name:     "Unknown",
		Email:    "unknown@email.com",
		Phone:    "Unknown",
		Location: "Unknown",
		Summary:  "Professional with relevant experience",
		Skills:   []string{"Various skills"},
		Experience: []ExperienceEntry{
			{Title: "Professional", Company: "Various", Duration: "Recent", Description: "Relevant experience"},
		},
		Education: []EducationEntry{
			{Degree: "Relevant Degree", Institution: "University", Year: "Recent"},
		},
		Certifications: []string{},
		Achievements:   []string{},
	}
}
