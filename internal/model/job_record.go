package model

// JobRecord is the structured extraction of a job posting. Same lifecycle
// as ResumeRecord: built once, replaced by the fallback on parse failure.
type JobRecord struct {
	CompanyName            string   `json:"company_name"`
	JobTitle               string   `json:"job_title"`
	RequiredSkills         []string `json:"required_skills"`
	PreferredSkills        []string `json:"preferred_skills"`
	ExperienceRequirements string   `json:"experience_requirements"`
	EducationRequirements  string   `json:"education_requirements"`
	KeyResponsibilities    []string `json:"key_responsibilities"`
	CompanyCulture         string   `json:"company_culture"`
	Benefits               []string `json:"benefits"`
	Location               string   `json:"location"`
	EmploymentType         string   `json:"employment_type"`
}

func FallbackJobRecord() *JobRecord {
	return &JobRecord{
		CompanyName:            "Target Company",
		JobTitle:               "Position",
		RequiredSkills:         []string{"Relevant skills"},
		PreferredSkills:        []string{},
		ExperienceRequirements: "Relevant experience",
		EducationRequirements:  "Relevant education",
		KeyResponsibilities:    []string{"Key responsibilities"},
		CompanyCulture:         "Professional environment",
		Benefits:               []string{},
		Location:               "Location",
		EmploymentType:         "Full-time",
	}
}
