package domain

import "time"

type Company struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Industry    string   `json:"industry"`
	Industries  []string `json:"industries,omitempty"`
	CompanyType string   `json:"companyType"`
}

// Job is the single resolved shape every posting takes inside the engine.
// Upstream records arrive with heterogeneous/optional fields; the jobstore
// adapter resolves them once at the boundary, never the core.
type Job struct {
	ID              string  `json:"id"`
	Title           string  `json:"title"`
	Company         Company `json:"company"`
	Location        string  `json:"location"`
	ExperienceLevel string  `json:"experienceLevel"`

	// Salary is the display string ("8-12 LPA", "$120k+"). The numeric
	// bounds are set when the upstream record carries them; zero means
	// unknown, not free.
	Salary    string  `json:"salary"`
	SalaryMin float64 `json:"salaryMin,omitempty"`
	SalaryMax float64 `json:"salaryMax,omitempty"`

	Skills   []string `json:"skills,omitempty"`
	JobType  string   `json:"jobType"`
	WorkMode string   `json:"workMode"`

	// Category fields may be absent. Absence (empty or "n/a") is distinct
	// from a non-matching value and triggers fallback sourcing.
	IndustryType string `json:"industryType,omitempty"`
	Department   string `json:"department,omitempty"`
	RoleCategory string `json:"roleCategory,omitempty"`
	Category     string `json:"category,omitempty"`

	Description   string `json:"description"`
	RecruiterType string `json:"recruiterType,omitempty"`

	PostedAt        time.Time `json:"postedAt"`
	ApplicantsCount int       `json:"applicantsCount"`
	Rating          float64   `json:"rating"`

	ValidTill           *time.Time `json:"validTill,omitempty"`
	ApplicationDeadline *time.Time `json:"applicationDeadline,omitempty"`

	// Set externally by the recommendation collaborator.
	IsPreferred bool `json:"isPreferred"`
}
