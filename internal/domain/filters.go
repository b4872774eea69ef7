package domain

import "strings"

// FilterState carries every facet the UI can set. Empty string or empty
// set means the facet is inactive; the Active* predicates below are the
// only emptiness checks the engine uses.
type FilterState struct {
	Search               string   `json:"search"`
	Location             string   `json:"location"`
	ExperienceLevels     []string `json:"experienceLevels,omitempty"`
	JobTypes             []string `json:"jobTypes,omitempty"`
	SalaryRange          string   `json:"salaryRange"` // "min-max" or "min+"
	IndustryCategories   []string `json:"industryCategories,omitempty"`
	DepartmentCategories []string `json:"departmentCategories,omitempty"`
	RoleCategories       []string `json:"roleCategories,omitempty"`
	Skills               string   `json:"skills"` // comma-joined
	CompanyType          string   `json:"companyType"`
	WorkMode             string   `json:"workMode"`
	Education            string   `json:"education"`
	CompanyName          string   `json:"companyName"`
	JobTitle             string   `json:"jobTitle"` // exact-match hint
	RecruiterType        string   `json:"recruiterType"`
}

func ActiveString(s string) bool { return strings.TrimSpace(s) != "" }

func ActiveSet(xs []string) bool {
	for _, x := range xs {
		if strings.TrimSpace(x) != "" {
			return true
		}
	}
	return false
}

// HasCategoryFacet reports whether any of the three category facets
// (industry, department, role) has a selected value.
func (f FilterState) HasCategoryFacet() bool {
	return ActiveSet(f.IndustryCategories) || ActiveSet(f.DepartmentCategories) || ActiveSet(f.RoleCategories)
}

// HasActiveFilters reports whether any facet, search included, is set.
// The ranking layer uses this to decide on the preferred-job boost.
func (f FilterState) HasActiveFilters() bool {
	return ActiveString(f.Search) ||
		ActiveString(f.Location) ||
		ActiveSet(f.ExperienceLevels) ||
		ActiveSet(f.JobTypes) ||
		ActiveString(f.SalaryRange) ||
		f.HasCategoryFacet() ||
		ActiveString(f.Skills) ||
		ActiveString(f.CompanyType) ||
		ActiveString(f.WorkMode) ||
		ActiveString(f.Education) ||
		ActiveString(f.CompanyName) ||
		ActiveString(f.JobTitle) ||
		ActiveString(f.RecruiterType)
}
