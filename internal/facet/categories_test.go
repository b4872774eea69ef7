package facet

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"jobmatch-engine/internal/domain"
)

func TestNormalizeCategory(t *testing.T) {
	cases := map[string]string{
		"IT (2378)":       "it",
		"  Sales (5) ":    "sales",
		"Human Resources": "human resources",
		"n/a":             "",
		"NA":              "",
		"-":               "",
		"none":            "",
		"":                "",
		"Media (12) ":     "media",
	}
	for in, want := range cases {
		assert.Equal(t, want, normalizeCategory(in), "input %q", in)
	}
}

func TestCategoryValueMatches(t *testing.T) {
	t.Run("equality", func(t *testing.T) {
		assert.True(t, categoryValueMatches("sales", "sales"))
	})
	t.Run("containment needs length", func(t *testing.T) {
		assert.True(t, categoryValueMatches("marketing", "digital marketing"))
		// Two-letter values must not match by containment.
		assert.False(t, categoryValueMatches("it", "recruitment"))
	})
	t.Run("first significant word", func(t *testing.T) {
		assert.True(t, categoryValueMatches("software services", "software products"))
		assert.False(t, categoryValueMatches("software services", "hardware products"))
	})
}

func TestCategoryMatches_AbbreviationGroup(t *testing.T) {
	e := NewEngine(nil)

	jobs := []domain.Job{
		{ID: "a", IndustryType: "Information Technology", JobType: "x"},
		{ID: "b", IndustryType: "Hospitality", JobType: "x"},
	}
	got := e.FilterJobs(jobs, domain.FilterState{IndustryCategories: []string{"IT"}})
	assert.Equal(t, []string{"a"}, ids(got))
}

func TestCategoryMatches_FallbackSources(t *testing.T) {
	e := NewEngine(nil)

	t.Run("company industries", func(t *testing.T) {
		j := domain.Job{ID: "co", Company: domain.Company{Industries: []string{"Pharma", "Healthcare"}}}
		got := e.FilterJobs([]domain.Job{j}, domain.FilterState{IndustryCategories: []string{"healthcare"}})
		assert.Equal(t, []string{"co"}, ids(got))
	})

	t.Run("absent marker falls through", func(t *testing.T) {
		j := domain.Job{ID: "co", IndustryType: "n/a", Category: "Education"}
		got := e.FilterJobs([]domain.Job{j}, domain.FilterState{IndustryCategories: []string{"education"}})
		assert.Equal(t, []string{"co"}, ids(got))
	})

	t.Run("populated field is authoritative", func(t *testing.T) {
		// When the job's own field is set, fallbacks are not consulted.
		j := domain.Job{ID: "co", IndustryType: "Construction", Category: "Education"}
		got := e.FilterJobs([]domain.Job{j}, domain.FilterState{IndustryCategories: []string{"education"}})
		assert.Empty(t, ids(got))
	})
}
