package facet

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"jobmatch-engine/internal/domain"
)

func TestParseSalaryRange(t *testing.T) {
	t.Run("min-max", func(t *testing.T) {
		min, max, ok := parseSalaryRange("3-6", 100000)
		assert.True(t, ok)
		assert.Equal(t, 300000.0, min)
		assert.Equal(t, 600000.0, max)
	})

	t.Run("open ended", func(t *testing.T) {
		min, max, ok := parseSalaryRange("10+", 1)
		assert.True(t, ok)
		assert.Equal(t, 10.0, min)
		assert.Equal(t, math.MaxFloat64, max)
	})

	t.Run("whitespace tolerated", func(t *testing.T) {
		min, max, ok := parseSalaryRange(" 5 - 8 ", 1)
		assert.True(t, ok)
		assert.Equal(t, 5.0, min)
		assert.Equal(t, 8.0, max)
	})

	t.Run("zero scale defaults to one", func(t *testing.T) {
		min, _, ok := parseSalaryRange("5-8", 0)
		assert.True(t, ok)
		assert.Equal(t, 5.0, min)
	})

	t.Run("unparsable", func(t *testing.T) {
		for _, s := range []string{"", "competitive", "5", "a-b", "5-b", "x+"} {
			_, _, ok := parseSalaryRange(s, 1)
			assert.False(t, ok, "input %q", s)
		}
	})
}

func TestSalaryMatches(t *testing.T) {
	t.Run("range intersection", func(t *testing.T) {
		j := domain.Job{SalaryMin: 400000, SalaryMax: 700000}
		assert.True(t, salaryMatches(500000, 600000, j))
		assert.True(t, salaryMatches(650000, 900000, j))
		assert.False(t, salaryMatches(800000, 900000, j))
		assert.False(t, salaryMatches(100000, 300000, j))
	})

	t.Run("display string fallback", func(t *testing.T) {
		j := domain.Job{Salary: "₹6,00,000 - ₹9,00,000 a year"}
		assert.True(t, salaryMatches(500000, 700000, j))
		assert.False(t, salaryMatches(700000, 800000, j))
	})

	t.Run("min only", func(t *testing.T) {
		j := domain.Job{SalaryMin: 500000}
		assert.True(t, salaryMatches(400000, 600000, j))
		assert.False(t, salaryMatches(600000, 900000, j))
	})
}
