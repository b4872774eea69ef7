package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSimilarity_Identity(t *testing.T) {
	for _, s := range []string{"", "a", "python", "senior software engineer", "données"} {
		assert.Equal(t, 1.0, Similarity(s, s), "similarity(%q, %q)", s, s)
	}
}

func TestSimilarity_Symmetry(t *testing.T) {
	pairs := [][2]string{
		{"python", "pyton"},
		{"developer", "devloper"},
		{"", "abc"},
		{"kitten", "sitting"},
	}
	for _, p := range pairs {
		assert.Equal(t, Similarity(p[0], p[1]), Similarity(p[1], p[0]), "pair %v", p)
	}
}

func TestSimilarity_Bounds(t *testing.T) {
	pairs := [][2]string{
		{"", ""},
		{"a", ""},
		{"abc", "xyz"},
		{"python developer", "java developer"},
		{"x", "a very much longer string"},
	}
	for _, p := range pairs {
		v := Similarity(p[0], p[1])
		assert.GreaterOrEqual(t, v, 0.0, "pair %v", p)
		assert.LessOrEqual(t, v, 1.0, "pair %v", p)
	}
}

func TestSimilarity_KnownValues(t *testing.T) {
	// kitten -> sitting is the classic distance-3 example
	assert.InDelta(t, (7.0-3.0)/7.0, Similarity("kitten", "sitting"), 1e-9)

	// one deletion out of 6
	assert.InDelta(t, 5.0/6.0, Similarity("python", "pyton"), 1e-9)

	// totally different strings of equal length
	assert.Equal(t, 0.0, Similarity("abc", "xyz"))

	// empty vs non-empty
	assert.Equal(t, 0.0, Similarity("", "abc"))
}
