package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInterpret_ExactPatterns(t *testing.T) {
	in := NewInterpreter(nil)

	t.Run("title at company in location", func(t *testing.T) {
		got := in.Interpret("Senior Engineer at Acme in Bangalore")
		require.NotNil(t, got.Exact)
		assert.Equal(t, "Senior Engineer", got.Exact.JobTitle)
		assert.Equal(t, "Acme", got.Exact.Company)
		assert.Equal(t, "Bangalore", got.Exact.Location)
		assert.Equal(t, "Senior Engineer at Acme in Bangalore", got.Exact.Original)
	})

	t.Run("company in location", func(t *testing.T) {
		got := in.Interpret("Acme in Bangalore")
		require.NotNil(t, got.Exact)
		assert.Equal(t, "Acme", got.Exact.JobTitle)
		assert.Equal(t, "Acme", got.Exact.Company)
		assert.Equal(t, "Bangalore", got.Exact.Location)
	})

	t.Run("title at company", func(t *testing.T) {
		got := in.Interpret("Engineer at Google")
		require.NotNil(t, got.Exact)
		assert.Equal(t, "Engineer", got.Exact.JobTitle)
		assert.Equal(t, "Google", got.Exact.Company)
		assert.Equal(t, "Google", got.Exact.Location)
	})

	t.Run("indicator without structure goes broad", func(t *testing.T) {
		got := in.Interpret("position: designer")
		require.NotNil(t, got.Exact)
		assert.Equal(t, "position: designer", got.Exact.JobTitle)
		assert.Equal(t, "position: designer", got.Exact.Company)
		assert.Equal(t, "position: designer", got.Exact.Location)
	})

	t.Run("title word with in separator goes broad", func(t *testing.T) {
		// "developer" marks the left side as a title, and the
		// title/company pattern only accepts at or @.
		got := in.Interpret("developer in pune")
		require.NotNil(t, got.Exact)
		assert.Equal(t, "developer in pune", got.Exact.JobTitle)
	})
}

func TestInterpret_TermResolution(t *testing.T) {
	in := NewInterpreter(nil)

	t.Run("variant containment", func(t *testing.T) {
		got := in.Interpret("pythonista")
		require.Nil(t, got.Exact)
		assert.Equal(t, "python developer", got.Term)
	})

	t.Run("canonical term resolves to itself", func(t *testing.T) {
		got := in.Interpret("data scientist")
		require.Nil(t, got.Exact)
		assert.Equal(t, "data scientist", got.Term)
	})

	t.Run("abbreviation", func(t *testing.T) {
		got := in.Interpret("SWE")
		require.Nil(t, got.Exact)
		assert.Equal(t, "software engineer", got.Term)
	})

	t.Run("word level typo", func(t *testing.T) {
		got := in.Interpret("develper")
		require.Nil(t, got.Exact)
		assert.Equal(t, "software engineer", got.Term)
	})

	t.Run("unresolvable falls through literally", func(t *testing.T) {
		got := in.Interpret("  zzqqy  ")
		require.Nil(t, got.Exact)
		assert.Equal(t, "zzqqy", got.Term)
	})

	t.Run("empty input", func(t *testing.T) {
		got := in.Interpret("   ")
		assert.Nil(t, got.Exact)
		assert.Equal(t, "", got.Term)
	})
}
