package jobstore

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustRaw(t *testing.T, src string) rawJob {
	t.Helper()
	var r rawJob
	require.NoError(t, json.Unmarshal([]byte(src), &r))
	return r
}

func TestResolve_FullRecord(t *testing.T) {
	r := mustRaw(t, `{
		"id": "j-100",
		"title": "  Data   Engineer ",
		"company": {"id": 42, "name": "Northwind", "industry": "Retail", "industries": ["Retail", "E-commerce"], "companyType": "MNC"},
		"location": "Chennai",
		"experience": "2-4 years",
		"salary": {"display": "8-12 LPA", "min": 800000, "max": 1200000},
		"skills": ["Spark", " SQL ", ""],
		"jobType": "Full-time",
		"workMode": "Hybrid",
		"industryType": "IT",
		"department": "Data",
		"roleCategory": "Data Engineering",
		"description": "<p>Build <b>pipelines</b>.</p>",
		"postedAt": "2026-08-10T09:00:00Z",
		"validTill": "2026-09-10",
		"applicantsCount": 17,
		"rating": 4.2,
		"isPreferred": true
	}`)

	j, err := Resolve(r)
	require.NoError(t, err)

	assert.Equal(t, "j-100", j.ID)
	assert.Equal(t, "Data Engineer", j.Title)
	assert.Equal(t, "42", j.Company.ID)
	assert.Equal(t, "Northwind", j.Company.Name)
	assert.Equal(t, []string{"Retail", "E-commerce"}, j.Company.Industries)
	assert.Equal(t, "8-12 LPA", j.Salary)
	assert.Equal(t, 800000.0, j.SalaryMin)
	assert.Equal(t, 1200000.0, j.SalaryMax)
	assert.Equal(t, []string{"Spark", "SQL"}, j.Skills)
	assert.Equal(t, "Build pipelines.", j.Description)
	assert.Equal(t, "2026-08-10T09:00:00Z", j.PostedAt.Format("2006-01-02T15:04:05Z07:00"))
	require.NotNil(t, j.ValidTill)
	assert.Equal(t, "2026-09-10", j.ValidTill.Format("2006-01-02"))
	assert.Nil(t, j.ApplicationDeadline)
	assert.True(t, j.IsPreferred)
}

func TestResolve_AlternateEncodings(t *testing.T) {
	r := mustRaw(t, `{
		"id": 7,
		"title": "QA Engineer",
		"salary": "Not disclosed",
		"skills": "selenium, cypress , ",
		"postedAt": 1767225600
	}`)

	j, err := Resolve(r)
	require.NoError(t, err)

	assert.Equal(t, "7", j.ID)
	assert.Equal(t, "Not disclosed", j.Salary)
	assert.Zero(t, j.SalaryMin)
	assert.Equal(t, []string{"selenium", "cypress"}, j.Skills)
	assert.Equal(t, int64(1767225600), j.PostedAt.Unix())
}

func TestResolve_MissingID(t *testing.T) {
	_, err := Resolve(mustRaw(t, `{"title": "Ghost"}`))
	assert.Error(t, err)
}

func TestResolve_NegativeCountsClamped(t *testing.T) {
	j, err := Resolve(mustRaw(t, `{"id": "x", "applicantsCount": -3, "rating": -1}`))
	require.NoError(t, err)
	assert.Zero(t, j.ApplicantsCount)
	assert.Zero(t, j.Rating)
}

func TestResolve_NullTimestamps(t *testing.T) {
	j, err := Resolve(mustRaw(t, `{"id": "x", "validTill": null, "applicationDeadline": null}`))
	require.NoError(t, err)
	assert.Nil(t, j.ValidTill)
	assert.Nil(t, j.ApplicationDeadline)
	assert.True(t, j.PostedAt.IsZero())
}

func TestStripHTML(t *testing.T) {
	assert.Equal(t, "Plain text stays.", stripHTML("Plain text stays."))
	assert.Equal(t, "Role Own the roadmap.",
		stripHTML("<div><h3>Role</h3> <p>Own&nbsp;the roadmap.</p></div>"))
}

func TestCleanText(t *testing.T) {
	assert.Equal(t, "a b c", cleanText("  a  b\n\tc "))
	assert.Equal(t, "", cleanText("   "))
}
