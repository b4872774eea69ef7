package jobstore

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"jobmatch-engine/internal/domain"
)

// rawJob is the heterogeneous upstream shape. Fields arrive in several
// encodings (salary as string or object, skills as array or comma string,
// timestamps as RFC3339 or unix seconds); Resolve flattens them into
// domain.Job exactly once, at this boundary.
type rawJob struct {
	ID       json.RawMessage `json:"id"`
	Title    string          `json:"title"`
	Company  rawCompany      `json:"company"`
	Location string          `json:"location"`

	Experience string          `json:"experience"`
	Salary     json.RawMessage `json:"salary"`
	Skills     json.RawMessage `json:"skills"`

	JobType  string `json:"jobType"`
	WorkMode string `json:"workMode"`

	IndustryType  string `json:"industryType"`
	Department    string `json:"department"`
	RoleCategory  string `json:"roleCategory"`
	Category      string `json:"category"`
	RecruiterType string `json:"recruiterType"`

	Description string `json:"description"`

	PostedAt            json.RawMessage `json:"postedAt"`
	ValidTill           json.RawMessage `json:"validTill"`
	ApplicationDeadline json.RawMessage `json:"applicationDeadline"`

	ApplicantsCount int     `json:"applicantsCount"`
	Rating          float64 `json:"rating"`
	IsPreferred     bool    `json:"isPreferred"`
}

type rawCompany struct {
	ID          json.RawMessage `json:"id"`
	Name        string          `json:"name"`
	Industry    string          `json:"industry"`
	Industries  []string        `json:"industries"`
	CompanyType string          `json:"companyType"`
}

type rawSalary struct {
	Display string  `json:"display"`
	Min     float64 `json:"min"`
	Max     float64 `json:"max"`
}

// Resolve converts one upstream record into the engine's Job shape.
// Missing fields become empty/default values, never errors; only a record
// without any identity is rejected.
func Resolve(r rawJob) (domain.Job, error) {
	id := rawString(r.ID)
	if id == "" {
		return domain.Job{}, fmt.Errorf("job record has no id")
	}

	j := domain.Job{
		ID:              id,
		Title:           cleanText(r.Title),
		Location:        cleanText(r.Location),
		ExperienceLevel: cleanText(r.Experience),
		JobType:         cleanText(r.JobType),
		WorkMode:        cleanText(r.WorkMode),
		IndustryType:    cleanText(r.IndustryType),
		Department:      cleanText(r.Department),
		RoleCategory:    cleanText(r.RoleCategory),
		Category:        cleanText(r.Category),
		RecruiterType:   cleanText(r.RecruiterType),
		Description:     stripHTML(r.Description),
		ApplicantsCount: r.ApplicantsCount,
		Rating:          r.Rating,
		IsPreferred:     r.IsPreferred,
		Company: domain.Company{
			ID:          rawString(r.Company.ID),
			Name:        cleanText(r.Company.Name),
			Industry:    cleanText(r.Company.Industry),
			Industries:  r.Company.Industries,
			CompanyType: cleanText(r.Company.CompanyType),
		},
	}
	if j.ApplicantsCount < 0 {
		j.ApplicantsCount = 0
	}
	if j.Rating < 0 {
		j.Rating = 0
	}

	j.Salary, j.SalaryMin, j.SalaryMax = resolveSalary(r.Salary)
	j.Skills = resolveSkills(r.Skills)

	if t, ok := resolveTime(r.PostedAt); ok {
		j.PostedAt = t
	}
	if t, ok := resolveTime(r.ValidTill); ok {
		j.ValidTill = &t
	}
	if t, ok := resolveTime(r.ApplicationDeadline); ok {
		j.ApplicationDeadline = &t
	}
	return j, nil
}

// rawString accepts string or numeric JSON ids.
func rawString(m json.RawMessage) string {
	if len(m) == 0 {
		return ""
	}
	var s string
	if err := json.Unmarshal(m, &s); err == nil {
		return strings.TrimSpace(s)
	}
	var n json.Number
	if err := json.Unmarshal(m, &n); err == nil {
		return n.String()
	}
	return ""
}

func resolveSalary(m json.RawMessage) (display string, min, max float64) {
	if len(m) == 0 {
		return "", 0, 0
	}
	var s string
	if err := json.Unmarshal(m, &s); err == nil {
		return cleanText(s), 0, 0
	}
	var obj rawSalary
	if err := json.Unmarshal(m, &obj); err == nil {
		return cleanText(obj.Display), obj.Min, obj.Max
	}
	return "", 0, 0
}

func resolveSkills(m json.RawMessage) []string {
	if len(m) == 0 {
		return nil
	}
	var list []string
	if err := json.Unmarshal(m, &list); err == nil {
		out := make([]string, 0, len(list))
		for _, s := range list {
			if s = cleanText(s); s != "" {
				out = append(out, s)
			}
		}
		return out
	}
	var csv string
	if err := json.Unmarshal(m, &csv); err == nil {
		var out []string
		for _, s := range strings.Split(csv, ",") {
			if s = cleanText(s); s != "" {
				out = append(out, s)
			}
		}
		return out
	}
	return nil
}

func resolveTime(m json.RawMessage) (time.Time, bool) {
	if len(m) == 0 || string(m) == "null" {
		return time.Time{}, false
	}
	var s string
	if err := json.Unmarshal(m, &s); err == nil {
		if s == "" {
			return time.Time{}, false
		}
		for _, layout := range []string{time.RFC3339, "2006-01-02 15:04:05", "2006-01-02"} {
			if t, err := time.Parse(layout, s); err == nil {
				return t, true
			}
		}
		return time.Time{}, false
	}
	var unix int64
	if err := json.Unmarshal(m, &unix); err == nil && unix > 0 {
		return time.Unix(unix, 0).UTC(), true
	}
	return time.Time{}, false
}

// stripHTML flattens upstream HTML descriptions to text; the core
// substring-searches descriptions and must not see markup.
func stripHTML(s string) string {
	if !strings.Contains(s, "<") {
		return cleanText(s)
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(s))
	if err != nil {
		return cleanText(s)
	}
	return cleanText(doc.Text())
}

func cleanText(s string) string {
	s = strings.ReplaceAll(s, " ", " ")
	return strings.Join(strings.Fields(s), " ")
}
