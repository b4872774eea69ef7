package config

import (
	"fmt"
	"net/url"
	"strings"
)

type Validation struct {
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings"`
}

func (v *Validation) addErr(format string, args ...any) {
	v.Errors = append(v.Errors, fmt.Sprintf(format, args...))
}
func (v *Validation) addWarn(format string, args ...any) {
	v.Warnings = append(v.Warnings, fmt.Sprintf(format, args...))
}
func (v Validation) OK() bool { return len(v.Errors) == 0 }

var validSorts = map[string]bool{
	"recent": true, "salary": true, "applicants": true, "rating": true,
}

// NormalizeAndValidate returns a normalized copy plus everything a UI
// should surface before saving.
func NormalizeAndValidate(cfg Config) (Config, Validation) {
	out := cfg
	var res Validation

	out.Upstream.BaseURL = strings.TrimRight(strings.TrimSpace(out.Upstream.BaseURL), "/")
	out.Search.DefaultSort = strings.ToLower(strings.TrimSpace(out.Search.DefaultSort))

	if out.App.Port <= 0 || out.App.Port > 65535 {
		res.addErr("app.port must be 1..65535")
	}

	if out.Upstream.BaseURL == "" {
		res.addErr("upstream.base_url is required")
	} else if u, err := url.Parse(out.Upstream.BaseURL); err != nil || u.Scheme == "" || u.Host == "" {
		res.addErr("upstream.base_url is not a valid URL: %q", out.Upstream.BaseURL)
	}

	if out.Upstream.PageSize <= 0 {
		out.Upstream.PageSize = 100
	} else if out.Upstream.PageSize > 500 {
		res.addWarn("upstream.page_size is very high (%d); upstream may reject it.", out.Upstream.PageSize)
	}

	if out.Upstream.ReqPerSec <= 0 {
		out.Upstream.ReqPerSec = 1
	}
	if out.Upstream.Burst <= 0 {
		out.Upstream.Burst = 1
	}

	if out.Upstream.RefreshSeconds <= 0 {
		res.addErr("upstream.refresh_seconds must be > 0")
	} else if out.Upstream.RefreshSeconds < 30 {
		res.addWarn("upstream.refresh_seconds is very low (%d) and may cause rate limits.", out.Upstream.RefreshSeconds)
	}

	if out.Search.DefaultSort == "" {
		out.Search.DefaultSort = "recent"
	} else if !validSorts[out.Search.DefaultSort] {
		res.addErr("search.default_sort must be one of recent|salary|applicants|rating, got %q", out.Search.DefaultSort)
	}

	if out.Search.SalaryScale < 0 {
		res.addErr("search.salary_scale must be >= 0")
	}
	if out.Search.SalaryScale == 0 {
		out.Search.SalaryScale = 1
	}

	return out, res
}
