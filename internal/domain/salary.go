package domain

import (
	"regexp"
	"strconv"
	"strings"
)

var reLeadingNumber = regexp.MustCompile(`\d[\d,]*(?:\.\d+)?`)

// SalaryValue returns the job's comparable salary figure: the explicit
// lower bound when the record carries numeric bounds, otherwise the leading
// numeric value extracted from the display string ("8-12 LPA" -> 8).
// Returns 0 when nothing parses.
func (j Job) SalaryValue() float64 {
	if j.SalaryMin > 0 {
		return j.SalaryMin
	}
	m := reLeadingNumber.FindString(j.Salary)
	if m == "" {
		return 0
	}
	v, err := strconv.ParseFloat(strings.ReplaceAll(m, ",", ""), 64)
	if err != nil {
		return 0
	}
	return v
}
