// Package validation provides the domain field checks that gate draft
// commits: required fields, academic-year ranges, URLs and calendar dates.
package validation

import (
	"fmt"
	"net/url"
	"regexp"
	"strconv"
	"time"
)

var academicYearPattern = regexp.MustCompile(`^(\d{4})-(\d{4})$`)

// Required returns an error when value is empty.
func Required(field, value string) error {
	if value == "" {
		return fmt.Errorf("%s is required", field)
	}
	return nil
}

// AcademicYear accepts "YYYY-YYYY" where the end year is exactly the start
// year plus one ("2024-2025" passes, "2024-2026" and "2024" do not).
func AcademicYear(year string) error {
	m := academicYearPattern.FindStringSubmatch(year)
	if m == nil {
		return fmt.Errorf("academic year %q must match YYYY-YYYY", year)
	}

	start, _ := strconv.Atoi(m[1])
	end, _ := strconv.Atoi(m[2])
	if end != start+1 {
		return fmt.Errorf("academic year %q must end the year after it starts", year)
	}
	return nil
}

// URL accepts absolute http(s) URLs only.
func URL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("invalid URL %q: %w", raw, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("URL %q must be absolute http or https", raw)
	}
	if u.Host == "" {
		return fmt.Errorf("URL %q missing host", raw)
	}
	return nil
}

// Date parses a calendar date in YYYY-MM-DD form.
func Date(raw string) (time.Time, error) {
	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("date %q must match YYYY-MM-DD", raw)
	}
	return t, nil
}

// SchoolClass accepts "All" or a class number "1".."10".
func SchoolClass(class string) error {
	if class == "All" {
		return nil
	}
	n, err := strconv.Atoi(class)
	if err != nil || n < 1 || n > 10 {
		return fmt.Errorf("class %q must be \"All\" or 1-10", class)
	}
	return nil
}
