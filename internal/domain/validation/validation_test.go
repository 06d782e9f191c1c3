package validation

import "testing"

func TestAcademicYear(t *testing.T) {
	valid := []string{"2024-2025", "1999-2000"}
	for _, year := range valid {
		if err := AcademicYear(year); err != nil {
			t.Errorf("AcademicYear(%q) = %v, want nil", year, err)
		}
	}

	invalid := []string{"", "2024", "2024-2026", "2025-2024", "24-25", "2024/2025"}
	for _, year := range invalid {
		if err := AcademicYear(year); err == nil {
			t.Errorf("AcademicYear(%q) accepted", year)
		}
	}
}

func TestURL(t *testing.T) {
	if err := URL("https://books.example.com/class-5.pdf"); err != nil {
		t.Errorf("valid URL rejected: %v", err)
	}
	if err := URL("http://example.com"); err != nil {
		t.Errorf("valid URL rejected: %v", err)
	}

	invalid := []string{"", "books/class-5.pdf", "ftp://example.com/x", "https://"}
	for _, raw := range invalid {
		if err := URL(raw); err == nil {
			t.Errorf("URL(%q) accepted", raw)
		}
	}
}

func TestDate(t *testing.T) {
	d, err := Date("2026-03-15")
	if err != nil {
		t.Fatal(err)
	}
	if d.Year() != 2026 || int(d.Month()) != 3 || d.Day() != 15 {
		t.Errorf("parsed wrong date: %v", d)
	}

	invalid := []string{"", "15-03-2026", "2026-13-01", "2026-02-30", "yesterday"}
	for _, raw := range invalid {
		if _, err := Date(raw); err == nil {
			t.Errorf("Date(%q) accepted", raw)
		}
	}
}

func TestSchoolClass(t *testing.T) {
	valid := []string{"All", "1", "5", "10"}
	for _, class := range valid {
		if err := SchoolClass(class); err != nil {
			t.Errorf("SchoolClass(%q) = %v, want nil", class, err)
		}
	}

	invalid := []string{"", "0", "11", "all", "Five"}
	for _, class := range invalid {
		if err := SchoolClass(class); err == nil {
			t.Errorf("SchoolClass(%q) accepted", class)
		}
	}
}
