package content

// Default seed collections, written back on the first load of an empty
// bucket. IDs are fixed strings so that two concurrent first-loads seed
// identical content (the seed race is content-idempotent).

// DefaultDepartments returns the fixed default department collection.
func DefaultDepartments() []Department {
	return []Department{
		{
			ID:          "seed-dept-science",
			Icon:        "beaker",
			Title:       "Science",
			Description: "Physics, Chemistry and Biology with full laboratory support from class six upward.",
			Programs:    []string{"Physics", "Chemistry", "Biology", "Higher Mathematics"},
			Gradient:    "from-blue-500 to-cyan-500",
		},
		{
			ID:          "seed-dept-humanities",
			Icon:        "globe",
			Title:       "Humanities",
			Description: "History, geography, civics and economics for a grounded view of society.",
			Programs:    []string{"History", "Geography", "Civics", "Economics"},
			Gradient:    "from-amber-500 to-orange-500",
		},
		{
			ID:          "seed-dept-commerce",
			Icon:        "calculator",
			Title:       "Business Studies",
			Description: "Accounting, finance and business entrepreneurship streams for classes nine and ten.",
			Programs:    []string{"Accounting", "Finance & Banking", "Business Entrepreneurship"},
			Gradient:    "from-emerald-500 to-teal-500",
		},
	}
}

// DefaultAchievements returns the fixed default achievement collection.
func DefaultAchievements() []Achievement {
	return []Achievement{
		{
			ID:          "seed-achv-results",
			Icon:        "trophy",
			Title:       "Board Results",
			Description: "Consistent first-division results in national board examinations.",
			StatValue:   "98%",
			StatLabel:   "Pass rate",
		},
		{
			ID:          "seed-achv-scholarships",
			Icon:        "award",
			Title:       "Scholarships",
			Description: "Government scholarship recipients across junior and secondary levels.",
			StatValue:   "40+",
			StatLabel:   "Scholars",
		},
	}
}

// DefaultEventCategories returns the fixed default event category collection.
func DefaultEventCategories() []EventCategory {
	return []EventCategory{
		{ID: "seed-evcat-academic", Name: "Academic", Color: "blue"},
		{ID: "seed-evcat-cultural", Name: "Cultural", Color: "purple"},
		{ID: "seed-evcat-sports", Name: "Sports", Color: "green"},
	}
}

// DefaultEvents returns the fixed default event collection.
func DefaultEvents() []Event {
	return []Event{
		{
			ID:          "seed-event-annual-sports",
			Title:       "Annual Sports Day",
			Description: "Track and field events for every class, with guardians invited.",
			Content:     "The annual sports day opens with the march-past at 9am, followed by track events, field events and the prize-giving ceremony in the afternoon.",
			Category:    "Sports",
			Date:        "2025-02-15",
			Time:        "09:00",
			Location:    "School playground",
			Attendees:   0,
			Published:   true,
		},
		{
			ID:          "seed-event-science-fair",
			Title:       "Science Fair",
			Description: "Student projects from classes six to ten on display in the main hall.",
			Content:     "Projects are judged in junior and senior divisions. Setup begins the evening before; judging starts at 10am.",
			Category:    "Academic",
			Date:        "2025-03-10",
			Time:        "10:00",
			Location:    "Main hall",
			Attendees:   0,
			Published:   true,
		},
	}
}

// DefaultFacilities returns the fixed default facility collection.
func DefaultFacilities() []Facility {
	return []Facility{
		{
			ID:          "seed-fac-library",
			Icon:        "library",
			Title:       "Library",
			Description: "A reading room and lending library of over eight thousand titles.",
			Features:    []string{"Reading room", "Reference section", "Daily newspapers"},
		},
		{
			ID:          "seed-fac-lab",
			Icon:        "microscope",
			Title:       "Science Laboratories",
			Description: "Separate physics, chemistry and biology laboratories.",
			Features:    []string{"Physics lab", "Chemistry lab", "Biology lab"},
		},
		{
			ID:          "seed-fac-computer",
			Icon:        "computer",
			Title:       "Computer Lab",
			Description: "Thirty workstations with supervised internet access.",
			Features:    []string{"30 workstations", "Broadband", "Printing"},
		},
	}
}

// DefaultGalleryCategories returns the fixed default gallery category collection.
func DefaultGalleryCategories() []GalleryCategory {
	return []GalleryCategory{
		{ID: "seed-galcat-campus", Name: "Campus"},
		{ID: "seed-galcat-events", Name: "Events"},
		{ID: "seed-galcat-classroom", Name: "Classroom"},
	}
}

// DefaultGalleryImages returns the fixed default gallery collection.
// Seed entries reference bundled static assets rather than inline data.
func DefaultGalleryImages() []GalleryImage {
	return []GalleryImage{
		{
			ID:       "seed-gal-front",
			Title:    "Main building",
			Category: "Campus",
			Image:    "/static/gallery/main-building.jpg",
			Caption:  "The academy's main building at morning assembly.",
		},
	}
}

// DefaultExamEntries returns the fixed default exam routine collection.
func DefaultExamEntries() []ExamEntry {
	return []ExamEntry{
		{
			ID:    "seed-exam-halfyearly",
			Title: "Half-yearly examinations begin",
			Date:  "2025-06-01",
			Class: ClassAll,
			Kind:  EntryExam,
		},
		{
			ID:    "seed-exam-summer",
			Title: "Summer vacation",
			Date:  "2025-06-20",
			Class: ClassAll,
			Kind:  EntryHoliday,
		},
	}
}

// DefaultAcademicYears returns the fixed default academic year collection.
func DefaultAcademicYears() []AcademicYear {
	return []AcademicYear{
		{ID: "seed-year-2024", Year: "2024-2025", Label: "2024-2025 session"},
		{ID: "seed-year-2025", Year: "2025-2026", Label: "2025-2026 session"},
	}
}

// DefaultYearlyBooks returns the fixed default yearly book collection.
func DefaultYearlyBooks() []YearlyBook {
	return []YearlyBook{
		{
			ID:    "seed-book-class5-math",
			Year:  "2024-2025",
			Class: "5",
			Title: "Elementary Mathematics",
			URL:   "https://nctb.gov.bd/books/class5-mathematics.pdf",
		},
	}
}

// DefaultBrandConfig returns the fixed default branding object.
func DefaultBrandConfig() BrandConfig {
	return BrandConfig{
		SchoolName:   "Royal Academy",
		Tagline:      "Excellence in education since 1985",
		PrimaryColor: "#1d4ed8",
		ContactEmail: "office@royalacademy.edu.bd",
	}
}
