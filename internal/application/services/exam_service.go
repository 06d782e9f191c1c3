package services

import (
	"context"
	"sort"

	"github.com/royalacademy/academy-go/internal/domain/collection"
	"github.com/royalacademy/academy-go/internal/domain/entities/content"
	"github.com/royalacademy/academy-go/internal/domain/validation"
	persistence "github.com/royalacademy/academy-go/internal/infrastructure/persistence/content"
)

// RoutineFilter narrows the exam routine. Zero values mean "no filter"; when
// both class and month are set they apply conjunctively.
type RoutineFilter struct {
	Class string // "" or "All" matches every entry
	Month int    // 1..12, requires Year
	Year  int
}

// DaySummary is one calendar day of the routine. The exam and holiday flags
// are independent: a date carrying both kinds of entry sets both.
type DaySummary struct {
	Date       string              `json:"date"`
	HasExam    bool                `json:"hasExam"`
	HasHoliday bool                `json:"hasHoliday"`
	Entries    []content.ExamEntry `json:"entries"`
}

// ExamService owns the exam routine collection and its calendar views.
type ExamService struct {
	*CollectionService[content.ExamEntry]
}

// NewExamService builds the exam routine service.
func NewExamService(repo *persistence.Repository[content.ExamEntry]) *ExamService {
	validate := func(e content.ExamEntry) error {
		if err := validation.Required("title", e.Title); err != nil {
			return &collection.ValidationError{Field: "title", Reason: "is required"}
		}
		if _, err := validation.Date(e.Date); err != nil {
			return &collection.ValidationError{Field: "date", Reason: err.Error()}
		}
		if err := validation.SchoolClass(e.Class); err != nil {
			return &collection.ValidationError{Field: "class", Reason: err.Error()}
		}
		if e.Kind != content.EntryExam && e.Kind != content.EntryHoliday {
			return &collection.ValidationError{Field: "kind", Reason: "must be exam or holiday"}
		}
		return nil
	}
	withID := func(e content.ExamEntry, id string) content.ExamEntry {
		e.ID = id
		return e
	}
	return &ExamService{NewCollectionService(repo, validate, withID, nil, nil)}
}

// Filter returns the routine entries matching filter, sorted ascending by
// date. Entries sharing a date keep their stored order.
func (s *ExamService) Filter(ctx context.Context, filter RoutineFilter) ([]content.ExamEntry, error) {
	entries, err := s.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	matched := make([]content.ExamEntry, 0, len(entries))
	for _, e := range entries {
		if matchesClass(e, filter.Class) && matchesMonth(e, filter.Month, filter.Year) {
			matched = append(matched, e)
		}
	}

	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].Date < matched[j].Date
	})
	return matched, nil
}

// MonthGrid partitions one calendar month of the routine into day summaries,
// ascending by date. Days with no entries are omitted.
func (s *ExamService) MonthGrid(ctx context.Context, year, month int, class string) ([]DaySummary, error) {
	entries, err := s.Filter(ctx, RoutineFilter{Class: class, Month: month, Year: year})
	if err != nil {
		return nil, err
	}

	var grid []DaySummary
	for _, e := range entries {
		if len(grid) == 0 || grid[len(grid)-1].Date != e.Date {
			grid = append(grid, DaySummary{Date: e.Date})
		}
		day := &grid[len(grid)-1]
		day.Entries = append(day.Entries, e)
		switch e.Kind {
		case content.EntryExam:
			day.HasExam = true
		case content.EntryHoliday:
			day.HasHoliday = true
		}
	}
	return grid, nil
}

// matchesClass applies the class filter: an entry tagged ClassAll reaches
// every class, and an empty or "All" filter matches every entry.
func matchesClass(e content.ExamEntry, class string) bool {
	if class == "" || class == content.ClassAll {
		return true
	}
	return e.Class == class || e.Class == content.ClassAll
}

func matchesMonth(e content.ExamEntry, month, year int) bool {
	if month == 0 {
		return true
	}
	t, err := validation.Date(e.Date)
	if err != nil {
		return false
	}
	return int(t.Month()) == month && t.Year() == year
}
