package services

import (
	"context"
	"log/slog"
	"testing"

	"github.com/royalacademy/academy-go/internal/domain/entities/content"
	"github.com/royalacademy/academy-go/internal/infrastructure/caching/stores"
	"github.com/royalacademy/academy-go/internal/infrastructure/messaging"
	"github.com/royalacademy/academy-go/internal/infrastructure/observability/logging"
	"github.com/royalacademy/academy-go/internal/infrastructure/persistence/bucket"
	persistence "github.com/royalacademy/academy-go/internal/infrastructure/persistence/content"
	"github.com/stretchr/testify/require"
)

func newTestLogger(t *testing.T) *logging.ChanneledLogger {
	t.Helper()
	logger, err := logging.NewChanneledLogger(&logging.LoggerConfig{
		OutputToFile:    false,
		OutputToConsole: false,
		DefaultLevel:    slog.LevelError + 1,
		ChannelLevels:   map[logging.Channel]slog.Level{},
	})
	if err != nil {
		t.Fatalf("failed to create test logger: %v", err)
	}
	return logger
}

func newExamService(t *testing.T) *ExamService {
	t.Helper()
	logger := newTestLogger(t)
	repo := persistence.NewRepository(
		content.BucketExamRoutines,
		content.DefaultExamEntries,
		bucket.NewMemoryStore(),
		stores.NewCollectionStore(),
		messaging.NewBroadcaster(logger),
		nil,
		logger,
	)
	return NewExamService(repo)
}

func seedRoutine(t *testing.T, s *ExamService) {
	t.Helper()
	err := s.ReplaceAll(context.Background(), []content.ExamEntry{
		{ID: "r-april", Title: "Final exams begin", Date: "2026-04-02", Class: content.ClassAll, Kind: content.EntryExam},
		{ID: "r-class5", Title: "Class five mathematics", Date: "2026-03-10", Class: "5", Kind: content.EntryExam, Subject: "Mathematics"},
		{ID: "r-all", Title: "Model test", Date: "2026-03-12", Class: content.ClassAll, Kind: content.EntryExam},
		{ID: "r-holiday", Title: "Independence Day", Date: "2026-03-26", Class: content.ClassAll, Kind: content.EntryHoliday},
	})
	require.NoError(t, err)
}

func TestClassFilterIncludesAllEntries(t *testing.T) {
	s := newExamService(t)
	seedRoutine(t, s)

	// Class five sees its own entry plus everything tagged for all classes.
	entries, err := s.Filter(context.Background(), RoutineFilter{Class: "5", Month: 3, Year: 2026})
	require.NoError(t, err)
	require.Len(t, entries, 3)

	// Class seven has no entry of its own; only the all-class entries match.
	entries, err = s.Filter(context.Background(), RoutineFilter{Class: "7", Month: 3, Year: 2026})
	require.NoError(t, err)
	require.Len(t, entries, 2)
	for _, e := range entries {
		require.Equal(t, content.ClassAll, e.Class)
	}
}

func TestMonthFilterIsConjunctiveWithClass(t *testing.T) {
	s := newExamService(t)
	seedRoutine(t, s)

	entries, err := s.Filter(context.Background(), RoutineFilter{Class: "5", Month: 4, Year: 2026})
	require.NoError(t, err)
	require.Len(t, entries, 1)
	require.Equal(t, "r-april", entries[0].ID)
}

func TestFilterSortsAscendingByDate(t *testing.T) {
	s := newExamService(t)
	seedRoutine(t, s)

	entries, err := s.Filter(context.Background(), RoutineFilter{})
	require.NoError(t, err)
	require.Len(t, entries, 4)
	for i := 1; i < len(entries); i++ {
		require.LessOrEqual(t, entries[i-1].Date, entries[i].Date)
	}
}

func TestMonthGridFlagsAreIndependent(t *testing.T) {
	s := newExamService(t)
	err := s.ReplaceAll(context.Background(), []content.ExamEntry{
		{ID: "g-exam", Title: "English exam", Date: "2026-05-04", Class: content.ClassAll, Kind: content.EntryExam},
		{ID: "g-holiday", Title: "May Day", Date: "2026-05-04", Class: content.ClassAll, Kind: content.EntryHoliday},
		{ID: "g-exam2", Title: "Bangla exam", Date: "2026-05-06", Class: content.ClassAll, Kind: content.EntryExam},
	})
	require.NoError(t, err)

	grid, err := s.MonthGrid(context.Background(), 2026, 5, "")
	require.NoError(t, err)
	require.Len(t, grid, 2)

	require.Equal(t, "2026-05-04", grid[0].Date)
	require.True(t, grid[0].HasExam)
	require.True(t, grid[0].HasHoliday)
	require.Len(t, grid[0].Entries, 2)

	require.Equal(t, "2026-05-06", grid[1].Date)
	require.True(t, grid[1].HasExam)
	require.False(t, grid[1].HasHoliday)
}

func TestExamEntryValidation(t *testing.T) {
	s := newExamService(t)

	cases := []content.ExamEntry{
		{Title: "", Date: "2026-05-04", Class: "5", Kind: content.EntryExam},
		{Title: "Bad date", Date: "04-05-2026", Class: "5", Kind: content.EntryExam},
		{Title: "Bad class", Date: "2026-05-04", Class: "11", Kind: content.EntryExam},
		{Title: "Bad kind", Date: "2026-05-04", Class: "5", Kind: "festival"},
	}
	for _, entry := range cases {
		if _, err := s.Create(context.Background(), entry); err == nil {
			t.Errorf("invalid entry accepted: %+v", entry)
		}
	}
}
