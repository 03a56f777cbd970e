package store

import (
	"testing"
	"time"

	"github.com/akyairhashvil/coachtrack/internal/models"
	"github.com/akyairhashvil/coachtrack/internal/testutil"
)

var statsNow = time.Date(2026, time.March, 15, 13, 30, 0, 0, time.UTC)

func statsStore(records ...models.TrainingRecord) *Store {
	s := bareStore(statsNow)
	s.records = records
	s.recomputeDashboard()
	return s
}

func TestWeeklyWindowBoundaries(t *testing.T) {
	s := statsStore(
		testutil.NewRecord().WithDate("2026-03-15").Build(), // today
		testutil.NewRecord().WithDate("2026-03-09").Build(), // oldest day in window
		testutil.NewRecord().WithDate("2026-03-08").Build(), // one day too old
		testutil.NewRecord().WithDate("2026-03-07").Build(),
		testutil.NewRecord().WithDate("2026-03-16").Build(), // future
	)

	if got := s.DashboardStats().WeeklyTraining; got != 2 {
		t.Fatalf("expected 2 records inside the 7-day window, got %d", got)
	}
}

func TestWindowComparisonIgnoresTimeOfDay(t *testing.T) {
	// The clock reads 13:30, so a same-day record must still count even
	// though midnight of its date precedes the current instant.
	s := statsStore(testutil.NewRecord().WithDate("2026-03-15").Build())

	if got := s.DashboardStats().WeeklyTraining; got != 1 {
		t.Fatalf("same-day record excluded: got %d", got)
	}
}

func TestAverageAccuracyCountsVideoOnly(t *testing.T) {
	s := statsStore(
		testutil.NewRecord().WithDate("2026-03-14").WithType(models.TypeVideoAnalysis).WithAccuracy(80).Build(),
		testutil.NewRecord().WithDate("2026-03-13").WithType(models.TypeVideoAnalysis).WithAccuracy(91).Build(),
		testutil.NewRecord().WithDate("2026-03-12").WithType(models.TypeStrength).WithAccuracy(10).Build(),
	)

	// (80+91)/2 rounds to 86; the strength record's accuracy is noise.
	if got := s.DashboardStats().AverageAccuracy; got != 86 {
		t.Fatalf("expected accuracy 86, got %d", got)
	}
}

func TestAverageAccuracyZeroWithoutVideoRecords(t *testing.T) {
	s := statsStore(
		testutil.NewRecord().WithDate("2026-03-14").WithType(models.TypeBalance).Build(),
	)

	if got := s.DashboardStats().AverageAccuracy; got != 0 {
		t.Fatalf("expected 0 average with no video records, got %d", got)
	}
}

func TestTrainingHoursFromLeadingMinutes(t *testing.T) {
	s := statsStore(
		testutil.NewRecord().WithDate("2026-03-14").WithDuration("45 min").Build(),
		testutil.NewRecord().WithDate("2026-03-13").WithDuration("30 min").Build(),
		testutil.NewRecord().WithDate("2026-03-12").WithDuration("about an hour").Build(),
	)

	// 75 minutes total; the non-numeric duration contributes zero.
	if got := s.DashboardStats().TrainingHours; got != 1.3 {
		t.Fatalf("expected 1.3 hours, got %v", got)
	}
}

func TestUnparsableDatesExcluded(t *testing.T) {
	s := statsStore(
		testutil.NewRecord().WithDate("15/03/2026").Build(),
		testutil.NewRecord().WithDate("").Build(),
		testutil.NewRecord().WithDate("2026-03-14").Build(),
	)

	if got := s.DashboardStats().WeeklyTraining; got != 1 {
		t.Fatalf("expected malformed dates to be skipped, got %d", got)
	}
}

func TestPlanCompletionUncapped(t *testing.T) {
	var records []models.TrainingRecord
	for i := 0; i < 15; i++ {
		records = append(records, testutil.NewRecord().WithDate("2026-03-14").Build())
	}
	s := statsStore(records...)

	// 15/12 of the weekly plan; the ratio is reported as-is.
	if got := s.DashboardStats().PlanCompletion; got != 125 {
		t.Fatalf("expected plan completion 125, got %d", got)
	}
}
