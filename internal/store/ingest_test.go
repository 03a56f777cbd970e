package store

import (
	"testing"

	"github.com/akyairhashvil/coachtrack/internal/models"
	"github.com/akyairhashvil/coachtrack/internal/testutil"
)

func ingestStore() *Store {
	s := bareStore(statsNow)
	s.monthly = []models.MonthlyDatum{
		{Month: statsNow.Month().String(), Accuracy: 80, Sessions: 4},
	}
	s.skills = []models.SkillStat{
		{Name: "Speed", Value: 65},
		{Name: "Balance", Value: 68},
		{Name: "Coordination", Value: 62},
		{Name: "Strength", Value: 70},
	}
	s.goals = models.TrainingGoals{
		VideoAnalysis: models.GoalProgress{Current: 2, Target: 5},
	}
	return s
}

func TestProcessVideoAnalysis(t *testing.T) {
	s := ingestStore()

	s.ProcessVideoAnalysis(testutil.NewAnalysisResult().
		WithAccuracy(88).
		WithMovement(71, 74, 79).
		Build())

	records := s.TrainingRecords()
	if len(records) != 1 {
		t.Fatalf("expected one record after ingestion, got %d", len(records))
	}
	rec := records[0]
	if rec.Type != models.TypeVideoAnalysis || rec.Accuracy != 88 {
		t.Fatalf("unexpected record: %+v", rec)
	}
	if rec.Date != "2026-03-15" {
		t.Fatalf("record must be dated today, got %q", rec.Date)
	}
	if rec.Status != models.RecordCompleted {
		t.Fatalf("ingested record must be completed, got %q", rec.Status)
	}

	stats := s.DashboardStats()
	if stats.WeeklyTraining != 1 || stats.AverageAccuracy != 88 {
		t.Fatalf("snapshot not recomputed: %+v", stats)
	}

	skills := s.SkillStats()
	if skills[0].Value != 71 || skills[1].Value != 74 || skills[2].Value != 79 {
		t.Fatalf("skills not overwritten: %+v", skills[:3])
	}

	// 80*4+88 / 5 = 82 (rounded), session count +1.
	month := s.MonthlyData()[0]
	if month.Accuracy != 82 || month.Sessions != 5 {
		t.Fatalf("monthly bucket not folded: %+v", month)
	}

	if got := s.TrainingGoals().VideoAnalysis.Current; got != 3 {
		t.Fatalf("video-analysis goal not credited, got %d", got)
	}
}

func TestProcessVideoAnalysisWithoutPoseDefaults(t *testing.T) {
	s := ingestStore()

	s.ProcessVideoAnalysis(testutil.NewAnalysisResult().WithoutPose().Build())

	if got := s.TrainingRecords()[0].Accuracy; got != 75 {
		t.Fatalf("missing pose block must default accuracy to 75, got %d", got)
	}
}

func TestProcessVideoAnalysisPoseWithoutAccuracyField(t *testing.T) {
	s := ingestStore()

	// A decoded pose block without an accuracy field carries zero; the
	// default substitutes per field, not per block.
	s.ProcessVideoAnalysis(testutil.NewAnalysisResult().WithAccuracy(0).Build())

	if got := s.TrainingRecords()[0].Accuracy; got != 75 {
		t.Fatalf("pose block without an accuracy field must default to 75, got %d", got)
	}
	// The monthly fold uses the same resolved value. 80*4+75 / 5 = 79.
	if got := s.MonthlyData()[0].Accuracy; got != 79 {
		t.Fatalf("expected the default folded into the month, got %d", got)
	}
}

func TestAnalysisAccuracy(t *testing.T) {
	if got := AnalysisAccuracy(nil); got != 75 {
		t.Fatalf("nil result: expected 75, got %d", got)
	}
	if got := AnalysisAccuracy(testutil.NewAnalysisResult().WithoutPose().Build()); got != 75 {
		t.Fatalf("missing block: expected 75, got %d", got)
	}
	if got := AnalysisAccuracy(testutil.NewAnalysisResult().WithAccuracy(0).Build()); got != 75 {
		t.Fatalf("zero field: expected 75, got %d", got)
	}
	if got := AnalysisAccuracy(testutil.NewAnalysisResult().WithAccuracy(88.4).Build()); got != 88 {
		t.Fatalf("present field: expected rounded 88, got %d", got)
	}
}

func TestProcessVideoAnalysisWithoutMovementStillCommits(t *testing.T) {
	s := ingestStore()

	s.ProcessVideoAnalysis(testutil.NewAnalysisResult().
		WithAccuracy(90).
		WithoutMovement().
		Build())

	// Skills stay put, everything before and after still applies.
	if got := s.SkillStats()[0].Value; got != 65 {
		t.Fatalf("skills must be untouched without a movement block, got %d", got)
	}
	if len(s.TrainingRecords()) != 1 {
		t.Fatalf("record step must still commit")
	}
	if got := s.MonthlyData()[0].Sessions; got != 5 {
		t.Fatalf("monthly step must still commit, got %d sessions", got)
	}
	if got := s.TrainingGoals().VideoAnalysis.Current; got != 3 {
		t.Fatalf("goal step must still commit, got %d", got)
	}
}

func TestProcessVideoAnalysisNilResult(t *testing.T) {
	s := ingestStore()

	s.ProcessVideoAnalysis(nil)

	if got := s.TrainingRecords()[0].Accuracy; got != 75 {
		t.Fatalf("nil result must still land a default record, got accuracy %d", got)
	}
}
