package store

import (
	"testing"

	"github.com/akyairhashvil/coachtrack/internal/models"
	"github.com/akyairhashvil/coachtrack/internal/testutil"
)

func TestAwardWeekStreak(t *testing.T) {
	s := statsStore()
	for i := 0; i < 7; i++ {
		s.AddTrainingRecord(testutil.NewRecord().WithDate("2026-03-14").Build())
	}

	s.CheckAndAwardAchievements()

	if !s.hasTitle(AchievementWeekStreak) {
		t.Fatalf("expected streak badge after 7 records in the window")
	}
}

func TestAwardSharpshoot(t *testing.T) {
	s := statsStore(
		testutil.NewRecord().WithDate("2026-03-14").WithType(models.TypeVideoAnalysis).WithAccuracy(85).Build(),
	)

	s.CheckAndAwardAchievements()

	if !s.hasTitle(AchievementSharpshoot) {
		t.Fatalf("expected accuracy badge at 85%% average")
	}
}

func TestAwardFiftyStrong(t *testing.T) {
	s := statsStore()
	for i := 0; i < 50; i++ {
		s.AddTrainingRecord(testutil.NewRecord().WithDate("2020-01-01").Build())
	}

	s.CheckAndAwardAchievements()

	if !s.hasTitle(AchievementFiftyStrong) {
		t.Fatalf("expected volume badge at 50 records")
	}
}

func TestNoAwardBelowThresholds(t *testing.T) {
	s := statsStore(
		testutil.NewRecord().WithDate("2026-03-14").WithType(models.TypeVideoAnalysis).WithAccuracy(60).Build(),
	)

	s.CheckAndAwardAchievements()

	if len(s.Achievements()) != 0 {
		t.Fatalf("no badge should be awarded below every threshold: %+v", s.Achievements())
	}
}

func TestAchievementsAwardedOnce(t *testing.T) {
	s := statsStore(
		testutil.NewRecord().WithDate("2026-03-14").WithType(models.TypeVideoAnalysis).WithAccuracy(90).Build(),
	)

	s.CheckAndAwardAchievements()
	s.CheckAndAwardAchievements()
	s.CheckAndAwardAchievements()

	count := 0
	for _, a := range s.Achievements() {
		if a.Title == AchievementSharpshoot {
			count++
		}
	}
	if count != 1 {
		t.Fatalf("badge must be awarded exactly once, got %d", count)
	}
}

func TestAddAchievementPrepends(t *testing.T) {
	s := bareStore(statsNow)
	s.AddAchievement(models.Achievement{Title: "Older"})
	s.AddAchievement(models.Achievement{Title: "Newer"})

	got := s.Achievements()
	if got[0].Title != "Newer" || got[1].Title != "Older" {
		t.Fatalf("newest badge must be first: %+v", got)
	}
}

func (s *Store) hasTitle(title string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.hasAchievement(title)
}
