package store

import (
	"github.com/akyairhashvil/coachtrack/internal/config"
	"github.com/akyairhashvil/coachtrack/internal/models"
)

// Achievement titles. The title doubles as the de-duplication key.
const (
	AchievementFirstSteps  = "First Steps"
	AchievementWeekStreak  = "7-Day Streak"
	AchievementSharpshoot  = "Accuracy Over 80%"
	AchievementFiftyStrong = "50 Sessions Logged"
)

// CheckAndAwardAchievements evaluates the fixed award rules against the
// current derived stats and record count. Each badge is awarded at most
// once, guarded by a title lookup.
func (s *Store) CheckAndAwardAchievements() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.checkAchievementsLocked()
}

func (s *Store) checkAchievementsLocked() {
	today := s.now().Format(dateLayout)

	if s.stats.WeeklyTraining >= config.StreakWeeklyCount && !s.hasAchievement(AchievementWeekStreak) {
		s.addAchievementLocked(models.Achievement{Title: AchievementWeekStreak, Date: today, Icon: "🔥"})
	}
	if s.stats.AverageAccuracy >= config.AccuracyThreshold && !s.hasAchievement(AchievementSharpshoot) {
		s.addAchievementLocked(models.Achievement{Title: AchievementSharpshoot, Date: today, Icon: "🎯"})
	}
	if len(s.records) >= config.TotalRecordsForAll && !s.hasAchievement(AchievementFiftyStrong) {
		s.addAchievementLocked(models.Achievement{Title: AchievementFiftyStrong, Date: today, Icon: "⭐"})
	}
}

func (s *Store) hasAchievement(title string) bool {
	for _, a := range s.achievements {
		if a.Title == title {
			return true
		}
	}
	return false
}
