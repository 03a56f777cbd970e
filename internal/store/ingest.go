package store

import (
	"fmt"

	"github.com/akyairhashvil/coachtrack/internal/config"
	"github.com/akyairhashvil/coachtrack/internal/models"
	"github.com/akyairhashvil/coachtrack/internal/util"
)

// ProcessVideoAnalysis is the single integration point between an external
// analysis result and the derived state: it appends a video-analysis
// record dated today, overwrites the skill stats, folds the accuracy into
// the current month's bucket, credits the video-analysis goal, and runs
// the achievement checks.
//
// The sequence is best effort with no rollback: missing blocks in the
// result degrade to per-field defaults (accuracy 75) or per-step no-ops,
// and steps already applied stay applied.
func (s *Store) ProcessVideoAnalysis(result *models.AnalysisResult) {
	s.mu.Lock()
	defer s.mu.Unlock()

	accuracy := AnalysisAccuracy(result)

	rec := models.TrainingRecord{
		ID:       fmt.Sprintf("record-%d", s.now().UnixNano()),
		Date:     s.now().Format(dateLayout),
		Type:     models.TypeVideoAnalysis,
		Duration: config.AnalysisRecordDuration,
		Accuracy: accuracy,
		Status:   models.RecordCompleted,
	}
	s.records = append([]models.TrainingRecord{rec}, s.records...)
	s.recomputeDashboard()

	s.updateSkillsLocked(result)
	s.updateMonthlyLocked(accuracy)
	s.incrementGoal(models.GoalVideoAnalysis)
	s.checkAchievementsLocked()
}

// AnalysisAccuracy resolves the overall accuracy of a result. The default
// substitutes per field, not per block: a pose block whose accuracy is
// missing (zero once decoded) still yields 75.
func AnalysisAccuracy(result *models.AnalysisResult) int {
	if result == nil || result.PoseAnalysis == nil || result.PoseAnalysis.Accuracy == 0 {
		return config.DefaultAccuracy
	}
	return util.RoundInt(result.PoseAnalysis.Accuracy)
}
