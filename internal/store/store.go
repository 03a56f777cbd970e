// Package store implements the in-memory session store and the transient
// notification queue. Session data lives for the lifetime of the process
// and is reseeded on every start; only preferences persist (see the
// settings package).
package store

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/akyairhashvil/coachtrack/internal/models"
	"github.com/akyairhashvil/coachtrack/internal/util"
)

// ErrSessionNotFound reports a status update against an unknown session id.
var ErrSessionNotFound = errors.New("training session not found")

// Store holds all session data for one running process. Construct one at
// startup and pass it by reference; methods are safe for concurrent use
// because bubbletea commands run off the update loop.
type Store struct {
	mu  sync.Mutex
	now func() time.Time

	records      []models.TrainingRecord
	sessions     []models.TrainingSession
	monthly      []models.MonthlyDatum
	skills       []models.SkillStat
	achievements []models.Achievement
	profile      models.UserProfile
	stats        models.DashboardStats
	goals        models.TrainingGoals
}

// New builds a store seeded with sample data for the current date.
func New() *Store {
	s := &Store{now: time.Now}
	s.seed()
	s.recomputeDashboard()
	return s
}

// TrainingRecords returns the record list, newest first. The slice is
// live; callers must not rely on it being a copy.
func (s *Store) TrainingRecords() []models.TrainingRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.records
}

// AddTrainingRecord assigns a time-based id, prepends the record, and
// recomputes the dashboard snapshot.
func (s *Store) AddTrainingRecord(rec models.TrainingRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec.ID = fmt.Sprintf("record-%d", s.now().UnixNano())
	s.records = append([]models.TrainingRecord{rec}, s.records...)
	s.recomputeDashboard()
}

// TrainingSessions returns the scheduled sessions in insertion order.
func (s *Store) TrainingSessions() []models.TrainingSession {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sessions
}

// AddTrainingSession assigns a time-based id and appends the session.
func (s *Store) AddTrainingSession(session models.TrainingSession) {
	s.mu.Lock()
	defer s.mu.Unlock()
	session.ID = fmt.Sprintf("session-%d", s.now().UnixNano())
	s.sessions = append(s.sessions, session)
}

// UpdateSessionStatus moves a session to the given status. A transition to
// completed recomputes the dashboard snapshot and credits the matching
// training goal. Unknown ids are signaled, not swallowed.
func (s *Store) UpdateSessionStatus(id string, status models.SessionStatus) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.sessions {
		if s.sessions[i].ID != id {
			continue
		}
		s.sessions[i].Status = status
		if status == models.SessionCompleted {
			if kind, ok := goalKindFor(s.sessions[i].Type); ok {
				s.incrementGoal(kind)
			}
			s.recomputeDashboard()
		}
		return nil
	}
	return fmt.Errorf("update session %s: %w", id, ErrSessionNotFound)
}

// MonthlyData returns the monthly aggregate buckets.
func (s *Store) MonthlyData() []models.MonthlyDatum {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.monthly
}

// UpdateMonthlyData folds one accuracy observation into the bucket for the
// current calendar month using a running average. The session count never
// decreases. Returns false without mutating when no bucket matches.
func (s *Store) UpdateMonthlyData(accuracy int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.updateMonthlyLocked(accuracy)
}

func (s *Store) updateMonthlyLocked(accuracy int) bool {
	label := s.now().Month().String()
	for i := range s.monthly {
		if s.monthly[i].Month != label {
			continue
		}
		m := &s.monthly[i]
		m.Accuracy = util.RoundInt(float64(m.Accuracy*m.Sessions+accuracy) / float64(m.Sessions+1))
		m.Sessions++
		return true
	}
	return false
}

// SkillStats returns the rated skills in fixed order: speed, balance,
// coordination, strength.
func (s *Store) SkillStats() []models.SkillStat {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.skills
}

// UpdateSkillStats overwrites the first three skills from the movement
// block. A result without that block is a no-op. Strength is never
// updated from analysis.
func (s *Store) UpdateSkillStats(result *models.AnalysisResult) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.updateSkillsLocked(result)
}

func (s *Store) updateSkillsLocked(result *models.AnalysisResult) {
	if result == nil || result.MovementAnalysis == nil || len(s.skills) < 3 {
		return
	}
	mv := result.MovementAnalysis
	s.skills[0].Value = util.RoundInt(mv.Speed)
	s.skills[1].Value = util.RoundInt(mv.Balance)
	s.skills[2].Value = util.RoundInt(mv.Coordination)
}

// Achievements returns earned badges, newest first.
func (s *Store) Achievements() []models.Achievement {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.achievements
}

// AddAchievement prepends unconditionally; de-duplication is the caller's
// responsibility (see CheckAndAwardAchievements).
func (s *Store) AddAchievement(a models.Achievement) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.addAchievementLocked(a)
}

func (s *Store) addAchievementLocked(a models.Achievement) {
	s.achievements = append([]models.Achievement{a}, s.achievements...)
}

// Profile returns the user profile.
func (s *Store) Profile() models.UserProfile {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.profile
}

// UpdateProfile applies a partial update: non-empty fields overwrite.
func (s *Store) UpdateProfile(updates models.UserProfile) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if updates.Name != "" {
		s.profile.Name = updates.Name
	}
	if updates.Email != "" {
		s.profile.Email = updates.Email
	}
	if updates.Phone != "" {
		s.profile.Phone = updates.Phone
	}
	if updates.Location != "" {
		s.profile.Location = updates.Location
	}
	if updates.JoinDate != "" {
		s.profile.JoinDate = updates.JoinDate
	}
	if updates.Level != "" {
		s.profile.Level = updates.Level
	}
	if updates.Avatar != "" {
		s.profile.Avatar = updates.Avatar
	}
}

// DashboardStats returns the last recomputed snapshot. The snapshot is
// refreshed by qualifying mutations, not lazily on read.
func (s *Store) DashboardStats() models.DashboardStats {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stats
}

// TrainingGoals returns the goal counters.
func (s *Store) TrainingGoals() models.TrainingGoals {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.goals
}

// IncrementGoal credits one completed activity to the named goal. The
// counter never decrements and is not capped at its target.
func (s *Store) IncrementGoal(kind models.GoalKind) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.incrementGoal(kind)
}

func (s *Store) incrementGoal(kind models.GoalKind) {
	switch kind {
	case models.GoalVideoAnalysis:
		s.goals.VideoAnalysis.Current++
	case models.GoalStrength:
		s.goals.StrengthTraining.Current++
	case models.GoalAgility:
		s.goals.AgilityTraining.Current++
	}
}

func goalKindFor(t models.TrainingType) (models.GoalKind, bool) {
	switch t {
	case models.TypeVideoAnalysis:
		return models.GoalVideoAnalysis, true
	case models.TypeStrength:
		return models.GoalStrength, true
	case models.TypeAgility:
		return models.GoalAgility, true
	}
	return "", false
}
