package store

import (
	"time"

	"github.com/akyairhashvil/coachtrack/internal/config"
	"github.com/akyairhashvil/coachtrack/internal/models"
	"github.com/akyairhashvil/coachtrack/internal/util"
)

const dateLayout = "2006-01-02"

// recomputeDashboard rebuilds the derived snapshot from the trailing
// 7-day record window. Callers must hold s.mu.
//
// Window membership is a date-only comparison: a record is in the window
// iff its date falls on today or one of the six preceding days. Records
// with unparsable dates are excluded.
func (s *Store) recomputeDashboard() {
	today := dateOnly(s.now())
	cutoff := today.AddDate(0, 0, -(config.DashboardWindowDays - 1))

	var weekly []models.TrainingRecord
	for _, rec := range s.records {
		d, err := time.Parse(dateLayout, rec.Date)
		if err != nil {
			continue
		}
		if !d.Before(cutoff) && !d.After(today) {
			weekly = append(weekly, rec)
		}
	}

	accuracySum, videoCount := 0, 0
	durationMin := 0
	for _, rec := range weekly {
		if rec.Type == models.TypeVideoAnalysis {
			accuracySum += rec.Accuracy
			videoCount++
		}
		durationMin += util.LeadingInt(rec.Duration)
	}

	avgAccuracy := 0
	if videoCount > 0 {
		avgAccuracy = util.RoundInt(float64(accuracySum) / float64(videoCount))
	}

	s.stats = models.DashboardStats{
		WeeklyTraining:  len(weekly),
		AverageAccuracy: avgAccuracy,
		TrainingHours:   util.Round1(float64(durationMin) / 60),
		PlanCompletion:  util.RoundInt(float64(len(weekly)) / config.PlanDenominator * 100),
	}
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
