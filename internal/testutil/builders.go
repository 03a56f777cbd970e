package testutil

import (
	"time"

	"github.com/akyairhashvil/coachtrack/internal/models"
)

// RecordBuilder provides fluent API for creating test training records.
type RecordBuilder struct {
	record models.TrainingRecord
}

func NewRecord() *RecordBuilder {
	return &RecordBuilder{
		record: models.TrainingRecord{
			Date:     time.Now().Format("2006-01-02"),
			Type:     models.TypeVideoAnalysis,
			Duration: "30 min",
			Accuracy: 75,
			Status:   models.RecordCompleted,
		},
	}
}

func (b *RecordBuilder) WithDate(date string) *RecordBuilder {
	b.record.Date = date
	return b
}

func (b *RecordBuilder) WithDaysAgo(days int) *RecordBuilder {
	b.record.Date = time.Now().AddDate(0, 0, -days).Format("2006-01-02")
	return b
}

func (b *RecordBuilder) WithType(t models.TrainingType) *RecordBuilder {
	b.record.Type = t
	if t != models.TypeVideoAnalysis {
		b.record.Accuracy = 0
	}
	return b
}

func (b *RecordBuilder) WithDuration(d string) *RecordBuilder {
	b.record.Duration = d
	return b
}

func (b *RecordBuilder) WithAccuracy(a int) *RecordBuilder {
	b.record.Accuracy = a
	return b
}

func (b *RecordBuilder) Build() models.TrainingRecord {
	return b.record
}

// SessionBuilder provides fluent API for creating test training sessions.
type SessionBuilder struct {
	session models.TrainingSession
}

func NewSession() *SessionBuilder {
	now := time.Now()
	return &SessionBuilder{
		session: models.TrainingSession{
			Day:      now.Weekday().String(),
			Date:     now.Format("Jan 2"),
			Type:     models.TypeStrength,
			Time:     "18:00",
			Duration: "60 min",
			Status:   models.SessionUpcoming,
		},
	}
}

func (b *SessionBuilder) WithType(t models.TrainingType) *SessionBuilder {
	b.session.Type = t
	return b
}

func (b *SessionBuilder) WithStatus(s models.SessionStatus) *SessionBuilder {
	b.session.Status = s
	return b
}

func (b *SessionBuilder) Build() models.TrainingSession {
	return b.session
}

// AnalysisResultBuilder provides fluent API for creating analysis results.
type AnalysisResultBuilder struct {
	result models.AnalysisResult
}

func NewAnalysisResult() *AnalysisResultBuilder {
	return &AnalysisResultBuilder{
		result: models.AnalysisResult{
			PoseAnalysis: &models.PoseAnalysis{
				Accuracy:     85,
				Issues:       []string{"knee alignment"},
				Improvements: []string{"slow down the follow-through"},
			},
			MovementAnalysis: &models.MovementAnalysis{
				Speed:        70,
				Balance:      75,
				Coordination: 80,
			},
			Recommendations: []string{"add two balance drills per week"},
		},
	}
}

func (b *AnalysisResultBuilder) WithAccuracy(a float64) *AnalysisResultBuilder {
	b.result.PoseAnalysis.Accuracy = a
	return b
}

func (b *AnalysisResultBuilder) WithMovement(speed, balance, coordination float64) *AnalysisResultBuilder {
	b.result.MovementAnalysis = &models.MovementAnalysis{
		Speed:        speed,
		Balance:      balance,
		Coordination: coordination,
	}
	return b
}

func (b *AnalysisResultBuilder) WithoutPose() *AnalysisResultBuilder {
	b.result.PoseAnalysis = nil
	return b
}

func (b *AnalysisResultBuilder) WithoutMovement() *AnalysisResultBuilder {
	b.result.MovementAnalysis = nil
	return b
}

func (b *AnalysisResultBuilder) Build() *models.AnalysisResult {
	r := b.result
	return &r
}
