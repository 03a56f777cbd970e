package store

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/akyairhashvil/coachtrack/internal/models"
)

// Fabricated sample data so a fresh process has something to render.
// No correctness claim is made for these values; they are reseeded on
// every start (session data is never persisted).

var seedRecordTypes = []models.TrainingType{
	models.TypeVideoAnalysis,
	models.TypeStrength,
	models.TypeAgility,
	models.TypeBalance,
	models.TypeConditioning,
}

var seedSessionTypes = []models.TrainingType{
	models.TypeAgility,
	models.TypeBalance,
	models.TypeConditioning,
	models.TypeStrength,
}

func (s *Store) seed() {
	now := s.now()

	for i := 0; i < 8; i++ {
		t := seedRecordTypes[i%len(seedRecordTypes)]
		accuracy := 0
		if t == models.TypeVideoAnalysis {
			accuracy = 70 + rand.Intn(20)
		}
		s.records = append(s.records, models.TrainingRecord{
			ID:       fmt.Sprintf("record-%d", i),
			Date:     now.AddDate(0, 0, -i).Format(dateLayout),
			Type:     t,
			Duration: fmt.Sprintf("%d min", 10+rand.Intn(40)),
			Accuracy: accuracy,
			Status:   models.RecordCompleted,
		})
	}

	for i := 0; i < 5; i++ {
		date := now.AddDate(0, 0, i*2)
		status := models.SessionUpcoming
		if i == 0 {
			status = models.SessionCompleted
		}
		s.sessions = append(s.sessions, models.TrainingSession{
			ID:       fmt.Sprintf("session-%d", i),
			Day:      date.Weekday().String(),
			Date:     date.Format("Jan 2"),
			Type:     seedSessionTypes[i%len(seedSessionTypes)],
			Time:     "18:00",
			Duration: fmt.Sprintf("%d min", 45+rand.Intn(30)),
			Status:   status,
		})
	}

	// Trailing six calendar months, oldest first, current month last.
	for i := 5; i >= 0; i-- {
		month := time.Month((int(now.Month())-1-i+12)%12 + 1)
		idx := 5 - i
		s.monthly = append(s.monthly, models.MonthlyDatum{
			Month:    month.String(),
			Accuracy: 70 + idx*2 + rand.Intn(5),
			Sessions: 12 + idx*2 + rand.Intn(3),
		})
	}

	s.skills = []models.SkillStat{
		{Name: "Speed", Value: 65, Trend: "+0%", Color: "blue"},
		{Name: "Balance", Value: 68, Trend: "+0%", Color: "green"},
		{Name: "Coordination", Value: 62, Trend: "+0%", Color: "purple"},
		{Name: "Strength", Value: 70, Trend: "+0%", Color: "orange"},
	}

	s.achievements = []models.Achievement{
		{Title: AchievementFirstSteps, Date: "2023-06-15", Icon: "🎉"},
	}

	s.profile = models.UserProfile{
		Name:     "New Athlete",
		Email:    "user@example.com",
		Phone:    "+1 555-0188",
		Location: "Portland, OR",
		JoinDate: "2023-06-15",
		Level:    "Beginner",
		Avatar:   "N",
	}

	s.goals = models.TrainingGoals{
		VideoAnalysis:    models.GoalProgress{Current: 0, Target: 5},
		StrengthTraining: models.GoalProgress{Current: 0, Target: 4},
		AgilityTraining:  models.GoalProgress{Current: 0, Target: 3},
	}
}
