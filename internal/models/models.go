// Package models defines the plain data records shared by the stores,
// the view layer, and the analysis client.
package models

import "time"

// RecordStatus enumerates the possible states of a logged activity.
type RecordStatus string

const (
	RecordCompleted  RecordStatus = "completed"
	RecordIncomplete RecordStatus = "incomplete"
)

// SessionStatus enumerates the lifecycle states of a scheduled slot.
type SessionStatus string

const (
	SessionCompleted SessionStatus = "completed"
	SessionUpcoming  SessionStatus = "upcoming"
	SessionMissed    SessionStatus = "missed"
)

// TrainingType labels the kind of activity a record or session holds.
type TrainingType string

const (
	TypeVideoAnalysis TrainingType = "video-analysis"
	TypeStrength      TrainingType = "strength"
	TypeAgility       TrainingType = "agility"
	TypeBalance       TrainingType = "balance"
	TypeConditioning  TrainingType = "conditioning"
)

// TrainingRecord is a logged, already-occurred activity. Accuracy is only
// meaningful for video-analysis records; other types carry 0.
type TrainingRecord struct {
	ID       string
	Date     string // calendar day, 2006-01-02
	Type     TrainingType
	Duration string // free-text minute label, e.g. "25 min"
	Accuracy int
	Status   RecordStatus
}

// TrainingSession is a scheduled slot that may or may not be executed.
type TrainingSession struct {
	ID       string
	Day      string // weekday label
	Date     string // display date label
	Type     TrainingType
	Time     string
	Duration string
	Status   SessionStatus
}

// MonthlyDatum aggregates accuracy and session count for one named month.
type MonthlyDatum struct {
	Month    string
	Accuracy int
	Sessions int
}

// SkillStat is one rated skill shown on the statistics panel.
type SkillStat struct {
	Name  string
	Value int
	Trend string
	Color string
}

// Achievement is an earned badge, de-duplicated by title at award time.
type Achievement struct {
	Title string
	Date  string
	Icon  string
}

// UserProfile holds static identity fields.
type UserProfile struct {
	Name     string
	Email    string
	Phone    string
	Location string
	JoinDate string
	Level    string
	Avatar   string
}

// DashboardStats is the derived snapshot recomputed after qualifying
// mutations. PlanCompletion is deliberately uncapped and can exceed 100.
type DashboardStats struct {
	WeeklyTraining  int
	AverageAccuracy int
	TrainingHours   float64
	PlanCompletion  int
}

// GoalKind names one of the three tracked training goals.
type GoalKind string

const (
	GoalVideoAnalysis GoalKind = "videoAnalysis"
	GoalStrength      GoalKind = "strengthTraining"
	GoalAgility       GoalKind = "agilityTraining"
)

// GoalProgress is a current/target counter pair. Current only ever grows
// and is not capped at Target.
type GoalProgress struct {
	Current int
	Target  int
}

// TrainingGoals tracks progress against the three fixed goals.
type TrainingGoals struct {
	VideoAnalysis    GoalProgress
	StrengthTraining GoalProgress
	AgilityTraining  GoalProgress
}

// NotificationKind classifies a toast.
type NotificationKind string

const (
	NotifySuccess NotificationKind = "success"
	NotifyError   NotificationKind = "error"
	NotifyInfo    NotificationKind = "info"
)

// Notification is one transient toast entry.
type Notification struct {
	ID        string
	Kind      NotificationKind
	Title     string
	Message   string
	Timestamp time.Time
}

// PoseAnalysis is the pose block of an analysis response. A zero
// Accuracy means the field was absent from the payload; consumers
// substitute the default.
type PoseAnalysis struct {
	Accuracy     float64  `json:"accuracy"`
	Issues       []string `json:"issues"`
	Improvements []string `json:"improvements"`
}

// MovementAnalysis is the movement block of an analysis response.
type MovementAnalysis struct {
	Speed        float64 `json:"speed"`
	Balance      float64 `json:"balance"`
	Coordination float64 `json:"coordination"`
}

// AnalysisResult is the JSON document returned by the analysis service.
// Either block may be absent; consumers substitute defaults per field.
type AnalysisResult struct {
	PoseAnalysis     *PoseAnalysis     `json:"poseAnalysis"`
	MovementAnalysis *MovementAnalysis `json:"movementAnalysis"`
	Recommendations  []string          `json:"recommendations"`
}
