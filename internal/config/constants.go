package config

import "time"

// Application settings.
const (
	AppName    = "coachtrack"
	DBFileName = "preferences.db"
)

// Environment variables read at startup.
const (
	EnvAnalyzeURL     = "COACHTRACK_ANALYZE_URL"
	EnvDataDir        = "COACHTRACK_DATA_DIR"
	EnvEncryptExports = "COACHTRACK_ENCRYPT_EXPORTS"
)

// Notification behavior.
const (
	// NotificationTTL is how long a toast stays visible before auto-expiry.
	NotificationTTL = 5 * time.Second
)

// Dashboard derivation.
const (
	// DashboardWindowDays is the trailing window, inclusive of today.
	DashboardWindowDays = 7

	// PlanDenominator is the fixed weekly-session count used for the
	// plan-completion percentage. The percentage is not capped at 100.
	PlanDenominator = 12
)

// Achievement thresholds.
const (
	StreakWeeklyCount  = 7
	AccuracyThreshold  = 80
	TotalRecordsForAll = 50
)

// Analysis defaults.
const (
	// DefaultAccuracy substitutes for a missing pose block during ingestion.
	DefaultAccuracy = 75

	// AnalysisRecordDuration labels the record appended per ingestion.
	AnalysisRecordDuration = "15 min"

	// AnalyzeTimeout bounds the upload-and-analyze HTTP call.
	AnalyzeTimeout = 2 * time.Minute
)
