// Package settings implements the preference store: a single settings
// document with write-through persistence behind a small key-value
// interface, plus JSON import/export.
package settings

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/akyairhashvil/coachtrack/internal/util"
)

// StorageKey is the key the serialized document is persisted under.
const StorageKey = "app_settings"

// Theme values.
const (
	ThemeLight  = "light"
	ThemeDark   = "dark"
	ThemeSystem = "system"
)

// Notifications holds the three notification toggles.
type Notifications struct {
	TrainingReminder        bool `json:"trainingReminder"`
	AchievementNotification bool `json:"achievementNotification"`
	WeeklyReport            bool `json:"weeklyReport"`
}

// TrainingGoalTargets holds the two numeric goal targets.
type TrainingGoalTargets struct {
	WeeklyTrainingTarget int `json:"weeklyTrainingTarget"`
	AccuracyTarget       int `json:"accuracyTarget"`
}

// Privacy holds the two privacy toggles.
type Privacy struct {
	ShareData        bool `json:"shareData"`
	AnalyticsEnabled bool `json:"analyticsEnabled"`
}

// Settings is the complete preference document. It is persisted wholesale
// after every mutating call and replaced wholesale on import and reset.
type Settings struct {
	Theme         string              `json:"theme"`
	Language      string              `json:"language"`
	Notifications Notifications       `json:"notifications"`
	TrainingGoals TrainingGoalTargets `json:"trainingGoals"`
	Privacy       Privacy             `json:"privacy"`
}

// Defaults returns the fixed default document.
func Defaults() Settings {
	return Settings{
		Theme:    ThemeLight,
		Language: "zh-CN",
		Notifications: Notifications{
			TrainingReminder:        true,
			AchievementNotification: true,
			WeeklyReport:            false,
		},
		TrainingGoals: TrainingGoalTargets{
			WeeklyTrainingTarget: 12,
			AccuracyTarget:       80,
		},
		Privacy: Privacy{
			ShareData:        false,
			AnalyticsEnabled: true,
		},
	}
}

// Persistence abstracts the durable key-value substrate so the store can
// be tested without a real backend.
type Persistence interface {
	Load(key string) (string, bool)
	Save(key, value string) error
}

// Store owns the settings document. One instance per process, constructed
// at startup and passed by reference to the components that need it.
type Store struct {
	mu          sync.Mutex
	persistence Persistence
	settings    Settings

	// applyTheme receives the resolved dark flag after theme changes.
	applyTheme func(dark bool)
	// systemDark resolves the "system" theme at call time. Not reactive:
	// a live environment change is picked up on the next settings call.
	systemDark func() bool
}

// NewStore builds a store with read-through initialization: a persisted
// document is loaded if present and parsable, otherwise defaults apply.
// applyTheme and systemDark may be nil.
func NewStore(p Persistence, applyTheme func(dark bool), systemDark func() bool) *Store {
	s := &Store{
		persistence: p,
		settings:    Defaults(),
		applyTheme:  applyTheme,
		systemDark:  systemDark,
	}
	if raw, ok := p.Load(StorageKey); ok {
		loaded := Defaults()
		if err := json.Unmarshal([]byte(raw), &loaded); err != nil {
			util.LogError("load settings", err)
		} else {
			s.settings = loaded
		}
	}
	s.applyCurrentTheme()
	return s
}

// Get returns a defensive copy of the current document.
func (s *Store) Get() Settings {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.settings
}

// Theme returns the configured theme value.
func (s *Store) Theme() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.settings.Theme
}

// Language returns the configured language tag.
func (s *Store) Language() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.settings.Language
}

// SetTheme stores the theme, persists, and applies the resolved theme.
func (s *Store) SetTheme(theme string) error {
	switch theme {
	case ThemeLight, ThemeDark, ThemeSystem:
	default:
		return fmt.Errorf("unknown theme %q", theme)
	}
	s.mu.Lock()
	s.settings.Theme = theme
	s.mu.Unlock()
	s.save()
	s.applyCurrentTheme()
	return nil
}

// SetLanguage stores the language tag and persists.
func (s *Store) SetLanguage(language string) error {
	switch language {
	case "zh-CN", "en", "ja":
	default:
		return fmt.Errorf("unknown language %q", language)
	}
	s.mu.Lock()
	s.settings.Language = language
	s.mu.Unlock()
	s.save()
	return nil
}

// SetNotification toggles one notification setting by its JSON key.
func (s *Store) SetNotification(key string, value bool) error {
	s.mu.Lock()
	switch key {
	case "trainingReminder":
		s.settings.Notifications.TrainingReminder = value
	case "achievementNotification":
		s.settings.Notifications.AchievementNotification = value
	case "weeklyReport":
		s.settings.Notifications.WeeklyReport = value
	default:
		s.mu.Unlock()
		return fmt.Errorf("unknown notification setting %q", key)
	}
	s.mu.Unlock()
	s.save()
	return nil
}

// SetTrainingGoal updates one numeric goal target by its JSON key.
func (s *Store) SetTrainingGoal(key string, value int) error {
	s.mu.Lock()
	switch key {
	case "weeklyTrainingTarget":
		s.settings.TrainingGoals.WeeklyTrainingTarget = value
	case "accuracyTarget":
		s.settings.TrainingGoals.AccuracyTarget = value
	default:
		s.mu.Unlock()
		return fmt.Errorf("unknown training goal %q", key)
	}
	s.mu.Unlock()
	s.save()
	return nil
}

// SetPrivacy toggles one privacy setting by its JSON key.
func (s *Store) SetPrivacy(key string, value bool) error {
	s.mu.Lock()
	switch key {
	case "shareData":
		s.settings.Privacy.ShareData = value
	case "analyticsEnabled":
		s.settings.Privacy.AnalyticsEnabled = value
	default:
		s.mu.Unlock()
		return fmt.Errorf("unknown privacy setting %q", key)
	}
	s.mu.Unlock()
	s.save()
	return nil
}

// Reset restores the default document, persists, and re-applies the theme.
func (s *Store) Reset() {
	s.mu.Lock()
	s.settings = Defaults()
	s.mu.Unlock()
	s.save()
	s.applyCurrentTheme()
}

// Export returns the pretty-printed document.
func (s *Store) Export() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	raw, err := json.MarshalIndent(s.settings, "", "  ")
	if err != nil {
		util.LogError("export settings", err)
		return ""
	}
	return string(raw)
}

// Import merges a (possibly partial) document over the defaults, persists,
// and applies the theme. Malformed input is rejected without mutating the
// current document; the result reports success.
func (s *Store) Import(doc string) bool {
	merged := Defaults()
	if err := json.Unmarshal([]byte(doc), &merged); err != nil {
		util.LogError("import settings", err)
		return false
	}
	s.mu.Lock()
	s.settings = merged
	s.mu.Unlock()
	s.save()
	s.applyCurrentTheme()
	return true
}

// Clearer is implemented by persistence backends that can drop all
// stored keys at once.
type Clearer interface {
	Clear() error
}

// ClearPersisted wipes the durable substrate and restores defaults. This
// backs the explicit clear-local-data action.
func (s *Store) ClearPersisted() error {
	c, ok := s.persistence.(Clearer)
	if !ok {
		return fmt.Errorf("persistence backend cannot be cleared")
	}
	if err := c.Clear(); err != nil {
		return err
	}
	s.Reset()
	return nil
}

func (s *Store) save() {
	s.mu.Lock()
	raw, err := json.Marshal(s.settings)
	s.mu.Unlock()
	if err != nil {
		util.LogError("marshal settings", err)
		return
	}
	util.LogError("save settings", s.persistence.Save(StorageKey, string(raw)))
}

func (s *Store) applyCurrentTheme() {
	if s.applyTheme == nil {
		return
	}
	s.mu.Lock()
	theme := s.settings.Theme
	s.mu.Unlock()
	dark := theme == ThemeDark
	if theme == ThemeSystem && s.systemDark != nil {
		dark = s.systemDark()
	}
	s.applyTheme(dark)
}
