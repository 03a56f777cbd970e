package settings

import (
	"reflect"
	"testing"
)

// fakePersistence is an in-memory substitute for the sqlite backend.
type fakePersistence struct {
	values  map[string]string
	saveErr error
}

func newFakePersistence() *fakePersistence {
	return &fakePersistence{values: make(map[string]string)}
}

func (f *fakePersistence) Load(key string) (string, bool) {
	v, ok := f.values[key]
	return v, ok
}

func (f *fakePersistence) Save(key, value string) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.values[key] = value
	return nil
}

func (f *fakePersistence) Clear() error {
	f.values = make(map[string]string)
	return nil
}

func TestDefaultsOnEmptyStorage(t *testing.T) {
	s := NewStore(newFakePersistence(), nil, nil)
	if !reflect.DeepEqual(s.Get(), Defaults()) {
		t.Fatalf("expected defaults, got %+v", s.Get())
	}
}

func TestReadThroughOnConstruction(t *testing.T) {
	p := newFakePersistence()
	p.values[StorageKey] = `{"theme":"dark","language":"en"}`
	s := NewStore(p, nil, nil)

	got := s.Get()
	if got.Theme != ThemeDark || got.Language != "en" {
		t.Fatalf("expected persisted values, got %+v", got)
	}
	// Fields absent from the persisted doc fall back to defaults.
	if got.TrainingGoals.WeeklyTrainingTarget != 12 {
		t.Fatalf("expected default weekly target, got %d", got.TrainingGoals.WeeklyTrainingTarget)
	}
}

func TestMalformedStorageFallsBackToDefaults(t *testing.T) {
	p := newFakePersistence()
	p.values[StorageKey] = `{"theme": nope}`
	s := NewStore(p, nil, nil)
	if !reflect.DeepEqual(s.Get(), Defaults()) {
		t.Fatalf("expected defaults after malformed storage")
	}
}

func TestSetThemePersistsAndApplies(t *testing.T) {
	p := newFakePersistence()
	var applied []bool
	s := NewStore(p, func(dark bool) { applied = append(applied, dark) }, nil)

	if err := s.SetTheme(ThemeDark); err != nil {
		t.Fatalf("SetTheme failed: %v", err)
	}
	if s.Get().Theme != ThemeDark {
		t.Fatalf("theme not updated")
	}
	if _, ok := p.values[StorageKey]; !ok {
		t.Fatalf("expected write-through persistence")
	}
	if len(applied) == 0 || applied[len(applied)-1] != true {
		t.Fatalf("expected the theme hook to receive dark=true, got %v", applied)
	}
}

func TestSystemThemeResolvedAtCallTime(t *testing.T) {
	systemDark := false
	var last bool
	s := NewStore(newFakePersistence(), func(dark bool) { last = dark }, func() bool { return systemDark })

	if err := s.SetTheme(ThemeSystem); err != nil {
		t.Fatalf("SetTheme failed: %v", err)
	}
	if last {
		t.Fatalf("expected light resolution while systemDark=false")
	}

	// A live environment change is only observed on the next call.
	systemDark = true
	if err := s.SetTheme(ThemeSystem); err != nil {
		t.Fatalf("SetTheme failed: %v", err)
	}
	if !last {
		t.Fatalf("expected dark resolution after systemDark=true")
	}
}

func TestUnknownKeysRejected(t *testing.T) {
	s := NewStore(newFakePersistence(), nil, nil)

	if err := s.SetTheme("solarized"); err == nil {
		t.Fatalf("expected error for unknown theme")
	}
	if err := s.SetLanguage("fr"); err == nil {
		t.Fatalf("expected error for unknown language")
	}
	if err := s.SetNotification("pushToWatch", true); err == nil {
		t.Fatalf("expected error for unknown notification key")
	}
	if err := s.SetTrainingGoal("stamina", 3); err == nil {
		t.Fatalf("expected error for unknown goal key")
	}
	if err := s.SetPrivacy("telemetry", false); err == nil {
		t.Fatalf("expected error for unknown privacy key")
	}
	if !reflect.DeepEqual(s.Get(), Defaults()) {
		t.Fatalf("rejected mutations must not change state")
	}
}

func TestSettersMutateSingleFields(t *testing.T) {
	s := NewStore(newFakePersistence(), nil, nil)

	if err := s.SetNotification("weeklyReport", true); err != nil {
		t.Fatalf("SetNotification failed: %v", err)
	}
	if err := s.SetTrainingGoal("accuracyTarget", 90); err != nil {
		t.Fatalf("SetTrainingGoal failed: %v", err)
	}
	if err := s.SetPrivacy("shareData", true); err != nil {
		t.Fatalf("SetPrivacy failed: %v", err)
	}

	got := s.Get()
	if !got.Notifications.WeeklyReport {
		t.Fatalf("weeklyReport not set")
	}
	if got.TrainingGoals.AccuracyTarget != 90 {
		t.Fatalf("accuracyTarget not set")
	}
	if !got.Privacy.ShareData {
		t.Fatalf("shareData not set")
	}
	// Everything else stays default.
	if got.Theme != ThemeLight || !got.Notifications.TrainingReminder {
		t.Fatalf("unrelated fields changed: %+v", got)
	}
}

func TestGetReturnsDefensiveCopy(t *testing.T) {
	s := NewStore(newFakePersistence(), nil, nil)
	got := s.Get()
	got.Theme = ThemeDark
	if s.Get().Theme != ThemeLight {
		t.Fatalf("mutating the returned copy must not affect the store")
	}
}

func TestReset(t *testing.T) {
	s := NewStore(newFakePersistence(), nil, nil)
	if err := s.SetTheme(ThemeDark); err != nil {
		t.Fatalf("SetTheme failed: %v", err)
	}
	s.Reset()
	if !reflect.DeepEqual(s.Get(), Defaults()) {
		t.Fatalf("expected defaults after reset")
	}
}

func TestExportImportRoundTrip(t *testing.T) {
	s := NewStore(newFakePersistence(), nil, nil)
	if err := s.SetTheme(ThemeDark); err != nil {
		t.Fatalf("SetTheme failed: %v", err)
	}
	if err := s.SetTrainingGoal("weeklyTrainingTarget", 15); err != nil {
		t.Fatalf("SetTrainingGoal failed: %v", err)
	}

	before := s.Get()
	if !s.Import(s.Export()) {
		t.Fatalf("import of own export failed")
	}
	if !reflect.DeepEqual(s.Get(), before) {
		t.Fatalf("import(export()) must be idempotent: %+v != %+v", s.Get(), before)
	}
}

func TestImportPartialDocumentMergesOverDefaults(t *testing.T) {
	s := NewStore(newFakePersistence(), nil, nil)
	if !s.Import(`{"theme":"dark"}`) {
		t.Fatalf("expected partial import to succeed")
	}

	got := s.Get()
	want := Defaults()
	want.Theme = ThemeDark
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected defaults with theme=dark, got %+v", got)
	}
}

func TestImportMalformedLeavesStateUntouched(t *testing.T) {
	s := NewStore(newFakePersistence(), nil, nil)
	if err := s.SetLanguage("ja"); err != nil {
		t.Fatalf("SetLanguage failed: %v", err)
	}
	before := s.Get()

	if s.Import(`{not json`) {
		t.Fatalf("expected malformed import to fail")
	}
	if !reflect.DeepEqual(s.Get(), before) {
		t.Fatalf("failed import must not mutate settings")
	}
}

func TestClearPersisted(t *testing.T) {
	p := newFakePersistence()
	s := NewStore(p, nil, nil)
	if err := s.SetTheme(ThemeDark); err != nil {
		t.Fatalf("SetTheme failed: %v", err)
	}

	if err := s.ClearPersisted(); err != nil {
		t.Fatalf("ClearPersisted failed: %v", err)
	}
	if s.Get().Theme != ThemeLight {
		t.Fatalf("expected defaults after clear")
	}
}
