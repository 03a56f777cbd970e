package tui

import (
	"strings"

	"github.com/akyairhashvil/coachtrack/internal/models"
	tea "github.com/charmbracelet/bubbletea"
)

// profileFields lists the editable fields in display order.
var profileFields = []string{"Name", "Email", "Phone", "Location", "Level"}

func (m MainModel) handleProfileKey(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "up", "k":
		if m.profile.FieldIdx > 0 {
			m.profile.FieldIdx--
		}
	case "down", "j":
		if m.profile.FieldIdx < len(profileFields)-1 {
			m.profile.FieldIdx++
		}
	case "e", "enter":
		m.profile.Editing = true
		m.profile.Input.SetValue(m.profileFieldValue(m.profile.FieldIdx))
		m.profile.Input.Focus()
	}
	return m, nil
}

func (m MainModel) profileFieldValue(idx int) string {
	p := m.data.Profile()
	switch profileFields[idx] {
	case "Name":
		return p.Name
	case "Email":
		return p.Email
	case "Phone":
		return p.Phone
	case "Location":
		return p.Location
	case "Level":
		return p.Level
	}
	return ""
}

// commitProfileEdit saves the edited field as a partial profile update.
func (m MainModel) commitProfileEdit() (tea.Model, tea.Cmd) {
	value := strings.TrimSpace(m.profile.Input.Value())
	m.profile.Editing = false
	if value == "" {
		return m, nil
	}

	var updates models.UserProfile
	switch profileFields[m.profile.FieldIdx] {
	case "Name":
		updates.Name = value
		// Keep the avatar glyph in sync with the display name.
		updates.Avatar = strings.ToUpper(value[:1])
	case "Email":
		updates.Email = value
	case "Phone":
		updates.Phone = value
	case "Location":
		updates.Location = value
	case "Level":
		updates.Level = value
	}
	m.data.UpdateProfile(updates)
	return m, m.pushToast(models.NotifySuccess, "Profile updated", profileFields[m.profile.FieldIdx])
}
