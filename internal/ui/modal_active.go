package ui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"practicedesk/internal/lifecycle"
)

// ActivePracticeModal invites a participant to join a live practice. Bound
// to the store's active view only; renders nothing when no live practice
// payload is present, regardless of any in-flight hide transition.
type ActivePracticeModal struct {
	store *lifecycle.Store
}

// Ensure ActivePracticeModal implements View.
var _ View = (*ActivePracticeModal)(nil)

// NewActivePracticeModal creates the join-now modal bound to the store.
func NewActivePracticeModal(store *lifecycle.Store) *ActivePracticeModal {
	return &ActivePracticeModal{store: store}
}

// Init implements View.
func (m *ActivePracticeModal) Init() tea.Cmd {
	return nil
}

// Update implements View.
func (m *ActivePracticeModal) Update(msg tea.Msg) (View, tea.Cmd) {
	p, ok := m.store.Active()
	if !ok {
		return m, nil
	}
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return m, func() tea.Msg { return DismissModalMsg{Kind: lifecycle.ModalActive} }
		case "enter":
			return m, func() tea.Msg { return NavigatePracticeMsg{PracticeID: p.ID} }
		}
	}
	return m, nil
}

// View implements View.
func (m *ActivePracticeModal) View() string {
	p, ok := m.store.Active()
	if !ok {
		return ""
	}
	content := Styles.TitleUrgent.Render("Practice is live") + "\n\n"
	content += Styles.Label.Render(fmt.Sprintf("%s (#%d)", p.Title, p.ID)) + "\n"
	content += Styles.Muted.Render(fmt.Sprintf("Your role: %s", p.MyRole))
	if p.RoomURL != "" {
		content += "\n" + Styles.Muted.Render(p.RoomURL)
	}
	content += "\n\n" + Styles.Help.Render("Enter: open practice  Esc: dismiss")
	return Styles.BoxUrgent.Render(content)
}
