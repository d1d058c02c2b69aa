package ui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"practicedesk/internal/lifecycle"
)

// FinishPracticeModal asks the moderator to close out a live practice.
// Enter or y confirms; Esc dismisses.
type FinishPracticeModal struct {
	store *lifecycle.Store
	// waiting is true while the finish request is in flight, so a second
	// Enter does not fire a duplicate request.
	waiting bool
}

// Ensure FinishPracticeModal implements View.
var _ View = (*FinishPracticeModal)(nil)

// NewFinishPracticeModal creates the moderator close-out modal.
func NewFinishPracticeModal(store *lifecycle.Store) *FinishPracticeModal {
	return &FinishPracticeModal{store: store}
}

// Init implements View.
func (m *FinishPracticeModal) Init() tea.Cmd {
	return nil
}

// Update implements View.
func (m *FinishPracticeModal) Update(msg tea.Msg) (View, tea.Cmd) {
	id, ok := m.store.Finish()
	if !ok {
		return m, nil
	}
	switch msg := msg.(type) {
	case PracticeFinishDoneMsg:
		m.waiting = false
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return m, func() tea.Msg { return DismissModalMsg{Kind: lifecycle.ModalFinish} }
		case "enter", "y":
			if m.waiting {
				return m, nil
			}
			m.waiting = true
			return m, func() tea.Msg { return FinishPracticeMsg{PracticeID: id} }
		}
	}
	return m, nil
}

// View implements View.
func (m *FinishPracticeModal) View() string {
	id, ok := m.store.Finish()
	if !ok {
		return ""
	}
	content := Styles.Title.Render("Finish practice?") + "\n\n"
	content += Styles.Label.Render(fmt.Sprintf("Practice #%d is in progress and you are its moderator.", id))
	if m.waiting {
		content += "\n" + Styles.Muted.Render("Finishing…")
	}
	content += "\n\n" + Styles.Help.Render("y/Enter: finish  Esc: dismiss")
	return Styles.BoxDefault.Render(content)
}
