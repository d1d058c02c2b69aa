package ui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"practicedesk/internal/lifecycle"
)

// FinishedPracticeModal announces that a practice finished and offers the
// peer evaluation form.
type FinishedPracticeModal struct {
	store *lifecycle.Store
}

// Ensure FinishedPracticeModal implements View.
var _ View = (*FinishedPracticeModal)(nil)

// NewFinishedPracticeModal creates the evaluation-window modal.
func NewFinishedPracticeModal(store *lifecycle.Store) *FinishedPracticeModal {
	return &FinishedPracticeModal{store: store}
}

// Init implements View.
func (m *FinishedPracticeModal) Init() tea.Cmd {
	return nil
}

// Update implements View.
func (m *FinishedPracticeModal) Update(msg tea.Msg) (View, tea.Cmd) {
	id, ok := m.store.Finished()
	if !ok {
		return m, nil
	}
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return m, func() tea.Msg { return DismissModalMsg{Kind: lifecycle.ModalFinished} }
		case "enter":
			return m, func() tea.Msg { return OpenEvaluationMsg{PracticeID: id} }
		}
	}
	return m, nil
}

// View implements View.
func (m *FinishedPracticeModal) View() string {
	id, ok := m.store.Finished()
	if !ok {
		return ""
	}
	content := Styles.Title.Render("Practice finished") + "\n\n"
	content += Styles.Label.Render(fmt.Sprintf("Practice #%d has ended. Evaluate your peers while it is fresh.", id))
	content += "\n\n" + Styles.Help.Render("Enter: open evaluation  Esc: dismiss")
	return Styles.BoxDefault.Render(content)
}
