package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"practicedesk/internal/lifecycle"
)

// UploadRecordingModal collects the recording link for a finished practice.
type UploadRecordingModal struct {
	store   *lifecycle.Store
	input   textinput.Model
	waiting bool
	failed  bool
}

// Ensure UploadRecordingModal implements View.
var _ View = (*UploadRecordingModal)(nil)

// NewUploadRecordingModal creates the upload-recording modal.
func NewUploadRecordingModal(store *lifecycle.Store) *UploadRecordingModal {
	ti := textinput.New()
	ti.Placeholder = "https://…"
	ti.Width = 48
	ti.Focus()
	return &UploadRecordingModal{store: store, input: ti}
}

// Init implements View.
func (m *UploadRecordingModal) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements View.
func (m *UploadRecordingModal) Update(msg tea.Msg) (View, tea.Cmd) {
	id, ok := m.store.Upload()
	if !ok {
		return m, nil
	}
	switch msg := msg.(type) {
	case RecordingSubmitDoneMsg:
		m.waiting = false
		m.failed = msg.Err != nil
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return m, func() tea.Msg { return DismissModalMsg{Kind: lifecycle.ModalUpload} }
		case "enter":
			url := strings.TrimSpace(m.input.Value())
			if url == "" || m.waiting {
				return m, nil
			}
			m.waiting = true
			m.failed = false
			return m, func() tea.Msg { return SubmitRecordingMsg{PracticeID: id, URL: url} }
		}
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View implements View.
func (m *UploadRecordingModal) View() string {
	id, ok := m.store.Upload()
	if !ok {
		return ""
	}
	content := Styles.Title.Render("Upload recording") + "\n\n"
	content += Styles.Label.Render(fmt.Sprintf("Practice #%d is waiting for its recording link.", id)) + "\n\n"
	content += m.input.View() + "\n"
	if m.waiting {
		content += Styles.Muted.Render("Submitting…") + "\n"
	}
	if m.failed {
		content += Styles.Muted.Render("Submission failed, try again.") + "\n"
	}
	content += "\n" + Styles.Help.Render("Enter: submit  Esc: dismiss")
	return Styles.BoxDefault.Render(content)
}
