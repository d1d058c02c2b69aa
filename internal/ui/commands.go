package ui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"practicedesk/internal/practice"
)

// Backend is the slice of the platform API the UI calls directly: the
// explicit user actions plus the card list. *api.Client satisfies it.
type Backend interface {
	Practices(ctx context.Context) ([]practice.Practice, error)
	FinishPractice(ctx context.Context, id int) error
	SubmitRecording(ctx context.Context, id int, recordingURL string) error
}

// loadPractices fetches the card list in the background.
func loadPractices(backend Backend) tea.Cmd {
	return func() tea.Msg {
		cards, err := backend.Practices(context.Background())
		if err != nil {
			return PracticesLoadFailedMsg{Err: err}
		}
		return PracticesLoadedMsg{Practices: cards}
	}
}

// finishPractice runs the moderator's finish request.
func finishPractice(backend Backend, id int) tea.Cmd {
	return func() tea.Msg {
		err := backend.FinishPractice(context.Background(), id)
		return PracticeFinishDoneMsg{PracticeID: id, Err: err}
	}
}

// submitRecording posts the recording link.
func submitRecording(backend Backend, id int, url string) tea.Cmd {
	return func() tea.Msg {
		err := backend.SubmitRecording(context.Background(), id, url)
		return RecordingSubmitDoneMsg{PracticeID: id, Err: err}
	}
}
