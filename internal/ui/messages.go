package ui

import (
	"practicedesk/internal/lifecycle"
	"practicedesk/internal/practice"
)

// ModalStateMsg is injected into the program whenever the modal store
// changes. The app shell wires the store's change hook to program.Send.
type ModalStateMsg struct {
	State lifecycle.ModalState
}

// DismissModalMsg is sent when the user cancels a modal (Esc). Kind scopes
// the dismissal so a stale message cannot hide a newer, different modal.
type DismissModalMsg struct {
	Kind lifecycle.ModalKind
}

// NavigatePracticeMsg is sent when the user jumps to a practice from the
// join-now modal.
type NavigatePracticeMsg struct {
	PracticeID int
}

// FinishPracticeMsg is sent when the moderator confirms closing a practice.
type FinishPracticeMsg struct {
	PracticeID int
}

// PracticeFinishDoneMsg reports the finish request result.
type PracticeFinishDoneMsg struct {
	PracticeID int
	Err        error
}

// OpenEvaluationMsg is sent when the user opens the peer evaluation form
// from the finished-practice modal.
type OpenEvaluationMsg struct {
	PracticeID int
}

// SubmitRecordingMsg is sent when the user submits a recording link.
type SubmitRecordingMsg struct {
	PracticeID int
	URL        string
}

// RecordingSubmitDoneMsg reports the recording submission result.
type RecordingSubmitDoneMsg struct {
	PracticeID int
	Err        error
}

// PracticesStaleMsg is injected when the sync engine invalidates cached
// query groups; the dashboard refetches.
type PracticesStaleMsg struct {
	Groups []string
}

// PracticesLoadedMsg carries a fresh practice card list.
type PracticesLoadedMsg struct {
	Practices []practice.Practice
}

// PracticesLoadFailedMsg reports a failed list fetch. The dashboard keeps
// showing its last data; the error is logged, not rendered.
type PracticesLoadFailedMsg struct {
	Err error
}
