// Package lifecycle is the practice lifecycle synchronization layer: it
// reconciles the bootstrap snapshot with live stream events and drives the
// single blocking modal the UI may show at any time.
//
// Ordering between the snapshot fetch and live events is not guaranteed;
// every transition here is idempotent so either interleaving converges on
// the same modal state.
package lifecycle

import "practicedesk/internal/practice"

// ModalKind tags the modal state union.
type ModalKind int

const (
	// ModalNone means no blocking modal is shown.
	ModalNone ModalKind = iota
	// ModalActive prompts a participant to join a live practice.
	ModalActive
	// ModalFinished opens the peer evaluation window.
	ModalFinished
	// ModalFinish prompts the moderator to close out a live practice.
	ModalFinish
	// ModalUpload prompts for the practice recording link.
	ModalUpload
)

// String returns a short label for the kind.
func (k ModalKind) String() string {
	switch k {
	case ModalNone:
		return "none"
	case ModalActive:
		return "active"
	case ModalFinished:
		return "finished"
	case ModalFinish:
		return "finish"
	case ModalUpload:
		return "upload"
	default:
		return "unknown"
	}
}

// ModalState is a tagged union: exactly one modal (or none) at a time, by
// construction. Practice is set only for ModalActive; PracticeID for the
// id-only kinds.
type ModalState struct {
	Kind       ModalKind
	Practice   *practice.Practice
	PracticeID int
}

// NoModal is the empty state.
func NoModal() ModalState {
	return ModalState{Kind: ModalNone}
}

// ActiveModal builds the join-now state with the full practice payload.
func ActiveModal(p practice.Practice) ModalState {
	return ModalState{Kind: ModalActive, Practice: &p, PracticeID: p.ID}
}

// FinishedModal builds the evaluation-window state.
func FinishedModal(practiceID int) ModalState {
	return ModalState{Kind: ModalFinished, PracticeID: practiceID}
}

// FinishModal builds the moderator close-out state.
func FinishModal(practiceID int) ModalState {
	return ModalState{Kind: ModalFinish, PracticeID: practiceID}
}

// UploadModal builds the upload-recording state.
func UploadModal(practiceID int) ModalState {
	return ModalState{Kind: ModalUpload, PracticeID: practiceID}
}

// Visible reports whether a modal should be rendered. The payload invariant
// holds by construction: a non-none state always carries its payload.
func (s ModalState) Visible() bool {
	return s.Kind != ModalNone
}

// Equal reports whether two states would present the same modal. Used to
// make repeated activations no-ops.
func (s ModalState) Equal(other ModalState) bool {
	if s.Kind != other.Kind || s.PracticeID != other.PracticeID {
		return false
	}
	if (s.Practice == nil) != (other.Practice == nil) {
		return false
	}
	if s.Practice != nil && *s.Practice != *other.Practice {
		return false
	}
	return true
}
