package lifecycle

import (
	"sync"

	"practicedesk/internal/practice"
)

// Store holds the current modal state. It is dumb on purpose: Show replaces
// the state unconditionally (last write wins) and Hide clears it; deciding
// which modal to show is the router's and reconciler's job.
//
// One instance per running app, created at the composition root and
// injected. Tests construct a fresh one each.
type Store struct {
	mu       sync.Mutex
	state    ModalState
	onChange func(ModalState)
}

// NewStore creates a store with no modal shown.
func NewStore() *Store {
	return &Store{state: NoModal()}
}

// Show replaces the current state. Showing a state equal to the current one
// is a no-op and does not notify.
func (s *Store) Show(state ModalState) {
	s.mu.Lock()
	if s.state.Equal(state) {
		s.mu.Unlock()
		return
	}
	s.state = state
	hook := s.onChange
	s.mu.Unlock()

	if hook != nil {
		hook(state)
	}
}

// Hide clears the modal. Idempotent.
func (s *Store) Hide() {
	s.Show(NoModal())
}

// HideKind clears the modal only if the given kind is currently shown.
// Hiding a kind that is not shown is a no-op.
func (s *Store) HideKind(kind ModalKind) {
	s.mu.Lock()
	if s.state.Kind != kind {
		s.mu.Unlock()
		return
	}
	s.state = NoModal()
	hook := s.onChange
	state := s.state
	s.mu.Unlock()

	if hook != nil {
		hook(state)
	}
}

// State returns the current modal state.
func (s *Store) State() ModalState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// SetOnChange registers the single change hook. The UI shell uses it to
// inject a message into the running program.
func (s *Store) SetOnChange(fn func(ModalState)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onChange = fn
}

// Active returns the live practice payload when the join-now modal is
// shown. The second return is false for every other kind.
func (s *Store) Active() (practice.Practice, bool) {
	st := s.State()
	if st.Kind != ModalActive || st.Practice == nil {
		return practice.Practice{}, false
	}
	return *st.Practice, true
}

// Finished returns the practice id when the evaluation modal is shown.
func (s *Store) Finished() (int, bool) {
	st := s.State()
	return st.PracticeID, st.Kind == ModalFinished
}

// Finish returns the practice id when the moderator close-out modal is
// shown.
func (s *Store) Finish() (int, bool) {
	st := s.State()
	return st.PracticeID, st.Kind == ModalFinish
}

// Upload returns the practice id when the upload-recording modal is shown.
func (s *Store) Upload() (int, bool) {
	st := s.State()
	return st.PracticeID, st.Kind == ModalUpload
}
