package lifecycle

import (
	"testing"

	"practicedesk/internal/practice"
)

func practiceFixture(id int, role practice.Role) practice.Practice {
	return practice.Practice{
		ID:     id,
		Title:  "Cold call drill",
		Status: practice.StatusInProgress,
		MyRole: role,
	}
}

func TestStore_ShowLastWriteWins(t *testing.T) {
	s := NewStore()
	a := practiceFixture(1, practice.RoleSeller)
	b := practiceFixture(2, practice.RoleBuyer)

	s.Show(ActiveModal(a))
	s.Show(ActiveModal(b))

	got, ok := s.Active()
	if !ok {
		t.Fatalf("expected active modal visible")
	}
	if got.ID != 2 {
		t.Errorf("expected payload from last Show (id 2), got id %d", got.ID)
	}
}

func TestStore_HideIdempotent(t *testing.T) {
	s := NewStore()
	s.Hide()
	s.Hide()

	st := s.State()
	if st.Kind != ModalNone || st.Practice != nil || st.PracticeID != 0 {
		t.Errorf("expected empty state after repeated Hide, got %+v", st)
	}
}

func TestStore_ShowSameStateDoesNotNotify(t *testing.T) {
	s := NewStore()
	fired := 0
	s.SetOnChange(func(ModalState) { fired++ })

	s.Show(FinishedModal(7))
	s.Show(FinishedModal(7))

	if fired != 1 {
		t.Errorf("expected exactly 1 notification for repeated identical Show, got %d", fired)
	}
}

func TestStore_HideKindOnlyMatching(t *testing.T) {
	s := NewStore()
	s.Show(UploadModal(3))

	s.HideKind(ModalActive)
	if _, ok := s.Upload(); !ok {
		t.Errorf("HideKind(ModalActive) must not clear the upload modal")
	}

	s.HideKind(ModalUpload)
	if s.State().Kind != ModalNone {
		t.Errorf("HideKind(ModalUpload) should clear the upload modal")
	}
}

func TestStore_MutualExclusionByConstruction(t *testing.T) {
	s := NewStore()
	s.Show(ActiveModal(practiceFixture(5, practice.RoleSeller)))
	s.Show(FinishedModal(5))

	if _, ok := s.Active(); ok {
		t.Errorf("active view must be empty once finished modal is shown")
	}
	id, ok := s.Finished()
	if !ok || id != 5 {
		t.Errorf("expected finished modal for practice 5, got id=%d ok=%v", id, ok)
	}
}

func TestStore_VisiblePayloadInvariant(t *testing.T) {
	s := NewStore()

	if s.State().Visible() {
		t.Errorf("fresh store must not be visible")
	}

	s.Show(FinishModal(9))
	st := s.State()
	if !st.Visible() || st.PracticeID != 9 {
		t.Errorf("visible state must carry its payload, got %+v", st)
	}

	s.Hide()
	st = s.State()
	if st.Visible() || st.Practice != nil {
		t.Errorf("hidden state must carry no payload, got %+v", st)
	}
}
