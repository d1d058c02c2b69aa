package lifecycle

import (
	"context"
	"errors"
	"testing"

	"practicedesk/internal/practice"
)

// fakeBackend implements Backend with canned responses.
type fakeBackend struct {
	state     practice.CurrentState
	stateErr  error
	stateHits int

	detail     map[int]practice.Practice
	detailErr  error
	detailHits int
}

func (f *fakeBackend) CurrentState(ctx context.Context) (practice.CurrentState, error) {
	f.stateHits++
	return f.state, f.stateErr
}

func (f *fakeBackend) Practice(ctx context.Context, id int) (practice.Practice, error) {
	f.detailHits++
	if f.detailErr != nil {
		return practice.Practice{}, f.detailErr
	}
	p, ok := f.detail[id]
	if !ok {
		return practice.Practice{}, errors.New("not found")
	}
	return p, nil
}

func eligibleSession() Session {
	return Session{Role: practice.PlatformMOP, UserPresent: true}
}

func snapshot(screen practice.ModalScreen, p practice.Practice) practice.CurrentState {
	return practice.CurrentState{IsModalOpen: true, State: screen, Practice: &p}
}

func TestReconciler_DecisionTable(t *testing.T) {
	tests := []struct {
		name     string
		screen   practice.ModalScreen
		role     practice.Role
		wantKind ModalKind
	}{
		{"in progress as moderator", practice.ScreenInProgress, practice.RoleModerator, ModalFinish},
		{"in progress as participant", practice.ScreenInProgress, practice.RoleSeller, ModalActive},
		{"evaluation window", practice.ScreenEval, practice.RoleModerator, ModalFinished},
		{"video upload pending", practice.ScreenVideo, practice.RoleBuyer, ModalUpload},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := practiceFixture(7, tt.role)
			backend := &fakeBackend{state: snapshot(tt.screen, p)}
			store := NewStore()
			r := NewReconciler(backend, store, nil)

			r.Run(context.Background(), eligibleSession())

			st := store.State()
			if st.Kind != tt.wantKind {
				t.Fatalf("expected %s modal, got %s", tt.wantKind, st.Kind)
			}
			if st.PracticeID != 7 {
				t.Errorf("expected practice id 7, got %d", st.PracticeID)
			}
			if tt.wantKind == ModalActive {
				if st.Practice == nil || st.Practice.ID != 7 {
					t.Errorf("active modal must carry the full practice payload")
				}
			}
		})
	}
}

func TestReconciler_NoModalWhenClosed(t *testing.T) {
	backend := &fakeBackend{state: practice.CurrentState{IsModalOpen: false}}
	store := NewStore()
	NewReconciler(backend, store, nil).Run(context.Background(), eligibleSession())

	if store.State().Kind != ModalNone {
		t.Errorf("expected no modal for a closed snapshot")
	}
}

func TestReconciler_ClientRoleNeverRuns(t *testing.T) {
	backend := &fakeBackend{state: snapshot(practice.ScreenInProgress, practiceFixture(1, practice.RoleSeller))}
	store := NewStore()
	sess := Session{Role: practice.PlatformClient, UserPresent: true}

	NewReconciler(backend, store, nil).Run(context.Background(), sess)

	if backend.stateHits != 0 {
		t.Errorf("reconciler must not fetch for role CLIENT")
	}
	if store.State().Kind != ModalNone {
		t.Errorf("reconciler must not activate any modal for role CLIENT")
	}
}

func TestReconciler_SkipsWhileAuthUnsettled(t *testing.T) {
	backend := &fakeBackend{state: snapshot(practice.ScreenEval, practiceFixture(2, practice.RoleBuyer))}
	store := NewStore()
	r := NewReconciler(backend, store, nil)

	r.Run(context.Background(), Session{Role: practice.PlatformMOP, Loading: true, UserPresent: true})
	r.Run(context.Background(), Session{Role: practice.PlatformMOP, UserPresent: false})

	if backend.stateHits != 0 {
		t.Errorf("reconciler must wait for auth to settle, got %d fetches", backend.stateHits)
	}
}

func TestReconciler_FetchFailureDegradesSilently(t *testing.T) {
	backend := &fakeBackend{stateErr: errors.New("boom")}
	store := NewStore()

	NewReconciler(backend, store, nil).Run(context.Background(), eligibleSession())

	if store.State().Kind != ModalNone {
		t.Errorf("fetch failure must leave the modal hidden")
	}
}

func TestReconciler_MissingPracticePayloadIgnored(t *testing.T) {
	backend := &fakeBackend{state: practice.CurrentState{IsModalOpen: true, State: practice.ScreenEval}}
	store := NewStore()

	NewReconciler(backend, store, nil).Run(context.Background(), eligibleSession())

	if store.State().Kind != ModalNone {
		t.Errorf("snapshot without practice payload must not activate a modal")
	}
}
