package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"practicedesk/internal/lifecycle"
	"practicedesk/internal/querycache"
)

// AppModel is the root model: the practices dashboard plus at most one
// blocking modal, driven strictly by the lifecycle store. The app never
// decides which modal to show; it mirrors store state.
type AppModel struct {
	Store     *lifecycle.Store
	Cache     *querycache.Cache
	Backend   Backend
	Dashboard *DashboardView
	Log       *zap.Logger

	modal     View
	modalKind lifecycle.ModalKind
	width     int
	height    int
}

// NewAppModel creates the root application model.
func NewAppModel(store *lifecycle.Store, cache *querycache.Cache, backend Backend, log *zap.Logger) *AppModel {
	if log == nil {
		log = zap.NewNop()
	}
	return &AppModel{
		Store:     store,
		Cache:     cache,
		Backend:   backend,
		Dashboard: NewDashboardView(),
		Log:       log,
	}
}

// Ensure AppModel can be used as tea.Model via adapter.
var _ tea.Model = (*appModelAdapter)(nil)

// appModelAdapter wraps AppModel to implement tea.Model.
type appModelAdapter struct {
	*AppModel
}

// AsTeaModel returns a tea.Model adapter for use with tea.NewProgram.
func (m *AppModel) AsTeaModel() tea.Model {
	return &appModelAdapter{AppModel: m}
}

// Init implements tea.Model.
func (a *appModelAdapter) Init() tea.Cmd {
	return tea.Batch(
		a.Dashboard.Init(),
		a.Dashboard.SetLoading(true),
		loadPractices(a.Backend),
	)
}

// Update implements tea.Model.
func (a *appModelAdapter) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = msg.Width, msg.Height
		a.Dashboard.SetSize(msg.Width, msg.Height)
		return a, nil

	case ModalStateMsg:
		return a, a.syncModal(msg.State)

	case DismissModalMsg:
		a.Store.HideKind(msg.Kind)
		return a, a.syncModal(a.Store.State())

	case NavigatePracticeMsg:
		a.Store.HideKind(lifecycle.ModalActive)
		a.Dashboard.Select(msg.PracticeID)
		return a, a.syncModal(a.Store.State())

	case FinishPracticeMsg:
		return a, finishPractice(a.Backend, msg.PracticeID)

	case PracticeFinishDoneMsg:
		if msg.Err == nil {
			// The server will also push practice-finished; hiding here just
			// removes the confirm modal sooner. Both paths are idempotent.
			a.Store.HideKind(lifecycle.ModalFinish)
			return a, a.syncModal(a.Store.State())
		}
		a.Log.Warn("finish practice failed",
			zap.Int("practice_id", msg.PracticeID), zap.Error(msg.Err))
		return a, a.updateModal(msg)

	case OpenEvaluationMsg:
		// Evaluation forms live outside this client's scope; acknowledging
		// clears the modal.
		a.Store.HideKind(lifecycle.ModalFinished)
		return a, a.syncModal(a.Store.State())

	case SubmitRecordingMsg:
		return a, submitRecording(a.Backend, msg.PracticeID, msg.URL)

	case RecordingSubmitDoneMsg:
		if msg.Err == nil {
			a.Store.HideKind(lifecycle.ModalUpload)
			return a, a.syncModal(a.Store.State())
		}
		a.Log.Warn("recording submission failed",
			zap.Int("practice_id", msg.PracticeID), zap.Error(msg.Err))
		return a, a.updateModal(msg)

	case PracticesStaleMsg:
		return a, tea.Batch(a.Dashboard.SetLoading(true), loadPractices(a.Backend))

	case PracticesLoadedMsg:
		a.Cache.Put(querycache.GroupCards, msg.Practices)
		a.Dashboard.SetPractices(msg.Practices)
		return a, nil

	case PracticesLoadFailedMsg:
		a.Log.Warn("practice list fetch failed", zap.Error(msg.Err))
		a.Dashboard.SetLoading(false)
		return a, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}
		if a.modal != nil {
			return a, a.updateModal(msg)
		}
		if msg.String() == "q" {
			return a, tea.Quit
		}
	}

	if a.modal != nil {
		return a, a.updateModal(msg)
	}
	v, cmd := a.Dashboard.Update(msg)
	if d, ok := v.(*DashboardView); ok {
		a.Dashboard = d
	}
	return a, cmd
}

// View implements tea.Model.
func (a *appModelAdapter) View() string {
	base := a.Dashboard.View()
	if a.modal == nil {
		return base
	}
	mv := a.modal.View()
	if mv == "" {
		// Store payload already gone; never render a stale modal frame.
		return base
	}
	if a.width > 0 && a.height > 0 {
		return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, mv)
	}
	return mv
}

// syncModal rebuilds the modal view to mirror the store state. Re-applying
// the same kind keeps the existing view (and its input state) untouched.
func (a *AppModel) syncModal(state lifecycle.ModalState) tea.Cmd {
	if state.Kind == a.modalKind && a.modal != nil {
		return nil
	}
	a.modalKind = state.Kind
	switch state.Kind {
	case lifecycle.ModalActive:
		a.modal = NewActivePracticeModal(a.Store)
	case lifecycle.ModalFinished:
		a.modal = NewFinishedPracticeModal(a.Store)
	case lifecycle.ModalFinish:
		a.modal = NewFinishPracticeModal(a.Store)
	case lifecycle.ModalUpload:
		a.modal = NewUploadRecordingModal(a.Store)
	default:
		a.modal = nil
		return nil
	}
	return a.modal.Init()
}

// updateModal forwards a message to the current modal view.
func (a *AppModel) updateModal(msg tea.Msg) tea.Cmd {
	if a.modal == nil {
		return nil
	}
	v, cmd := a.modal.Update(msg)
	a.modal = v
	return cmd
}

// Modal exposes the current modal view for tests.
func (a *AppModel) Modal() View { return a.modal }
