package lifecycle

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	oteltrace "go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"practicedesk/internal/api"
	"practicedesk/internal/practice"
)

// Reconciler establishes the correct initial modal state from server truth,
// once per authenticated session. It is best-effort: any failure degrades
// to "no modal shown", which is safe because a live event still fires for
// practices that transition while the user is connected.
type Reconciler struct {
	backend Backend
	store   *Store
	tracer  oteltrace.Tracer
	log     *zap.Logger
}

// NewReconciler wires a reconciler against the given backend and store.
func NewReconciler(backend Backend, store *Store, log *zap.Logger) *Reconciler {
	if log == nil {
		log = zap.NewNop()
	}
	return &Reconciler{
		backend: backend,
		store:   store,
		tracer:  otel.Tracer("practicedesk/lifecycle"),
		log:     log,
	}
}

// Run fetches the current-state snapshot and applies the decision table.
// It does nothing for ineligible sessions. Errors are deliberately not
// surfaced to the caller; they are logged with their kind and the modal
// stays hidden.
func (r *Reconciler) Run(ctx context.Context, sess Session) {
	if !sess.Eligible() {
		return
	}

	ctx, span := r.tracer.Start(ctx, "reconcile")
	defer span.End()

	state, err := r.backend.CurrentState(ctx)
	if err != nil {
		// Degrade silently by policy; the log entry marks this as a
		// deliberate drop, not an unhandled error.
		span.RecordError(err)
		r.log.Warn("reconciliation fetch dropped",
			zap.String("kind", api.KindOf(err).String()),
			zap.Error(err))
		return
	}
	if !state.IsModalOpen {
		return
	}
	if state.Practice == nil {
		r.log.Warn("current-state snapshot missing practice payload",
			zap.String("state", string(state.State)))
		return
	}

	next := decide(state)
	if next.Kind == ModalNone {
		r.log.Warn("current-state snapshot with unknown screen",
			zap.String("state", string(state.State)))
		return
	}

	span.SetAttributes(
		attribute.String("modal", next.Kind.String()),
		attribute.Int("practice_id", next.PracticeID),
	)
	r.store.Show(next)
}

// decide maps a snapshot to the modal to show. The moderator distinction
// only matters for a practice in progress: moderators close practices out,
// everyone else joins them.
func decide(state practice.CurrentState) ModalState {
	p := *state.Practice
	switch state.State {
	case practice.ScreenInProgress:
		if p.IsModerator() {
			return FinishModal(p.ID)
		}
		return ActiveModal(p)
	case practice.ScreenEval:
		return FinishedModal(p.ID)
	case practice.ScreenVideo:
		return UploadModal(p.ID)
	default:
		return NoModal()
	}
}
