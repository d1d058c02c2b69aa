package lifecycle

import (
	"context"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	oteltrace "go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"practicedesk/internal/api"
	"practicedesk/internal/practice"
	"practicedesk/internal/querycache"
)

// Router translates live push events into modal store transitions and keeps
// cached list queries consistent with server reality.
//
// Start and Stop give the subscription an explicit lifecycle owned by the
// app shell: started once at session begin, stopped once at session end.
// Handlers are idempotent, so an event that duplicates what reconciliation
// already applied converges on the same state.
type Router struct {
	backend Backend
	store   *Store
	cache   Invalidator
	source  EventSource
	tracer  oteltrace.Tracer
	log     *zap.Logger

	mu          sync.Mutex
	unsubscribe func()
}

// NewRouter wires a router. It does not subscribe until Start.
func NewRouter(backend Backend, store *Store, cache Invalidator, source EventSource, log *zap.Logger) *Router {
	if log == nil {
		log = zap.NewNop()
	}
	return &Router{
		backend: backend,
		store:   store,
		cache:   cache,
		source:  source,
		tracer:  otel.Tracer("practicedesk/lifecycle"),
		log:     log,
	}
}

// Start subscribes to the event source. It is a no-op for ineligible
// sessions and when already started.
func (r *Router) Start(sess Session) {
	if !sess.Eligible() {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.unsubscribe != nil {
		return
	}
	r.unsubscribe = r.source.On(r.handle)
}

// Stop unsubscribes exactly once. In-flight detail fetches are not
// cancelled; a late store write after Stop is harmless because the store
// outlives the subscription.
func (r *Router) Stop() {
	r.mu.Lock()
	unsub := r.unsubscribe
	r.unsubscribe = nil
	r.mu.Unlock()
	if unsub != nil {
		unsub()
	}
}

// Running reports whether the router currently holds a subscription.
func (r *Router) Running() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.unsubscribe != nil
}

// handle routes one push event.
func (r *Router) handle(ev practice.Event) {
	ctx, span := r.tracer.Start(context.Background(), "route-event",
		oteltrace.WithAttributes(
			attribute.String("event", string(ev.Name)),
			attribute.Int("practice_id", ev.PracticeID),
		))
	defer span.End()

	switch ev.Name {
	case practice.EventPracticeStarted:
		r.handleStarted(ctx, ev.PracticeID)
	case practice.EventPracticeFinished:
		r.handleFinished(ev.PracticeID)
	}
}

// handleStarted fetches the full practice (the event carries only an id)
// and shows the join-now or close-out modal depending on the viewer's role.
// A failed fetch drops the event: no modal, no retry, logged with its kind.
func (r *Router) handleStarted(ctx context.Context, id int) {
	p, err := r.backend.Practice(ctx, id)
	if err != nil {
		r.log.Warn("practice-started detail fetch dropped",
			zap.Int("practice_id", id),
			zap.String("kind", api.KindOf(err).String()),
			zap.Error(err))
		return
	}
	if p.IsModerator() {
		r.store.Show(FinishModal(p.ID))
		return
	}
	r.store.Show(ActiveModal(p))
}

// handleFinished hides the join-now modal if it is up (a finished practice
// must never keep inviting), opens the evaluation modal and marks the list
// caches stale so background screens refetch on next view.
func (r *Router) handleFinished(id int) {
	r.store.HideKind(ModalActive)
	r.store.Show(FinishedModal(id))
	r.cache.Invalidate(
		querycache.GroupCards,
		querycache.GroupMine,
		querycache.GroupPast,
		querycache.GroupDetail(id),
	)
}
