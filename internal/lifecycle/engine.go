package lifecycle

import (
	"context"

	"go.uber.org/zap"
)

// Engine bundles the reconciler and router behind one lifecycle. The app
// shell starts it once after authentication settles and stops it once at
// session end.
type Engine struct {
	store      *Store
	reconciler *Reconciler
	router     *Router
}

// NewEngine wires the full sync core against its collaborators.
func NewEngine(backend Backend, source EventSource, cache Invalidator, log *zap.Logger) *Engine {
	if log == nil {
		log = zap.NewNop()
	}
	store := NewStore()
	return &Engine{
		store:      store,
		reconciler: NewReconciler(backend, store, log),
		router:     NewRouter(backend, store, cache, source, log),
	}
}

// Store exposes the modal store for the presentation layer.
func (e *Engine) Store() *Store { return e.store }

// Start subscribes to live events, then reconciles against the bootstrap
// snapshot. Subscribing first means a transition racing the snapshot fetch
// is not lost; idempotent store transitions absorb the duplicate.
func (e *Engine) Start(ctx context.Context, sess Session) {
	e.router.Start(sess)
	e.reconciler.Run(ctx, sess)
}

// Stop unsubscribes from live events. Idempotent.
func (e *Engine) Stop() {
	e.router.Stop()
}
