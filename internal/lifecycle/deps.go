package lifecycle

import (
	"context"

	"practicedesk/internal/practice"
)

// Backend is the slice of the platform API the sync engine needs.
// *api.Client satisfies it; tests substitute fakes.
type Backend interface {
	CurrentState(ctx context.Context) (practice.CurrentState, error)
	Practice(ctx context.Context, id int) (practice.Practice, error)
}

// EventSource delivers practice lifecycle push events. *stream.Stream
// satisfies it.
type EventSource interface {
	On(fn func(practice.Event)) (unsubscribe func())
}

// Invalidator marks cached query groups stale. *querycache.Cache satisfies
// it. The engine does not know or care how consumers refetch.
type Invalidator interface {
	Invalidate(groups ...string)
}
