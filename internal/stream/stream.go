// Package stream maintains the persistent server-sent-events connection to
// the practice lifecycle channel and fans incoming events out to local
// listeners. The transport reconnects with exponential backoff until
// Disconnect is called; listeners never see transport errors.
package stream

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/cenkalti/backoff/v5"
	"go.uber.org/zap"

	"practicedesk/internal/jsonutil"
	"practicedesk/internal/practice"
)

// Config holds the stream's connection parameters.
type Config struct {
	// URL of the SSE endpoint.
	URL string
	// Token is the viewer's bearer token, sent on connect.
	Token string
	// Logger receives connection state changes and dropped-message notices.
	// Nil means no logging.
	Logger *zap.Logger
	// InitialBackoff overrides the first reconnect delay. Zero keeps the
	// library default. Tests use this to reconnect fast.
	InitialBackoff time.Duration
}

// Stream is the event source. One instance per running app, created at the
// composition root and injected into the sync engine.
type Stream struct {
	cfg  Config
	http *http.Client
	log  *zap.Logger

	mu        sync.Mutex
	listeners map[int]func(practice.Event)
	order     []int
	nextID    int
	connected bool
	running   bool
	cancel    context.CancelFunc
}

// New creates a disconnected stream. The first listener triggers connection.
func New(cfg Config) *Stream {
	log := cfg.Logger
	if log == nil {
		log = zap.NewNop()
	}
	return &Stream{
		cfg: cfg,
		// No client timeout: the response body stays open for the life of
		// the connection.
		http:      &http.Client{},
		log:       log,
		listeners: make(map[int]func(practice.Event)),
	}
}

// On registers a listener and returns its remover. The first registration
// after creation or after Disconnect starts the connection. The remover is
// safe to call more than once; only the first call removes.
func (s *Stream) On(fn func(practice.Event)) func() {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.listeners[id] = fn
	s.order = append(s.order, id)
	startNeeded := !s.running
	s.running = true
	s.mu.Unlock()

	if startNeeded {
		s.start()
	}

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			defer s.mu.Unlock()
			delete(s.listeners, id)
			for i, v := range s.order {
				if v == id {
					s.order = append(s.order[:i], s.order[i+1:]...)
					break
				}
			}
		})
	}
}

// Connected reports whether the transport currently has a live connection.
func (s *Stream) Connected() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.connected
}

// Disconnect closes the transport and stops reconnecting. Listeners stay
// registered; a later On call reconnects.
func (s *Stream) Disconnect() {
	s.mu.Lock()
	cancel := s.cancel
	s.cancel = nil
	s.running = false
	s.connected = false
	s.mu.Unlock()
	if cancel != nil {
		cancel()
	}
}

// start launches the connection loop goroutine.
func (s *Stream) start() {
	ctx, cancel := context.WithCancel(context.Background())
	s.mu.Lock()
	s.cancel = cancel
	s.mu.Unlock()
	go s.run(ctx)
}

// run holds the connection open, reconnecting with exponential backoff on
// every transport failure. It exits only when the context is cancelled.
func (s *Stream) run(ctx context.Context) {
	b := backoff.NewExponentialBackOff()
	if s.cfg.InitialBackoff > 0 {
		b.InitialInterval = s.cfg.InitialBackoff
	}
	b.MaxInterval = time.Minute

	for {
		err := s.consume(ctx, b)
		s.setConnected(false)
		if ctx.Err() != nil {
			return
		}
		s.log.Warn("stream disconnected, retrying", zap.Error(err))

		select {
		case <-time.After(b.NextBackOff()):
		case <-ctx.Done():
			return
		}
	}
}

// consume opens one SSE connection and dispatches frames until it fails.
// A healthy connection resets the backoff so the next outage starts from
// the initial interval again.
func (s *Stream) consume(ctx context.Context, b *backoff.ExponentialBackOff) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.cfg.URL, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "text/event-stream")
	req.Header.Set("Cache-Control", "no-cache")
	if s.cfg.Token != "" {
		req.Header.Set("Authorization", "Bearer "+s.cfg.Token)
	}

	resp, err := s.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return &statusError{code: resp.StatusCode}
	}

	s.setConnected(true)
	b.Reset()
	s.log.Info("stream connected", zap.String("url", s.cfg.URL))

	scanner := bufio.NewScanner(resp.Body)
	var name, data string
	for scanner.Scan() {
		line := scanner.Text()
		switch {
		case line == "":
			if data != "" {
				s.dispatch(name, data)
			}
			name, data = "", ""
		case strings.HasPrefix(line, "event:"):
			name = strings.TrimSpace(strings.TrimPrefix(line, "event:"))
		case strings.HasPrefix(line, "data:"):
			data = strings.TrimSpace(strings.TrimPrefix(line, "data:"))
		case strings.HasPrefix(line, ":"):
			// comment/keepalive
		}
	}
	return scanner.Err()
}

// dispatch parses one frame and delivers it to listeners in registration
// order. Malformed payloads are dropped per message; a bad frame must never
// take down the listener set or the connection.
func (s *Stream) dispatch(name, data string) {
	raw := jsonutil.MaybeUnwrapEnvelope([]byte(data))

	var ev practice.Event
	if err := json.Unmarshal(raw, &ev); err != nil {
		s.log.Debug("dropping malformed stream message", zap.Error(err))
		return
	}
	// The event name may come from the SSE frame or the payload itself.
	if ev.Name == "" {
		ev.Name = practice.EventName(name)
	}
	if !ev.Name.Known() || ev.PracticeID == 0 {
		s.log.Debug("dropping unrecognized stream message",
			zap.String("event", string(ev.Name)))
		return
	}

	s.mu.Lock()
	fns := make([]func(practice.Event), 0, len(s.order))
	for _, id := range s.order {
		if fn, ok := s.listeners[id]; ok {
			fns = append(fns, fn)
		}
	}
	s.mu.Unlock()

	for _, fn := range fns {
		fn(ev)
	}
}

func (s *Stream) setConnected(v bool) {
	s.mu.Lock()
	s.connected = v
	s.mu.Unlock()
}

type statusError struct{ code int }

func (e *statusError) Error() string {
	return fmt.Sprintf("unexpected status %d", e.code)
}
