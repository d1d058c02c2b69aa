package practice

// EventName identifies a push event from the practice lifecycle stream.
type EventName string

const (
	EventPracticeStarted  EventName = "practice-started"
	EventPracticeFinished EventName = "practice-finished"
)

// Known reports whether the event name is one this client handles.
// Unknown names are ignored by the stream layer, not errors.
func (n EventName) Known() bool {
	return n == EventPracticeStarted || n == EventPracticeFinished
}

// Event is a single practice lifecycle push event. It carries only the
// practice ID; consumers fetch detail when they need more.
type Event struct {
	Name       EventName `json:"event"`
	PracticeID int       `json:"practiceId"`
}
