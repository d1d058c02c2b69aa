package practice

// ModalScreen names the blocking screen the server wants shown, as reported
// by the current-practice-state endpoint.
type ModalScreen string

const (
	ScreenInProgress ModalScreen = "OPEN_IN_PROGRESS_MODAL"
	ScreenEval       ModalScreen = "OPEN_EVAL_MODAL"
	ScreenVideo      ModalScreen = "OPEN_VIDEO_MODAL"
)

// CurrentState is the bootstrap snapshot fetched once per session. State and
// Practice are only meaningful when IsModalOpen is true.
type CurrentState struct {
	IsModalOpen bool        `json:"isModalOpen"`
	State       ModalScreen `json:"state,omitempty"`
	Practice    *Practice   `json:"practice,omitempty"`
}
