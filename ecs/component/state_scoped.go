package component

// GameState is the top-level program state.
type GameState uint8

const (
	GameStateLoading GameState = iota
	GameStatePlaying
	GameStateMenu
)

func (s GameState) String() string {
	switch s {
	case GameStateLoading:
		return "loading"
	case GameStatePlaying:
		return "playing"
	case GameStateMenu:
		return "menu"
	default:
		return "unknown"
	}
}

// StateScoped entities are despawned when the program leaves State.
type StateScoped struct {
	State GameState
}

var StateScopedComponent = NewComponent[StateScoped]()
