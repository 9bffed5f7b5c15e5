package game

// GameError is a custom error type for game-related errors
type GameError string

// Error implements the error interface
func (e GameError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrNotPermitted     GameError = "not permitted"
	ErrAlreadySubmitted GameError = "already submitted"
	ErrInvalidTarget    GameError = "invalid target"
	ErrAlreadyFinalized GameError = "already finalized"
	ErrAlreadyRevealed  GameError = "already revealed"
	ErrInvalidStatus    GameError = "invalid status"
	ErrInvalidRound     GameError = "invalid vote round"
	ErrReasonRequired   GameError = "reason is required"
	ErrPlayerNotFound   GameError = "player not found"
	ErrNilConfig        GameError = "config cannot be nil"
	ErrNilGameRepo      GameError = "game repository cannot be nil"
	ErrNilSessionRepo   GameError = "session repository cannot be nil"
	ErrNilAssigner      GameError = "role assigner cannot be nil"
	ErrNilClock         GameError = "clock cannot be nil"
	ErrNilUUIDGenerator GameError = "UUID generator cannot be nil"
	ErrEmptyRoster      GameError = "roster cannot be empty"
)
