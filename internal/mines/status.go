package mines

// Status is the game state machine: New → InProgress → Won | Lost.
// Won and Lost are terminal until Restart or ChangeDifficulty.
type Status uint8

const (
	StatusNew Status = iota
	StatusInProgress
	StatusWon
	StatusLost
)

// IsOver reports whether the game has ended.
func (s Status) IsOver() bool {
	return s == StatusWon || s == StatusLost
}

// String returns a human-readable status name.
func (s Status) String() string {
	switch s {
	case StatusNew:
		return "New"
	case StatusInProgress:
		return "InProgress"
	case StatusWon:
		return "Won"
	case StatusLost:
		return "Lost"
	default:
		return "Unknown"
	}
}

// Face returns the smiley shown above the board for this status.
func (s Status) Face() string {
	switch s {
	case StatusWon:
		return "😎"
	case StatusLost:
		return "👺"
	default:
		return "🙂"
	}
}

// Outcome is the kind of result of a reveal-type command.
type Outcome uint8

const (
	// Continue means the command revealed at least one safe cell.
	Continue Outcome = iota
	// GameOver means a mine was revealed.
	GameOver
	// CantReveal means the command had no effect. It is not an error.
	CantReveal
)

// String returns the outcome name.
func (o Outcome) String() string {
	switch o {
	case Continue:
		return "Continue"
	case GameOver:
		return "GameOver"
	case CantReveal:
		return "CantReveal"
	default:
		return "Unknown"
	}
}

// RevealResult is returned by reveal, flood fill and chording. Mine is set
// only when Outcome is GameOver.
type RevealResult struct {
	Outcome Outcome
	Mine    Position
}

var (
	continueResult   = RevealResult{Outcome: Continue}
	cantRevealResult = RevealResult{Outcome: CantReveal}
)

func gameOverAt(pos Position) RevealResult {
	return RevealResult{Outcome: GameOver, Mine: pos}
}
