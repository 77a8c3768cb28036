package entity

import "fmt"

// Move is a request to place the player's mark at (X, Y).
// It is validated only when submitted to an engine.
type Move struct {
	X      int    `json:"x"`
	Y      int    `json:"y"`
	Player Player `json:"player"`
}

func NewMove(x, y int, player Player) Move {
	return Move{X: x, Y: y, Player: player}
}

func (m Move) String() string {
	return fmt.Sprintf("%s(%d, %d)", m.Player, m.X, m.Y)
}

// Outcome classifies a Result.
type Outcome uint8

const (
	OutcomeInProgress Outcome = iota
	OutcomeWon
	OutcomeDraw
)

func (o Outcome) String() string {
	switch o {
	case OutcomeInProgress:
		return "in progress"
	case OutcomeWon:
		return "won"
	case OutcomeDraw:
		return "draw"
	default:
		panic(fmt.Sprintf("unknown outcome %d", o))
	}
}

// Result - the game outcome: InProgress, Won(player) or Draw.
// The zero value is InProgress.
type Result struct {
	outcome Outcome
	winner  Player
}

func InProgress() Result {
	return Result{outcome: OutcomeInProgress}
}

func Won(player Player) Result {
	return Result{outcome: OutcomeWon, winner: player}
}

func Draw() Result {
	return Result{outcome: OutcomeDraw}
}

func (r Result) Outcome() Outcome {
	return r.outcome
}

// Winner - returns the winning player, ok is false unless the result is Won.
func (r Result) Winner() (Player, bool) {
	if r.outcome != OutcomeWon {
		return 0, false
	}

	return r.winner, true
}

// IsTerminal reports whether the game is won or drawn.
func (r Result) IsTerminal() bool {
	switch r.outcome {
	case OutcomeInProgress:
		return false
	case OutcomeWon, OutcomeDraw:
		return true
	default:
		panic(fmt.Sprintf("unknown outcome %d", r.outcome))
	}
}

func (r Result) String() string {
	if winner, ok := r.Winner(); ok {
		return fmt.Sprintf("%s by %s", r.outcome, winner)
	}

	return r.outcome.String()
}
