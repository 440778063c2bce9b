// Package engine implements the ten-pin bowling scoring state machine.
// A Game owns an append-only sequence of roll results; every change flows
// through Roll, and Score projects the ten frame totals on demand.
package engine

import "fmt"

const (
	// MaxPins is the number of pins standing at the start of a frame.
	MaxPins = 10
	// FramesPerGame is the number of scoring frames in a game.
	FramesPerGame = 10
	// MaxRolls is the longest conforming roll sequence: strikes through the
	// ninth frame plus three rolls in the tenth.
	MaxRolls = 21
)

// Game tracks the rolls of a single ten-pin bowling game.
// It assumes exclusive single-threaded use; an embedding application that
// shares one Game across goroutines must serialize access itself.
type Game struct {
	rolls []int
}

// NewGame creates a game with no rolls recorded.
func NewGame() *Game {
	return &Game{rolls: make([]int, 0, MaxRolls)}
}

// Roll records the number of pins knocked down by the next roll.
// It fails with ErrInvalidPinCount for values outside [0,10] and with
// ErrFrameOverflow when the roll would push a non-strike frame among the
// first nine past ten pins. On failure no state changes.
func (g *Game) Roll(pins int) error {
	if pins < 0 || pins > MaxPins {
		return fmt.Errorf("%w: %d is not between 0 and %d", ErrInvalidPinCount, pins, MaxPins)
	}
	if first, open := pendingSecondRoll(g.rolls); open && first+pins > MaxPins {
		return fmt.Errorf("%w: %d + %d", ErrFrameOverflow, first, pins)
	}
	g.rolls = append(g.rolls, pins)
	return nil
}

// Score computes the total for the rolls recorded so far. It can be called
// mid-game; bonus rolls that have not happened yet contribute 0.
func (g *Game) Score() int {
	score := 0
	cursor := 0
	for frame := 0; frame < FramesPerGame; frame++ {
		switch {
		case g.isStrike(cursor):
			score += MaxPins + g.strikeBonus(cursor)
			cursor++
		case g.isSpare(cursor):
			score += MaxPins + g.spareBonus(cursor)
			cursor += 2
		default:
			score += g.rollAt(cursor) + g.rollAt(cursor+1)
			cursor += 2
		}
	}
	return score
}

// Rolls returns a copy of the recorded roll sequence.
func (g *Game) Rolls() []int {
	out := make([]int, len(g.rolls))
	copy(out, g.rolls)
	return out
}

// reset discards all recorded rolls for a fresh game.
func (g *Game) reset() {
	g.rolls = g.rolls[:0]
}

// rollAt returns the pins of roll i, or 0 when that roll does not exist yet.
func (g *Game) rollAt(i int) int {
	if i < 0 || i >= len(g.rolls) {
		return 0
	}
	return g.rolls[i]
}

func (g *Game) isStrike(i int) bool {
	return i < len(g.rolls) && g.rolls[i] == MaxPins
}

func (g *Game) isSpare(i int) bool {
	return i+1 < len(g.rolls) && g.rolls[i]+g.rolls[i+1] == MaxPins
}

// strikeBonus is the sum of the two rolls after a strike.
func (g *Game) strikeBonus(i int) int {
	return g.rollAt(i+1) + g.rollAt(i+2)
}

// spareBonus is the single roll after a spare.
func (g *Game) spareBonus(i int) int {
	return g.rollAt(i + 2)
}
