package engine

import "fmt"

type EventType string

const (
	EventGameStarted  EventType = "GameStarted"
	EventRollRecorded EventType = "RollRecorded"
	EventHint         EventType = "Hint"
)

// Event is the building block of the event-sourced engine.
// Every change to a Game is represented as an Event that can be applied to it.
type Event interface {
	Type() EventType
	Apply(g *Game) error
	Message() string
}

// GameStartedEvent clears the roll sequence for a fresh game.
type GameStartedEvent struct{}

func (e *GameStartedEvent) Type() EventType { return EventGameStarted }
func (e *GameStartedEvent) Apply(g *Game) error {
	g.reset()
	return nil
}
func (e *GameStartedEvent) Message() string { return "New game started." }

// RollRecordedEvent appends one roll to the game. Validation happens inside
// Apply, so a rejected roll leaves the game untouched.
type RollRecordedEvent struct {
	Pins int `json:"pins"`
}

func (e *RollRecordedEvent) Type() EventType { return EventRollRecorded }
func (e *RollRecordedEvent) Apply(g *Game) error {
	return g.Roll(e.Pins)
}
func (e *RollRecordedEvent) Message() string {
	if e.Pins == MaxPins {
		return "Strike!"
	}
	return fmt.Sprintf("Knocked down %d pin(s)", e.Pins)
}

// HintEvent is purely informational, typically answering a query, and is
// never kept in the event log.
type HintEvent struct {
	MessageStr string `json:"message"`
}

func (e *HintEvent) Type() EventType     { return EventHint }
func (e *HintEvent) Apply(g *Game) error { return nil }
func (e *HintEvent) Message() string     { return e.MessageStr }
