// Package session coordinates the scoring shell: it parses raw command
// strings, executes them against the game, and keeps the applied events.
package session

import (
	"fmt"
	"strconv"

	"github.com/suderio/tenpin/internal/engine"
	"github.com/suderio/tenpin/internal/parser"
)

var shellParser = parser.Build()

// Session manages the cohesive loop of taking commands, executing them,
// recording the resulting events, and projecting the current Game.
// The event log lives in memory only; nothing is persisted.
type Session struct {
	game *engine.Game
	log  []engine.Event
}

// NewSession bootstraps a session with a fresh game.
func NewSession() *Session {
	return &Session{game: engine.NewGame()}
}

// Game returns the current projected game.
func (s *Session) Game() *engine.Game {
	return s.game
}

// Events returns the events applied so far.
func (s *Session) Events() []engine.Event {
	return s.log
}

// RebuildState reprojects the game from the full event log.
func (s *Session) RebuildState() error {
	game, err := engine.NewProjector().Build(s.log)
	if err != nil {
		return fmt.Errorf("failed to project game state: %w", err)
	}

	s.game = game
	return nil
}

// Execute takes a raw command string from a client, coordinates execution,
// appends the resulting event, and returns it as the printable anchor.
func (s *Session) Execute(input string) (engine.Event, error) {
	astCmd, err := shellParser.ParseString("", input)
	if err != nil {
		return nil, parser.MapError(input, err)
	}

	switch {
	case astCmd.Roll != nil:
		pins, err := strconv.Atoi(astCmd.Roll.Pins)
		if err != nil {
			return nil, fmt.Errorf("%w: %q is not an integer", engine.ErrInvalidPinCount, astCmd.Roll.Pins)
		}
		evt := &engine.RollRecordedEvent{Pins: pins}
		if err := s.applyAndAppend(evt); err != nil {
			return nil, err
		}
		return evt, nil

	case astCmd.Reset != nil:
		evt := &engine.GameStartedEvent{}
		if err := s.applyAndAppend(evt); err != nil {
			return nil, err
		}
		return evt, nil

	case astCmd.Score != nil:
		// Queries are stateless; we do not append them to the log.
		return &engine.HintEvent{MessageStr: fmt.Sprintf("Score: %d", s.game.Score())}, nil

	case astCmd.Frames != nil:
		return &engine.HintEvent{MessageStr: FormatFrames(s.game)}, nil
	}

	return nil, fmt.Errorf("unsupported command pattern")
}

// applyAndAppend commits a finalized event to the log and updates the game.
// Validation lives in Apply, so the event is only kept once it succeeded.
func (s *Session) applyAndAppend(evt engine.Event) error {
	if err := evt.Apply(s.game); err != nil {
		return err
	}

	s.log = append(s.log, evt)
	return nil
}
