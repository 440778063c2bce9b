package engine

// Projector computes a Game from an Event sequence.
type Projector struct{}

// NewProjector creates a standard projector.
func NewProjector() *Projector {
	return &Projector{}
}

// Build folds the events into a fresh Game. A failing event aborts the
// rebuild; events that were applied successfully once replay cleanly.
func (p *Projector) Build(events []Event) (*Game, error) {
	game := NewGame()

	for _, evt := range events {
		if err := evt.Apply(game); err != nil {
			return nil, err
		}
	}

	return game, nil
}
