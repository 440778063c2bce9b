package session

import (
	"fmt"
	"strings"

	"github.com/suderio/tenpin/internal/engine"
)

// FormatFrames renders a frame-by-frame breakdown of the game so far,
// ending with the total score.
func FormatFrames(g *engine.Game) string {
	frames := g.Frames()
	if len(frames) == 0 {
		return "No rolls recorded yet"
	}

	var sb strings.Builder
	running := 0
	for _, f := range frames {
		running += f.Score
		mark := ""
		if f.Strike {
			mark = " X"
		} else if f.Spare {
			mark = " /"
		}
		sb.WriteString(fmt.Sprintf("├─ Frame %d: %v%s = %d (running %d)\n", f.Number, f.Rolls, mark, f.Score, running))
	}
	sb.WriteString(fmt.Sprintf("Score: %d", g.Score()))
	return sb.String()
}
