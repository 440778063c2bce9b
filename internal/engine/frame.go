package engine

// Frame is a derived view of one scoring unit: the rolls it consumed and its
// score contribution including strike and spare lookahead. Frames are never
// stored; they are recomputed from the roll sequence on demand.
type Frame struct {
	Number int // 1-based
	Rolls  []int
	Score  int
	Strike bool
	Spare  bool
}

// pendingSecondRoll reports whether the next recorded roll would be the
// second roll of a non-strike frame among the first nine, and returns that
// frame's first roll when it is. Boundaries are derived by replaying the
// sequence from the start: a strike consumes one roll per frame, anything
// else two.
func pendingSecondRoll(rolls []int) (first int, ok bool) {
	i := 0
	for frame := 0; frame < FramesPerGame-1; frame++ {
		if i >= len(rolls) {
			// Next roll opens a new frame.
			return 0, false
		}
		if rolls[i] == MaxPins {
			i++
			continue
		}
		if i == len(rolls)-1 {
			// The frame has its first roll and awaits the second.
			return rolls[i], true
		}
		i += 2
	}
	// Tenth frame and its bonus rolls carry no pair cap.
	return 0, false
}

// Frames groups the recorded rolls into logical frames with their scores.
// The tenth frame absorbs its bonus rolls. The view is display-only and
// never feeds back into validation or scoring.
func (g *Game) Frames() []Frame {
	frames := make([]Frame, 0, FramesPerGame)
	cursor := 0
	for n := 1; n <= FramesPerGame && cursor < len(g.rolls); n++ {
		f := Frame{Number: n}
		switch {
		case g.isStrike(cursor):
			f.Strike = true
			f.Score = MaxPins + g.strikeBonus(cursor)
			f.Rolls = []int{MaxPins}
			cursor++
		case g.isSpare(cursor):
			f.Spare = true
			f.Score = MaxPins + g.spareBonus(cursor)
			f.Rolls = []int{g.rollAt(cursor), g.rollAt(cursor + 1)}
			cursor += 2
		default:
			f.Score = g.rollAt(cursor) + g.rollAt(cursor+1)
			f.Rolls = []int{g.rollAt(cursor)}
			if cursor+1 < len(g.rolls) {
				f.Rolls = append(f.Rolls, g.rolls[cursor+1])
			}
			cursor += 2
		}
		if n == FramesPerGame {
			// Bonus rolls belong to the tenth frame's display.
			for cursor < len(g.rolls) {
				f.Rolls = append(f.Rolls, g.rolls[cursor])
				cursor++
			}
		}
		frames = append(frames, f)
	}
	return frames
}
