package parser

// Command represents a top-level action inputted into the scoring shell.
type Command struct {
	Roll   *RollCmd   `parser:"( @@"`
	Score  *ScoreCmd  `parser:"| @@"`
	Frames *FramesCmd `parser:"| @@"`
	Reset  *ResetCmd  `parser:"| @@ )"`
}

// RollCmd records the pins knocked down by one roll. The pin count is kept
// as the raw token so the caller can reject non-integral values itself.
type RollCmd struct {
	Keyword string `parser:"@('roll'|'Roll'|'ROLL')"`
	Label   string `parser:"('pins' ':')?"`
	Pins    string `parser:"@Number"`
}

// ScoreCmd asks for the score derivable from the rolls so far.
type ScoreCmd struct {
	Keyword string `parser:"@('score'|'Score'|'SCORE')"`
}

// FramesCmd asks for the frame-by-frame breakdown of the game so far.
type FramesCmd struct {
	Keyword string `parser:"@('frames'|'Frames'|'FRAMES')"`
}

// ResetCmd discards the current game and starts a fresh one.
type ResetCmd struct {
	Keyword string `parser:"@('new'|'New'|'NEW'|'reset'|'Reset'|'RESET')"`
	Game    string `parser:"('game'|'Game')?"`
}
