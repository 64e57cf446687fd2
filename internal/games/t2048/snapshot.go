package t2048

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying      GameStateType = "playing"
	StateLevelCleared GameStateType = "level_cleared"
	StateGameOver     GameStateType = "game_over"
	StateWin          GameStateType = "win"
	StatePausedSmall  GameStateType = "paused_small_window"
)

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick    uint64
	Mode    string // "campaign", "endless" or "classic"
	Level   int    // Current level (1-indexed), 0 outside the campaign
	Target  int    // Current target tile value
	Score   int
	Moves   int
	Board   [][]int // Rows top to bottom, 0 for empty
	MaxTile int
	State   GameStateType
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case g.won:
		state = StateWin
	case g.gameOver:
		state = StateGameOver
	case g.levelCleared:
		state = StateLevelCleared
	}

	level := 0
	if g.variant.Mode == ModeCampaign {
		level = g.levelIndex + 1
	}

	return Snapshot{
		Tick:    g.tick,
		Mode:    string(g.variant.Mode),
		Level:   level,
		Target:  g.currentTarget,
		Score:   g.state.Score(),
		Moves:   g.moves,
		Board:   g.state.Rows(),
		MaxTile: g.state.MaxTile(),
		State:   state,
	}
}
