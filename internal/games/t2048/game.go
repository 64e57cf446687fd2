package t2048

import (
	"github.com/vovakirdan/tilt2048/internal/core"
	"github.com/vovakirdan/tilt2048/internal/registry"
)

// Mode represents the game mode.
type Mode string

const (
	ModeCampaign Mode = "campaign" // Successive level targets on one board
	ModeEndless  Mode = "endless"  // No target; play until stuck
	ModeClassic  Mode = "classic"  // Single target; reaching it wins
)

// levelClearDelay is how long the level-cleared banner stays up (2s at 60fps).
const levelClearDelay = 120

// Variant describes one registered flavour of the game.
type Variant struct {
	ID     string
	Title  string
	Mode   Mode
	Size   int // 0 uses the configured board size
	Target int // Classic only; 0 uses the configured target
}

// Variants lists the game variants offered by the registry.
var Variants = []Variant{
	{ID: "2048", Title: "2048", Mode: ModeCampaign},
	{ID: "2048_endless", Title: "2048 (Endless)", Mode: ModeEndless},
	{ID: "2048_classic", Title: "2048 (Classic)", Mode: ModeClassic},
	{ID: "2048_3x3", Title: "2048 (3x3, to 256)", Mode: ModeClassic, Size: 3, Target: 256},
	{ID: "2048_5x5", Title: "2048 (5x5, to 4096)", Mode: ModeClassic, Size: 5, Target: 4096},
}

// Game drives a State for the platform: it spawns tiles, tracks campaign
// levels and renders the board.
type Game struct {
	variant Variant
	spawner *Spawner
	tick    uint64

	state         *State
	size          int
	moves         int
	levelIndex    int // Current level (0-indexed)
	currentTarget int // Current tile target, 0 in endless mode

	// Screen dimensions
	screenW int
	screenH int

	// Game state flags
	gameOver        bool
	levelCleared    bool
	won             bool
	paused          bool
	tooSmall        bool
	levelClearTicks int // Ticks spent showing the level-cleared banner
	startLevel      int // Campaign level for the next Reset (1-based), 0 for the first

	animator
}

// NewVariant creates a game for the given variant.
func NewVariant(v Variant) *Game {
	return &Game{variant: v}
}

// New creates a new campaign mode 2048 game.
func New() *Game {
	return NewVariant(Variants[0])
}

// NewEndless creates a new endless mode 2048 game.
func NewEndless() *Game {
	return NewVariant(Variants[1])
}

func init() {
	for _, v := range Variants {
		registry.Register(v.ID, func() registry.Game {
			return NewVariant(v)
		})
	}
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return g.variant.ID
}

// Title returns the display name.
func (g *Game) Title() string {
	return g.variant.Title
}

// Mode returns the variant's mode.
func (g *Game) Mode() Mode {
	return g.variant.Mode
}

// Board returns the underlying state for read-only inspection.
func (g *Game) Board() *State {
	return g.state
}

// Reset initializes/restarts the game.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	gameCfg := currentConfig()

	g.size = gameCfg.Board.Size
	if g.variant.Size > 0 {
		g.size = g.variant.Size
	}

	// Size is validated by Configure and by the fixed variant table.
	state, err := NewState(g.size)
	if err != nil {
		panic(err)
	}
	g.state = state

	g.spawner = NewSpawner(cfg.Seed, gameCfg.Spawn.FourProbability)
	g.tick = 0
	g.moves = 0
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.gameOver = false
	g.levelCleared = false
	g.won = false
	g.paused = false
	g.levelClearTicks = 0
	g.animator = animator{}

	// Apply selected start level (campaign only)
	g.levelIndex = 0
	if g.variant.Mode == ModeCampaign && g.startLevel > 0 && g.startLevel <= LevelCount() {
		g.levelIndex = g.startLevel - 1
	}
	g.startLevel = 0 // Restarts begin from level 1

	g.loadLevel()

	for range gameCfg.Board.StartTiles {
		g.spawner.Spawn(g.state)
	}

	g.checkScreenSize()
}

// StartAtLevel makes the next Reset begin the campaign at the given level
// (1-based). Out-of-range levels start from the beginning.
func (g *Game) StartAtLevel(level int) {
	g.startLevel = level
}

// Resize updates the screen dimensions without restarting the game.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	if g.state != nil {
		g.checkScreenSize()
	}
}

// loadLevel applies the current mode's target and spawn odds to the state.
func (g *Game) loadLevel() {
	gameCfg := currentConfig()

	switch g.variant.Mode {
	case ModeEndless:
		g.currentTarget = 0
		g.spawner.Four = gameCfg.Endless.FourProbability
	case ModeClassic:
		g.currentTarget = gameCfg.Target
		if g.variant.Target > 0 {
			g.currentTarget = g.variant.Target
		}
		g.spawner.Four = gameCfg.Spawn.FourProbability
	default:
		level := GetLevel(g.levelIndex)
		if level == nil {
			// Shouldn't happen, but default to last level
			g.levelIndex = LevelCount() - 1
			level = GetLevel(g.levelIndex)
		}
		g.currentTarget = level.Target
		g.spawner.Four = level.Spawn4
	}

	// Targets come from validated config or the variant table.
	if err := g.state.SetTarget(g.currentTarget); err != nil {
		panic(err)
	}
}

// checkScreenSize checks if the screen is large enough.
func (g *Game) checkScreenSize() {
	boardW, boardH := boardDimensions(g.size)
	g.tooSmall = g.screenW < boardW+2 || g.screenH < boardH+hudHeight+2
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	if g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.updateAnimation()

	if g.levelCleared {
		g.levelClearTicks++
		if g.levelClearTicks >= levelClearDelay {
			g.advanceLevel()
		}
		return core.StepResult{State: g.State()}
	}

	if g.gameOver || g.won {
		return core.StepResult{State: g.State()}
	}

	if dir, ok := directionFor(in); ok {
		g.processMove(dir)
	}

	return core.StepResult{State: g.State()}
}

// directionFor picks the move requested by this frame, if any.
func directionFor(in core.InputFrame) (Direction, bool) {
	switch {
	case in.Has(core.ActionUp):
		return DirUp, true
	case in.Has(core.ActionDown):
		return DirDown, true
	case in.Has(core.ActionLeft):
		return DirLeft, true
	case in.Has(core.ActionRight):
		return DirRight, true
	}
	return DirUp, false
}

// processMove handles a move in the given direction.
func (g *Game) processMove(dir Direction) {
	// A new move cuts the previous animation short.
	g.finishAllAnimations()

	res := g.state.Tilt(dir)
	if !res.Changed {
		// Board didn't change - don't spawn new tile
		return
	}
	g.moves++
	g.startSlideAnimation(res.Moves)

	if g.state.MaxTileExists() {
		switch g.variant.Mode {
		case ModeCampaign:
			g.levelCleared = true
			g.levelClearTicks = 0
		case ModeClassic:
			g.won = true
		}
		return
	}

	if cell, value, ok := g.spawner.Spawn(g.state); ok {
		g.queuePop(cell, value)
	}

	if g.state.GameOver() {
		g.gameOver = true
	}
}

// advanceLevel moves to the next level.
func (g *Game) advanceLevel() {
	g.levelCleared = false
	g.levelClearTicks = 0

	if g.levelIndex >= LevelCount()-1 {
		g.won = true
		return
	}

	// Keep current board and score - just update target
	g.levelIndex++
	g.loadLevel()

	// The board may already hold the next target or be stuck.
	if g.state.MaxTileExists() {
		g.levelCleared = true
		return
	}
	if g.state.GameOver() {
		g.gameOver = true
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.state == nil {
		return core.GameState{}
	}
	return core.GameState{
		Score:    g.state.Score(),
		GameOver: g.gameOver || g.won,
		Won:      g.won,
		Paused:   g.paused || g.tooSmall || g.levelCleared,
	}
}

// Result summarizes the run for the score store.
func (g *Game) Result() core.Result {
	if g.state == nil {
		return core.Result{}
	}
	level := 0
	if g.variant.Mode == ModeCampaign {
		level = g.levelIndex + 1
	}
	return core.Result{
		Score:     g.state.Score(),
		MaxTile:   g.state.MaxTile(),
		Moves:     g.moves,
		BoardSize: g.size,
		Level:     level,
		Won:       g.won,
	}
}
