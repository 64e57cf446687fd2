package t2048

import (
	"reflect"
	"strings"
	"testing"

	"github.com/vovakirdan/tilt2048/internal/config"
	"github.com/vovakirdan/tilt2048/internal/core"
	"github.com/vovakirdan/tilt2048/internal/registry"
)

func testConfig(seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     seed,
	}
}

func input(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

// setBoard swaps in a fixed board while keeping the game's current target.
func setBoard(t *testing.T, g *Game, rows [][]int) {
	t.Helper()
	g.state = mustRows(t, rows, 0)
	if err := g.state.SetTarget(g.currentTarget); err != nil {
		t.Fatalf("SetTarget() failed: %v", err)
	}
}

func tileCount(s *State) int {
	return s.Size()*s.Size() - len(s.EmptyCells())
}

func TestDeterministicSpawn(t *testing.T) {
	g1 := New()
	g1.Reset(testConfig(12345))

	g2 := New()
	g2.Reset(testConfig(12345))

	if !reflect.DeepEqual(g1.Board().Rows(), g2.Board().Rows()) {
		t.Errorf("same seed should produce same initial board:\n%v\nvs\n%v", g1.Board(), g2.Board())
	}
	if n := tileCount(g1.Board()); n != 2 {
		t.Errorf("initial tiles = %d, want 2", n)
	}

	for _, a := range []core.Action{core.ActionLeft, core.ActionUp, core.ActionRight, core.ActionDown} {
		g1.Step(input(a))
		g2.Step(input(a))
	}
	if !reflect.DeepEqual(g1.Snapshot(), g2.Snapshot()) {
		t.Errorf("same seed and inputs diverged:\n%+v\nvs\n%+v", g1.Snapshot(), g2.Snapshot())
	}
}

func TestMoveSpawnsTile(t *testing.T) {
	g := NewEndless()
	g.Reset(testConfig(1))
	setBoard(t, g, [][]int{
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{2, 0, 0, 0},
	})

	g.Step(input(core.ActionRight))

	if n := tileCount(g.Board()); n != 2 {
		t.Errorf("tiles after move = %d, want 2", n)
	}
	if g.Board().Value(3, 0) != 2 && g.Board().Value(3, 0) != 4 {
		t.Errorf("moved tile missing from (3, 0):\n%s", g.Board())
	}
	if g.moves != 1 {
		t.Errorf("moves = %d, want 1", g.moves)
	}
}

func TestNoChangeNoSpawn(t *testing.T) {
	g := NewEndless()
	g.Reset(testConfig(1))
	setBoard(t, g, [][]int{
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{2, 0, 0, 0},
	})

	g.Step(input(core.ActionLeft))

	if n := tileCount(g.Board()); n != 1 {
		t.Errorf("tiles after no-op move = %d, want 1", n)
	}
	if g.moves != 0 {
		t.Errorf("moves = %d, want 0", g.moves)
	}
}

func TestCampaignProgression(t *testing.T) {
	g := New()
	g.Reset(testConfig(42))
	setBoard(t, g, [][]int{
		{128, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	})

	g.Step(input(core.ActionDown))

	if !g.levelCleared {
		t.Fatal("should detect level cleared when target tile exists")
	}
	if !g.State().Paused {
		t.Error("level-cleared banner should report the game as paused")
	}

	g.levelClearTicks = levelClearDelay - 1
	g.Step(core.NewInputFrame())

	if g.levelIndex != 1 {
		t.Errorf("should advance to level 2, got level %d", g.levelIndex+1)
	}
	if g.Board().Target() != 256 {
		t.Errorf("target after advance = %d, want 256", g.Board().Target())
	}
	if g.Board().Value(0, 0) != 128 {
		t.Error("board should carry over between levels")
	}
}

func TestCampaignFinalLevelWins(t *testing.T) {
	g := New()
	g.StartAtLevel(LevelCount())
	g.Reset(testConfig(42))
	setBoard(t, g, [][]int{
		{4096, 4096, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	})

	g.Step(input(core.ActionLeft))
	g.levelClearTicks = levelClearDelay - 1
	g.Step(core.NewInputFrame())

	st := g.State()
	if !st.Won || !st.GameOver {
		t.Errorf("State() = %+v, want won and over after the final level", st)
	}
}

func TestStartLevel(t *testing.T) {
	g := New()
	g.StartAtLevel(3)
	g.Reset(testConfig(42))

	snap := g.Snapshot()
	if snap.Level != 3 || snap.Target != 512 {
		t.Errorf("Snapshot level %d target %d, want 3 and 512", snap.Level, snap.Target)
	}

	// A restart goes back to the first level.
	g.Reset(testConfig(42))
	if lvl := g.Snapshot().Level; lvl != 1 {
		t.Errorf("level after restart = %d, want 1", lvl)
	}

	endless := NewEndless()
	endless.StartAtLevel(5)
	endless.Reset(testConfig(42))
	if endless.Board().Target() != 0 {
		t.Errorf("endless target = %d, want 0", endless.Board().Target())
	}
}

func TestEndlessModeNoWin(t *testing.T) {
	g := NewEndless()
	g.Reset(testConfig(42))
	setBoard(t, g, [][]int{
		{8192, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	})

	g.Step(input(core.ActionDown))

	if g.levelCleared {
		t.Error("endless mode should not have level cleared")
	}
	if g.won {
		t.Error("endless mode should not have win state")
	}
}

func TestEndlessGameOver(t *testing.T) {
	g := NewEndless()
	g.Reset(testConfig(7))
	// Tilting left merges the 8s and leaves one free cell in the corner.
	// Any spawn there locks the board.
	setBoard(t, g, [][]int{
		{2, 4, 2, 4},
		{4, 2, 4, 2},
		{2, 4, 2, 8},
		{4, 2, 8, 8},
	})

	g.Step(input(core.ActionLeft))

	if !g.State().GameOver {
		t.Fatalf("board should be locked:\n%s", g.Board())
	}
	if g.Board().Score() != 16 {
		t.Errorf("score = %d, want 16", g.Board().Score())
	}

	// Input after the end is ignored.
	before := g.Board().Rows()
	g.Step(input(core.ActionRight))
	if !reflect.DeepEqual(g.Board().Rows(), before) {
		t.Error("moves after game over changed the board")
	}
}

func TestClassicWin(t *testing.T) {
	g := NewVariant(Variants[2])
	g.Reset(testConfig(3))
	setBoard(t, g, [][]int{
		{1024, 1024, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	})

	g.Step(input(core.ActionLeft))

	st := g.State()
	if !st.Won || !st.GameOver {
		t.Fatalf("State() = %+v, want won", st)
	}

	res := g.Result()
	want := core.Result{Score: 2048, MaxTile: 2048, Moves: 1, BoardSize: 4, Won: true}
	if res != want {
		t.Errorf("Result() = %+v, want %+v", res, want)
	}
}

func TestSmallVariants(t *testing.T) {
	tests := []struct {
		id     string
		size   int
		target int
	}{
		{"2048_3x3", 3, 256},
		{"2048_5x5", 5, 4096},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			rg, err := registry.Create(tt.id)
			if err != nil {
				t.Fatalf("Create(%q) failed: %v", tt.id, err)
			}
			g, ok := rg.(*Game)
			if !ok {
				t.Fatalf("Create(%q) returned %T", tt.id, rg)
			}
			g.Reset(testConfig(9))

			if g.Board().Size() != tt.size {
				t.Errorf("size = %d, want %d", g.Board().Size(), tt.size)
			}
			if g.Board().Target() != tt.target {
				t.Errorf("target = %d, want %d", g.Board().Target(), tt.target)
			}
		})
	}
}

func TestPauseBlocksMoves(t *testing.T) {
	g := NewEndless()
	g.Reset(testConfig(5))
	setBoard(t, g, [][]int{
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{2, 0, 0, 0},
	})

	g.Step(input(core.ActionPause))
	g.Step(input(core.ActionRight))

	if g.Board().Value(0, 0) != 2 {
		t.Error("paused game should ignore moves")
	}

	g.Step(input(core.ActionPause))
	g.Step(input(core.ActionRight))
	if g.Board().Value(3, 0) == 0 {
		t.Error("resumed game should accept moves")
	}
}

func TestTooSmallScreen(t *testing.T) {
	g := New()
	cfg := testConfig(1)
	cfg.ScreenW = 10
	g.Reset(cfg)

	if !g.State().Paused {
		t.Error("game on a tiny screen should report paused")
	}
	if g.Snapshot().State != StatePausedSmall {
		t.Errorf("Snapshot().State = %s, want %s", g.Snapshot().State, StatePausedSmall)
	}
}

func TestResizeKeepsBoard(t *testing.T) {
	g := NewEndless()
	g.Reset(testConfig(8))
	before := g.Board().Rows()

	g.Resize(10, 5)
	if !g.State().Paused {
		t.Error("shrinking the screen should pause the game")
	}

	g.Resize(80, 24)
	if g.State().Paused {
		t.Error("restoring the screen should resume the game")
	}
	if !reflect.DeepEqual(g.Board().Rows(), before) {
		t.Error("Resize changed the board")
	}
}

func TestSnapshot(t *testing.T) {
	g := New()
	g.Reset(testConfig(42))

	snap := g.Snapshot()

	if snap.Mode != "campaign" {
		t.Errorf("Snapshot Mode = %s, want campaign", snap.Mode)
	}
	if snap.Level != 1 {
		t.Errorf("Snapshot Level = %d, want 1", snap.Level)
	}
	if snap.Target != 128 {
		t.Errorf("Snapshot Target = %d, want 128", snap.Target)
	}
	if snap.State != StatePlaying {
		t.Errorf("Snapshot State = %s, want %s", snap.State, StatePlaying)
	}
	if len(snap.Board) != 4 {
		t.Errorf("Snapshot Board has %d rows, want 4", len(snap.Board))
	}
}

func TestLevels(t *testing.T) {
	if LevelCount() != 10 {
		t.Errorf("LevelCount() = %d, want 10", LevelCount())
	}
	if names := LevelNames(); names[0] != "Warm-up" {
		t.Errorf("LevelNames()[0] = %q, want Warm-up", names[0])
	}
	targets := LevelTargets()
	for i := 1; i < len(targets); i++ {
		if targets[i] <= targets[i-1] {
			t.Errorf("level %d target %d is not above the previous %d", i+1, targets[i], targets[i-1])
		}
	}
	if GetLevel(-1) != nil || GetLevel(LevelCount()) != nil {
		t.Error("GetLevel() out of range should return nil")
	}
}

func TestConfigureBoardSize(t *testing.T) {
	t.Cleanup(func() {
		_ = Configure(config.DefaultT2048Config())
	})

	cfg := config.DefaultT2048Config()
	cfg.Board.Size = 6
	cfg.Board.StartTiles = 3
	if err := Configure(cfg); err != nil {
		t.Fatalf("Configure() failed: %v", err)
	}

	g := NewEndless()
	g.Reset(testConfig(11))

	if g.Board().Size() != 6 {
		t.Errorf("size = %d, want 6", g.Board().Size())
	}
	if n := tileCount(g.Board()); n != 3 {
		t.Errorf("start tiles = %d, want 3", n)
	}

	cfg.Board.Size = 1
	if err := Configure(cfg); err == nil {
		t.Error("Configure() should reject a 1x1 board")
	}
}

func TestSpawner(t *testing.T) {
	s, _ := NewState(2)
	sp := NewSpawner(1, 1.0)

	for range 4 {
		_, v, ok := sp.Spawn(s)
		if !ok {
			t.Fatal("Spawn() failed on a board with room")
		}
		if v != 4 {
			t.Errorf("Spawn() value = %d, want 4 with Four = 1", v)
		}
	}

	if _, _, ok := sp.Spawn(s); ok {
		t.Error("Spawn() on a full board should fail")
	}
}

func TestRender(t *testing.T) {
	g := NewVariant(Variants[2])
	g.Reset(testConfig(4))
	setBoard(t, g, [][]int{
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 1024},
	})

	scr := core.NewScreen(80, 24)
	g.Render(scr)
	out := scr.String()

	for _, want := range []string{"2048 (Classic)", "Score: 0", "Target: 2048", "1024"} {
		if !strings.Contains(out, want) {
			t.Errorf("rendered screen missing %q:\n%s", want, out)
		}
	}
}
