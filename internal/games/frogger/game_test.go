package frogger

import (
	"testing"

	"github.com/vovakirdan/tui-frogger/internal/core"
)

func newTestGame(t *testing.T, seed int64) *Game {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	g := New()
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: seed})
	return g
}

func frame(actions ...core.Action) core.InputFrame {
	f := core.NewInputFrame()
	for _, a := range actions {
		f.Set(a)
	}
	return f
}

// landOnGoal hops the player into the goal row at the given fixed-point x.
func landOnGoal(g *Game, x Fixed) {
	g.playerRow = RiverTop
	g.playerX = x
	g.hop(-1)
}

func setLane(g *Game, row int, hazards ...Hazard) {
	for i := range g.spawner.lanes {
		if g.spawner.lanes[i].row == row {
			g.spawner.lanes[i].hazards = hazards
			return
		}
	}
}

func TestDeterminismSameSeed(t *testing.T) {
	a := newTestGame(t, 42)
	b := newTestGame(t, 42)

	for tick := 0; tick < 600; tick++ {
		in := frame()
		if tick%20 == 0 {
			in = frame(core.ActionUp)
		} else if tick%7 == 0 {
			in = frame(core.ActionLeft)
		}
		a.Step(in)
		b.Step(in)
		if tick%100 == 0 && !a.Snapshot().Equal(b.Snapshot()) {
			t.Fatalf("tick %d: same seed and inputs diverged", tick)
		}
	}
	if !a.Snapshot().Equal(b.Snapshot()) {
		t.Fatal("final snapshots diverged")
	}
}

func TestVehicleCollisionLosesLife(t *testing.T) {
	g := newTestGame(t, 1)
	lives := g.lives

	g.playerRow = RoadTop
	g.playerX = ToFixed(10)
	setLane(g, RoadTop, Hazard{
		Kind: HazardVehicle, Row: RoadTop,
		X: ToFixed(9), W: ToFixed(3), Vel: 1,
	})
	g.Step(frame())

	if g.lives != lives-1 {
		t.Errorf("lives = %d, want %d", g.lives, lives-1)
	}
	if g.playerRow != StartRow || g.playerX != ToFixed(g.board.StartX()) {
		t.Error("player was not respawned at start")
	}
}

func TestRiverDrownsWithoutLog(t *testing.T) {
	g := newTestGame(t, 1)
	lives := g.lives

	g.playerRow = RiverTop
	g.playerX = ToFixed(10)
	setLane(g, RiverTop)
	g.Step(frame())

	if g.lives != lives-1 {
		t.Errorf("lives = %d, want %d", g.lives, lives-1)
	}
	if g.playerRow != StartRow {
		t.Error("player was not respawned after drowning")
	}
}

func TestLogCarriesPlayer(t *testing.T) {
	g := newTestGame(t, 1)
	lives := g.lives

	g.playerRow = RiverTop
	g.playerX = ToFixed(5)
	setLane(g, RiverTop, Hazard{
		Kind: HazardLog, Row: RiverTop,
		X: ToFixed(4), W: ToFixed(4), Vel: 30,
	})
	g.Step(frame())

	if g.lives != lives {
		t.Fatalf("lost a life while riding: %d -> %d", lives, g.lives)
	}
	if want := ToFixed(5) + 30; g.playerX != want {
		t.Errorf("playerX = %d, want %d", g.playerX, want)
	}

	g.Step(frame())
	if want := ToFixed(5) + 60; g.playerX != want {
		t.Errorf("playerX = %d after second tick, want %d", g.playerX, want)
	}
}

func TestLogPartialOverlapCarries(t *testing.T) {
	g := newTestGame(t, 1)
	lives := g.lives

	// Footprint [4.3, 5.3) hangs onto a log starting at 5 by less than half
	// a cell. Any overlap carries.
	g.playerRow = RiverTop
	g.playerX = ToFixed(4) + 300
	setLane(g, RiverTop, Hazard{
		Kind: HazardLog, Row: RiverTop,
		X: ToFixed(5), W: ToFixed(3), Vel: 40,
	})
	g.Step(frame())

	if g.lives != lives {
		t.Fatalf("drowned despite overlapping the log: lives %d -> %d", lives, g.lives)
	}
	if want := ToFixed(4) + 340; g.playerX != want {
		t.Errorf("playerX = %d, want %d", g.playerX, want)
	}
}

func TestCarryOffBoardLosesLife(t *testing.T) {
	g := newTestGame(t, 1)
	lives := g.lives

	g.playerRow = RiverTop
	g.playerX = ToFixed(g.board.Cols - 1)
	setLane(g, RiverTop, Hazard{
		Kind: HazardLog, Row: RiverTop,
		X: ToFixed(g.board.Cols - 3), W: ToFixed(4), Vel: 600,
	})
	g.Step(frame())

	if g.lives != lives-1 {
		t.Errorf("lives = %d, want %d", g.lives, lives-1)
	}
	if g.playerRow != StartRow {
		t.Error("player was not respawned after being swept off")
	}
}

func TestGoalSlotFillScores(t *testing.T) {
	g := newTestGame(t, 1)

	landOnGoal(g, ToFixed(g.board.Slots[0]))

	if !g.slots[0] {
		t.Fatal("slot 0 not filled")
	}
	if g.score != g.cfg.Gameplay.SlotPoints {
		t.Errorf("score = %d, want %d", g.score, g.cfg.Gameplay.SlotPoints)
	}
	if g.playerRow != StartRow {
		t.Error("player was not respawned after filling a slot")
	}
}

func TestGoalOccupiedSlotPenalty(t *testing.T) {
	g := newTestGame(t, 1)
	landOnGoal(g, ToFixed(g.board.Slots[0]))
	lives, score := g.lives, g.score

	landOnGoal(g, ToFixed(g.board.Slots[0]))

	if g.lives != lives-1 {
		t.Errorf("lives = %d, want %d", g.lives, lives-1)
	}
	if g.score != score {
		t.Errorf("score changed to %d on occupied slot", g.score)
	}
	if !g.slots[0] {
		t.Error("filled slot was cleared")
	}
}

func TestGoalBetweenSlotsPenalty(t *testing.T) {
	g := newTestGame(t, 1)
	lives := g.lives

	landOnGoal(g, ToFixed(g.board.Slots[0]+1))

	if g.lives != lives-1 {
		t.Errorf("lives = %d, want %d", g.lives, lives-1)
	}
	for i, filled := range g.slots {
		if filled {
			t.Errorf("slot %d filled by a missed landing", i)
		}
	}
}

func TestGoalPartialOverlapFillsSlot(t *testing.T) {
	g := newTestGame(t, 1)

	// Drifted half a cell off the slot column; the footprint still overlaps
	// the slot cell, so the landing counts.
	landOnGoal(g, ToFixed(g.board.Slots[1])-Scale/2)

	if !g.slots[1] {
		t.Fatal("slot 1 not filled by an overlapping landing")
	}
	if g.lives != g.cfg.Gameplay.Lives {
		t.Errorf("lives = %d, want %d", g.lives, g.cfg.Gameplay.Lives)
	}
	if g.score != g.cfg.Gameplay.SlotPoints {
		t.Errorf("score = %d, want %d", g.score, g.cfg.Gameplay.SlotPoints)
	}
}

func TestWinOnAllSlots(t *testing.T) {
	g := newTestGame(t, 1)

	for i, col := range g.board.Slots {
		landOnGoal(g, ToFixed(col))
		if i < len(g.board.Slots)-1 && g.won {
			t.Fatalf("won after only %d slots", i+1)
		}
	}

	if !g.won {
		t.Fatal("game not won with all slots filled")
	}
	if want := len(g.board.Slots) * g.cfg.Gameplay.SlotPoints; g.score != want {
		t.Errorf("score = %d, want %d", g.score, want)
	}
	if !g.State().Won {
		t.Error("State does not report the win")
	}
}

func TestGameOverAtZeroLives(t *testing.T) {
	g := newTestGame(t, 1)
	g.lives = 1
	g.loseLife()

	if !g.over {
		t.Fatal("game not over at zero lives")
	}
	if g.lives != 0 {
		t.Errorf("lives = %d, want 0", g.lives)
	}
	if !g.State().GameOver {
		t.Error("State does not report game over")
	}
}

func TestRestartAfterGameOver(t *testing.T) {
	g := newTestGame(t, 1)
	landOnGoal(g, ToFixed(g.board.Slots[2]))
	g.lives = 1
	g.loseLife()

	g.Step(frame(core.ActionRestart))

	if g.over {
		t.Fatal("still game over after restart")
	}
	if g.lives != g.cfg.Gameplay.Lives {
		t.Errorf("lives = %d, want %d", g.lives, g.cfg.Gameplay.Lives)
	}
	if g.score != 0 {
		t.Errorf("score = %d, want 0", g.score)
	}
	for i, filled := range g.slots {
		if filled {
			t.Errorf("slot %d survived restart", i)
		}
	}
}

func TestRestartIgnoredWhilePlaying(t *testing.T) {
	g := newTestGame(t, 1)
	landOnGoal(g, ToFixed(g.board.Slots[0]))
	score := g.score

	g.Step(frame(core.ActionRestart))

	if g.score != score {
		t.Errorf("score reset to %d during play", g.score)
	}
	if !g.slots[0] {
		t.Error("slot cleared during play")
	}
}

func TestPauseFreezesSimulation(t *testing.T) {
	g := newTestGame(t, 1)

	g.Step(frame(core.ActionPause))
	if !g.paused {
		t.Fatal("game not paused")
	}
	before := g.Snapshot()
	for i := 0; i < 10; i++ {
		g.Step(frame())
	}
	if !g.Snapshot().Equal(before) {
		t.Error("state changed while paused")
	}

	g.Step(frame(core.ActionPause))
	if g.paused {
		t.Fatal("game did not unpause")
	}
	if g.Snapshot().Equal(before) {
		t.Error("hazards did not move after unpausing")
	}
}

func TestHopRowBounds(t *testing.T) {
	g := newTestGame(t, 1)

	g.Step(frame(core.ActionUp))
	if g.playerRow != LowSafeRow {
		t.Errorf("row = %d after up, want %d", g.playerRow, LowSafeRow)
	}
	g.Step(frame(core.ActionDown))
	if g.playerRow != StartRow {
		t.Errorf("row = %d after down, want %d", g.playerRow, StartRow)
	}
	g.Step(frame(core.ActionDown))
	if g.playerRow != StartRow {
		t.Errorf("down past start row moved to %d", g.playerRow)
	}
}

func TestSlideClampsToBoard(t *testing.T) {
	g := newTestGame(t, 1)

	g.playerX = 0
	g.Step(frame(core.ActionLeft))
	if g.playerX != 0 {
		t.Errorf("playerX = %d after left at edge, want 0", g.playerX)
	}

	g.playerX = ToFixed(g.board.Cols - 1)
	g.Step(frame(core.ActionRight))
	if g.playerX != ToFixed(g.board.Cols-1) {
		t.Errorf("playerX = %d after right at edge", g.playerX)
	}
}

func TestOneIntentPerTick(t *testing.T) {
	g := newTestGame(t, 1)
	x := g.playerX

	g.Step(frame(core.ActionUp, core.ActionLeft))

	if g.playerRow != LowSafeRow {
		t.Errorf("row = %d, want %d", g.playerRow, LowSafeRow)
	}
	if g.playerX != x {
		t.Error("horizontal intent applied alongside vertical")
	}
}

// TestScenarioCrossToGoal walks a full crossing: empty road, full-width
// static logs on the river, into slot 3.
func TestScenarioCrossToGoal(t *testing.T) {
	g := newTestGame(t, 1)

	for row := RoadTop; row <= RoadBottom; row++ {
		setLane(g, row)
	}
	for row := RiverTop; row <= RiverBottom; row++ {
		setLane(g, row, Hazard{
			Kind: HazardLog, Row: row,
			X: 0, W: ToFixed(g.board.Cols), Vel: 0,
		})
	}

	// Line up with slot 3 at column 12, then hop all the way up.
	g.Step(frame(core.ActionRight))
	g.Step(frame(core.ActionRight))
	for g.playerRow > RiverTop {
		g.Step(frame(core.ActionUp))
	}
	g.Step(frame(core.ActionUp))

	if !g.slots[3] {
		t.Fatal("slot 3 not filled")
	}
	if g.score != g.cfg.Gameplay.SlotPoints {
		t.Errorf("score = %d, want %d", g.score, g.cfg.Gameplay.SlotPoints)
	}
	if g.lives != g.cfg.Gameplay.Lives {
		t.Errorf("lives = %d, want %d", g.lives, g.cfg.Gameplay.Lives)
	}
	if g.playerRow != StartRow {
		t.Error("player was not respawned at start")
	}
}

func TestHopSnapsToCell(t *testing.T) {
	g := newTestGame(t, 1)

	g.playerX = ToFixed(5) + 400
	g.Step(frame(core.ActionUp))
	if g.playerX != ToFixed(5) {
		t.Errorf("playerX = %d, want snap to %d", g.playerX, ToFixed(5))
	}

	g.playerX = ToFixed(5) + 600
	g.Step(frame(core.ActionUp))
	if g.playerX != ToFixed(6) {
		t.Errorf("playerX = %d, want snap to %d", g.playerX, ToFixed(6))
	}
}
