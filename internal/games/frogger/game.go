// Package frogger implements a lane-crossing arcade game. The player hops a
// frog from the start row across a road of vehicles and a river of drifting
// logs into one of the goal slots at the top; filling every slot wins the
// round.
package frogger

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/vovakirdan/tui-frogger/internal/config"
	"github.com/vovakirdan/tui-frogger/internal/core"
)

var (
	configPath       string
	difficultyPreset config.DifficultyPreset = config.DifficultyNormal
)

// SetConfigPath sets a custom config file path for the game.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset applied on the next Reset.
func SetDifficultyPreset(preset config.DifficultyPreset) {
	difficultyPreset = preset
}

// Game is the frogger simulation. It is a pure tick-stepped core: no timers,
// no I/O, all randomness from seeded streams.
type Game struct {
	cfg     config.FroggerConfig
	runtime core.RuntimeConfig

	board   Board
	spawner *Spawner
	rng     *rand.Rand

	playerRow int
	playerX   Fixed

	slots []bool
	score int
	lives int

	over   bool
	won    bool
	paused bool
}

// New creates a frogger game.
func New() *Game {
	return &Game{}
}

// ID returns the unique game identifier.
func (g *Game) ID() string { return "frogger" }

// Title returns the display name.
func (g *Game) Title() string { return "Frogger" }

// Reset initializes the game state for a new session.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.runtime = cfg

	gameCfg, err := config.LoadFrogger(configPath)
	if err != nil {
		gameCfg = config.DefaultFroggerConfig()
	}
	config.ApplyFroggerPreset(&gameCfg, difficultyPreset)
	g.cfg = gameCfg

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	g.rng = rand.New(rand.NewSource(seed))

	g.board = NewBoard(gameCfg.Board.Cols, gameCfg.Gameplay.GoalSlots)
	g.startRound(g.rng.Int63())
}

// startRound resets all round state with a fresh hazard seed. Lives, score,
// and slots all start over.
func (g *Game) startRound(seed int64) {
	g.spawner = NewSpawner(g.cfg, seed)
	g.slots = make([]bool, g.cfg.Gameplay.GoalSlots)
	g.score = 0
	g.lives = g.cfg.Gameplay.Lives
	g.over = false
	g.won = false
	g.paused = false
	g.respawnPlayer()
}

func (g *Game) respawnPlayer() {
	g.playerRow = StartRow
	g.playerX = ToFixed(g.board.StartX())
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.over || g.won {
		if in.Has(core.ActionRestart) {
			g.startRound(g.rng.Int63())
		}
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.spawner.Advance()
	g.resolveHazards()
	if !g.over {
		g.applyIntent(in)
	}

	return core.StepResult{State: g.State()}
}

// resolveHazards applies the current row's hazard rules to the player:
// vehicles on the road kill, the river drowns unless a log carries, and a
// carry past the board edge costs a life.
func (g *Game) resolveHazards() {
	switch g.board.RowKindAt(g.playerRow) {
	case RowRoad:
		span := g.playerSpan()
		for _, h := range g.spawner.RowHazards(g.playerRow) {
			if h.Span().Overlaps(span) {
				g.loseLife()
				return
			}
		}
	case RowRiver:
		span := g.playerSpan()
		var ride *Hazard
		for _, h := range g.spawner.RowHazards(g.playerRow) {
			if h.Span().Overlaps(span) {
				ride = &h
				break
			}
		}
		if ride == nil {
			g.loseLife()
			return
		}
		g.playerX += ride.Vel
		if g.playerX < 0 || g.playerSpan().Right() > ToFixed(g.board.Cols) {
			g.loseLife()
		}
	}
}

// applyIntent consumes at most one directional action for this tick.
func (g *Game) applyIntent(in core.InputFrame) {
	switch {
	case in.Has(core.ActionUp):
		g.hop(-1)
	case in.Has(core.ActionDown):
		g.hop(+1)
	case in.Has(core.ActionLeft):
		g.slide(-Scale)
	case in.Has(core.ActionRight):
		g.slide(Scale)
	}
}

// hop moves the player one row up or down. Hops between lanes land on whole
// cells, snapping away any drift from riding a log; a hop into the goal row
// keeps the drifted footprint so near misses stay near misses.
func (g *Game) hop(dr int) {
	row := g.playerRow + dr
	if row > StartRow {
		return
	}
	if row == GoalRow {
		g.arriveAtGoal()
		return
	}
	g.playerRow = row
	g.playerX = ToFixed(core.Clamp(g.playerX.Round(), 0, g.board.Cols-1))
}

func (g *Game) slide(dx Fixed) {
	g.playerX += dx
	if g.playerX < 0 {
		g.playerX = 0
	}
	if limit := ToFixed(g.board.Cols - 1); g.playerX > limit {
		g.playerX = limit
	}
}

// arriveAtGoal resolves a hop into the goal row. A footprint overlapping an
// empty slot fills it and scores; a filled slot or the wall between slots
// costs a life. The player never rests on the goal row.
func (g *Game) arriveAtGoal() {
	slot := g.board.SlotAt(g.playerSpan())
	if slot < 0 || g.slots[slot] {
		g.loseLife()
		return
	}
	g.slots[slot] = true
	g.score += g.cfg.Gameplay.SlotPoints
	if g.allSlotsFilled() {
		g.won = true
		return
	}
	g.respawnPlayer()
}

func (g *Game) allSlotsFilled() bool {
	for _, filled := range g.slots {
		if !filled {
			return false
		}
	}
	return true
}

// loseLife decrements lives and either ends the game or respawns the player.
// Hazards and filled slots are untouched.
func (g *Game) loseLife() {
	g.lives--
	if g.lives <= 0 {
		g.lives = 0
		g.over = true
		return
	}
	g.respawnPlayer()
}

func (g *Game) playerSpan() Span {
	return Span{X: g.playerX, W: Scale}
}

func (g *Game) filledSlots() int {
	n := 0
	for _, filled := range g.slots {
		if filled {
			n++
		}
	}
	return n
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		Lives:    g.lives,
		GameOver: g.over,
		Won:      g.won,
		Paused:   g.paused,
	}
}

const (
	boardCellW = 3 // terminal columns per board cell
	hudHeight  = 2
)

// Render draws the game state into the screen buffer.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	boardW := g.board.Cols * boardCellW
	if dst.Width() < boardW || dst.Height() < BoardRows+hudHeight {
		dst.DrawTextCenteredColored(dst.Height()/2, "Terminal too small", core.ColorRed)
		return
	}
	offsetX := (dst.Width() - boardW) / 2
	offsetY := hudHeight + (dst.Height()-hudHeight-BoardRows)/2

	g.renderHUD(dst)
	g.renderRows(dst, offsetX, offsetY)
	g.spawner.ForEach(func(h Hazard) {
		g.renderHazard(dst, h, offsetX, offsetY)
	})
	g.renderPlayer(dst, offsetX, offsetY)
	g.renderOverlay(dst)
}

func (g *Game) renderHUD(dst *core.Screen) {
	hud := fmt.Sprintf("Score: %d   Lives: %d   Slots: %d/%d",
		g.score, g.lives, g.filledSlots(), len(g.slots))
	dst.DrawTextColored(1, 0, hud, core.ColorWhite)
}

func (g *Game) renderRows(dst *core.Screen, offsetX, offsetY int) {
	for row := 0; row < BoardRows; row++ {
		y := offsetY + row
		switch g.board.RowKindAt(row) {
		case RowGoal:
			g.renderGoalRow(dst, offsetX, y)
		case RowRiver:
			g.fillRow(dst, offsetX, y, '~', core.ColorBlue)
		case RowSafe, RowStart:
			g.fillRow(dst, offsetX, y, '.', core.ColorGreen)
		case RowRoad:
			g.fillRow(dst, offsetX, y, ' ', core.ColorDefault)
		}
	}
}

func (g *Game) fillRow(dst *core.Screen, offsetX, y int, ch rune, color core.Color) {
	for x := 0; x < g.board.Cols*boardCellW; x++ {
		dst.SetCell(offsetX+x, y, ch, color)
	}
}

// renderGoalRow draws the goal wall with its slots: open slots as gaps,
// filled slots holding a frog.
func (g *Game) renderGoalRow(dst *core.Screen, offsetX, y int) {
	g.fillRow(dst, offsetX, y, '█', core.ColorGreen)
	for i, col := range g.board.Slots {
		x := offsetX + col*boardCellW
		for dx := 0; dx < boardCellW; dx++ {
			dst.SetCell(x+dx, y, ' ', core.ColorDefault)
		}
		if g.slots[i] {
			dst.SetCell(x+boardCellW/2, y, '@', core.ColorYellow)
		}
	}
}

func (g *Game) renderHazard(dst *core.Screen, h Hazard, offsetX, offsetY int) {
	ch, color := '█', core.ColorRed
	if h.Kind == HazardLog {
		ch, color = '▓', core.ColorOrange
	}
	y := offsetY + h.Row
	left := h.X.ToCell()
	right := (h.X + h.W - 1).ToCell()
	for cell := left; cell <= right; cell++ {
		if cell < 0 || cell >= g.board.Cols {
			continue
		}
		for dx := 0; dx < boardCellW; dx++ {
			dst.SetCell(offsetX+cell*boardCellW+dx, y, ch, color)
		}
	}
}

func (g *Game) renderPlayer(dst *core.Screen, offsetX, offsetY int) {
	if g.over {
		return
	}
	cell := core.Clamp(g.playerX.Round(), 0, g.board.Cols-1)
	x := offsetX + cell*boardCellW + boardCellW/2
	dst.SetCell(x, offsetY+g.playerRow, '@', core.ColorGreen)
}

func (g *Game) renderOverlay(dst *core.Screen) {
	mid := dst.Height() / 2
	switch {
	case g.won:
		dst.DrawTextCenteredColored(mid, "YOU WIN!", core.ColorGreen)
		dst.DrawTextCenteredColored(mid+1, fmt.Sprintf("Final score: %d", g.score), core.ColorWhite)
		dst.DrawTextCenteredColored(mid+2, "Press R to play again", core.ColorGray)
	case g.over:
		dst.DrawTextCenteredColored(mid, "GAME OVER", core.ColorRed)
		dst.DrawTextCenteredColored(mid+1, fmt.Sprintf("Final score: %d", g.score), core.ColorWhite)
		dst.DrawTextCenteredColored(mid+2, "Press R to restart", core.ColorGray)
	case g.paused:
		dst.DrawTextCenteredColored(mid, "PAUSED", core.ColorYellow)
	}
}
