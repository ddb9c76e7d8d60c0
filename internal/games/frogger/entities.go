package frogger

import (
	"math/rand"

	"github.com/vovakirdan/tui-frogger/internal/config"
)

// HazardKind distinguishes road vehicles from river logs. Vehicles kill on
// contact; logs are the only safe footing on the river.
type HazardKind int

const (
	HazardVehicle HazardKind = iota
	HazardLog
)

// Hazard is one moving entity in a lane.
type Hazard struct {
	Kind HazardKind
	Row  int
	X    Fixed // left edge, milli-cells
	W    Fixed
	Vel  Fixed // milli-cells per tick, negative moves left
}

// Span returns the hazard's horizontal extent.
func (h Hazard) Span() Span {
	return Span{X: h.X, W: h.W}
}

type lane struct {
	kind    HazardKind
	row     int
	cfg     config.LaneConfig
	rng     *rand.Rand
	hazards []Hazard
}

// Spawner owns the moving lanes. Each lane carries its own random stream so
// lanes evolve independently of one another for a given seed.
type Spawner struct {
	cols   int
	margin int
	lanes  []lane
}

// NewSpawner builds and populates all lanes from the config.
func NewSpawner(cfg config.FroggerConfig, seed int64) *Spawner {
	s := &Spawner{
		cols:   cfg.Board.Cols,
		margin: cfg.Spawn.MarginCells,
	}
	for i, lc := range cfg.RiverLanes {
		s.addLane(HazardLog, RiverTop+i, lc, seed)
	}
	for i, lc := range cfg.RoadLanes {
		s.addLane(HazardVehicle, RoadTop+i, lc, seed)
	}
	return s
}

func (s *Spawner) addLane(kind HazardKind, row int, lc config.LaneConfig, seed int64) {
	l := lane{
		kind: kind,
		row:  row,
		cfg:  lc,
		rng:  rand.New(rand.NewSource(seed + int64(row)*31)),
	}
	l.populate(s.cols, s.margin)
	s.lanes = append(s.lanes, l)
}

// populate places count hazards evenly across the lane, each nudged by a
// bounded jitter so the minimum gap of width+margin cells is preserved.
// Initial entities share one lane speed; speeds diverge as entities wrap
// and re-roll.
func (l *lane) populate(cols, margin int) {
	count := l.cfg.CountMin
	if l.cfg.CountMax > l.cfg.CountMin {
		count += l.rng.Intn(l.cfg.CountMax - l.cfg.CountMin + 1)
	}
	spacing := Fixed(cols * Scale / count)
	slack := spacing - ToFixed(l.cfg.Width+margin)
	vel := l.rollVel()

	l.hazards = make([]Hazard, count)
	for i := range l.hazards {
		x := spacing * Fixed(i)
		if slack > 0 {
			x += Fixed(l.rng.Intn(int(slack)))
		}
		l.hazards[i] = Hazard{
			Kind: l.kind,
			Row:  l.row,
			X:    x,
			W:    ToFixed(l.cfg.Width),
			Vel:  vel,
		}
	}
}

func (l *lane) rollVel() Fixed {
	mag := l.cfg.SpeedMin
	if l.cfg.SpeedMax > l.cfg.SpeedMin {
		mag += l.rng.Intn(l.cfg.SpeedMax - l.cfg.SpeedMin + 1)
	}
	if l.cfg.Dir == config.DirLeft {
		return Fixed(-mag)
	}
	return Fixed(mag)
}

// Advance moves every hazard one tick. A hazard fully off one side respawns
// just beyond the opposite side with a fresh speed, keeping its direction.
func (s *Spawner) Advance() {
	limit := ToFixed(s.cols)
	for li := range s.lanes {
		l := &s.lanes[li]
		for i := range l.hazards {
			h := &l.hazards[i]
			h.X += h.Vel
			switch {
			case h.Vel > 0 && h.X >= limit:
				h.X = -h.W - l.respawnGap(s.margin)
				h.Vel = l.rollVel()
			case h.Vel < 0 && h.Span().Right() <= 0:
				h.X = limit + l.respawnGap(s.margin)
				h.Vel = l.rollVel()
			}
		}
	}
}

func (l *lane) respawnGap(margin int) Fixed {
	if margin <= 0 {
		return 0
	}
	return Fixed(l.rng.Intn(int(ToFixed(margin)) + 1))
}

// RowHazards returns the hazards in a given board row, or nil for a row with
// no lane.
func (s *Spawner) RowHazards(row int) []Hazard {
	for i := range s.lanes {
		if s.lanes[i].row == row {
			return s.lanes[i].hazards
		}
	}
	return nil
}

// ForEach visits every hazard, for rendering.
func (s *Spawner) ForEach(fn func(Hazard)) {
	for i := range s.lanes {
		for _, h := range s.lanes[i].hazards {
			fn(h)
		}
	}
}
