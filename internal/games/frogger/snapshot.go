package frogger

// Snapshot captures the full simulation state at a tick. Two games stepped
// identically from the same seed must produce equal snapshots.
type Snapshot struct {
	PlayerRow int
	PlayerX   Fixed
	Score     int
	Lives     int
	Slots     []bool
	Hazards   []Hazard
	GameOver  bool
	Won       bool
}

// Snapshot returns a copy of the current state.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		PlayerRow: g.playerRow,
		PlayerX:   g.playerX,
		Score:     g.score,
		Lives:     g.lives,
		Slots:     append([]bool(nil), g.slots...),
		GameOver:  g.over,
		Won:       g.won,
	}
	g.spawner.ForEach(func(h Hazard) {
		snap.Hazards = append(snap.Hazards, h)
	})
	return snap
}

// Equal reports whether two snapshots are identical.
func (s Snapshot) Equal(o Snapshot) bool {
	if s.PlayerRow != o.PlayerRow || s.PlayerX != o.PlayerX ||
		s.Score != o.Score || s.Lives != o.Lives ||
		s.GameOver != o.GameOver || s.Won != o.Won {
		return false
	}
	if len(s.Slots) != len(o.Slots) || len(s.Hazards) != len(o.Hazards) {
		return false
	}
	for i := range s.Slots {
		if s.Slots[i] != o.Slots[i] {
			return false
		}
	}
	for i := range s.Hazards {
		if s.Hazards[i] != o.Hazards[i] {
			return false
		}
	}
	return true
}
