package frogger

// RowKind classifies a board row by its hazard rules.
type RowKind int

const (
	RowGoal RowKind = iota
	RowRiver
	RowSafe
	RowRoad
	RowStart
)

func (k RowKind) String() string {
	switch k {
	case RowGoal:
		return "goal"
	case RowRiver:
		return "river"
	case RowSafe:
		return "safe"
	case RowRoad:
		return "road"
	case RowStart:
		return "start"
	default:
		return "unknown"
	}
}

// Board row layout, top to bottom. The layout is fixed: one goal row, a
// river band, a middle safe strip, a road band, and the start row.
const (
	BoardRows = 15

	GoalRow     = 0
	RiverTop    = 1
	RiverBottom = 5
	MidSafeRow  = 6
	RoadTop     = 7
	RoadBottom  = 12
	LowSafeRow  = 13
	StartRow    = 14
)

// Board holds static geometry: column count and the goal slot positions.
type Board struct {
	Cols  int
	Slots []int // goal slot column for each slot index
}

// NewBoard builds the board for a given width and goal slot count. Slots are
// spread evenly across the goal row.
func NewBoard(cols, slots int) Board {
	spacing := cols / (slots + 1)
	cells := make([]int, slots)
	for i := range cells {
		cells[i] = spacing * (i + 1)
	}
	return Board{Cols: cols, Slots: cells}
}

// RowKindAt returns the kind of a board row.
func (b Board) RowKindAt(row int) RowKind {
	switch {
	case row == GoalRow:
		return RowGoal
	case row >= RiverTop && row <= RiverBottom:
		return RowRiver
	case row == MidSafeRow || row == LowSafeRow:
		return RowSafe
	case row >= RoadTop && row <= RoadBottom:
		return RowRoad
	default:
		return RowStart
	}
}

// SlotAt returns the index of the slot whose cell overlaps the given
// horizontal footprint, or -1 when the footprint only covers wall. Slots sit
// more than a player width apart, so at most one slot can match.
func (b Board) SlotAt(span Span) int {
	for i, col := range b.Slots {
		if (Span{X: ToFixed(col), W: Scale}).Overlaps(span) {
			return i
		}
	}
	return -1
}

// StartX returns the player spawn column.
func (b Board) StartX() int {
	return b.Cols / 2
}
