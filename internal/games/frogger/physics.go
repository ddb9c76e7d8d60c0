package frogger

// Fixed is a fixed-point coordinate in milli-cells. All horizontal motion
// runs on integer math so the simulation is deterministic across platforms.
type Fixed int

// Scale is the number of fixed-point units per board cell.
const Scale = 1000

// ToFixed converts a cell coordinate to fixed-point.
func ToFixed(cells int) Fixed {
	return Fixed(cells * Scale)
}

// ToCell converts a fixed-point coordinate to a cell index, truncating
// toward negative infinity.
func (f Fixed) ToCell() int {
	if f < 0 {
		return int((f - Scale + 1) / Scale)
	}
	return int(f / Scale)
}

// Round converts a fixed-point coordinate to the nearest cell index.
func (f Fixed) Round() int {
	if f < 0 {
		return int((f - Scale/2) / Scale)
	}
	return int((f + Scale/2) / Scale)
}

// Abs returns the absolute value.
func (f Fixed) Abs() Fixed {
	if f < 0 {
		return -f
	}
	return f
}

// Span is a horizontal fixed-point interval [X, X+W).
type Span struct {
	X Fixed
	W Fixed
}

// Right returns the exclusive right edge.
func (s Span) Right() Fixed {
	return s.X + s.W
}

// Overlaps reports whether two spans share any interior extent. Touching
// edges do not overlap.
func (s Span) Overlaps(o Span) bool {
	return s.X < o.Right() && o.X < s.Right()
}
