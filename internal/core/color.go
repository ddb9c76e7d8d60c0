package core

// Color is a foreground color for a screen cell. The palette is the small
// set of colors the board renderer draws with; the platform maps each one to
// a terminal style.
type Color uint8

const (
	ColorDefault Color = iota
	ColorRed     // vehicles, game over
	ColorGreen   // frog, safe strips, goal wall
	ColorYellow  // filled slots, pause
	ColorBlue    // river water
	ColorWhite   // HUD text
	ColorOrange  // logs
	ColorGray    // hints
)
