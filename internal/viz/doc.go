// Package viz hosts the game in a terminal.
//
// The court is drawn on a braille [Canvas] (2x4 sub-pixels per cell) through
// [CanvasSurface], and frames are pumped by a Bubble Tea tick. Mouse motion
// over the court moves the player paddle.
//
// # Key Bindings
//
//	↑/K ↓/J - Move paddle
//	Space   - Pause/Resume
//	R       - Restart
//	T       - Cycle color themes
//	?       - Toggle help
//	Q       - Quit
package viz
