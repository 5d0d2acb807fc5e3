// Package viz renders the running lattice-gas simulation in the terminal.
//
// The live view is a Bubble Tea program: the left panel draws the lattice on
// a Braille pixel canvas, the right panel cycles between parameter stats,
// the mean-field phase diagram and the free-energy curve, and a density
// history chart can be toggled over either.
//
// # Key Bindings
//
//	Up/Down    - Temperature ±0.01 (floored at 0.01)
//	Left/Right - Chemical potential ±0.02
//	Space      - Randomize the lattice
//	M          - Cycle side panel
//	D          - Toggle density history
//	S          - Save the series CSV
//	P          - Pause/Resume
//	T          - Cycle color themes
//	Q          - Quit
package viz
