// Package viz renders the four dashboard panels in the terminal: the galaxy
// and spiral on braille canvases, the ratio convergence as an ascii graph,
// and the statistics as styled text. The Dashboard model owns the virtual
// clock and redraws everything on a fixed tick.
package viz
