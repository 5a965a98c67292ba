// Package galaxy samples the star field shown in the main dashboard panel
// and computes its per-frame appearance. Star attributes are drawn once from
// a seeded source; every frame is a pure function of the field and virtual
// time, so redrawing never mutates the sampled data.
package galaxy
