// Package petro holds the petrophysical reference geometry and statistics
// used by the renderers: lithology end-member trend lines and iso-porosity
// markers for neutron-density cross-plots, the density-porosity transform,
// and per-curve summary statistics that exclude the LAS null sentinel.
//
// Everything here is a pure function of its numeric inputs; there is no
// shared state and all functions are safe for concurrent use.
package petro
