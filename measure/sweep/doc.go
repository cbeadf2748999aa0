// Package sweep produces the frequency- and time-domain response tables of a
// filter specification.
//
// [Run] sweeps a fixed number of log-spaced frequencies from a minimum
// frequency up to ten times the cutoff (analog) or Nyquist (digital). FIR
// specifications are designed with package fir and evaluated through their
// DTFT at each swept frequency; analog and IIR specifications are evaluated
// with the closed-form models of package analytic.
//
// Phases are folded with a truncated modulo of 180 degrees (see
// [core.FoldPhase]) and magnitudes in dB are floored for display.
package sweep
