// Package spectrum computes dense, linearly spaced frequency responses of
// tap sequences with an FFT, plus the bin-level helpers to turn them into
// magnitude, phase and group delay.
//
// The log-spaced response tables evaluate the DTFT directly at each query
// frequency; this package is the uniform-grid counterpart used for
// plotting full spectra and for cross-checking those tables.
package spectrum
