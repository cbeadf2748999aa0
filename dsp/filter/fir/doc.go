// Package fir designs windowed-sinc FIR filters and runs them.
//
// [Design] builds the tap sequence from a cutoff, sample rate, tap count,
// window and response type. Highpass kernels are derived from the lowpass
// kernel by spectral inversion. Bandpass, bandstop and notch requests return
// the plain lowpass kernel: no band transformation is applied.
//
// A [Filter] applies a set of coefficients to an input stream using a
// circular-buffer delay line and evaluates its frequency response.
package fir
