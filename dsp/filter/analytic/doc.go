// Package analytic evaluates closed-form magnitude, phase and group-delay
// approximations of the classic analog filter families.
//
// The formulas are visualisation grade. Butterworth and Chebyshev type I
// follow their textbook magnitude functions; Chebyshev type II uses a fixed
// stopband factor of 0.1; Bessel and elliptic are heuristics that mimic the
// shape of the real responses. None of them is a synthesised transfer
// function and results will not match reference filter tables.
package analytic
