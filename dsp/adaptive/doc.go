// Package adaptive simulates adaptive estimators on a synthetic
// noise-cancellation scenario.
//
// A clean tone sin(2πn/20) is corrupted by a correlated interference
// 0.5·cos(2πn/5) and uniform noise. An 8-tap filter driven by a noisy copy
// of the interference tries to predict the corrupted signal; the gradient
// estimators (LMS, NLMS and a simplified RLS) adapt its weights, while the
// scalar Kalman estimator tracks the corrupted signal directly.
//
// The RLS variant is a fixed-gain gradient step, not a recursive
// least-squares solver with an inverse correlation matrix.
//
// Every run draws its noise from an injected [Source], so a seeded source
// reproduces a trace bit for bit.
package adaptive
