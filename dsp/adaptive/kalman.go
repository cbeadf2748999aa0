package adaptive

// Noise covariances of the scalar Kalman estimator.
const (
	KalmanProcessNoise     = 0.1
	KalmanMeasurementNoise = 0.5
)

// ScalarKalman is a random-walk Kalman estimator of a single value.
type ScalarKalman struct {
	q float64 // process noise covariance
	r float64 // measurement noise covariance
	x float64 // estimate
	p float64 // estimate covariance
}

// NewScalarKalman returns an estimator starting at x=0 with covariance 1.
func NewScalarKalman(q, r float64) *ScalarKalman {
	return &ScalarKalman{q: q, r: r, p: 1}
}

// Update folds in one measurement and returns the new estimate and the
// innovation (measurement minus prediction).
func (k *ScalarKalman) Update(measurement float64) (estimate, innovation float64) {
	// predict: the state is a random walk
	p := k.p + k.q

	gain := p / (p + k.r)
	innovation = measurement - k.x

	k.x += gain * innovation
	k.p = (1 - gain) * p
	return k.x, innovation
}

// Estimate returns the current estimate.
func (k *ScalarKalman) Estimate() float64 { return k.x }

// Covariance returns the current estimate covariance.
func (k *ScalarKalman) Covariance() float64 { return k.p }
