package core

// PushFront shifts history one slot towards the end, drops the oldest value
// and stores x at index 0, so that history stays ordered most-recent-first.
func PushFront(history []float64, x float64) {
	if len(history) == 0 {
		return
	}
	copy(history[1:], history[:len(history)-1])
	history[0] = x
}

// Zero sets all values in buf to 0.
func Zero(buf []float64) {
	for i := range buf {
		buf[i] = 0
	}
}
