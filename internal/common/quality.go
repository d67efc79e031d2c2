package common

import "math"

// PSNR calculates the peak signal-to-noise ratio in dB between two 8-bit sample
// buffers and returns it along with a boolean indicating if the calculation was
// successful. Identical buffers yield +Inf.
func PSNR(a, b []uint8) (float64, bool) {
	if len(a) == 0 || len(a) != len(b) {
		return 0, false
	}

	var sumSquares float64
	for i := range a {
		d := float64(a[i]) - float64(b[i])
		sumSquares += d * d
	}

	mse := sumSquares / float64(len(a))
	if mse == 0 {
		return math.Inf(1), true
	}

	return 20*math.Log10(255) - 10*math.Log10(mse), true
}
