package filter

// BlurAlpha applies a separable Gaussian blur to a single-channel alpha
// buffer of the given dimensions, in place. Values are [0, 1] floats.
//
// The separable algorithm processes horizontal and vertical passes
// independently, achieving O(w*h*r) complexity instead of O(w*h*r²).
// Edges are clamped (edge extension), so coverage near the border does
// not bleed to zero faster than the kernel dictates.
func BlurAlpha(alpha []float32, width, height int, radius float64) {
	if radius <= 0 || width <= 0 || height <= 0 {
		return
	}

	kernel := CachedGaussianKernel(radius)
	kernelSize := len(kernel)
	halfKernel := kernelSize / 2

	temp := make([]float32, width*height)

	// Horizontal pass: alpha -> temp
	for y := 0; y < height; y++ {
		row := y * width
		for x := 0; x < width; x++ {
			var sum float32

			for k := 0; k < kernelSize; k++ {
				kx := x + k - halfKernel

				// Edge extension
				if kx < 0 {
					kx = 0
				} else if kx >= width {
					kx = width - 1
				}

				sum += alpha[row+kx] * kernel[k]
			}

			temp[row+x] = sum
		}
	}

	// Vertical pass: temp -> alpha
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			var sum float32

			for k := 0; k < kernelSize; k++ {
				ky := y + k - halfKernel

				// Edge extension
				if ky < 0 {
					ky = 0
				} else if ky >= height {
					ky = height - 1
				}

				sum += temp[ky*width+x] * kernel[k]
			}

			alpha[y*width+x] = sum
		}
	}
}
