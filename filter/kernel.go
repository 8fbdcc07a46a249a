package filter

import (
	"math"
	"sync"
)

// KernelSize returns the length of GaussianKernel(radius): three standard
// deviations either side of the center tap.
func KernelSize(radius float64) int {
	if radius <= 0 {
		return 1
	}
	return 2*int(math.Ceil(3*radius)) + 1
}

// GaussianKernel returns a normalized 1D Gaussian with sigma = radius.
// For radius <= 0 it is the identity kernel [1].
func GaussianKernel(radius float64) []float32 {
	k := make([]float32, KernelSize(radius))
	if len(k) == 1 {
		k[0] = 1
		return k
	}

	center := len(k) / 2
	denom := 2 * radius * radius
	weights := make([]float64, len(k))
	var total float64
	for i := range weights {
		d := float64(i - center)
		weights[i] = math.Exp(-d * d / denom)
		total += weights[i]
	}
	for i, w := range weights {
		k[i] = float32(w / total)
	}
	return k
}

// BoxKernel returns 2*radius+1 equal taps.
func BoxKernel(radius int) []float32 {
	n := 2*max(radius, 0) + 1
	k := make([]float32, n)
	for i := range k {
		k[i] = 1 / float32(n)
	}
	return k
}

// kernelCache memoizes Gaussian kernels by radius rounded to hundredths.
// When full it is emptied and refilled on demand.
type kernelCache struct {
	mu      sync.RWMutex
	kernels map[int64][]float32
	limit   int
}

var kernels = newKernelCache(64)

func newKernelCache(limit int) *kernelCache {
	return &kernelCache{kernels: make(map[int64][]float32, limit), limit: limit}
}

func (c *kernelCache) get(radius float64) []float32 {
	key := int64(math.Round(radius * 100))

	c.mu.RLock()
	k, ok := c.kernels[key]
	c.mu.RUnlock()
	if ok {
		return k
	}

	k = GaussianKernel(float64(key) / 100)
	c.mu.Lock()
	defer c.mu.Unlock()
	if prev, ok := c.kernels[key]; ok {
		return prev
	}
	if len(c.kernels) >= c.limit {
		clear(c.kernels)
	}
	c.kernels[key] = k
	return k
}

// CachedGaussianKernel is GaussianKernel shared between callers with the
// same radius to 0.01. The returned slice must not be modified.
func CachedGaussianKernel(radius float64) []float32 {
	return kernels.get(radius)
}
