package filter

import (
	"math"
	"sync"
)

// GaussianKernel generates a 1D Gaussian kernel for the given sigma.
// The kernel is normalized so all values sum to 1.0.
//
// The kernel size is computed as 2 * ceil(sigma * 3) + 1, which covers
// 99.7% of the Gaussian distribution (3 standard deviations).
//
// For sigma <= 0, returns a single-element kernel [1.0] (identity).
func GaussianKernel(sigma float64) []float64 {
	if !(sigma > 0) {
		return []float64{1.0}
	}

	halfSize := int(math.Ceil(sigma * 3))
	size := halfSize*2 + 1

	kernel := make([]float64, size)

	// Gaussian formula: G(x) = exp(-x²/(2σ²)) / (σ√(2π))
	// The normalization constant is skipped since the sum is normalized to 1.
	twoSigmaSq := 2 * sigma * sigma
	sum := 0.0

	for i := 0; i < size; i++ {
		x := float64(i - halfSize)
		val := math.Exp(-(x * x) / twoSigmaSq)
		kernel[i] = val
		sum += val
	}

	if sum > 0 {
		invSum := 1.0 / sum
		for i := range kernel {
			kernel[i] *= invSum
		}
	}

	return kernel
}

// kernelCache caches computed Gaussian kernels to avoid recomputation.
// Key is sigma * 100; the kernel is built from the quantized sigma so the
// result never depends on which caller populated the entry first.
type kernelCache struct {
	mu     sync.RWMutex
	cache  map[int][]float64
	maxLen int
}

var defaultKernelCache = newKernelCache(64)

// newKernelCache creates a kernel cache with the given maximum entries.
func newKernelCache(maxLen int) *kernelCache {
	return &kernelCache{
		cache:  make(map[int][]float64),
		maxLen: maxLen,
	}
}

// get retrieves a kernel from cache or generates and caches it.
func (c *kernelCache) get(sigma float64) []float64 {
	key := int(math.Round(sigma * 100))

	c.mu.RLock()
	if kernel, ok := c.cache[key]; ok {
		c.mu.RUnlock()
		return kernel
	}
	c.mu.RUnlock()

	kernel := GaussianKernel(float64(key) / 100)

	c.mu.Lock()
	if len(c.cache) >= c.maxLen {
		// Simple eviction: clear half the cache.
		count := 0
		for k := range c.cache {
			delete(c.cache, k)
			count++
			if count >= c.maxLen/2 {
				break
			}
		}
	}
	c.cache[key] = kernel
	c.mu.Unlock()

	return kernel
}

// CachedGaussianKernel returns a cached Gaussian kernel for sigma,
// quantized to 0.01.
func CachedGaussianKernel(sigma float64) []float64 {
	return defaultKernelCache.get(sigma)
}
