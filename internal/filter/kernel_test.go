package filter

import (
	"math"
	"testing"
)

func TestGaussianKernelZeroSigma(t *testing.T) {
	kernel := GaussianKernel(0)

	if len(kernel) != 1 {
		t.Errorf("GaussianKernel(0) len = %d, want 1", len(kernel))
	}
	if kernel[0] != 1.0 {
		t.Errorf("GaussianKernel(0)[0] = %v, want 1.0", kernel[0])
	}
}

func TestGaussianKernelNegativeSigma(t *testing.T) {
	for _, s := range []float64{-5, math.NaN()} {
		if kernel := GaussianKernel(s); len(kernel) != 1 {
			t.Errorf("GaussianKernel(%v) len = %d, want 1", s, len(kernel))
		}
	}
}

func TestGaussianKernelNormalized(t *testing.T) {
	for _, s := range []float64{0.15, 0.5, 1, 2, 3, 5} {
		kernel := GaussianKernel(s)

		var sum float64
		for _, v := range kernel {
			sum += v
		}
		if math.Abs(sum-1.0) > 1e-9 {
			t.Errorf("GaussianKernel(%v) sum = %v, want 1.0", s, sum)
		}
	}
}

func TestGaussianKernelSymmetric(t *testing.T) {
	kernel := GaussianKernel(5)
	n := len(kernel)

	for i := 0; i < n/2; i++ {
		j := n - 1 - i
		if math.Abs(kernel[i]-kernel[j]) > 1e-12 {
			t.Errorf("kernel[%d] = %v != kernel[%d] = %v (asymmetric)", i, kernel[i], j, kernel[j])
		}
	}
}

func TestGaussianKernelSize(t *testing.T) {
	tests := []struct {
		sigma    float64
		wantSize int
	}{
		{0.15, 3}, // ceil(0.45)*2+1
		{0.5, 5},  // ceil(1.5)*2+1
		{1.0, 7},  // ceil(3)*2+1
		{2.0, 13}, // ceil(6)*2+1
	}

	for _, tt := range tests {
		kernel := GaussianKernel(tt.sigma)
		if len(kernel) != tt.wantSize {
			t.Errorf("GaussianKernel(%v) len = %d, want %d", tt.sigma, len(kernel), tt.wantSize)
		}
	}
}

func TestCachedGaussianKernelQuantized(t *testing.T) {
	a := CachedGaussianKernel(1.501)
	b := CachedGaussianKernel(1.499)
	if len(a) != len(b) {
		t.Fatalf("quantized kernels differ in size: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("quantized kernels differ at %d: %v vs %v", i, a[i], b[i])
		}
	}
}
