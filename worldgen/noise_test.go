package worldgen

import (
	"math"
	"testing"

	"github.com/jmoiron/nbtkit/javarand"
)

func TestWhiteNoise(t *testing.T) {
	// same layout as a direct NextBytes fill
	want := []byte{115, 213, 26, 187, 216, 156, 184}
	got := WhiteNoise(javarand.NewSeed(1), 1, 7)
	if len(got) != 7 {
		t.Fatalf("len = %d", len(got))
	}
	for i, w := range want {
		if got[i] != w {
			t.Fatalf("byte %d: got %d, want %d", i, got[i], w)
		}
	}
}

func TestUnitVectors(t *testing.T) {
	r := javarand.NewSeed(7)
	for i := 0; i < 100; i++ {
		v := unitVector(r)
		norm := math.Sqrt(v[0]*v[0] + v[1]*v[1])
		if math.Abs(norm-1) > 1e-12 {
			t.Fatalf("vector %d has norm %v", i, norm)
		}
	}
}

func TestPerlinDeterministic(t *testing.T) {
	p1 := NewPerlin(javarand.NewSeed(42), 8, 8)
	p2 := NewPerlin(javarand.NewSeed(42), 8, 8)
	n1 := p1.Noise(0.5)
	n2 := p2.Noise(0.5)
	for i := range n1 {
		if n1[i] != n2[i] {
			t.Fatalf("sample %d differs: %v vs %v", i, n1[i], n2[i])
		}
	}
}

func TestPerlinZeroAtGridPoints(t *testing.T) {
	// at integer coordinates the offset to the nearest gradient is zero
	p := NewPerlin(javarand.NewSeed(3), 4, 4)
	for x := 0; x < 4; x++ {
		for y := 0; y < 4; y++ {
			if v := p.At(float64(x), float64(y)); v != 0 {
				t.Fatalf("At(%d,%d) = %v, want 0", x, y, v)
			}
		}
	}
}

func TestPerlinBounded(t *testing.T) {
	p := NewPerlin(javarand.NewSeed(9), 16, 16)
	for _, v := range p.Noise(0.25) {
		if math.Abs(v) > 1 {
			t.Fatalf("sample %v out of range", v)
		}
	}
}

func TestFractalNoise(t *testing.T) {
	freqs := []float64{0.5, 0.25}
	amps := []float64{1, 2}
	img1 := FractalNoise(javarand.NewSeed(5), 16, 16, freqs, amps)
	img2 := FractalNoise(javarand.NewSeed(5), 16, 16, freqs, amps)
	if len(img1) != 256 {
		t.Fatalf("len = %d", len(img1))
	}
	for i := range img1 {
		if img1[i] != img2[i] {
			t.Fatalf("pixel %d differs", i)
		}
	}
}
