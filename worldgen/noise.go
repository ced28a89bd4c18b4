package worldgen

import (
	"math"

	"github.com/jmoiron/nbtkit/javarand"
)

// WhiteNoise returns h*w pseudo-random bytes drawn from r, row-major.
func WhiteNoise(r *javarand.Rand, h, w int) []byte {
	buf := make([]byte, h*w)
	r.NextBytes(buf)
	return buf
}

// Perlin is a gradient-noise field over an h by w cell grid. Gradients are
// unit vectors drawn from a javarand generator, so a given seed always
// produces the same field.
type Perlin struct {
	h, w int
	grad [][2]float64 // (h+1)*(w+1) grid points, row-major
}

// NewPerlin builds a noise field with h by w cells.
func NewPerlin(r *javarand.Rand, h, w int) *Perlin {
	p := &Perlin{h: h, w: w, grad: make([][2]float64, (h+1)*(w+1))}
	for i := range p.grad {
		p.grad[i] = unitVector(r)
	}
	return p
}

// unitVector rejection-samples a point in the unit disc and normalizes it.
func unitVector(r *javarand.Rand) [2]float64 {
	for {
		x := 2*r.NextDouble() - 1
		y := 2*r.NextDouble() - 1
		s := x*x + y*y
		if s >= 1 || s == 0 {
			continue
		}
		m := math.Sqrt(s)
		return [2]float64{x / m, y / m}
	}
}

func (p *Perlin) gradient(gx, gy int) [2]float64 {
	return p.grad[gx*(p.w+1)+gy]
}

// dot product of the gradient at grid point (gx, gy) with the offset from
// that point to (x, y)
func (p *Perlin) dotGradient(gx, gy int, x, y float64) float64 {
	g := p.gradient(gx, gy)
	return (x-float64(gx))*g[0] + (y-float64(gy))*g[1]
}

func interpolate(a0, a1, w float64) float64 {
	w = 3*w*w - 2*w*w*w
	return (1-w)*a0 + w*a1
}

// At samples the field at (x, y), with x in [0, h) and y in [0, w).
func (p *Perlin) At(x, y float64) float64 {
	x0, y0 := int(x), int(y)
	x1, y1 := x0+1, y0+1
	sx, sy := x-float64(x0), y-float64(y0)
	ix0 := interpolate(p.dotGradient(x0, y0, x, y), p.dotGradient(x1, y0, x, y), sx)
	ix1 := interpolate(p.dotGradient(x0, y1, x, y), p.dotGradient(x1, y1, x, y), sx)
	return interpolate(ix0, ix1, sy)
}

// Noise samples an h by w grid of values at the given frequency, row-major.
// freq must be in (0, 1] so samples stay inside the field.
func (p *Perlin) Noise(freq float64) []float64 {
	values := make([]float64, p.h*p.w)
	for x := 0; x < p.h; x++ {
		for y := 0; y < p.w; y++ {
			values[x*p.w+y] = p.At(float64(x)*freq, float64(y)*freq)
		}
	}
	return values
}

// FractalNoise sums octaves of gradient noise over an h by w grid, one
// fresh field per octave drawn from r, each octave sampled at freqs[i] and
// weighted by amps[i]. The result is rescaled to gray bytes in [0, 256).
func FractalNoise(r *javarand.Rand, h, w int, freqs, amps []float64) []byte {
	values := make([]float64, h*w)
	for fi, freq := range freqs {
		p := NewPerlin(r, h, w)
		for i, v := range p.Noise(freq) {
			values[i] += amps[fi] * v
		}
	}
	lo, hi := values[0], values[0]
	for _, v := range values {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	out := make([]byte, len(values))
	for i, v := range values {
		out[i] = byte(256.0 * (v - lo) / (hi - lo + 0.000001))
	}
	return out
}
