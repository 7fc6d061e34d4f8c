// Copyright 2025 The Godew Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gibbs

// quadTrap integrates f over [a,b] with the composite trapezoidal rule on
// n equal sub-intervals
func quadTrap(f func(x float64) float64, a, b float64, n int) (res float64) {
	if n < 1 {
		n = 1
	}
	h := (b - a) / float64(n)
	res = 0.5 * (f(a) + f(b))
	for i := 1; i < n; i++ {
		res += f(a + float64(i)*h)
	}
	return res * h
}

// quadSimpson integrates f over [a,b] with the composite Simpson rule.
// n is rounded up to the next even number
func quadSimpson(f func(x float64) float64, a, b float64, n int) (res float64) {
	if n < 2 {
		n = 2
	}
	if n%2 != 0 {
		n++
	}
	h := (b - a) / float64(n)
	res = f(a) + f(b)
	for i := 1; i < n; i++ {
		x := a + float64(i)*h
		if i%2 == 1 {
			res += 4.0 * f(x)
		} else {
			res += 2.0 * f(x)
		}
	}
	return res * h / 3.0
}

// 16-point Gauss-Legendre abscissae and weights on [-1,1]
var (
	gl16x = []float64{
		-0.9894009349916499, -0.9445750230732326, -0.8656312023878318, -0.7554044083550030,
		-0.6178762444026438, -0.4580167776572274, -0.2816035507792589, -0.0950125098376374,
		0.0950125098376374, 0.2816035507792589, 0.4580167776572274, 0.6178762444026438,
		0.7554044083550030, 0.8656312023878318, 0.9445750230732326, 0.9894009349916499,
	}
	gl16w = []float64{
		0.0271524594117541, 0.0622535239386479, 0.0951585116824928, 0.1246289712555339,
		0.1495959888165767, 0.1691565193950025, 0.1826034150449236, 0.1894506104550685,
		0.1894506104550685, 0.1826034150449236, 0.1691565193950025, 0.1495959888165767,
		0.1246289712555339, 0.0951585116824928, 0.0622535239386479, 0.0271524594117541,
	}
)

// quadGauss16 integrates f over [a,b] with 16-point Gauss-Legendre quadrature
// applied on m equal segments
func quadGauss16(f func(x float64) float64, a, b float64, m int) (res float64) {
	if m < 1 {
		m = 1
	}
	h := (b - a) / float64(m)
	for i := 0; i < m; i++ {
		lo := a + float64(i)*h
		mid := lo + 0.5*h
		for j := 0; j < 16; j++ {
			res += gl16w[j] * f(mid+0.5*h*gl16x[j])
		}
	}
	return res * 0.5 * h
}

// quadAdaptive integrates f over [a,b] with adaptive Simpson subdivision.
// A sub-interval is accepted when the midpoint value deviates from the
// endpoint average by less than the tolerance scaled to the interval width;
// otherwise both halves recurse with half the tolerance, down to maxDepth
func quadAdaptive(f func(x float64) float64, a, b, tol float64, maxDepth int) float64 {
	return adaptStep(f, a, b, f(a), f(b), tol, maxDepth)
}

func adaptStep(f func(x float64) float64, a, b, fa, fb, tol float64, depth int) float64 {
	m := 0.5 * (a + b)
	fm := f(m)
	diff := fm - 0.5*(fa+fb)
	if diff < 0 {
		diff = -diff
	}
	if depth <= 0 || diff*(b-a) <= tol {
		return (b - a) / 6.0 * (fa + 4.0*fm + fb)
	}
	return adaptStep(f, a, m, fa, fm, 0.5*tol, depth-1) +
		adaptStep(f, m, b, fm, fb, 0.5*tol, depth-1)
}
