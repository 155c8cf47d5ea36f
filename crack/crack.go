/*
Copyright © 2025 the snow-models authors.
This file is part of snow-models.

snow-models is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

snow-models is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with snow-models.  If not, see <http://www.gnu.org/licenses/>.
*/

// Package crack provides theoretical estimates of crack propagation speeds
// in collapsing weak snow layers.
//
// All functions are pure and deterministic. Inputs are expected to be
// positive physical quantities in SI units but are not range-checked:
// non-physical values (negative thickness, zero modulus) propagate through
// the arithmetic and can yield NaN or negative results.
package crack

import (
	"errors"
	"math"
	"sort"

	"github.com/bbergfeld/snow-models/uncert"
)

// touchdownGamma is the dimensionless touchdown constant γ from
// Heierli (2005).
const touchdownGamma = 2.331

// timoshenkoShear is the Timoshenko beam shear correction factor for a
// rectangular cross section.
const timoshenkoShear = 5.0 / 6.0

// flexuralRigidity gives the flexural rigidity D = E h³ / 12 [N m] of a slab
// with elastic modulus e [Pa] and thickness h [m].
func flexuralRigidity(e, h float64) float64 {
	return e * h * h * h / 12
}

// SolitaryWaveSpeed computes the propagation speed [m s-1] of a solitary
// fracture wave in a collapsing weak layer after Heierli (2005), "Solitary
// fracture waves in metastable snow stratifications", J. Geophys. Res.,
// equation 7a.
//
// g is the gravitational acceleration [m s-2], e the slab elastic modulus
// [Pa], h the slab thickness [m], hf the weak layer collapse height [m], and
// rho the mean slab density [kg m-3].
func SolitaryWaveSpeed(g, e, h, hf, rho float64) float64 {
	d := flexuralRigidity(e, h)
	c4 := g * d / (2 * hf * rho * h)
	return math.Sqrt(math.Sqrt(c4))
}

// SolitaryWaveTouchdown computes the touchdown distance [m] of a solitary
// fracture wave, the distance behind the crack tip over which the collapsing
// slab regains contact with the crushed weak layer, after Heierli (2005),
// equation 7a. Arguments are as for SolitaryWaveSpeed.
func SolitaryWaveTouchdown(g, e, h, hf, rho float64) float64 {
	d := flexuralRigidity(e, h)
	tdd4 := math.Pow(touchdownGamma, 4) * 2 * hf * d / (g * rho * h)
	return math.Sqrt(math.Sqrt(tdd4))
}

// SolitaryWaveSpeedUncert is SolitaryWaveSpeed with first-order propagation
// of the argument uncertainties.
func SolitaryWaveSpeedUncert(g, e, h, hf, rho uncert.Value) uncert.Value {
	return uncert.Wrap(func(x []float64) float64 {
		return SolitaryWaveSpeed(x[0], x[1], x[2], x[3], x[4])
	})(g, e, h, hf, rho)
}

// SolitaryWaveTouchdownUncert is SolitaryWaveTouchdown with first-order
// propagation of the argument uncertainties.
func SolitaryWaveTouchdownUncert(g, e, h, hf, rho uncert.Value) uncert.Value {
	return uncert.Wrap(func(x []float64) float64 {
		return SolitaryWaveTouchdown(x[0], x[1], x[2], x[3], x[4])
	})(g, e, h, hf, rho)
}

// FractureSpeedBounds computes the approximate lower and upper fracture
// speed estimates [m s-1] for dry slab avalanches after McClung (2005),
// "Approximate estimates of fracture speeds for dry slab avalanches",
// Geophys. Res. Lett., equation 1: 0.7 and 0.9 times the shear wave speed.
//
// nu is the slab Poisson ratio [-], e the slab elastic modulus [Pa] and rho
// the mean slab density [kg m-3].
func FractureSpeedBounds(nu, e, rho float64) (low, high float64) {
	g := e / (2 * (1 + nu))
	cs := math.Sqrt(g / rho)
	return 0.7 * cs, 0.9 * cs
}

// ErrNoRoot indicates that no root of the anticrack dispersion relation was
// found near the initial guess.
var ErrNoRoot = errors.New("crack: no root of the anticrack dispersion relation near the initial guess")

// AnticrackSpeed computes the crack propagation speed [m s-1] from the
// anticrack dispersion relation of Heierli's dissertation ("Anticrack model
// for slab avalanche release", equation 5.17), which links the touchdown
// length to the propagation speed of the collapse front.
//
// g is the gravitational acceleration [m s-2], e the slab elastic modulus
// [Pa], nu the slab Poisson ratio [-], h the slab thickness [m], hf the
// collapse height [m], rho the mean slab density [kg m-3], theta the slope
// angle [degrees] and l the touchdown length [m].
//
// The relation is solved numerically for the speed ratio C = c / c_shear,
// searching outward from the initial guess c0 (a value in (0,1); the result
// is sensitive to it when the relation has several branches). ErrNoRoot is
// returned if no root exists near the guess.
func AnticrackSpeed(g, e, nu, h, hf, rho, theta, l, c0 float64) (float64, error) {
	theta *= math.Pi / 180

	k := timoshenkoShear
	gs := e / (2 * (1 + nu)) // shear modulus
	eta := math.Sqrt(e / (3 * k * gs))
	shearSpeed := math.Sqrt(k * gs / rho)

	// Dimensionless variables after Heierli's table 4.1 and equation 5.2.
	// Sigma is the compressive stress -σ = ρ g h cosθ over k G.
	bigSigma := rho * g * h * math.Cos(theta) / (k * gs)
	bigL := l / h
	bigHf := hf / h

	f := func(c float64) float64 {
		x := 2 * c * bigL / eta
		return (bigL*bigL/(c*c))*((eta/(bigL*c*(1-c*c)))*(1/math.Sin(x)-1/math.Tan(x))-1) - 2*bigHf/bigSigma
	}

	c, err := rootNear(f, c0)
	if err != nil {
		return 0, err
	}
	return c * shearSpeed, nil
}

// rootNear finds a root of f in (0,1) near the guess c0. It samples the
// interval on a grid centered on the guess, looks for sign changes, and
// bisects each candidate bracket; brackets that straddle a pole of f (where
// bisection converges but the residual stays large) are rejected.
func rootNear(f func(float64) float64, c0 float64) (float64, error) {
	const (
		lo   = 1e-3
		hi   = 1 - 1e-3
		grid = 0.01
	)
	pts := []float64{c0}
	for d := grid; ; d += grid {
		added := false
		if c0+d < hi {
			pts = append(pts, c0+d)
			added = true
		}
		if c0-d > lo {
			pts = append(pts, c0-d)
			added = true
		}
		if !added {
			break
		}
	}
	sort.Float64s(pts)

	havePrev := false
	var prevX, prevF float64
	for _, p := range pts {
		fp := f(p)
		if math.IsNaN(fp) || math.IsInf(fp, 0) {
			havePrev = false
			continue
		}
		if havePrev && fp*prevF < 0 {
			a, b, fa := prevX, p, prevF
			for i := 0; i < 200; i++ {
				m := 0.5 * (a + b)
				fm := f(m)
				if fa*fm <= 0 {
					b = m
				} else {
					a, fa = m, fm
				}
			}
			m := 0.5 * (a + b)
			if math.Abs(f(m)) < 1e-6 {
				return m, nil
			}
		}
		prevX, prevF = p, fp
		havePrev = true
	}
	return 0, ErrNoRoot
}
