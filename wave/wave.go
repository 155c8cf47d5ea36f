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

// Package wave provides theoretical estimates of elastic wave speeds in
// snow slabs from standard continuum-mechanics relations.
//
// Moduli are in Pa, densities in kg m-3, speeds in m s-1. Inputs are not
// range-checked; non-physical values propagate through the arithmetic.
package wave

import (
	"math"

	"github.com/bbergfeld/snow-models/uncert"
)

// ShearWaveSpeed computes the shear (S) wave speed from the shear modulus g
// and the density rho.
func ShearWaveSpeed(g, rho float64) float64 {
	return math.Sqrt(g / rho)
}

// LongitudinalWaveSpeed computes the longitudinal (P) wave speed of a thin
// rod from the elastic modulus e and the density rho.
func LongitudinalWaveSpeed(e, rho float64) float64 {
	return math.Sqrt(e / rho)
}

// RayleighWaveSpeed computes the Rayleigh surface wave speed from the shear
// modulus g, the density rho and the Poisson ratio nu, using the Bergmann
// approximation.
func RayleighWaveSpeed(g, rho, nu float64) float64 {
	x := math.Sqrt((0.87 + 1.12*nu) / (1 + nu))
	return x * ShearWaveSpeed(g, rho)
}

// ShearModulus converts the elastic (Young's) modulus e to the shear modulus
// of an isotropic material with Poisson ratio nu.
func ShearModulus(e, nu float64) float64 {
	return e / (2 * (1 + nu))
}

// PWaveModulus converts the elastic (Young's) modulus e to the P-wave
// (constrained) modulus of an isotropic material with Poisson ratio nu.
func PWaveModulus(e, nu float64) float64 {
	return e * (1 - nu) / ((1 + nu) * (1 - 2*nu))
}

// ShearWaveSpeedUncert is ShearWaveSpeed with first-order propagation of the
// argument uncertainties.
func ShearWaveSpeedUncert(g, rho uncert.Value) uncert.Value {
	return uncert.Wrap(func(x []float64) float64 {
		return ShearWaveSpeed(x[0], x[1])
	})(g, rho)
}

// LongitudinalWaveSpeedUncert is LongitudinalWaveSpeed with first-order
// propagation of the argument uncertainties.
func LongitudinalWaveSpeedUncert(e, rho uncert.Value) uncert.Value {
	return uncert.Wrap(func(x []float64) float64 {
		return LongitudinalWaveSpeed(x[0], x[1])
	})(e, rho)
}
