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

// Package snowmodels provides closed-form parametrizations used in snow and
// avalanche research: elastic modulus estimators from snow density (package
// mech), crack-propagation wave speeds in collapsing weak layers (package
// crack), and elastic wave speeds for different wave types (package wave).
//
// Every model is a pure function of caller-supplied scalars; there is no
// shared state and all functions are safe for concurrent use. Package uncert
// propagates measurement uncertainty through any of the models.
package snowmodels

import "github.com/ctessum/unit"

// Version gives the version number of this version of snow-models.
const Version = "0.1.0"

// Gravity is the standard acceleration of gravity [m s-2].
const Gravity = 9.80665

var (
	pressureDims = unit.Dimensions{unit.MassDim: 1, unit.LengthDim: -1, unit.TimeDim: -2}
	speedDims    = unit.Dimensions{unit.LengthDim: 1, unit.TimeDim: -1}
	densityDims  = unit.Dimensions{unit.MassDim: 1, unit.LengthDim: -3}
	lengthDims   = unit.Dimensions{unit.LengthDim: 1}
)

// Pascals returns a dimensioned pressure or elastic modulus [Pa].
func Pascals(v float64) *unit.Unit { return unit.New(v, pressureDims) }

// MetersPerSecond returns a dimensioned speed [m s-1].
func MetersPerSecond(v float64) *unit.Unit { return unit.New(v, speedDims) }

// Density returns a dimensioned mass density [kg m-3].
func Density(v float64) *unit.Unit { return unit.New(v, densityDims) }

// Meters returns a dimensioned length [m].
func Meters(v float64) *unit.Unit { return unit.New(v, lengthDims) }
