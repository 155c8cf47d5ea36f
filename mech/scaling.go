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

package mech

import (
	"fmt"
	"math"

	"github.com/GaryBoone/GoStats/stats"
)

// Measurement is a measured elastic modulus at a measured density.
type Measurement struct {
	E   float64 // elastic modulus [Pa]
	Rho float64 // density [kg m-3]
}

// Scaled anchors the parametrization f through the measurement m: the
// returned function has the same shape as f (for a power law, the same
// exponent) multiplied by the constant factor that makes it reproduce m
// exactly. This scales a published regression to a site-specific data point.
func Scaled(f func(rho float64) float64, m Measurement) func(rho float64) float64 {
	factor := m.E / f(m.Rho)
	return func(rho float64) float64 { return factor * f(rho) }
}

// PowerLaw returns the parametrization E(rho) = coeff * rho^exp [Pa].
func PowerLaw(coeff, exp float64) func(rho float64) float64 {
	return func(rho float64) float64 { return coeff * math.Pow(rho, exp) }
}

// CalibratePowerLaw fits E(rho) = coeff * rho^exp to the measurements by
// least squares on the log-transformed data. At least two measurements with
// positive modulus and density are required.
func CalibratePowerLaw(ms []Measurement) (coeff, exp float64, err error) {
	if len(ms) < 2 {
		return 0, 0, fmt.Errorf("mech: power-law calibration needs at least 2 measurements; got %d", len(ms))
	}
	x := make([]float64, len(ms))
	y := make([]float64, len(ms))
	for i, m := range ms {
		if m.E <= 0 || m.Rho <= 0 {
			return 0, 0, fmt.Errorf("mech: power-law calibration needs positive measurements; got E=%g, rho=%g", m.E, m.Rho)
		}
		x[i] = math.Log(m.Rho)
		y[i] = math.Log(m.E)
	}
	var slope, intercept float64
	slope, intercept, _, _, _, _ = stats.LinearRegression(x, y)
	return math.Exp(intercept), slope, nil
}
