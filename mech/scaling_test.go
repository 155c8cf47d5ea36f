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

package mech_test

import (
	"testing"

	"github.com/gonum/floats"

	"github.com/bbergfeld/snow-models/mech"
)

func TestScaledAnchorsMeasurement(t *testing.T) {
	const tol = 1e-12
	m := mech.Measurement{E: 5e6, Rho: 200}
	s := mech.Scaled(mech.Gerling2017AC, m)
	if got := s(m.Rho); !floats.EqualWithinAbsOrRel(got, m.E, tol, tol) {
		t.Errorf("scaled parametrization at the anchor density gives %g Pa; want %g Pa", got, m.E)
	}
	// Scaling preserves the shape of the regression.
	wantRatio := mech.Gerling2017AC(300) / mech.Gerling2017AC(200)
	if gotRatio := s(300) / s(200); !floats.EqualWithinAbsOrRel(gotRatio, wantRatio, tol, tol) {
		t.Errorf("scaled shape ratio %g should equal the unscaled ratio %g", gotRatio, wantRatio)
	}
}

func TestCalibratePowerLaw(t *testing.T) {
	const (
		coeff = 0.93
		exp   = 2.8
		tol   = 1e-8
	)
	gen := mech.PowerLaw(coeff, exp)
	var ms []mech.Measurement
	for _, rho := range []float64{150, 200, 250, 300, 400} {
		ms = append(ms, mech.Measurement{E: gen(rho), Rho: rho})
	}
	gotCoeff, gotExp, err := mech.CalibratePowerLaw(ms)
	if err != nil {
		t.Fatal(err)
	}
	if !floats.EqualWithinAbsOrRel(gotCoeff, coeff, tol, tol) {
		t.Errorf("calibrated coefficient %g; want %g", gotCoeff, coeff)
	}
	if !floats.EqualWithinAbsOrRel(gotExp, exp, tol, tol) {
		t.Errorf("calibrated exponent %g; want %g", gotExp, exp)
	}
}

func TestCalibratePowerLawErrors(t *testing.T) {
	if _, _, err := mech.CalibratePowerLaw([]mech.Measurement{{E: 1e6, Rho: 200}}); err == nil {
		t.Error("a single measurement should cause an error")
	}
	ms := []mech.Measurement{{E: 1e6, Rho: 200}, {E: -2, Rho: 300}}
	if _, _, err := mech.CalibratePowerLaw(ms); err == nil {
		t.Error("a non-positive measurement should cause an error")
	}
}
