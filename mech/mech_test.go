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
	"strings"
	"testing"

	"github.com/gonum/floats"

	"github.com/bbergfeld/snow-models/mech"
)

var parametrizations = []struct {
	name string
	f    func(float64) float64
}{
	{"Gerling2017AC", mech.Gerling2017AC},
	{"Gerling2017CT", mech.Gerling2017CT},
	{"Bergfeld2023", mech.Bergfeld2023},
	{"VanHerwijnen2016", mech.VanHerwijnen2016},
	{"Scapozza2004", mech.Scapozza2004},
	{"Sigrist2006", mech.Sigrist2006},
}

func TestParametrizationValues(t *testing.T) {
	const (
		rho = 250.
		tol = 1e-9
	)
	want := map[string]float64{
		"Gerling2017AC":    64368781.83434271,
		"Gerling2017CT":    69957008.54280087,
		"Bergfeld2023":     21249151.724943377,
		"VanHerwijnen2016": 4816315.993947164,
		"Scapozza2004":     7767561.8931068005,
		"Sigrist2006":      21203396.25643187,
	}
	for _, p := range parametrizations {
		if got := p.f(rho); !floats.EqualWithinAbsOrRel(got, want[p.name], tol, tol) {
			t.Errorf("%s(%g) = %g Pa; want %g Pa", p.name, rho, got, want[p.name])
		}
	}
}

func TestParametrizationsMonotonic(t *testing.T) {
	// All regressions increase with density over their validated ranges.
	for _, p := range parametrizations {
		prev := p.f(100)
		for rho := 105.; rho <= 500; rho += 5 {
			cur := p.f(rho)
			if cur <= prev {
				t.Errorf("%s not monotonic: f(%g) = %g <= f(%g) = %g", p.name, rho, cur, rho-5, prev)
			}
			prev = cur
		}
	}
}

func TestElasticModulusUnits(t *testing.T) {
	const (
		rho = 300.
		tol = 1e-12
	)
	pa, err := mech.ElasticModulus(rho, mech.Pa)
	if err != nil {
		t.Fatal(err)
	}
	if pa.Unit != mech.Pa {
		t.Errorf("bundle unit %q should be %q", pa.Unit, mech.Pa)
	}
	for _, c := range []struct {
		unit   mech.Unit
		factor float64
	}{
		{mech.KPa, 1e3},
		{mech.MPa, 1e6},
		{mech.GPa, 1e9},
	} {
		em, err := mech.ElasticModulus(rho, c.unit)
		if err != nil {
			t.Fatal(err)
		}
		pairs := [][2]float64{
			{pa.Gerling2017AC, em.Gerling2017AC},
			{pa.Gerling2017CT, em.Gerling2017CT},
			{pa.Bergfeld2023, em.Bergfeld2023},
			{pa.VanHerwijnen2016, em.VanHerwijnen2016},
			{pa.Scapozza2004, em.Scapozza2004},
			{pa.Sigrist2006, em.Sigrist2006},
		}
		for i, pair := range pairs {
			if !floats.EqualWithinAbsOrRel(pair[0], pair[1]*c.factor, tol, tol) {
				t.Errorf("%s field %d: %g Pa should equal %g %s × %g", c.unit, i, pair[0], pair[1], c.unit, c.factor)
			}
		}
	}
}

func TestElasticModulusInvalidUnit(t *testing.T) {
	_, err := mech.ElasticModulus(250, "bar")
	if err == nil {
		t.Fatal("an unsupported unit should cause an error")
	}
	if !strings.Contains(err.Error(), "bar") {
		t.Errorf("error %q should name the unsupported unit", err)
	}
	if _, err := mech.ScaledElasticModulus(250, "bar", mech.Measurement{E: 1e6, Rho: 200}); err == nil {
		t.Error("an unsupported unit should cause an error when scaling")
	}
}
