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

// Package mech provides published parametrizations of snow mechanical
// parameters as functions of density. Each parametrization is a regression
// against a specific measurement technique, so the estimates for a given
// density can differ by more than an order of magnitude between publications.
//
// Density inputs are in kg m-3. The per-publication functions return Pa;
// ElasticModulus converts the whole set to a requested unit. Inputs are not
// range-checked: densities outside the regressions' validated ranges (and
// non-physical values) propagate through the arithmetic.
package mech

import (
	"fmt"
	"math"
)

// Unit is an output unit for elastic moduli.
type Unit string

// Supported output units.
const (
	Pa  Unit = "Pa"
	KPa Unit = "kPa"
	MPa Unit = "MPa"
	GPa Unit = "GPa"
)

// fromPascals gives the factor converting Pa to u.
func (u Unit) fromPascals() (float64, error) {
	switch u {
	case Pa:
		return 1, nil
	case KPa:
		return 1e-3, nil
	case MPa:
		return 1e-6, nil
	case GPa:
		return 1e-9, nil
	default:
		return 0, fmt.Errorf("mech: unsupported elastic modulus unit %q (must be Pa, kPa, MPa, or GPa)", string(u))
	}
}

// ElasticModuli holds one elastic modulus estimate per published
// parametrization, all expressed in Unit.
type ElasticModuli struct {
	Gerling2017AC    float64
	Gerling2017CT    float64
	Bergfeld2023     float64
	VanHerwijnen2016 float64
	Scapozza2004     float64
	Sigrist2006      float64

	Unit Unit
}

// ElasticModulus evaluates all parametrizations at density rho [kg m-3] and
// converts the results to unit u. It fails if u is not a supported unit.
func ElasticModulus(rho float64, u Unit) (ElasticModuli, error) {
	f, err := u.fromPascals()
	if err != nil {
		return ElasticModuli{}, err
	}
	return ElasticModuli{
		Gerling2017AC:    Gerling2017AC(rho) * f,
		Gerling2017CT:    Gerling2017CT(rho) * f,
		Bergfeld2023:     Bergfeld2023(rho) * f,
		VanHerwijnen2016: VanHerwijnen2016(rho) * f,
		Scapozza2004:     Scapozza2004(rho) * f,
		Sigrist2006:      Sigrist2006(rho) * f,
		Unit:             u,
	}, nil
}

// ScaledElasticModulus is like ElasticModulus but anchors each
// parametrization through the measured datum m before converting, preserving
// each regression's shape while matching the measurement (see Scaled).
func ScaledElasticModulus(rho float64, u Unit, m Measurement) (ElasticModuli, error) {
	f, err := u.fromPascals()
	if err != nil {
		return ElasticModuli{}, err
	}
	return ElasticModuli{
		Gerling2017AC:    Scaled(Gerling2017AC, m)(rho) * f,
		Gerling2017CT:    Scaled(Gerling2017CT, m)(rho) * f,
		Bergfeld2023:     Scaled(Bergfeld2023, m)(rho) * f,
		VanHerwijnen2016: Scaled(VanHerwijnen2016, m)(rho) * f,
		Scapozza2004:     Scaled(Scapozza2004, m)(rho) * f,
		Sigrist2006:      Scaled(Sigrist2006, m)(rho) * f,
		Unit:             u,
	}, nil
}

// Gerling2017AC estimates the elastic modulus [Pa] at density rho [kg m-3]
// from the acoustic-sensor based parametrization of Gerling, Löwe and
// van Herwijnen (2017), doi:10.1002/2017GL075110, equation 6 (first line).
func Gerling2017AC(rho float64) float64 {
	return 6e-10 * math.Pow(rho, 4.6) * 1e6
}

// Gerling2017CT estimates the elastic modulus [Pa] at density rho [kg m-3]
// from the micro-computed-tomography based parametrization of Gerling, Löwe
// and van Herwijnen (2017), doi:10.1002/2017GL075110, equation 6 (second
// line).
func Gerling2017CT(rho float64) float64 {
	return 2e-8 * math.Pow(rho, 3.98) * 1e6
}

// Bergfeld2023 estimates the elastic modulus [Pa] at density rho [kg m-3]
// from Bergfeld et al. (2023), doi:10.5194/nhess-23-293-2023, equation 4 and
// appendix B. The regression is relative to the density of ice (918 kg m-3).
func Bergfeld2023(rho float64) float64 {
	return 6.5e3 * math.Pow(rho/918, 4.4) * 1e6
}

// VanHerwijnen2016 estimates the elastic modulus [Pa] at density rho
// [kg m-3] from van Herwijnen et al. (2016), doi:10.1017/jog.2016.90,
// equation 8. The parametrization is based on particle-tracking measurements
// of beam bending during the sawing phase of propagation saw tests.
func VanHerwijnen2016(rho float64) float64 {
	return 0.93 * math.Pow(rho, 2.8)
}

// Scapozza2004 estimates the elastic modulus [Pa] at density rho [kg m-3]
// from the exponential fit of Scapozza (2004).
func Scapozza2004(rho float64) float64 {
	return 0.1873 * math.Exp(0.0149*rho) * 1e6
}

// Sigrist2006 estimates the elastic modulus [Pa] at density rho [kg m-3]
// from the power-law fit of Sigrist (2006).
func Sigrist2006(rho float64) float64 {
	return 1.89e-6 * math.Pow(rho, 2.94) * 1e6
}
