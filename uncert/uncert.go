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

// Package uncert propagates measurement uncertainty through scalar
// computations using first-order (Gaussian) error propagation. A Value pairs
// a nominal value with a standard deviation; arithmetic on Values with zero
// standard deviation reproduces plain float64 arithmetic exactly.
//
// Operands are assumed to be independent: correlations between input
// uncertainties are not tracked.
package uncert

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/diff/fd"
)

// Value is a scalar with an associated standard deviation.
type Value struct {
	V float64 // nominal value
	S float64 // standard deviation
}

// New returns a Value with nominal value v and standard deviation s.
func New(v, s float64) Value { return Value{V: v, S: math.Abs(s)} }

// Exact returns a Value with zero uncertainty.
func Exact(v float64) Value { return Value{V: v} }

func (a Value) String() string { return fmt.Sprintf("%g ± %g", a.V, a.S) }

// Add returns a + b.
func (a Value) Add(b Value) Value {
	return Value{V: a.V + b.V, S: math.Hypot(a.S, b.S)}
}

// Sub returns a - b.
func (a Value) Sub(b Value) Value {
	return Value{V: a.V - b.V, S: math.Hypot(a.S, b.S)}
}

// Mul returns a * b.
func (a Value) Mul(b Value) Value {
	return Value{V: a.V * b.V, S: math.Hypot(b.V*a.S, a.V*b.S)}
}

// Div returns a / b.
func (a Value) Div(b Value) Value {
	q := a.V / b.V
	return Value{V: q, S: math.Hypot(a.S/b.V, q*b.S/b.V)}
}

// Pow returns a raised to the (exact) power p.
func (a Value) Pow(p float64) Value {
	return Value{
		V: math.Pow(a.V, p),
		S: math.Abs(p*math.Pow(a.V, p-1)) * a.S,
	}
}

// Sqrt returns the square root of a.
func (a Value) Sqrt() Value {
	v := math.Sqrt(a.V)
	return Value{V: v, S: a.S / (2 * v)}
}

// Wrap lifts a plain float64 function to a function of uncertain Values.
// The nominal result equals f evaluated at the nominal arguments; the
// standard deviation is the root sum of squares of the partial derivatives
// (estimated by central finite differences) times the argument standard
// deviations. Arguments with zero standard deviation contribute nothing and
// cost no derivative evaluation.
func Wrap(f func(x []float64) float64) func(args ...Value) Value {
	return func(args ...Value) Value {
		x := make([]float64, len(args))
		for i, a := range args {
			x[i] = a.V
		}
		v := f(x)
		var variance float64
		for i, a := range args {
			if a.S == 0 {
				continue
			}
			i := i
			deriv := fd.Derivative(func(xi float64) float64 {
				y := make([]float64, len(x))
				copy(y, x)
				y[i] = xi
				return f(y)
			}, x[i], &fd.Settings{Formula: fd.Central, Step: step(x[i])})
			variance += deriv * deriv * a.S * a.S
		}
		return Value{V: v, S: math.Sqrt(variance)}
	}
}

// step scales the finite-difference step to the magnitude of x. The constant
// is the cube root of the float64 machine epsilon, the usual optimum for
// central differences.
func step(x float64) float64 {
	const h = 6.06e-6
	if x == 0 {
		return h
	}
	return h * math.Abs(x)
}
