// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package kinetics provides the voltage-dependent rate constants that govern
the gating variables of conductance-based channel models, in the
standard two-state (closed <-> open) formulation:

	dx/dt = alpha(V) (1 - x) - beta(V) x

Each opening (alpha) or closing (beta) rate is one of three generalized
forms of the depolarization dv, in millivolts:

	Exp:     A exp((Vh - dv) / K)
	Sigmoid: A / (exp((Vh - dv) / K) + 1)
	Linoid:  A (Vh - dv) / (exp((Vh - dv) / K) - 1)

The Linoid form is 0/0 at dv = Vh.  It is evaluated through ExpRel, which
returns the limiting value there instead of NaN.

RateParams holds the six rate functions for the m, h, n gates of the
sodium and delayed-rectifier potassium channels, with Hodgkin-Huxley and
Connor-Stevens parametrizations.  ATransParams has the steady-state and
time-constant functions of the a, b gates of the transient A-type
potassium current.
*/
package kinetics

import (
	"math"

	"github.com/goki/ki/kit"
)

// expRelSmall is the |x| below which ExpRel uses its series expansion
const expRelSmall = 1.0e-6

// ExpRel computes x / (exp(x) - 1), returning 1 in the limit x -> 0.
// Close to 0 a second order series is used.
func ExpRel(x float64) float64 {
	if math.Abs(x) < expRelSmall {
		return 1 - x/2 + x*x/12
	}
	return x / math.Expm1(x)
}

// Forms are the functional forms of a rate constant as a function of depolarization
type Forms int32

//go:generate stringer -type=Forms

var KiT_Forms = kit.Enums.AddEnum(FormsN, kit.NotBitFlag, nil)

func (ev Forms) MarshalJSON() ([]byte, error)  { return kit.EnumMarshalJSON(ev) }
func (ev *Forms) UnmarshalJSON(b []byte) error { return kit.EnumUnmarshalJSON(ev, b) }

const (
	// Exp is A exp((Vh - dv) / K)
	Exp Forms = iota

	// Sigmoid is A / (exp((Vh - dv) / K) + 1)
	Sigmoid

	// Linoid is A (Vh - dv) / (exp((Vh - dv) / K) - 1), with the removable
	// singularity at dv = Vh evaluated as A K
	Linoid

	FormsN
)

// RateFunc is one voltage-dependent rate constant
type RateFunc struct {
	Form Forms   `desc:"functional form of the rate"`
	A    float64 `desc:"amplitude, in 1/msec"`
	Vh   float64 `desc:"half-activation or shift potential, in mV"`
	K    float64 `desc:"slope factor, in mV"`
}

// Set sets all the params
func (rf *RateFunc) Set(form Forms, a, vh, k float64) {
	rf.Form, rf.A, rf.Vh, rf.K = form, a, vh, k
}

// Rate returns the rate constant (1/msec) at depolarization dv (mV)
func (rf *RateFunc) Rate(dv float64) float64 {
	switch rf.Form {
	case Sigmoid:
		return rf.A / (math.Exp((rf.Vh-dv)/rf.K) + 1)
	case Linoid:
		return rf.A * rf.K * ExpRel((rf.Vh-dv)/rf.K)
	default:
		return rf.A * math.Exp((rf.Vh-dv)/rf.K)
	}
}

// GateStep advances gating variable x by one explicit Euler step of dt
// given its opening rate alpha and closing rate beta (1/sec).
// x is not bounded to [0,1].
func GateStep(x, alpha, beta, dt float64) float64 {
	return x + dt*(alpha*(1-x)-beta*x)
}

// RelaxStep moves x toward its steady state xinf with time constant tau,
// where tau is in units of integration steps.
func RelaxStep(x, xinf, tau float64) float64 {
	return x + (xinf-x)/tau
}

// Steady returns the steady-state value alpha / (alpha + beta)
func Steady(alpha, beta float64) float64 {
	return alpha / (alpha + beta)
}

// Tau returns the time constant 1 / (alpha + beta)
func Tau(alpha, beta float64) float64 {
	return 1 / (alpha + beta)
}
