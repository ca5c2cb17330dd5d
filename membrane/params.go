// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package membrane

import (
	"fmt"

	"github.com/emer/neurosim/chans"
	"github.com/emer/neurosim/kinetics"
)

// InitParams are the gating variable values at t = 0, normally the
// steady state at the resting potential
type InitParams struct {
	M float64 `desc:"sodium activation"`
	H float64 `desc:"sodium inactivation"`
	N float64 `desc:"potassium activation"`
	A float64 `desc:"A current activation -- Connor-Stevens only"`
	B float64 `desc:"A current inactivation -- Connor-Stevens only"`
}

// Params are all the parameters of a single-compartment membrane patch,
// in SI units per cm^2 of membrane: S / cm^2, F / cm^2, A / cm^2, volts, seconds.
type Params struct {
	Gbar     chans.Chans           `view:"inline" desc:"maximal conductances, S / cm^2"`
	Erev     chans.Chans           `view:"inline" desc:"reversal potentials, volts"`
	C        float64               `def:"1e-6" desc:"membrane capacitance, F / cm^2"`
	Dt       float64               `def:"1e-5" desc:"integration time step, in seconds.  Explicit Euler: with these kinetics steps much above 1e-5 are unstable, and values diverge to NaN / Inf without any error"`
	Vr       float64               `desc:"resting potential, volts"`
	Vinit    float64               `desc:"membrane potential at which the t = 0 channel currents are evaluated -- normally Vr"`
	ThrDelta float64               `def:"0.015" desc:"firing threshold relative to Vr, volts"`
	Init     InitParams            `view:"inline" desc:"gating variable values at t = 0"`
	Rates    kinetics.RateParams   `view:"no-inline" desc:"rate constants of the m, h, n gates"`
	ATrans   kinetics.ATransParams `view:"no-inline" desc:"steady states and time constants of the A current gates -- Connor-Stevens only"`
}

// Defaults sets the Hodgkin-Huxley parameters
func (pr *Params) Defaults() {
	pr.HHDefaults()
}

// HHDefaults sets the Hodgkin-Huxley parameters, for a patch resting at -60 mV
func (pr *Params) HHDefaults() {
	pr.Gbar.SetAll(120e-3, 36e-3, 0.3e-3, 0)
	pr.Erev.SetAll(52.4e-3, -72.1e-3, -49.2e-3, 0)
	pr.C = 1e-6
	pr.Dt = 1e-5
	pr.Vr = -60e-3
	pr.Vinit = pr.Vr
	pr.ThrDelta = 15e-3
	pr.Init = InitParams{M: 0.0393, H: 0.6798, N: 0.2803}
	pr.Rates.HHDefaults()
	pr.ATrans.Defaults()
	pr.Update()
}

// CSDefaults sets the Connor-Stevens parameters, for a patch resting at -68 mV
func (pr *Params) CSDefaults() {
	pr.Gbar.SetAll(120e-3, 20e-3, 0.3e-3, 47.7e-3)
	pr.Erev.SetAll(55e-3, -72e-3, -17e-3, -75e-3)
	pr.C = 1e-6
	pr.Dt = 1e-5
	pr.Vr = -68e-3
	pr.Vinit = pr.Vr
	pr.ThrDelta = 15e-3
	pr.Init = InitParams{M: 0.0100, H: 0.9660, N: 0.1556, A: 0.5403, B: 0.2890}
	pr.Rates.CSDefaults()
	pr.ATrans.Defaults()
	pr.Update()
}

// Update updates computed values, after params have been changed
func (pr *Params) Update() {
	pr.Rates.Update()
}

// Thr returns the firing threshold, Vr + ThrDelta
func (pr *Params) Thr() float64 {
	return pr.Vr + pr.ThrDelta
}

// DtC returns dt / C, the factor converting net current into a voltage step
func (pr *Params) DtC() float64 {
	return pr.Dt / pr.C
}

// Driving returns the driving force v - Erev for every channel
func (pr *Params) Driving(v float64) chans.Chans {
	var df chans.Chans
	df.SetFmMinusOther(v, pr.Erev)
	return df
}

// Validate returns ErrBadParams if the step or capacitance cannot be used
func (pr *Params) Validate() error {
	if !(pr.Dt > 0) {
		return fmt.Errorf("%w: Dt = %g", ErrBadParams, pr.Dt)
	}
	if !(pr.C > 0) {
		return fmt.Errorf("%w: C = %g", ErrBadParams, pr.C)
	}
	return nil
}
