// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package kinetics

import "math"

// GateParams are the opening and closing rate functions of one gating variable
type GateParams struct {
	Alpha RateFunc `view:"inline" desc:"opening rate"`
	Beta  RateFunc `view:"inline" desc:"closing rate"`
}

// Rates are the six rate constants of the m, h, n gates, in 1/sec
type Rates struct {
	AlphaM, AlphaH, AlphaN float64
	BetaM, BetaH, BetaN    float64
}

// RateParams are the voltage-dependent rate functions for the sodium
// activation (m), sodium inactivation (h) and potassium activation (n) gates.
type RateParams struct {
	M        GateParams `view:"inline" desc:"sodium activation gate"`
	H        GateParams `view:"inline" desc:"sodium inactivation gate"`
	N        GateParams `view:"inline" desc:"potassium activation gate"`
	VScale   float64    `def:"1000" desc:"multiplier converting volts into the millivolt units of the rate functions"`
	Mul      float64    `def:"1000" desc:"multiplier converting rates from 1/msec into 1/sec"`
	RelRest  bool       `desc:"if true, rate functions take the depolarization relative to resting potential (v - vr), otherwise the absolute membrane potential"`
	Temp     float64    `def:"6.3" desc:"temperature, in degrees Celsius"`
	TempRef  float64    `def:"6.3" desc:"reference temperature at which the rate functions were measured"`
	Q10      float64    `def:"3" desc:"rate multiplier per 10 degrees above TempRef"`
	TempFact float64    `inactive:"+" view:"-" json:"-" xml:"-" desc:"Q10^((Temp - TempRef) / 10), computed in Update"`
}

// Defaults sets the Hodgkin-Huxley squid axon rates
func (rp *RateParams) Defaults() {
	rp.HHDefaults()
}

// HHDefaults sets the Hodgkin-Huxley rates, as functions of the
// depolarization relative to rest, in mV.
func (rp *RateParams) HHDefaults() {
	rp.M.Alpha.Set(Linoid, 0.1, 25, 10)
	rp.M.Beta.Set(Exp, 4, 0, 18)
	rp.H.Alpha.Set(Exp, 0.07, 0, 20)
	rp.H.Beta.Set(Sigmoid, 1, 30, 10)
	rp.N.Alpha.Set(Linoid, 0.01, 10, 10)
	rp.N.Beta.Set(Exp, 0.125, 0, 80)
	rp.VScale = 1000
	rp.Mul = 1000
	rp.RelRest = true
	rp.tempDefaults()
	rp.Update()
}

// CSDefaults sets the Connor-Stevens rates, as functions of
// the absolute membrane potential, in mV.
func (rp *RateParams) CSDefaults() {
	rp.M.Alpha.Set(Linoid, 0.38, -29.7, 10)
	rp.M.Beta.Set(Exp, 15.2, -54.7, 18)
	rp.H.Alpha.Set(Exp, 0.266, -48, 20)
	rp.H.Beta.Set(Sigmoid, 3.8, -18, 10)
	rp.N.Alpha.Set(Linoid, 0.02, -45.7, 10)
	rp.N.Beta.Set(Exp, 0.25, -55.7, 80)
	rp.VScale = 1000
	rp.Mul = 1000
	rp.RelRest = false
	rp.tempDefaults()
	rp.Update()
}

func (rp *RateParams) tempDefaults() {
	rp.Temp = 6.3
	rp.TempRef = 6.3
	rp.Q10 = 3
}

// Update must be called after changing Temp, TempRef or Q10
func (rp *RateParams) Update() {
	rp.TempFact = math.Pow(rp.Q10, (rp.Temp-rp.TempRef)/10)
}

// Dv returns the argument of the rate functions, in mV, for
// membrane potential v and resting potential vr, in volts.
func (rp *RateParams) Dv(v, vr float64) float64 {
	if rp.RelRest {
		return (v - vr) * rp.VScale
	}
	return v * rp.VScale
}

// Rates returns all six rate constants (1/sec) at membrane potential v
// with resting potential vr (volts)
func (rp *RateParams) Rates(v, vr float64) Rates {
	dv := rp.Dv(v, vr)
	mul := rp.Mul * rp.TempFact
	return Rates{
		AlphaM: rp.M.Alpha.Rate(dv) * mul,
		AlphaH: rp.H.Alpha.Rate(dv) * mul,
		AlphaN: rp.N.Alpha.Rate(dv) * mul,
		BetaM:  rp.M.Beta.Rate(dv) * mul,
		BetaH:  rp.H.Beta.Rate(dv) * mul,
		BetaN:  rp.N.Beta.Rate(dv) * mul,
	}
}

// Alphas returns the opening rates of m, h, n (1/sec)
func (rp *RateParams) Alphas(v, vr float64) (am, ah, an float64) {
	r := rp.Rates(v, vr)
	return r.AlphaM, r.AlphaH, r.AlphaN
}

// Betas returns the closing rates of m, h, n (1/sec)
func (rp *RateParams) Betas(v, vr float64) (bm, bh, bn float64) {
	r := rp.Rates(v, vr)
	return r.BetaM, r.BetaH, r.BetaN
}

// SteadyState returns the steady-state values of m, h, n at membrane potential v
func (rp *RateParams) SteadyState(v, vr float64) (m, h, n float64) {
	r := rp.Rates(v, vr)
	return Steady(r.AlphaM, r.BetaM), Steady(r.AlphaH, r.BetaH), Steady(r.AlphaN, r.BetaN)
}
