// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package kinetics

import "math"

// ATransParams are the steady-state and time-constant functions for the
// activation (a) and inactivation (b) gates of the transient A-type
// potassium current of the Connor-Stevens model.  All functions take the
// absolute membrane potential in volts, and time constants are in seconds.
type ATransParams struct {
	ACoef   float64 `def:"0.0761" desc:"amplitude of a steady-state numerator"`
	AVh     float64 `def:"-94.22" desc:"a steady-state numerator shift, mV"`
	AK      float64 `def:"31.84" desc:"a steady-state numerator slope, mV"`
	AVhD    float64 `def:"-1.17" desc:"a steady-state denominator shift, mV"`
	AKD     float64 `def:"28.93" desc:"a steady-state denominator slope, mV"`
	TauA0   float64 `def:"0.3632" desc:"minimum a time constant, msec"`
	TauA1   float64 `def:"1.158" desc:"voltage-dependent a time constant amplitude, msec"`
	TauAVh  float64 `def:"-55.96" desc:"a time constant shift, mV"`
	TauAK   float64 `def:"20.12" desc:"a time constant slope, mV"`
	BVh     float64 `def:"-53.3" desc:"b steady-state shift, mV"`
	BK      float64 `def:"14.54" desc:"b steady-state slope, mV"`
	TauB0   float64 `def:"1.24" desc:"minimum b time constant, msec"`
	TauB1   float64 `def:"2.678" desc:"voltage-dependent b time constant amplitude, msec"`
	TauBVh  float64 `def:"-50" desc:"b time constant shift, mV"`
	TauBK   float64 `def:"16.027" desc:"b time constant slope, mV"`
	VScale  float64 `def:"1000" desc:"multiplier converting volts into mV"`
	TauMult float64 `def:"0.001" desc:"multiplier converting msec time constants into seconds"`
}

func (ap *ATransParams) Defaults() {
	ap.ACoef = 0.0761
	ap.AVh = -94.22
	ap.AK = 31.84
	ap.AVhD = -1.17
	ap.AKD = 28.93
	ap.TauA0 = 0.3632
	ap.TauA1 = 1.158
	ap.TauAVh = -55.96
	ap.TauAK = 20.12
	ap.BVh = -53.3
	ap.BK = 14.54
	ap.TauB0 = 1.24
	ap.TauB1 = 2.678
	ap.TauBVh = -50
	ap.TauBK = 16.027
	ap.VScale = 1000
	ap.TauMult = 0.001
}

// AInf returns the steady-state activation of the A current
func (ap *ATransParams) AInf(v float64) float64 {
	vm := v * ap.VScale
	return math.Cbrt(ap.ACoef * math.Exp((vm-ap.AVh)/ap.AK) / (1 + math.Exp((vm-ap.AVhD)/ap.AKD)))
}

// TauA returns the activation time constant of the A current, in seconds
func (ap *ATransParams) TauA(v float64) float64 {
	vm := v * ap.VScale
	return (ap.TauA0 + ap.TauA1/(1+math.Exp((vm-ap.TauAVh)/ap.TauAK))) * ap.TauMult
}

// BInf returns the steady-state inactivation of the A current
func (ap *ATransParams) BInf(v float64) float64 {
	vm := v * ap.VScale
	b := 1 / (1 + math.Exp((vm-ap.BVh)/ap.BK))
	b2 := b * b
	return b2 * b2
}

// TauB returns the inactivation time constant of the A current, in seconds
func (ap *ATransParams) TauB(v float64) float64 {
	vm := v * ap.VScale
	return (ap.TauB0 + ap.TauB1/(1+math.Exp((vm-ap.TauBVh)/ap.TauBK))) * ap.TauMult
}
