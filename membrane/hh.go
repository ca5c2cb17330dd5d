// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package membrane

import (
	"github.com/emer/neurosim/chans"
	"github.com/emer/neurosim/kinetics"
)

// HH is the Hodgkin-Huxley membrane patch, with sodium, delayed-rectifier
// potassium and leak channels:
//
//	gNa = Gbar.Na m^3 h
//	gK  = Gbar.K n^4
//	gL  = Gbar.L
type HH struct {
	Prms Params `desc:"parameters"`
}

// NewHH returns a Hodgkin-Huxley model with default parameters
func NewHH() *HH {
	hh := &HH{}
	hh.Prms.HHDefaults()
	return hh
}

func (hh *HH) Type() ModelTypes { return HHModel }
func (hh *HH) Params() *Params  { return &hh.Prms }

func (hh *HH) NewState(n int) *State {
	st := NewState(n)
	st.Type = HHModel
	return st
}

func (hh *HH) InitState(st *State) {
	pr := &hh.Prms
	hh.InitGates(st)
	hh.Conductances(st, 0)
	cur := hh.Currents(st, 0, pr.Vinit)
	hh.InitV(st, cur.Sum())
}

// InitGates sets the m, h, n seeds at t = 0
func (hh *HH) InitGates(st *State) {
	pr := &hh.Prms
	st.M[0] = pr.Init.M
	st.H[0] = pr.Init.H
	st.N[0] = pr.Init.N
}

// InitV sets the total current and membrane potential at t = 0:
// one Euler step from Vr driven by the stimulus and the t = 0 current
func (hh *HH) InitV(st *State, imem float64) {
	pr := &hh.Prms
	st.IMem[0] = imem
	st.V[0] = pr.Vr + pr.DtC()*(st.IStim[0]-imem)
}

func (hh *HH) StepKinetics(st *State, t int) {
	pr := &hh.Prms
	r := pr.Rates.Rates(st.V[t-1], pr.Vr)
	st.M[t] = kinetics.GateStep(st.M[t-1], r.AlphaM, r.BetaM, pr.Dt)
	st.H[t] = kinetics.GateStep(st.H[t-1], r.AlphaH, r.BetaH, pr.Dt)
	st.N[t] = kinetics.GateStep(st.N[t-1], r.AlphaN, r.BetaN, pr.Dt)
}

func (hh *HH) AccumCurrents(st *State, t int) float64 {
	hh.Conductances(st, t)
	cur := hh.Currents(st, t, st.V[t-1])
	return cur.Sum()
}

// Conductances computes gNa, gK, gL at step t from the gates at t
func (hh *HH) Conductances(st *State, t int) {
	pr := &hh.Prms
	m := st.M[t]
	n := st.N[t]
	n2 := n * n
	st.GNa[t] = pr.Gbar.Na * m * m * m * st.H[t]
	st.GK[t] = pr.Gbar.K * n2 * n2
	st.GL[t] = pr.Gbar.L
}

// Currents computes INa, IK, IL at step t with potential v, and returns
// them as channel values, with A = 0
func (hh *HH) Currents(st *State, t int, v float64) chans.Chans {
	g := chans.Chans{Na: st.GNa[t], K: st.GK[t], L: st.GL[t]}
	var cur chans.Chans
	cur.SetMul(g, hh.Prms.Driving(v))
	st.INa[t] = cur.Na
	st.IK[t] = cur.K
	st.IL[t] = cur.L
	return cur
}
