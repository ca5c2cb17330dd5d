// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package membrane

import "github.com/emer/neurosim/kinetics"

// CS is the Connor-Stevens membrane patch: the Hodgkin-Huxley channels,
// with Connor-Stevens rate constants, plus a transient A-type potassium
// current gA = Gbar.A a^3 b.  The a and b gates relax toward their
// steady states with time constants in units of integration steps:
//
//	a[t] = a[t-1] + (aInf[t-1] - a[t-1]) / tauA[t-1]
//
// where aInf and tauA at t-1 are computed from V[t-1].
type CS struct {
	HH
}

// NewCS returns a Connor-Stevens model with default parameters
func NewCS() *CS {
	cs := &CS{}
	cs.Prms.CSDefaults()
	return cs
}

func (cs *CS) Type() ModelTypes { return CSModel }

func (cs *CS) NewState(n int) *State {
	st := cs.HH.NewState(n)
	st.Type = CSModel
	st.AllocATrans()
	return st
}

func (cs *CS) InitState(st *State) {
	pr := &cs.Prms
	cs.InitGates(st)
	st.A[0] = pr.Init.A
	st.B[0] = pr.Init.B
	cs.Conductances(st, 0)
	cs.AConductance(st, 0)
	imem := cs.ACurrents(st, 0, pr.Vinit)
	cs.InitV(st, imem)
	cs.PostStep(st, 0)
}

func (cs *CS) StepKinetics(st *State, t int) {
	cs.HH.StepKinetics(st, t)
	st.A[t] = kinetics.RelaxStep(st.A[t-1], st.AInf[t-1], st.TauA[t-1])
	st.B[t] = kinetics.RelaxStep(st.B[t-1], st.BInf[t-1], st.TauB[t-1])
}

func (cs *CS) AccumCurrents(st *State, t int) float64 {
	cs.Conductances(st, t)
	cs.AConductance(st, t)
	return cs.ACurrents(st, t, st.V[t-1])
}

// PostStep computes the A current steady states and time constants at
// step t from V[t]
func (cs *CS) PostStep(st *State, t int) {
	ap := &cs.Prms.ATrans
	v := st.V[t]
	dt := cs.Prms.Dt
	st.AInf[t] = ap.AInf(v)
	st.BInf[t] = ap.BInf(v)
	st.TauA[t] = ap.TauA(v) / dt
	st.TauB[t] = ap.TauB(v) / dt
}

// AConductance computes gA at step t from the a, b gates at t
func (cs *CS) AConductance(st *State, t int) {
	a := st.A[t]
	st.GA[t] = cs.Prms.Gbar.A * a * a * a * st.B[t]
}

// ACurrents computes all the currents at step t with potential v,
// including IA, and returns the total
func (cs *CS) ACurrents(st *State, t int, v float64) float64 {
	cur := cs.Currents(st, t, v)
	df := cs.Prms.Driving(v)
	cur.A = st.GA[t] * df.A
	st.IA[t] = cur.A
	return cur.Sum()
}
