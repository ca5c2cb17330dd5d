// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package membrane

import "math"

// State holds the full time series of one simulation run: every series has
// one value per time step.  It is allocated and written by Sim.Run, each
// index exactly once in increasing order, and is read-only afterwards.
// Series of channels that a model does not have are nil.
type State struct {

	// model that produced this state
	Type ModelTypes

	// simulated time, in seconds
	Time []float64

	// injected stimulus current, A / cm^2
	IStim []float64

	// membrane potential, volts
	V []float64

	// sodium activation gate
	M []float64

	// sodium inactivation gate
	H []float64

	// potassium activation gate
	N []float64

	// sodium conductance, S / cm^2
	GNa []float64

	// potassium conductance, S / cm^2
	GK []float64

	// leak conductance, S / cm^2 -- constant
	GL []float64

	// sodium current, A / cm^2
	INa []float64

	// potassium current, A / cm^2
	IK []float64

	// leak current, A / cm^2
	IL []float64

	// total ionic membrane current, A / cm^2
	IMem []float64

	// A current activation gate
	A []float64

	// A current inactivation gate
	B []float64

	// steady-state A current activation at the potential of the same step
	AInf []float64

	// steady-state A current inactivation at the potential of the same step
	BInf []float64

	// A activation time constant, in integration steps
	TauA []float64

	// A inactivation time constant, in integration steps
	TauB []float64

	// A current conductance, S / cm^2
	GA []float64

	// transient potassium (A) current, A / cm^2
	IA []float64
}

// Var is one named time series of a State
type Var struct {
	Name string
	Vals []float64
}

// NewState returns a State with the base Hodgkin-Huxley series allocated for n steps
func NewState(n int) *State {
	st := &State{}
	st.Time = make([]float64, n)
	st.IStim = make([]float64, n)
	st.V = make([]float64, n)
	st.M = make([]float64, n)
	st.H = make([]float64, n)
	st.N = make([]float64, n)
	st.GNa = make([]float64, n)
	st.GK = make([]float64, n)
	st.GL = make([]float64, n)
	st.INa = make([]float64, n)
	st.IK = make([]float64, n)
	st.IL = make([]float64, n)
	st.IMem = make([]float64, n)
	return st
}

// AllocATrans adds the A current series to the state, for the same number of steps
func (st *State) AllocATrans() {
	n := st.Len()
	st.A = make([]float64, n)
	st.B = make([]float64, n)
	st.AInf = make([]float64, n)
	st.BInf = make([]float64, n)
	st.TauA = make([]float64, n)
	st.TauB = make([]float64, n)
	st.GA = make([]float64, n)
	st.IA = make([]float64, n)
}

// Len returns the number of time steps
func (st *State) Len() int {
	return len(st.V)
}

// Vars returns all allocated series, in a fixed order
func (st *State) Vars() []Var {
	all := []Var{
		{"Time", st.Time}, {"IStim", st.IStim}, {"V", st.V},
		{"M", st.M}, {"H", st.H}, {"N", st.N},
		{"GNa", st.GNa}, {"GK", st.GK}, {"GL", st.GL},
		{"INa", st.INa}, {"IK", st.IK}, {"IL", st.IL}, {"IMem", st.IMem},
		{"A", st.A}, {"B", st.B}, {"AInf", st.AInf}, {"BInf", st.BInf},
		{"TauA", st.TauA}, {"TauB", st.TauB}, {"GA", st.GA}, {"IA", st.IA},
	}
	vs := all[:0]
	for _, vr := range all {
		if vr.Vals != nil {
			vs = append(vs, vr)
		}
	}
	return vs
}

// VarNames returns the names of all allocated series
func (st *State) VarNames() []string {
	vs := st.Vars()
	nms := make([]string, len(vs))
	for i, vr := range vs {
		nms[i] = vr.Name
	}
	return nms
}

// Series returns the series of given name, nil if not present
func (st *State) Series(name string) []float64 {
	for _, vr := range st.Vars() {
		if vr.Name == name {
			return vr.Vals
		}
	}
	return nil
}

// MemBytes returns the number of bytes held by all series
func (st *State) MemBytes() int {
	nb := 0
	for _, vr := range st.Vars() {
		nb += 8 * len(vr.Vals)
	}
	return nb
}

// Finite returns true if every value of every series is finite.
// Instability under a too-large Dt shows up here as false.
func (st *State) Finite() bool {
	for _, vr := range st.Vars() {
		for _, v := range vr.Vals {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return false
			}
		}
	}
	return true
}
