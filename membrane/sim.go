// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package membrane

import (
	"errors"
	"fmt"

	"github.com/emer/neurosim/stim"
)

var (
	// ErrNotConfigured is returned when running or stimulating before Config
	ErrNotConfigured = errors.New("membrane: time grid not configured")

	// ErrBadParams is returned for a non-positive duration, step or capacitance,
	// or a step changed since Config
	ErrBadParams = errors.New("membrane: invalid parameters")
)

// Sim drives any Model over a fixed time grid with explicit Euler integration.
// Typical use is Config, then AddStimulus one or more times, then Run.
// A Sim is not safe for concurrent use, but separate Sims share nothing.
type Sim struct {
	Model Model         `desc:"the membrane model being simulated"`
	Dt    float64       `inactive:"+" desc:"time step the grid was configured with"`
	Times []float64     `inactive:"+" desc:"time grid, in seconds"`
	Stim  []float64     `inactive:"+" desc:"accumulated stimulus current on the time grid, A / cm^2"`
	Prot  stim.Protocol `inactive:"+" desc:"pulses added since the last Config or ResetStimulus"`
	State *State        `inactive:"+" desc:"result of the last Run"`
}

// NewSim returns a new Sim for given model
func NewSim(md Model) *Sim {
	return &Sim{Model: md}
}

// Config builds the time grid covering [0, dur] at the model's Dt, and
// clears any stimulus and previous results
func (sm *Sim) Config(dur float64) error {
	pr := sm.Model.Params()
	if !(dur > 0) {
		return fmt.Errorf("membrane.Sim.Config: %w: duration = %g", ErrBadParams, dur)
	}
	if err := pr.Validate(); err != nil {
		return fmt.Errorf("membrane.Sim.Config: %w", err)
	}
	sm.Dt = pr.Dt
	sm.Times = stim.Times(stim.NSteps(dur, pr.Dt), pr.Dt)
	sm.Stim = make([]float64, len(sm.Times))
	sm.Prot = nil
	sm.State = nil
	return nil
}

// Configured returns true if Config has built a time grid
func (sm *Sim) Configured() bool {
	return sm.Times != nil
}

// Duration returns the simulated duration, in seconds
func (sm *Sim) Duration() float64 {
	if len(sm.Times) == 0 {
		return 0
	}
	return sm.Times[len(sm.Times)-1]
}

// AddStimulus adds a current of amplitude amp (A / cm^2) over [start, start+dur)
// to the stimulus, on top of anything already added.  If a frequency is given
// the current is amp * sin(2 pi freq t), otherwise a constant step.
// Returns the time grid and the accumulated stimulus.
func (sm *Sim) AddStimulus(amp, dur, start float64, freq ...float64) (times, stm []float64, err error) {
	err = sm.AddPulse(stim.NewPulse(amp, dur, start, freq...))
	if err != nil {
		return nil, nil, err
	}
	return sm.Times, sm.Stim, nil
}

// AddPulse adds one stimulus pulse
func (sm *Sim) AddPulse(ps stim.Pulse) error {
	if !sm.Configured() {
		return fmt.Errorf("membrane.Sim.AddPulse: %w", ErrNotConfigured)
	}
	ps.Add(sm.Times, sm.Stim, sm.Dt)
	sm.Prot = append(sm.Prot, ps)
	return nil
}

// AddProtocol adds all the pulses of a protocol
func (sm *Sim) AddProtocol(prot stim.Protocol) error {
	for _, ps := range prot {
		if err := sm.AddPulse(ps); err != nil {
			return err
		}
	}
	return nil
}

// ResetStimulus zeroes the stimulus, keeping the time grid
func (sm *Sim) ResetStimulus() {
	for i := range sm.Stim {
		sm.Stim[i] = 0
	}
	sm.Prot = nil
}

// Run integrates the model over the whole time grid and returns the new State,
// also kept in sm.State.  Numerical divergence is not an error: with too large
// a Dt the returned series contain NaN / Inf, see State.Finite.
func (sm *Sim) Run() (*State, error) {
	if !sm.Configured() {
		return nil, fmt.Errorf("membrane.Sim.Run: %w", ErrNotConfigured)
	}
	md := sm.Model
	pr := md.Params()
	if err := pr.Validate(); err != nil {
		return nil, fmt.Errorf("membrane.Sim.Run: %w", err)
	}
	if pr.Dt != sm.Dt {
		return nil, fmt.Errorf("membrane.Sim.Run: %w: Dt %g changed since Config at %g", ErrBadParams, pr.Dt, sm.Dt)
	}
	pr.Update()
	n := len(sm.Times)
	st := md.NewState(n)
	copy(st.Time, sm.Times)
	copy(st.IStim, sm.Stim)
	md.InitState(st)
	ps, hasPost := md.(PostStepper)
	dtc := pr.DtC()
	for t := 1; t < n; t++ {
		md.StepKinetics(st, t)
		imem := md.AccumCurrents(st, t)
		st.IMem[t] = imem
		st.V[t] = st.V[t-1] + dtc*(st.IStim[t]-imem)
		if hasPost {
			ps.PostStep(st, t)
		}
	}
	sm.State = st
	return st, nil
}
