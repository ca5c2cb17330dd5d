// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package stim generates externally injected current waveforms over a
fixed-step time grid.  Pulses are added into an existing stimulus
array, so that several calls build up compound protocols, e.g., a
double-pulse refractory experiment, without clearing other regions.
*/
package stim

import (
	"math"

	"github.com/goki/ki/ints"
)

// IdxTol is the fraction of a time step added before truncating a time to
// a step index, so that times that are exact multiples of dt in decimal
// (0.1e-3 / 1e-5 = 9.999...) map to the intended step.
const IdxTol = 1.0e-6

// Idx returns the time-step index for time t with step dt
func Idx(t, dt float64) int {
	return int(math.Floor(t/dt + IdxTol))
}

// ClampIdx returns the time-step index for time t clamped to [0, n].
// The clamp is done before converting to int, so that infinite or very
// large times map to the ends of the grid.  NaN maps to 0.
func ClampIdx(t, dt float64, n int) int {
	fi := math.Floor(t/dt + IdxTol)
	switch {
	case !(fi > 0):
		return 0
	case fi >= float64(n):
		return n
	}
	return int(fi)
}

// NSteps returns the number of samples in a time grid covering [0, dur]
// with step dt: floor(dur / dt) + 1
func NSteps(dur, dt float64) int {
	return Idx(dur, dt) + 1
}

// Times returns a new time grid of n samples at step dt
func Times(n int, dt float64) []float64 {
	tms := make([]float64, n)
	for i := range tms {
		tms[i] = float64(i) * dt
	}
	return tms
}

// Pulse is one stimulus current window
type Pulse struct {
	Amp   float64 `desc:"amplitude of the current, in A / cm^2"`
	Dur   float64 `desc:"duration of the window, in seconds"`
	Start float64 `desc:"start time of the window, in seconds"`
	Freq  float64 `desc:"frequency of the sinusoid, in Hz -- only used if Sine"`
	Sine  bool    `desc:"if true, the current is Amp * sin(2 pi Freq t) at absolute time t, for any Freq (0 gives no current, negative inverts), otherwise a constant Amp step"`
}

// NewPulse returns a constant step pulse, or a sinusoid at freq[0] if given
func NewPulse(amp, dur, start float64, freq ...float64) Pulse {
	ps := Pulse{Amp: amp, Dur: dur, Start: start}
	if len(freq) > 0 {
		ps.Freq = freq[0]
		ps.Sine = true
	}
	return ps
}

// Window returns the [st, ed) index range of the pulse clamped to [0, n)
func (ps *Pulse) Window(n int, dt float64) (st, ed int) {
	st = ClampIdx(ps.Start, dt, n)
	ed = ints.MaxInt(ClampIdx(ps.Start+ps.Dur, dt, n), st)
	return
}

// Value returns the pulse current at absolute time t, ignoring the window
func (ps *Pulse) Value(t float64) float64 {
	if !ps.Sine {
		return ps.Amp
	}
	return ps.Amp * math.Sin(2*math.Pi*ps.Freq*t)
}

// Add accumulates the pulse into dst, which must be the same length as times.
// Windows with non-positive length write nothing.
func (ps *Pulse) Add(times, dst []float64, dt float64) {
	st, ed := ps.Window(len(dst), dt)
	for i := st; i < ed; i++ {
		dst[i] += ps.Value(times[i])
	}
}

// Protocol is an ordered list of pulses making up one stimulation protocol
type Protocol []Pulse

// Add appends a constant step pulse, or a sinusoid at freq[0] if given
func (pr *Protocol) Add(amp, dur, start float64, freq ...float64) {
	*pr = append(*pr, NewPulse(amp, dur, start, freq...))
}

// Build returns a new stimulus array over times with all the pulses accumulated
func (pr Protocol) Build(times []float64, dt float64) []float64 {
	dst := make([]float64, len(times))
	pr.AddTo(times, dst, dt)
	return dst
}

// AddTo accumulates all the pulses into dst
func (pr Protocol) AddTo(times, dst []float64, dt float64) {
	for i := range pr {
		pr[i].Add(times, dst, dt)
	}
}
