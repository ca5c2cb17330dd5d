// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package membrane

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// Summary are summary statistics of the membrane potential of one run.
// The V values are only meaningful if Finite is true.
type Summary struct {
	N        int     `desc:"number of time steps"`
	Vmax     float64 `desc:"maximum potential, volts"`
	VmaxTime float64 `desc:"time of the maximum potential, seconds"`
	Vmin     float64 `desc:"minimum potential, volts"`
	Vend     float64 `desc:"potential at the last step, volts"`
	NSpikes  int     `desc:"number of upward crossings of the threshold"`
	Finite   bool    `desc:"all series are free of NaN and Inf"`
}

// String returns a one-line description, in mV and ms
func (sm Summary) String() string {
	return fmt.Sprintf("steps: %d  Vmax: %.2f mV at %.3f ms  Vmin: %.2f mV  Vend: %.2f mV  spikes: %d  finite: %v",
		sm.N, sm.Vmax*1000, sm.VmaxTime*1000, sm.Vmin*1000, sm.Vend*1000, sm.NSpikes, sm.Finite)
}

// Spikes returns the step indexes t at which V crosses thr upward:
// V[t-1] < thr <= V[t]
func (st *State) Spikes(thr float64) []int {
	var spk []int
	for t := 1; t < len(st.V); t++ {
		if st.V[t-1] < thr && st.V[t] >= thr {
			spk = append(spk, t)
		}
	}
	return spk
}

// SpikeTimes returns the times of the upward crossings of thr
func (st *State) SpikeTimes(thr float64) []float64 {
	spk := st.Spikes(thr)
	tms := make([]float64, len(spk))
	for i, t := range spk {
		tms[i] = st.Time[t]
	}
	return tms
}

// Summary returns summary statistics of V, counting spikes at threshold thr
func (st *State) Summary(thr float64) Summary {
	sm := Summary{N: st.Len(), Finite: st.Finite()}
	if sm.N == 0 {
		return sm
	}
	mi := floats.MaxIdx(st.V)
	sm.Vmax = st.V[mi]
	sm.VmaxTime = st.Time[mi]
	sm.Vmin = floats.Min(st.V)
	sm.Vend = st.V[sm.N-1]
	sm.NSpikes = len(st.Spikes(thr))
	return sm
}
