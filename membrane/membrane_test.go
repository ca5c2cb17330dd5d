// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package membrane

import (
	"errors"
	"math"
	"strings"
	"testing"

	"gonum.org/v1/gonum/floats"
)

// difTol is the relative numerical difference tolerance for comparing vs. target values
const difTol = 1.0e-5

func relDif(x, cor float64) float64 {
	return math.Abs(x-cor) / math.Max(math.Abs(cor), 1e-12)
}

// runPulse runs a model for dur with one DC pulse
func runPulse(t *testing.T, md Model, dur, amp, pdur, start float64) *State {
	t.Helper()
	sm := NewSim(md)
	if err := sm.Config(dur); err != nil {
		t.Fatal(err)
	}
	if _, _, err := sm.AddStimulus(amp, pdur, start); err != nil {
		t.Fatal(err)
	}
	st, err := sm.Run()
	if err != nil {
		t.Fatal(err)
	}
	return st
}

func TestHHInit(t *testing.T) {
	hh := NewHH()
	pr := hh.Params()
	st := runPulse(t, hh, 20e-3, 53e-6, 0.2e-3, 0.1e-3)
	if st.Len() != 2001 || len(st.M) != 2001 || len(st.IMem) != 2001 {
		t.Errorf("series lengths: %v %v %v\n", st.Len(), len(st.M), len(st.IMem))
	}
	if st.M[0] != pr.Init.M || st.H[0] != pr.Init.H || st.N[0] != pr.Init.N {
		t.Errorf("gate seeds not exact: %v %v %v\n", st.M[0], st.H[0], st.N[0])
	}
	// no stimulus at t = 0, so V[0] is one step driven by the resting current
	v0 := pr.Vr + pr.DtC()*(st.IStim[0]-st.IMem[0])
	if st.V[0] != v0 {
		t.Errorf("V[0]: %v, want %v\n", st.V[0], v0)
	}
	if dif := relDif(st.V[0], -0.059988923819444845); dif > 1e-9 {
		t.Errorf("V[0]: %v, dif: %v\n", st.V[0], dif)
	}
	for i, g := range st.GL {
		if g != pr.Gbar.L {
			t.Errorf("GL not constant at %v: %v\n", i, g)
			break
		}
	}
	if st.Time[0] != 0 || st.Time[2000] != 2000*pr.Dt {
		t.Errorf("time grid: %v %v\n", st.Time[0], st.Time[2000])
	}
}

func TestHHSubthreshold(t *testing.T) {
	hh := NewHH()
	thr := hh.Params().Thr()
	st := runPulse(t, hh, 20e-3, 5e-6, 0.2e-3, 0.1e-3)
	sum := st.Summary(thr)
	if !sum.Finite {
		t.Errorf("not finite\n")
	}
	if sum.NSpikes != 0 || sum.Vmax >= thr {
		t.Errorf("5 uA should stay below threshold: %v\n", sum)
	}
	if sum.Vmax <= hh.Params().Vr {
		t.Errorf("5 uA should depolarize: %v\n", sum)
	}
	if dif := relDif(sum.Vmax, -0.05209723370480644); dif > difTol {
		t.Errorf("Vmax: %v, dif: %v\n", sum.Vmax, dif)
	}
}

func TestHHPulse(t *testing.T) {
	hh := NewHH()
	pr := hh.Params()
	st := runPulse(t, hh, 20e-3, 53e-6, 0.2e-3, 0.1e-3)
	// sharp rise during the pulse window
	if st.V[30] < pr.Vr+10e-3 {
		t.Errorf("V at pulse end: %v\n", st.V[30])
	}
	if dif := relDif(st.V[30], -0.04944605861559184); dif > difTol {
		t.Errorf("V at pulse end: %v, dif: %v\n", st.V[30], dif)
	}
	for i := 10; i < 30; i++ {
		if st.IStim[i] != 53e-6 {
			t.Errorf("stimulus at %v: %v\n", i, st.IStim[i])
		}
	}
	sum := st.Summary(pr.Thr())
	if math.Abs(sum.Vend-pr.Vr) > 1e-3 {
		t.Errorf("should return near rest: %v\n", sum)
	}
}

func TestHHSpike(t *testing.T) {
	hh := NewHH()
	pr := hh.Params()
	st := runPulse(t, hh, 20e-3, 500e-6, 0.2e-3, 0.1e-3)
	sum := st.Summary(pr.Thr())
	if sum.NSpikes != 1 || sum.Vmax < pr.Thr() {
		t.Errorf("500 uA should fire one spike: %v\n", sum)
	}
	if dif := relDif(sum.Vmax, 0.04790717640134016); dif > difTol {
		t.Errorf("Vmax: %v, dif: %v\n", sum.Vmax, dif)
	}
	if math.Abs(sum.Vend-pr.Vr) > 1e-3 {
		t.Errorf("should return near rest: %v\n", sum)
	}
	// after-hyperpolarization
	if sum.Vmin > pr.Vr-5e-3 {
		t.Errorf("no hyperpolarization: %v\n", sum)
	}
	for tt := range st.IMem {
		if st.IMem[tt] != st.INa[tt]+st.IK[tt]+st.IL[tt] {
			t.Errorf("IMem not the sum of currents at %v\n", tt)
			break
		}
	}
}

func TestHHDoublePulse(t *testing.T) {
	hh := NewHH()
	sm := NewSim(hh)
	if err := sm.Config(15e-3); err != nil {
		t.Fatal(err)
	}
	sm.AddStimulus(500e-6, 0.15e-3, 0.1e-3)
	tms, stm, err := sm.AddStimulus(500e-6, 0.15e-3, 6.5e-3)
	if err != nil {
		t.Fatal(err)
	}
	if len(tms) != len(stm) || stm[10] != 500e-6 || stm[650] != 500e-6 || stm[100] != 0 {
		t.Errorf("accumulated stimulus wrong\n")
	}
	if len(sm.Prot) != 2 {
		t.Errorf("protocol len: %v\n", len(sm.Prot))
	}
	st, err := sm.Run()
	if err != nil {
		t.Fatal(err)
	}
	if spk := st.Spikes(hh.Params().Thr()); len(spk) != 2 {
		t.Errorf("double pulse spikes: %v\n", spk)
	}
	if sm.State != st {
		t.Errorf("Run should keep the state\n")
	}

	sm.ResetStimulus()
	if floats.Max(sm.Stim) != 0 || floats.Min(sm.Stim) != 0 || sm.Prot != nil {
		t.Errorf("ResetStimulus did not clear\n")
	}
}

func TestDeterminism(t *testing.T) {
	for typ := ModelTypes(0); typ < ModelTypesN; typ++ {
		var sts [2]*State
		for i := range sts {
			md, err := New(typ)
			if err != nil {
				t.Fatal(err)
			}
			sts[i] = runPulse(t, md, 5e-3, 20e-6, 1e-3, 0.5e-3)
		}
		if len(sts[0].VarNames()) != len(sts[1].VarNames()) {
			t.Fatalf("%v: var names differ\n", typ)
		}
		for _, vr := range sts[0].Vars() {
			if !floats.Same(vr.Vals, sts[1].Series(vr.Name)) {
				t.Errorf("%v: %v differs between identical runs\n", typ, vr.Name)
			}
		}
	}
}

func TestCoarseDt(t *testing.T) {
	hh := NewHH()
	hh.Params().Dt = 1e-3
	sm := NewSim(hh)
	if err := sm.Config(20e-3); err != nil {
		t.Fatal(err)
	}
	st, err := sm.Run()
	if err != nil {
		t.Fatalf("divergence must not be an error: %v\n", err)
	}
	if st.Len() != 21 {
		t.Errorf("len: %v\n", st.Len())
	}
	if st.Finite() || !floats.HasNaN(st.V) {
		t.Errorf("explicit Euler at dt = 1ms should diverge to NaN: %v\n", st.V[:6])
	}
}

func TestErrors(t *testing.T) {
	sm := NewSim(NewHH())
	if _, err := sm.Run(); !errors.Is(err, ErrNotConfigured) {
		t.Errorf("Run before Config: %v\n", err)
	}
	if _, _, err := sm.AddStimulus(1e-6, 1e-3, 0); !errors.Is(err, ErrNotConfigured) {
		t.Errorf("AddStimulus before Config: %v\n", err)
	}
	if err := sm.Config(0); !errors.Is(err, ErrBadParams) {
		t.Errorf("Config(0): %v\n", err)
	}
	if err := sm.Config(1e-3); err != nil {
		t.Fatal(err)
	}
	sm.Model.Params().Dt = 2e-5
	if _, err := sm.Run(); !errors.Is(err, ErrBadParams) {
		t.Errorf("Dt changed since Config: %v\n", err)
	}
	sm.Model.Params().Dt = 1e-5
	sm.Model.Params().C = 0
	if _, err := sm.Run(); !errors.Is(err, ErrBadParams) {
		t.Errorf("C = 0: %v\n", err)
	}
}

func TestStimulusBounds(t *testing.T) {
	sm := NewSim(NewHH())
	if err := sm.Config(1e-3); err != nil {
		t.Fatal(err)
	}
	n := len(sm.Times)
	for _, dur := range []float64{1, 1e15, math.Inf(1)} {
		sm.ResetStimulus()
		_, stm, err := sm.AddStimulus(1e-6, dur, 0)
		if err != nil {
			t.Fatal(err)
		}
		for _, i := range []int{0, 50, n - 1} {
			if stm[i] != 1e-6 {
				t.Errorf("dur %v idx %v: %v, want 1e-6\n", dur, i, stm[i])
			}
		}
	}
	sm.ResetStimulus()
	_, stm, _ := sm.AddStimulus(1e-6, 2e15, -1e15)
	if stm[50] != 1e-6 {
		t.Errorf("window around the grid: %v\n", stm[50])
	}
	if d := sm.Duration(); relDif(d, 1e-3) > difTol {
		t.Errorf("duration: %v\n", d)
	}
}

func TestCSATrans(t *testing.T) {
	cs := NewCS()
	st := runPulse(t, cs, 20e-3, 10e-6, 19e-3, 1e-3)
	if st.Type != CSModel || st.IA == nil || len(st.IA) != st.Len() {
		t.Fatalf("CS state must carry the A current\n")
	}
	if dif := relDif(st.IA[0], 1.5220158125206583e-05); dif > difTol {
		t.Errorf("IA[0]: %v, dif: %v\n", st.IA[0], dif)
	}
	if dif := relDif(st.IA[200], 2.3249164265994193e-05); dif > difTol {
		t.Errorf("IA[200]: %v, dif: %v\n", st.IA[200], dif)
	}
	// outward A current grows after the step onset
	if floats.Max(st.IA[100:600]) < 1.3*st.IA[0] {
		t.Errorf("IA did not increase: %v -> %v\n", st.IA[0], floats.Max(st.IA[100:600]))
	}
	for tt := range st.IMem {
		if st.IMem[tt] != st.INa[tt]+st.IK[tt]+st.IL[tt]+st.IA[tt] {
			t.Errorf("IMem not the sum of currents at %v\n", tt)
			break
		}
	}
	pr := cs.Params()
	if st.A[0] != pr.Init.A || st.B[0] != pr.Init.B {
		t.Errorf("A gate seeds: %v %v\n", st.A[0], st.B[0])
	}
	// time constants are stored in integration steps
	if dif := relDif(st.TauA[0], pr.ATrans.TauA(st.V[0])/pr.Dt); dif > 1e-12 {
		t.Errorf("TauA[0]: %v\n", st.TauA[0])
	}
	if st.AInf[st.Len()-1] == 0 || st.TauB[st.Len()-1] == 0 {
		t.Errorf("last step targets not computed\n")
	}

	hh := runPulse(t, NewHH(), 20e-3, 10e-6, 19e-3, 1e-3)
	if hh.IA != nil || hh.Series("IA") != nil || hh.Series("GA") != nil {
		t.Errorf("HH state must not have an A current\n")
	}
	if len(hh.VarNames()) != 13 || len(st.VarNames()) != 21 {
		t.Errorf("var names: %v, %v\n", hh.VarNames(), st.VarNames())
	}
	if hh.MemBytes() != 13*8*hh.Len() {
		t.Errorf("MemBytes: %v\n", hh.MemBytes())
	}
}

func TestCSRest(t *testing.T) {
	cs := NewCS()
	sm := NewSim(cs)
	if err := sm.Config(20e-3); err != nil {
		t.Fatal(err)
	}
	st, err := sm.Run()
	if err != nil {
		t.Fatal(err)
	}
	sum := st.Summary(cs.Params().Thr())
	if math.Abs(sum.Vmax-cs.Params().Vr) > 0.1e-3 || math.Abs(sum.Vmin-cs.Params().Vr) > 0.1e-3 {
		t.Errorf("CS should sit at rest without stimulus: %v\n", sum)
	}
}

func TestModelTypes(t *testing.T) {
	for _, c := range []struct {
		s   string
		typ ModelTypes
	}{{"hh", HHModel}, {"CS", CSModel}, {"CSModel", CSModel}, {"hhmodel", HHModel}} {
		typ, err := ParseModelType(c.s)
		if err != nil || typ != c.typ {
			t.Errorf("ParseModelType(%v): %v %v\n", c.s, typ, err)
		}
	}
	if _, err := ParseModelType("lif"); err == nil {
		t.Errorf("unknown model should fail\n")
	}
	if _, err := New(ModelTypesN); err == nil {
		t.Errorf("New(ModelTypesN) should fail\n")
	}
	md, _ := New(CSModel)
	if md.Type() != CSModel || md.Params().Gbar.A == 0 {
		t.Errorf("New(CSModel): %v\n", md.Type())
	}
	b, err := CSModel.MarshalJSON()
	if err != nil || !strings.Contains(string(b), "CSModel") {
		t.Errorf("MarshalJSON: %s %v\n", b, err)
	}
}

func TestSummary(t *testing.T) {
	st := NewState(6)
	copy(st.Time, []float64{0, 1, 2, 3, 4, 5})
	copy(st.V, []float64{-0.06, -0.04, 0.02, -0.05, -0.03, -0.07})
	spk := st.Spikes(-0.045)
	if len(spk) != 2 || spk[0] != 1 || spk[1] != 4 {
		t.Errorf("Spikes: %v\n", spk)
	}
	if tms := st.SpikeTimes(-0.045); tms[1] != 4 {
		t.Errorf("SpikeTimes: %v\n", tms)
	}
	sum := st.Summary(-0.045)
	if sum.Vmax != 0.02 || sum.VmaxTime != 2 || sum.Vmin != -0.07 || sum.Vend != -0.07 || sum.NSpikes != 2 || !sum.Finite {
		t.Errorf("Summary: %+v\n", sum)
	}
	st.IK[3] = math.Inf(1)
	if st.Finite() {
		t.Errorf("Finite should see Inf in any series\n")
	}
}
