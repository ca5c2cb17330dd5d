// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package neurosim is the overall repository for conductance-based simulation
of a single patch of excitable membrane, implemented in the Go language.

This top-level of the repository has no functional code -- everything is organized
into the following sub-repositories:

* membrane: the core simulation: the Hodgkin-Huxley and Connor-Stevens models,
implementing a common Model interface, and the generic Sim driver that integrates
them with explicit fixed-step Euler integration.

* kinetics: the voltage dependent rate constants of the gating variables, in
a generalized exponential / sigmoid / linoid form, and the A current gates.

* chans: per-channel values (Na, K, leak, A) for conductances and reversal potentials.

* stim: injected current waveforms, DC steps and sinusoids, accumulated over a time grid.

* simlog: records runs in etable.Table's and saves them as CSV files.

* plots: renders runs as PNG figures.

* examples: these actually compile into runnable programs: examples/protocols runs
the standard stimulation experiments, and examples/rateplot plots the gating kinetics.
*/
package neurosim
