// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package chans provides the ion channel value sets used by the
conductance-based membrane models: sodium, delayed-rectifier potassium,
leak and the transient A-type potassium channel.  A Chans value holds one
number per channel, and is used for maximal conductances (Gbar), reversal
potentials (Erev) and per-step driving forces (V - Erev).
*/
package chans

// Chans are ion channels used in computing the membrane current of a
// single-compartment conductance-based patch.
type Chans struct {
	Na float64 `desc:"fast sodium channel, gated by m^3 h"`
	K  float64 `desc:"delayed-rectifier potassium channel, gated by n^4"`
	L  float64 `desc:"constant leak channel -- not gated"`
	A  float64 `desc:"transient (A-type) potassium channel, gated by a^3 b -- only used by the Connor-Stevens model"`
}

// SetAll sets all the values
func (ch *Chans) SetAll(na, k, l, a float64) {
	ch.Na, ch.K, ch.L, ch.A = na, k, l, a
}

// SetFmMinusOther sets all the values from given value minus other Chans.
// With a membrane potential and the reversal potentials this gives
// the driving force of every channel.
func (ch *Chans) SetFmMinusOther(minus float64, oth Chans) {
	ch.Na, ch.K, ch.L, ch.A = minus-oth.Na, minus-oth.K, minus-oth.L, minus-oth.A
}

// SetMul sets each value to the product of the corresponding values in a and b,
// e.g., conductance times driving force gives the channel currents.
func (ch *Chans) SetMul(a, b Chans) {
	ch.Na, ch.K, ch.L, ch.A = a.Na*b.Na, a.K*b.K, a.L*b.L, a.A*b.A
}

// Sum returns the sum over all channels, Na + K + L + A (in that order).
func (ch *Chans) Sum() float64 {
	return ch.Na + ch.K + ch.L + ch.A
}
