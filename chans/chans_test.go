// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chans

import "testing"

func TestDrivingForce(t *testing.T) {
	ena, ek, el := 52.4e-3, -72.1e-3, -49.2e-3
	v := -60e-3
	erev := Chans{}
	erev.SetAll(ena, ek, el, 0)
	var df Chans
	df.SetFmMinusOther(v, erev)
	cor := Chans{Na: v - ena, K: v - ek, L: v - el, A: v}
	if df != cor {
		t.Errorf("driving force: got %+v, want %+v\n", df, cor)
	}
}

func TestMulSum(t *testing.T) {
	g := Chans{Na: 2, K: 3, L: 4, A: 5}
	df := Chans{Na: 1, K: -1, L: 0.5, A: 0}
	var cur Chans
	cur.SetMul(g, df)
	if s := cur.Sum(); s != 1 {
		t.Errorf("sum: got %v, want %v\n", s, 1.0)
	}
}
