// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package membrane

import (
	"fmt"
	"strings"

	"github.com/goki/ki/kit"
)

// Model is a membrane patch model that the generic Sim driver integrates.
// At each step t >= 1 the driver calls StepKinetics, then AccumCurrents,
// and then computes V[t] from the returned total ionic current.
type Model interface {
	// Type returns the type of model
	Type() ModelTypes

	// Params returns the parameters, which can be modified before a Run
	Params() *Params

	// NewState allocates all the series the model writes, for n steps
	NewState(n int) *State

	// InitState sets the t = 0 values of every series, including V[0]
	InitState(st *State)

	// StepKinetics advances all gating variables to step t using V[t-1]
	StepKinetics(st *State, t int)

	// AccumCurrents computes the conductances and currents at step t,
	// driven by V[t-1], and returns the total ionic current
	AccumCurrents(st *State, t int) float64
}

// PostStepper is implemented by models that need to compute values at
// step t from the new membrane potential V[t]
type PostStepper interface {
	PostStep(st *State, t int)
}

// ModelTypes are the available membrane models
type ModelTypes int32

//go:generate stringer -type=ModelTypes

var KiT_ModelTypes = kit.Enums.AddEnum(ModelTypesN, kit.NotBitFlag, nil)

func (ev ModelTypes) MarshalJSON() ([]byte, error)  { return kit.EnumMarshalJSON(ev) }
func (ev *ModelTypes) UnmarshalJSON(b []byte) error { return kit.EnumUnmarshalJSON(ev, b) }

// The membrane models
const (
	// HHModel is the Hodgkin-Huxley squid axon: Na, K and leak channels
	HHModel ModelTypes = iota

	// CSModel is the Connor-Stevens model: Hodgkin-Huxley plus the
	// transient A-type potassium current
	CSModel

	ModelTypesN
)

// ParseModelType returns the model type for a name, either the type name
// (HHModel) or its short form (hh), case insensitive
func ParseModelType(s string) (ModelTypes, error) {
	var typ ModelTypes
	if err := typ.FromString(s); err == nil {
		return typ, nil
	}
	ls := strings.ToLower(s)
	for i := ModelTypes(0); i < ModelTypesN; i++ {
		nm := strings.ToLower(i.String())
		if ls == nm || ls+"model" == nm {
			return i, nil
		}
	}
	return HHModel, fmt.Errorf("membrane.ParseModelType: unknown model %q", s)
}

// New returns a new model of given type with default parameters
func New(typ ModelTypes) (Model, error) {
	switch typ {
	case HHModel:
		return NewHH(), nil
	case CSModel:
		return NewCS(), nil
	}
	return nil, fmt.Errorf("membrane.New: invalid model type %v", typ)
}
