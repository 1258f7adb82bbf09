// Copyright Veridise Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package ir

import "github.com/Veridise/llzk-go/pkg/felt"

// FunctionKind distinguishes the two designated function kinds of a struct.
type FunctionKind uint8

const (
	// WitnessComputation identifies the @compute function, which builds and
	// returns an instance of its owning struct.
	WitnessComputation FunctionKind = iota
	// ConstraintChecking identifies the @constrain function, which asserts
	// equalities over an instance's fields and returns nothing.  Its first
	// parameter is the instance being constrained.
	ConstraintChecking
)

// Name returns the designated name for functions of this kind.
func (k FunctionKind) Name() string {
	if k == WitnessComputation {
		return "compute"
	}
	//
	return "constrain"
}

// Param is a formal parameter of a function.
type Param struct {
	// Declared type of this parameter.
	Type Type
	// Public marks this parameter as an externally visible signal.
	Public bool
}

// Value identifies a value within a function body by its defining position:
// the first len(params) values are the formal parameters, and each
// result-producing operation defines the next value in turn.  Values never
// outlive their defining function, and bodies hold no mutable aliases.
type Value uint

// Function is one of the two designated functions of a struct: a kind, an
// ordered parameter list, a return type (nil for constraint-checking
// functions) and a flat ordered sequence of operations.  There are no nested
// control-flow regions in this dialect subset.
type Function[F felt.Element[F]] struct {
	kind       FunctionKind
	params     []Param
	returnType Type
	body       []Operation[F]
}

// NewFunction constructs a function with a given kind, parameters and return
// type, and an initially empty body.
func NewFunction[F felt.Element[F]](kind FunctionKind, params []Param, returnType Type) *Function[F] {
	return &Function[F]{kind, params, returnType, nil}
}

// Kind returns the kind of this function.
func (p *Function[F]) Kind() FunctionKind {
	return p.kind
}

// Params returns the formal parameters of this function, in order.
func (p *Function[F]) Params() []Param {
	return p.params
}

// ReturnType returns the declared return type of this function, or nil for a
// constraint-checking function.
func (p *Function[F]) ReturnType() Type {
	return p.returnType
}

// Body returns the operations of this function, in order.
func (p *Function[F]) Body() []Operation[F] {
	return p.body
}

// Append adds an operation to the end of this function's body, returning the
// value it defines (if any).
func (p *Function[F]) Append(op Operation[F]) (Value, bool) {
	p.body = append(p.body, op)
	//
	if op.HasResult() {
		return p.valueAt(len(p.body) - 1), true
	}
	//
	return 0, false
}

// NumValues returns the number of values defined within this function
// (parameters plus operation results).
func (p *Function[F]) NumValues() uint {
	count := uint(len(p.params))
	//
	for _, op := range p.body {
		if op.HasResult() {
			count++
		}
	}
	//
	return count
}

// valueAt determines the value defined by the operation at a given body
// index, which must have a result.
func (p *Function[F]) valueAt(index int) Value {
	value := Value(len(p.params))
	//
	for i := 0; i < index; i++ {
		if p.body[i].HasResult() {
			value++
		}
	}
	//
	return value
}
