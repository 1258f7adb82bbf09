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

// Operation is a single operation within a function body.  The set of
// operations is closed: construct-instance, read-field, write-field,
// constant, add, neg, mul, equality-constraint and return.  Each operation
// has a fixed operand arity, and defines at most one result value.
type Operation[F felt.Element[F]] interface {
	// Operands returns the values read by this operation, in order.
	Operands() []Value
	// HasResult indicates whether this operation defines a result value.
	HasResult() bool
	//
	isOperation()
}

// New constructs a fresh instance of a given struct (struct.new).  Within a
// witness-computation function, its result is the instance under
// construction.
type New[F felt.Element[F]] struct {
	// Instance type being constructed.
	Of StructType
}

// Operands implementation for the Operation interface.
func (p *New[F]) Operands() []Value { return nil }

// HasResult implementation for the Operation interface.
func (p *New[F]) HasResult() bool { return true }

func (p *New[F]) isOperation() {}

// Read reads a field of a struct instance (struct.readf).
type Read[F felt.Element[F]] struct {
	// Instance being read.
	Instance Value
	// Field being read.
	Field Symbol
}

// Operands implementation for the Operation interface.
func (p *Read[F]) Operands() []Value { return []Value{p.Instance} }

// HasResult implementation for the Operation interface.
func (p *Read[F]) HasResult() bool { return true }

func (p *Read[F]) isOperation() {}

// Write writes a value into a field of a struct instance (struct.writef).
type Write[F felt.Element[F]] struct {
	// Instance being written.
	Instance Value
	// Field being written.
	Field Symbol
	// Value being stored.
	Source Value
}

// Operands implementation for the Operation interface.
func (p *Write[F]) Operands() []Value { return []Value{p.Instance, p.Source} }

// HasResult implementation for the Operation interface.
func (p *Write[F]) HasResult() bool { return false }

func (p *Write[F]) isOperation() {}

// Const materialises a constant field element (felt.const), already
// normalised into [0, p).
type Const[F felt.Element[F]] struct {
	// Constant value.
	Value F
}

// Operands implementation for the Operation interface.
func (p *Const[F]) Operands() []Value { return nil }

// HasResult implementation for the Operation interface.
func (p *Const[F]) HasResult() bool { return true }

func (p *Const[F]) isOperation() {}

// Add computes the modular sum of two field elements (felt.add).
type Add[F felt.Element[F]] struct {
	Lhs Value
	Rhs Value
}

// Operands implementation for the Operation interface.
func (p *Add[F]) Operands() []Value { return []Value{p.Lhs, p.Rhs} }

// HasResult implementation for the Operation interface.
func (p *Add[F]) HasResult() bool { return true }

func (p *Add[F]) isOperation() {}

// Neg computes the modular negation of a field element (felt.neg).
type Neg[F felt.Element[F]] struct {
	Arg Value
}

// Operands implementation for the Operation interface.
func (p *Neg[F]) Operands() []Value { return []Value{p.Arg} }

// HasResult implementation for the Operation interface.
func (p *Neg[F]) HasResult() bool { return true }

func (p *Neg[F]) isOperation() {}

// Mul computes the modular product of two field elements (felt.mul).
type Mul[F felt.Element[F]] struct {
	Lhs Value
	Rhs Value
}

// Operands implementation for the Operation interface.
func (p *Mul[F]) Operands() []Value { return []Value{p.Lhs, p.Rhs} }

// HasResult implementation for the Operation interface.
func (p *Mul[F]) HasResult() bool { return true }

func (p *Mul[F]) isOperation() {}

// ConstrainEq asserts equality of two values (constrain.eq).
type ConstrainEq[F felt.Element[F]] struct {
	Lhs Value
	Rhs Value
}

// Operands implementation for the Operation interface.
func (p *ConstrainEq[F]) Operands() []Value { return []Value{p.Lhs, p.Rhs} }

// HasResult implementation for the Operation interface.
func (p *ConstrainEq[F]) HasResult() bool { return false }

func (p *ConstrainEq[F]) isOperation() {}

// Return terminates a function body (function.return), optionally yielding a
// value.  A witness-computation function returns the instance under
// construction; a constraint-checking function returns nothing.
type Return[F felt.Element[F]] struct {
	// Value being returned.
	Val Value
	// HasVal indicates whether a value is returned at all.
	HasVal bool
}

// Operands implementation for the Operation interface.
func (p *Return[F]) Operands() []Value {
	if p.HasVal {
		return []Value{p.Val}
	}
	//
	return nil
}

// HasResult implementation for the Operation interface.
func (p *Return[F]) HasResult() bool { return false }

func (p *Return[F]) isOperation() {}
