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

import (
	"fmt"

	"github.com/Veridise/llzk-go/pkg/felt"
)

// The typing rules of the dialect, factored into pure predicate functions.
// The builder applies these eagerly (failing fast at construction time),
// whilst the verifier re-applies the same rules exhaustively over a complete
// module.  Keeping a single rule set ensures the two cannot silently
// diverge.

// FieldAccess resolves a field access against the static type of the target
// instance, returning the declared type of the field.  Fails with
// ErrTypeMismatch when the target is not a struct instance, ErrUnknownStruct
// when its struct was never declared, or ErrNoSuchField when the field does
// not exist.
func FieldAccess[F felt.Element[F]](m *Module[F], instance Type, field Symbol) (Type, error) {
	st, ok := instance.(StructType)
	if !ok {
		return nil, fmt.Errorf("%w: field access on non-struct value", ErrTypeMismatch)
	}
	//
	return m.FieldType(st.Name, field)
}

// CheckStructRef resolves a struct reference against its declaration.  Fails
// with ErrUnknownStruct when the struct was never declared, or
// ErrArityMismatch when the reference carries the wrong number of generic
// arguments.
func CheckStructRef[F felt.Element[F]](m *Module[F], st StructType) error {
	def, ok := m.Lookup(st.Name)
	if !ok {
		return fmt.Errorf("%w: @%s", ErrUnknownStruct, m.Symbols().Name(st.Name))
	}
	//
	if len(st.Params) != len(def.Params()) {
		return fmt.Errorf("%w: @%s declares %d generic parameter(s), reference has %d",
			ErrArityMismatch, m.Symbols().Name(st.Name), len(def.Params()), len(st.Params))
	}
	//
	return nil
}

// CheckFelt requires a given operand type to be the field-element type.
func CheckFelt(t Type) error {
	if _, ok := t.(FeltType); !ok {
		return fmt.Errorf("%w: expected !felt.type operand", ErrTypeMismatch)
	}
	//
	return nil
}

// CheckWrite requires the type of a value being stored to agree exactly with
// the declared type of the target field.  There is no implicit coercion.
func CheckWrite(field Type, value Type) error {
	if !field.Equals(value) {
		return fmt.Errorf("%w: value type does not match field type", ErrTypeMismatch)
	}
	//
	return nil
}

// CheckConstrainEq requires both operands of an equality constraint to have
// equal types, and to be scalar (field-element) values.  Constraining two
// struct instances does not imply element-wise field equality, hence is
// rejected outright.
func CheckConstrainEq(lhs Type, rhs Type) error {
	if !lhs.Equals(rhs) {
		return fmt.Errorf("%w: constrained values have different types", ErrTypeMismatch)
	} else if err := CheckFelt(lhs); err != nil {
		return fmt.Errorf("%w: only scalar values may be constrained", ErrTypeMismatch)
	}
	//
	return nil
}

// CheckReturn requires the terminal return of a function to agree with the
// function's kind: a witness-computation function returns exactly one value
// of its declared (owning struct instance) type, whilst a
// constraint-checking function returns nothing.
func CheckReturn[F felt.Element[F]](fn *Function[F], value Type, hasValue bool) error {
	switch fn.Kind() {
	case WitnessComputation:
		if !hasValue {
			return fmt.Errorf("%w: witness computation must return its instance", ErrMalformedFunction)
		} else if value != nil && !fn.ReturnType().Equals(value) {
			return fmt.Errorf("%w: returned value does not match declared return type", ErrTypeMismatch)
		}
	case ConstraintChecking:
		if hasValue {
			return fmt.Errorf("%w: constraint checking returns nothing", ErrMalformedFunction)
		}
	}
	//
	return nil
}

// CheckSignature requires the signature of one of the two designated
// functions to have its kind-specific shape: @compute returns an instance of
// the owning struct, whilst @constrain returns nothing and takes the
// instance being constrained as its first parameter.
func CheckSignature[F felt.Element[F]](def *StructDef[F], fn *Function[F]) error {
	self := def.SelfType()
	//
	switch fn.Kind() {
	case WitnessComputation:
		if fn.ReturnType() == nil || !fn.ReturnType().Equals(self) {
			return fmt.Errorf("%w: @compute must return %s instance", ErrMalformedFunction,
				"@"+def.symbols.Name(def.name))
		}
	case ConstraintChecking:
		if fn.ReturnType() != nil {
			return fmt.Errorf("%w: @constrain returns nothing", ErrMalformedFunction)
		} else if len(fn.Params()) == 0 || !fn.Params()[0].Type.Equals(self) {
			return fmt.Errorf("%w: @constrain must take the constrained instance first", ErrMalformedFunction)
		}
	}
	//
	return nil
}
