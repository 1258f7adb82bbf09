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

// Diagnostic locates a single verification failure, naming the offending
// struct, function and operation index where applicable.
type Diagnostic struct {
	// Name of the offending struct.
	Struct string
	// Name of the offending function, or empty for struct-level failures.
	Function string
	// Index of the offending operation within the function body, or -1 for
	// failures not tied to a specific operation.
	OpIndex int
	// Underlying error, wrapping one of the sentinel errors of this package.
	Err error
}

func (d Diagnostic) String() string {
	switch {
	case d.Function == "":
		return fmt.Sprintf("struct @%s: %v", d.Struct, d.Err)
	case d.OpIndex < 0:
		return fmt.Sprintf("struct @%s, function @%s: %v", d.Struct, d.Function, d.Err)
	default:
		return fmt.Sprintf("struct @%s, function @%s, operation %d: %v", d.Struct, d.Function, d.OpIndex, d.Err)
	}
}

// Verify checks every invariant of a complete module, independently of any
// construction-time checks (the module may have come from the textual codec,
// which bypasses the builder).  Verification is pure, and never stops at the
// first fault: all diagnostics across the whole module are collected in one
// pass, ordered by struct, function and operation.  An empty result is the
// only success signal.
func Verify[F felt.Element[F]](m *Module[F]) []Diagnostic {
	var diags []Diagnostic
	//
	for _, def := range m.Structs() {
		diags = append(diags, verifyStruct(m, def)...)
	}
	//
	return diags
}

func verifyStruct[F felt.Element[F]](m *Module[F], def *StructDef[F]) []Diagnostic {
	var (
		diags []Diagnostic
		name  = m.Symbols().Name(def.Name())
		seen  = make(map[Symbol]bool)
	)
	// Field names must be unique, and field types must resolve.
	for _, field := range def.Fields() {
		if seen[field.Name] {
			diags = append(diags, Diagnostic{name, "", -1,
				fmt.Errorf("%w: @%s", ErrDuplicateField, m.Symbols().Name(field.Name))})
		}
		//
		seen[field.Name] = true
		//
		if st, ok := field.Type.(StructType); ok {
			if err := CheckStructRef(m, st); err != nil {
				diags = append(diags, Diagnostic{name, "", -1, err})
			}
		}
	}
	// Both designated functions must be present.
	if def.Compute() == nil {
		diags = append(diags, Diagnostic{name, "", -1,
			fmt.Errorf("%w: witness computation (@compute)", ErrMissingFunction)})
	}
	//
	if def.Constrain() == nil {
		diags = append(diags, Diagnostic{name, "", -1,
			fmt.Errorf("%w: constraint checking (@constrain)", ErrMissingFunction)})
	}
	//
	for _, fn := range []*Function[F]{def.Compute(), def.Constrain()} {
		if fn == nil {
			continue
		}
		//
		fname := fn.Kind().Name()
		//
		if err := CheckSignature(def, fn); err != nil {
			diags = append(diags, Diagnostic{name, fname, -1, err})
		}
		//
		diags = append(diags, verifyBody(m, name, fn)...)
	}
	//
	return diags
}

// verifyBody walks the operations of a function in order, maintaining a
// typed value environment, and applies the typing rules to each operation.
// Values must be defined before use: since values are identified by defining
// position, an operand is defined exactly when its index is below the number
// of values seen so far.  Unresolvable types are recorded as nil so that a
// single fault does not cascade into spurious downstream diagnostics.
func verifyBody[F felt.Element[F]](m *Module[F], sname string, fn *Function[F]) []Diagnostic {
	var (
		diags    []Diagnostic
		fname    = fn.Kind().Name()
		types    = make([]Type, 0, fn.NumValues())
		returned = false
	)
	//
	for _, param := range fn.Params() {
		types = append(types, param.Type)
	}
	//
	fault := func(index int, err error) {
		diags = append(diags, Diagnostic{sname, fname, index, err})
	}
	// typeOf yields the type of an operand (nil if unresolvable), reporting
	// a use-before-definition fault where applicable.
	typeOf := func(index int, v Value) Type {
		if int(v) >= len(types) {
			fault(index, fmt.Errorf("%w: value %%%d", ErrUseBeforeDefinition, v))
			return nil
		}
		//
		return types[int(v)]
	}
	//
	for i, op := range fn.Body() {
		if returned {
			fault(i, ErrOperationAfterReturn)
		}
		//
		switch op := op.(type) {
		case *New[F]:
			if err := CheckStructRef(m, op.Of); err != nil {
				fault(i, err)
			}
			//
			types = append(types, op.Of)
		case *Read[F]:
			var result Type
			//
			if instance := typeOf(i, op.Instance); instance != nil {
				if typ, err := FieldAccess(m, instance, op.Field); err != nil {
					fault(i, err)
				} else {
					result = typ
				}
			}
			//
			types = append(types, result)
		case *Write[F]:
			instance := typeOf(i, op.Instance)
			source := typeOf(i, op.Source)
			//
			if instance != nil {
				if typ, err := FieldAccess(m, instance, op.Field); err != nil {
					fault(i, err)
				} else if source != nil {
					if err := CheckWrite(typ, source); err != nil {
						fault(i, err)
					}
				}
			}
		case *Const[F]:
			types = append(types, Felt())
		case *Add[F]:
			checkFeltOperands(fault, i, typeOf(i, op.Lhs), typeOf(i, op.Rhs))
			types = append(types, Felt())
		case *Neg[F]:
			checkFeltOperands(fault, i, typeOf(i, op.Arg))
			types = append(types, Felt())
		case *Mul[F]:
			checkFeltOperands(fault, i, typeOf(i, op.Lhs), typeOf(i, op.Rhs))
			types = append(types, Felt())
		case *ConstrainEq[F]:
			lhs := typeOf(i, op.Lhs)
			rhs := typeOf(i, op.Rhs)
			//
			if lhs != nil && rhs != nil {
				if err := CheckConstrainEq(lhs, rhs); err != nil {
					fault(i, err)
				}
			}
		case *Return[F]:
			var value Type
			//
			if op.HasVal {
				value = typeOf(i, op.Val)
			}
			//
			if err := CheckReturn(fn, value, op.HasVal); err != nil {
				fault(i, err)
			}
			//
			returned = true
		default:
			panic("unreachable")
		}
	}
	//
	if !returned {
		diags = append(diags, Diagnostic{sname, fname, -1,
			fmt.Errorf("%w: missing terminal return", ErrMalformedFunction)})
	}
	//
	return diags
}

func checkFeltOperands(fault func(int, error), index int, operands ...Type) {
	for _, t := range operands {
		if t == nil {
			continue
		}
		//
		if err := CheckFelt(t); err != nil {
			fault(index, err)
		}
	}
}
