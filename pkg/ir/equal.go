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

// StructurallyEqual checks whether two modules are structurally equal: same
// structs, fields, attributes and operations, in the same order.  The two
// modules may own distinct symbol tables (e.g. one built imperatively and
// one parsed), hence names are compared by spelling rather than by symbol.
func StructurallyEqual[F felt.Element[F]](a *Module[F], b *Module[F]) bool {
	if len(a.Structs()) != len(b.Structs()) {
		return false
	}
	//
	for i := range a.Structs() {
		if !structsEqual(a, a.Structs()[i], b, b.Structs()[i]) {
			return false
		}
	}
	//
	return true
}

func structsEqual[F felt.Element[F]](am *Module[F], a *StructDef[F], bm *Module[F], b *StructDef[F]) bool {
	if am.Symbols().Name(a.Name()) != bm.Symbols().Name(b.Name()) {
		return false
	} else if len(a.Params()) != len(b.Params()) || len(a.Fields()) != len(b.Fields()) {
		return false
	}
	//
	for i := range a.Params() {
		if am.Symbols().Name(a.Params()[i]) != bm.Symbols().Name(b.Params()[i]) {
			return false
		}
	}
	//
	for i := range a.Fields() {
		af, bf := a.Fields()[i], b.Fields()[i]
		//
		if am.Symbols().Name(af.Name) != bm.Symbols().Name(bf.Name) ||
			af.Public != bf.Public || !typesEqual(am, af.Type, bm, bf.Type) {
			return false
		}
	}
	//
	return functionsEqual(am, a.Compute(), bm, b.Compute()) &&
		functionsEqual(am, a.Constrain(), bm, b.Constrain())
}

func functionsEqual[F felt.Element[F]](am *Module[F], a *Function[F], bm *Module[F], b *Function[F]) bool {
	if (a == nil) != (b == nil) {
		return false
	} else if a == nil {
		return true
	}
	//
	if a.Kind() != b.Kind() || len(a.Params()) != len(b.Params()) || len(a.Body()) != len(b.Body()) {
		return false
	} else if !optTypesEqual(am, a.ReturnType(), bm, b.ReturnType()) {
		return false
	}
	//
	for i := range a.Params() {
		ap, bp := a.Params()[i], b.Params()[i]
		if ap.Public != bp.Public || !typesEqual(am, ap.Type, bm, bp.Type) {
			return false
		}
	}
	//
	for i := range a.Body() {
		if !operationsEqual(am, a.Body()[i], bm, b.Body()[i]) {
			return false
		}
	}
	//
	return true
}

//nolint:gocyclo
func operationsEqual[F felt.Element[F]](am *Module[F], a Operation[F], bm *Module[F], b Operation[F]) bool {
	switch a := a.(type) {
	case *New[F]:
		if b, ok := b.(*New[F]); ok {
			return typesEqual(am, a.Of, bm, b.Of)
		}
	case *Read[F]:
		if b, ok := b.(*Read[F]); ok {
			return a.Instance == b.Instance && symbolsEqual(am, a.Field, bm, b.Field)
		}
	case *Write[F]:
		if b, ok := b.(*Write[F]); ok {
			return a.Instance == b.Instance && a.Source == b.Source &&
				symbolsEqual(am, a.Field, bm, b.Field)
		}
	case *Const[F]:
		if b, ok := b.(*Const[F]); ok {
			// Value equality after reduction, not identity of derivation.
			return a.Value.Cmp(b.Value) == 0
		}
	case *Add[F]:
		if b, ok := b.(*Add[F]); ok {
			return a.Lhs == b.Lhs && a.Rhs == b.Rhs
		}
	case *Neg[F]:
		if b, ok := b.(*Neg[F]); ok {
			return a.Arg == b.Arg
		}
	case *Mul[F]:
		if b, ok := b.(*Mul[F]); ok {
			return a.Lhs == b.Lhs && a.Rhs == b.Rhs
		}
	case *ConstrainEq[F]:
		if b, ok := b.(*ConstrainEq[F]); ok {
			return a.Lhs == b.Lhs && a.Rhs == b.Rhs
		}
	case *Return[F]:
		if b, ok := b.(*Return[F]); ok {
			return a.HasVal == b.HasVal && (!a.HasVal || a.Val == b.Val)
		}
	}
	//
	return false
}

func symbolsEqual[F felt.Element[F]](am *Module[F], a Symbol, bm *Module[F], b Symbol) bool {
	return am.Symbols().Name(a) == bm.Symbols().Name(b)
}

func optTypesEqual[F felt.Element[F]](am *Module[F], a Type, bm *Module[F], b Type) bool {
	if (a == nil) != (b == nil) {
		return false
	} else if a == nil {
		return true
	}
	//
	return typesEqual(am, a, bm, b)
}

func typesEqual[F felt.Element[F]](am *Module[F], a Type, bm *Module[F], b Type) bool {
	switch a := a.(type) {
	case FeltType:
		_, ok := b.(FeltType)
		return ok
	case StructType:
		if b, ok := b.(StructType); ok {
			if !symbolsEqual(am, a.Name, bm, b.Name) || len(a.Params) != len(b.Params) {
				return false
			}
			//
			for i := range a.Params {
				if !typesEqual(am, a.Params[i], bm, b.Params[i]) {
					return false
				}
			}
			//
			return true
		}
	case TypeVar:
		if b, ok := b.(TypeVar); ok {
			return symbolsEqual(am, a.Name, bm, b.Name)
		}
	}
	//
	return false
}
