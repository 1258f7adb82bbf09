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

// ValueTypes computes the static type of every value defined within a given
// function (parameters first, then operation results in order).  This is a
// best-effort computation: entries which cannot be resolved (e.g. a read of
// an unknown field) are left nil.  On a module accepted by Verify, every
// entry is resolved.
func ValueTypes[F felt.Element[F]](m *Module[F], fn *Function[F]) []Type {
	types := make([]Type, 0, fn.NumValues())
	//
	for _, param := range fn.Params() {
		types = append(types, param.Type)
	}
	//
	typeOf := func(v Value) Type {
		if int(v) >= len(types) {
			return nil
		}
		//
		return types[int(v)]
	}
	//
	for _, op := range fn.Body() {
		switch op := op.(type) {
		case *New[F]:
			types = append(types, op.Of)
		case *Read[F]:
			var result Type
			//
			if instance := typeOf(op.Instance); instance != nil {
				if typ, err := FieldAccess(m, instance, op.Field); err == nil {
					result = typ
				}
			}
			//
			types = append(types, result)
		case *Const[F]:
			types = append(types, Felt())
		case *Add[F], *Neg[F], *Mul[F]:
			types = append(types, Felt())
		default:
			// No result.
		}
	}
	//
	return types
}
