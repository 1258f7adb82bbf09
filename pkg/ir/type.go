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

// Type of a value within the dialect.  This is a closed set: the
// field-element type, struct-instance types and (within generic argument
// lists) type variables.  There is no subtyping and no implicit coercion
// between any two distinct types.
type Type interface {
	// Equals checks whether this type is identical to another.
	Equals(other Type) bool
	//
	isType()
}

// FeltType is the (singleton) field-element type, written !felt.type.
type FeltType struct{}

// Felt returns the field-element type.
func Felt() FeltType {
	return FeltType{}
}

// Equals implementation for the Type interface.
func (p FeltType) Equals(other Type) bool {
	_, ok := other.(FeltType)
	//
	return ok
}

func (p FeltType) isType() {}

// StructType is the type of instances of a given struct, parameterised by
// zero or more generic arguments.  Only empty argument lists are exercised by
// the dialect subset, but arity is held structurally rather than hard-coded.
type StructType struct {
	// Name of the struct being instantiated.
	Name Symbol
	// Generic arguments (types or type variables).
	Params []Type
}

// NewStructType constructs the type of instances of a given struct.
func NewStructType(name Symbol, params ...Type) StructType {
	return StructType{name, params}
}

// Equals implementation for the Type interface.  Two struct types are equal
// iff their names are equal and their generic argument lists are equal
// element-wise.
func (p StructType) Equals(other Type) bool {
	q, ok := other.(StructType)
	//
	if !ok || p.Name != q.Name || len(p.Params) != len(q.Params) {
		return false
	}
	//
	for i := range p.Params {
		if !p.Params[i].Equals(q.Params[i]) {
			return false
		}
	}
	//
	return true
}

func (p StructType) isType() {}

// TypeVar is a reference to a generic parameter of the enclosing struct,
// written @T.
type TypeVar struct {
	// Name of the generic parameter being referenced.
	Name Symbol
}

// Equals implementation for the Type interface.
func (p TypeVar) Equals(other Type) bool {
	q, ok := other.(TypeVar)
	//
	return ok && p.Name == q.Name
}

func (p TypeVar) isType() {}

// IsStructOf checks whether a given type is an instance type of the struct
// with the given name.
func IsStructOf(t Type, name Symbol) bool {
	if s, ok := t.(StructType); ok {
		return s.Name == name
	}
	//
	return false
}
