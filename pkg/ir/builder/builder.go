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

// Package builder provides an imperative construction API for dialect
// modules, mirroring the textual grammar.  Construction fails fast: every
// rule violation which can be detected locally (unknown fields, operand type
// mismatches, operations after return) surfaces synchronously from the
// triggering call, since later operations may depend on the rejected one.
// The standalone verifier re-checks everything regardless, using the same
// rule set.
package builder

import (
	"fmt"

	"github.com/Veridise/llzk-go/pkg/felt"
	"github.com/Veridise/llzk-go/pkg/ir"
)

// ModuleBuilder incrementally constructs a module of struct definitions.
type ModuleBuilder[F felt.Element[F]] struct {
	module *ir.Module[F]
}

// NewModule constructs a builder over an initially empty module.
func NewModule[F felt.Element[F]]() *ModuleBuilder[F] {
	return &ModuleBuilder[F]{ir.NewModule[F]()}
}

// Module returns the module under construction.  The module should not be
// verified or serialized whilst construction is still in progress.
func (p *ModuleBuilder[F]) Module() *ir.Module[F] {
	return p.module
}

// AddStruct declares a new struct with a given name and generic parameters,
// failing with ErrDuplicateStruct if the name is already taken.
func (p *ModuleBuilder[F]) AddStruct(name string, params ...string) (*StructBuilder[F], error) {
	def, err := p.module.Declare(name, params...)
	if err != nil {
		return nil, err
	}
	//
	return &StructBuilder[F]{p.module, def}, nil
}

// StructBuilder constructs a single struct definition: its fields and its
// two designated functions.
type StructBuilder[F felt.Element[F]] struct {
	module *ir.Module[F]
	def    *ir.StructDef[F]
}

// Def returns the struct definition under construction.
func (p *StructBuilder[F]) Def() *ir.StructDef[F] {
	return p.def
}

// AddField appends a field declaration, failing with ErrDuplicateField if
// the name is already taken within this struct.
func (p *StructBuilder[F]) AddField(name string, typ ir.Type, public bool) error {
	return p.def.AddField(p.module.Symbols().Intern(name), typ, public)
}

// BeginCompute begins the witness-computation function of this struct, with
// a given parameter list.  Its return type is always an instance of the
// owning struct.
func (p *StructBuilder[F]) BeginCompute(params ...ir.Param) (*FunctionBuilder[F], error) {
	if p.def.Compute() != nil {
		return nil, fmt.Errorf("%w: witness computation already defined", ir.ErrMalformedFunction)
	}
	//
	fn := ir.NewFunction[F](ir.WitnessComputation, params, p.def.SelfType())
	//
	return newFunctionBuilder(p, fn), nil
}

// BeginConstrain begins the constraint-checking function of this struct,
// with a given parameter list.  The instance being constrained is inserted
// as the implicit first parameter, and there is no return type.
func (p *StructBuilder[F]) BeginConstrain(params ...ir.Param) (*FunctionBuilder[F], error) {
	if p.def.Constrain() != nil {
		return nil, fmt.Errorf("%w: constraint checking already defined", ir.ErrMalformedFunction)
	}
	//
	self := ir.Param{Type: p.def.SelfType(), Public: false}
	fn := ir.NewFunction[F](ir.ConstraintChecking, append([]ir.Param{self}, params...), nil)
	//
	return newFunctionBuilder(p, fn), nil
}
