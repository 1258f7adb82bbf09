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
package builder

import (
	"fmt"

	"github.com/Veridise/llzk-go/pkg/felt"
	"github.com/Veridise/llzk-go/pkg/ir"
)

// FunctionBuilder appends operations to a function body, one call per
// operation kind.  It maintains the typed value environment needed to apply
// the dialect's typing rules eagerly, consulting the struct registry at call
// time (e.g. reading an unknown field fails immediately with
// ErrNoSuchField).  No operation may follow the terminal return.
type FunctionBuilder[F felt.Element[F]] struct {
	parent *StructBuilder[F]
	fn     *ir.Function[F]
	// Static type of every value defined so far.
	types []ir.Type
	// Set once the terminal return has been appended.
	returned bool
}

func newFunctionBuilder[F felt.Element[F]](parent *StructBuilder[F], fn *ir.Function[F]) *FunctionBuilder[F] {
	types := make([]ir.Type, 0, len(fn.Params()))
	//
	for _, param := range fn.Params() {
		types = append(types, param.Type)
	}
	//
	return &FunctionBuilder[F]{parent, fn, types, false}
}

// Params returns the values bound to this function's formal parameters.  For
// a constraint-checking function, the first is the instance being
// constrained.
func (p *FunctionBuilder[F]) Params() []ir.Value {
	params := make([]ir.Value, len(p.fn.Params()))
	//
	for i := range params {
		params[i] = ir.Value(i)
	}
	//
	return params
}

// NewInstance appends a construct-instance operation, yielding a fresh
// instance of the owning struct.
func (p *FunctionBuilder[F]) NewInstance() (ir.Value, error) {
	if err := p.checkOpen(); err != nil {
		return 0, err
	}
	//
	return p.push(&ir.New[F]{Of: p.parent.def.SelfType()}, p.parent.def.SelfType()), nil
}

// ReadField appends a read of a given field of a given instance, yielding
// the field's value.
func (p *FunctionBuilder[F]) ReadField(instance ir.Value, field string) (ir.Value, error) {
	if err := p.checkOpen(); err != nil {
		return 0, err
	}
	//
	instType, err := p.typeOf(instance)
	if err != nil {
		return 0, err
	}
	//
	sym := p.symbols().Intern(field)
	// Registry is consulted eagerly, hence unknown fields fail here.
	fieldType, err := ir.FieldAccess(p.parent.module, instType, sym)
	if err != nil {
		return 0, err
	}
	//
	return p.push(&ir.Read[F]{Instance: instance, Field: sym}, fieldType), nil
}

// WriteField appends a write of a given value into a given field of a given
// instance.  The value's type must match the field's declared type exactly.
func (p *FunctionBuilder[F]) WriteField(instance ir.Value, field string, value ir.Value) error {
	if err := p.checkOpen(); err != nil {
		return err
	}
	//
	instType, err := p.typeOf(instance)
	if err != nil {
		return err
	}
	//
	valType, err := p.typeOf(value)
	if err != nil {
		return err
	}
	//
	sym := p.symbols().Intern(field)
	//
	fieldType, err := ir.FieldAccess(p.parent.module, instType, sym)
	if err != nil {
		return err
	}
	//
	if err := ir.CheckWrite(fieldType, valType); err != nil {
		return err
	}
	//
	p.fn.Append(&ir.Write[F]{Instance: instance, Field: sym, Source: value})
	//
	return nil
}

// Const appends a constant field element, already normalised into [0, p).
func (p *FunctionBuilder[F]) Const(val F) (ir.Value, error) {
	if err := p.checkOpen(); err != nil {
		return 0, err
	}
	//
	return p.push(&ir.Const[F]{Value: val}, ir.Felt()), nil
}

// Add appends a modular addition of two field-element values.
func (p *FunctionBuilder[F]) Add(lhs ir.Value, rhs ir.Value) (ir.Value, error) {
	if err := p.checkFeltOperands(lhs, rhs); err != nil {
		return 0, err
	}
	//
	return p.push(&ir.Add[F]{Lhs: lhs, Rhs: rhs}, ir.Felt()), nil
}

// Neg appends a modular negation of a field-element value.
func (p *FunctionBuilder[F]) Neg(arg ir.Value) (ir.Value, error) {
	if err := p.checkFeltOperands(arg); err != nil {
		return 0, err
	}
	//
	return p.push(&ir.Neg[F]{Arg: arg}, ir.Felt()), nil
}

// Mul appends a modular multiplication of two field-element values.
func (p *FunctionBuilder[F]) Mul(lhs ir.Value, rhs ir.Value) (ir.Value, error) {
	if err := p.checkFeltOperands(lhs, rhs); err != nil {
		return 0, err
	}
	//
	return p.push(&ir.Mul[F]{Lhs: lhs, Rhs: rhs}, ir.Felt()), nil
}

// ConstrainEq appends an equality constraint between two values, which must
// have equal (scalar) types.
func (p *FunctionBuilder[F]) ConstrainEq(lhs ir.Value, rhs ir.Value) error {
	if err := p.checkOpen(); err != nil {
		return err
	}
	//
	lhsType, err := p.typeOf(lhs)
	if err != nil {
		return err
	}
	//
	rhsType, err := p.typeOf(rhs)
	if err != nil {
		return err
	}
	//
	if err := ir.CheckConstrainEq(lhsType, rhsType); err != nil {
		return err
	}
	//
	p.fn.Append(&ir.ConstrainEq[F]{Lhs: lhs, Rhs: rhs})
	//
	return nil
}

// Return appends the terminal return of this function: exactly one value
// (the constructed instance) for a witness-computation function, or none for
// a constraint-checking function.
func (p *FunctionBuilder[F]) Return(values ...ir.Value) error {
	if err := p.checkOpen(); err != nil {
		return err
	}
	//
	if len(values) > 1 {
		return fmt.Errorf("%w: at most one value may be returned", ir.ErrMalformedFunction)
	}
	//
	var (
		op      ir.Return[F]
		valType ir.Type
	)
	//
	if len(values) == 1 {
		typ, err := p.typeOf(values[0])
		if err != nil {
			return err
		}
		//
		op = ir.Return[F]{Val: values[0], HasVal: true}
		valType = typ
	}
	//
	if err := ir.CheckReturn(p.fn, valType, op.HasVal); err != nil {
		return err
	}
	//
	p.fn.Append(&op)
	p.returned = true
	//
	return nil
}

// Finish attaches the completed function to its struct.  The body must have
// been terminated by a return.
func (p *FunctionBuilder[F]) Finish() error {
	if !p.returned {
		return fmt.Errorf("%w: missing terminal return", ir.ErrMalformedFunction)
	}
	//
	return p.parent.def.Attach(p.fn)
}

func (p *FunctionBuilder[F]) symbols() *ir.SymbolTable {
	return p.parent.module.Symbols()
}

func (p *FunctionBuilder[F]) checkOpen() error {
	if p.returned {
		return ir.ErrOperationAfterReturn
	}
	//
	return nil
}

func (p *FunctionBuilder[F]) typeOf(value ir.Value) (ir.Type, error) {
	if int(value) >= len(p.types) {
		return nil, fmt.Errorf("%w: value %%%d", ir.ErrUseBeforeDefinition, value)
	}
	//
	return p.types[int(value)], nil
}

func (p *FunctionBuilder[F]) checkFeltOperands(operands ...ir.Value) error {
	if err := p.checkOpen(); err != nil {
		return err
	}
	//
	for _, operand := range operands {
		typ, err := p.typeOf(operand)
		if err != nil {
			return err
		}
		//
		if err := ir.CheckFelt(typ); err != nil {
			return err
		}
	}
	//
	return nil
}

func (p *FunctionBuilder[F]) push(op ir.Operation[F], typ ir.Type) ir.Value {
	value, _ := p.fn.Append(op)
	p.types = append(p.types, typ)
	//
	return value
}
