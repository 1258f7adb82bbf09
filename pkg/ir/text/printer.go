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
package text

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/Veridise/llzk-go/pkg/felt"
	"github.com/Veridise/llzk-go/pkg/ir"
)

// ErrUnserialisable indicates a module whose operand types could not be
// reconstructed, which arises only for modules which do not verify.
var ErrUnserialisable = errors.New("cannot serialise malformed module")

// WriteTo writes the canonical textual form of a module to a given writer.
// Output is deterministic: structs, fields and operations appear in
// declaration order, parameters print as %arg0, %arg1, etc and operation
// results are numbered densely from %0.  Serialising a module which does not
// verify fails with ErrUnserialisable, since operand types cannot then be
// reconstructed.
func WriteTo[F felt.Element[F]](m *ir.Module[F], w io.Writer) (int64, error) {
	p := printer[F]{m, w, 0, nil, 0}
	//
	p.printf("module attributes {veridise.lang = \"llzk\"} {\n")
	//
	for _, def := range m.Structs() {
		p.printStruct(def)
	}
	//
	p.printf("}\n")
	//
	return p.written, p.err
}

// String renders the canonical textual form of a module.
func String[F felt.Element[F]](m *ir.Module[F]) (string, error) {
	var builder strings.Builder
	//
	if _, err := WriteTo(m, &builder); err != nil {
		return "", err
	}
	//
	return builder.String(), nil
}

type printer[F felt.Element[F]] struct {
	module  *ir.Module[F]
	writer  io.Writer
	written int64
	err     error
	// Parameter count of the function currently being printed.
	nparams uint
}

func (p *printer[F]) printStruct(def *ir.StructDef[F]) {
	symbols := p.module.Symbols()
	//
	p.printf("  struct.def @%s<[%s]> {\n", symbols.Name(def.Name()), p.structParams(def))
	//
	for _, field := range def.Fields() {
		p.printf("    struct.field @%s : %s", symbols.Name(field.Name), p.typeString(field.Type))
		//
		if field.Public {
			p.printf(" {llzk.pub}")
		}
		//
		p.printf("\n")
	}
	//
	if fn := def.Compute(); fn != nil {
		p.printFunction(fn)
	}
	//
	if fn := def.Constrain(); fn != nil {
		p.printFunction(fn)
	}
	//
	p.printf("  }\n")
}

func (p *printer[F]) structParams(def *ir.StructDef[F]) string {
	names := make([]string, len(def.Params()))
	//
	for i, param := range def.Params() {
		names[i] = fmt.Sprintf("@%s", p.module.Symbols().Name(param))
	}
	//
	return strings.Join(names, ", ")
}

func (p *printer[F]) printFunction(fn *ir.Function[F]) {
	var attribute string
	//
	p.nparams = uint(len(fn.Params()))
	// Signature
	p.printf("    function.def @%s(", fn.Kind().Name())
	//
	for i, param := range fn.Params() {
		if i != 0 {
			p.printf(", ")
		}
		//
		p.printf("%%arg%d: %s", i, p.typeString(param.Type))
		//
		if param.Public {
			p.printf(" {llzk.pub = #llzk.pub}")
		}
	}
	//
	p.printf(")")
	//
	if fn.ReturnType() != nil {
		p.printf(" -> %s", p.typeString(fn.ReturnType()))
	}
	//
	if fn.Kind() == ir.WitnessComputation {
		attribute = "function.allow_witness"
	} else {
		attribute = "function.allow_constraint"
	}
	//
	p.printf(" attributes {%s} {\n", attribute)
	// Body
	types := ir.ValueTypes(p.module, fn)
	next := uint(len(fn.Params()))
	//
	for _, op := range fn.Body() {
		if op.HasResult() {
			p.printOperation(op, types, fmt.Sprintf("%%%d = ", next-uint(len(fn.Params()))))
			next++
		} else {
			p.printOperation(op, types, "")
		}
	}
	//
	p.printf("    }\n")
}

func (p *printer[F]) printOperation(op ir.Operation[F], types []ir.Type, binding string) {
	symbols := p.module.Symbols()
	//
	p.printf("      %s", binding)
	//
	switch op := op.(type) {
	case *ir.New[F]:
		p.printf("struct.new : %s", p.shortTypeString(op.Of))
	case *ir.Read[F]:
		instance := p.instanceType(types, op.Instance)
		fieldType, _ := p.module.FieldType(instance.Name, op.Field)
		p.printf("struct.readf %s[@%s] : %s, %s", p.valueName(op.Instance, types),
			symbols.Name(op.Field), p.shortTypeString(instance), p.typeString(fieldType))
	case *ir.Write[F]:
		instance := p.instanceType(types, op.Instance)
		p.printf("struct.writef %s[@%s] = %s : %s, %s", p.valueName(op.Instance, types),
			symbols.Name(op.Field), p.valueName(op.Source, types),
			p.shortTypeString(instance), p.operandType(types, op.Source))
	case *ir.Const[F]:
		p.printf("felt.const %s", op.Value.Text(10))
	case *ir.Add[F]:
		p.printf("felt.add %s, %s", p.valueName(op.Lhs, types), p.valueName(op.Rhs, types))
	case *ir.Mul[F]:
		p.printf("felt.mul %s, %s", p.valueName(op.Lhs, types), p.valueName(op.Rhs, types))
	case *ir.Neg[F]:
		p.printf("felt.neg %s", p.valueName(op.Arg, types))
	case *ir.ConstrainEq[F]:
		p.printf("constrain.eq %s, %s : %s", p.valueName(op.Lhs, types),
			p.valueName(op.Rhs, types), p.operandType(types, op.Lhs))
	case *ir.Return[F]:
		p.printf("function.return")
		//
		if op.HasVal {
			p.printf(" %s : %s", p.valueName(op.Val, types), p.operandType(types, op.Val))
		}
	default:
		panic("unreachable")
	}
	//
	p.printf("\n")
}

// valueName determines the canonical name for a given value, where the
// leading values are the parameters.
func (p *printer[F]) valueName(val ir.Value, types []ir.Type) string {
	if uint(val) < p.nparams {
		return fmt.Sprintf("%%arg%d", val)
	}
	//
	return fmt.Sprintf("%%%d", uint(val)-p.nparams)
}

// operandType renders the type of a given operand, failing when the type
// could not be reconstructed.
func (p *printer[F]) operandType(types []ir.Type, val ir.Value) string {
	if uint(val) >= uint(len(types)) || types[val] == nil {
		p.fail()
		return "?"
	}
	//
	return p.typeString(types[val])
}

// instanceType determines the struct type of a given operand, failing when
// the operand is not (or is not known to be) a struct instance.
func (p *printer[F]) instanceType(types []ir.Type, val ir.Value) ir.StructType {
	if uint(val) < uint(len(types)) {
		if st, ok := types[val].(ir.StructType); ok {
			return st
		}
	}
	//
	p.fail()
	//
	return ir.StructType{}
}

// typeString renders a type in its full form, as used in declarations.
func (p *printer[F]) typeString(t ir.Type) string {
	switch t := t.(type) {
	case ir.FeltType:
		return "!felt.type"
	case ir.StructType:
		return fmt.Sprintf("!struct.type<%s>", p.structTypeBody(t))
	case ir.TypeVar:
		return fmt.Sprintf("@%s", p.module.Symbols().Name(t.Name))
	default:
		p.fail()
		return "?"
	}
}

// shortTypeString renders a struct type in its abbreviated form, as used
// within operations.
func (p *printer[F]) shortTypeString(t ir.StructType) string {
	return fmt.Sprintf("<%s>", p.structTypeBody(t))
}

func (p *printer[F]) structTypeBody(t ir.StructType) string {
	args := make([]string, len(t.Params))
	//
	for i, arg := range t.Params {
		args[i] = p.typeString(arg)
	}
	//
	return fmt.Sprintf("@%s<[%s]>", p.module.Symbols().Name(t.Name), strings.Join(args, ", "))
}

func (p *printer[F]) fail() {
	if p.err == nil {
		p.err = ErrUnserialisable
	}
}

func (p *printer[F]) printf(format string, args ...any) {
	if p.err != nil {
		return
	}
	//
	n, err := fmt.Fprintf(p.writer, format, args...)
	p.written += int64(n)
	p.err = err
}
