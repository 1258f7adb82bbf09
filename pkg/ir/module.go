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

// Module is the top-level container for a set of struct definitions.  Struct
// declaration order is preserved and significant for textual output.  The
// module also acts as the struct registry: structs may be referenced before
// they are fully defined, provided they are declared by the time the module
// is verified.  Once built, a module is read-only (the verifier and printer
// never mutate it) and hence safe for concurrent reads.
type Module[F felt.Element[F]] struct {
	// Interned names for this module.
	symbols *SymbolTable
	// Struct definitions, in declaration order.
	structs []*StructDef[F]
	// Mapping from struct name to index within structs.
	index map[Symbol]int
}

// NewModule constructs an empty module.
func NewModule[F felt.Element[F]]() *Module[F] {
	return &Module[F]{
		symbols: NewSymbolTable(),
		structs: nil,
		index:   make(map[Symbol]int),
	}
}

// Symbols returns the symbol table owned by this module.
func (p *Module[F]) Symbols() *SymbolTable {
	return p.symbols
}

// Structs returns the struct definitions of this module, in declaration
// order.
func (p *Module[F]) Structs() []*StructDef[F] {
	return p.structs
}

// Declare registers a new struct with a given name and generic parameters,
// returning its (initially field-less) definition.  Struct names are unique
// within a module, hence declaring the same name twice fails with
// ErrDuplicateStruct.
func (p *Module[F]) Declare(name string, params ...string) (*StructDef[F], error) {
	sym := p.symbols.Intern(name)
	//
	if _, ok := p.index[sym]; ok {
		return nil, fmt.Errorf("%w: %s", ErrDuplicateStruct, name)
	}
	//
	paramSyms := make([]Symbol, len(params))
	for i, param := range params {
		paramSyms[i] = p.symbols.Intern(param)
	}
	//
	def := &StructDef[F]{
		symbols:    p.symbols,
		name:       sym,
		params:     paramSyms,
		fields:     nil,
		fieldIndex: make(map[Symbol]int),
	}
	//
	p.index[sym] = len(p.structs)
	p.structs = append(p.structs, def)
	//
	return def, nil
}

// Lookup resolves a struct name to its definition, if one was declared.
func (p *Module[F]) Lookup(name Symbol) (*StructDef[F], bool) {
	if i, ok := p.index[name]; ok {
		return p.structs[i], true
	}
	//
	return nil, false
}

// FieldType determines the declared type of a given field of a given struct.
// Fails with ErrUnknownStruct if the struct was never declared, or
// ErrNoSuchField if the struct does not declare the field.
func (p *Module[F]) FieldType(structName Symbol, fieldName Symbol) (Type, error) {
	def, ok := p.Lookup(structName)
	if !ok {
		return nil, fmt.Errorf("%w: @%s", ErrUnknownStruct, p.symbols.Name(structName))
	}
	//
	field, ok := def.Field(fieldName)
	if !ok {
		return nil, fmt.Errorf("%w: @%s has no field @%s", ErrNoSuchField,
			p.symbols.Name(structName), p.symbols.Name(fieldName))
	}
	//
	return field.Type, nil
}

// Field is a field declaration within a struct definition.
type Field struct {
	// Name of this field.
	Name Symbol
	// Declared type of this field.
	Type Type
	// Public marks this field as an externally visible signal.
	Public bool
}

// StructDef is a struct definition: a name, an ordered (possibly empty) list
// of generic parameters, an ordered list of fields, and the two designated
// functions.  Both functions are mandatory for a struct to be considered
// complete, but either may be absent whilst the struct is under construction
// (or when round-tripping fragments).
type StructDef[F felt.Element[F]] struct {
	// Symbol table of the enclosing module.
	symbols *SymbolTable
	name    Symbol
	params  []Symbol
	fields  []Field
	// Mapping from field name to index within fields.
	fieldIndex map[Symbol]int
	// Witness-computation function (@compute), if attached.
	compute *Function[F]
	// Constraint-checking function (@constrain), if attached.
	constrain *Function[F]
}

// Name returns the name of this struct.
func (p *StructDef[F]) Name() Symbol {
	return p.name
}

// Params returns the generic parameters of this struct, in declaration
// order.
func (p *StructDef[F]) Params() []Symbol {
	return p.params
}

// Fields returns the field declarations of this struct, in declaration
// order.
func (p *StructDef[F]) Fields() []Field {
	return p.fields
}

// Field resolves a field name within this struct.
func (p *StructDef[F]) Field(name Symbol) (Field, bool) {
	if i, ok := p.fieldIndex[name]; ok {
		return p.fields[i], true
	}
	//
	return Field{}, false
}

// AddField appends a field declaration to this struct.  Field names are
// unique within a struct, regardless of their types, hence a repeated name
// fails with ErrDuplicateField.
func (p *StructDef[F]) AddField(name Symbol, typ Type, public bool) error {
	if _, ok := p.fieldIndex[name]; ok {
		return fmt.Errorf("%w: @%s", ErrDuplicateField, p.symbols.Name(name))
	}
	//
	p.fieldIndex[name] = len(p.fields)
	p.fields = append(p.fields, Field{name, typ, public})
	//
	return nil
}

// SelfType returns the instance type of this struct, with its generic
// parameters as arguments.
func (p *StructDef[F]) SelfType() StructType {
	params := make([]Type, len(p.params))
	for i, param := range p.params {
		params[i] = TypeVar{param}
	}
	//
	return StructType{p.name, params}
}

// Compute returns the witness-computation function of this struct, or nil if
// absent.
func (p *StructDef[F]) Compute() *Function[F] {
	return p.compute
}

// Constrain returns the constraint-checking function of this struct, or nil
// if absent.
func (p *StructDef[F]) Constrain() *Function[F] {
	return p.constrain
}

// Attach sets one of the two designated functions of this struct, according
// to the function's kind.  Attaching a second function of the same kind
// fails.
func (p *StructDef[F]) Attach(fn *Function[F]) error {
	switch fn.Kind() {
	case WitnessComputation:
		if p.compute != nil {
			return fmt.Errorf("%w: struct already has a witness-computation function", ErrMalformedFunction)
		}
		//
		p.compute = fn
	case ConstraintChecking:
		if p.constrain != nil {
			return fmt.Errorf("%w: struct already has a constraint-checking function", ErrMalformedFunction)
		}
		//
		p.constrain = fn
	default:
		panic("unreachable")
	}
	//
	return nil
}
