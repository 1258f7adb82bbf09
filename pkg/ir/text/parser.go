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
	"fmt"
	"math/big"

	"github.com/Veridise/llzk-go/pkg/felt"
	"github.com/Veridise/llzk-go/pkg/ir"
	"github.com/Veridise/llzk-go/pkg/util/source"
	"github.com/Veridise/llzk-go/pkg/util/source/lex"
)

// Parse a given source file into a module.  Parsing enforces the grammar and
// name uniqueness (structs, fields, values) but not the dialect rules: a
// parsed module may still fail verification, for example when a value is used
// before it is defined.  Hence the usual pipeline is Parse followed by
// ir.Verify.
func Parse[F felt.Element[F]](srcfile *source.File) (*ir.Module[F], []source.SyntaxError) {
	tokens, errs := Lex(srcfile)
	//
	if len(errs) > 0 {
		return nil, errs
	}
	//
	parser := &parser[F]{srcfile, tokens, 0, ir.NewModule[F]()}
	//
	if err := parser.parseModule(); err != nil {
		return nil, []source.SyntaxError{*err}
	}
	//
	return parser.module, nil
}

type parser[F felt.Element[F]] struct {
	srcfile *source.File
	tokens  []lex.Token
	index   int
	module  *ir.Module[F]
}

// pendingOp is a parsed but unresolved operation.  Operands are held as raw
// value-name tokens until the whole body has been parsed, so that a body
// referring to a value defined further down still parses (and is then
// rejected by the verifier rather than the parser).
type pendingOp[F felt.Element[F]] struct {
	// Mnemonic token (e.g. "struct.readf").
	mnemonic lex.Token
	// Result name token, if the operation produces a result.
	result *lex.Token
	// Operand name tokens, in operand order.
	operands []lex.Token
	// Field being accessed (struct.readf / struct.writef only).
	field ir.Symbol
	// Instance type being constructed (struct.new only).
	of ir.StructType
	// Constant value (felt.const only).
	constant F
	// Whether a value is returned (function.return only).
	hasValue bool
}

// ============================================================================
// Module / struct structure
// ============================================================================

func (p *parser[F]) parseModule() *source.SyntaxError {
	// module attributes {veridise.lang = "llzk"} {
	if err := p.expectKeywords("module", "attributes"); err != nil {
		return err
	} else if _, err := p.expect(LCURLY); err != nil {
		return err
	} else if err := p.expectKeywords("veridise.lang"); err != nil {
		return err
	} else if _, err := p.expect(EQUALS); err != nil {
		return err
	}
	//
	lang, err := p.expect(STRING)
	if err != nil {
		return err
	} else if p.text(lang) != "\"llzk\"" {
		return p.syntaxError(lang, "expected language \"llzk\"")
	}
	//
	if _, err := p.expect(RCURLY); err != nil {
		return err
	} else if _, err := p.expect(LCURLY); err != nil {
		return err
	}
	// Struct definitions
	for p.lookahead().Kind != RCURLY && p.lookahead().Kind != END_OF {
		if err := p.parseStruct(); err != nil {
			return err
		}
	}
	//
	if _, err := p.expect(RCURLY); err != nil {
		return err
	}
	//
	_, err2 := p.expect(END_OF)
	//
	return err2
}

func (p *parser[F]) parseStruct() *source.SyntaxError {
	if err := p.expectKeywords("struct.def"); err != nil {
		return err
	}
	//
	name, err := p.expect(SYMBOL_NAME)
	if err != nil {
		return err
	}
	// Generic parameters
	params, err := p.parseStructParams()
	if err != nil {
		return err
	}
	//
	def, derr := p.module.Declare(p.symbol(name), params...)
	if derr != nil {
		return p.syntaxError(name, derr.Error())
	}
	//
	if _, err := p.expect(LCURLY); err != nil {
		return err
	}
	// Members
	for {
		lookahead := p.lookahead()
		//
		switch {
		case lookahead.Kind == IDENTIFIER && p.text(lookahead) == "struct.field":
			if err := p.parseField(def); err != nil {
				return err
			}
		case lookahead.Kind == IDENTIFIER && p.text(lookahead) == "function.def":
			if err := p.parseFunction(def); err != nil {
				return err
			}
		case lookahead.Kind == RCURLY:
			p.index++
			return nil
		default:
			return p.syntaxError(lookahead, "expected struct member")
		}
	}
}

// parseStructParams parses the generic parameter list "<[@T, @U]>" of a
// struct definition, returning the parameter names.
func (p *parser[F]) parseStructParams() ([]string, *source.SyntaxError) {
	var params []string
	//
	if _, err := p.expect(LANGLE); err != nil {
		return nil, err
	} else if _, err := p.expect(LSQUARE); err != nil {
		return nil, err
	}
	//
	for p.lookahead().Kind == SYMBOL_NAME {
		param, _ := p.expect(SYMBOL_NAME)
		params = append(params, p.symbol(param))
		//
		if p.lookahead().Kind != COMMA {
			break
		}
		//
		p.index++
	}
	//
	if _, err := p.expect(RSQUARE); err != nil {
		return nil, err
	} else if _, err := p.expect(RANGLE); err != nil {
		return nil, err
	}
	//
	return params, nil
}

func (p *parser[F]) parseField(def *ir.StructDef[F]) *source.SyntaxError {
	var public bool
	// struct.field @name : type {llzk.pub}
	if err := p.expectKeywords("struct.field"); err != nil {
		return err
	}
	//
	name, err := p.expect(SYMBOL_NAME)
	if err != nil {
		return err
	} else if _, err := p.expect(COLON); err != nil {
		return err
	}
	//
	typ, err := p.parseType()
	if err != nil {
		return err
	}
	// Optional visibility attribute
	if p.lookahead().Kind == LCURLY {
		p.index++
		//
		if err := p.expectKeywords("llzk.pub"); err != nil {
			return err
		} else if _, err := p.expect(RCURLY); err != nil {
			return err
		}
		//
		public = true
	}
	//
	if aerr := def.AddField(p.module.Symbols().Intern(p.symbol(name)), typ, public); aerr != nil {
		return p.syntaxError(name, aerr.Error())
	}
	//
	return nil
}

// ============================================================================
// Functions
// ============================================================================

func (p *parser[F]) parseFunction(def *ir.StructDef[F]) *source.SyntaxError {
	if err := p.expectKeywords("function.def"); err != nil {
		return err
	}
	//
	name, err := p.expect(SYMBOL_NAME)
	if err != nil {
		return err
	}
	// Parameters
	params, paramNames, err := p.parseFunctionParams()
	if err != nil {
		return err
	}
	// Optional return type
	var returnType ir.Type
	//
	if p.lookahead().Kind == RIGHTARROW {
		p.index++
		//
		if returnType, err = p.parseType(); err != nil {
			return err
		}
	}
	// Kind attribute
	kind, err := p.parseFunctionKind()
	if err != nil {
		return err
	} else if p.symbol(name) != kind.Name() {
		return p.syntaxError(name, fmt.Sprintf("expected function name @%s", kind.Name()))
	}
	//
	fn := ir.NewFunction[F](kind, params, returnType)
	// Body
	if _, err := p.expect(LCURLY); err != nil {
		return err
	}
	//
	var body []pendingOp[F]
	//
	for p.lookahead().Kind != RCURLY && p.lookahead().Kind != END_OF {
		op, err := p.parseOperation()
		if err != nil {
			return err
		}
		//
		body = append(body, op)
	}
	//
	if _, err := p.expect(RCURLY); err != nil {
		return err
	}
	// Resolve value names and populate the function
	if err := p.resolve(fn, paramNames, body); err != nil {
		return err
	}
	//
	if aerr := def.Attach(fn); aerr != nil {
		return p.syntaxError(name, aerr.Error())
	}
	//
	return nil
}

// parseFunctionParams parses "(%arg0: !felt.type {llzk.pub = #llzk.pub},
// ...)", returning the parameters along with their name tokens.
func (p *parser[F]) parseFunctionParams() ([]ir.Param, []lex.Token, *source.SyntaxError) {
	var (
		params []ir.Param
		names  []lex.Token
	)
	//
	if _, err := p.expect(LPAREN); err != nil {
		return nil, nil, err
	}
	//
	for p.lookahead().Kind == VALUE_NAME {
		var public bool
		//
		name, _ := p.expect(VALUE_NAME)
		//
		if _, err := p.expect(COLON); err != nil {
			return nil, nil, err
		}
		//
		typ, err := p.parseType()
		if err != nil {
			return nil, nil, err
		}
		// Optional visibility attribute
		if p.lookahead().Kind == LCURLY {
			p.index++
			//
			if err := p.expectKeywords("llzk.pub"); err != nil {
				return nil, nil, err
			} else if _, err := p.expect(EQUALS); err != nil {
				return nil, nil, err
			} else if _, err := p.expect(ATTR_NAME); err != nil {
				return nil, nil, err
			} else if _, err := p.expect(RCURLY); err != nil {
				return nil, nil, err
			}
			//
			public = true
		}
		//
		params = append(params, ir.Param{Type: typ, Public: public})
		names = append(names, name)
		//
		if p.lookahead().Kind != COMMA {
			break
		}
		//
		p.index++
	}
	//
	if _, err := p.expect(RPAREN); err != nil {
		return nil, nil, err
	}
	//
	return params, names, nil
}

// parseFunctionKind parses "attributes {function.allow_witness}" (or
// allow_constraint), determining the function kind.
func (p *parser[F]) parseFunctionKind() (ir.FunctionKind, *source.SyntaxError) {
	if err := p.expectKeywords("attributes"); err != nil {
		return 0, err
	} else if _, err := p.expect(LCURLY); err != nil {
		return 0, err
	}
	//
	attr, err := p.expect(IDENTIFIER)
	if err != nil {
		return 0, err
	}
	//
	var kind ir.FunctionKind
	//
	switch p.text(attr) {
	case "function.allow_witness":
		kind = ir.WitnessComputation
	case "function.allow_constraint":
		kind = ir.ConstraintChecking
	default:
		return 0, p.syntaxError(attr, "unknown function attribute")
	}
	//
	if _, err := p.expect(RCURLY); err != nil {
		return 0, err
	}
	//
	return kind, nil
}

// ============================================================================
// Operations
// ============================================================================

func (p *parser[F]) parseOperation() (pendingOp[F], *source.SyntaxError) {
	var (
		empty  pendingOp[F]
		result *lex.Token
	)
	// Optional result binding
	if p.lookahead().Kind == VALUE_NAME {
		token, _ := p.expect(VALUE_NAME)
		result = &token
		//
		if _, err := p.expect(EQUALS); err != nil {
			return empty, err
		}
	}
	//
	mnemonic, err := p.expect(IDENTIFIER)
	if err != nil {
		return empty, err
	}
	//
	var (
		op      pendingOp[F]
		defines bool
	)
	//
	switch p.text(mnemonic) {
	case "struct.new":
		op, defines, err = p.parseNew(mnemonic)
	case "struct.readf":
		op, defines, err = p.parseReadField(mnemonic)
	case "struct.writef":
		op, defines, err = p.parseWriteField(mnemonic)
	case "felt.const":
		op, defines, err = p.parseConst(mnemonic)
	case "felt.add", "felt.mul":
		op, defines, err = p.parseBinary(mnemonic)
	case "felt.neg":
		op, defines, err = p.parseUnary(mnemonic)
	case "constrain.eq":
		op, defines, err = p.parseConstrainEq(mnemonic)
	case "function.return":
		op, defines, err = p.parseReturn(mnemonic)
	default:
		return empty, p.syntaxError(mnemonic, "unknown operation")
	}
	//
	if err != nil {
		return empty, err
	} else if defines && result == nil {
		return empty, p.syntaxError(mnemonic, "operation requires a result name")
	} else if !defines && result != nil {
		return empty, p.syntaxError(*result, "operation does not produce a result")
	}
	//
	op.result = result
	//
	return op, nil
}

// %r = struct.new : <@Name<[]>>
func (p *parser[F]) parseNew(mnemonic lex.Token) (pendingOp[F], bool, *source.SyntaxError) {
	var empty pendingOp[F]
	//
	if _, err := p.expect(COLON); err != nil {
		return empty, true, err
	}
	//
	of, err := p.parseInstanceType()
	if err != nil {
		return empty, true, err
	}
	//
	return pendingOp[F]{mnemonic: mnemonic, of: of}, true, nil
}

// %r = struct.readf %v[@field] : <@Name<[]>>, !felt.type
func (p *parser[F]) parseReadField(mnemonic lex.Token) (pendingOp[F], bool, *source.SyntaxError) {
	var empty pendingOp[F]
	//
	instance, field, err := p.parseFieldAccess()
	if err != nil {
		return empty, true, err
	}
	//
	if _, err := p.expect(COLON); err != nil {
		return empty, true, err
	} else if _, err := p.parseInstanceType(); err != nil {
		return empty, true, err
	} else if _, err := p.expect(COMMA); err != nil {
		return empty, true, err
	} else if _, err := p.parseType(); err != nil {
		return empty, true, err
	}
	//
	return pendingOp[F]{mnemonic: mnemonic, operands: []lex.Token{instance}, field: field}, true, nil
}

// struct.writef %v[@field] = %w : <@Name<[]>>, !felt.type
func (p *parser[F]) parseWriteField(mnemonic lex.Token) (pendingOp[F], bool, *source.SyntaxError) {
	var empty pendingOp[F]
	//
	instance, field, err := p.parseFieldAccess()
	if err != nil {
		return empty, false, err
	}
	//
	if _, err := p.expect(EQUALS); err != nil {
		return empty, false, err
	}
	//
	src, err := p.expect(VALUE_NAME)
	if err != nil {
		return empty, false, err
	}
	//
	if _, err := p.expect(COLON); err != nil {
		return empty, false, err
	} else if _, err := p.parseInstanceType(); err != nil {
		return empty, false, err
	} else if _, err := p.expect(COMMA); err != nil {
		return empty, false, err
	} else if _, err := p.parseType(); err != nil {
		return empty, false, err
	}
	//
	return pendingOp[F]{mnemonic: mnemonic, operands: []lex.Token{instance, src}, field: field}, false, nil
}

// parseFieldAccess parses "%v[@field]", common to struct.readf and
// struct.writef.
func (p *parser[F]) parseFieldAccess() (lex.Token, ir.Symbol, *source.SyntaxError) {
	instance, err := p.expect(VALUE_NAME)
	if err != nil {
		return instance, 0, err
	}
	//
	if _, err := p.expect(LSQUARE); err != nil {
		return instance, 0, err
	}
	//
	field, err := p.expect(SYMBOL_NAME)
	if err != nil {
		return instance, 0, err
	}
	//
	if _, err := p.expect(RSQUARE); err != nil {
		return instance, 0, err
	}
	//
	return instance, p.module.Symbols().Intern(p.symbol(field)), nil
}

// %r = felt.const 42
func (p *parser[F]) parseConst(mnemonic lex.Token) (pendingOp[F], bool, *source.SyntaxError) {
	var empty pendingOp[F]
	//
	literal, err := p.expect(NUMBER)
	if err != nil {
		return empty, true, err
	}
	//
	val, ok := big.NewInt(0).SetString(p.text(literal), 10)
	if !ok {
		return empty, true, p.syntaxError(literal, "malformed integer literal")
	}
	//
	constant, ferr := felt.FromBigInt[F](val)
	if ferr != nil {
		return empty, true, p.syntaxError(literal, ferr.Error())
	}
	//
	return pendingOp[F]{mnemonic: mnemonic, constant: constant}, true, nil
}

// %r = felt.add %a, %b
func (p *parser[F]) parseBinary(mnemonic lex.Token) (pendingOp[F], bool, *source.SyntaxError) {
	var empty pendingOp[F]
	//
	lhs, err := p.expect(VALUE_NAME)
	if err != nil {
		return empty, true, err
	}
	//
	if _, err := p.expect(COMMA); err != nil {
		return empty, true, err
	}
	//
	rhs, err := p.expect(VALUE_NAME)
	if err != nil {
		return empty, true, err
	}
	//
	return pendingOp[F]{mnemonic: mnemonic, operands: []lex.Token{lhs, rhs}}, true, nil
}

// %r = felt.neg %a
func (p *parser[F]) parseUnary(mnemonic lex.Token) (pendingOp[F], bool, *source.SyntaxError) {
	var empty pendingOp[F]
	//
	arg, err := p.expect(VALUE_NAME)
	if err != nil {
		return empty, true, err
	}
	//
	return pendingOp[F]{mnemonic: mnemonic, operands: []lex.Token{arg}}, true, nil
}

// constrain.eq %a, %b : !felt.type
func (p *parser[F]) parseConstrainEq(mnemonic lex.Token) (pendingOp[F], bool, *source.SyntaxError) {
	var empty pendingOp[F]
	//
	lhs, err := p.expect(VALUE_NAME)
	if err != nil {
		return empty, false, err
	}
	//
	if _, err := p.expect(COMMA); err != nil {
		return empty, false, err
	}
	//
	rhs, err := p.expect(VALUE_NAME)
	if err != nil {
		return empty, false, err
	}
	//
	if _, err := p.expect(COLON); err != nil {
		return empty, false, err
	} else if _, err := p.parseType(); err != nil {
		return empty, false, err
	}
	//
	return pendingOp[F]{mnemonic: mnemonic, operands: []lex.Token{lhs, rhs}}, false, nil
}

// function.return [%v : type]
func (p *parser[F]) parseReturn(mnemonic lex.Token) (pendingOp[F], bool, *source.SyntaxError) {
	var empty pendingOp[F]
	//
	if p.lookahead().Kind != VALUE_NAME {
		return pendingOp[F]{mnemonic: mnemonic}, false, nil
	}
	//
	val, _ := p.expect(VALUE_NAME)
	//
	if _, err := p.expect(COLON); err != nil {
		return empty, false, err
	} else if _, err := p.parseType(); err != nil {
		return empty, false, err
	}
	//
	return pendingOp[F]{mnemonic: mnemonic, operands: []lex.Token{val}, hasValue: true}, false, nil
}

// ============================================================================
// Types
// ============================================================================

func (p *parser[F]) parseType() (ir.Type, *source.SyntaxError) {
	lookahead := p.lookahead()
	//
	switch {
	case lookahead.Kind == TYPE_NAME && p.text(lookahead) == "!felt.type":
		p.index++
		return ir.Felt(), nil
	case lookahead.Kind == TYPE_NAME && p.text(lookahead) == "!struct.type":
		p.index++
		//
		if _, err := p.expect(LANGLE); err != nil {
			return nil, err
		}
		//
		typ, err := p.parseStructTypeBody()
		if err != nil {
			return nil, err
		}
		//
		if _, err := p.expect(RANGLE); err != nil {
			return nil, err
		}
		//
		return typ, nil
	case lookahead.Kind == SYMBOL_NAME:
		p.index++
		return ir.TypeVar{Name: p.module.Symbols().Intern(p.symbol(lookahead))}, nil
	default:
		return nil, p.syntaxError(lookahead, "expected type")
	}
}

// parseInstanceType parses the abbreviated instance type "<@Name<[]>>" used
// within struct.new, struct.readf and struct.writef.
func (p *parser[F]) parseInstanceType() (ir.StructType, *source.SyntaxError) {
	var empty ir.StructType
	//
	if _, err := p.expect(LANGLE); err != nil {
		return empty, err
	}
	//
	typ, err := p.parseStructTypeBody()
	if err != nil {
		return empty, err
	}
	//
	if _, err := p.expect(RANGLE); err != nil {
		return empty, err
	}
	//
	return typ, nil
}

// parseStructTypeBody parses "@Name<[args]>".
func (p *parser[F]) parseStructTypeBody() (ir.StructType, *source.SyntaxError) {
	var empty ir.StructType
	//
	name, err := p.expect(SYMBOL_NAME)
	if err != nil {
		return empty, err
	}
	//
	if _, err := p.expect(LANGLE); err != nil {
		return empty, err
	} else if _, err := p.expect(LSQUARE); err != nil {
		return empty, err
	}
	//
	var args []ir.Type
	//
	for p.lookahead().Kind != RSQUARE && p.lookahead().Kind != END_OF {
		arg, err := p.parseType()
		if err != nil {
			return empty, err
		}
		//
		args = append(args, arg)
		//
		if p.lookahead().Kind != COMMA {
			break
		}
		//
		p.index++
	}
	//
	if _, err := p.expect(RSQUARE); err != nil {
		return empty, err
	} else if _, err := p.expect(RANGLE); err != nil {
		return empty, err
	}
	//
	return ir.NewStructType(p.module.Symbols().Intern(p.symbol(name)), args...), nil
}

// ============================================================================
// Value resolution
// ============================================================================

// resolve maps value names to positional values and populates the function
// body.  Names are gathered in a first pass (parameters, then results in
// order), hence operands may legitimately resolve to values defined later in
// the body.
func (p *parser[F]) resolve(fn *ir.Function[F], paramNames []lex.Token, body []pendingOp[F]) *source.SyntaxError {
	env := make(map[string]ir.Value)
	//
	for i, token := range paramNames {
		name := p.text(token)
		//
		if _, ok := env[name]; ok {
			return p.syntaxError(token, fmt.Sprintf("value %s already defined", name))
		}
		//
		env[name] = ir.Value(i)
	}
	//
	next := ir.Value(len(paramNames))
	//
	for _, op := range body {
		if op.result == nil {
			continue
		}
		//
		name := p.text(*op.result)
		//
		if _, ok := env[name]; ok {
			return p.syntaxError(*op.result, fmt.Sprintf("value %s already defined", name))
		}
		//
		env[name] = next
		next++
	}
	// Second pass constructs the operations proper.
	for _, op := range body {
		operands := make([]ir.Value, len(op.operands))
		//
		for i, token := range op.operands {
			val, ok := env[p.text(token)]
			if !ok {
				return p.syntaxError(token, fmt.Sprintf("unknown value %s", p.text(token)))
			}
			//
			operands[i] = val
		}
		//
		fn.Append(p.constructOperation(op, operands))
	}
	//
	return nil
}

// constructOperation finalises a pending operation once its operands have
// been resolved.
func (p *parser[F]) constructOperation(op pendingOp[F], operands []ir.Value) ir.Operation[F] {
	switch p.text(op.mnemonic) {
	case "struct.new":
		return &ir.New[F]{Of: op.of}
	case "struct.readf":
		return &ir.Read[F]{Instance: operands[0], Field: op.field}
	case "struct.writef":
		return &ir.Write[F]{Instance: operands[0], Field: op.field, Source: operands[1]}
	case "felt.const":
		return &ir.Const[F]{Value: op.constant}
	case "felt.add":
		return &ir.Add[F]{Lhs: operands[0], Rhs: operands[1]}
	case "felt.mul":
		return &ir.Mul[F]{Lhs: operands[0], Rhs: operands[1]}
	case "felt.neg":
		return &ir.Neg[F]{Arg: operands[0]}
	case "constrain.eq":
		return &ir.ConstrainEq[F]{Lhs: operands[0], Rhs: operands[1]}
	case "function.return":
		if op.hasValue {
			return &ir.Return[F]{Val: operands[0], HasVal: true}
		}
		//
		return &ir.Return[F]{}
	default:
		panic("unreachable")
	}
}

// ============================================================================
// Helpers
// ============================================================================

// lookahead returns the next token without consuming it.
func (p *parser[F]) lookahead() lex.Token {
	return p.tokens[p.index]
}

// expect consumes the next token, which must have the given kind.
func (p *parser[F]) expect(kind uint) (lex.Token, *source.SyntaxError) {
	token := p.tokens[p.index]
	//
	if token.Kind != kind {
		return token, p.syntaxError(token, "unexpected token")
	}
	//
	if token.Kind != END_OF {
		p.index++
	}
	//
	return token, nil
}

// expectKeywords consumes one identifier token per given word, each of which
// must match exactly.
func (p *parser[F]) expectKeywords(words ...string) *source.SyntaxError {
	for _, word := range words {
		token, err := p.expect(IDENTIFIER)
		//
		if err != nil {
			return err
		} else if p.text(token) != word {
			return p.syntaxError(token, fmt.Sprintf("expected \"%s\"", word))
		}
	}
	//
	return nil
}

// text returns the source text of a given token.
func (p *parser[F]) text(token lex.Token) string {
	contents := p.srcfile.Contents()
	start, end := token.Span.Start(), min(token.Span.End(), len(contents))
	//
	return string(contents[start:end])
}

// symbol returns the name of a symbol token, without its sigil.
func (p *parser[F]) symbol(token lex.Token) string {
	return p.text(token)[1:]
}

func (p *parser[F]) syntaxError(token lex.Token, msg string) *source.SyntaxError {
	return p.srcfile.SyntaxError(token.Span, msg)
}
