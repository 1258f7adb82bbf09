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

// Package text implements the textual form of the dialect: a lexer and
// recursive-descent parser for reading modules, and a deterministic printer
// for writing them back out.  Parsing the printer's output yields a module
// structurally identical to the original.
package text

import (
	"github.com/Veridise/llzk-go/pkg/util/source"
	"github.com/Veridise/llzk-go/pkg/util/source/lex"
)

// END_OF signals "end of file"
const END_OF uint = 0

// WHITESPACE signals whitespace
const WHITESPACE uint = 1

// COMMENT signals "// ... \n"
const COMMENT uint = 2

// LCURLY signals "{"
const LCURLY uint = 3

// RCURLY signals "}"
const RCURLY uint = 4

// LPAREN signals "("
const LPAREN uint = 5

// RPAREN signals ")"
const RPAREN uint = 6

// LSQUARE signals "["
const LSQUARE uint = 7

// RSQUARE signals "]"
const RSQUARE uint = 8

// LANGLE signals "<"
const LANGLE uint = 9

// RANGLE signals ">"
const RANGLE uint = 10

// COLON signals ":"
const COLON uint = 11

// COMMA signals ","
const COMMA uint = 12

// EQUALS signals "="
const EQUALS uint = 13

// RIGHTARROW signals "->"
const RIGHTARROW uint = 14

// NUMBER signals a (decimal) integer literal
const NUMBER uint = 15

// STRING signals a quoted string
const STRING uint = 16

// IDENTIFIER signals a bare (possibly dotted) identifier, such as an
// operation mnemonic or attribute name
const IDENTIFIER uint = 20

// SYMBOL_NAME signals a symbol reference "@name"
const SYMBOL_NAME uint = 21

// VALUE_NAME signals a value reference "%name" or "%0"
const VALUE_NAME uint = 22

// TYPE_NAME signals a type literal "!felt.type" etc
const TYPE_NAME uint = 23

// ATTR_NAME signals an attribute literal "#llzk.pub"
const ATTR_NAME uint = 24

// Rule for describing whitespace
var whitespace lex.Scanner[rune] = lex.Many(lex.Or(lex.Unit(' '), lex.Unit('\t'), lex.Unit('\n'), lex.Unit('\r')))

// Rule for describing (decimal) integer literals.  Field constants can be
// hundreds of bits wide, hence no length restriction applies here.
var number lex.Scanner[rune] = lex.And(lex.Within('0', '9'), lex.Many(lex.Within('0', '9')))

var identifierStart lex.Scanner[rune] = lex.Or(
	lex.Unit('_'),
	lex.Within('a', 'z'),
	lex.Within('A', 'Z'))

// Identifiers carry embedded dots, as in "struct.def" or "veridise.lang".
var identifierRest lex.Scanner[rune] = lex.Many(lex.Or(
	lex.Unit('_'),
	lex.Unit('.'),
	lex.Within('0', '9'),
	lex.Within('a', 'z'),
	lex.Within('A', 'Z')))

// Rule for describing identifiers
var identifier lex.Scanner[rune] = lex.And(identifierStart, identifierRest)

// Value names are either named ("%self") or numbered ("%0").
var valueName lex.Scanner[rune] = lex.Sequence(lex.Unit('%'),
	lex.Or(identifier, lex.And(lex.Within('0', '9'), lex.Many(lex.Within('0', '9')))))

// Symbol references, as in "@Signal" or "@reg".
var symbolName lex.Scanner[rune] = lex.Sequence(lex.Unit('@'), identifier)

// Type literals, as in "!felt.type".
var typeName lex.Scanner[rune] = lex.Sequence(lex.Unit('!'), identifier)

// Attribute literals, as in "#llzk.pub".
var attrName lex.Scanner[rune] = lex.Sequence(lex.Unit('#'), identifier)

// Rule for describing strings in quotes
var strung lex.Scanner[rune] = lex.Sequence(lex.Unit('"'), lex.Many(lex.Not('"')), lex.Unit('"'))

// Comments run from '//' until a newline or EOF.
var comment lex.Scanner[rune] = lex.And(lex.String("//"), lex.Until('\n'))

// lexing rules
var rules []lex.LexRule[rune] = []lex.LexRule[rune]{
	lex.Rule(comment, COMMENT),
	lex.Rule(lex.Unit('{'), LCURLY),
	lex.Rule(lex.Unit('}'), RCURLY),
	lex.Rule(lex.Unit('('), LPAREN),
	lex.Rule(lex.Unit(')'), RPAREN),
	lex.Rule(lex.Unit('['), LSQUARE),
	lex.Rule(lex.Unit(']'), RSQUARE),
	lex.Rule(lex.Unit('<'), LANGLE),
	lex.Rule(lex.Unit('>'), RANGLE),
	lex.Rule(lex.Unit(':'), COLON),
	lex.Rule(lex.Unit(','), COMMA),
	lex.Rule(lex.Unit('-', '>'), RIGHTARROW),
	lex.Rule(lex.Unit('='), EQUALS),
	lex.Rule(whitespace, WHITESPACE),
	lex.Rule(number, NUMBER),
	lex.Rule(strung, STRING),
	lex.Rule(valueName, VALUE_NAME),
	lex.Rule(symbolName, SYMBOL_NAME),
	lex.Rule(typeName, TYPE_NAME),
	lex.Rule(attrName, ATTR_NAME),
	lex.Rule(identifier, IDENTIFIER),
	lex.Rule(lex.Eof[rune](), END_OF),
}

// Lex a given source file into a sequence of zero or more tokens, along with
// any syntax errors arising.  Whitespace and comments are discarded.
func Lex(srcfile *source.File) ([]lex.Token, []source.SyntaxError) {
	var (
		lexer  = lex.NewLexer(srcfile.Contents(), rules...)
		tokens = lexer.Collect()
	)
	// Check whether anything was left (if so this is an error)
	if lexer.Remaining() != 0 {
		start, end := lexer.Index(), lexer.Index()+lexer.Remaining()
		err := srcfile.SyntaxError(source.NewSpan(int(start), int(end)), "unknown text encountered")
		// errors
		return nil, []source.SyntaxError{*err}
	}
	// Drop whitespace and comments
	filtered := tokens[:0]
	//
	for _, token := range tokens {
		if token.Kind != WHITESPACE && token.Kind != COMMENT {
			filtered = append(filtered, token)
		}
	}
	//
	return filtered, nil
}
