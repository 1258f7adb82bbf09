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
package lex

import "github.com/Veridise/llzk-go/pkg/util/source"

// Token associates a tag with a given range of characters in the text being
// scanned.
type Token struct {
	Kind uint
	Span source.Span
}

// LexRule associates groups of matching characters with a given tag.
//
// nolint
type LexRule[T any] struct {
	scanner Scanner[T]
	tag     uint
}

// Rule constructs a new lexing rule which maps matching characters to a given
// tag.
func Rule[T any](scanner Scanner[T], tag uint) LexRule[T] {
	return LexRule[T]{scanner, tag}
}

// Lexer tokenises a given input by repeatedly applying a fixed set of lexing
// rules.  Rules are tried in order of declaration, hence more specific rules
// should come first.
type Lexer[T any] struct {
	items []T
	index int
	rules []LexRule[T]
}

// NewLexer constructs a new lexer over a given input with a given set of
// lexing rules.
func NewLexer[T any](input []T, rules ...LexRule[T]) *Lexer[T] {
	return &Lexer[T]{input, 0, rules}
}

// Index returns the current position within the input.
func (p *Lexer[T]) Index() uint {
	return uint(p.index)
}

// Remaining determines how many characters of the input are left.
func (p *Lexer[T]) Remaining() uint {
	return uint(max(0, len(p.items)-p.index))
}

// Collect applies the lexing rules from the current position until either the
// input is exhausted or no rule matches.  In the latter case, lexing simply
// stops with Index identifying the offending position.
func (p *Lexer[T]) Collect() []Token {
	var tokens []Token
	//
	for p.index <= len(p.items) {
		token, ok := p.match()
		if !ok {
			break
		}
		//
		tokens = append(tokens, token)
		//
		if p.index == len(p.items) {
			// EOF condition
			p.index++
		} else {
			p.index = token.Span.End()
		}
	}
	//
	return tokens
}

// match tries each rule in turn at the current position, constructing a token
// from the first one which succeeds.
func (p *Lexer[T]) match() (Token, bool) {
	for _, r := range p.rules {
		if n := r.scanner(p.items[p.index:]); n > 0 {
			end := min(len(p.items), p.index+int(n))
			//
			return Token{r.tag, source.NewSpan(p.index, end)}, true
		}
	}
	// fail
	return Token{}, false
}
