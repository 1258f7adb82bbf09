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

// Symbol is an interned name.  Symbols within the same table compare equal
// exactly when their names are equal, hence struct and field lookups reduce
// to integer comparisons whilst the original spelling is retained for
// serialization.
type Symbol uint32

// SymbolTable interns names, mapping each distinct name to a dense Symbol.
// A table is owned by the enclosing module; symbols from different tables
// are not comparable.
type SymbolTable struct {
	names []string
	index map[string]Symbol
}

// NewSymbolTable constructs an empty symbol table.
func NewSymbolTable() *SymbolTable {
	return &SymbolTable{
		names: nil,
		index: make(map[string]Symbol),
	}
}

// Intern returns the symbol for a given name, allocating one if the name has
// not been seen before.
func (p *SymbolTable) Intern(name string) Symbol {
	if sym, ok := p.index[name]; ok {
		return sym
	}
	//
	sym := Symbol(len(p.names))
	p.names = append(p.names, name)
	p.index[name] = sym
	//
	return sym
}

// Lookup returns the symbol for a given name, if the name has been interned.
func (p *SymbolTable) Lookup(name string) (Symbol, bool) {
	sym, ok := p.index[name]
	//
	return sym, ok
}

// Name returns the original spelling of a given symbol.
func (p *SymbolTable) Name(sym Symbol) string {
	return p.names[sym]
}

// Count returns the number of distinct names interned so far.
func (p *SymbolTable) Count() uint {
	return uint(len(p.names))
}
