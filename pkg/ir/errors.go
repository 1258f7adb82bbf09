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

import "errors"

// Structural errors are always fatal to the construction step which triggered
// them; type errors are additionally re-detected (and batched) by the
// standalone verifier.  No error is ever silently swallowed, and nothing is
// ever coerced between the field-element and struct-instance types.
var (
	// ErrDuplicateStruct indicates redeclaration of a struct under an
	// existing name.
	ErrDuplicateStruct = errors.New("duplicate struct")
	// ErrDuplicateField indicates two fields with the same name within one
	// struct.
	ErrDuplicateField = errors.New("duplicate field")
	// ErrUnknownStruct indicates a struct reference which resolves to
	// nothing.
	ErrUnknownStruct = errors.New("unknown struct")
	// ErrArityMismatch indicates a struct reference whose generic argument
	// count disagrees with the declaration.
	ErrArityMismatch = errors.New("generic arity mismatch")
	// ErrNoSuchField indicates a field lookup on a struct which does not
	// declare it.
	ErrNoSuchField = errors.New("no such field")
	// ErrTypeMismatch indicates disagreement between the type a position
	// requires and the type a value actually has.
	ErrTypeMismatch = errors.New("type mismatch")
	// ErrUseBeforeDefinition indicates an operand referring to a value not
	// yet defined at that point in the body.
	ErrUseBeforeDefinition = errors.New("use before definition")
	// ErrOperationAfterReturn indicates dead code following the terminal
	// return of a function body.
	ErrOperationAfterReturn = errors.New("operation after return")
	// ErrMissingFunction indicates a complete struct lacking one of its two
	// required functions.
	ErrMissingFunction = errors.New("missing function")
	// ErrMalformedFunction indicates a function whose signature or terminal
	// return violates its kind-specific shape.
	ErrMalformedFunction = errors.New("malformed function")
)
