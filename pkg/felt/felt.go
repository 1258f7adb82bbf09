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
package felt

import (
	"errors"
	"fmt"
	"math/big"
)

// ErrOutOfRange indicates an attempt to construct a field element from a
// value requiring more precision than the element supports.
var ErrOutOfRange = errors.New("value out of range for field element")

// Element of a prime-order field.  Arithmetic is always modulo the field's
// prime, hence overflow is defined as wraparound.  Equality of two elements
// is value equality after reduction (i.e. Cmp(y) == 0), never identity of
// how they were derived.
type Element[F any] interface {
	fmt.Stringer
	// Add computes x + y.
	Add(y F) F
	// Sub computes x - y.
	Sub(y F) F
	// Mul computes x * y.
	Mul(y F) F
	// Neg computes -x (i.e. p - x for non-zero x).
	Neg() F
	// Cmp returns 1 if x > y, 0 if x = y, and -1 if x < y.
	Cmp(y F) int
	// IsZero checks whether this element is zero.
	IsZero() bool
	// IsOne checks whether this element is one.
	IsOne() bool
	// Modulus returns the prime for the field in question.
	Modulus() *big.Int
	// SetUint64 constructs an element from a given uint64.
	SetUint64(val uint64) F
	// SetBytes constructs an element from bytes in big-endian order, reduced
	// modulo the field's prime.
	SetBytes(bytes []byte) F
	// Bytes returns the big-endian encoding of this element.
	Bytes() []byte
	// Text returns the numerical value of this element in a given base.
	Text(base int) string
}

// Zero constructs a field element representing 0.
func Zero[F Element[F]]() F {
	var element F
	//
	return element
}

// One constructs a field element representing 1.
func One[F Element[F]]() F {
	var element F
	//
	return element.SetUint64(1)
}

// Uint64 constructs a field element from a given uint64.
func Uint64[F Element[F]](val uint64) F {
	var element F
	//
	return element.SetUint64(val)
}

// FromBigInt constructs a field element from a given big.Int, normalised into
// the range [0, p).  Negative values, and values whose width exceeds twice
// that of the field's prime, are rejected with ErrOutOfRange.
func FromBigInt[F Element[F]](val *big.Int) (F, error) {
	var (
		element F
		reduced big.Int
	)
	//
	modulus := element.Modulus()
	//
	if val.Sign() < 0 {
		return element, fmt.Errorf("%w: negative value %s", ErrOutOfRange, val.String())
	} else if val.BitLen() > 2*modulus.BitLen() {
		return element, fmt.Errorf("%w: %d bits exceeds field precision", ErrOutOfRange, val.BitLen())
	}
	// Normalise into [0, p)
	reduced.Mod(val, modulus)
	//
	return element.SetBytes(reduced.Bytes()), nil
}

// BigInt returns the numerical value of a given field element.
func BigInt[F Element[F]](val F) *big.Int {
	var number big.Int
	//
	return number.SetBytes(val.Bytes())
}
