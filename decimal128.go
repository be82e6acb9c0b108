// Copyright 2024 The Decimal128 Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or
// implied. See the License for the specific language governing
// permissions and limitations under the License.

package decimal128

import (
	"encoding/binary"
	"math"
)

// Num is a signed 128-bit integer in two's complement representation,
// split into a high and low 64-bit half: value = hi*2^64 + lo.
//
// Calculations wrap around modulo 2^128; overflow is never reported by
// the arithmetic operators themselves (Add, Sub, Mul, the bitwise ops,
// and the shifts). Only QuoRem (which can't silently wrap a
// meaningful answer) and Rescale (which defines overflow in terms of
// the decimal value) report failure.
//
// Num is a plain value: comparable with ==, safe for concurrent reads,
// and carries no scale. Pair it with a scale externally (see Scaled)
// when you need decimal semantics.
type Num struct {
	lo uint64
	hi int64
}

// MaxDecimal128 is the largest representable value, 2^127-1.
var MaxDecimal128 = New(math.MaxInt64, math.MaxUint64)

// MinDecimal128 is the smallest representable value, -2^127.
var MinDecimal128 = New(math.MinInt64, 0)

// New returns the Num with the given high and low halves.
func New(hi int64, lo uint64) Num {
	return Num{hi: hi, lo: lo}
}

// FromU64 returns the Num equal to the unsigned value v.
func FromU64(v uint64) Num {
	return Num{hi: 0, lo: v}
}

// FromI64 returns the Num equal to the signed value v.
func FromI64(v int64) Num {
	return Num{hi: v >> 63, lo: uint64(v)}
}

// FromBytes decodes a Num from a 16-byte little-endian buffer: bytes
// 0..7 are the low half, bytes 8..15 are the high half. Panics if b is
// shorter than 16 bytes.
func FromBytes(b []byte) Num {
	_ = b[15]
	return Num{
		lo: binary.LittleEndian.Uint64(b[0:8]),
		hi: int64(binary.LittleEndian.Uint64(b[8:16])),
	}
}

// ToBytes encodes n as 16 little-endian bytes: bytes 0..7 are the low
// half, bytes 8..15 are the high half.
func (n Num) ToBytes() [16]byte {
	var out [16]byte
	binary.LittleEndian.PutUint64(out[0:8], n.lo)
	binary.LittleEndian.PutUint64(out[8:16], uint64(n.hi))
	return out
}

// LowBits returns the low 64 bits of the two's complement representation.
func (n Num) LowBits() uint64 { return n.lo }

// HighBits returns the high 64 bits of the two's complement representation.
func (n Num) HighBits() int64 { return n.hi }

// Int64 converts n to a signed 64-bit integer. The conversion is only
// defined when n fits: hi must be 0 (n >= 0) or -1 (n < 0). Callers
// must check Fits64 (or know by construction) before calling this;
// passing a value that does not fit is a contract violation and the
// returned value is meaningless.
func (n Num) Int64() int64 { return int64(n.lo) }

// Fits64 reports whether n's value fits in an int64.
func (n Num) Fits64() bool { return n.hi == 0 || n.hi == -1 }

// Sign returns -1 if n < 0, 0 if n == 0, and +1 if n > 0.
func (n Num) Sign() int {
	if n == (Num{}) {
		return 0
	}
	return int(1 | (n.hi >> 63))
}

// IsZero reports whether n == 0.
func (n Num) IsZero() bool { return n == (Num{}) }

// Negate returns the two's complement negation of n. It is its own
// inverse except for the single non-representable value
// MinDecimal128, which negates to itself.
func (n Num) Negate() Num {
	lo := ^n.lo + 1
	hi := ^n.hi
	if lo == 0 {
		hi++
	}
	return Num{hi: hi, lo: lo}
}

// Abs returns the absolute value of n. Like Negate, it has no valid
// representable result for MinDecimal128 and returns MinDecimal128
// unchanged in that case (two's complement wraparound).
func (n Num) Abs() Num {
	if n.Sign() < 0 {
		return n.Negate()
	}
	return n
}

// Add returns n + rhs, wrapping modulo 2^128.
func (n Num) Add(rhs Num) Num {
	sum := n.lo + rhs.lo
	hi := n.hi + rhs.hi
	if sum < n.lo {
		hi++
	}
	return Num{hi: hi, lo: sum}
}

// Sub returns n - rhs, wrapping modulo 2^128.
func (n Num) Sub(rhs Num) Num {
	diff := n.lo - rhs.lo
	hi := n.hi - rhs.hi
	if diff > n.lo {
		hi--
	}
	return Num{hi: hi, lo: diff}
}

// And returns the bitwise AND of n and rhs.
func (n Num) And(rhs Num) Num {
	return Num{hi: n.hi & rhs.hi, lo: n.lo & rhs.lo}
}

// Or returns the bitwise OR of n and rhs.
func (n Num) Or(rhs Num) Num {
	return Num{hi: n.hi | rhs.hi, lo: n.lo | rhs.lo}
}

// Xor returns the bitwise XOR of n and rhs.
func (n Num) Xor(rhs Num) Num {
	return Num{hi: n.hi ^ rhs.hi, lo: n.lo ^ rhs.lo}
}

// Not returns the bitwise complement of n.
func (n Num) Not() Num {
	return Num{hi: ^n.hi, lo: ^n.lo}
}

// Lsh returns n shifted left by bits (0 <= bits; bits >= 128 yields 0).
func (n Num) Lsh(bits uint) Num {
	switch {
	case bits == 0:
		return n
	case bits < 64:
		return Num{
			hi: (n.hi << bits) | int64(n.lo>>(64-bits)),
			lo: n.lo << bits,
		}
	case bits < 128:
		return Num{hi: int64(n.lo << (bits - 64)), lo: 0}
	default:
		return Num{}
	}
}

// Rsh returns n shifted right by bits, sign-extending (arithmetic
// shift). 0 <= bits; bits >= 128 yields 0 or -1 depending on sign.
func (n Num) Rsh(bits uint) Num {
	switch {
	case bits == 0:
		return n
	case bits < 64:
		return Num{
			lo: (n.lo >> bits) | uint64(n.hi<<(64-bits)),
			hi: n.hi >> bits, // arithmetic shift on a signed int64
		}
	case bits < 128:
		signFill := n.signFill()
		return Num{lo: uint64(n.hi >> (bits - 64)), hi: signFill}
	default:
		signFill := n.signFill()
		return Num{lo: uint64(signFill), hi: signFill}
	}
}

func (n Num) signFill() int64 {
	if n.hi >= 0 {
		return 0
	}
	return -1
}

// Cmp compares n and rhs, returning -1, 0, or +1.
func (n Num) Cmp(rhs Num) int {
	switch {
	case n.hi < rhs.hi:
		return -1
	case n.hi > rhs.hi:
		return 1
	case n.lo < rhs.lo:
		return -1
	case n.lo > rhs.lo:
		return 1
	default:
		return 0
	}
}

// Less reports whether n < rhs.
func (n Num) Less(rhs Num) bool { return n.Cmp(rhs) < 0 }

// LessEqual reports whether n <= rhs.
func (n Num) LessEqual(rhs Num) bool { return n.Cmp(rhs) <= 0 }

// Greater reports whether n > rhs.
func (n Num) Greater(rhs Num) bool { return n.Cmp(rhs) > 0 }

// GreaterEqual reports whether n >= rhs.
func (n Num) GreaterEqual(rhs Num) bool { return n.Cmp(rhs) >= 0 }

// String implements fmt.Stringer by rendering the plain integer value
// (no decimal point; see ToString for scale-aware formatting).
func (n Num) String() string {
	return n.ToIntegerString()
}
