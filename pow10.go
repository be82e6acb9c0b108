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
	"math/big"
)

// ScaleMultipliers holds 10^n for n in [0, 38] as Num values, used by
// Rescale and by large-integer formatting. It is built once here at
// package init, the same way apd's table.go builds its digit-count
// lookup table: with two 64-bit halves for values that fit below
// 10^19, and via math/big for everything above that (a one-time cost
// at program start, not a hot path, so there's no need for apd's
// allocation-minimizing BigInt wrapper here).
var ScaleMultipliers [39]Num

// TenTo18 is 10^18, used by ToIntegerString's digit-chunking.
var TenTo18 = ScaleMultipliers[18]

// TenTo36 is 10^36, used by ToIntegerString's digit-chunking.
var TenTo36 = ScaleMultipliers[36]

func init() {
	for n := 0; n <= 18; n++ {
		ScaleMultipliers[n] = FromU64(pow10Uint64(n))
	}

	ten := big.NewInt(10)
	v := new(big.Int)
	for n := 19; n <= 38; n++ {
		v.Exp(ten, big.NewInt(int64(n)), nil)
		ScaleMultipliers[n] = fromBigIntPositive(v)
	}

	TenTo18 = ScaleMultipliers[18]
	TenTo36 = ScaleMultipliers[36]
}

func pow10Uint64(n int) uint64 {
	v := uint64(1)
	for i := 0; i < n; i++ {
		v *= 10
	}
	return v
}

// fromBigIntPositive converts a non-negative big.Int known to fit in
// 128 bits into a Num.
func fromBigIntPositive(v *big.Int) Num {
	var buf [16]byte
	v.FillBytes(buf[:])
	return Num{
		hi: int64(binary.BigEndian.Uint64(buf[0:8])),
		lo: binary.BigEndian.Uint64(buf[8:16]),
	}
}
