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

const mask32 = 0xFFFFFFFF

// Mul returns the low 128 bits of n*rhs, wrapping modulo 2^128. It
// breaks both operands into four 32-bit limbs and accumulates partial
// products place by place, discarding anything that would land above
// bit 127.
func (n Num) Mul(rhs Num) Num {
	l0 := uint64(n.hi) >> 32
	l1 := uint64(n.hi) & mask32
	l2 := n.lo >> 32
	l3 := n.lo & mask32

	r0 := uint64(rhs.hi) >> 32
	r1 := uint64(rhs.hi) & mask32
	r2 := rhs.lo >> 32
	r3 := rhs.lo & mask32

	product := l3 * r3
	lo := product & mask32

	sum := product >> 32

	product = l2 * r3
	sum += product

	product = l3 * r2
	sum += product

	lo += sum << 32

	var hi uint64
	if sum < product {
		hi = uint64(1) << 32
	}

	hi += sum >> 32
	hi += l1*r3 + l2*r2 + l3*r1
	hi += (l0*r3 + l1*r2 + l2*r1 + l3*r0) << 32

	return Num{hi: int64(hi), lo: lo}
}
