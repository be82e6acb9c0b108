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
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMulBasic(t *testing.T) {
	cases := []struct {
		a, b, want string
	}{
		{"2", "3", "6"},
		{"-2", "3", "-6"},
		{"-2", "-3", "6"},
		{"100000000000000000000", "10", "1000000000000000000000"}, // crosses a 32-bit limb boundary
		{"0", "123456789", "0"},
		{"1", "-1", "-1"},
	}
	for _, c := range cases {
		a := MustFromString(c.a)
		b := MustFromString(c.b)
		want := MustFromString(c.want)
		require.Equal(t, want, a.Mul(b), "%s * %s", c.a, c.b)
	}
}

func TestMulCommutative(t *testing.T) {
	values := []Num{
		FromI64(0), FromI64(1), FromI64(-1), FromI64(12345), FromI64(-98765),
		MustFromString("123456789012345"), MustFromString("-123456789012345"),
	}
	for _, a := range values {
		for _, b := range values {
			require.Equal(t, a.Mul(b), b.Mul(a), "a=%v b=%v", a, b)
		}
	}
}

func TestMulDistributesOverAdd(t *testing.T) {
	a := MustFromString("123456789")
	b := MustFromString("987654321")
	c := MustFromString("-555555555")
	require.Equal(t, a.Mul(b.Add(c)), a.Mul(b).Add(a.Mul(c)))
}

func TestMulIdentity(t *testing.T) {
	values := []Num{FromI64(0), FromI64(1), FromI64(-1), MustFromString("123456789012345678")}
	one := FromI64(1)
	for _, v := range values {
		require.Equal(t, v, v.Mul(one))
	}
}
