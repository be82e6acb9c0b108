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

func TestToIntegerString(t *testing.T) {
	cases := []struct {
		value string
		want  string
	}{
		{"0", "0"},
		{"1", "1"},
		{"-1", "-1"},
		{"123456789", "123456789"},
		{"-123456789", "-123456789"},
		{"1000000000000000000000000000000000000", "1000000000000000000000000000000000000"}, // 10^36
		{"170141183460469231731687303715884105727", "170141183460469231731687303715884105727"},
		{"-170141183460469231731687303715884105728", "-170141183460469231731687303715884105728"},
	}
	for _, c := range cases {
		v := MustFromString(c.value)
		require.Equal(t, c.want, v.ToIntegerString(), "value=%s", c.value)
	}
}

func TestToStringPlainForm(t *testing.T) {
	cases := []struct {
		value string
		scale int32
		want  string
	}{
		// digits before the point.
		{"123456789", 4, "12345.6789"},
		// negative value, integer part all zero.
		{"-1", 3, "-0.001"},
		{"12345", 0, "12345"},
		{"5", 1, "0.5"},
		{"-5", 1, "-0.5"},
		{"5", 2, "0.05"},
		{"-5", 2, "-0.05"},
		{"100", 2, "1.00"},
	}
	for _, c := range cases {
		v := MustFromString(c.value)
		require.Equal(t, c.want, v.ToString(c.scale), "value=%s scale=%d", c.value, c.scale)
	}
}

func TestToStringScientificForm(t *testing.T) {
	cases := []struct {
		value string
		scale int32
		want  string
	}{
		// adjusted exponent below -6 forces scientific notation.
		{"123", 12, "1.23E-10"},
		{"1", -2, "1E+2"},
		{"15", -2, "1.5E+3"},
		{"1", 8, "1E-8"},
	}
	for _, c := range cases {
		v := MustFromString(c.value)
		require.Equal(t, c.want, v.ToString(c.scale), "value=%s scale=%d", c.value, c.scale)
	}
}
