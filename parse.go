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
	"strconv"
)

const maxChunkDigits = 18

// FromString parses s as a decimal literal matching
// [+-]?(0*)(\d*)(\.\d+)?([Ee][+-]?\d+)? (at least one digit required),
// returning the value, its precision (total significant digits
// carried by the text), and its scale.
//
// Precision on all-zero input (e.g. "000") is the count of consumed
// leading zeros: callers that want "0" to have precision 1 must
// post-process.
func FromString(s string) (value Num, precision int, scale int32, err error) {
	if len(s) == 0 {
		return Num{}, 0, 0, parseErrorf(s, 0, "empty string cannot be converted to decimal")
	}

	pos := 0
	isNegative := false
	if c := s[0]; c == '+' || c == '-' {
		isNegative = c == '-'
		pos++
	}

	if pos == len(s) {
		return Num{}, 0, 0, parseErrorf(s, pos, "single sign character is not a valid decimal value")
	}

	numericStart := pos

	// Skip leading zeros.
	for pos < len(s) && s[pos] == '0' {
		pos++
	}

	if pos == len(s) {
		// All zeros and no decimal point.
		return Num{}, pos - numericStart, 0, nil
	}

	wholeStart := pos
	for pos < len(s) && isDigit(s[pos]) {
		pos++
	}
	wholePart := s[wholeStart:pos]

	var fractionalPart string
	if pos < len(s) && s[pos] == '.' {
		pos++
		if pos == len(s) {
			return Num{}, 0, 0, parseErrorf(s, pos,
				"decimal point must be followed by at least one base ten digit")
		}
		if !isDigit(s[pos]) {
			return Num{}, 0, 0, parseErrorf(s, pos,
				"decimal point must be followed by a base ten digit, found %q", s[pos])
		}
		fracStart := pos
		for pos < len(s) && isDigit(s[pos]) {
			pos++
		}
		fractionalPart = s[fracStart:pos]
	} else if pos < len(s) && (pos == numericStart || (s[pos] != 'E' && s[pos] != 'e')) {
		return Num{}, 0, 0, parseErrorf(s, pos,
			"expected base ten digit or decimal point but found %q instead", s[pos])
	}

	precision = len(wholePart) + len(fractionalPart)

	if pos < len(s) {
		if s[pos] != 'E' && s[pos] != 'e' {
			return Num{}, 0, 0, parseErrorf(s, pos,
				"found non base ten digit character %q before the end of the string", s[pos])
		}
		pos++
		if pos == len(s) {
			return Num{}, 0, 0, parseErrorf(s, pos, "exponent requires at least one digit")
		}

		expStart := pos
		if s[pos] == '+' || s[pos] == '-' {
			pos++
		}
		digitsStart := pos
		for pos < len(s) && isDigit(s[pos]) {
			pos++
		}
		if pos == digitsStart {
			return Num{}, 0, 0, parseErrorf(s, pos, "exponent requires at least one digit")
		}
		if pos != len(s) {
			return Num{}, 0, 0, parseErrorf(s, pos, "found non decimal digit exponent value %q", s[pos])
		}

		exp, convErr := strconv.ParseInt(s[expStart:pos], 10, 32)
		if convErr != nil {
			return Num{}, 0, 0, parseErrorf(s, expStart, "exponent out of range: %s", s[expStart:pos])
		}
		scale = -int32(exp) + int32(precision) - 1
	} else {
		scale = int32(len(fractionalPart))
	}

	value = stringToInteger(wholePart + fractionalPart)
	if isNegative {
		value = value.Negate()
	}
	return value, precision, scale, nil
}

// MustFromString is FromString, asserting success. It is meant for
// literals known at compile time to be valid; passing invalid input
// is a contract violation and panics.
func MustFromString(s string) Num {
	v, _, _, err := FromString(s)
	if err != nil {
		panic(err)
	}
	return v
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// stringToInteger converts a string of decimal digits into a Num by
// consuming it in chunks of up to 18 digits (each chunk parses
// losslessly as an int64) and folding them in as
// value = value*10^chunkLen + chunk.
func stringToInteger(digits string) Num {
	var out Num
	for pos := 0; pos < len(digits); {
		group := maxChunkDigits
		if remaining := len(digits) - pos; remaining < group {
			group = remaining
		}
		chunk, _ := strconv.ParseInt(digits[pos:pos+group], 10, 64)
		out = out.Mul(ScaleMultipliers[group]).Add(FromI64(chunk))
		pos += group
	}
	return out
}
