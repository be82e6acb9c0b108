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
	"strings"
)

// ToIntegerString renders n as a plain base-10 integer, with no
// decimal point: at most 39 digits plus an optional leading '-'.
//
// It works by dividing out the top two 18-digit chunks (10^36, then
// 10^18) before printing the low chunk, matching the original
// Decimal128::ToIntegerString: each chunk after the first is
// zero-padded to 18 digits once a higher chunk has been emitted.
func (n Num) ToIntegerString() string {
	var buf strings.Builder

	top, rem, _ := n.QuoRem(TenTo36)
	needFill := false
	if !top.IsZero() {
		buf.WriteString(strconv.FormatInt(top.Int64(), 10))
		rem = rem.Abs()
		needFill = true
	}

	mid, tail, _ := rem.QuoRem(TenTo18)
	if needFill || !mid.IsZero() {
		if needFill {
			writePadded(&buf, mid.Int64(), 18)
		} else {
			needFill = true
			tail = tail.Abs()
			buf.WriteString(strconv.FormatInt(mid.Int64(), 10))
		}
	}

	if needFill {
		writePadded(&buf, tail.Int64(), 18)
	} else {
		buf.WriteString(strconv.FormatInt(tail.Int64(), 10))
	}

	return buf.String()
}

// writePadded writes v zero-padded to width digits (v is assumed
// non-negative and to fit in width digits).
func writePadded(buf *strings.Builder, v int64, width int) {
	s := strconv.FormatInt(v, 10)
	for i := len(s); i < width; i++ {
		buf.WriteByte('0')
	}
	buf.WriteString(s)
}

// ToString renders n as a decimal string with scale fractional
// digits. Scientific notation is used whenever scale < 0 or the
// adjusted exponent is below -6 (mirroring Java BigDecimal's
// threshold); otherwise the plain form with an inserted decimal point
// is used.
func (n Num) ToString(scale int32) string {
	str := n.ToIntegerString()
	if scale == 0 {
		return str
	}

	isNegative := n.Sign() < 0
	length := int32(len(str))
	negOff := int32(0)
	if isNegative {
		negOff = 1
	}
	adjustedExponent := -scale + (length - 1 - negOff)

	if scale < 0 || adjustedExponent < -6 {
		return toStringScientific(str, adjustedExponent, isNegative)
	}

	if isNegative {
		switch {
		case length-1 > scale:
			n := length - scale
			return str[:n] + "." + str[n:]
		case length-1 == scale:
			return "-0." + str[1:]
		default:
			return "-0." + strings.Repeat("0", int(scale-length+1)) + str[1:]
		}
	}

	switch {
	case length > scale:
		n := length - scale
		return str[:n] + "." + str[n:]
	case length == scale:
		return "0." + str
	default:
		return "0." + strings.Repeat("0", int(scale-length)) + str
	}
}

// toStringScientific renders the scientific form d[.ddd]E±n: exactly
// one leading integer digit, then any remaining digits after a point,
// then an explicit signed exponent.
func toStringScientific(str string, adjustedExponent int32, isNegative bool) string {
	var buf strings.Builder

	offset := 0
	buf.WriteByte(str[offset])
	offset++

	if isNegative {
		buf.WriteByte(str[offset])
		offset++
	}

	if offset < len(str) {
		buf.WriteByte('.')
		buf.WriteString(str[offset:])
	}
	buf.WriteByte('E')
	if adjustedExponent >= 0 {
		buf.WriteByte('+')
	}
	buf.WriteString(strconv.FormatInt(int64(adjustedExponent), 10))
	return buf.String()
}
