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
	"github.com/pkg/errors"
)

// ErrDivideByZero is returned by QuoRem when the divisor is zero.
var ErrDivideByZero = errors.New("decimal128: divide by zero")

// ParseError reports a failure to parse a decimal string, pinpointing
// the byte offset at which parsing gave up.
type ParseError struct {
	Input  string
	Offset int
	Msg    string
}

func (e *ParseError) Error() string {
	return errors.Errorf("decimal128: parsing %q: %s (at byte %d)", e.Input, e.Msg, e.Offset).Error()
}

func parseErrorf(input string, offset int, format string, args ...interface{}) error {
	return &ParseError{Input: input, Offset: offset, Msg: errors.Errorf(format, args...).Error()}
}

// DataLossError is returned by Rescale when changing scale would
// overflow the mantissa (scaling up) or discard a nonzero remainder
// (scaling down).
type DataLossError struct {
	Value     Num
	FromScale int32
	ToScale   int32
	Truncated bool // true: nonzero remainder discarded; false: overflow
}

func (e *DataLossError) Error() string {
	reason := "would overflow"
	if e.Truncated {
		reason = "would truncate a nonzero remainder"
	}
	return errors.Errorf("decimal128: rescaling %s from scale %d to scale %d %s",
		e.Value.ToString(e.FromScale), e.FromScale, e.ToScale, reason).Error()
}

// ErrDecimal128 accumulates the first error raised by a sequence of
// fallible operations, so callers can chain several calls and check
// the error once at the end instead of after every step.
type ErrDecimal128 struct {
	Err error
}

// QuoRem performs q, r = a.QuoRem(b), recording any error.
func (e *ErrDecimal128) QuoRem(a, b Num) (quo, rem Num) {
	if e.Err != nil {
		return Num{}, Num{}
	}
	quo, rem, e.Err = a.QuoRem(b)
	return quo, rem
}

// Rescale performs Rescale(v, from, to), recording any error.
func (e *ErrDecimal128) Rescale(v Num, from, to int32) Num {
	if e.Err != nil {
		return Num{}
	}
	var out Num
	out, e.Err = Rescale(v, from, to)
	return out
}

// FromString performs FromString(s), recording any error.
func (e *ErrDecimal128) FromString(s string) Num {
	if e.Err != nil {
		return Num{}
	}
	var out Num
	out, _, _, e.Err = FromString(s)
	return out
}
