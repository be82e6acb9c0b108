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
	"github.com/globalsign/mgo/bson"
)

// Scaled pairs a Num with the scale it's missing on its own, so it can
// round-trip through wire formats (like MongoDB's BSON Decimal128
// subtype) that carry value and scale together.
type Scaled struct {
	Value Num
	Scale int32
}

// GetBSON renders s through its decimal text form and hands that to
// bson.ParseDecimal128, the same way apd's *Decimal does for its own
// arbitrary-precision Coeff/Exponent pair.
func (s Scaled) GetBSON() (interface{}, error) {
	return bson.ParseDecimal128(s.Value.ToString(s.Scale))
}

// SetBSON unmarshals a bson.Decimal128, then reparses its text form
// with FromString to recover both the mantissa and the scale.
func (s *Scaled) SetBSON(raw bson.Raw) error {
	var w bson.Decimal128
	if err := raw.Unmarshal(&w); err != nil {
		return err
	}
	value, _, scale, err := FromString(w.String())
	if err != nil {
		return err
	}
	s.Value = value
	s.Scale = scale
	return nil
}
