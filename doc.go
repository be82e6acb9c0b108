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

// Package decimal128 implements a fixed-width, 128-bit signed decimal
// arithmetic value: a two's complement integer mantissa in the range
// [-2^127, 2^127-1], paired externally with a decimal scale.
//
// The scale is never stored on a Num; it is a property the caller
// (typically a column's schema) supplies at formatting and rescaling
// time, and that FromString reports alongside the parsed value. Num itself only knows how to do 128-bit integer
// arithmetic, convert to and from decimal text, and rescale by an exact
// power of ten.
package decimal128
