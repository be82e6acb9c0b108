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

// Rescale converts value from fromScale to toScale by multiplying or
// dividing by the appropriate power of ten, returning a *DataLossError
// if the conversion can't be represented exactly:
//
//   - toScale > fromScale (scaling up): multiplies by 10^delta;
//     DataLoss if the multiplication overflows.
//   - toScale < fromScale (scaling down): divides by 10^delta;
//     DataLoss if the division leaves a nonzero remainder.
//
// |toScale - fromScale| must be between 1 and 38 inclusive; violating
// this is a contract violation (an internal invariant) and panics
// rather than returning an error.
func Rescale(value Num, fromScale, toScale int32) (Num, error) {
	delta := toScale - fromScale
	absDelta := delta
	if absDelta < 0 {
		absDelta = -absDelta
	}
	if absDelta < 1 || absDelta > 38 {
		panic("decimal128: rescale delta scale must be between 1 and 38")
	}

	multiplier := ScaleMultipliers[absDelta]

	if delta < 0 {
		result, remainder, _ := value.QuoRem(multiplier)
		if !remainder.IsZero() {
			return Num{}, &DataLossError{
				Value: value, FromScale: fromScale, ToScale: toScale, Truncated: true,
			}
		}
		return result, nil
	}

	result := value.Mul(multiplier)
	// This overflow check mirrors decimal.cc's RescaleWouldCauseDataLoss:
	// it is correct when both operands are non-negative and the
	// multiplier is >= 1, but can miss overflow or falsely flag it for
	// negative values or near-boundary inputs. That is documented,
	// preserved behavior, not a bug to "fix" here.
	if result.Less(value) {
		return Num{}, &DataLossError{
			Value: value, FromScale: fromScale, ToScale: toScale, Truncated: false,
		}
	}
	return result, nil
}
