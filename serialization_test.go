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

	"github.com/globalsign/mgo/bson"
	"github.com/stretchr/testify/require"
)

func TestScaledBSONRoundTrip(t *testing.T) {
	type XXX struct {
		Value Scaled
	}

	x := XXX{Value: Scaled{Value: MustFromString("123456789"), Scale: 4}}

	data, err := bson.Marshal(x)
	require.NoError(t, err)

	var y XXX
	require.NoError(t, bson.Unmarshal(data, &y))

	require.Equal(t, x.Value.Value, y.Value.Value)
	require.Equal(t, x.Value.Scale, y.Value.Scale)
}

func TestScaledBSONRoundTripNegative(t *testing.T) {
	type XXX struct {
		Value Scaled
	}

	x := XXX{Value: Scaled{Value: MustFromString("-1"), Scale: 3}}

	data, err := bson.Marshal(x)
	require.NoError(t, err)

	var y XXX
	require.NoError(t, bson.Unmarshal(data, &y))

	require.Equal(t, x.Value.Value, y.Value.Value)
	require.Equal(t, x.Value.Scale, y.Value.Scale)
}
