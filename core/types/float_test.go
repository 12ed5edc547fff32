package types

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestFloatMarshalJSON(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   float64
		want string
	}{
		{0, "0.0"},
		{45, "45.0"},
		{-90, "-90.0"},
		{0.5, "0.5"},
		{0.1, "0.1"},
		{1.0 / 3, "0.3333333333333333"},
		{1e20, "100000000000000000000.0"},
		{1e21, "1e+21"},
		{1e-7, "1e-7"},
		{math.Copysign(0, -1), "-0.0"},
	}

	for _, c := range cases {
		data, err := json.Marshal(Float(c.in))
		require.NoError(t, err)
		assert.Equal(t, c.want, string(data), "input %v", c.in)
	}
}

func TestFloatMarshalJSONNonFinite(t *testing.T) {
	t.Parallel()

	for _, v := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		_, err := json.Marshal(Float(v))
		require.ErrorIs(t, err, ErrNonFiniteValue)
	}
}

func TestFloatRoundTrip(t *testing.T) {
	t.Parallel()

	rapid.Check(t, func(t *rapid.T) {
		v := Float(rapid.Float64Range(-1e25, 1e25).Draw(t, "v"))

		data, err := json.Marshal(v)
		require.NoError(t, err)

		var decoded Float
		require.NoError(t, json.Unmarshal(data, &decoded))
		require.Equal(t, v, decoded)
	})
}

func TestVec3MarshalJSON(t *testing.T) {
	t.Parallel()

	data, err := json.Marshal(NewVec3(0, 0, 45))
	require.NoError(t, err)
	assert.Equal(t, "[0.0,0.0,45.0]", string(data))

	data, err = json.Marshal(NewQuat(0, 0, 0.7071, 0.7071))
	require.NoError(t, err)
	assert.Equal(t, "[0.0,0.0,0.7071,0.7071]", string(data))
}

func TestVec3UnmarshalJSON(t *testing.T) {
	t.Parallel()

	var v Vec3
	require.NoError(t, json.Unmarshal([]byte("[1, 2.5, -3]"), &v))
	assert.Equal(t, Vec3{1, 2.5, -3}, v)

	require.ErrorIs(t, json.Unmarshal([]byte("[1, 2]"), &v), ErrVectorLength)
	require.ErrorIs(t, json.Unmarshal([]byte("[1, 2, 3, 4]"), &v), ErrVectorLength)
	require.Error(t, json.Unmarshal([]byte(`"1,2,3"`), &v))

	var q Quat
	require.NoError(t, json.Unmarshal([]byte("[0, 0, 0, 1]"), &q))
	assert.Equal(t, Quat{0, 0, 0, 1}, q)
	require.ErrorIs(t, json.Unmarshal([]byte("[0, 0, 1]"), &q), ErrVectorLength)
}
