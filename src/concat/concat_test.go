package concat_test

import (
	"errors"
	"math"
	"testing"

	"github.com/admiralbulldogtv/splicer/src/concat"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func constant(n int, v float64) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = v
	}
	return out
}

func TestOverlapLength(t *testing.T) {
	assert.Equal(t, 0, concat.OverlapLength(100, 40, 0))
	assert.Equal(t, 20, concat.OverlapLength(100, 40, 0.5))
	assert.Equal(t, 40, concat.OverlapLength(100, 40, 1))
	assert.Equal(t, 13, concat.OverlapLength(27, 200, 0.5))
}

func TestAssembleHardJoin(t *testing.T) {
	a := []float64{1, 2, 3}
	b := []float64{4, 5}
	c := []float64{6}

	out, joins, err := concat.Assemble([][]float64{a, b, c}, false, 1)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2, 3, 4, 5, 6}, out)
	assert.Equal(t, []int{0, 0}, joins)
}

func TestAssembleCrossfadeLength(t *testing.T) {
	segs := [][]float64{constant(1000, 0.1), constant(400, 0.2), constant(1600, 0.3)}

	for _, f := range []float64{0, 0.25, 0.5, 1} {
		out, joins, err := concat.Assemble(segs, true, f)
		require.NoError(t, err)

		want := []int{concat.OverlapLength(1000, 400, f), concat.OverlapLength(400, 1600, f)}
		assert.Equal(t, want, joins)
		assert.Len(t, out, 3000-want[0]-want[1])
	}
}

func TestAssembleCrossfadeWeights(t *testing.T) {
	a := constant(10, 1)
	b := constant(10, 0)

	out, joins, err := concat.Assemble([][]float64{a, b}, true, 0.4)
	require.NoError(t, err)
	require.Equal(t, []int{4}, joins)
	require.Len(t, out, 16)

	// untouched head of a
	assert.Equal(t, []float64{1, 1, 1, 1, 1, 1}, out[:6])
	// a fades out while b fades in; weights of a and b sum to one
	want := []float64{0.8, 0.6, 0.4, 0.2}
	for i, w := range want {
		assert.InDelta(t, w, out[6+i], 1e-12)
	}
	assert.Equal(t, constant(6, 0), out[10:])

	// a constant signal stays constant across the join
	flat, _, err := concat.Assemble([][]float64{constant(50, 0.5), constant(30, 0.5)}, true, 1)
	require.NoError(t, err)
	for _, s := range flat {
		assert.InDelta(t, 0.5, s, 1e-12)
	}
}

func TestAssembleDoesNotModifyInput(t *testing.T) {
	a := constant(8, 1)
	b := constant(8, -1)
	_, _, err := concat.Assemble([][]float64{a, b}, true, 1)
	require.NoError(t, err)
	assert.Equal(t, constant(8, 1), a)
	assert.Equal(t, constant(8, -1), b)
}

func TestAssembleSingleSegment(t *testing.T) {
	seg := []float64{0.1, -0.2, 0.3}
	for _, crossfade := range []bool{false, true} {
		out, joins, err := concat.Assemble([][]float64{seg}, crossfade, 0.5)
		require.NoError(t, err)
		assert.Equal(t, seg, out)
		assert.Empty(t, joins)
	}
}

func TestAssembleErrors(t *testing.T) {
	_, _, err := concat.Assemble(nil, true, 0.5)
	assert.ErrorIs(t, err, concat.ErrEmptyPlan)

	for _, f := range []float64{-0.1, 1.5, math.NaN(), math.Inf(1)} {
		_, _, err := concat.Assemble([][]float64{{1}, {2}}, true, f)
		var ip *concat.InvalidParameterError
		assert.True(t, errors.As(err, &ip), "fraction %v", f)
	}

	// parameters are checked before the plan
	_, _, err = concat.Assemble(nil, true, 2)
	var ip *concat.InvalidParameterError
	assert.True(t, errors.As(err, &ip))
}
