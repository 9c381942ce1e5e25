// Package builder_test contains unit tests for the WeightFn implementations.
package builder_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/alpha3/builder"
	"github.com/stretchr/testify/assert"
)

// TestWeightFnConstructors verifies that WeightFn constructors panic on
// invalid parameters.
func TestWeightFnConstructors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		constructor func() builder.WeightFn
	}{
		{"ConstantWeightFn_nan", func() builder.WeightFn { return builder.ConstantWeightFn(math.NaN()) }},
		{"UniformWeightFn_maxLessThanMin", func() builder.WeightFn { return builder.UniformWeightFn(5, 4) }},
		{"UniformWeightFn_inf", func() builder.WeightFn { return builder.UniformWeightFn(0, math.Inf(1)) }},
		{"NormalWeightFn_stddevNegative", func() builder.WeightFn { return builder.NormalWeightFn(0, -0.1) }},
		{"ExponentialWeightFn_zeroRate", func() builder.WeightFn { return builder.ExponentialWeightFn(0) }},
		{"ExponentialWeightFn_negativeRate", func() builder.WeightFn { return builder.ExponentialWeightFn(-1) }},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Panics(t, func() { tc.constructor() })
		})
	}
}

// TestWeightFnBehavior covers nil-RNG fallbacks and sample ranges.
func TestWeightFnBehavior(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(42))

	assert.Equal(t, builder.DefaultPointWeight, builder.DefaultWeightFn(rng))
	assert.Equal(t, -2.5, builder.ConstantWeightFn(-2.5)(rng), "negative weights are allowed")

	uni := builder.UniformWeightFn(-1, 1)
	assert.Equal(t, -1.0, uni(nil))
	for i := 0; i < 100; i++ {
		w := uni(rng)
		assert.GreaterOrEqual(t, w, -1.0)
		assert.Less(t, w, 1.0)
	}
	assert.Equal(t, 3.0, builder.UniformWeightFn(3, 3)(rng))

	assert.Equal(t, 0.5, builder.NormalWeightFn(0.5, 1)(nil))
	assert.Equal(t, 0.5, builder.NormalWeightFn(0.5, 0)(rng))

	exp := builder.ExponentialWeightFn(4)
	assert.Equal(t, 0.25, exp(nil))
	for i := 0; i < 100; i++ {
		assert.GreaterOrEqual(t, exp(rng), 0.0)
	}
}
