package montgomery

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wyvernlabs/ecckit/bigint"
	"github.com/wyvernlabs/ecckit/curve"
	"github.com/wyvernlabs/ecckit/errs"
	"github.com/wyvernlabs/ecckit/point"
)

func TestConditionalSwapNoFlagLeavesValuesUnchanged(t *testing.T) {
	a := bigint.FromInt64(11)
	b := bigint.FromInt64(222)
	gotA, gotB := conditionalSwap(4, a, b, false)
	assert.Equal(t, 0, gotA.Cmp(a))
	assert.Equal(t, 0, gotB.Cmp(b))
}

func TestConditionalSwapFlagExchangesValues(t *testing.T) {
	a := bigint.FromInt64(11)
	b := bigint.FromInt64(222)
	gotA, gotB := conditionalSwap(4, a, b, true)
	assert.Equal(t, 0, gotA.Cmp(b))
	assert.Equal(t, 0, gotB.Cmp(a))
}

func TestConditionalSwapIsItsOwnInverse(t *testing.T) {
	a := bigint.FromInt64(9001)
	b := bigint.FromInt64(42)
	x, y := conditionalSwap(4, a, b, true)
	x, y = conditionalSwap(4, x, y, true)
	assert.Equal(t, 0, x.Cmp(a))
	assert.Equal(t, 0, y.Cmp(b))
}

// exhaustedSource always fails, forcing randomise to retry up to
// rng.MaxRetries times and then surface errs.RngFailure.
type exhaustedSource struct{}

func (exhaustedSource) Read(buf []byte) error {
	return errs.Wrap(errs.RngFailure, "simulated entropy failure")
}

// lowDrawSource always produces a buffer that reduces to a value below 2,
// exercising randomise's l < 2 rejection path.
type lowDrawSource struct{}

func (lowDrawSource) Read(buf []byte) error {
	for i := range buf {
		buf[i] = 0
	}
	return nil
}

func TestRandomiseFailsAfterExhaustingRetries(t *testing.T) {
	d, err := curve.ByID(curve.Curve25519)
	require.NoError(t, err)
	c, err := New(d)
	require.NoError(t, err)

	_, err = c.randomise(point.FromAffineX(c.D.G.X), exhaustedSource{})
	assert.Error(t, err)
}

func TestRandomiseRejectsDrawsBelowTwo(t *testing.T) {
	d, err := curve.ByID(curve.Curve25519)
	require.NoError(t, err)
	c, err := New(d)
	require.NoError(t, err)

	_, err = c.randomise(point.FromAffineX(c.D.G.X), lowDrawSource{})
	assert.Error(t, err)
}
