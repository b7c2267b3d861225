package policy_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gocellmap/cellmap/policy"
)

func TestMergeOrder_TwoSquaresProduceOneStepOnTheSharedEdge(t *testing.T) {
	m := buildTwoSquares(t)

	steps, err := policy.MergeOrder(m, policy.BoundaryLength)
	require.NoError(t, err)
	require.Len(t, steps, 1)
	assert.Equal(t, 7, steps[0].Dart)
	assert.InDelta(t, 1, steps[0].Weight, 1e-9)
}

func TestMergeOrder_DefaultsToBoundaryLengthWhenWeightIsNil(t *testing.T) {
	m := buildTwoSquares(t)

	steps, err := policy.MergeOrder(m, nil)
	require.NoError(t, err)
	require.Len(t, steps, 1)
}
