package policy_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gocellmap/cellmap/planarmap"
	"github.com/gocellmap/cellmap/policy"
	"github.com/gocellmap/cellmap/pyramid"
)

func TestExecute_MergeOrderOnTwoSquaresLeavesOneFiniteFace(t *testing.T) {
	m := buildTwoSquares(t)
	steps, err := policy.MergeOrder(m, policy.BoundaryLength)
	require.NoError(t, err)

	p := pyramid.New(m)
	require.NoError(t, policy.Execute(p, steps))

	top := p.Top()
	finite := 0
	for _, label := range top.FaceLabels() {
		if label != planarmap.InfiniteFace {
			finite++
		}
	}
	assert.Equal(t, 1, finite)
	assert.Equal(t, 1, p.TopLevel())
}

func TestExecute_StopsAtFirstFailingStep(t *testing.T) {
	m := buildTwoSquares(t)
	p := pyramid.New(m)

	err := policy.Execute(p, []policy.Step{{Dart: 999}})
	assert.Error(t, err)
}
