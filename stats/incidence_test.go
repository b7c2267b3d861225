package stats_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gocellmap/cellmap/stats"
)

func TestNewIncidenceMatrix_ColumnsSumToZero(t *testing.T) {
	m := buildTriangle(t, false)
	im, err := stats.NewIncidenceMatrix(m)
	require.NoError(t, err)

	for j := 0; j < 3; j++ {
		var sum float64
		for i := 0; i < 3; i++ {
			v, err := im.At(i, j)
			require.NoError(t, err)
			sum += v
		}
		assert.Zero(t, sum, "column %d: every edge has exactly one start and one end", j)
	}
}

func TestNewIncidenceMatrix_IncidentEdges(t *testing.T) {
	m := buildTriangle(t, false)
	im, err := stats.NewIncidenceMatrix(m)
	require.NoError(t, err)

	edges, err := im.IncidentEdges(1)
	require.NoError(t, err)
	assert.ElementsMatch(t, []int{1, 3}, edges)
}

func TestNewIncidenceMatrix_RejectsNilMap(t *testing.T) {
	_, err := stats.NewIncidenceMatrix(nil)
	assert.ErrorIs(t, err, stats.ErrNilMap)
}
