package label_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gocellmap/cellmap/label"
)

func TestNewIdentity(t *testing.T) {
	s := label.NewIdentity(5)
	require.Equal(t, 5, s.Len())
	for i := 0; i < 5; i++ {
		l, err := s.Leader(i)
		require.NoError(t, err)
		require.Equal(t, i, l)
	}
}

func TestRelabel_SingleMerge(t *testing.T) {
	s := label.NewIdentity(4)
	require.NoError(t, s.Relabel(1, 2))

	l, err := s.Leader(1)
	require.NoError(t, err)
	require.Equal(t, 2, l)

	l, err = s.Leader(2)
	require.NoError(t, err)
	require.Equal(t, 2, l)

	// Untouched labels keep their identity leader.
	l, err = s.Leader(0)
	require.NoError(t, err)
	require.Equal(t, 0, l)
}

func TestRelabel_ChainedMerges(t *testing.T) {
	s := label.NewIdentity(5)
	require.NoError(t, s.Relabel(0, 1))
	require.NoError(t, s.Relabel(1, 2))
	require.NoError(t, s.Relabel(3, 2))

	for _, member := range []int{0, 1, 2, 3} {
		l, err := s.Leader(member)
		require.NoError(t, err)
		require.Equal(t, 2, l, "member %d", member)
	}

	l, err := s.Leader(4)
	require.NoError(t, err)
	require.Equal(t, 4, l)
}

func TestRelabel_NoOpOnSameClass(t *testing.T) {
	s := label.NewIdentity(3)
	require.NoError(t, s.Relabel(1, 1))
	l, err := s.Leader(1)
	require.NoError(t, err)
	require.Equal(t, 1, l)
}

func TestRelabel_OutOfRange(t *testing.T) {
	s := label.NewIdentity(2)
	require.ErrorIs(t, s.Relabel(5, 0), label.ErrOutOfRange)
	require.ErrorIs(t, s.Relabel(0, 5), label.ErrOutOfRange)

	_, err := s.Leader(5)
	require.ErrorIs(t, err, label.ErrOutOfRange)
}

func TestMergedIterator_VisitsEachMemberOnce(t *testing.T) {
	s := label.NewIdentity(6)
	require.NoError(t, s.Relabel(0, 5))
	require.NoError(t, s.Relabel(1, 5))
	require.NoError(t, s.Relabel(2, 1)) // 2 joins 1 after 1 has already joined 5's class

	it, err := s.Iterate(5)
	require.NoError(t, err)

	seen := map[int]bool{}
	for {
		v, ok := it.Next()
		if !ok {
			break
		}
		require.False(t, seen[v], "member %d visited twice", v)
		seen[v] = true
	}
	require.Equal(t, map[int]bool{5: true, 1: true, 0: true, 2: true}, seen)
}

func TestMergedIterator_SingletonClass(t *testing.T) {
	s := label.NewIdentity(3)
	it, err := s.Iterate(1)
	require.NoError(t, err)

	v, ok := it.Next()
	require.True(t, ok)
	require.Equal(t, 1, v)

	_, ok = it.Next()
	require.False(t, ok)
}

func TestExtend(t *testing.T) {
	s := label.NewIdentity(2)
	s.Extend(5)
	require.Equal(t, 5, s.Len())
	l, err := s.Leader(4)
	require.NoError(t, err)
	require.Equal(t, 4, l)

	// Extending to a smaller or equal size is a no-op.
	s.Extend(3)
	require.Equal(t, 5, s.Len())
}
