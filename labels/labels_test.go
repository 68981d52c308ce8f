package labels_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlindex/labels"
)

func TestBuilder_AssignAndFreeze(t *testing.T) {
	b := labels.NewBuilder[string](2)
	require.NoError(t, b.Assign("A", 0))
	require.NoError(t, b.Assign("B", 3))
	assert.Equal(t, 2, b.Len())

	id, ok := b.Lookup("B")
	assert.True(t, ok)
	assert.Equal(t, labels.NodeID(3), id)

	x := b.Freeze()
	assert.Equal(t, 2, x.Len())

	id, ok = x.Lookup("A")
	assert.True(t, ok)
	assert.Equal(t, labels.NodeID(0), id)

	l, ok := x.Label(3)
	assert.True(t, ok)
	assert.Equal(t, "B", l)

	_, ok = x.Lookup("missing")
	assert.False(t, ok)
	_, ok = x.Label(1)
	assert.False(t, ok)
}

func TestBuilder_Duplicates(t *testing.T) {
	b := labels.NewBuilder[int](0)
	require.NoError(t, b.Assign(7, 0))
	assert.ErrorIs(t, b.Assign(7, 2), labels.ErrDuplicateLabel)
	assert.ErrorIs(t, b.Assign(8, 0), labels.ErrDuplicateID)
	assert.Equal(t, 1, b.Len())
}

func TestBuilder_AssignAfterFreeze(t *testing.T) {
	b := labels.NewBuilder[string](-1)
	_ = b.Freeze()
	assert.ErrorIs(t, b.Assign("A", 0), labels.ErrFrozen)
}

func TestIndex_MustLabelPanicsOnUnknownID(t *testing.T) {
	x := labels.NewBuilder[string](0).Freeze()
	assert.Panics(t, func() { x.MustLabel(42) })
}

func TestIndex_InverseMaps(t *testing.T) {
	b := labels.NewBuilder[string](4)
	in := map[string]labels.NodeID{"a": 0, "b": 2, "c": 5, "d": 6}
	for l, id := range in {
		require.NoError(t, b.Assign(l, id))
	}
	x := b.Freeze()
	for l, id := range in {
		gotID, ok := x.Lookup(l)
		require.True(t, ok)
		gotLabel, ok := x.Label(gotID)
		require.True(t, ok)
		assert.Equal(t, id, gotID)
		assert.Equal(t, l, gotLabel)
	}
}

func TestIndex_ResolveDropsUnknown(t *testing.T) {
	b := labels.NewBuilder[string](2)
	require.NoError(t, b.Assign("x", 4))
	require.NoError(t, b.Assign("y", 0))
	x := b.Freeze()

	assert.Equal(t, []labels.NodeID{0, 4}, x.Resolve([]string{"nope", "y", "x"}))
	assert.Empty(t, x.Resolve(nil))
}
