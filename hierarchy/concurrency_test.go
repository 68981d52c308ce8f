package hierarchy_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/lvlindex/hierarchy"
)

// TestConcurrentReaders runs many independent walks and lookups over one
// shared Index; each must see the same result as a sequential run.
func TestConcurrentReaders(t *testing.T) {
	idx, err := hierarchy.FromEdges(taxonomy(4, 5))
	require.NoError(t, err)

	roots := []string{"root", "root.1", "root.2.3", "root.0.0.0"}
	want := make(map[string][]string, len(roots))
	for _, r := range roots {
		want[r] = idx.DescendantsOf(r).Labels()
	}

	const readers = 64
	var g errgroup.Group
	for i := 0; i < readers; i++ {
		root := roots[i%len(roots)]
		g.Go(func() error {
			if got := idx.DescendantsOf(root).Labels(); !assert.ObjectsAreEqual(want[root], got) {
				return fmt.Errorf("walk from %s diverged: %d vs %d items", root, len(got), len(want[root]))
			}
			if _, ok := idx.ChildrenOf(root); !ok {
				return fmt.Errorf("root %s vanished", root)
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())
}
