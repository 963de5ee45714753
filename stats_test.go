package avltree

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatsEmptyTree(t *testing.T) {
	s := Stats[int](nil)
	assert.Equal(t, TreeStats{}, s)
	assert.True(t, s.WithinAVLBound())
}

func TestStatsSingleNode(t *testing.T) {
	n := NewNode(1, 0)
	recomputeHeight(n)
	s := Stats(n)
	assert.Equal(t, 1, s.NodeCount)
	assert.Equal(t, 1, s.Height)
	assert.Equal(t, 0.0, s.AvgLeafDepth)
	assert.Equal(t, 0.0, s.LeafDepthStdDev)
}

func TestStatsBalancedTreeHasZeroLeafDepthSpread(t *testing.T) {
	var root *Node[int]
	for _, k := range []uint64{4, 2, 6, 1, 3, 5, 7} {
		root = Insert(root, NewNode(k, 0))
	}
	s := Stats(root)
	assert.Equal(t, 7, s.NodeCount)
	assert.Equal(t, 3, s.Height)
	assert.Equal(t, 2.0, s.AvgLeafDepth)
	assert.InDelta(t, 0.0, s.LeafDepthStdDev, 1e-9)
}

func TestStatsWithinAVLBoundHoldsOverLargeTree(t *testing.T) {
	var root *Node[int]
	for i := uint64(0); i < 1024; i++ {
		root = Insert(root, NewNode(i, int(i)))
	}
	s := Stats(root)
	assert.Equal(t, 1024, s.NodeCount)
	assert.True(t, s.WithinAVLBound(), "height %d exceeds AVL bound for %d nodes", s.Height, s.NodeCount)
}
