package avltree

import "math"

// avgVar accumulates the running count, mean, and standard deviation of
// a stream of samples in constant space, the same running-moments
// technique btree packages in this family use to report height
// distributions without retaining every sample.
type avgVar struct {
	count      int64
	sum, sumSq float64
}

func (av *avgVar) add(sample float64) {
	av.count++
	av.sum += sample
	av.sumSq += sample * sample
}

func (av *avgVar) avg() float64 {
	if av.count == 0 {
		return 0
	}
	return av.sum / float64(av.count)
}

func (av *avgVar) stddev() float64 {
	if av.count == 0 {
		return 0
	}
	a := av.avg()
	variance := av.sumSq/float64(av.count) - a*a
	if variance < 0 {
		// Guard against floating point noise pushing a near-zero
		// variance negative.
		variance = 0
	}
	return math.Sqrt(variance)
}

// TreeStats summarizes the shape of a tree: how many nodes it holds, how
// tall it actually is, and how that height distributes across leaves.
// It exists so a caller can confirm, at runtime, that the realized
// height is tracking the O(log n) guarantee rather than merely trusting
// it.
type TreeStats struct {
	NodeCount       int
	Height          int
	AvgLeafDepth    float64
	LeafDepthStdDev float64
}

// WithinAVLBound reports whether s.Height is within the worst-case AVL
// bound of ceil(1.4405*log2(NodeCount+1)) for the recorded node count. An
// empty tree is trivially within bound.
func (s TreeStats) WithinAVLBound() bool {
	if s.NodeCount == 0 {
		return s.Height == 0
	}
	bound := int(math.Ceil(1.4405 * math.Log2(float64(s.NodeCount+1))))
	return s.Height <= bound
}

// Stats walks the tree rooted at root, iteratively, and reports its
// shape. Like Validate, it is a diagnostic, not part of the hot
// insert/remove/lookup path, and it honors the same no-recursion
// discipline as the rest of the package: it drives the walk with the
// parent-pointer in-order successor rather than a call stack.
func Stats[V any](root *Node[V]) TreeStats {
	if root == nil {
		return TreeStats{}
	}

	var leafDepths avgVar
	count := 0

	for cur := FindMin(root); cur != nil; cur = inOrderSuccessor(cur) {
		count++
		if cur.left == nil && cur.right == nil {
			depth := 0
			for p := cur; p.parent != nil; p = p.parent {
				depth++
			}
			leafDepths.add(float64(depth))
		}
	}

	return TreeStats{
		NodeCount:       count,
		Height:          root.Height(),
		AvgLeafDepth:    leafDepths.avg(),
		LeafDepthStdDev: leafDepths.stddev(),
	}
}
