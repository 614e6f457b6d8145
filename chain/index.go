package chain

import (
	"math"

	"github.com/google/btree"

	"github.com/iancw/noding/coordinate"
)

// nodeCapacity bounds how many children a non-leaf Index node may hold,
// following the STR (sort-tile-recursive) bulk-loading algorithm.
const nodeCapacity = 10

// Index is an STR-packed spatial index over a fixed set of monotone
// chains. It is built once from the full chain set and queried many times;
// it does not support incremental insertion.
type Index struct {
	root  *node
	count int
}

type node struct {
	envelope coordinate.Envelope
	chain    *MonotoneChain // non-nil only for leaves
	children []*node
}

// NewIndex bulk-loads an Index over chains using the STR packing
// algorithm: repeatedly tile the current level into vertical slices sorted
// by envelope centroid X, sort each slice by centroid Y, then group every
// nodeCapacity consecutive items into a parent node, until one root node
// remains.
func NewIndex(chains []*MonotoneChain) *Index {
	if len(chains) == 0 {
		return &Index{}
	}

	leaves := make([]*node, len(chains))
	for i, c := range chains {
		leaves[i] = &node{envelope: c.Envelope, chain: c}
	}

	return &Index{root: buildLevels(leaves), count: len(chains)}
}

func buildLevels(level []*node) *node {
	if len(level) == 1 {
		return level[0]
	}
	return buildLevels(packSTR(level))
}

func packSTR(level []*node) []*node {
	n := len(level)
	sliceCount := int(math.Ceil(math.Sqrt(float64(n) / float64(nodeCapacity))))
	if sliceCount < 1 {
		sliceCount = 1
	}
	sliceSize := int(math.Ceil(float64(n) / float64(sliceCount)))

	byX := sortNodesByCentroid(level, true)

	var parents []*node
	for i := 0; i < len(byX); i += sliceSize {
		end := i + sliceSize
		if end > len(byX) {
			end = len(byX)
		}
		byY := sortNodesByCentroid(byX[i:end], false)

		for j := 0; j < len(byY); j += nodeCapacity {
			g := j + nodeCapacity
			if g > len(byY) {
				g = len(byY)
			}
			parents = append(parents, packGroup(byY[j:g]))
		}
	}
	return parents
}

func packGroup(group []*node) *node {
	env := group[0].envelope
	for _, g := range group[1:] {
		env = env.Union(g.envelope)
	}
	return &node{envelope: env, children: group}
}

// sortItem pairs a node with its original position so the ordering used to
// sort nodes by centroid stays deterministic when two centroids tie.
type sortItem struct {
	n   *node
	idx int
}

// sortNodesByCentroid orders nodes along the X or Y centroid axis using an
// ordered B-tree rather than an ad hoc sort, mirroring how the rest of the
// noding core leans on github.com/google/btree for ordered accumulation.
func sortNodesByCentroid(nodes []*node, byX bool) []*node {
	less := func(a, b sortItem) bool {
		var ka, kb float64
		if byX {
			ka, kb = a.n.envelope.CentreX(), b.n.envelope.CentreX()
		} else {
			ka, kb = a.n.envelope.CentreY(), b.n.envelope.CentreY()
		}
		if ka != kb {
			return ka < kb
		}
		return a.idx < b.idx
	}

	tree := btree.NewG(32, less)
	for i, n := range nodes {
		tree.ReplaceOrInsert(sortItem{n: n, idx: i})
	}

	out := make([]*node, 0, len(nodes))
	tree.Ascend(func(item sortItem) bool {
		out = append(out, item.n)
		return true
	})
	return out
}

// Query returns every chain in the index whose envelope intersects env.
func (idx *Index) Query(env coordinate.Envelope) []*MonotoneChain {
	if idx.root == nil {
		return nil
	}
	var result []*MonotoneChain
	queryNode(idx.root, env, &result)
	return result
}

func queryNode(n *node, env coordinate.Envelope, result *[]*MonotoneChain) {
	if !n.envelope.Intersects(env) {
		return
	}
	if n.chain != nil {
		*result = append(*result, n.chain)
		return
	}
	for _, c := range n.children {
		queryNode(c, env, result)
	}
}

// Len returns the number of chains held in the index.
func (idx *Index) Len() int {
	return idx.count
}
