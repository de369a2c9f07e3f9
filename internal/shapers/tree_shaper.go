package shapers

import (
	"math"
	"sort"

	"pageview-analytics/internal/trees"
)

const (
	weightSpan = 100
	weightMin  = 1
	// weightConstant is used for every node when all raw values are equal.
	weightConstant = weightMin + weightSpan/2
)

//go:generate mockgen -source=tree_shaper.go -destination=./mocks/tree_shaper_mock.go -package=mocks
type TreeShaper interface {
	// Prepare derives a shaped copy of the tree under root. Nodes whose raw value is
	// below threshold are dropped with their descendants; the root is always kept.
	// With maxChildren > 0 only the heaviest maxChildren children of each node survive.
	Prepare(root trees.Node, threshold float64, maxChildren int) (*ShapedNode, Stats)
}

type treeShaper struct{}

func NewTreeShaper() TreeShaper {
	return &treeShaper{}
}

func (s *treeShaper) Prepare(root trees.Node, threshold float64, maxChildren int) (*ShapedNode, Stats) {
	scale := newLogScale(root)
	b := &builder{scale: scale, threshold: threshold, maxChildren: maxChildren}
	shaped := b.shape(root)
	b.stats.Kept = shaped.Size()

	metricNodesTotal.WithLabelValues(outcomeKept).Add(float64(b.stats.Kept))
	metricNodesTotal.WithLabelValues(outcomeThreshold).Add(float64(b.stats.PrunedByThreshold))
	metricNodesTotal.WithLabelValues(outcomeCap).Add(float64(b.stats.PrunedByCap))
	return shaped, b.stats
}

func rawValue(node trees.Node) float64 {
	return math.Max(node.Weight(), 0)
}

// logScale maps raw values onto [1, 101] linearly in log(raw+1), using the range
// found over the whole tree.
type logScale struct {
	min, max float64
}

func newLogScale(root trees.Node) logScale {
	scale := logScale{min: math.Inf(1), max: math.Inf(-1)}
	trees.Walk(root, func(node trees.Node, _ int) {
		w := math.Log1p(rawValue(node))
		scale.min = math.Min(scale.min, w)
		scale.max = math.Max(scale.max, w)
	})
	return scale
}

func (s logScale) adjust(raw float64) float64 {
	if s.max == s.min {
		return weightConstant
	}
	return weightSpan*(math.Log1p(raw)-s.min)/(s.max-s.min) + weightMin
}

type builder struct {
	scale       logScale
	threshold   float64
	maxChildren int
	stats       Stats
}

func (b *builder) shape(node trees.Node) *ShapedNode {
	raw := rawValue(node)
	shaped := &ShapedNode{
		Name:     node.Name(),
		FullPath: node.FullPath(),
		Role:     node.Role(),
		Leaf:     node.IsLeaf(),
		Raw:      raw,
		Weight:   b.scale.adjust(raw),
	}

	for _, child := range node.Children() {
		if rawValue(child) < b.threshold {
			b.stats.PrunedByThreshold += countNodes(child)
			continue
		}
		shaped.Children = append(shaped.Children, b.shape(child))
	}

	sort.SliceStable(shaped.Children, func(i, j int) bool {
		return shaped.Children[i].Weight < shaped.Children[j].Weight
	})
	if b.maxChildren > 0 && len(shaped.Children) > b.maxChildren {
		cut := len(shaped.Children) - b.maxChildren
		for _, dropped := range shaped.Children[:cut] {
			b.stats.PrunedByCap += dropped.Size()
		}
		shaped.Children = shaped.Children[cut:]
	}
	return shaped
}

func countNodes(node trees.Node) int {
	total := 0
	for _, n := range trees.Count(node) {
		total += n
	}
	return total
}
