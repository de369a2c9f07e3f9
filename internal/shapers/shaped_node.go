package shapers

import (
	"pageview-analytics/internal/trees"
)

// ShapedNode is a detached, render-ready copy of a tree node. Weight is the
// rescaled size in [1, 101]; Raw is the sort field value it was derived from.
type ShapedNode struct {
	Name     string        `json:"name" yaml:"name"`
	FullPath string        `json:"fullPath" yaml:"fullPath"`
	Role     trees.Role    `json:"role" yaml:"role"`
	Leaf     bool          `json:"leaf" yaml:"leaf"`
	Raw      float64       `json:"raw" yaml:"raw"`
	Weight   float64       `json:"weight" yaml:"weight"`
	Children []*ShapedNode `json:"children,omitempty" yaml:"children,omitempty"`
}

// Size returns the number of nodes under and including n.
func (n *ShapedNode) Size() int {
	size := 1
	for _, child := range n.Children {
		size += child.Size()
	}
	return size
}

// Stats counts what shaping did to the tree.
type Stats struct {
	Kept              int `json:"kept"`
	PrunedByThreshold int `json:"prunedByThreshold"`
	PrunedByCap       int `json:"prunedByCap"`
}
