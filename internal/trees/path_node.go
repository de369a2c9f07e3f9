package trees

import (
	"pageview-analytics/internal/models"
)

// PathNode is one "/"-separated segment of a URL path. It owns the path segments
// seen below it and the query parameters seen on URLs ending at it.
type PathNode struct {
	trackedNode
	children   childSet[*PathNode]
	parameters childSet[*ParameterNode]
}

// NewRoot creates the root of a tree: a path node with no parent and no name.
func NewRoot() *PathNode {
	return &PathNode{trackedNode: newTrackedNode("", nil)}
}

func (p *PathNode) Role() Role { return RolePath }

// FullPath renders "<parent path>/<name>"; the root renders "".
func (p *PathNode) FullPath() string {
	if p.parent == nil {
		return ""
	}
	return p.parent.FullPath() + "/" + p.name
}

func (p *PathNode) String() string {
	return parentPath(p.parent) + "/" + p.describe()
}

// Record merges metrics into the node.
func (p *PathNode) Record(metrics models.MetricSet, sortField string) {
	p.record(metrics, sortField)
}

// RecordChild merges metrics into the child segment called name, creating it on
// first use, and returns it.
func (p *PathNode) RecordChild(name string, metrics models.MetricSet, sortField string) *PathNode {
	child := p.children.getOrCreate(name, func() *PathNode {
		return &PathNode{trackedNode: newTrackedNode(name, p)}
	})
	child.record(metrics, sortField)
	return child
}

// RecordParameter merges metrics into the parameter called name, creating it on
// first use, and returns it.
func (p *PathNode) RecordParameter(name string, metrics models.MetricSet, sortField string) *ParameterNode {
	parameter := p.parameters.getOrCreate(name, func() *ParameterNode {
		return &ParameterNode{trackedNode: newTrackedNode(name, p)}
	})
	parameter.record(metrics, sortField)
	return parameter
}

// MarkLeaf flags the node as the last segment of an ingested URL.
func (p *PathNode) MarkLeaf() {
	p.leaf = true
}

func (p *PathNode) Child(name string) (*PathNode, bool) {
	return p.children.get(name)
}

func (p *PathNode) Parameter(name string) (*ParameterNode, bool) {
	return p.parameters.get(name)
}

// ChildPaths returns the child segments in insertion order.
func (p *PathNode) ChildPaths() []*PathNode {
	return p.children.all()
}

// Parameters returns the parameters in insertion order.
func (p *PathNode) Parameters() []*ParameterNode {
	return p.parameters.all()
}

func (p *PathNode) HasParameters() bool {
	return p.parameters.len() > 0
}

// Children returns the parameters followed by the child segments.
func (p *PathNode) Children() []Node {
	out := make([]Node, 0, p.parameters.len()+p.children.len())
	for _, parameter := range p.parameters.order {
		out = append(out, parameter)
	}
	for _, child := range p.children.order {
		out = append(out, child)
	}
	return out
}
