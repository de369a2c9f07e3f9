package trees

import (
	"pageview-analytics/internal/models"
)

// Role identifies which level of the hierarchy a node belongs to.
type Role string

const (
	RolePath      Role = "path"
	RoleParameter Role = "parameter"
	RoleValue     Role = "value"
)

// Node is the behaviour shared by path, parameter and value nodes.
type Node interface {
	Name() string
	Role() Role
	// Parent is nil for the root.
	Parent() Node
	Metrics() models.MetricSet
	// Weight is the value of the sort field after the last record.
	Weight() float64
	IsLeaf() bool
	// FullPath rebuilds the URL representation of the node, e.g. "/a/b?x=1".
	FullPath() string
	String() string
	// Children returns the owned children in insertion order.
	Children() []Node
}

type trackedNode struct {
	name    string
	parent  Node // back reference, the parent owns this node
	metrics models.MetricSet
	weight  float64
	leaf    bool
}

func newTrackedNode(name string, parent Node) trackedNode {
	return trackedNode{
		name:    name,
		parent:  parent,
		metrics: models.MetricSet{},
	}
}

func (n *trackedNode) Name() string              { return n.name }
func (n *trackedNode) Parent() Node              { return n.parent }
func (n *trackedNode) Metrics() models.MetricSet { return n.metrics }
func (n *trackedNode) Weight() float64           { return n.weight }
func (n *trackedNode) IsLeaf() bool              { return n.leaf }

func (n *trackedNode) record(metrics models.MetricSet, sortField string) {
	n.metrics.Merge(metrics)
	n.weight = n.metrics.Get(sortField)
}

func (n *trackedNode) describe() string {
	return n.name + ": " + n.metrics.String()
}

func parentPath(parent Node) string {
	if parent == nil {
		return ""
	}
	return parent.FullPath()
}

// childSet owns the children of one kind, keyed by name, in insertion order.
type childSet[T any] struct {
	order  []T
	byName map[string]T
}

func (s *childSet[T]) get(name string) (T, bool) {
	child, ok := s.byName[name]
	return child, ok
}

// getOrCreate returns the child called name, creating it on first use.
func (s *childSet[T]) getOrCreate(name string, create func() T) T {
	if child, ok := s.byName[name]; ok {
		return child
	}
	if s.byName == nil {
		s.byName = make(map[string]T)
	}
	child := create()
	s.byName[name] = child
	s.order = append(s.order, child)
	return child
}

func (s *childSet[T]) len() int {
	return len(s.order)
}

func (s *childSet[T]) all() []T {
	out := make([]T, len(s.order))
	copy(out, s.order)
	return out
}
