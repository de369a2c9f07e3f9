package trees

import (
	"pageview-analytics/internal/models"
)

// ParameterNode is a query-string key seen on URLs ending at its parent path.
type ParameterNode struct {
	trackedNode
	values childSet[*ValueNode]
}

func (p *ParameterNode) Role() Role { return RoleParameter }

// FullPath renders "<parent path>?<name>".
func (p *ParameterNode) FullPath() string {
	return parentPath(p.parent) + "?" + p.name
}

func (p *ParameterNode) String() string {
	return parentPath(p.parent) + "?" + p.describe()
}

// RecordValue merges metrics into the value called name, creating it on first
// use, and returns it.
func (p *ParameterNode) RecordValue(name string, metrics models.MetricSet, sortField string) *ValueNode {
	value := p.values.getOrCreate(name, func() *ValueNode {
		return &ValueNode{trackedNode: newTrackedNode(name, p)}
	})
	value.record(metrics, sortField)
	return value
}

func (p *ParameterNode) Value(name string) (*ValueNode, bool) {
	return p.values.get(name)
}

// Values returns the distinct values in insertion order.
func (p *ParameterNode) Values() []*ValueNode {
	return p.values.all()
}

func (p *ParameterNode) Children() []Node {
	out := make([]Node, 0, p.values.len())
	for _, value := range p.values.order {
		out = append(out, value)
	}
	return out
}

// ValueNode is one distinct value of a query parameter.
type ValueNode struct {
	trackedNode
}

func (v *ValueNode) Role() Role { return RoleValue }

// FullPath renders "<parameter path>=<name>".
func (v *ValueNode) FullPath() string {
	return parentPath(v.parent) + "=" + v.name
}

func (v *ValueNode) String() string {
	return parentPath(v.parent) + "=" + v.describe()
}

func (v *ValueNode) Children() []Node {
	return nil
}
