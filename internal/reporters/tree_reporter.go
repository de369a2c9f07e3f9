package reporters

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"pageview-analytics/internal/trees"
)

const tabSize = 4

//go:generate mockgen -source=tree_reporter.go -destination=./mocks/tree_reporter_mock.go -package=mocks
type TreeReporter interface {
	// Print writes a depth-first dump of the tree under root. Siblings are ordered by
	// sortField, highest first when descending; ties keep insertion order.
	Print(w io.Writer, root *trees.PathNode, sortField string, descending bool) error
}

type treeReporter struct{}

func NewTreeReporter() TreeReporter {
	return &treeReporter{}
}

func (r *treeReporter) Print(w io.Writer, root *trees.PathNode, sortField string, descending bool) error {
	p := &printer{w: w, sortField: sortField, descending: descending}
	p.printPath(root, 0)
	return p.err
}

// printer keeps the first write error and skips the remaining writes.
type printer struct {
	w          io.Writer
	sortField  string
	descending bool
	err        error
}

func (p *printer) line(depth int, text string) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, "%s%s\n", strings.Repeat(" ", tabSize*depth), text)
}

// printPath prints the node, then its parameters with their values, then its
// child segments.
func (p *printer) printPath(node *trees.PathNode, depth int) {
	p.line(depth, node.String())

	if node.HasParameters() {
		p.line(depth+1, "Parameters:")
		for _, parameter := range sortNodes(node.Parameters(), p.sortField, p.descending) {
			p.line(depth+2, parameter.String())
			for _, value := range sortNodes(parameter.Values(), p.sortField, p.descending) {
				p.line(depth+3, value.String())
			}
		}
	}

	for _, child := range sortNodes(node.ChildPaths(), p.sortField, p.descending) {
		p.printPath(child, depth+1)
	}
}

func sortNodes[T trees.Node](nodes []T, sortField string, descending bool) []T {
	sort.SliceStable(nodes, func(i, j int) bool {
		a, b := nodes[i].Metrics().Get(sortField), nodes[j].Metrics().Get(sortField)
		if descending {
			return a > b
		}
		return a < b
	})
	return nodes
}
