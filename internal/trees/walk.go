package trees

// Walk visits node and its descendants in pre-order, children in the order
// returned by Children.
func Walk(node Node, visit func(node Node, depth int)) {
	walk(node, 0, visit)
}

func walk(node Node, depth int, visit func(node Node, depth int)) {
	visit(node, depth)
	for _, child := range node.Children() {
		walk(child, depth+1, visit)
	}
}

// Count returns the number of nodes of each role under and including node.
func Count(node Node) map[Role]int {
	counts := make(map[Role]int, 3)
	Walk(node, func(n Node, _ int) {
		counts[n.Role()]++
	})
	return counts
}
