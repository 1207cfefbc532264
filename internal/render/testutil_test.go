package render

import "strings"

func hasClass(n *Node, class string) bool {
	if n == nil || n.Attrs == nil {
		return false
	}
	for _, token := range strings.Fields(n.Attrs["class"]) {
		if token == class {
			return true
		}
	}
	return false
}

func findAllByClass(n *Node, class string) []*Node {
	if n == nil {
		return nil
	}
	var found []*Node
	if hasClass(n, class) {
		found = append(found, n)
	}
	for _, child := range n.Children {
		found = append(found, findAllByClass(child, class)...)
	}
	return found
}

func findByClass(n *Node, class string) *Node {
	all := findAllByClass(n, class)
	if len(all) == 0 {
		return nil
	}
	return all[0]
}

func collectText(n *Node) string {
	if n == nil {
		return ""
	}
	var b strings.Builder
	var walk func(*Node)
	walk = func(node *Node) {
		if node.Text != "" {
			b.WriteString(node.Text)
			b.WriteByte(' ')
		}
		for _, child := range node.Children {
			walk(child)
		}
	}
	walk(n)
	return b.String()
}
