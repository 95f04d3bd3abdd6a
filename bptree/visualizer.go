package bptree

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
)

/*
Visualizer renders the tree level by level: inner nodes with their
separators first, then the leaf chain. Meant for the CLI and for
eyeballing small trees, not for production output.
*/
type Visualizer struct {
	Tree *Tree
}

var (
	innerColor = color.New(color.FgCyan)
	leafColor  = color.New(color.FgGreen)
)

func (v *Visualizer) Visualize() string {
	var sb strings.Builder

	level := []*node{v.Tree.root}
	for depth := 0; len(level) > 0; depth++ {
		var next []*node
		parts := make([]string, 0, len(level))
		for _, n := range level {
			if n.isLeaf() {
				parts = append(parts, leafColor.Sprintf("[%s]", joinKeys(leafKeys(n))))
				continue
			}
			parts = append(parts, innerColor.Sprintf("(%s)", joinKeys(n.keys)))
			next = append(next, n.children...)
		}
		fmt.Fprintf(&sb, "h%d: %s\n", depth, strings.Join(parts, " "))
		level = next
	}
	return sb.String()
}

func leafKeys(n *node) [][]byte {
	keys := make([][]byte, len(n.items))
	for i, it := range n.items {
		keys[i] = it.key
	}
	return keys
}

func joinKeys(keys [][]byte) string {
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = string(k)
	}
	return strings.Join(parts, " ")
}
