package output

import (
	"fmt"
	"strings"

	"github.com/marcus/duty/internal/models"
)

// TreeNode represents a node in a tree structure for rendering
type TreeNode struct {
	ID       string
	Label    string
	Manager  bool
	Children []TreeNode
}

// TreeRenderOptions configures tree rendering behavior
type TreeRenderOptions struct {
	MaxDepth    int  // 0 = unlimited
	ShowIDs     bool // Whether to print node IDs
	MarkManager bool // Whether to flag managers
}

// managerMark returns the manager indicator symbol
func managerMark(manager bool) string {
	if manager {
		return " ★"
	}
	return ""
}

// BuildingTree groups students into one node per building, in the order the
// students are given.
func BuildingTree(students []models.Student) []TreeNode {
	var roots []TreeNode
	index := make(map[int]int)

	for _, s := range students {
		i, ok := index[s.Building]
		if !ok {
			i = len(roots)
			index[s.Building] = i
			roots = append(roots, TreeNode{
				ID:    fmt.Sprintf("building-%d", s.Building),
				Label: fmt.Sprintf("Building %d", s.Building),
			})
		}
		roots[i].Children = append(roots[i].Children, TreeNode{
			ID:      s.ID,
			Label:   s.Name,
			Manager: s.IsManager,
		})
	}
	return roots
}

// RenderTreeLines renders multiple root nodes and returns individual lines
func RenderTreeLines(roots []TreeNode, opts TreeRenderOptions) []string {
	var lines []string
	for _, root := range roots {
		lines = append(lines, root.Label)
		lines = append(lines, renderTreeNodes(root.Children, opts, 1, "")...)
	}
	return lines
}

// RenderTree renders the roots as a single string
func RenderTree(roots []TreeNode, opts TreeRenderOptions) string {
	return strings.Join(RenderTreeLines(roots, opts), "\n")
}

// renderTreeNodes recursively renders tree nodes
func renderTreeNodes(nodes []TreeNode, opts TreeRenderOptions, depth int, prefix string) []string {
	if opts.MaxDepth > 0 && depth >= opts.MaxDepth {
		return nil
	}

	var lines []string

	for i, node := range nodes {
		isLast := i == len(nodes)-1

		connector := "├── " // ├──
		if isLast {
			connector = "└── " // └──
		}

		var parts []string
		if opts.ShowIDs {
			parts = append(parts, node.ID+":")
		}
		parts = append(parts, node.Label)

		line := prefix + connector + strings.Join(parts, " ")
		if opts.MarkManager {
			line += managerMark(node.Manager)
		}
		lines = append(lines, line)

		childPrefix := prefix
		if isLast {
			childPrefix += "    "
		} else {
			childPrefix += "│   " // │
		}

		lines = append(lines, renderTreeNodes(node.Children, opts, depth+1, childPrefix)...)
	}

	return lines
}
