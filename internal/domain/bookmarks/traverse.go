package bookmarks

import "fmt"

// Walk visits root and every descendant depth-first, pre-order.
func Walk(root *Node, fn func(*Node)) {
	fn(root)
	for _, child := range root.Children {
		Walk(child, fn)
	}
}

// WalkWithParent is Walk with the immediate parent passed alongside
// each node. The root's parent is nil.
func WalkWithParent(root *Node, fn func(node, parent *Node)) {
	walkWithParent(root, nil, fn)
}

func walkWithParent(node, parent *Node, fn func(node, parent *Node)) {
	fn(node, parent)
	for _, child := range node.Children {
		walkWithParent(child, node, fn)
	}
}

// PresentIDs collects every id in the tree. With requireAll, a node
// with a zero id fails; with requireUnique, a repeated id fails.
func PresentIDs(root *Node, requireAll, requireUnique bool) (map[int64]struct{}, error) {
	ids := make(map[int64]struct{})
	var walkErr error
	Walk(root, func(n *Node) {
		if walkErr != nil {
			return
		}
		if requireAll && n.ID == 0 {
			walkErr = fmt.Errorf("%w: node %q has no id", ErrInvalidStructure, n.Title)
			return
		}
		if requireUnique {
			if _, seen := ids[n.ID]; seen {
				walkErr = fmt.Errorf("%w: id %d", ErrDuplicateID, n.ID)
				return
			}
		}
		ids[n.ID] = struct{}{}
	})
	if walkErr != nil {
		return nil, walkErr
	}
	return ids, nil
}

// Firefox reserves id 1 for the places root, so fresh ids start at 2.
const firstAssignedID int64 = 2

// UniquifyIDs reassigns a fresh, strictly increasing id to every node
// in pre-order and points each Parent field at the parent's fresh id.
// Previous ids are discarded; the root's parent is cleared.
func UniquifyIDs(root *Node) {
	assignIDs(root, nil, firstAssignedID)
}

func assignIDs(node, parent *Node, next int64) int64 {
	node.ID = next
	next++
	if parent != nil {
		node.Parent = parent.ID
	} else {
		node.Parent = 0
	}
	for _, child := range node.Children {
		next = assignIDs(child, node, next)
	}
	return next
}
