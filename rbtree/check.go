package rbtree

import (
	"github.com/UnsavedDragon/RedBlackTree/merrs"
)

// Check walks the whole tree and verifies the red-black structural
// properties: black root, no red node with a red child, equal black
// count on every leaf path, consistent parent/child links and ordered
// values. It returns nil when the tree is well formed.
func (t *Tree) Check() error {
	if t.root == nil {
		if t.size != 0 {
			return merrs.ErrValid.New("empty tree reports size %d", t.size)
		}
		return nil
	}
	if t.root.color != Black {
		return merrs.ErrValid.New("root %v is red", t.root.value)
	}
	if t.root.parent != t.sent {
		return merrs.ErrValid.New("root %v has a real parent", t.root.value)
	}
	count, _, err := t.checkNode(t.root)
	if err != nil {
		return err
	}
	if count != t.size {
		return merrs.ErrValid.New("counted %d nodes, size is %d", count, t.size)
	}
	var prev interface{}
	first := true
	t.InOrder(func(v interface{}, _ Color) bool {
		if !first && t.compare(prev, v) > 0 {
			err = merrs.ErrValid.New("in-order violation: %v before %v", prev, v)
			return false
		}
		prev, first = v, false
		return true
	})
	return err
}

// checkNode returns the node count and black-height of n's subtree.
func (t *Tree) checkNode(n *Node) (count, blackHeight int, err error) {
	if n == t.sent {
		return 0, 1, nil
	}
	if n.left != t.sent && n.left.parent != n {
		return 0, 0, merrs.ErrValid.New("left child of %v does not point back", n.value)
	}
	if n.right != t.sent && n.right.parent != n {
		return 0, 0, merrs.ErrValid.New("right child of %v does not point back", n.value)
	}
	if n.color == Red && (n.left.color == Red || n.right.color == Red) {
		return 0, 0, merrs.ErrValid.New("red node %v has a red child", n.value)
	}
	lc, lh, err := t.checkNode(n.left)
	if err != nil {
		return 0, 0, err
	}
	rc, rh, err := t.checkNode(n.right)
	if err != nil {
		return 0, 0, err
	}
	if lh != rh {
		return 0, 0, merrs.ErrValid.New("black-height mismatch at %v: %d vs %d", n.value, lh, rh)
	}
	if n.color == Black {
		lh++
	}
	return lc + rc + 1, lh, nil
}
