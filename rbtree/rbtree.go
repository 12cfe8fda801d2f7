package rbtree

import (
	"github.com/UnsavedDragon/RedBlackTree/merrs"
)

// Compare returns an integer comparing two values: 0 if a==b, <0 if
// a < b, and >0 if a > b. The order must be total and consistent for
// the lifetime of the tree; the tree does not validate it.
type Compare func(a, b interface{}) int

// Tree is a red-black tree ordered by a caller supplied comparator.
// Duplicate values are kept, equal values route to the right of their
// peers. Not safe for concurrent use: callers must serialize mutation
// against mutation and against traversal.
//
// Absent children point at a per-tree sentinel node which is always
// Black, never holds a value and is never restructured. The root
// pointer is nil while the tree is empty; a present root's parent is
// the sentinel.
type Tree struct {
	root    *Node
	sent    *Node
	compare Compare
	size    int
}

// New creates an empty tree ordered by compare.
func New(compare Compare) *Tree {
	sent := &Node{color: Black, sentinel: true}
	sent.left, sent.right, sent.parent = sent, sent, sent
	return &Tree{sent: sent, compare: compare}
}

// Len returns the number of nodes in the tree.
func (t *Tree) Len() int {
	return t.size
}

// Root returns the root node, or nil when the tree is empty.
func (t *Tree) Root() *Node {
	return t.root
}

// Min returns the smallest value, nil when the tree is empty.
func (t *Tree) Min() interface{} {
	if t.root == nil {
		return nil
	}
	n := t.root
	for n.left != t.sent {
		n = n.left
	}
	return n.value
}

// Max returns the largest value, nil when the tree is empty.
func (t *Tree) Max() interface{} {
	if t.root == nil {
		return nil
	}
	n := t.root
	for n.right != t.sent {
		n = n.right
	}
	return n.value
}

// rotateLeft promotes node's right child into node's position.
// Rotating the sentinel is a no-op. Rotating a node whose right child
// is the sentinel means the balancing engine is broken, not a caller
// error, so it aborts.
func (t *Tree) rotateLeft(node *Node) {
	if node == nil || node == t.sent {
		return
	}
	right := node.right
	if right == t.sent {
		panic(merrs.ProgrammerError.New("rotateLeft: right child of %v is the sentinel", node.value))
	}
	node.right = right.left
	if right.left != t.sent {
		right.left.parent = node
	}
	right.parent = node.parent
	if node.parent == t.sent {
		t.root = right
	} else if node == node.parent.left {
		node.parent.left = right
	} else {
		node.parent.right = right
	}
	right.left = node
	node.parent = right
}

// rotateRight is the mirror of rotateLeft.
func (t *Tree) rotateRight(node *Node) {
	if node == nil || node == t.sent {
		return
	}
	left := node.left
	if left == t.sent {
		panic(merrs.ProgrammerError.New("rotateRight: left child of %v is the sentinel", node.value))
	}
	node.left = left.right
	if left.right != t.sent {
		left.right.parent = node
	}
	left.parent = node.parent
	if node.parent == t.sent {
		t.root = left
	} else if node == node.parent.right {
		node.parent.right = left
	} else {
		node.parent.left = left
	}
	left.right = node
	node.parent = left
}

// Insert adds value to the tree. Duplicates are permitted and are
// placed to the right of comparator-equal values.
func (t *Tree) Insert(value interface{}) {
	node := &Node{value: value, color: Red, left: t.sent, right: t.sent, parent: t.sent}

	x := t.root
	if x == nil {
		x = t.sent
	}
	px := t.sent
	for x != t.sent {
		px = x
		if t.compare(x.value, value) > 0 {
			x = x.left
		} else {
			x = x.right
		}
	}

	node.parent = px
	if px == t.sent {
		t.root = node
	} else if t.compare(px.value, value) > 0 {
		px.left = node
	} else {
		px.right = node
	}

	t.size++
	t.fixInsert(node)
}

// fixInsert restores the red-black properties after node was linked in
// red. Red uncle: recolor and ascend. Black uncle: at most two
// rotations and the loop terminates.
func (t *Tree) fixInsert(node *Node) {
	for node.parent.color == Red {
		if node.parent == node.parent.parent.left {
			uncle := node.parent.parent.right
			if uncle.color == Red {
				node.parent.color = Black
				uncle.color = Black
				node.parent.parent.color = Red
				node = node.parent.parent
			} else {
				if node == node.parent.right {
					node = node.parent
					t.rotateLeft(node)
				}
				node.parent.color = Black
				node.parent.parent.color = Red
				t.rotateRight(node.parent.parent)
			}
		} else {
			uncle := node.parent.parent.left
			if uncle.color == Red {
				node.parent.color = Black
				uncle.color = Black
				node.parent.parent.color = Red
				node = node.parent.parent
			} else {
				if node == node.parent.left {
					node = node.parent
					t.rotateRight(node)
				}
				node.parent.color = Black
				node.parent.parent.color = Red
				t.rotateLeft(node.parent.parent)
			}
		}
	}
	t.root.color = Black
}

// Search reports whether a comparator-equal value exists in the tree.
func (t *Tree) Search(value interface{}) bool {
	return t.locate(value) != nil
}

// locate returns the node holding a comparator-equal value, nil when
// absent. With duplicates present it returns the first match on the
// descent path.
func (t *Tree) locate(value interface{}) *Node {
	cur := t.root
	if cur == nil {
		return nil
	}
	for cur != t.sent {
		cmp := t.compare(value, cur.value)
		if cmp == 0 {
			return cur
		}
		if cmp < 0 {
			cur = cur.left
		} else {
			cur = cur.right
		}
	}
	return nil
}

// Delete removes one node holding a comparator-equal value and reports
// whether anything was removed. Which node is removed when duplicates
// exist is unspecified beyond comparator equality.
func (t *Tree) Delete(value interface{}) bool {
	node := t.locate(value)
	if node == nil {
		return false
	}
	t.deleteNode(node)
	t.size--
	return true
}

func (t *Tree) deleteNode(node *Node) {
	// Two children: move the in-order successor's value into node and
	// remove the successor instead; it has no left child.
	if node.left != t.sent && node.right != t.sent {
		succ := node.right
		for succ.left != t.sent {
			succ = succ.left
		}
		node.value = succ.value
		node = succ
	}

	child := node.left
	if child == t.sent {
		child = node.right
	}
	parent := node.parent
	removedColor := node.color
	t.splice(node, child)

	// Splicing out a black node leaves its former paths one black
	// short. The deficiency may land on the sentinel, so the fix-up
	// tracks the parent explicitly instead of a usable parent link.
	if removedColor == Black && t.root != nil {
		t.fixDelete(child, parent)
	}
}

// splice replaces node with child in node's parent slot and releases
// node's links. child may be the sentinel.
func (t *Tree) splice(node, child *Node) {
	parent := node.parent
	if child != t.sent {
		child.parent = parent
	}
	if parent == t.sent {
		if child == t.sent {
			t.root = nil
		} else {
			t.root = child
		}
	} else if parent.left == node {
		parent.left = child
	} else {
		parent.right = child
	}
	node.left, node.right, node.parent = t.sent, t.sent, t.sent
}

// fixDelete resolves a double-black deficiency at the position now
// occupied by x under parent. x may be the sentinel; the sentinel is
// never written, only read for its constant black color.
func (t *Tree) fixDelete(x, parent *Node) {
	for x != t.root && x.color == Black {
		if x == parent.left {
			sib := parent.right
			if sib == t.sent {
				panic(merrs.ProgrammerError.New("fixDelete: black deficit at %v with no sibling", parent.value))
			}
			if sib.color == Red {
				// Red sibling: rotate to expose a black one.
				sib.color = Black
				parent.color = Red
				t.rotateLeft(parent)
				sib = parent.right
			}
			if sib.left.color == Black && sib.right.color == Black {
				// Both nephews black: drop a black from the sibling
				// side and push the deficiency to the parent.
				sib.color = Red
				x = parent
				parent = x.parent
			} else {
				if sib.right.color == Black {
					// Near nephew red: rotate it into the far slot.
					sib.left.color = Black
					sib.color = Red
					t.rotateRight(sib)
					sib = parent.right
				}
				// Far nephew red: rotation refills the missing black.
				sib.color = parent.color
				parent.color = Black
				sib.right.color = Black
				t.rotateLeft(parent)
				x = t.root
				parent = t.sent
			}
		} else {
			sib := parent.left
			if sib == t.sent {
				panic(merrs.ProgrammerError.New("fixDelete: black deficit at %v with no sibling", parent.value))
			}
			if sib.color == Red {
				sib.color = Black
				parent.color = Red
				t.rotateRight(parent)
				sib = parent.left
			}
			if sib.left.color == Black && sib.right.color == Black {
				sib.color = Red
				x = parent
				parent = x.parent
			} else {
				if sib.left.color == Black {
					sib.right.color = Black
					sib.color = Red
					t.rotateLeft(sib)
					sib = parent.left
				}
				sib.color = parent.color
				parent.color = Black
				sib.left.color = Black
				t.rotateRight(parent)
				x = t.root
				parent = t.sent
			}
		}
	}
	if x != t.sent {
		x.color = Black
	}
}
