package rbtree

// Visitor receives a value and its node color. Return false to stop
// the walk early.
type Visitor func(value interface{}, color Color) bool

// InOrder visits every node in ascending comparator order. The walk is
// read-only and restartable; it must not overlap a mutation.
func (t *Tree) InOrder(visit Visitor) {
	t.inOrder(t.root, visit)
}

func (t *Tree) inOrder(n *Node, visit Visitor) bool {
	if n == nil || n == t.sent {
		return true
	}
	if !t.inOrder(n.left, visit) {
		return false
	}
	if !visit(n.value, n.color) {
		return false
	}
	return t.inOrder(n.right, visit)
}

// InOrderReverse visits every node in descending comparator order.
func (t *Tree) InOrderReverse(visit Visitor) {
	t.inOrderReverse(t.root, visit)
}

func (t *Tree) inOrderReverse(n *Node, visit Visitor) bool {
	if n == nil || n == t.sent {
		return true
	}
	if !t.inOrderReverse(n.right, visit) {
		return false
	}
	if !visit(n.value, n.color) {
		return false
	}
	return t.inOrderReverse(n.left, visit)
}

// PreOrder visits every node parent first.
func (t *Tree) PreOrder(visit Visitor) {
	t.preOrder(t.root, visit)
}

func (t *Tree) preOrder(n *Node, visit Visitor) bool {
	if n == nil || n == t.sent {
		return true
	}
	if !visit(n.value, n.color) {
		return false
	}
	if !t.preOrder(n.left, visit) {
		return false
	}
	return t.preOrder(n.right, visit)
}

// PostOrder visits every node children first.
func (t *Tree) PostOrder(visit Visitor) {
	t.postOrder(t.root, visit)
}

func (t *Tree) postOrder(n *Node, visit Visitor) bool {
	if n == nil || n == t.sent {
		return true
	}
	if !t.postOrder(n.left, visit) {
		return false
	}
	if !t.postOrder(n.right, visit) {
		return false
	}
	return visit(n.value, n.color)
}

// Values returns the stored values in ascending comparator order.
func (t *Tree) Values() []interface{} {
	vals := make([]interface{}, 0, t.size)
	t.InOrder(func(v interface{}, _ Color) bool {
		vals = append(vals, v)
		return true
	})
	return vals
}
