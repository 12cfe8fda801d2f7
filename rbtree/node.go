package rbtree

// Color is the red-black color tag of a node. The sentinel and every
// absent link count as Black.
type Color int8

const (
	Red Color = iota
	Black
)

func (c Color) String() string {
	if c == Red {
		return "R"
	}
	return "B"
}

// Node is a cell of a Tree. The value is fixed at creation; color and
// links belong to the balancing engine and must not be written from
// outside the tree.
type Node struct {
	value    interface{}
	color    Color
	left     *Node
	right    *Node
	parent   *Node
	sentinel bool
}

// Value returns the stored value, nil for the sentinel.
func (n *Node) Value() interface{} { return n.value }

// Color returns the node color. The sentinel is always Black.
func (n *Node) Color() Color { return n.color }

// Left returns the left child. The sentinel returns itself.
func (n *Node) Left() *Node { return n.left }

// Right returns the right child. The sentinel returns itself.
func (n *Node) Right() *Node { return n.right }

// Parent returns the parent node. The root's parent is the sentinel,
// and the sentinel returns itself.
func (n *Node) Parent() *Node { return n.parent }

// IsSentinel reports whether n is its tree's nil placeholder.
func (n *Node) IsSentinel() bool { return n.sentinel }
