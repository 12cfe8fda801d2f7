package rbtree_test

import (
	"math/rand"
	"testing"

	"github.com/UnsavedDragon/RedBlackTree/rbtree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intCompare(a, b interface{}) int {
	return a.(int) - b.(int)
}

func newIntTree(values ...int) *rbtree.Tree {
	t := rbtree.New(intCompare)
	for _, v := range values {
		t.Insert(v)
	}
	return t
}

func intValues(tree *rbtree.Tree) []int {
	vals := []int{}
	tree.InOrder(func(v interface{}, _ rbtree.Color) bool {
		vals = append(vals, v.(int))
		return true
	})
	return vals
}

func TestInsertScenario(t *testing.T) {
	seq := []int{3, 5, 10, 11, 2, 4, 8, 7, 1, 6, 9}
	tree := rbtree.New(intCompare)
	for i, v := range seq {
		tree.Insert(v)
		require.NoError(t, tree.Check(), "after inserting %d (step %d)", v, i)
		assert.Equal(t, i+1, tree.Len())
	}
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11}, intValues(tree))
	for _, v := range seq {
		assert.True(t, tree.Search(v), "search %d", v)
	}
	assert.False(t, tree.Search(99))
}

func TestDeleteTwoChildren(t *testing.T) {
	tree := newIntTree(3, 5, 10, 11, 2, 4, 8, 7, 1, 6, 9)
	assert.True(t, tree.Delete(10))
	require.NoError(t, tree.Check())
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 11}, intValues(tree))
	assert.False(t, tree.Search(10))
	assert.Equal(t, 10, tree.Len())
}

func TestDeleteAbsent(t *testing.T) {
	tree := newIntTree(3, 5, 10, 11, 2, 4, 8, 7, 1, 6, 9)
	before := intValues(tree)
	assert.False(t, tree.Delete(99))
	require.NoError(t, tree.Check())
	assert.Equal(t, before, intValues(tree))
	assert.Equal(t, len(before), tree.Len())
}

func TestDeleteAll(t *testing.T) {
	seq := []int{3, 5, 10, 11, 2, 4, 8, 7, 1, 6, 9}
	for _, order := range [][]int{
		{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11},
		{11, 10, 9, 8, 7, 6, 5, 4, 3, 2, 1},
		{6, 3, 9, 1, 11, 5, 7, 2, 10, 4, 8},
	} {
		tree := newIntTree(seq...)
		for i, v := range order {
			assert.True(t, tree.Delete(v), "delete %d", v)
			require.NoError(t, tree.Check(), "after deleting %d", v)
			assert.Equal(t, len(seq)-i-1, tree.Len())
		}
		assert.Nil(t, tree.Root())
		assert.Equal(t, []int{}, intValues(tree))
	}
}

func TestDeleteRoot(t *testing.T) {
	tree := newIntTree(5)
	assert.True(t, tree.Delete(5))
	require.NoError(t, tree.Check())
	assert.Nil(t, tree.Root())

	tree = newIntTree(5, 3, 8)
	for _, v := range []int{5, 3, 8} {
		assert.True(t, tree.Delete(v))
		require.NoError(t, tree.Check())
	}
}

func TestDuplicates(t *testing.T) {
	tree := newIntTree(5, 3, 5, 8, 5)
	require.NoError(t, tree.Check())
	assert.Equal(t, []int{3, 5, 5, 5, 8}, intValues(tree))

	// Delete removes exactly one of the equal nodes.
	assert.True(t, tree.Delete(5))
	require.NoError(t, tree.Check())
	assert.Equal(t, []int{3, 5, 5, 8}, intValues(tree))
	assert.True(t, tree.Search(5))
}

func TestInsertDeleteRoundTrip(t *testing.T) {
	tree := newIntTree(3, 5, 10, 11, 2)
	before := intValues(tree)
	tree.Insert(7)
	require.NoError(t, tree.Check())
	assert.True(t, tree.Delete(7))
	require.NoError(t, tree.Check())
	assert.Equal(t, before, intValues(tree))
}

func TestMinMaxLen(t *testing.T) {
	tree := rbtree.New(intCompare)
	assert.Nil(t, tree.Min())
	assert.Nil(t, tree.Max())
	assert.Equal(t, 0, tree.Len())

	tree.Insert(7)
	tree.Insert(2)
	tree.Insert(9)
	assert.Equal(t, 2, tree.Min())
	assert.Equal(t, 9, tree.Max())
	assert.Equal(t, 3, tree.Len())
}

func TestRandomSoak(t *testing.T) {
	rnd := rand.New(rand.NewSource(1))
	tree := rbtree.New(intCompare)
	counts := map[int]int{}
	total := 0
	for i := 0; i < 5000; i++ {
		v := rnd.Intn(100)
		if rnd.Intn(3) == 0 {
			deleted := tree.Delete(v)
			assert.Equal(t, counts[v] > 0, deleted, "delete %d at step %d", v, i)
			if deleted {
				counts[v]--
				total--
			}
		} else {
			tree.Insert(v)
			counts[v]++
			total++
		}
		require.NoError(t, tree.Check(), "step %d", i)
		require.Equal(t, total, tree.Len(), "step %d", i)
	}
	vals := intValues(tree)
	assert.Len(t, vals, total)
	for i := 1; i < len(vals); i++ {
		require.LessOrEqual(t, vals[i-1], vals[i])
	}
}

func TestTraversalOrders(t *testing.T) {
	type vc struct {
		v int
		c rbtree.Color
	}
	collect := func(walk func(rbtree.Visitor)) []vc {
		out := []vc{}
		walk(func(v interface{}, c rbtree.Color) bool {
			out = append(out, vc{v.(int), c})
			return true
		})
		return out
	}

	tree := newIntTree(2, 1, 3)
	assert.Equal(t, []vc{{2, rbtree.Black}, {1, rbtree.Red}, {3, rbtree.Red}}, collect(tree.PreOrder))
	assert.Equal(t, []vc{{1, rbtree.Red}, {2, rbtree.Black}, {3, rbtree.Red}}, collect(tree.InOrder))
	assert.Equal(t, []vc{{1, rbtree.Red}, {3, rbtree.Red}, {2, rbtree.Black}}, collect(tree.PostOrder))
}

func TestTraversalEarlyStop(t *testing.T) {
	tree := newIntTree(3, 5, 10, 11, 2, 4, 8, 7, 1, 6, 9)
	seen := 0
	tree.InOrder(func(v interface{}, _ rbtree.Color) bool {
		seen++
		return v.(int) < 4
	})
	assert.Equal(t, 4, seen)

	// The walk restarts from scratch on the next call.
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11}, intValues(tree))
}

func TestValues(t *testing.T) {
	tree := newIntTree(4, 2, 6)
	assert.Equal(t, []interface{}{2, 4, 6}, tree.Values())
}

func TestNodeAccessors(t *testing.T) {
	tree := newIntTree(2, 1, 3)
	root := tree.Root()
	require.NotNil(t, root)
	assert.Equal(t, 2, root.Value())
	assert.Equal(t, rbtree.Black, root.Color())
	assert.Equal(t, 1, root.Left().Value())
	assert.Equal(t, 3, root.Right().Value())
	assert.Same(t, root, root.Left().Parent())

	sent := root.Parent()
	assert.True(t, sent.IsSentinel())
	assert.Equal(t, rbtree.Black, sent.Color())
	assert.Nil(t, sent.Value())
	// The sentinel's links lead back to itself.
	assert.Same(t, sent, sent.Left())
	assert.Same(t, sent, sent.Right())
	assert.Same(t, sent, sent.Parent())

	leaf := root.Left()
	assert.True(t, leaf.Left().IsSentinel())
	assert.True(t, leaf.Right().IsSentinel())
}
