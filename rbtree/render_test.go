package rbtree_test

import (
	"bytes"
	"testing"

	"github.com/UnsavedDragon/RedBlackTree/rbtree"
	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
)

func TestSprintEmpty(t *testing.T) {
	tree := rbtree.New(intCompare)
	assert.Equal(t, "Empty Red-Black Tree\n", tree.Sprint())
}

func TestSprintSmallTree(t *testing.T) {
	noColor := color.NoColor
	color.NoColor = true
	defer func() { color.NoColor = noColor }()

	tree := newIntTree(2, 1, 3)
	expected := "" +
		"└── 2 (B)\n" +
		"    ├── 1 (R)\n" +
		"    └── 3 (R)\n"
	assert.Equal(t, expected, tree.Sprint())

	var buf bytes.Buffer
	tree.Fprint(&buf)
	assert.Equal(t, expected, buf.String())
}

func TestSprintOneSided(t *testing.T) {
	noColor := color.NoColor
	color.NoColor = true
	defer func() { color.NoColor = noColor }()

	tree := newIntTree(2, 1)
	expected := "" +
		"└── 2 (B)\n" +
		"    └── 1 (R)\n"
	assert.Equal(t, expected, tree.Sprint())
}
