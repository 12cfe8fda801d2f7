package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/UnsavedDragon/RedBlackTree/cfg"
	"github.com/UnsavedDragon/RedBlackTree/logger"
	"github.com/UnsavedDragon/RedBlackTree/rbtree"
	"github.com/fatih/color"
)

// The classic walkthrough sequence: inserting it exercises both insert
// fix-up branches, deleting 10 exercises the two-children case.
var defaultSequence = []int{3, 5, 10, 11, 2, 4, 8, 7, 1, 6, 9}
var defaultDeletes = []int{10}

func main() {
	file := flag.String("f", "", "demo config file (.ini/.conf or .yaml/.yml)")
	colored := flag.Bool("color", true, "colorize red tags and log lines")
	level := flag.String("level", "info", "log level")
	flag.Parse()

	sequence := defaultSequence
	deletes := defaultDeletes
	if *file != "" {
		dc, err := cfg.Load(*file)
		if err != nil {
			logger.Errorf("load %s: %v", *file, err)
			os.Exit(1)
		}
		if len(dc.Sequence) > 0 {
			sequence = dc.Sequence
		}
		if dc.Deletes != nil {
			deletes = dc.Deletes
		}
		if dc.Color != nil {
			*colored = *dc.Color
		}
		if dc.Level != "" {
			*level = dc.Level
		}
	}
	color.NoColor = !*colored
	logger.SetColor(*colored)
	logger.SetLevel(*level)

	tree := rbtree.New(func(a, b interface{}) int { return a.(int) - b.(int) })

	for _, v := range sequence {
		tree.Insert(v)
		logger.Infof("inserted %d, %d node(s)", v, tree.Len())
		fmt.Print(tree.Sprint())
		if err := tree.Check(); err != nil {
			logger.Fatalf("tree corrupt after inserting %d: %v", v, err)
			os.Exit(1)
		}
	}

	fmt.Println("pre-order:", dump(tree.PreOrder))
	fmt.Println("in-order: ", dump(tree.InOrder))

	for _, v := range deletes {
		if !tree.Delete(v) {
			logger.Warnf("%d not found, nothing deleted", v)
			continue
		}
		logger.Infof("deleted %d, %d node(s) left", v, tree.Len())
		fmt.Print(tree.Sprint())
		if err := tree.Check(); err != nil {
			logger.Fatalf("tree corrupt after deleting %d: %v", v, err)
			os.Exit(1)
		}
	}
	fmt.Println("in-order: ", dump(tree.InOrder))
}

func dump(walk func(rbtree.Visitor)) string {
	out := ""
	walk(func(v interface{}, c rbtree.Color) bool {
		out += fmt.Sprintf(" %v.%s", v, c)
		return true
	})
	return out
}
