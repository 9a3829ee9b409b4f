package xkc

import (
	"fmt"
	"strings"
)

const nilNode = int32(-1)

// node is one slot in the tree arena. parent is a navigation back-reference,
// not ownership; the arena owns every node and they all die with the tree.
type node struct {
	parent int32
	left   int32
	right  int32
	sym    uint32
}

// pathInfo locates one tree node: depth is the edge count from the root, and
// bit i of path tells whether the walk went right (1) or left (0) at level i.
type pathInfo struct {
	depth int
	path  uint64
}

// tree is the prefix tree that maps symbols to bit paths. Nodes live in an
// index-addressed arena with the root at slot 0; the root slot exists from
// construction and is claimed by the first insert.
//
// The shape is fully determined by insertion order. Encoder and decoder both
// insert in alphabet-rank order, so they always agree on every path.
type tree struct {
	nodes []node
	empty bool // root slot not yet claimed
}

func newTree() *tree {
	return &tree{
		nodes: []node{{parent: nilNode, left: nilNode, right: nilNode}},
		empty: true,
	}
}

// insert places sym at the next position given by the balance rule: first
// insert claims the root; afterwards, descend from the root attaching to the
// first absent left child, then absent right child, otherwise into whichever
// subtree holds fewer nodes, ties going left. Frequent symbols end up shallow
// only because they are inserted first.
func (t *tree) insert(sym uint32) {
	if t.empty {
		t.nodes[0].sym = sym
		t.empty = false
		return
	}
	t.insertAt(0, sym)
}

func (t *tree) insertAt(parent int32, sym uint32) {
	left, right := t.nodes[parent].left, t.nodes[parent].right
	switch {
	case left == nilNode:
		t.nodes[parent].left = t.newNode(parent, sym)
	case right == nilNode:
		t.nodes[parent].right = t.newNode(parent, sym)
	case t.countNodes(left) <= t.countNodes(right):
		t.insertAt(left, sym)
	default:
		t.insertAt(right, sym)
	}
}

func (t *tree) newNode(parent int32, sym uint32) int32 {
	t.nodes = append(t.nodes, node{parent: parent, left: nilNode, right: nilNode, sym: sym})
	return int32(len(t.nodes) - 1)
}

// countNodes returns the number of descendants below idx, not counting idx.
func (t *tree) countNodes(idx int32) int {
	n := 0
	if l := t.nodes[idx].left; l != nilNode {
		n += t.countNodes(l) + 1
	}
	if r := t.nodes[idx].right; r != nilNode {
		n += t.countNodes(r) + 1
	}
	return n
}

// depth returns the edge count from the root to idx via parent links.
func (t *tree) depth(idx int32) int {
	d := 0
	for p := t.nodes[idx].parent; p != nilNode; p = t.nodes[p].parent {
		d++
	}
	return d
}

// height returns the maximum node depth in edges; 0 for a lone root.
func (t *tree) height() int {
	return t.heightAt(0)
}

func (t *tree) heightAt(idx int32) int {
	h := 0
	if l := t.nodes[idx].left; l != nilNode {
		if lh := t.heightAt(l) + 1; lh > h {
			h = lh
		}
	}
	if r := t.nodes[idx].right; r != nilNode {
		if rh := t.heightAt(r) + 1; rh > h {
			h = rh
		}
	}
	return h
}

// pathOf finds sym by depth-first search, left before right, and returns its
// location. A miss means the symbol was never inserted, which the encoder
// must treat as an invariant violation rather than emit a wrong path.
func (t *tree) pathOf(sym uint32) (pathInfo, error) {
	var pi pathInfo
	if t.empty || !t.search(0, 0, sym, &pi) {
		return pathInfo{}, ErrSymbolNotInTree
	}
	return pi, nil
}

func (t *tree) search(idx int32, depth int, sym uint32, pi *pathInfo) bool {
	if idx == nilNode {
		return false
	}
	if t.nodes[idx].sym == sym {
		pi.depth = depth
		return true
	}
	if t.search(t.nodes[idx].left, depth+1, sym, pi) {
		return true // bit at this level stays 0
	}
	if t.search(t.nodes[idx].right, depth+1, sym, pi) {
		pi.path |= 1 << depth
		return true
	}
	return false
}

// symbolAt follows pi from the root and returns the symbol it lands on.
// Walking into an absent child means pi is inconsistent with the tree; on
// decode that is stream corruption.
func (t *tree) symbolAt(pi pathInfo) (uint32, error) {
	if t.empty {
		return 0, ErrSymbolNotInTree
	}
	idx := int32(0)
	for d := 0; d < pi.depth; d++ {
		if pi.path&(1<<d) != 0 {
			idx = t.nodes[idx].right
		} else {
			idx = t.nodes[idx].left
		}
		if idx == nilNode {
			return 0, ErrSymbolNotInTree
		}
	}
	return t.nodes[idx].sym, nil
}

// dot renders the tree in Graphviz strict-graph form, edges labeled with the
// bit taken. Debug aid only; the output is not part of the wire contract.
func (t *tree) dot() string {
	var b strings.Builder
	b.WriteString("strict graph {\n")
	if !t.empty {
		t.dotNode(&b, 0)
	}
	b.WriteString("}\n")
	return b.String()
}

func (t *tree) dotNode(b *strings.Builder, idx int32) {
	n := t.nodes[idx]
	if n.left != nilNode {
		fmt.Fprintf(b, "\t%q -- %q [label=0]\n", t.dotLabel(idx), t.dotLabel(n.left))
		t.dotNode(b, n.left)
	}
	if n.right != nilNode {
		fmt.Fprintf(b, "\t%q -- %q [label=1]\n", t.dotLabel(idx), t.dotLabel(n.right))
		t.dotNode(b, n.right)
	}
}

func (t *tree) dotLabel(idx int32) string {
	return fmt.Sprintf("0x%02X d%d", t.nodes[idx].sym, t.depth(idx))
}
