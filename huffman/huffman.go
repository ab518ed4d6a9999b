// Package huffman builds optimal prefix-free codes by bottom-up greedy
// merging of the two lightest subtrees, and exposes the resulting code
// tree for tree-walking decoders.
package huffman

import (
	"container/heap"
	"errors"

	"github.com/Pelfox/discrete-math/entropy"
	"github.com/Pelfox/discrete-math/prefixcode"
)

// ErrNoSymbols is returned by Build when the frequency counter is empty.
var ErrNoSymbols = errors.New("huffman: cannot build a code over an empty alphabet")

// Node is one node of a Huffman code tree.  A leaf (nil children) carries a
// symbol and its weight; an internal node owns its two children and weighs
// the sum of their weights.
type Node struct {
	Symbol entropy.Symbol
	Weight int
	Left   *Node
	Right  *Node
}

// Leaf reports whether the node carries a symbol.
func (n *Node) Leaf() bool {
	return n.Left == nil && n.Right == nil
}

// Build constructs the Huffman codec and code tree for the counter's
// alphabet.
//
// One leaf is made per distinct symbol, numbered in first-seen order, and
// the two lowest-weight nodes are merged until one remains.  Equal weights
// are resolved by lowest sequence number: original leaves keep their
// first-seen numbering and every merged node takes the next number, so the
// earliest-inserted node always wins.  This selection order is part of the
// contract, since it fixes the code lengths of equal-weight symbols.  The
// first node selected becomes the left child, the second the right; a left
// edge emits '1' and a right edge '0'.
//
// A one-symbol alphabet yields the single-bit codeword "0" rather than an
// empty one.  An empty counter fails with ErrNoSymbols.
func Build(c *entropy.Counter) (prefixcode.Codec, *Node, error) {
	if c.Len() == 0 {
		return nil, nil, ErrNoSymbols
	}

	h := make(nodeHeap, 0, c.Len())
	for i, sym := range c.Symbols() {
		h = append(h, &rankedNode{
			node: &Node{Symbol: sym, Weight: c.Get(sym)},
			seq:  i,
		})
	}
	heap.Init(&h)

	seq := c.Len()
	for h.Len() > 1 {
		left := heap.Pop(&h).(*rankedNode)
		right := heap.Pop(&h).(*rankedNode)
		heap.Push(&h, &rankedNode{
			node: &Node{
				Weight: left.node.Weight + right.node.Weight,
				Left:   left.node,
				Right:  right.node,
			},
			seq: seq,
		})
		seq++
	}

	root := heap.Pop(&h).(*rankedNode).node
	codec := make(prefixcode.Codec, c.Len())
	assignCodes(root, "", codec)
	return codec, root, nil
}

func assignCodes(n *Node, prefix string, codec prefixcode.Codec) {
	if n.Leaf() {
		if prefix == "" {
			// Single-leaf tree: an empty codeword cannot be decoded.
			prefix = "0"
		}
		codec[n.Symbol] = prefix
		return
	}
	assignCodes(n.Left, prefix+"1", codec)
	assignCodes(n.Right, prefix+"0", codec)
}

// rankedNode pairs a tree node with its insertion sequence number, the
// second sort key of the merge queue.
type rankedNode struct {
	node *Node
	seq  int
}

type nodeHeap []*rankedNode

func (h nodeHeap) Len() int { return len(h) }

func (h nodeHeap) Less(i, j int) bool {
	a, b := h[i], h[j]
	if a.node.Weight != b.node.Weight {
		return a.node.Weight < b.node.Weight
	}
	return a.seq < b.seq
}

func (h nodeHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *nodeHeap) Push(x interface{}) {
	*h = append(*h, x.(*rankedNode))
}

func (h *nodeHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*h = old[:n-1]
	return item
}

var _ heap.Interface = (*nodeHeap)(nil)
