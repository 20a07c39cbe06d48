package lattice

import "github.com/go-morph/vlattice/wordid"

// NodeIdx identifies a candidate node within the lattice by its end
// boundary and its position within that boundary's node list. The zero
// value denotes "no predecessor" / BOS: End == 0 already means "stop
// traceback, BOS reached" everywhere NodeIdx is consumed, so no separate
// sentinel is needed.
type NodeIdx struct {
	End   uint16
	Index uint16
}

// Node is the full record held once per inserted candidate.
type Node struct {
	begin, end        uint16
	leftID, rightID   uint16
	cost              int16
	wordID            wordid.ID
	isWhitespace      bool
}

// NewNode constructs a Node. Begin and End are codepoint boundaries with
// Begin < End.
func NewNode(begin, end, leftID, rightID uint16, cost int16, id wordid.ID) Node {
	return Node{begin: begin, end: end, leftID: leftID, rightID: rightID, cost: cost, wordID: id}
}

// SetWhitespace marks the node as covering whitespace-only input, which
// the whitespace-bridging transition rule consults.
func (n *Node) SetWhitespace(v bool) { n.isWhitespace = v }

func (n Node) Begin() uint16       { return n.begin }
func (n Node) End() uint16         { return n.end }
func (n Node) LeftID() uint16      { return n.leftID }
func (n Node) RightID() uint16     { return n.rightID }
func (n Node) Cost() int16         { return n.cost }
func (n Node) WordID() wordid.ID   { return n.wordID }
func (n Node) IsWhitespace() bool  { return n.isWhitespace }

// IsOOV reports whether the node's word id marks it out-of-vocabulary.
func (n Node) IsOOV() bool { return n.wordID.IsOOV() }

// IsSpecialNode reports whether the node is the BOS/EOS sentinel.
func (n Node) IsSpecialNode() bool { return n.wordID.IsSpecial() }

// CharRange returns the node's [begin, end) codepoint span as plain ints,
// ready to pass to inputbuf.Buffer's slicing methods.
func (n Node) CharRange() (begin, end int) {
	return int(n.begin), int(n.end)
}
