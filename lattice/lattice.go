package lattice

import (
	"github.com/go-morph/vlattice/connmatrix"
	"github.com/go-morph/vlattice/wordid"
)

// minInnerCapacity is the initial capacity reserved for a boundary's inner
// node slices, amortizing growth across the repeated inserts a typical
// sentence performs at each boundary.
const minInnerCapacity = 16

// eosRecord records the chosen EOS predecessor and its total cost, once
// ConnectEOS succeeds.
type eosRecord struct {
	idx  NodeIdx
	cost int32
}

// Lattice is the Viterbi DP structure: three parallel arrays-of-arrays
// indexed by boundary (ends, endsFull, indices), plus bookkeeping for EOS
// and the whitespace-bridging toggle. A Lattice is reused across analyses
// via Reset; see the package doc comment.
type Lattice struct {
	ends     [][]vnode
	endsFull [][]Node
	indices  [][]NodeIdx

	eos                    *eosRecord
	size                   int
	globalWhitespaceBridge bool
}

// New returns an empty, unreset Lattice. Call Reset before inserting any
// nodes.
func New() *Lattice {
	return &Lattice{}
}

// SetGlobalWhitespaceBridge toggles the whitespace-bridging transition
// rule and returns its previous value.
func (l *Lattice) SetGlobalWhitespaceBridge(enabled bool) bool {
	prev := l.globalWhitespaceBridge
	l.globalWhitespaceBridge = enabled
	return prev
}

// BoundaryCount returns the number of boundaries in the current lattice:
// codepoint length + 1 for a non-empty sentence.
func (l *Lattice) BoundaryCount() int {
	return l.size
}

// NodesEndingAt returns the nodes whose end boundary is boundary. The
// returned slice is a borrow valid until the next Reset.
func (l *Lattice) NodesEndingAt(boundary int) []Node {
	if boundary < 0 || boundary >= len(l.endsFull) {
		return nil
	}
	return l.endsFull[boundary]
}

func resetVNodeSlices(data [][]vnode, target int) [][]vnode {
	for i := range data {
		data[i] = data[i][:0]
	}
	for len(data) < target {
		data = append(data, make([]vnode, 0, minInnerCapacity))
	}
	return data
}

func resetNodeSlices(data [][]Node, target int) [][]Node {
	for i := range data {
		data[i] = data[i][:0]
	}
	for len(data) < target {
		data = append(data, make([]Node, 0, minInnerCapacity))
	}
	return data
}

func resetNodeIdxSlices(data [][]NodeIdx, target int) [][]NodeIdx {
	for i := range data {
		data[i] = data[i][:0]
	}
	for len(data) < target {
		data = append(data, make([]NodeIdx, 0, minInnerCapacity))
	}
	return data
}

// Reset prepares the lattice for a sentence of the given codepoint length:
// inner arrays are cleared (not reallocated) and grown to length+1 entries
// if needed, EOS is cleared, and boundary 0 is seeded with a single BOS
// vnode.
func (l *Lattice) Reset(length int) {
	target := length + 1
	l.ends = resetVNodeSlices(l.ends, target)
	l.endsFull = resetNodeSlices(l.endsFull, target)
	l.indices = resetNodeIdxSlices(l.indices, target)
	l.eos = nil
	l.size = target
	l.connectBOS()
}

func (l *Lattice) connectBOS() {
	l.ends[0] = append(l.ends[0], newVNode(0, 0, noneRightID))
}

// HasPreviousNode reports whether boundary i already has at least one
// node.
func (l *Lattice) HasPreviousNode(i int) bool {
	if i < 0 || i >= len(l.ends) {
		return false
	}
	return len(l.ends[i]) > 0
}

// Node returns the full record and total path cost for idx.
func (l *Lattice) Node(idx NodeIdx) (Node, int32) {
	return l.endsFull[idx.End][idx.Index], l.ends[idx.End][idx.Index].totalCost
}

// connectNode finds the minimum-cost BOS-reachable predecessor for rNode
// among the nodes already inserted at rNode.Begin(), applying the
// whitespace-bridging rule when enabled. It returns the chosen
// predecessor's index, the resulting total cost (unreachableCost if none
// connects), and the prevNonWSRightID to store on rNode's own vnode.
func (l *Lattice) connectNode(rNode Node, conn connmatrix.Matrix) (NodeIdx, int32, uint16) {
	begin := int(rNode.Begin())
	nodeCost := int32(rNode.Cost())

	minCost := unreachableCost
	prevIdx := NodeIdx{}
	prevNonWSRightID := noneRightID

	leftVNodes := l.ends[begin]
	for i := range leftVNodes {
		lv := leftVNodes[i]
		if !lv.connectedToBOS() {
			continue
		}

		lNodeIsWhitespace := false
		if begin != 0 {
			lNodeIsWhitespace = l.endsFull[begin][i].IsWhitespace()
		}

		normalConnectCost := int32(conn.Cost(lv.rightID, rNode.LeftID()))
		normalCost := lv.totalCost + normalConnectCost + nodeCost

		bestCostForPred := normalCost
		if l.globalWhitespaceBridge && lNodeIsWhitespace && !rNode.IsWhitespace() &&
			lv.prevNonWSRightID != noneRightID {
			bridgedConnectCost := int32(conn.Cost(lv.prevNonWSRightID, rNode.LeftID()))
			bridgedCost := lv.totalCost + bridgedConnectCost + nodeCost
			if bridgedCost < bestCostForPred {
				bestCostForPred = bridgedCost
			}
		}

		if bestCostForPred < minCost {
			minCost = bestCostForPred
			prevIdx = NodeIdx{End: uint16(begin), Index: uint16(i)}
			if rNode.IsWhitespace() {
				prevNonWSRightID = lv.prevNonWSRightID
			} else {
				prevNonWSRightID = rNode.RightID()
			}
		}
	}

	return prevIdx, minCost, prevNonWSRightID
}

// Insert adds node to the lattice, computing and storing its best
// incoming path cost. Nodes must be inserted in non-decreasing End()
// order; the lattice assumes ends[node.Begin()] is fully populated by the
// time Insert is called for any node with that Begin().
func (l *Lattice) Insert(node Node, conn connmatrix.Matrix) int32 {
	idx, cost, prevNonWSRightID := l.connectNode(node, conn)
	end := int(node.End())
	l.ends[end] = append(l.ends[end], newVNode(node.RightID(), cost, prevNonWSRightID))
	l.indices[end] = append(l.indices[end], idx)
	l.endsFull[end] = append(l.endsFull[end], node)
	return cost
}

// ConnectEOS closes the lattice: it connects a synthetic EOS node at the
// final boundary and records the winning predecessor. It returns
// ErrEOSBOSDisconnect if no predecessor is reachable from BOS.
func (l *Lattice) ConnectEOS(conn connmatrix.Matrix) error {
	last := uint16(l.size - 1)
	node := NewNode(last, last, 0, 0, 0, wordid.EOS)
	idx, cost, _ := l.connectNode(node, conn)
	if cost == unreachableCost {
		return ErrEOSBOSDisconnect
	}
	l.eos = &eosRecord{idx: idx, cost: cost}
	return nil
}

// FillTopPath appends the minimum-cost path's node indices, in
// EOS-to-first-token order, to result and returns the extended slice. It
// is a no-op if ConnectEOS has not yet succeeded.
func (l *Lattice) FillTopPath(result []NodeIdx) []NodeIdx {
	if l.eos == nil {
		return result
	}
	idx := l.eos.idx
	result = append(result, idx)
	for {
		prevIdx := l.indices[idx.End][idx.Index]
		if prevIdx.End != 0 {
			result = append(result, prevIdx)
			idx = prevIdx
			continue
		}
		break
	}
	return result
}
