package lattice

import "math"

// noneRightID marks the absence of a "previous non-whitespace right id" on
// a VNode's best path.
const noneRightID uint16 = math.MaxUint16

// unreachableCost marks a VNode that connect_node could not connect to any
// BOS-reachable predecessor. i32::MAX in the original; callers treat it as
// "unreachable", never arithmetic.
const unreachableCost int32 = math.MaxInt32

// vnode is the dense predecessor record kept one-per-candidate in a
// parallel array, separate from the full Node record, for cache locality
// in the DP's hot inner loop.
type vnode struct {
	totalCost        int32
	rightID          uint16
	prevNonWSRightID uint16
}

func newVNode(rightID uint16, totalCost int32, prevNonWSRightID uint16) vnode {
	return vnode{totalCost: totalCost, rightID: rightID, prevNonWSRightID: prevNonWSRightID}
}

// connectedToBOS reports whether this vnode's best path actually reaches
// back to BOS. A vnode inserted with cost unreachableCost never connected
// to any BOS-reachable predecessor and must be skipped by later DP steps.
func (v vnode) connectedToBOS() bool {
	return v.totalCost != unreachableCost
}
