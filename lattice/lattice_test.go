package lattice_test

import (
	"testing"

	"github.com/go-morph/vlattice/connmatrix"
	"github.com/go-morph/vlattice/lattice"
	"github.com/go-morph/vlattice/wordid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeNode(begin, end, leftID, rightID uint16, cost int16, rawWordID uint32, isWhitespace bool) lattice.Node {
	n := lattice.NewNode(begin, end, leftID, rightID, cost, wordid.FromRaw(rawWordID))
	n.SetWhitespace(isWhitespace)
	return n
}

func pathWordIDs(t *testing.T, l *lattice.Lattice) []uint32 {
	t.Helper()
	idx := l.FillTopPath(nil)
	ids := make([]uint32, 0, len(idx))
	for i := len(idx) - 1; i >= 0; i-- {
		node, _ := l.Node(idx[i])
		ids = append(ids, node.WordID().Raw())
	}
	return ids
}

func TestWhitespaceBridgeCanChangeBestPath(t *testing.T) {
	const n = 16
	conn, err := connmatrix.NewDense(n, n)
	require.NoError(t, err)

	require.NoError(t, conn.Update(1, 1, 0))   // L1 -> W1
	require.NoError(t, conn.Update(2, 1, 100)) // L2 -> W1
	require.NoError(t, conn.Update(1, 2, 100)) // L1 -> W2
	require.NoError(t, conn.Update(2, 2, 0))   // L2 -> W2

	// normal whitespace transition is expensive
	require.NoError(t, conn.Update(9, 3, 50))
	// bridged costs prefer the L2 context
	require.NoError(t, conn.Update(1, 3, 100))
	require.NoError(t, conn.Update(2, 3, 0))

	build := func(bridge bool) *lattice.Lattice {
		l := lattice.New()
		l.SetGlobalWhitespaceBridge(bridge)
		l.Reset(3)
		l.Insert(makeNode(0, 1, 0, 1, 0, 1, false), conn)
		l.Insert(makeNode(0, 1, 0, 2, 1, 2, false), conn)
		l.Insert(makeNode(1, 2, 1, 9, 0, 11, true), conn)
		l.Insert(makeNode(1, 2, 2, 9, 0, 12, true), conn)
		l.Insert(makeNode(2, 3, 3, 4, 0, 21, false), conn)
		require.NoError(t, l.ConnectEOS(conn))
		return l
	}

	plain := build(false)
	assert.Equal(t, []uint32{1, 11, 21}, pathWordIDs(t, plain))

	bridged := build(true)
	assert.Equal(t, []uint32{2, 12, 21}, pathWordIDs(t, bridged))
}

func TestWhitespaceBridgeKeepsNormalTransitionWhenCheaper(t *testing.T) {
	const n = 16
	conn, err := connmatrix.NewDense(n, n)
	require.NoError(t, err)

	require.NoError(t, conn.Update(1, 1, 0))
	require.NoError(t, conn.Update(2, 1, 100))
	require.NoError(t, conn.Update(1, 2, 100))
	require.NoError(t, conn.Update(2, 2, 0))

	// normal transition is already best.
	require.NoError(t, conn.Update(9, 3, 0))
	require.NoError(t, conn.Update(1, 3, 100))
	require.NoError(t, conn.Update(2, 3, 100))

	build := func(bridge bool) *lattice.Lattice {
		l := lattice.New()
		l.SetGlobalWhitespaceBridge(bridge)
		l.Reset(3)
		l.Insert(makeNode(0, 1, 0, 1, 0, 1, false), conn)
		l.Insert(makeNode(0, 1, 0, 2, 1, 2, false), conn)
		l.Insert(makeNode(1, 2, 1, 9, 0, 11, true), conn)
		l.Insert(makeNode(1, 2, 2, 9, 0, 12, true), conn)
		l.Insert(makeNode(2, 3, 3, 4, 0, 21, false), conn)
		require.NoError(t, l.ConnectEOS(conn))
		return l
	}

	plain := build(false)
	bridged := build(true)
	assert.Equal(t, pathWordIDs(t, plain), pathWordIDs(t, bridged))
}

func TestConnectEOSDisconnected(t *testing.T) {
	conn, err := connmatrix.NewDense(4, 4)
	require.NoError(t, err)

	l := lattice.New()
	l.Reset(1)
	// No nodes inserted at boundary 1: EOS has nothing to connect to at
	// all, since no candidate spans [0,1).
	err = l.ConnectEOS(conn)
	assert.ErrorIs(t, err, lattice.ErrEOSBOSDisconnect)
}

func TestResetClearsNodesAndResizes(t *testing.T) {
	conn, err := connmatrix.NewDense(4, 4)
	require.NoError(t, err)

	l := lattice.New()
	l.Reset(5)
	l.Insert(makeNode(0, 1, 0, 0, 0, 1, false), conn)
	assert.Equal(t, 6, l.BoundaryCount())

	l.Reset(2)
	assert.Equal(t, 3, l.BoundaryCount())
	assert.Empty(t, l.NodesEndingAt(1))
}

func TestHasPreviousNode(t *testing.T) {
	conn, err := connmatrix.NewDense(4, 4)
	require.NoError(t, err)

	l := lattice.New()
	l.Reset(2)
	assert.True(t, l.HasPreviousNode(0))
	assert.False(t, l.HasPreviousNode(1))

	l.Insert(makeNode(0, 1, 0, 0, 0, 1, false), conn)
	assert.True(t, l.HasPreviousNode(1))
	assert.False(t, l.HasPreviousNode(99))
}
