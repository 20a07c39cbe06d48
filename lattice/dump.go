package lattice

import (
	"fmt"
	"io"
	"strings"

	"github.com/go-morph/vlattice/connmatrix"
	"github.com/go-morph/vlattice/inputbuf"
	"github.com/go-morph/vlattice/lexicon"
)

// Dump writes a human-readable listing of every boundary in reverse (N
// down to 0): for each node at that boundary, its index, span, surface,
// word id, POS, connection ids/cost, and the per-predecessor connection
// cost against every node at its begin boundary. Diagnostic only; no part
// of the analytical contract depends on it.
func (l *Lattice) Dump(
	input *inputbuf.Buffer,
	grammar *lexicon.Grammar,
	lex lexicon.Lexicon,
	conn connmatrix.Matrix,
	out io.Writer,
) error {
	dumpIdx := 0

	for boundary := len(l.indices) - 1; boundary >= 0; boundary-- {
		for _, rNode := range l.endsFull[boundary] {
			var surface string
			var pos string

			switch {
			case rNode.IsSpecialNode():
				surface = "(null)"
				pos = "BOS/EOS"
			case rNode.IsOOV():
				begin, end := rNode.CharRange()
				surface = input.CurrSliceC(begin, end)
				posID := int(rNode.WordID().Word())
				pos = strings.Join(grammar.POSTags(posID), ", ")
			default:
				winfo, err := lex.GetWordInfoSubset(rNode.WordID(), lexicon.POSIDBit)
				if err != nil {
					return err
				}
				begin, end := rNode.CharRange()
				surface = input.OrigSliceC(begin, end)
				pos = strings.Join(grammar.POSTags(int(winfo.PosID)), ", ")
			}

			fmt.Fprintf(out, "%d: %d %d %s%d %s %d %d %d:",
				dumpIdx, rNode.Begin(), rNode.End(), surface, rNode.WordID().Raw(),
				pos, rNode.LeftID(), rNode.RightID(), rNode.Cost())

			for _, lNode := range l.ends[rNode.Begin()] {
				fmt.Fprintf(out, " %d", conn.Cost(lNode.rightID, rNode.LeftID()))
			}
			fmt.Fprintln(out)

			dumpIdx++
		}
	}

	return nil
}
