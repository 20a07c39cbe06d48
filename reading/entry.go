package reading

import (
	"github.com/go-morph/vlattice/connmatrix"
	"github.com/go-morph/vlattice/inputbuf"
	"github.com/go-morph/vlattice/lattice"
	"github.com/go-morph/vlattice/lexicon"
)

// Enumerate finds up to opts.MaxResults lowest-cost paths through lat
// whose concatenated, normalized token readings equal the normalized
// form of reading. lat must already have its candidate nodes inserted;
// ConnectEOS need not have been called.
//
// Invalid arguments (MaxResults == 0, an empty normalized reading, or a
// zero-boundary lattice) return (nil, nil): an empty result, not an
// error. A lexicon lookup failure during precomputation is fatal and is
// returned unchanged.
func Enumerate(
	lat *lattice.Lattice,
	input *inputbuf.Buffer,
	lex lexicon.Lexicon,
	conn connmatrix.Matrix,
	subset lexicon.InfoSubset,
	reading string,
	opts Options,
) ([]Path, error) {
	if opts.MaxResults == 0 {
		return nil, nil
	}
	minTokens := opts.MinTokens
	if minTokens < 1 {
		minTokens = 1
	}

	normalizedReading := Normalize(reading)
	if normalizedReading == "" {
		return nil, nil
	}

	boundaryCount := lat.BoundaryCount()
	if boundaryCount == 0 {
		return nil, nil
	}

	readSubset := (subset | lexicon.ReadingFormBit | lexicon.SurfaceBit).Normalize()

	nodesByBegin := make([][]NodeRef, boundaryCount)
	metasByEnd := make([][]nodeMeta, boundaryCount)

	for end := 0; end < boundaryCount; end++ {
		nodes := lat.NodesEndingAt(end)
		metas := make([]nodeMeta, 0, len(nodes))
		for _, node := range nodes {
			info, err := makeWordInfo(node, input, lex, readSubset)
			if err != nil {
				return nil, err
			}
			meta := nodeMeta{
				node:     node,
				info:     info,
				variants: buildMatchVariants(info),
			}
			nodesByBegin[int(node.Begin())] = append(nodesByBegin[int(node.Begin())], NodeRef{
				End:   end,
				Index: len(metas),
			})
			metas = append(metas, meta)
		}
		metasByEnd[end] = metas
	}

	s := newSearcher(conn, normalizedReading, boundaryCount-1, opts.MaxResults, minTokens, nodesByBegin, metasByEnd)
	return s.run(), nil
}
