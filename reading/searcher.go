package reading

import (
	"sort"

	"github.com/go-morph/vlattice/connmatrix"
	"github.com/go-morph/vlattice/inputbuf"
	"github.com/go-morph/vlattice/lattice"
	"github.com/go-morph/vlattice/lexicon"
)

// NodeRef addresses a node by the (end, index) coordinates it occupies in
// metasByEnd, the same addressing scheme the lattice itself uses.
type NodeRef struct {
	End   int
	Index int
}

// SearchState is the DFS/memoization key: how far into the sentence we
// are, which right-context id the path arrived with, and how much of the
// normalized target reading has been consumed so far.
type SearchState struct {
	Boundary      int
	PrevRightID   uint16
	ReadingOffset int
}

// nodeMeta bundles a node with its resolved WordInfo and the normalized
// match variants (reading form, then surface) used for prefix matching.
type nodeMeta struct {
	node     lattice.Node
	info     lexicon.WordInfo
	variants []string
}

func (m *nodeMeta) asToken() Token {
	begin, end := m.node.CharRange()
	return Token{
		WordID:      m.node.WordID(),
		Surface:     m.info.Surface,
		ReadingForm: m.info.ReadingOrSurface(),
		Begin:       begin,
		End:         end,
	}
}

func makeWordInfo(node lattice.Node, input *inputbuf.Buffer, lex lexicon.Lexicon, subset lexicon.InfoSubset) (lexicon.WordInfo, error) {
	if node.IsOOV() {
		begin, end := node.CharRange()
		return lexicon.WordInfo{
			PosID:   uint16(node.WordID().Word()),
			Surface: input.CurrSliceC(begin, end),
		}, nil
	}
	return lex.GetWordInfoSubset(node.WordID(), subset)
}

// buildMatchVariants returns up to two normalized byte strings derived
// from info: the reading form (preferred), then the surface. Empty
// variants are skipped and duplicates deduplicated.
func buildMatchVariants(info lexicon.WordInfo) []string {
	var raws []string
	if info.ReadingForm == "" {
		raws = []string{info.Surface}
	} else {
		raws = []string{info.ReadingForm, info.Surface}
	}

	variants := make([]string, 0, len(raws))
	seen := make(map[string]struct{}, len(raws))
	for _, raw := range raws {
		normalized := Normalize(raw)
		if normalized == "" {
			continue
		}
		if _, ok := seen[normalized]; ok {
			continue
		}
		seen[normalized] = struct{}{}
		variants = append(variants, normalized)
	}
	return variants
}

type transition struct {
	estTotal  int32
	stepCost  int32
	ref       NodeRef
	nextState SearchState
}

// searcher runs the branch-and-bound DFS over a precomputed meta index.
type searcher struct {
	conn         connmatrix.Matrix
	reading      []byte
	endBoundary  int
	maxResults   int
	minTokens    int
	nodesByBegin [][]NodeRef
	metasByEnd   [][]nodeMeta

	path         []NodeRef
	results      []Path
	minCostCache map[SearchState]minCostEntry
}

type minCostEntry struct {
	cost int32
	ok   bool
}

func newSearcher(conn connmatrix.Matrix, normalizedReading string, endBoundary, maxResults, minTokens int, nodesByBegin [][]NodeRef, metasByEnd [][]nodeMeta) *searcher {
	return &searcher{
		conn:         conn,
		reading:      []byte(normalizedReading),
		endBoundary:  endBoundary,
		maxResults:   maxResults,
		minTokens:    minTokens,
		nodesByBegin: nodesByBegin,
		metasByEnd:   metasByEnd,
		minCostCache: make(map[SearchState]minCostEntry),
	}
}

func (s *searcher) run() []Path {
	start := SearchState{Boundary: 0, PrevRightID: 0, ReadingOffset: 0}
	s.dfs(start, 0)
	sort.Slice(s.results, func(i, j int) bool {
		return s.results[i].TotalCost < s.results[j].TotalCost
	})
	if len(s.results) > s.maxResults {
		s.results = s.results[:s.maxResults]
	}
	return s.results
}

// worstKeptCost returns the cost of the currently worst retained result,
// which is only defined once maxResults results have been collected.
func (s *searcher) worstKeptCost() (int32, bool) {
	if len(s.results) < s.maxResults {
		return 0, false
	}
	worst := s.results[0].TotalCost
	for _, r := range s.results[1:] {
		if r.TotalCost > worst {
			worst = r.TotalCost
		}
	}
	return worst, true
}

func (s *searcher) recordResult(totalCost int32) {
	tokens := make([]Token, 0, len(s.path))
	for _, ref := range s.path {
		tokens = append(tokens, s.metasByEnd[ref.End][ref.Index].asToken())
	}
	candidate := Path{TotalCost: totalCost, Tokens: tokens}

	if len(s.results) < s.maxResults {
		s.results = append(s.results, candidate)
		return
	}

	worstIdx, worstCost := 0, s.results[0].TotalCost
	for i, r := range s.results[1:] {
		if r.TotalCost > worstCost {
			worstIdx, worstCost = i+1, r.TotalCost
		}
	}
	if totalCost < worstCost {
		s.results[worstIdx] = candidate
	}
}

// minAdditionalCostFromState is the memoized admissible lower-bound
// heuristic h(s): the minimum remaining cost to reach acceptance from s,
// computed by the same recursion as dfs but taking minima instead of
// enumerating all completions.
func (s *searcher) minAdditionalCostFromState(state SearchState) (int32, bool) {
	if cached, ok := s.minCostCache[state]; ok {
		return cached.cost, cached.ok
	}

	var result minCostEntry
	if state.Boundary == s.endBoundary {
		if state.ReadingOffset == len(s.reading) {
			result = minCostEntry{cost: int32(s.conn.Cost(state.PrevRightID, 0)), ok: true}
		}
	} else {
		for _, ref := range s.nodesByBegin[state.Boundary] {
			meta := &s.metasByEnd[ref.End][ref.Index]
			stepCost := int32(s.conn.Cost(state.PrevRightID, meta.node.LeftID())) + int32(meta.node.Cost())

			for _, variant := range meta.variants {
				if !s.admissible(state, variant) {
					continue
				}
				nextState := SearchState{
					Boundary:      int(meta.node.End()),
					PrevRightID:   meta.node.RightID(),
					ReadingOffset: state.ReadingOffset + len(variant),
				}
				rem, ok := s.minAdditionalCostFromState(nextState)
				if !ok {
					continue
				}
				candidate := stepCost + rem
				if !result.ok || candidate < result.cost {
					result = minCostEntry{cost: candidate, ok: true}
				}
			}
		}
	}

	s.minCostCache[state] = result
	return result.cost, result.ok
}

// admissible reports whether variant can be matched starting at
// state.ReadingOffset in the normalized target reading.
func (s *searcher) admissible(state SearchState, variant string) bool {
	if variant == "" {
		return false
	}
	vb := []byte(variant)
	if state.ReadingOffset+len(vb) > len(s.reading) {
		return false
	}
	for i, c := range vb {
		if s.reading[state.ReadingOffset+i] != c {
			return false
		}
	}
	return true
}

func (s *searcher) dfs(state SearchState, baseCost int32) {
	minAdditional, ok := s.minAdditionalCostFromState(state)
	if !ok {
		return
	}

	if worstKept, has := s.worstKeptCost(); has && baseCost+minAdditional > worstKept {
		return
	}

	if state.Boundary == s.endBoundary {
		if state.ReadingOffset != len(s.reading) {
			return
		}
		if len(s.path) < s.minTokens {
			return
		}
		totalCost := baseCost + int32(s.conn.Cost(state.PrevRightID, 0))
		s.recordResult(totalCost)
		return
	}

	var transitions []transition
	for _, ref := range s.nodesByBegin[state.Boundary] {
		meta := &s.metasByEnd[ref.End][ref.Index]
		stepCost := int32(s.conn.Cost(state.PrevRightID, meta.node.LeftID())) + int32(meta.node.Cost())

		for _, variant := range meta.variants {
			if !s.admissible(state, variant) {
				continue
			}
			nextState := SearchState{
				Boundary:      int(meta.node.End()),
				PrevRightID:   meta.node.RightID(),
				ReadingOffset: state.ReadingOffset + len(variant),
			}
			rem, ok := s.minAdditionalCostFromState(nextState)
			if !ok {
				continue
			}
			estTotal := baseCost + stepCost + rem
			transitions = append(transitions, transition{
				estTotal: estTotal, stepCost: stepCost, ref: ref, nextState: nextState,
			})
		}
	}

	sort.Slice(transitions, func(i, j int) bool {
		return transitions[i].estTotal < transitions[j].estTotal
	})

	for _, t := range transitions {
		if worstKept, has := s.worstKeptCost(); has && t.estTotal > worstKept {
			continue
		}
		s.path = append(s.path, t.ref)
		s.dfs(t.nextState, baseCost+t.stepCost)
		s.path = s.path[:len(s.path)-1]
	}
}
