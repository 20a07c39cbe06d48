package lexicon

import "github.com/go-morph/vlattice/wordid"

// Lexicon resolves a word id to a WordInfo populated to at least the
// requested subset. Implementations are read-only from the analyzer's
// point of view; no method ever mutates analyzer-visible state.
type Lexicon interface {
	GetWordInfoSubset(id wordid.ID, subset InfoSubset) (WordInfo, error)
}

// MapLexicon is an in-memory Lexicon backed by a map keyed on the raw
// packed id. It never trims a WordInfo down to the requested subset: it
// simply returns whatever was registered, which always satisfies any
// subset a caller might request.
type MapLexicon struct {
	words map[wordid.ID]WordInfo
}

// NewMapLexicon returns an empty MapLexicon ready for Put calls.
func NewMapLexicon() *MapLexicon {
	return &MapLexicon{words: make(map[wordid.ID]WordInfo)}
}

// Put registers (or replaces) the WordInfo for id.
func (l *MapLexicon) Put(id wordid.ID, info WordInfo) {
	l.words[id] = info
}

// GetWordInfoSubset implements Lexicon.
func (l *MapLexicon) GetWordInfoSubset(id wordid.ID, _ InfoSubset) (WordInfo, error) {
	info, ok := l.words[id]
	if !ok {
		return WordInfo{}, ErrWordNotFound
	}
	return info, nil
}

// Grammar carries the part-of-speech table consulted by the lattice's
// debug dump. pos_list[i] names the POS tags for POS id i.
type Grammar struct {
	PosList [][]string
}

// POSTags returns the POS tag slice for posID, or nil if posID is out of
// range.
func (g *Grammar) POSTags(posID int) []string {
	if posID < 0 || posID >= len(g.PosList) {
		return nil
	}
	return g.PosList[posID]
}
