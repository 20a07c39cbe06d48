package reading

import "github.com/go-morph/vlattice/wordid"

// Token is one morpheme in a retained Path.
type Token struct {
	WordID      wordid.ID
	Surface     string
	ReadingForm string
	Begin       int
	End         int
}

// Path is one retained reading-candidate result: a complete lattice path
// whose concatenated, normalized token readings match the target reading.
type Path struct {
	TotalCost int32
	Tokens    []Token
}

// Options bounds an Enumerate call. DefaultOptions returns the most
// permissive still-sane values; most callers only need to override
// MaxResults.
type Options struct {
	// MaxResults is K: the enumerator returns at most this many paths.
	// MaxResults == 0 short-circuits to an empty result.
	MaxResults int
	// MinTokens is M: paths with fewer tokens are rejected. Clamped up to
	// 1 if given as 0 or negative.
	MinTokens int
}

// DefaultOptions returns Options{MaxResults: 10, MinTokens: 1}.
func DefaultOptions() Options {
	return Options{MaxResults: 10, MinTokens: 1}
}
