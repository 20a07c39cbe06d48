package lexicon

import "errors"

// ErrWordNotFound indicates that a Lexicon was asked to resolve a
// wordid.ID it has no WordInfo for. Reading-candidate precomputation and
// the debug dump both propagate this unchanged.
var ErrWordNotFound = errors.New("lexicon: word not found")
