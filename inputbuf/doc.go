// Package inputbuf provides codepoint-indexed slicing over the sentence
// under analysis. Both the lattice's debug dump and the reading-candidate
// enumerator's OOV handling need to recover a surface substring from a
// (begin, end) boundary pair without re-walking UTF-8 byte offsets on
// every call.
package inputbuf
