// Package wordid defines the opaque 32-bit word identifier used to label
// lattice nodes, and the packing schemes external callers use to recover a
// dictionary id and a relative word index from it.
//
// A raw id packs two fields:
//
//	bits 31-28: dic   (4 bits) — dictionary index, or the reserved OOV marker
//	bits 27-0:  word  (28 bits) — word index within that dictionary
//
// Two dic values are reserved: OOVDic marks an out-of-vocabulary node
// (word-info synthesized from the input instead of looked up), and
// specialDic marks BOS/EOS sentinels. Everything else is an ordinary
// dictionary word.
//
// wordid also carries the "legacy" packed representation
// (lexID*100_000_000 + relativeWordID) some external consumers still expect,
// and the dictionary-form decoding routine ported from the original
// implementation (see DecodeDictionaryForm).
package wordid
