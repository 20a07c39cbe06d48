package wordid

// LegacyLexStride is the multiplier used by the legacy packed word-id
// scheme: legacy = lexID*LegacyLexStride + relativeWordID, for lexID > 0.
const LegacyLexStride int32 = 100_000_000

// PackLegacy packs a dictionary id and a relative word index into the
// legacy representation some external consumers still expect. For
// lexID <= 0 (the "default" local dictionary) the relative id is returned
// unchanged, matching the original packer.
func PackLegacy(lexID, relativeWordID int32) int32 {
	if lexID <= 0 {
		return relativeWordID
	}
	return lexID*LegacyLexStride + relativeWordID
}

// UnpackNative splits a raw native-packed word id into (lexID, wordID).
// OOVDic decodes to lexID == -1, matching IsOOV() semantics.
func UnpackNative(raw uint32) (lexID, wordID int32) {
	lex := int32((raw >> dicShift) & dicMask)
	word := int32(raw & wordMask)
	if lex == OOVDic {
		return -1, word
	}
	return lex, word
}

// DecodeDictionaryForm decodes a WordInfo.DictionaryFormWordID field,
// which may be encoded as a native-packed id, a legacy-packed id, or a
// bare relative id local to defaultLexID. It returns
// (lexID, legacyWordID, packedWordID, relativeWordID).
//
// Ported from decode_dictionary_form_word_id in the original Rust
// implementation (python/src/word_info.rs). The third branch below -- the
// fallthrough to a "default-local" interpretation for values
// >= LegacyLexStride whose decoded legacy-lex-id is <= 0 -- is preserved
// exactly as observed. It may be defensive coding for a case that never
// occurs with well-formed dictionaries; we keep the behavior rather than
// guess at a "fix".
func DecodeDictionaryForm(raw int32, defaultLexID int32) (lexID, legacy, packed, relative int32) {
	if raw == -1 {
		return -1, -1, -1, -1
	}

	u := uint32(raw)
	nativeLexID, nativeWordID := UnpackNative(u)

	switch {
	case u >= (1<<dicShift) && nativeLexID > 0:
		// Native-packed form with a real (non-OOV, non-default) lexicon id.
		relative = nativeWordID
		legacy = PackLegacy(nativeLexID, relative)
		packed = raw
		lexID = nativeLexID
	case raw >= LegacyLexStride:
		legacyLexID := raw / LegacyLexStride
		rel := raw % LegacyLexStride
		if legacyLexID > 0 {
			return legacyLexID, raw, raw, rel
		}
		// suspect: raw >= LegacyLexStride decoded a non-positive legacy lex
		// id. Fall through to the default-local interpretation rather than
		// treating this as an error.
		relative = raw
		legacy = PackLegacy(defaultLexID, relative)
		lexID = defaultLexID
		packed = raw
	default:
		// Non-packed dictionary-form ids are relative to the current lexicon.
		relative = raw
		legacy = PackLegacy(defaultLexID, relative)
		lexID = defaultLexID
		packed = raw
	}

	return lexID, legacy, packed, relative
}
