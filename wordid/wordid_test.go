package wordid_test

import (
	"testing"

	"github.com/go-morph/vlattice/wordid"
	"github.com/stretchr/testify/assert"
)

func TestNewAndFields(t *testing.T) {
	id := wordid.New(3, 42)
	assert.Equal(t, uint8(3), id.Dic())
	assert.Equal(t, uint32(42), id.Word())
	assert.False(t, id.IsOOV())
	assert.False(t, id.IsSpecial())
}

func TestOOVMarker(t *testing.T) {
	id := wordid.New(wordid.OOVDic, 7)
	assert.True(t, id.IsOOV())
	assert.False(t, id.IsSpecial())
	assert.Equal(t, uint32(7), id.Word())
}

func TestEOSSentinel(t *testing.T) {
	assert.True(t, wordid.EOS.IsSpecial())
	assert.False(t, wordid.EOS.IsOOV())
}

func TestFromRawRoundTrip(t *testing.T) {
	id := wordid.New(5, 123456)
	raw := id.Raw()
	assert.Equal(t, id, wordid.FromRaw(raw))
}

func TestPackLegacy(t *testing.T) {
	assert.Equal(t, int32(42), wordid.PackLegacy(0, 42))
	assert.Equal(t, int32(-1), wordid.PackLegacy(-3, -1))
	assert.Equal(t, int32(2*wordid.LegacyLexStride+7), wordid.PackLegacy(2, 7))
}

func TestUnpackNative(t *testing.T) {
	lex, word := wordid.UnpackNative(wordid.New(4, 99).Raw())
	assert.Equal(t, int32(4), lex)
	assert.Equal(t, int32(99), word)

	lex, word = wordid.UnpackNative(wordid.New(wordid.OOVDic, 55).Raw())
	assert.Equal(t, int32(-1), lex)
	assert.Equal(t, int32(55), word)
}

func TestDecodeDictionaryForm_Invalid(t *testing.T) {
	lex, legacy, packed, rel := wordid.DecodeDictionaryForm(-1, 3)
	assert.Equal(t, int32(-1), lex)
	assert.Equal(t, int32(-1), legacy)
	assert.Equal(t, int32(-1), packed)
	assert.Equal(t, int32(-1), rel)
}

func TestDecodeDictionaryForm_NativePacked(t *testing.T) {
	raw := int32(wordid.New(6, 101).Raw())
	lex, legacy, packed, rel := wordid.DecodeDictionaryForm(raw, 0)
	assert.Equal(t, int32(6), lex)
	assert.Equal(t, int32(101), rel)
	assert.Equal(t, wordid.PackLegacy(6, 101), legacy)
	assert.Equal(t, raw, packed)
}

func TestDecodeDictionaryForm_LegacyPacked(t *testing.T) {
	raw := int32(2)*wordid.LegacyLexStride + 55
	lex, legacy, packed, rel := wordid.DecodeDictionaryForm(raw, 9)
	assert.Equal(t, int32(2), lex)
	assert.Equal(t, raw, legacy)
	assert.Equal(t, raw, packed)
	assert.Equal(t, int32(55), rel)
}

func TestDecodeDictionaryForm_RelativeToDefault(t *testing.T) {
	lex, legacy, packed, rel := wordid.DecodeDictionaryForm(17, 4)
	assert.Equal(t, int32(4), lex)
	assert.Equal(t, wordid.PackLegacy(4, 17), legacy)
	assert.Equal(t, int32(17), packed)
	assert.Equal(t, int32(17), rel)
}

// TestDecodeDictionaryForm_LegacyBoundary exercises the exact boundary
// raw == LegacyLexStride, the smallest value that takes the legacy-packed
// branch. legacyLexID is always >= 1 here so the "suspect" fallthrough
// noted in DecodeDictionaryForm's doc comment is unreachable through this
// public API with a positive LegacyLexStride; the branch is kept because
// the original implementation keeps it.
func TestDecodeDictionaryForm_LegacyBoundary(t *testing.T) {
	raw := wordid.LegacyLexStride
	lex, _, _, rel := wordid.DecodeDictionaryForm(raw, 9)
	assert.Equal(t, int32(1), lex)
	assert.Equal(t, int32(0), rel)
}
