package lexicon_test

import (
	"testing"

	"github.com/go-morph/vlattice/lexicon"
	"github.com/go-morph/vlattice/wordid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapLexiconPutAndGet(t *testing.T) {
	lex := lexicon.NewMapLexicon()
	id := wordid.New(0, 3)
	lex.Put(id, lexicon.WordInfo{Surface: "東京", ReadingForm: "トウキョウ"})

	info, err := lex.GetWordInfoSubset(id, lexicon.SurfaceBit|lexicon.ReadingFormBit)
	require.NoError(t, err)
	assert.Equal(t, "東京", info.Surface)
	assert.Equal(t, "トウキョウ", info.ReadingForm)
}

func TestMapLexiconNotFound(t *testing.T) {
	lex := lexicon.NewMapLexicon()
	_, err := lex.GetWordInfoSubset(wordid.New(0, 99), lexicon.All)
	assert.ErrorIs(t, err, lexicon.ErrWordNotFound)
}

func TestWordInfoReadingOrSurface(t *testing.T) {
	w := lexicon.WordInfo{Surface: "猫"}
	assert.Equal(t, "猫", w.ReadingOrSurface())

	w.ReadingForm = "ネコ"
	assert.Equal(t, "ネコ", w.ReadingOrSurface())
}

func TestInfoSubsetHas(t *testing.T) {
	s := lexicon.SurfaceBit | lexicon.ReadingFormBit
	assert.True(t, s.Has(lexicon.SurfaceBit))
	assert.True(t, s.Has(lexicon.SurfaceBit|lexicon.ReadingFormBit))
	assert.False(t, s.Has(lexicon.POSIDBit))
}

func TestGrammarPOSTags(t *testing.T) {
	g := &lexicon.Grammar{PosList: [][]string{{"名詞", "固有名詞"}, {"助詞"}}}
	assert.Equal(t, []string{"名詞", "固有名詞"}, g.POSTags(0))
	assert.Nil(t, g.POSTags(5))
	assert.Nil(t, g.POSTags(-1))
}
