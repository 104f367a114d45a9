package japanese

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifier(t *testing.T) {
	assert.True(t, IsHiragana('あ'))
	assert.True(t, IsKatakana('ア'))
	assert.True(t, IsKanji('日'))
	assert.False(t, IsKanji('あ'))

	assert.True(t, IsJapanese("こんにちは"))
	assert.False(t, IsJapanese("hello"))
	assert.True(t, IsJapanese(""))

	assert.True(t, ContainsJapanese("hello 日本語"))
	assert.False(t, ContainsJapanese("hello world"))

	assert.True(t, ContainsKanji("日本語"))
	assert.False(t, ContainsKanji("ひらがな"))
}

func TestPartOfSpeechIsVocabularyWord(t *testing.T) {
	assert.True(t, Noun.IsVocabularyWord())
	assert.True(t, Verb.IsVocabularyWord())
	assert.True(t, IAdjective.IsVocabularyWord())
	assert.True(t, NaAdjective.IsVocabularyWord())
	assert.False(t, Particle.IsVocabularyWord())
	assert.False(t, Other.IsVocabularyWord())
}

func TestVerbForms(t *testing.T) {
	tests := []struct {
		word, te, ta, masuStem, nai, masen, mashou string
	}{
		{"行く", "行って", "行った", "行き", "行かない", "行きません", "行きましょう"},
		{"話す", "話して", "話した", "話し", "話さない", "話しません", "話しましょう"},
		{"読む", "読んで", "読んだ", "読み", "読まない", "読みません", "読みましょう"},
		{"書く", "書いて", "書いた", "書き", "書かない", "書きません", "書きましょう"},
		{"泳ぐ", "泳いで", "泳いだ", "泳ぎ", "泳がない", "泳ぎません", "泳ぎましょう"},
		{"食べる", "食べて", "食べた", "食べ", "食べない", "食べません", "食べましょう"},
		{"見る", "見て", "見た", "見", "見ない", "見ません", "見ましょう"},
	}

	for _, tt := range tests {
		t.Run(tt.word, func(t *testing.T) {
			assert.Equal(t, tt.te, ToTeForm(tt.word))
			assert.Equal(t, tt.ta, ToTaForm(tt.word))
			assert.Equal(t, tt.masuStem, ToMasuStem(tt.word))
			assert.Equal(t, tt.nai, ToNaiForm(tt.word))
			assert.Equal(t, tt.masen, ToMasenForm(tt.word))
			assert.Equal(t, tt.mashou, ToMashouForm(tt.word))
		})
	}
}

func TestVerbFormsIrregular(t *testing.T) {
	assert.Equal(t, "して", ToTeForm("する"))
	assert.Equal(t, "きて", ToTeForm("くる"))
	assert.Equal(t, "きて", ToTeForm("来る"))
	assert.Equal(t, "こない", ToNaiForm("来る"))
	assert.Equal(t, "しない", ToNaiForm("する"))
}

// stubTokenizer treats any rune-level word as a single token, useful for
// furigana tests without loading the real ipa dictionary.
type stubTokenizer struct {
	tokens map[string][]Token
}

func (s stubTokenizer) Tokenize(text string) ([]Token, error) {
	if toks, ok := s.tokens[text]; ok {
		return toks, nil
	}
	return []Token{{OrthographicSurfaceForm: text, OrthographicBaseForm: text}}, nil
}

func TestFuriganizeTextASCIIIdempotent(t *testing.T) {
	stub := stubTokenizer{}
	out, err := FuriganizeText(stub, "hello world")
	assert.NoError(t, err)
	assert.Equal(t, "hello world", out)
}

func TestFuriganizeTextWrapsKanjiToken(t *testing.T) {
	stub := stubTokenizer{tokens: map[string][]Token{
		"日本語": {
			{OrthographicSurfaceForm: "日本語", PhonologicalSurfaceForm: "ニホンゴ"},
		},
	}}
	out, err := FuriganizeText(stub, "日本語")
	assert.NoError(t, err)
	assert.Equal(t, "<ruby>日本語<rp>(</rp><rt>ニホンゴ</rt><rp>)</rp></ruby>", out)
}

func TestHasFurigana(t *testing.T) {
	stub := stubTokenizer{}
	has, err := HasFurigana(stub, "hello")
	assert.NoError(t, err)
	assert.False(t, has)
}
