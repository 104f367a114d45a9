package japanese

import (
	"sync"

	"github.com/ikawaha/kagome-dict/ipa"
	"github.com/ikawaha/kagome/v2/tokenizer"
	"github.com/yurvon-screamo/origa-sub001/internal/knerr"
)

// Token is one morpheme produced by the tokeniser.
type Token struct {
	// OrthographicBaseForm is the dictionary (lemma) form, e.g. 食べる for 食べた.
	OrthographicBaseForm string
	// OrthographicSurfaceForm is the form as it appeared in the input text.
	OrthographicSurfaceForm string
	// PhonologicalSurfaceForm is the reading of the surface form.
	PhonologicalSurfaceForm string
	PartOfSpeech             PartOfSpeech
}

// Tokenizer splits Japanese text into tokens. It is an interface so tests can
// substitute a stub without loading the real kagome/ipa dictionary, which the
// spec frames as an external MeCab-class dependency the text kit wraps.
type Tokenizer interface {
	Tokenize(text string) ([]Token, error)
}

// KagomeTokenizer is the production Tokenizer, backed by kagome/v2 with the
// bundled IPA dictionary.
type KagomeTokenizer struct {
	once sync.Once
	t    *tokenizer.Tokenizer
	err  error
}

// NewKagomeTokenizer returns a Tokenizer that lazily builds the underlying
// kagome instance on first use, so constructing one is cheap and process
// startup does not pay the dictionary-loading cost until it is needed.
func NewKagomeTokenizer() *KagomeTokenizer {
	return &KagomeTokenizer{}
}

func (k *KagomeTokenizer) tokenizer() (*tokenizer.Tokenizer, error) {
	k.once.Do(func() {
		k.t, k.err = tokenizer.New(ipa.Dict(), tokenizer.OmitBosEos())
	})
	return k.t, k.err
}

func (k *KagomeTokenizer) Tokenize(text string) ([]Token, error) {
	if text == "" {
		return nil, nil
	}
	t, err := k.tokenizer()
	if err != nil {
		return nil, &knerr.TokenizerError{Err: err}
	}

	raw := t.Analyze(text, tokenizer.Normal)
	tokens := make([]Token, 0, len(raw))
	for _, kt := range raw {
		features := kt.POS()
		var coarse PartOfSpeech = Other
		if len(features) > 0 {
			coarse = posFromIPADIC(features[0])
		}

		base, ok := kt.BaseForm()
		if !ok || base == "" {
			base = kt.Surface
		}
		reading, ok := kt.Reading()
		if !ok {
			reading = ""
		}

		tokens = append(tokens, Token{
			OrthographicBaseForm:     base,
			OrthographicSurfaceForm:  kt.Surface,
			PhonologicalSurfaceForm:  reading,
			PartOfSpeech:             coarse,
		})
	}
	return tokens, nil
}
