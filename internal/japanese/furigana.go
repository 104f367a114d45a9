package japanese

import "strings"

// FuriganizeText segments text into runs of Japanese vs non-Japanese
// characters; Japanese runs are tokenised, and any token whose surface
// contains kanji is wrapped in ruby markup with its reading. Tokens without
// kanji, and non-Japanese runs, pass through verbatim.
func FuriganizeText(t Tokenizer, text string) (string, error) {
	var out strings.Builder
	for _, run := range splitRuns(text) {
		if !run.japanese {
			out.WriteString(run.text)
			continue
		}
		tokens, err := t.Tokenize(run.text)
		if err != nil {
			return "", err
		}
		for _, tok := range tokens {
			if ContainsKanji(tok.OrthographicSurfaceForm) && tok.PhonologicalSurfaceForm != "" {
				out.WriteString("<ruby>")
				out.WriteString(tok.OrthographicSurfaceForm)
				out.WriteString("<rp>(</rp><rt>")
				out.WriteString(tok.PhonologicalSurfaceForm)
				out.WriteString("</rt><rp>)</rp></ruby>")
			} else {
				out.WriteString(tok.OrthographicSurfaceForm)
			}
		}
	}
	return out.String(), nil
}

// HasFurigana reports whether furiganizing text changes it.
func HasFurigana(t Tokenizer, text string) (bool, error) {
	rendered, err := FuriganizeText(t, text)
	if err != nil {
		return false, err
	}
	return rendered != text, nil
}

// EqualsByReading reports whether a and b render to the same furigana markup,
// i.e. they read identically even if their surface kanji differ.
func EqualsByReading(t Tokenizer, a, b string) (bool, error) {
	ra, err := FuriganizeText(t, a)
	if err != nil {
		return false, err
	}
	rb, err := FuriganizeText(t, b)
	if err != nil {
		return false, err
	}
	return ra == rb, nil
}

type run struct {
	text     string
	japanese bool
}

func splitRuns(text string) []run {
	var runs []run
	var current strings.Builder
	var currentIsJapanese bool
	first := true

	flush := func() {
		if current.Len() > 0 {
			runs = append(runs, run{text: current.String(), japanese: currentIsJapanese})
			current.Reset()
		}
	}

	for _, r := range text {
		isJP := IsJapaneseRune(r)
		if first {
			currentIsJapanese = isJP
			first = false
		} else if isJP != currentIsJapanese {
			flush()
			currentIsJapanese = isJP
		}
		current.WriteRune(r)
	}
	flush()
	return runs
}
