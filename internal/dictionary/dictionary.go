// Package dictionary exposes the embedded reference corpora: kanji,
// radicals, per-word translations, and the JLPT "well known" vocabulary
// sets used to bulk-import cards a learner already knows. Everything here
// is read-only and built once, lazily, on first access; a malformed
// embedded corpus is a build-time defect, so parsing failures panic rather
// than degrade to a partial catalogue.
package dictionary

import (
	"embed"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/yurvon-screamo/origa-sub001/internal/knerr"
	"github.com/yurvon-screamo/origa-sub001/internal/valueobject"
)

//go:embed data/kanji.json data/radicals.json data/vocabulary.json data/jlpt_n1.json data/jlpt_n2.json data/jlpt_n3.json data/jlpt_n4.json data/jlpt_n5.json
var dataFS embed.FS

// PopularWord is one high-frequency word using a given kanji, carried so
// kanji cards can show real usage.
type PopularWord struct {
	Word    string `json:"word"`
	Reading string `json:"reading"`
}

// Kanji is one character's dictionary entry.
type Kanji struct {
	Character    string                     `json:"kanji"`
	LevelCode    string                     `json:"jlpt"`
	Level        valueobject.JapaneseLevel  `json:"-"`
	UsedIn       int                        `json:"used_in"`
	Description  string                     `json:"description"`
	RadicalChars []string                   `json:"radicals"`
	PopularWords []PopularWord              `json:"popular_words"`
}

type kanjiDocument struct {
	Kanji []Kanji `json:"kanji"`
}

// Radical is one kanji radical (building block).
type Radical struct {
	Character   string
	StrokeCount int    `json:"strokeCount"`
	KanjiChars  []string `json:"kanji"`
	Name        string `json:"name"`
	Description string `json:"description"`
	LevelCode   string `json:"jlpt"`
	Level       valueobject.JapaneseLevel `json:"-"`
}

type radicalsDocument struct {
	Radicals map[string]Radical `json:"radicals"`
}

// LocalizedSetContent is the bilingual title/description for a well-known set.
type LocalizedSetContent struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// WellKnownSetID names one of the bundled JLPT word lists usable for a bulk
// "I already know these" import.
type WellKnownSetID string

const (
	JlptN5 WellKnownSetID = "JlptN5"
	JlptN4 WellKnownSetID = "JlptN4"
	JlptN3 WellKnownSetID = "JlptN3"
	JlptN2 WellKnownSetID = "JlptN2"
	JlptN1 WellKnownSetID = "JlptN1"
)

var wellKnownSetFiles = map[WellKnownSetID]string{
	JlptN5: "data/jlpt_n5.json",
	JlptN4: "data/jlpt_n4.json",
	JlptN3: "data/jlpt_n3.json",
	JlptN2: "data/jlpt_n2.json",
	JlptN1: "data/jlpt_n1.json",
}

// WellKnownSet is a bundled JLPT word list with bilingual presentation content.
type WellKnownSet struct {
	LevelCode string                                           `json:"level"`
	Level     valueobject.JapaneseLevel                         `json:"-"`
	Words     []string                                          `json:"words"`
	Content   map[valueobject.NativeLanguage]LocalizedSetContent `json:"content"`
}

type vocabularyEntry struct {
	RussianTranslation string `json:"russian_translation"`
	EnglishTranslation string `json:"english_translation"`
}

type catalogue struct {
	kanjiByChar   map[string]Kanji
	kanjiByLevel  map[valueobject.JapaneseLevel][]Kanji
	radicalByChar map[string]Radical
	radicals      []Radical
	vocabulary    map[string]vocabularyEntry
	wellKnownSets map[WellKnownSetID]WellKnownSet
}

var loadOnce = sync.OnceValue(func() *catalogue {
	cat := &catalogue{
		kanjiByChar:   make(map[string]Kanji),
		kanjiByLevel:  make(map[valueobject.JapaneseLevel][]Kanji),
		radicalByChar: make(map[string]Radical),
		wellKnownSets: make(map[WellKnownSetID]WellKnownSet),
	}

	var kanjiDoc kanjiDocument
	mustReadJSON("data/kanji.json", &kanjiDoc)
	for _, k := range kanjiDoc.Kanji {
		level, err := valueobject.ParseJapaneseLevel(k.LevelCode)
		if err != nil {
			panic(&knerr.WellKnownSetError{Err: fmt.Errorf("kanji %q has invalid level %q: %w", k.Character, k.LevelCode, err)})
		}
		k.Level = level
		cat.kanjiByChar[k.Character] = k
		cat.kanjiByLevel[level] = append(cat.kanjiByLevel[level], k)
	}

	var radicalsDoc radicalsDocument
	mustReadJSON("data/radicals.json", &radicalsDoc)
	for character, r := range radicalsDoc.Radicals {
		r.Character = character
		if r.LevelCode != "" {
			level, err := valueobject.ParseJapaneseLevel(r.LevelCode)
			if err != nil {
				panic(&knerr.KradfileError{Err: fmt.Errorf("radical %q has invalid level %q: %w", character, r.LevelCode, err)})
			}
			r.Level = level
		}
		cat.radicalByChar[character] = r
		cat.radicals = append(cat.radicals, r)
	}

	var vocab map[string]vocabularyEntry
	mustReadJSON("data/vocabulary.json", &vocab)
	cat.vocabulary = vocab

	for id, path := range wellKnownSetFiles {
		var set WellKnownSet
		mustReadJSON(path, &set)
		level, err := valueobject.ParseJapaneseLevel(set.LevelCode)
		if err != nil {
			panic(&knerr.WellKnownSetError{Err: fmt.Errorf("well-known set %q has invalid level %q: %w", path, set.LevelCode, err)})
		}
		set.Level = level
		cat.wellKnownSets[id] = set
	}

	return cat
})

func mustReadJSON(path string, target any) {
	raw, err := dataFS.ReadFile(path)
	if err != nil {
		panic(&knerr.KradfileError{Err: fmt.Errorf("reading embedded %s: %w", path, err)})
	}
	if err := json.Unmarshal(raw, target); err != nil {
		panic(&knerr.KradfileError{Err: fmt.Errorf("parsing embedded %s: %w", path, err)})
	}
}

// KanjiByChar looks up a single kanji's dictionary entry.
func KanjiByChar(c string) (Kanji, bool) {
	k, ok := loadOnce().kanjiByChar[c]
	return k, ok
}

// KanjiListByLevel returns every kanji at exactly the given JLPT level.
func KanjiListByLevel(level valueobject.JapaneseLevel) []Kanji {
	return loadOnce().kanjiByLevel[level]
}

// RadicalByChar looks up a single radical.
func RadicalByChar(c string) (Radical, bool) {
	r, ok := loadOnce().radicalByChar[c]
	return r, ok
}

// KnownRadicals returns the full radical catalogue.
func KnownRadicals() []Radical {
	return loadOnce().radicals
}

// VocabularyTranslation looks up word's translation in the given language.
// It returns false when the word is not in the catalogue at all.
func VocabularyTranslation(word string, lang valueobject.NativeLanguage) (string, bool) {
	entry, ok := loadOnce().vocabulary[word]
	if !ok {
		return "", false
	}
	switch lang {
	case valueobject.English:
		return entry.EnglishTranslation, true
	case valueobject.Russian:
		return entry.RussianTranslation, true
	default:
		return "", false
	}
}

// GetWellKnownSet returns the bundled word list and content for a JLPT set.
func GetWellKnownSet(id WellKnownSetID) (WellKnownSet, bool) {
	set, ok := loadOnce().wellKnownSets[id]
	return set, ok
}
