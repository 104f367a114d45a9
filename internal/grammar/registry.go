// Package grammar implements the grammar-rule registry: a fixed catalogue of
// JLPT grammar patterns, each able to format a dictionary-form word into an
// example sentence fragment for that pattern.
//
// The catalogue is data-driven rather than one Go type per rule, following
// the reference store's design: most rules are a verb-form transform plus an
// optional prefix and a template string, and a handful of rules whose
// formatting depends on which part of speech matched are dispatched through a
// small set of named special cases.
package grammar

import (
	"embed"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/yurvon-screamo/origa-sub001/internal/japanese"
	"github.com/yurvon-screamo/origa-sub001/internal/knerr"
	"github.com/yurvon-screamo/origa-sub001/internal/valueobject"
)

//go:embed data/grammar.json
var dataFS embed.FS

// LocalizedContent is the bilingual presentation text for a rule.
type LocalizedContent struct {
	Title            string `json:"title"`
	ShortDescription string `json:"short_description"`
	MdDescription    string `json:"md_description"`
}

// Rule is one grammar pattern: a JLPT level, the parts of speech it accepts,
// and a dispatch mode describing how Format builds an example from a word.
type Rule struct {
	ID          string                                        `json:"id"`
	Level       valueobject.JapaneseLevel                     `json:"-"`
	LevelCode   string                                        `json:"level"`
	ApplyTo     []japanese.PartOfSpeech                       `json:"apply_to"`
	Dispatch    string                                        `json:"dispatch"`
	Transform   string                                        `json:"transform,omitempty"`
	Prefix      string                                        `json:"prefix,omitempty"`
	Template    string                                        `json:"template,omitempty"`
	Content     map[valueobject.NativeLanguage]LocalizedContent `json:"content"`
}

// AcceptsPartOfSpeech reports whether the rule applies to pos.
func (r Rule) AcceptsPartOfSpeech(pos japanese.PartOfSpeech) bool {
	for _, p := range r.ApplyTo {
		if p == pos {
			return true
		}
	}
	return false
}

// Format builds the example-sentence fragment for word, given its part of
// speech. It returns a GrammarFormatError when pos is not one the rule
// accepts, or when the rule's dispatch mode cannot handle pos.
func (r Rule) Format(word string, pos japanese.PartOfSpeech) (string, error) {
	if !r.AcceptsPartOfSpeech(pos) {
		return "", &knerr.GrammarFormatError{RuleID: r.ID, Reason: fmt.Sprintf("rule does not apply to part of speech %q", pos)}
	}

	switch r.Dispatch {
	case "template":
		transformed := applyTransform(r.Transform, word)
		return r.Prefix + fmt.Sprintf(r.Template, transformed), nil

	case "nda":
		switch pos {
		case japanese.Verb, japanese.IAdjective:
			return word + "んだ", nil
		case japanese.Noun, japanese.NaAdjective:
			return word + "なんだ", nil
		default:
			return "", &knerr.GrammarFormatError{RuleID: r.ID, Reason: fmt.Sprintf("nda dispatch cannot handle part of speech %q", pos)}
		}

	case "adjective_naru":
		switch pos {
		case japanese.IAdjective:
			return word + "くなる", nil
		case japanese.NaAdjective:
			return word + "になる", nil
		default:
			return "", &knerr.GrammarFormatError{RuleID: r.ID, Reason: fmt.Sprintf("adjective_naru dispatch cannot handle part of speech %q", pos)}
		}

	case "adjective_past":
		switch pos {
		case japanese.IAdjective:
			return word + "かった", nil
		case japanese.NaAdjective:
			return word + "でした", nil
		default:
			return "", &knerr.GrammarFormatError{RuleID: r.ID, Reason: fmt.Sprintf("adjective_past dispatch cannot handle part of speech %q", pos)}
		}

	default:
		return "", &knerr.GrammarFormatError{RuleID: r.ID, Reason: fmt.Sprintf("unknown dispatch mode %q", r.Dispatch)}
	}
}

func applyTransform(name, word string) string {
	switch name {
	case "te":
		return japanese.ToTeForm(word)
	case "ta":
		return japanese.ToTaForm(word)
	case "masu_stem":
		return japanese.ToMasuStem(word)
	case "nai":
		return japanese.ToNaiForm(word)
	case "masen":
		return japanese.ToMasenForm(word)
	case "mashou":
		return japanese.ToMashouForm(word)
	default:
		return word
	}
}

type registry struct {
	rules []Rule
	byID  map[string]Rule
}

var loadOnce = sync.OnceValue(func() *registry {
	raw, err := dataFS.ReadFile("data/grammar.json")
	if err != nil {
		panic(fmt.Sprintf("grammar: reading embedded data: %v", err))
	}

	var doc struct {
		Grammar []Rule `json:"grammar"`
	}
	if err := json.Unmarshal(raw, &doc); err != nil {
		panic(fmt.Sprintf("grammar: parsing embedded data: %v", err))
	}

	reg := &registry{byID: make(map[string]Rule, len(doc.Grammar))}
	for _, r := range doc.Grammar {
		level, err := valueobject.ParseJapaneseLevel(r.LevelCode)
		if err != nil {
			panic(fmt.Sprintf("grammar: rule %s has invalid level %q: %v", r.ID, r.LevelCode, err))
		}
		r.Level = level
		reg.rules = append(reg.rules, r)
		reg.byID[r.ID] = r
	}
	return reg
})

// Rules returns the full grammar-rule catalogue.
func Rules() []Rule {
	return loadOnce().rules
}

// RuleByID looks up a rule by its stable identifier.
func RuleByID(id string) (Rule, bool) {
	r, ok := loadOnce().byID[id]
	return r, ok
}

// RulesForLevel returns every rule at exactly the given level.
func RulesForLevel(level valueobject.JapaneseLevel) []Rule {
	var out []Rule
	for _, r := range loadOnce().rules {
		if r.Level == level {
			out = append(out, r)
		}
	}
	return out
}

// RulesForPartOfSpeech returns every rule that accepts pos.
func RulesForPartOfSpeech(pos japanese.PartOfSpeech) []Rule {
	var out []Rule
	for _, r := range loadOnce().rules {
		if r.AcceptsPartOfSpeech(pos) {
			out = append(out, r)
		}
	}
	return out
}
