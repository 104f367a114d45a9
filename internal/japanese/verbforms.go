package japanese

// Verb-form transforms. Each is a deterministic transformation of the
// dictionary form; unrecognised input (too short, or an ending that is
// neither a godan terminal kana nor an ichidan る) is returned unchanged,
// matching the fall-through behaviour of the reference implementation this
// was ported from.
//
// Group classification: する and くる/来る are irregular and handled
// explicitly, as are the te/ta forms of 行く/いく (行って, 行った). A verb ending in る is ichidan when the kana immediately before
// it is not one of い, え, お, う; otherwise (including all other endings) it
// is godan, dispatching on the final kana.

type godanEnding struct {
	teSuffix   string
	taSuffix   string
	naiStem    string
	masuStem   string
}

var godanEndings = map[rune]godanEnding{
	'く': {teSuffix: "いて", taSuffix: "いた", naiStem: "か", masuStem: "き"},
	'ぐ': {teSuffix: "いで", taSuffix: "いだ", naiStem: "が", masuStem: "ぎ"},
	'す': {teSuffix: "して", taSuffix: "した", naiStem: "さ", masuStem: "し"},
	'つ': {teSuffix: "って", taSuffix: "った", naiStem: "た", masuStem: "ち"},
	'る': {teSuffix: "って", taSuffix: "った", naiStem: "ら", masuStem: "り"},
	'う': {teSuffix: "って", taSuffix: "った", naiStem: "わ", masuStem: "い"},
	'ぬ': {teSuffix: "んで", taSuffix: "んだ", naiStem: "な", masuStem: "に"},
	'ぶ': {teSuffix: "んで", taSuffix: "んだ", naiStem: "ば", masuStem: "び"},
	'む': {teSuffix: "んで", taSuffix: "んだ", naiStem: "ま", masuStem: "み"},
}

// classify reports whether word (as runes) is ichidan, its final kana, and
// whether the final kana is recognised at all.
func classify(r []rune) (ichidan bool, last rune, ok bool) {
	if len(r) == 0 {
		return false, 0, false
	}
	last = r[len(r)-1]
	if last == 'る' && len(r) >= 2 {
		second := r[len(r)-2]
		if second != 'い' && second != 'え' && second != 'お' && second != 'う' {
			return true, last, true
		}
	}
	if _, found := godanEndings[last]; found {
		return false, last, true
	}
	return false, 0, false
}

func ToTeForm(word string) string {
	switch word {
	case "する":
		return "して"
	case "くる", "来る":
		return "きて"
	case "行く", "いく":
		return string([]rune(word)[0]) + "って"
	}
	r := []rune(word)
	ichidan, last, ok := classify(r)
	if !ok {
		return word
	}
	stem := string(r[:len(r)-1])
	if ichidan {
		return stem + "て"
	}
	return stem + godanEndings[last].teSuffix
}

func ToTaForm(word string) string {
	switch word {
	case "する":
		return "した"
	case "くる", "来る":
		return "きた"
	case "行く", "いく":
		return string([]rune(word)[0]) + "った"
	}
	r := []rune(word)
	ichidan, last, ok := classify(r)
	if !ok {
		return word
	}
	stem := string(r[:len(r)-1])
	if ichidan {
		return stem + "た"
	}
	return stem + godanEndings[last].taSuffix
}

// ToMasuStem returns the stem the ~ます family of forms is built on (e.g.
// 食べる → 食べ, 行く → 行き).
func ToMasuStem(word string) string {
	switch word {
	case "する":
		return "し"
	case "くる", "来る":
		return "き"
	}
	r := []rune(word)
	ichidan, last, ok := classify(r)
	if !ok {
		return word
	}
	stem := string(r[:len(r)-1])
	if ichidan {
		return stem
	}
	return stem + godanEndings[last].masuStem
}

func ToMasenForm(word string) string {
	return ToMasuStem(word) + "ません"
}

func ToMashouForm(word string) string {
	return ToMasuStem(word) + "ましょう"
}

// ToNaiForm returns the bare negative (~ない) form, without any further
// grammar-rule suffix (e.g. ないでください layers ～でください on top of this).
func ToNaiForm(word string) string {
	switch word {
	case "する":
		return "しない"
	case "くる", "来る":
		return "こない"
	}
	r := []rune(word)
	ichidan, last, ok := classify(r)
	if !ok {
		return word
	}
	stem := string(r[:len(r)-1])
	if ichidan {
		return stem + "ない"
	}
	return stem + godanEndings[last].naiStem + "ない"
}
