package valueobject

import (
	"fmt"
	"strings"

	"github.com/yurvon-screamo/origa-sub001/internal/knerr"
)

// JapaneseLevel is a JLPT band, ordered N5 (easiest) < N4 < N3 < N2 < N1 (hardest).
type JapaneseLevel int

const (
	N5 JapaneseLevel = iota + 1
	N4
	N3
	N2
	N1
)

// AsNumber returns the JLPT numeric code (5..1).
func (l JapaneseLevel) AsNumber() int {
	switch l {
	case N5:
		return 5
	case N4:
		return 4
	case N3:
		return 3
	case N2:
		return 2
	case N1:
		return 1
	default:
		return 0
	}
}

// Code returns the string code ("N5".."N1").
func (l JapaneseLevel) Code() string {
	return fmt.Sprintf("N%d", l.AsNumber())
}

// String displays the bare numeric digit (e.g. "5" for N5).
func (l JapaneseLevel) String() string {
	return fmt.Sprintf("%d", l.AsNumber())
}

// ParseJapaneseLevel parses a case-insensitive "N5".."N1" code. Unknown input
// is an InvalidValues error; reference-data loaders that need a forgiving
// fallback (see internal/dictionary) should catch this explicitly rather than
// silently defaulting, to avoid masking a malformed corpus.
func ParseJapaneseLevel(s string) (JapaneseLevel, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "N5":
		return N5, nil
	case "N4":
		return N4, nil
	case "N3":
		return N3, nil
	case "N2":
		return N2, nil
	case "N1":
		return N1, nil
	default:
		return 0, &knerr.InvalidValueError{Field: "JapaneseLevel", Reason: fmt.Sprintf("unrecognised level %q", s)}
	}
}

// AllJapaneseLevels enumerates N5..N1 in ascending difficulty order.
func AllJapaneseLevels() []JapaneseLevel {
	return []JapaneseLevel{N5, N4, N3, N2, N1}
}
