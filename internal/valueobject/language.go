package valueobject

import (
	"strings"

	"github.com/yurvon-screamo/origa-sub001/internal/knerr"
)

// NativeLanguage selects which localised content to surface from reference data.
type NativeLanguage string

const (
	English NativeLanguage = "English"
	Russian NativeLanguage = "Russian"
)

func ParseNativeLanguage(s string) (NativeLanguage, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "english", "en":
		return English, nil
	case "russian", "ru":
		return Russian, nil
	default:
		return "", &knerr.InvalidValueError{Field: "NativeLanguage", Reason: "must be English or Russian, got " + s}
	}
}

func (l NativeLanguage) String() string { return string(l) }
