package images

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Prediction holds the values parsed from an image file name.
// A file named "extra-hard_2_35.png" yields Difficulty "Extra Hard" and
// Value "2.35".
type Prediction struct {
	Difficulty string
	Value      string
}

var titleCaser = cases.Title(language.English)

// ParsePrediction derives prediction parameters from an image path. The stem
// must be "<difficulty>_<int>_<frac>"; anything else returns ok=false and the
// caller falls back to the default caption.
func ParsePrediction(path string) (Prediction, bool) {
	stem := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	parts := strings.Split(stem, "_")
	if len(parts) < 3 {
		return Prediction{}, false
	}

	difficultyRaw, intPart, fracPart := parts[0], parts[1], parts[2]
	if !isDigits(intPart) || !isDigits(fracPart) {
		return Prediction{}, false
	}
	whole, _ := strconv.Atoi(intPart)

	difficulty := strings.ReplaceAll(difficultyRaw, "-", " ")
	return Prediction{
		Difficulty: titleCaser.String(difficulty),
		Value:      fmt.Sprintf("%d.%s", whole, fracPart),
	}, true
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
