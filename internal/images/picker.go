package images

import (
	"errors"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
)

// ErrEmptyLibrary is returned by Pick when the images directory contains no
// supported image files.
var ErrEmptyLibrary = errors.New("no images found in library")

// supportedExtensions lists the file extensions treated as prediction images.
var supportedExtensions = map[string]struct{}{
	".jpg":  {},
	".jpeg": {},
	".png":  {},
	".gif":  {},
}

// Picker selects a random image file from a directory. The directory is
// re-scanned on every call so files added or removed at runtime take effect
// immediately.
type Picker struct {
	dir  string
	intn func(n int) int
}

// NewPicker creates a Picker over dir using the package-level random source,
// which is safe for use from concurrent update handlers.
func NewPicker(dir string) *Picker {
	return NewPickerWithRand(dir, rand.Intn)
}

// NewPickerWithRand creates a Picker with an injected random source.
// intn must behave like rand.Intn and must be safe for concurrent use when
// Pick is called from multiple goroutines. Tests use this for deterministic
// selection.
func NewPickerWithRand(dir string, intn func(n int) int) *Picker {
	return &Picker{dir: dir, intn: intn}
}

// Pick returns the path of one supported image chosen uniformly at random,
// or ErrEmptyLibrary when the directory holds none.
func (p *Picker) Pick() (string, error) {
	entries, err := os.ReadDir(p.dir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", ErrEmptyLibrary
		}
		return "", err
	}

	var candidates []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(entry.Name()))
		if _, ok := supportedExtensions[ext]; ok {
			candidates = append(candidates, entry.Name())
		}
	}
	if len(candidates) == 0 {
		return "", ErrEmptyLibrary
	}

	name := candidates[p.intn(len(candidates))]
	return filepath.Join(p.dir, name), nil
}
