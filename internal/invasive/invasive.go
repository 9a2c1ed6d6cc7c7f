// Package invasive holds the embedded invasive-species watch list and the
// name normalization used to match identification results against it.
package invasive

import (
	_ "embed"
	"strings"
	"sync"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

//go:embed invasive_species.txt
var rawList string

var (
	once sync.Once
	set  map[string]struct{}
)

// Normalize lowercases, trims, and strips diacritics (NFD decomposition
// with combining marks removed) so "Fallopia japónica" and
// "fallopia japonica" compare equal.
func Normalize(text string) string {
	decomposed := norm.NFD.String(text)
	var b strings.Builder
	b.Grow(len(decomposed))
	for _, r := range decomposed {
		if unicode.Is(unicode.Mn, r) {
			continue
		}
		b.WriteRune(r)
	}
	return strings.TrimSpace(strings.ToLower(b.String()))
}

// Contains reports whether the given species name is on the watch list.
func Contains(name string) bool {
	once.Do(load)
	_, ok := set[Normalize(name)]
	return ok
}

func load() {
	set = make(map[string]struct{})
	for _, line := range strings.Split(rawList, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		set[Normalize(line)] = struct{}{}
	}
}
