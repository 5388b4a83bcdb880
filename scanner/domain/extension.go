package domain

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Predicate decides whether a visited path is reported.
type Predicate func(Path) bool

// ExtensionSet holds the requested extensions, lowercased. Duplicates are
// kept; membership is all that matters.
type ExtensionSet []string

// lower applies full Unicode lowercasing, including the final sigma rule
// that strings.ToLower skips.
func lower(s string) string {
	return cases.Lower(language.Und).String(s)
}

func NewExtensionSet(extensions []string) ExtensionSet {
	set := make(ExtensionSet, 0, len(extensions))
	for _, ext := range extensions {
		set = append(set, lower(ext))
	}
	return set
}

func (s ExtensionSet) Contains(ext string) bool {
	ext = lower(ext)
	for _, item := range s {
		if item == ext {
			return true
		}
	}
	return false
}

// Match reports whether the extension of path is in the set.
func (s ExtensionSet) Match(path Path) bool {
	ext, ok := path.Extension()
	if !ok {
		return false
	}
	return s.Contains(ext)
}
