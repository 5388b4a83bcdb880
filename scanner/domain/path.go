package domain

import (
	"os"
	"strings"
	"unicode/utf8"
)

type Path string

func NewPath(path string) Path {
	return Path(path)
}

func (p Path) String() string {
	return string(p)
}

// Name returns the last normal component of the path. Trailing "."
// components are ignored, and a path ending in ".." has no name.
func (p Path) Name() (string, bool) {
	components := strings.FieldsFunc(string(p), func(r rune) bool {
		return r < utf8.RuneSelf && os.IsPathSeparator(uint8(r))
	})
	for len(components) > 0 && components[len(components)-1] == "." {
		components = components[:len(components)-1]
	}
	if len(components) == 0 {
		return "", false
	}
	name := components[len(components)-1]
	if name == ".." {
		return "", false
	}
	return name, true
}

// Extension returns the text following the last "." of the name.
// "archive.tar.gz" -> "gz", ".bashrc" -> none, "notes." -> ""
func (p Path) Extension() (string, bool) {
	name, ok := p.Name()
	if !ok {
		return "", false
	}
	i := strings.LastIndexByte(name, '.')
	if i <= 0 {
		return "", false
	}
	ext := name[i+1:]
	if !utf8.ValidString(ext) {
		return "", false
	}
	return ext, true
}
