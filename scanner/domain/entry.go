package domain

import "io/fs"

type EntryType int

const (
	EntryTypeUnknown EntryType = iota
	EntryTypeFile
	EntryTypeDirectory
	EntryTypeSymlink
)

func NewEntryType(mode fs.FileMode) EntryType {
	switch {
	case mode.IsRegular():
		return EntryTypeFile
	case mode.IsDir():
		return EntryTypeDirectory
	case mode&fs.ModeSymlink != 0:
		return EntryTypeSymlink
	}
	return EntryTypeUnknown
}

func (t EntryType) String() string {
	switch t {
	case EntryTypeFile:
		return "file"
	case EntryTypeDirectory:
		return "directory"
	case EntryTypeSymlink:
		return "symlink"
	}
	return "unknown"
}

// Entry is a filesystem node visited during a scan.
type Entry struct {
	Path Path
	Type EntryType
}

func NewEntry(path string, mode fs.FileMode) Entry {
	return Entry{
		Path: NewPath(path),
		Type: NewEntryType(mode),
	}
}
