package usecase

import (
	"iter"

	"github.com/ponyo877/extension-searcher/scanner/domain"
)

type Repository interface {
	// Entries walks the tree under root, yielding every entry that could
	// be read. Unreadable entries are skipped.
	Entries(root string) iter.Seq[domain.Entry]
}
