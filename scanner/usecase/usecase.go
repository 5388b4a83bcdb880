package usecase

import (
	"fmt"
	"io"

	"github.com/ponyo877/extension-searcher/scanner/domain"
)

type Usecase struct {
	repo Repository
}

func NewUsecase(repo Repository) *Usecase {
	return &Usecase{
		repo: repo,
	}
}

// Search writes the path of every entry under root accepted by match to
// out, one per line, as the walk goes.
func (u Usecase) Search(root string, match domain.Predicate, out io.Writer) error {
	for entry := range u.repo.Entries(root) {
		if !match(entry.Path) {
			continue
		}
		if _, err := fmt.Fprintln(out, entry.Path); err != nil {
			return fmt.Errorf("error writing path %s: %w", entry.Path, err)
		}
	}
	return nil
}

// SearchExtensions is Search with an extension predicate.
func (u Usecase) SearchExtensions(root string, extensions []string, out io.Writer) error {
	return u.Search(root, domain.NewExtensionSet(extensions).Match, out)
}
