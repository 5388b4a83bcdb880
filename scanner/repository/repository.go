package repository

import (
	"errors"
	"io/fs"
	"iter"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/ponyo877/extension-searcher/scanner/domain"
	"github.com/ponyo877/extension-searcher/scanner/usecase"
	"github.com/spf13/afero"
)

// errStopWalk unwinds afero.Walk once the consumer stops pulling entries.
var errStopWalk = errors.New("walk stopped")

type Repository struct {
	fs     afero.Fs
	logger *slog.Logger
}

func NewRepository(fs afero.Fs, logger *slog.Logger) usecase.Repository {
	return &Repository{
		fs:     fs,
		logger: logger,
	}
}

// Entries walks root depth first, siblings in lexical order, the root
// itself first. Symlinks below the root are yielded but not followed, so
// the walk cannot loop. Entries that fail to be read are logged at debug
// level and dropped.
func (r *Repository) Entries(root string) iter.Seq[domain.Entry] {
	return func(yield func(domain.Entry) bool) {
		walkRoot := r.resolveRoot(root)
		// the walk function never fails, it only returns errStopWalk
		_ = afero.Walk(r.fs, walkRoot, func(path string, info fs.FileInfo, err error) error {
			if err != nil {
				r.logger.Debug("skipping unreadable entry", "path", path, "error", err)
				return nil
			}
			if !yield(domain.NewEntry(renderPath(root, walkRoot, path), info.Mode())) {
				return errStopWalk
			}
			return nil
		})
	}
}

// renderPath spells path, as produced by afero.Walk from walkRoot, with the
// root exactly as the caller gave it. afero.Walk cleans every child path,
// which would drop a leading "./" or doubled separators of the root.
func renderPath(root, walkRoot, path string) string {
	rel, err := filepath.Rel(filepath.Clean(walkRoot), path)
	if err != nil {
		return path
	}
	if rel == "." {
		return root
	}
	if root != "" && os.IsPathSeparator(root[len(root)-1]) {
		return root + rel
	}
	return root + string(filepath.Separator) + rel
}

// resolveRoot makes a root that is a symlink to a directory walkable.
// afero.Walk lstats the root, so a trailing separator is appended to have
// the link resolved.
func (r *Repository) resolveRoot(root string) string {
	lstater, ok := r.fs.(afero.Lstater)
	if !ok {
		return root
	}
	info, _, err := lstater.LstatIfPossible(root)
	if err != nil || info.Mode()&fs.ModeSymlink == 0 {
		return root
	}
	target, err := r.fs.Stat(root)
	if err != nil || !target.IsDir() {
		return root
	}
	r.logger.Debug("following root symlink", "root", root)
	return root + string(filepath.Separator)
}
