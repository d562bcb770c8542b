// Package walk enumerates regular files under a directory. Spec.md §1
// treats directory enumeration as an external collaborator ("assume a
// simple iterator over regular files"); this is intentionally that
// simple iterator and nothing more.
package walk

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/pkg/errors"

	"github.com/baditaflorin/go_topk_wordcount/internal/core/domain"
)

// Files returns every regular file under root, sorted for deterministic
// round-robin assignment by the file-list master backend.
func Files(root string) ([]string, error) {
	info, err := os.Stat(root)
	if err != nil || !info.IsDir() {
		return nil, errors.Wrapf(domain.ErrDirectoryMissing, "root %q", root)
	}

	var files []string
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.Type().IsRegular() {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, errors.Wrapf(err, "walking %q", root)
	}

	sort.Strings(files)
	return files, nil
}
