// Package discover enumerates source files under a root by extension,
// using the same afs.Service abstraction the rest of the tree uses for
// file access.
package discover

import (
	"context"
	"path"
	"sort"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/viant/afs"
	"github.com/viant/afs/storage"
)

// Walker enumerates files under a root location by extension.
type Walker struct {
	fs        afs.Service
	Extension string // e.g. ".php"; matched case-insensitively
}

func New(extension string) *Walker {
	return &Walker{fs: afs.New(), Extension: extension}
}

// Files returns every file under root (single file or directory) whose
// extension matches, sorted lexically by URL so discovery order — and
// therefore diagnostic order — is deterministic across runs on the same
// filesystem.
func (w *Walker) Files(ctx context.Context, root string) ([]string, error) {
	object, err := w.fs.Object(ctx, root)
	if err != nil {
		return nil, errors.Wrapf(err, "stat %s", root)
	}

	if !object.IsDir() {
		if w.matches(object.Name()) {
			return []string{root}, nil
		}
		return nil, nil
	}

	var files []string
	if err := w.walk(ctx, root, &files); err != nil {
		return nil, err
	}
	sort.Strings(files)
	return files, nil
}

func (w *Walker) walk(ctx context.Context, dir string, files *[]string) error {
	objects, err := w.fs.List(ctx, dir)
	if err != nil {
		return errors.Wrapf(err, "list %s", dir)
	}

	for _, object := range objects {
		if object.IsDir() {
			if isSelf(dir, object) {
				continue
			}
			if err := w.walk(ctx, object.URL(), files); err != nil {
				return err
			}
			continue
		}
		if w.matches(object.Name()) {
			*files = append(*files, object.URL())
		}
	}
	return nil
}

func (w *Walker) matches(name string) bool {
	return strings.EqualFold(path.Ext(name), w.Extension)
}

// isSelf guards against afs.List returning the directory itself as one of
// its own entries, which some storage backends do for the root URL.
func isSelf(dir string, object storage.Object) bool {
	return strings.TrimRight(object.URL(), "/") == strings.TrimRight(dir, "/")
}
