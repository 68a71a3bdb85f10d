// Package probe provides the filesystem checks language handlers use for
// detection: manifest presence and recursive extension search.
package probe

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
)

// errFound stops a walk early once a matching file has been seen.
var errFound = errors.New("found")

// FileExists reports whether dir/name exists as any filesystem entry.
// A missing or unreadable dir is reported as false, never as an error.
func FileExists(dir, name string) bool {
	_, err := os.Stat(filepath.Join(dir, name))
	return err == nil
}

// HasFileWithExt reports whether any regular file under dir (recursively)
// has the given extension. The extension is compared case-sensitively and
// includes the leading dot (e.g. ".py"). The walk stops at the first match
// and skips unreadable subtrees instead of failing. Symlinks are not
// followed, so cycles cannot occur.
func HasFileWithExt(dir, ext string) bool {
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			// Unreadable entry: skip the subtree, keep scanning.
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if !d.IsDir() && d.Type().IsRegular() && filepath.Ext(path) == ext {
			return errFound
		}
		return nil
	})
	return errors.Is(err, errFound)
}
