package handlers

import (
	"bufio"
	"context"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"sort"
)

// matchFunc inspects one source line and returns a dependency name.
// Only the first match per line is taken.
type matchFunc func(line string) (dep string, ok bool)

// scanFiles walks dir and applies match to every line of every regular
// file whose extension is in exts, collecting the unique results in sorted
// order. Files that cannot be read are logged and skipped.
func scanFiles(ctx context.Context, dir, tag string, exts []string, match matchFunc) []string {
	extSet := make(map[string]bool, len(exts))
	for _, e := range exts {
		extSet[e] = true
	}

	deps := make(map[string]bool)
	_ = filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			// Unreadable subtree: skip it, keep scanning.
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() || !d.Type().IsRegular() || !extSet[filepath.Ext(path)] {
			return nil
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		f, err := os.Open(path)
		if err != nil {
			log.Printf("[%s] error reading %s: %v", tag, path, err)
			return nil
		}
		sc := bufio.NewScanner(f)
		// Minified bundles can put the whole source on one line, well past
		// the default token size.
		sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
		for sc.Scan() {
			if dep, ok := match(sc.Text()); ok {
				deps[dep] = true
			}
		}
		if err := sc.Err(); err != nil {
			log.Printf("[%s] error reading %s: %v", tag, path, err)
		}
		f.Close()
		return nil
	})

	return sortedKeys(deps)
}

// sortedKeys returns the keys of set in lexicographic order.
func sortedKeys(set map[string]bool) []string {
	if len(set) == 0 {
		return nil
	}
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
