// Package fsutil provides file system utility functions.
package fsutil

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
)

// FindFilesByExtension recursively searches the given root path for all files
// ending with one of the specified extensions. It returns a slice of their
// full paths in lexical order.
func FindFilesByExtension(rootPath string, extensions ...string) ([]string, error) {
	if len(extensions) == 0 {
		panic("at least one extension is required")
	}

	var files []string
	err := filepath.WalkDir(rootPath, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && HasExtension(path, extensions...) {
			files = append(files, path)
		}
		return nil
	})

	if err != nil {
		return nil, err
	}

	return files, nil
}

// HasExtension reports whether path ends with one of extensions.
func HasExtension(path string, extensions ...string) bool {
	return slices.Contains(extensions, filepath.Ext(path))
}

// Collect expands paths into the list of files carrying one of extensions.
// Directories are walked recursively; files are taken as given when their
// extension matches. Every file appears once, in discovery order. A path
// that does not exist is an error wrapping fs.ErrNotExist.
func Collect(paths []string, extensions ...string) ([]string, error) {
	var out []string
	seen := make(map[string]struct{})
	add := func(p string) {
		if _, ok := seen[p]; !ok {
			seen[p] = struct{}{}
			out = append(out, p)
		}
	}

	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return nil, fmt.Errorf("error accessing path %s: %w", path, err)
		}
		if !info.IsDir() {
			if HasExtension(path, extensions...) {
				add(path)
			}
			continue
		}
		files, err := FindFilesByExtension(path, extensions...)
		if err != nil {
			return nil, fmt.Errorf("error walking %s: %w", path, err)
		}
		for _, f := range files {
			add(f)
		}
	}
	return out, nil
}
