package jslint

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

// Discover expands paths into the files to lint. Files named explicitly
// are always included; directories are walked for files with one of the
// extensions, skipping directories whose base name is in exclude.
func Discover(paths, extensions, exclude []string) ([]string, error) {
	seen := make(map[string]bool)

	var files []string
	add := func(path string) {
		path = filepath.Clean(path)
		if !seen[path] {
			seen[path] = true
			files = append(files, path)
		}
	}

	for _, root := range paths {
		info, err := os.Stat(root)
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", root, err)
		}

		if !info.IsDir() {
			add(root)
			continue
		}

		err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}

			if d.IsDir() {
				if path != root && slices.Contains(exclude, d.Name()) {
					return filepath.SkipDir
				}
				return nil
			}

			if d.Type().IsRegular() && hasExtension(path, extensions) {
				add(path)
			}

			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("walk %s: %w", root, err)
		}
	}

	slices.Sort(files)

	return files, nil
}

func hasExtension(path string, extensions []string) bool {
	ext := filepath.Ext(path)
	for _, want := range extensions {
		if strings.EqualFold(ext, want) {
			return true
		}
	}

	return false
}
