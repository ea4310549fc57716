// SPDX-License-Identifier: MPL-2.0

package scan

import (
	"log/slog"
	"os"
	"path/filepath"
	"slices"
)

// DesktopFileExt is the extension that marks a descriptor file.
const DesktopFileExt = ".desktop"

// CollectDesktopFiles walks each root directory and returns every .desktop
// regular file found underneath, as a sorted, deduplicated list.
//
// The walk is an iterative depth-first traversal with an explicit stack.
// Symbolic links are skipped entirely — both to avoid loops from
// self-referential links and because validating link targets is out of
// scope. Directories that are missing or unreadable are skipped silently:
// most default application directories are optional.
func CollectDesktopFiles(roots []string) []string {
	var out []string

	for _, root := range roots {
		stack := []string{root}

		for len(stack) > 0 {
			dir := stack[len(stack)-1]
			stack = stack[:len(stack)-1]

			entries, err := os.ReadDir(dir)
			if err != nil {
				slog.Debug("skipping unreadable directory", "dir", dir, "error", err)
				continue
			}

			for _, entry := range entries {
				if entry.Type()&os.ModeSymlink != 0 {
					continue
				}
				path := filepath.Join(dir, entry.Name())
				switch {
				case entry.IsDir():
					stack = append(stack, path)
				case entry.Type().IsRegular() && filepath.Ext(path) == DesktopFileExt:
					out = append(out, path)
				}
			}
		}
	}

	slices.Sort(out)
	return slices.Compact(out)
}
