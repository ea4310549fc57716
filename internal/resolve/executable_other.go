// SPDX-License-Identifier: MPL-2.0

//go:build !unix

package resolve

import "os"

// isExecutableFile reports whether path exists and is a regular file. On
// platforms without Unix permission bits the executable-bit check degrades
// to existence and file-ness.
func isExecutableFile(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.Mode().IsRegular()
}
