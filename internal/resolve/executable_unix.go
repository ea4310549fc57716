// SPDX-License-Identifier: MPL-2.0

//go:build unix

package resolve

import "os"

// isExecutableFile reports whether path exists, is a regular file, and has at
// least one of the owner/group/other executable permission bits set.
func isExecutableFile(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	if !info.Mode().IsRegular() {
		return false
	}
	return info.Mode().Perm()&0o111 != 0
}
