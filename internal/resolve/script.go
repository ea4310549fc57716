// SPDX-License-Identifier: MPL-2.0

package resolve

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// interpreters is the closed set of executables the script-argument
// heuristic applies to. Deliberately small: low recall, high precision.
var interpreters = map[string]struct{}{
	"python":  {},
	"python3": {},
	"node":    {},
	"bash":    {},
	"sh":      {},
	"ruby":    {},
	"perl":    {},
}

// scriptProblem checks whether an interpreter invocation points at a script
// that does not exist, e.g. `python3 /home/user/bin/gone.py`.
//
// The presumed script is the first token after the interpreter that is
// neither a field code (%...) nor an option flag (-...). Only path-like
// arguments (containing '/') are checked; a relative script path with no
// working directory is ambiguous and the check is silently skipped.
//
// Returns the problem description and true when the script is missing.
func (r Resolver) scriptProblem(resolvedExe string, tokens []string) (string, bool) {
	exeName := strings.ToLower(filepath.Base(resolvedExe))
	if _, ok := interpreters[exeName]; !ok || len(tokens) == 0 {
		return "", false
	}

	i := 1
	for i < len(tokens) {
		t := tokens[i]
		if strings.HasPrefix(t, "%") || strings.HasPrefix(t, "-") {
			i++
			continue
		}
		break
	}
	if i >= len(tokens) {
		return "", false
	}
	arg := tokens[i]

	if !strings.Contains(arg, "/") {
		return "", false
	}

	var candidate string
	switch {
	case filepath.IsAbs(arg):
		candidate = arg
	case r.WorkingDir != "":
		candidate = filepath.Join(r.WorkingDir, arg)
	default:
		return "", false
	}

	if _, err := os.Stat(candidate); err != nil {
		return fmt.Sprintf("interpreter %s exists, but script/path argument is missing: %s", exeName, candidate), true
	}

	return "", false
}
