// SPDX-License-Identifier: MPL-2.0

package resolve

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"mvdan.cc/sh/v3/shell"

	"deskscout-cli/internal/desktopfile"
)

// Sentinel errors returned by ValidateExec. Callers turn these into broken
// findings; they never abort a scan.
var (
	// ErrNoExecutableToken is returned when an Exec line splits cleanly but
	// yields no token that could name an executable (e.g. `env FOO=1`).
	ErrNoExecutableToken = errors.New("no executable token in Exec line")
)

// Resolver resolves executable references for a single .desktop entry.
//
// SearchPath and CheckScriptArgs come from the process environment and
// configuration and are the same for every entry in a run; WorkingDir is the
// entry's own Path= value and varies per file. The zero WorkingDir means the
// entry declares no working directory.
type Resolver struct {
	// SearchPath is the colon-delimited list of directories used to resolve
	// bare commands, normally the process's PATH value.
	SearchPath string

	// WorkingDir is the entry's Path= value, used to resolve relative
	// executable references. Empty when the entry has none.
	WorkingDir string

	// CheckScriptArgs enables the interpreter script-argument heuristic on
	// top of plain resolution.
	CheckScriptArgs bool
}

// Resolve locates the on-disk executable a token refers to. It returns the
// resolved path and true on success, or "" and false when no runnable file
// could be located under the applicable rule.
//
// Rules, in order:
//   - token contains '/': treat as a path. Absolute paths are tested
//     directly; relative paths are joined with WorkingDir when set. A
//     relative path with no WorkingDir is ambiguous and stays unresolved.
//   - otherwise: search each non-empty SearchPath entry in order.
func (r Resolver) Resolve(token string) (string, bool) {
	if strings.Contains(token, "/") {
		if filepath.IsAbs(token) {
			if isExecutableFile(token) {
				return token, true
			}
			return "", false
		}

		if r.WorkingDir != "" {
			candidate := filepath.Join(r.WorkingDir, token)
			if isExecutableFile(candidate) {
				return candidate, true
			}
			return "", false
		}

		// Relative without Path= is ambiguous in .desktop files.
		return "", false
	}

	return r.searchPath(token)
}

// searchPath looks for cmd in each non-empty entry of SearchPath, returning
// the first match that is an executable file.
func (r Resolver) searchPath(cmd string) (string, bool) {
	for _, dir := range strings.Split(r.SearchPath, ":") {
		if dir == "" {
			continue
		}
		candidate := filepath.Join(dir, cmd)
		if isExecutableFile(candidate) {
			return candidate, true
		}
	}
	return "", false
}

// ValidateTryExec resolves a TryExec= value. TryExec is defined to hold a
// plain path or command, never a full command line, so the raw value is
// resolved as-is.
func (r Resolver) ValidateTryExec(value string) (string, bool) {
	return r.Resolve(value)
}

// ValidateExec validates a full Exec= command line.
//
// The line is shell-split with POSIX quoting rules, the executable token is
// extracted (unwrapping an `env` prefix), and the token is resolved. A token
// that is itself a field code (e.g. `%f`) makes the line meaningless rather
// than broken: ValidateExec returns ("", nil) for it.
//
// When CheckScriptArgs is set and the executable resolves to a known
// interpreter, the script argument is additionally verified; a missing
// script surfaces as an error.
//
// Return shapes: (path, nil) resolved; ("", nil) unresolved or meaningless;
// ("", err) for split failures, extraction failures, and heuristic problems.
func (r Resolver) ValidateExec(execLine string) (string, error) {
	// Variables are resolved to the empty string so splitting stays
	// deterministic regardless of the scanner's own environment.
	tokens, err := shell.Fields(execLine, func(string) string { return "" })
	if err != nil {
		return "", fmt.Errorf("shell-split Exec line: %w", err)
	}

	token, ok := desktopfile.ExtractExecutableToken(tokens)
	if !ok {
		return "", ErrNoExecutableToken
	}

	if strings.HasPrefix(token, "%") {
		return "", nil
	}

	resolved, ok := r.Resolve(token)
	if !ok {
		return "", nil
	}

	if r.CheckScriptArgs {
		if problem, found := r.scriptProblem(resolved, tokens); found {
			return "", errors.New(problem)
		}
	}

	return resolved, nil
}
