// SPDX-License-Identifier: MPL-2.0

package desktopfile

import "strings"

// EntrySectionHeader is the only section this package reads.
const EntrySectionHeader = "[Desktop Entry]"

// Keys interpreted by the scan pipeline. Everything else in the section is
// carried through the parsed map but never consulted.
const (
	KeyName            = "Name"
	KeyExec            = "Exec"
	KeyTryExec         = "TryExec"
	KeyPath            = "Path"
	KeyHidden          = "Hidden"
	KeyNoDisplay       = "NoDisplay"
	KeyType            = "Type"
	KeyDBusActivatable = "DBusActivatable"
)

// TypeApplication is the only Type= value whose entries are checked.
const TypeApplication = "Application"

// ParseEntrySection parses the [Desktop Entry] section of content into a
// key/value map. Keys keep their original casing; values are trimmed. Lines
// outside the section, comments (# or ;), blank lines, and lines without '='
// are ignored. Duplicate keys within the section are last-write-wins.
//
// Parsing never fails: malformed content simply yields fewer keys.
func ParseEntrySection(content string) map[string]string {
	fields := make(map[string]string)
	inSection := false

	for _, raw := range strings.Split(content, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, ";") {
			continue
		}

		if strings.HasPrefix(line, "[") && strings.HasSuffix(line, "]") {
			inSection = line == EntrySectionHeader
			continue
		}
		if !inSection {
			continue
		}

		key, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		fields[strings.TrimSpace(key)] = strings.TrimSpace(value)
	}

	return fields
}

// ParseBool interprets a .desktop boolean value. Only "true", "1", and "yes"
// (case-insensitive) are truthy; everything else, including the empty string,
// is false.
func ParseBool(value string) bool {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "true", "1", "yes":
		return true
	default:
		return false
	}
}

// ExtractExecutableToken returns the token that names the executable in an
// already shell-split Exec line. Normally that is the first token, but an
// `env` prefix is unwrapped: option flags (-...) and KEY=VALUE assignments
// after `env` are skipped and the token that follows them is returned.
//
// The second return value is false when no plausible token exists.
func ExtractExecutableToken(tokens []string) (string, bool) {
	if len(tokens) == 0 {
		return "", false
	}

	i := 0
	if tokens[0] == "env" {
		i = 1
		for i < len(tokens) {
			t := tokens[i]
			if strings.HasPrefix(t, "-") || strings.Contains(t, "=") {
				i++
				continue
			}
			break
		}
	}

	if i >= len(tokens) {
		return "", false
	}
	return tokens[i], true
}
