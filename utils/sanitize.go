package utils

import (
	"path"
	"path/filepath"
	"strings"
)

// SanitizeFilename reduces a caller-supplied filename to a flat, safe
// component for use inside a stored name. Path separators, parent
// references and control characters never survive.
func SanitizeFilename(name string) string {
	name = strings.TrimSpace(name)
	// strip any directory part, for both separator conventions
	name = path.Base(strings.ReplaceAll(name, `\`, "/"))
	name = filepath.Base(name)

	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '.' || r == '-' || r == '_':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	clean := strings.Trim(b.String(), ".")
	clean = strings.ReplaceAll(clean, "..", "_")
	if clean == "" {
		return "file"
	}
	return clean
}

// SanitizeHeaderFilename removes characters that can break headers.
func SanitizeHeaderFilename(name string) string {
	clean := strings.TrimSpace(name)
	if clean == "" {
		return "download"
	}
	clean = strings.ReplaceAll(clean, "\r", "")
	clean = strings.ReplaceAll(clean, "\n", "")
	clean = strings.ReplaceAll(clean, "\"", "")
	return clean
}
