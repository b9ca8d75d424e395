package security

import (
	"path/filepath"
	"strings"
)

// SanitizeFilename keeps ASCII letters, digits, '-' and '_' in the base name,
// turns spaces into underscores and lowercases the extension.
func SanitizeFilename(filename string) string {
	filename = filepath.Base(strings.ReplaceAll(filename, `\`, "/"))
	ext := strings.ToLower(filepath.Ext(filename))
	baseName := strings.TrimSuffix(filename, filepath.Ext(filename))
	baseName = strings.ReplaceAll(baseName, " ", "_")

	var result strings.Builder
	for _, r := range baseName {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') || r == '_' || r == '-' {
			result.WriteRune(r)
		}
	}

	name := result.String()
	if len(name) > 100 {
		name = name[:100]
	}
	if name == "" {
		name = "file"
	}

	var extOut strings.Builder
	for _, r := range ext {
		if r == '.' || (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			extOut.WriteRune(r)
		}
	}
	return name + extOut.String()
}
