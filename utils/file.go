package utils

import (
	"path/filepath"
	"strings"
)

// SafeFileName maps a client-supplied filename to a name that is safe to use
// as a single path component inside the upload directory. Any directory
// prefix is stripped and characters outside [a-zA-Z0-9._-] are replaced.
func SafeFileName(name string) string {
	name = filepath.Base(name)
	if name == "." || name == ".." || name == string(filepath.Separator) {
		return "_"
	}
	return strings.Map(func(r rune) rune {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') || r == '-' || r == '_' || r == '.' {
			return r
		}
		return '_'
	}, name)
}
