package repository

import (
	"fmt"
	"regexp"
	"strings"
)

// SetExtension is the suffix of every stored vocabulary set.
const SetExtension = ".json"

var unsafeFilenameChars = regexp.MustCompile(`[^a-z0-9_-]`)

// SanitizeFilename turns a user-supplied name into a set filename: characters
// outside [a-z0-9_-] become '_', the result is lowercased and gets the .json
// extension.
func SanitizeFilename(name string) (string, error) {
	base := strings.TrimSpace(name)
	if strings.HasSuffix(strings.ToLower(base), SetExtension) {
		base = base[:len(base)-len(SetExtension)]
	}
	if base == "" {
		return "", fmt.Errorf("%w: name is empty", ErrInvalidFilename)
	}
	return unsafeFilenameChars.ReplaceAllString(strings.ToLower(base), "_") + SetExtension, nil
}

// ValidateFilename checks that filename names a set directly inside the store.
func ValidateFilename(filename string) error {
	switch {
	case strings.TrimSpace(filename) == "":
		return fmt.Errorf("%w: filename is empty", ErrInvalidFilename)
	case strings.ContainsAny(filename, `/\`), strings.Contains(filename, ".."):
		return fmt.Errorf("%w: %q must not contain path elements", ErrInvalidFilename, filename)
	case strings.HasPrefix(filename, "."):
		return fmt.Errorf("%w: %q is hidden", ErrInvalidFilename, filename)
	case !strings.HasSuffix(filename, SetExtension):
		return fmt.Errorf("%w: %q must end in %s", ErrInvalidFilename, filename, SetExtension)
	}
	return nil
}
