package errors

import (
	"regexp"
	"strings"
	"unicode"
)

// regionNameRegex matches names usable for views and guides in scene
// documents. Dots are reserved for "<region>.<attribute>" references.
var regionNameRegex = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_-]*$`)

// ValidateRegionName validates a view or guide name.
//
// Rules:
//   - No empty names
//   - Maximum length of 64 characters
//   - Starts with a letter or underscore
//   - Only letters, digits, underscores and dashes
func ValidateRegionName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidName, "region name cannot be empty")
	}
	if len(name) > 64 {
		return New(ErrCodeInvalidName, "region name too long (max 64 characters)")
	}
	if !regionNameRegex.MatchString(name) {
		return New(ErrCodeInvalidName, "invalid region name: %q", name)
	}
	return nil
}

// ValidatePath validates an output file path.
// It rejects empty paths, control characters and parent traversal.
func ValidatePath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidInput, "path cannot be empty")
	}

	const maxPathLength = 500
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidInput, "path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "path contains invalid characters")
		}
	}

	if strings.Contains(path, "..") {
		return New(ErrCodeInvalidInput, "path cannot contain path traversal sequences (..)")
	}

	return nil
}
