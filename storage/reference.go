package storage

import (
	"fmt"
	"path/filepath"
	"strings"
)

// CleanReference turns a suggested attachment name into a reference both
// attachment stores accept: the base name with directory parts stripped.
func CleanReference(suggestedName string) (string, error) {
	name := filepath.Base(strings.ReplaceAll(suggestedName, "\\", "/"))
	if err := ValidateReference(name); err != nil {
		return "", err
	}
	return name, nil
}

// ValidateReference rejects references that could name a file outside the store.
func ValidateReference(ref string) error {
	switch {
	case ref == "", ref == ".", ref == "..":
		return fmt.Errorf("%w: %q", ErrInvalidReference, ref)
	case strings.ContainsAny(ref, "/\\"):
		return fmt.Errorf("%w: %q contains a path separator", ErrInvalidReference, ref)
	case strings.HasPrefix(ref, "."):
		return fmt.Errorf("%w: %q is hidden", ErrInvalidReference, ref)
	}
	return nil
}
