package errors

import (
	"path/filepath"
	"strings"
	"unicode"
)

// ValidateFileName validates an output image file name.
// It must be a plain base name ending in ".png", so that a figure can never
// write outside the output directory.
func ValidateFileName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidPath, "file name cannot be empty")
	}

	const maxNameLength = 255
	if len(name) > maxNameLength {
		return New(ErrCodeInvalidPath, "file name too long (max %d characters)", maxNameLength)
	}

	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "file name contains invalid control characters")
		}
	}

	if strings.ContainsAny(name, "/\\") {
		return New(ErrCodeInvalidPath, "file name cannot contain path separators: %q", name)
	}

	if strings.HasPrefix(name, ".") {
		return New(ErrCodeInvalidPath, "file name cannot be a hidden file: %q", name)
	}

	if filepath.Ext(name) != ".png" {
		return New(ErrCodeInvalidPath, "file name must have a .png extension: %q", name)
	}

	return nil
}

// ValidateOutputDir validates the directory images are written to.
//
// Validation rules:
//   - Path cannot be empty
//   - No null bytes or control characters
//   - No path traversal sequences (..) after cleaning
func ValidateOutputDir(dir string) error {
	if strings.TrimSpace(dir) == "" {
		return New(ErrCodeInvalidPath, "output directory cannot be empty")
	}

	for _, r := range dir {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "output directory contains invalid characters")
		}
	}

	for _, part := range strings.Split(filepath.ToSlash(filepath.Clean(dir)), "/") {
		if part == ".." {
			return New(ErrCodeInvalidPath, "output directory cannot contain path traversal sequences (..)")
		}
	}

	return nil
}
