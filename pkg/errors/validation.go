package errors

import (
	"strings"
	"unicode"
)

// ValidateDocumentName validates a document name for safety and
// correctness. It rejects names that could be used for path traversal
// when a file-backed store derives paths from them.
//
// The validation rules are intentionally conservative:
//   - No empty names
//   - No control characters
//   - No path separators or traversal sequences
//   - Maximum length of 256 characters
func ValidateDocumentName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidDocument, "document name cannot be empty")
	}

	if len(name) > 256 {
		return New(ErrCodeInvalidDocument, "document name too long (max 256 characters)")
	}

	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidDocument, "document name contains invalid control characters")
		}
	}

	if strings.ContainsAny(name, "/\\") || strings.Contains(name, "..") {
		return New(ErrCodeInvalidDocument, "document name cannot contain path components")
	}

	return nil
}

// ValidateElementID validates an element identifier. IDs end up in cache
// keys, file names, and DOT node names, so the same conservative rules
// apply as for document names.
func ValidateElementID(id string) error {
	if id == "" {
		return New(ErrCodeInvalidElement, "element id cannot be empty")
	}

	if len(id) > 128 {
		return New(ErrCodeInvalidElement, "element id too long (max 128 characters)")
	}

	for _, r := range id {
		if unicode.IsControl(r) || unicode.IsSpace(r) {
			return New(ErrCodeInvalidElement, "element id contains invalid characters")
		}
	}

	if strings.ContainsAny(id, "/\\") || strings.Contains(id, "..") {
		return New(ErrCodeInvalidElement, "element id cannot contain path components")
	}

	return nil
}

// ValidateViewport validates viewport dimensions. Zero dimensions are
// legal (percent conversions degrade to 0); negative ones are not.
func ValidateViewport(width, height float64) error {
	if width < 0 || height < 0 {
		return New(ErrCodeInvalidViewport, "viewport dimensions cannot be negative (%gx%g)", width, height)
	}
	return nil
}
