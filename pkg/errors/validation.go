package errors

import (
	"math"
	"strings"
	"unicode"
)

// ValidateNodeID validates a genome node identifier.
// Node identifiers are non-negative integers; negative values cannot be minted
// by the rewrite engine and are rejected at the input boundary.
func ValidateNodeID(id int) error {
	if id < 0 {
		return New(ErrCodeInvalidGraph, "node id must be non-negative, got %d", id)
	}
	return nil
}

// ValidateEdge validates a single undirected edge given as a pair of node ids.
// Self-loops are accepted here; the genome constructor drops them.
func ValidateEdge(a, b int) error {
	if err := ValidateNodeID(a); err != nil {
		return err
	}
	return ValidateNodeID(b)
}

// ValidatePositive checks that a named numeric configuration value is a
// finite number greater than zero.
func ValidatePositive(name string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return New(ErrCodeInvalidConfig, "%s must be finite", name)
	}
	if v <= 0 {
		return New(ErrCodeInvalidConfig, "%s must be positive, got %g", name, v)
	}
	return nil
}

// ValidateNonNegative checks that a named numeric configuration value is a
// finite number greater than or equal to zero.
func ValidateNonNegative(name string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return New(ErrCodeInvalidConfig, "%s must be finite", name)
	}
	if v < 0 {
		return New(ErrCodeInvalidConfig, "%s must not be negative, got %g", name, v)
	}
	return nil
}

// ValidateAtLeast checks that a named integer configuration value is >= min.
func ValidateAtLeast(name string, v, min int) error {
	if v < min {
		return New(ErrCodeInvalidConfig, "%s must be at least %d, got %d", name, min, v)
	}
	return nil
}

// ValidatePath validates a CLI-supplied file path for safety.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 500 characters
//   - No null bytes or control characters
func ValidatePath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}

	const maxPathLength = 500
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid characters")
		}
	}

	if strings.TrimSpace(path) != path {
		return New(ErrCodeInvalidPath, "path has leading or trailing whitespace")
	}

	return nil
}
