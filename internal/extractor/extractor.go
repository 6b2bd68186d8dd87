package extractor

import (
	"fmt"

	"trainset/internal/models"
)

// Modes accepted by the --extractor flag.
const (
	ModeRegex      = "regex"
	ModeTreeSitter = "treesitter"
)

// Limits applied to extracted slices regardless of the implementation.
const (
	// MinFunctionLen discards fragments too short to be worth training on.
	MinFunctionLen = 50
	// MaxFunctionsPerFile caps how many slices one file contributes.
	MaxFunctionsPerFile = 5
)

// FunctionExtractor slices function-level snippets out of raw source text.
// Implementations keep discovery order: for C-style languages the named
// declarations come before the const-bound arrow functions.
type FunctionExtractor interface {
	Functions(content, language string) []models.ExtractedFunction
}

// New returns the extractor for the given mode. The regex heuristic is the
// default; the tree-sitter one produces brace-balanced bodies and therefore
// different snippets.
func New(mode string) (FunctionExtractor, error) {
	switch mode {
	case ModeRegex:
		return RegexExtractor{}, nil
	case ModeTreeSitter:
		return NewTreeSitterExtractor(), nil
	default:
		return nil, fmt.Errorf("unknown extractor mode %q (want %s or %s)", mode, ModeRegex, ModeTreeSitter)
	}
}
