package extractor

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"trainset/internal/models"
)

// The slicing patterns are best-effort text matches, not a parser: each one
// captures through the FIRST closing brace after the opening brace, so a
// body containing its own {...} block gets cut short. Downstream snippets
// depend on that truncation, so it must not be upgraded to brace counting;
// the tree-sitter extractor is the accurate alternative.
var (
	// Optionally-exported, optionally-async named function declarations.
	jsFuncPattern = regexp.MustCompile(`(?:export\s+)?(?:async\s+)?function\s+\w+\s*\([^)]*\)\s*(?::\s*[^{]+)?\s*\{[^}]+\}`)
	// Optionally-exported const-bound arrow functions.
	jsArrowPattern = regexp.MustCompile(`(?:export\s+)?const\s+\w+\s*=\s*(?:async\s+)?\([^)]*\)\s*(?::\s*[^=]+)?\s*=>\s*\{[^}]+\}`)
	// Explicit-visibility method declarations, optionally static/throwing.
	javaMethodPattern = regexp.MustCompile(`(?:public|private|protected)\s+(?:static\s+)?(?:\w+\s+)+\w+\s*\([^)]*\)\s*(?:throws\s+[\w,\s]+)?\s*\{[^}]+\}`)

	// First /** ... */ block, interior captured.
	docBlockPattern = regexp.MustCompile(`/\*\*\s*([\s\S]*?)\*/`)

	// Anchored signature prefixes, everything up to the opening brace.
	jsSignaturePattern   = regexp.MustCompile(`^(?:export\s+)?(?:async\s+)?(?:function\s+\w+|const\s+\w+\s*=)[^{]*`)
	javaSignaturePattern = regexp.MustCompile(`^(?:public|private|protected)[^{]*`)
)

// RegexExtractor is the default, deliberately lossy extractor.
type RegexExtractor struct{}

// Functions returns up to MaxFunctionsPerFile slices in discovery order,
// with the named-function matches exhausted before the arrow matches for
// javascript/typescript. The fallback language has no patterns and yields
// nothing.
func (RegexExtractor) Functions(content, language string) []models.ExtractedFunction {
	var patterns []*regexp.Regexp
	switch language {
	case models.LangJavaScript, models.LangTypeScript:
		patterns = []*regexp.Regexp{jsFuncPattern, jsArrowPattern}
	case models.LangJava:
		patterns = []*regexp.Regexp{javaMethodPattern}
	default:
		return nil
	}

	var funcs []models.ExtractedFunction
	for _, p := range patterns {
		for _, m := range p.FindAllString(content, -1) {
			if utf8.RuneCountInString(m) > MinFunctionLen {
				funcs = append(funcs, models.ExtractedFunction{Code: m, Language: language})
			}
		}
	}
	if len(funcs) > MaxFunctionsPerFile {
		funcs = funcs[:MaxFunctionsPerFile]
	}
	return funcs
}

// Docstring returns the interior of the first /** ... */ block, trimmed of
// surrounding whitespace. Later blocks are ignored.
func Docstring(content, language string) (string, bool) {
	switch language {
	case models.LangJavaScript, models.LangTypeScript, models.LangJava:
		if m := docBlockPattern.FindStringSubmatch(content); m != nil {
			return strings.TrimSpace(m[1]), true
		}
	}
	return "", false
}

// Signature recovers a human-readable signature from the start of a
// function slice: everything before the opening brace. Reports false when
// the slice does not start like a known declaration form.
func Signature(code, language string) (string, bool) {
	var p *regexp.Regexp
	switch language {
	case models.LangJavaScript, models.LangTypeScript:
		p = jsSignaturePattern
	case models.LangJava:
		p = javaSignaturePattern
	default:
		return "", false
	}

	m := p.FindString(code)
	if m == "" {
		return "", false
	}
	return strings.TrimSpace(m), true
}
