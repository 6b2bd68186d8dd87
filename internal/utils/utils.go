package utils

import (
	"path/filepath"

	"trainset/internal/models"
)

// ExcludedDirs are directory names that are never descended into:
// version-control, dependency-cache and build-output noise.
var ExcludedDirs = map[string]bool{
	"node_modules": true,
	".git":         true,
	"dist":         true,
	"build":        true,
	"__pycache__":  true,
	".next":        true,
	"coverage":     true,
	".cache":       true,
}

var languageExts = map[string]string{
	".js":   models.LangJavaScript,
	".jsx":  models.LangJavaScript,
	".ts":   models.LangTypeScript,
	".tsx":  models.LangTypeScript,
	".java": models.LangJava,
}

// DetectLanguage maps a file path to its language tag by extension. Paths
// outside the allow-list get the fallback tag; the collector never lets
// those through, but the mapping stays defined in case the list widens.
func DetectLanguage(path string) string {
	if lang, ok := languageExts[filepath.Ext(path)]; ok {
		return lang
	}
	return models.LangFallback
}

// IsAllowedExt reports whether the path's extension is in the allow-list.
func IsAllowedExt(path string) bool {
	_, ok := languageExts[filepath.Ext(path)]
	return ok
}

// AllowedExtensions returns the extension allow-list in a stable order.
func AllowedExtensions() []string {
	return []string{".js", ".jsx", ".ts", ".tsx", ".java"}
}

// Truncate returns at most max characters of s by plain prefix slicing.
// Counts runes, not bytes, so multi-byte content is never split mid-rune.
func Truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}
