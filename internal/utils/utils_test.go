package utils

import (
	"strings"
	"testing"

	"trainset/internal/models"
)

func TestDetectLanguage(t *testing.T) {
	tests := []struct {
		filePath string
		expected string
	}{
		{"app.js", models.LangJavaScript},
		{"component.jsx", models.LangJavaScript},
		{"types.ts", models.LangTypeScript},
		{"component.tsx", models.LangTypeScript},
		{"Main.java", models.LangJava},
		{"unknown.txt", models.LangFallback},
		{"script.py", models.LangFallback},
	}

	for _, tt := range tests {
		result := DetectLanguage(tt.filePath)
		if result != tt.expected {
			t.Errorf("DetectLanguage(%s) = %s, expected %s", tt.filePath, result, tt.expected)
		}
	}
}

func TestIsAllowedExt(t *testing.T) {
	for _, ext := range AllowedExtensions() {
		if !IsAllowedExt("file" + ext) {
			t.Errorf("IsAllowedExt(file%s) = false, expected true", ext)
		}
	}
	for _, path := range []string{"file.py", "file.go", "file", "file.js.bak"} {
		if IsAllowedExt(path) {
			t.Errorf("IsAllowedExt(%s) = true, expected false", path)
		}
	}
}

func TestTruncate(t *testing.T) {
	if got := Truncate("short", 10); got != "short" {
		t.Errorf("Truncate(short, 10) = %q", got)
	}

	long := strings.Repeat("a", 100)
	if got := Truncate(long, 10); got != strings.Repeat("a", 10) {
		t.Errorf("Truncate cut to %q, expected 10 a's", got)
	}

	// Rune-based, never splits a multi-byte character.
	if got := Truncate("日本語のテキスト", 3); got != "日本語" {
		t.Errorf("Truncate(multibyte, 3) = %q, expected 日本語", got)
	}
}
