package extractor

import (
	"unicode/utf8"

	sitter "github.com/tree-sitter/go-tree-sitter"
	java "github.com/tree-sitter/tree-sitter-java/bindings/go"
	javascript "github.com/tree-sitter/tree-sitter-javascript/bindings/go"
	typescript "github.com/tree-sitter/tree-sitter-typescript/bindings/go"

	"trainset/internal/models"
)

// TreeSitterExtractor slices functions out of real parse trees instead of
// the regex heuristics. Bodies are brace-balanced, so the snippets differ
// from (and usually run longer than) the default extractor's; the length
// filter and per-file cap are the same so the rest of the pipeline does not
// care which one produced them.
type TreeSitterExtractor struct {
	languages map[string]*sitter.Language
}

// NewTreeSitterExtractor creates an extractor with grammars for the three
// allow-listed languages.
func NewTreeSitterExtractor() *TreeSitterExtractor {
	return &TreeSitterExtractor{
		languages: map[string]*sitter.Language{
			models.LangJavaScript: sitter.NewLanguage(javascript.Language()),
			models.LangTypeScript: sitter.NewLanguage(typescript.LanguageTypescript()),
			models.LangJava:       sitter.NewLanguage(java.Language()),
		},
	}
}

// Functions extracts named function declarations and const-bound arrow
// functions for javascript/typescript, and method declarations for java:
// the same shapes the regex extractor targets, minus its truncation.
func (e *TreeSitterExtractor) Functions(content, language string) []models.ExtractedFunction {
	lang, ok := e.languages[language]
	if !ok {
		return nil
	}

	parser := sitter.NewParser()
	defer parser.Close()
	parser.SetLanguage(lang)

	source := []byte(content)
	tree := parser.Parse(source, nil)
	if tree == nil {
		return nil
	}
	defer tree.Close()

	var funcs []models.ExtractedFunction
	collect := func(n *sitter.Node) {
		code := string(source[n.StartByte():n.EndByte()])
		if utf8.RuneCountInString(code) > MinFunctionLen {
			funcs = append(funcs, models.ExtractedFunction{Code: code, Language: language})
		}
	}

	walkTree(tree.RootNode(), func(n *sitter.Node) bool {
		if len(funcs) >= MaxFunctionsPerFile {
			return false
		}
		switch n.Kind() {
		case "function_declaration", "method_declaration":
			collect(n)
			return false
		case "lexical_declaration":
			// const name = (...) => {...}; capture the whole declaration so
			// the snippet keeps the binding, like the regex form does.
			for i := uint(0); i < n.ChildCount(); i++ {
				child := n.Child(i)
				if child.Kind() != "variable_declarator" {
					continue
				}
				if v := child.ChildByFieldName("value"); v != nil && v.Kind() == "arrow_function" {
					collect(n)
					break
				}
			}
			return false
		}
		return true
	})

	if len(funcs) > MaxFunctionsPerFile {
		funcs = funcs[:MaxFunctionsPerFile]
	}
	return funcs
}

func walkTree(node *sitter.Node, visitor func(*sitter.Node) bool) {
	if node == nil {
		return
	}
	if !visitor(node) {
		return
	}
	for i := 0; i < int(node.ChildCount()); i++ {
		walkTree(node.Child(uint(i)), visitor)
	}
}
