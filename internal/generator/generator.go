package generator

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"trainset/internal/extractor"
	"trainset/internal/models"
	"trainset/internal/utils"
)

const (
	// MaxContentLength caps every code snippet embedded in a message.
	MaxContentLength = 3000

	// Files at or above this many characters are too big to explain whole.
	explanationMaxLen = 2000
	// Files below this many characters are too small to split for completion.
	completionMinLen = 200
	// How far from the midpoint the newline search may wander.
	completionWindow = 200
	// Smallest usable prefix or suffix after trimming.
	minHalfLen = 50
)

// ForFile derives every training example a single source file yields: at
// most one explanation, at most one completion, and one implementation per
// extracted function, so up to seven examples in total.
func ForFile(file models.SourceFile, ex extractor.FunctionExtractor) []models.TrainingExample {
	var examples []models.TrainingExample

	if utf8.RuneCountInString(file.Content) < explanationMaxLen {
		examples = append(examples, explanationExample(file))
	}

	if completion, ok := completionExample(file.Content, file.Language); ok {
		examples = append(examples, completion)
	}

	for _, fn := range ex.Functions(file.Content, file.Language) {
		examples = append(examples, implementationExample(fn, file.Path))
	}

	return examples
}

// explanationExample asks for a whole-file explanation. The assistant side
// is a placeholder that a human or a later LLM pass must replace, which is
// why the example is flagged needs_completion.
func explanationExample(file models.SourceFile) models.TrainingExample {
	snippet := utils.Truncate(file.Content, MaxContentLength)
	return models.TrainingExample{
		Messages: []models.Message{
			{
				Role:    "user",
				Content: fmt.Sprintf("Explain what this %s code does:\n\n```%s\n%s\n```", file.Language, file.Language, snippet),
			},
			{
				Role:    "assistant",
				Content: fmt.Sprintf("This code is from `%s`. [REPLACE WITH ACTUAL EXPLANATION - use an LLM or write manually]", file.Path),
			},
		},
		Meta: models.Meta{
			Type:            models.TypeExplanation,
			File:            file.Path,
			NeedsCompletion: true,
		},
	}
}

// completionExample splits the file near its midpoint and asks the model to
// continue the prefix. Reports false when the file is too short or either
// half trims below the usable minimum.
func completionExample(content, language string) (models.TrainingExample, bool) {
	runes := []rune(content)
	if len(runes) < completionMinLen {
		return models.TrainingExample{}, false
	}

	// Prefer a line boundary near the midpoint: the rightmost newline
	// within the search window. Fall back to the exact midpoint.
	mid := len(runes) / 2
	lo := mid - completionWindow
	if lo < 0 {
		lo = 0
	}
	hi := mid + completionWindow
	if hi > len(runes) {
		hi = len(runes)
	}
	split := mid
	for i := hi - 1; i >= lo; i-- {
		if runes[i] == '\n' {
			split = i
			break
		}
	}

	prefix := strings.TrimRightFunc(string(runes[:split]), unicode.IsSpace)
	suffix := strings.TrimLeftFunc(string(runes[split:]), unicode.IsSpace)
	if utf8.RuneCountInString(prefix) < minHalfLen || utf8.RuneCountInString(suffix) < minHalfLen {
		return models.TrainingExample{}, false
	}

	return models.TrainingExample{
		Messages: []models.Message{
			{
				Role:    "user",
				Content: fmt.Sprintf("Complete this %s code:\n\n```%s\n%s\n```", language, language, utils.Truncate(prefix, MaxContentLength)),
			},
			{
				Role:    "assistant",
				Content: fmt.Sprintf("```%s\n%s\n```", language, utils.Truncate(suffix, MaxContentLength)),
			},
		},
		Meta: models.Meta{
			Type:            models.TypeCompletion,
			NeedsCompletion: false,
		},
	}, true
}

// implementationExample asks the model to write one extracted function. The
// instruction names the recovered signature when there is one and falls
// back to a generic prompt otherwise.
func implementationExample(fn models.ExtractedFunction, filePath string) models.TrainingExample {
	var instruction string
	if sig, ok := extractor.Signature(fn.Code, fn.Language); ok {
		instruction = fmt.Sprintf("Implement a function with this signature: `%s`", sig)
	} else {
		instruction = fmt.Sprintf("Implement this %s function", fn.Language)
	}

	return models.TrainingExample{
		Messages: []models.Message{
			{
				Role:    "user",
				Content: fmt.Sprintf("%s\n\nContext: This is from `%s` in the project.", instruction, filePath),
			},
			{
				Role:    "assistant",
				Content: fmt.Sprintf("```%s\n%s\n```", fn.Language, utils.Truncate(fn.Code, MaxContentLength)),
			},
		},
		Meta: models.Meta{
			Type:            models.TypeImplementation,
			File:            filePath,
			NeedsCompletion: false,
		},
	}
}
