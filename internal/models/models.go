package models

// Language tags attached to collected files. Derived purely from the file
// extension; LangFallback covers anything outside the allow-list.
const (
	LangJavaScript = "javascript"
	LangTypeScript = "typescript"
	LangJava       = "java"
	LangFallback   = "code"
)

// Example types recorded in _meta.type.
const (
	TypeExplanation    = "explanation"
	TypeCompletion     = "completion"
	TypeImplementation = "implementation"
)

// SourceFile is a single file that passed the collector's filters.
type SourceFile struct {
	Path     string // relative to the scanned root, slash-separated
	Content  string
	Language string
	Size     int64
}

// ExtractedFunction is one function or method slice pulled out of a source
// file. It only lives long enough to become an implementation example.
type ExtractedFunction struct {
	Code     string
	Language string
}

// Message is one turn of a chat-format training example.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Meta is per-example bookkeeping. It is kept in the review output and
// stripped before the train/validation files are written.
type Meta struct {
	Type            string `json:"type"`
	File            string `json:"file,omitempty"`
	NeedsCompletion bool   `json:"needs_completion"`
}

// TrainingExample is a two-turn exchange (user then assistant) plus
// bookkeeping. Once created it is shuffled and partitioned, never mutated.
type TrainingExample struct {
	Messages []Message `json:"messages"`
	Meta     Meta      `json:"_meta"`
}
