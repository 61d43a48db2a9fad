package models

// Language identifies the programming language of a snippet.
type Language string

const (
	LangJavaScript Language = "javascript"
	LangTypeScript Language = "typescript"
	LangPython     Language = "python"
	LangRust       Language = "rust"
	LangGo         Language = "go"
	LangC          Language = "c"
)

// Difficulty buckets snippets by typing difficulty.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// Snippet is an immutable piece of code to type. Catalog entries never
// mutate after selection.
type Snippet struct {
	ID         string     `json:"id"`
	Name       string     `json:"name"`
	Language   Language   `json:"language"`
	Difficulty Difficulty `json:"difficulty"`
	Code       string     `json:"code"`
}

// CustomSnippet is a user-saved snippet kept in the preference store.
type CustomSnippet struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Code string `json:"code"`
}

// LanguageInfo describes a selectable language for clients.
type LanguageInfo struct {
	ID    Language `json:"id"`
	Name  string   `json:"name"`
	Color string   `json:"color"`
}

// DifficultyInfo describes a selectable difficulty for clients.
type DifficultyInfo struct {
	ID    Difficulty `json:"id"`
	Label string     `json:"label"`
	Color string     `json:"color"`
}
