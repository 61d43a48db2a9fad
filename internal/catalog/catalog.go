// Package catalog holds the builtin snippet list and selection logic.
package catalog

import (
	"math/rand"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dgz9/codetype/internal/models"
)

var snippets = []models.Snippet{
	// JavaScript - easy
	{ID: "js-1", Name: "Array Map", Language: models.LangJavaScript, Difficulty: models.DifficultyEasy,
		Code: `const doubled = numbers.map(n => n * 2);`},
	{ID: "js-2", Name: "Arrow Function", Language: models.LangJavaScript, Difficulty: models.DifficultyEasy,
		Code: "const greet = (name) => `Hello, ${name}!`;"},
	{ID: "js-3", Name: "Destructuring", Language: models.LangJavaScript, Difficulty: models.DifficultyEasy,
		Code: `const { name, age } = user;`},
	{ID: "js-4", Name: "Spread Operator", Language: models.LangJavaScript, Difficulty: models.DifficultyEasy,
		Code: `const merged = { ...defaults, ...options };`},
	{ID: "js-5", Name: "Filter Array", Language: models.LangJavaScript, Difficulty: models.DifficultyEasy,
		Code: `const adults = users.filter(u => u.age >= 18);`},
	// JavaScript - medium
	{ID: "js-6", Name: "Promise Chain", Language: models.LangJavaScript, Difficulty: models.DifficultyMedium,
		Code: "fetch(url)\n  .then(res => res.json())\n  .then(data => console.log(data))\n  .catch(err => console.error(err));"},
	{ID: "js-7", Name: "Async/Await", Language: models.LangJavaScript, Difficulty: models.DifficultyMedium,
		Code: "async function fetchUser(id) {\n  const response = await fetch(`/api/users/${id}`);\n  return response.json();\n}"},
	{ID: "js-8", Name: "Reduce", Language: models.LangJavaScript, Difficulty: models.DifficultyMedium,
		Code: `const sum = numbers.reduce((acc, n) => acc + n, 0);`},
	// TypeScript
	{ID: "ts-1", Name: "Interface", Language: models.LangTypeScript, Difficulty: models.DifficultyEasy,
		Code: "interface User {\n  id: number;\n  name: string;\n  email: string;\n}"},
	{ID: "ts-2", Name: "Generic Function", Language: models.LangTypeScript, Difficulty: models.DifficultyMedium,
		Code: "function first<T>(arr: T[]): T | undefined {\n  return arr[0];\n}"},
	{ID: "ts-3", Name: "Type Guard", Language: models.LangTypeScript, Difficulty: models.DifficultyHard,
		Code: "function isString(value: unknown): value is string {\n  return typeof value === 'string';\n}"},
	{ID: "ts-4", Name: "Mapped Type", Language: models.LangTypeScript, Difficulty: models.DifficultyHard,
		Code: "type Readonly<T> = {\n  readonly [K in keyof T]: T[K];\n};"},
	// Python
	{ID: "py-1", Name: "List Comprehension", Language: models.LangPython, Difficulty: models.DifficultyEasy,
		Code: `squares = [x**2 for x in range(10)]`},
	{ID: "py-2", Name: "Dict Comprehension", Language: models.LangPython, Difficulty: models.DifficultyMedium,
		Code: `word_lengths = {word: len(word) for word in words}`},
	{ID: "py-3", Name: "Decorator", Language: models.LangPython, Difficulty: models.DifficultyHard,
		Code: "def timer(func):\n    def wrapper(*args, **kwargs):\n        start = time.time()\n        result = func(*args, **kwargs)\n        print(f\"Took {time.time() - start:.2f}s\")\n        return result\n    return wrapper"},
	{ID: "py-4", Name: "Context Manager", Language: models.LangPython, Difficulty: models.DifficultyMedium,
		Code: "with open('file.txt', 'r') as f:\n    content = f.read()"},
	// Rust
	{ID: "rs-1", Name: "Match Expression", Language: models.LangRust, Difficulty: models.DifficultyMedium,
		Code: "match result {\n    Ok(value) => println!(\"{}\", value),\n    Err(e) => eprintln!(\"Error: {}\", e),\n}"},
	{ID: "rs-2", Name: "Option Handling", Language: models.LangRust, Difficulty: models.DifficultyMedium,
		Code: `let name = user.name.unwrap_or("Anonymous".to_string());`},
	{ID: "rs-3", Name: "Iterator Chain", Language: models.LangRust, Difficulty: models.DifficultyHard,
		Code: `let sum: i32 = numbers.iter().filter(|&n| *n > 0).sum();`},
	// Go
	{ID: "go-1", Name: "Error Handling", Language: models.LangGo, Difficulty: models.DifficultyEasy,
		Code: "if err != nil {\n    return fmt.Errorf(\"failed: %w\", err)\n}"},
	{ID: "go-2", Name: "Goroutine", Language: models.LangGo, Difficulty: models.DifficultyMedium,
		Code: "go func() {\n    result <- doWork()\n}()"},
	{ID: "go-3", Name: "Defer", Language: models.LangGo, Difficulty: models.DifficultyEasy,
		Code: `defer file.Close()`},
	// C
	{ID: "c-1", Name: "Struct Definition", Language: models.LangC, Difficulty: models.DifficultyEasy,
		Code: "struct Point {\n    int x;\n    int y;\n};"},
	{ID: "c-2", Name: "Malloc & Free", Language: models.LangC, Difficulty: models.DifficultyMedium,
		Code: "int *arr = (int *)malloc(n * sizeof(int));\nif (arr == NULL) return -1;\nfree(arr);"},
	{ID: "c-3", Name: "Linked List Node", Language: models.LangC, Difficulty: models.DifficultyMedium,
		Code: "struct Node {\n    int data;\n    struct Node *next;\n};\n\nstruct Node *new_node(int val) {\n    struct Node *node = malloc(sizeof(struct Node));\n    node->data = val;\n    node->next = NULL;\n    return node;\n}"},
	{ID: "c-4", Name: "String Copy", Language: models.LangC, Difficulty: models.DifficultyEasy,
		Code: "char dest[256];\nstrncpy(dest, src, sizeof(dest) - 1);\ndest[sizeof(dest) - 1] = '\\0';"},
	{ID: "c-5", Name: "File Read", Language: models.LangC, Difficulty: models.DifficultyMedium,
		Code: "FILE *fp = fopen(\"data.txt\", \"r\");\nif (fp == NULL) {\n    perror(\"fopen\");\n    return 1;\n}\nchar buf[1024];\nwhile (fgets(buf, sizeof(buf), fp)) {\n    printf(\"%s\", buf);\n}\nfclose(fp);"},
	{ID: "c-6", Name: "Pointer Swap", Language: models.LangC, Difficulty: models.DifficultyEasy,
		Code: "void swap(int *a, int *b) {\n    int tmp = *a;\n    *a = *b;\n    *b = tmp;\n}"},
	// Second batch
	{ID: "ts-fetch", Name: "Fetch with Types", Language: models.LangTypeScript, Difficulty: models.DifficultyMedium,
		Code: "async function fetchUser(id: string): Promise<User> {\n  const res = await fetch(`/api/users/${id}`);\n  if (!res.ok) throw new Error(\"Not found\");\n  return res.json();\n}"},
	{ID: "py-listcomp", Name: "List Comprehension", Language: models.LangPython, Difficulty: models.DifficultyEasy,
		Code: `squares = [x ** 2 for x in range(10) if x % 2 == 0]`},
	{ID: "rust-option", Name: "Option Handling", Language: models.LangRust, Difficulty: models.DifficultyMedium,
		Code: "fn find_user(id: u64) -> Option<User> {\n    users.iter().find(|u| u.id == id).cloned()\n}"},
	{ID: "js-destructure", Name: "Nested Destructuring", Language: models.LangJavaScript, Difficulty: models.DifficultyMedium,
		Code: `const { data: { users = [] }, error } = await response.json();`},
	{ID: "go-map", Name: "Map Iteration", Language: models.LangGo, Difficulty: models.DifficultyMedium,
		Code: "for key, value := range config {\n    fmt.Printf(\"%s = %s\\n\", key, value)\n}"},
	{ID: "ts-generic", Name: "Generic Function", Language: models.LangTypeScript, Difficulty: models.DifficultyHard,
		Code: "function groupBy<T, K extends string>(items: T[], key: (item: T) => K): Record<K, T[]> {\n  return items.reduce((acc, item) => {\n    const k = key(item);\n    (acc[k] ??= []).push(item);\n    return acc;\n  }, {} as Record<K, T[]>);\n}"},
	{ID: "py-decorator", Name: "Retry Decorator", Language: models.LangPython, Difficulty: models.DifficultyHard,
		Code: "def retry(max_attempts=3):\n    def decorator(func):\n        def wrapper(*args, **kwargs):\n            for i in range(max_attempts):\n                try:\n                    return func(*args, **kwargs)\n                except Exception:\n                    if i == max_attempts - 1:\n                        raise\n        return wrapper\n    return decorator"},
	{ID: "rust-iter", Name: "Iterator Chain", Language: models.LangRust, Difficulty: models.DifficultyHard,
		Code: "let total: f64 = orders\n    .iter()\n    .filter(|o| o.status == Status::Complete)\n    .map(|o| o.items.iter().map(|i| i.price).sum::<f64>())\n    .sum();"},
}

var languageInfos = []models.LanguageInfo{
	{ID: models.LangJavaScript, Name: "JavaScript", Color: "#f7df1e"},
	{ID: models.LangTypeScript, Name: "TypeScript", Color: "#3178c6"},
	{ID: models.LangPython, Name: "Python", Color: "#3776ab"},
	{ID: models.LangRust, Name: "Rust", Color: "#dea584"},
	{ID: models.LangGo, Name: "Go", Color: "#00add8"},
	{ID: models.LangC, Name: "C", Color: "#555555"},
}

var difficultyInfos = []models.DifficultyInfo{
	{ID: models.DifficultyEasy, Label: "Easy", Color: "#22c55e"},
	{ID: models.DifficultyMedium, Label: "Medium", Color: "#eab308"},
	{ID: models.DifficultyHard, Label: "Hard", Color: "#ef4444"},
}

// All returns the builtin catalog. Callers must not mutate entries.
func All() []models.Snippet {
	return snippets
}

// Languages lists the selectable languages with display metadata.
func Languages() []models.LanguageInfo {
	return languageInfos
}

// Difficulties lists the selectable difficulties with display metadata.
func Difficulties() []models.DifficultyInfo {
	return difficultyInfos
}

// Filter returns catalog entries matching the given language and
// difficulty. Empty values match everything. When nothing matches, the
// whole catalog is returned so there is always something to type.
func Filter(language models.Language, difficulty models.Difficulty) []models.Snippet {
	filtered := make([]models.Snippet, 0, len(snippets))
	for _, s := range snippets {
		if language != "" && s.Language != language {
			continue
		}
		if difficulty != "" && s.Difficulty != difficulty {
			continue
		}
		filtered = append(filtered, s)
	}
	if len(filtered) == 0 {
		return snippets
	}
	return filtered
}

// Random picks a uniformly random snippet matching the filters.
func Random(language models.Language, difficulty models.Difficulty) models.Snippet {
	pool := Filter(language, difficulty)
	return pool[rand.Intn(len(pool))]
}

// DailySeed derives the deterministic seed for a calendar date.
func DailySeed(t time.Time) int {
	return t.Year()*10000 + int(t.Month())*100 + t.Day()
}

// Daily returns the daily-challenge snippet for the given date. Every
// caller sees the same snippet on the same date. Two dates whose seeds
// collide modulo the catalog size share a snippet; that is accepted.
func Daily(t time.Time) models.Snippet {
	return snippets[DailySeed(t)%len(snippets)]
}

// DailyDate formats the date shown alongside the daily challenge.
func DailyDate(t time.Time) string {
	return t.Format("Monday, Jan 2")
}

// NewCustom builds a practice snippet from user-provided code.
// Trailing whitespace is trimmed; custom snippets carry no language
// tag and are treated as medium difficulty.
func NewCustom(code, name string) models.Snippet {
	if strings.TrimSpace(name) == "" {
		name = "Custom Snippet"
	}
	return models.Snippet{
		ID:         "custom-" + uuid.NewString(),
		Name:       name,
		Difficulty: models.DifficultyMedium,
		Code:       strings.TrimRight(code, " \t\n"),
	}
}
