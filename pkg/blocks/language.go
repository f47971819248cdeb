package blocks

import (
	"strings"

	mapset "github.com/deckarep/golang-set/v2"
)

// FallbackLanguage is used for empty and unrecognized fence tags.
const FallbackLanguage = "plain text"

// languages lists the code languages Notion accepts.
var languages = mapset.NewSet(
	"abap", "arduino", "bash", "basic", "c", "clojure", "coffeescript", "cpp",
	"csharp", "css", "dart", "diff", "docker", "elixir", "elm", "erlang",
	"flow", "fortran", "fsharp", "gherkin", "glsl", "go", "graphql", "groovy",
	"haskell", "html", "java", "javascript", "json", "julia", "kotlin", "latex",
	"less", "lisp", "livescript", "lua", "makefile", "markdown", "markup",
	"matlab", "mermaid", "nix", "objective-c", "ocaml", "pascal", "perl", "php",
	"plain text", "powershell", "prolog", "protobuf", "python", "r", "reason",
	"ruby", "rust", "sass", "scala", "scheme", "scss", "shell", "sql", "swift",
	"typescript", "vb.net", "verilog", "vhdl", "visual basic", "webassembly",
	"xml", "yaml",
)

var languageAliases = map[string]string{
	"js":         "javascript",
	"ts":         "typescript",
	"py":         "python",
	"rb":         "ruby",
	"sh":         "bash",
	"yml":        "yaml",
	"md":         "markdown",
	"txt":        "plain text",
	"text":       "plain text",
	"mgt":        "plain text",
	"c++":        "cpp",
	"c#":         "csharp",
	"f#":         "fsharp",
	"golang":     "go",
	"dockerfile": "docker",
}

// NormalizeLanguage maps a free-form fence tag to a language Notion knows,
// or FallbackLanguage.
func NormalizeLanguage(tag string) string {
	lang := strings.ToLower(strings.TrimSpace(tag))
	if alias, ok := languageAliases[lang]; ok {
		lang = alias
	}
	if lang == "" || !languages.Contains(lang) {
		return FallbackLanguage
	}
	return lang
}

// IsLanguage reports whether lang is already canonical.
func IsLanguage(lang string) bool {
	return languages.Contains(lang)
}
