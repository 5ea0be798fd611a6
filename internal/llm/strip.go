package llm

import "strings"

// Model output is requested as plain text, but Gemini still sprinkles in
// emphasis markers. Replacements run in order, so "**" goes before "*".
var markdownReplacer = strings.NewReplacer(
	"**", "",
	"*", "",
	"##", "",
	"#", "",
)

// StripMarkdown removes literal markdown emphasis characters from generated
// text and trims surrounding whitespace.
func StripMarkdown(text string) string {
	return strings.TrimSpace(markdownReplacer.Replace(text))
}
