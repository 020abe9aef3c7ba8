package normalize

import (
	"regexp"
	"strings"
)

// arrayPattern matches the first bracketed region that opens with an object
// and closes right after one. The lazy body stops at the first "}]" so a
// trailing prose bracket is never swallowed.
var arrayPattern = regexp.MustCompile(`\[\s*\{[\s\S]*?\}\s*\]`)

// fenceReplacer strips Markdown code fences. At each position the longer
// "```json\n" form is tried before the bare marker.
var fenceReplacer = strings.NewReplacer("```json\n", "", "```\n", "", "```", "")

// LocateArray returns the first region of raw that looks like an array of
// objects. It does not try to choose between several candidate regions.
func LocateArray(raw string) (string, bool) {
	loc := arrayPattern.FindStringIndex(raw)
	if loc == nil {
		return "", false
	}
	return raw[loc[0]:loc[1]], true
}

// CleanFences removes every code-fence marker from raw and trims surrounding
// whitespace. In single mode the result is the whole parse candidate.
func CleanFences(raw string) string {
	return strings.TrimSpace(fenceReplacer.Replace(raw))
}
