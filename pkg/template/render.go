package template

import "regexp"

// placeholderPattern matches {{ identifier }} markers with optional
// whitespace around the identifier.
var placeholderPattern = regexp.MustCompile(`\{\{\s*([^\s{}]+)\s*\}\}`)

// Render substitutes every {{ key }} placeholder in s with the value from
// ctx. A placeholder whose key is absent from ctx is left literally in the
// output, so a second render with the missing values filled in still works.
// Pure string transformation, no I/O.
func Render(s string, ctx map[string]string) string {
	return placeholderPattern.ReplaceAllStringFunc(s, func(match string) string {
		name := placeholderPattern.FindStringSubmatch(match)[1]
		if value, ok := ctx[name]; ok {
			return value
		}
		return match
	})
}
