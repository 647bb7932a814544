// Package naming converts native API identifiers into C#-legal names.
package naming

import (
	"strings"
	"unicode"
)

// Policy renames native identifiers according to the configured casing
// convention. The zero value applies the default PascalCase policy.
// Renaming is deterministic for a given input; it does not guarantee
// uniqueness across a declaration set.
type Policy struct{}

// Rename converts a native identifier into a PascalCase C# identifier.
func (Policy) Rename(native string) string {
	words := strings.FieldsFunc(native, func(r rune) bool {
		return r == '_' || r == '-' || unicode.IsSpace(r)
	})

	var result strings.Builder
	for _, word := range words {
		result.WriteString(strings.ToUpper(string(word[0])))
		if len(word) > 1 {
			result.WriteString(strings.ToLower(word[1:]))
		}
	}

	return SanitizeLeadingDigit(result.String())
}

// RenameTrimmed strips stripPrefix from the native identifier before
// renaming it. A member whose name is nothing but the prefix keeps its
// full name, so the result is never empty.
func (p Policy) RenameTrimmed(native, stripPrefix string) string {
	trimmed := strings.TrimPrefix(native, stripPrefix)
	if trimmed == "" {
		trimmed = native
	}
	return p.Rename(trimmed)
}

// SanitizeLeadingDigit prefixes names that start with a digit with "Num"
// to keep identifiers valid in target languages.
func SanitizeLeadingDigit(name string) string {
	if name == "" {
		return ""
	}
	if name[0] >= '0' && name[0] <= '9' {
		return "Num" + name
	}
	return name
}
