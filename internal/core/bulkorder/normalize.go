package bulkorder

import (
	"strings"
	"unicode"
)

// CleanTaxID keeps only the digits of a CUIT, in order. Blank cells yield "".
func CleanTaxID(raw string) string {
	if strings.TrimSpace(raw) == "" {
		return ""
	}
	var b strings.Builder
	b.Grow(len(raw))
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// SplitName splits a full name on its first whitespace run.
// "Maria Eugenia Lopez" -> ("Maria", "Eugenia Lopez").
func SplitName(fullName string) (first, last string) {
	if fullName == "" {
		return "", ""
	}
	i := strings.IndexFunc(fullName, unicode.IsSpace)
	if i < 0 {
		return fullName, ""
	}
	return fullName[:i], strings.TrimLeftFunc(fullName[i:], unicode.IsSpace)
}

// DeriveSuffix concatenates the uppercased initial of every word: "Jane Ann Doe" -> "JAD".
func DeriveSuffix(fullName string) string {
	var b strings.Builder
	for _, word := range strings.Fields(fullName) {
		for _, r := range word {
			b.WriteString(strings.ToUpper(string(r)))
			break
		}
	}
	return b.String()
}
