package email

import (
	"strings"
	"unicode"
)

const fallbackName = "User"

// DisplayName guesses a first and last name from the local part, splitting on
// '.', '_', '-' and '+'. "john.doe" gives ("John", "Doe"); a single token gives
// (token, "User"); a local part made only of separators gives ("User", "User").
func (e Email) DisplayName() (first, last string) {
	tokens := strings.FieldsFunc(e.LocalPart(), isNameSeparator)
	switch len(tokens) {
	case 0:
		return fallbackName, fallbackName
	case 1:
		return titleCase(tokens[0]), fallbackName
	default:
		return titleCase(tokens[0]), titleCase(tokens[len(tokens)-1])
	}
}

func isNameSeparator(r rune) bool {
	return r == '.' || r == '_' || r == '-' || r == '+'
}

func titleCase(s string) string {
	runes := []rune(s)
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
