package compose

import "strings"

// TitleCaseName normalizes a typed name to title case, with the surname
// prefixes and hyphenated names that plain word capitalization gets wrong:
// "sarah mcdonald" becomes "Sarah McDonald" and "anne-marie" becomes
// "Anne-Marie".
func TitleCaseName(name string) string {
	words := strings.Split(strings.ToLower(name), " ")
	for i, word := range words {
		words[i] = titleCaseWord(word)
	}
	return strings.Join(words, " ")
}

func titleCaseWord(word string) string {
	if strings.Contains(word, "-") {
		parts := strings.Split(word, "-")
		for i, part := range parts {
			parts[i] = capitalize(part)
		}
		return strings.Join(parts, "-")
	}
	if rest, ok := strings.CutPrefix(word, "mc"); ok && rest != "" {
		return "Mc" + capitalize(rest)
	}
	if rest, ok := strings.CutPrefix(word, "mac"); ok && rest != "" {
		return "Mac" + capitalize(rest)
	}
	return capitalize(word)
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	runes := []rune(s)
	return strings.ToUpper(string(runes[0])) + string(runes[1:])
}
