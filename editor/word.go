package editor

import "unicode"

// isWordRune reports whether r counts as a word character for word
// motions: letters, digits and underscore, the regexp \w class.
func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

// boundaries returns the word boundary positions of s in ascending
// order: every index, including 0 and len(s), where exactly one of the
// two adjacent characters is a word character. This matches regexp \b,
// so "ab cd" has boundaries at 0, 2, 3 and 5, while a string with no
// word characters has none.
func boundaries(s []rune) []int {
	var bounds []int
	for i := 0; i <= len(s); i++ {
		before := i > 0 && isWordRune(s[i-1])
		after := i < len(s) && isWordRune(s[i])
		if before != after {
			bounds = append(bounds, i)
		}
	}
	return bounds
}
