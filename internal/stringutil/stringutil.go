// Package stringutil provides byte-oriented string helpers.
//
// Character classes follow the C locale: only ASCII letters, digits and
// whitespace are recognised. Bytes outside ASCII pass through unchanged.
package stringutil

import (
	"regexp"
	"strings"
)

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// Reverse returns s with its bytes in reverse order.
func Reverse(s string) string {
	b := []byte(s)
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
	return string(b)
}

// ToUpperCase maps ASCII lower-case letters to upper case.
func ToUpperCase(s string) string {
	b := []byte(s)
	for i, c := range b {
		if isLower(c) {
			b[i] = c - ('a' - 'A')
		}
	}
	return string(b)
}

// ToLowerCase maps ASCII upper-case letters to lower case.
func ToLowerCase(s string) string {
	b := []byte(s)
	for i, c := range b {
		if isUpper(c) {
			b[i] = c + ('a' - 'A')
		}
	}
	return string(b)
}

// IsPalindrome reports whether the alphanumeric characters of s read the
// same in both directions, ignoring case. Strings without any alphanumeric
// characters are palindromes.
func IsPalindrome(s string) bool {
	var cleaned strings.Builder
	for i := 0; i < len(s); i++ {
		c := s[i]
		if isAlnum(c) {
			cleaned.WriteByte(toLower(c))
		}
	}
	c := cleaned.String()
	return c == Reverse(c)
}

// CountVowels returns the number of a, e, i, o, u in s, in either case.
func CountVowels(s string) int {
	count := 0
	for i := 0; i < len(s); i++ {
		if isVowel(toLower(s[i])) {
			count++
		}
	}
	return count
}

// CountWords returns the number of whitespace-separated words in s.
func CountWords(s string) int {
	if s == "" {
		return 0
	}
	return len(strings.FieldsFunc(s, func(r rune) bool {
		return r < 0x80 && isSpace(byte(r))
	}))
}

// Split breaks s at every occurrence of delimiter. Empty tokens between
// adjacent delimiters are kept, but a delimiter at the very end does not
// produce a trailing empty token.
func Split(s string, delimiter byte) []string {
	if s == "" {
		return []string{}
	}
	parts := strings.Split(s, string([]byte{delimiter}))
	if parts[len(parts)-1] == "" {
		parts = parts[:len(parts)-1]
	}
	return parts
}

// Join concatenates parts with delimiter between consecutive elements.
func Join(parts []string, delimiter string) string {
	return strings.Join(parts, delimiter)
}

// IsValidEmail reports whether email has the shape local@domain.tld.
// Only the structure is checked.
func IsValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}

// IsNumeric reports whether s is an optionally signed run of ASCII digits.
// A sign on its own is not numeric.
func IsNumeric(s string) bool {
	if s == "" {
		return false
	}

	digits := s
	if s[0] == '+' || s[0] == '-' {
		digits = s[1:]
	}
	if digits == "" {
		return false
	}

	for i := 0; i < len(digits); i++ {
		if !isDigit(digits[i]) {
			return false
		}
	}
	return true
}

func isVowel(c byte) bool {
	return c == 'a' || c == 'e' || c == 'i' || c == 'o' || c == 'u'
}

func isLower(c byte) bool { return c >= 'a' && c <= 'z' }
func isUpper(c byte) bool { return c >= 'A' && c <= 'Z' }
func isDigit(c byte) bool { return c >= '0' && c <= '9' }
func isAlnum(c byte) bool { return isLower(c) || isUpper(c) || isDigit(c) }

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

func toLower(c byte) byte {
	if isUpper(c) {
		return c + ('a' - 'A')
	}
	return c
}
