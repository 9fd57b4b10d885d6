// Package match implements the file name matchers: literal and wildcard name
// patterns, and cached, fully anchored regular expressions.
package match

import "strings"

// IsWildcard reports whether pattern contains a "*" or "?" metacharacter.
func IsWildcard(pattern string) bool {
	return strings.ContainsAny(pattern, "*?")
}

// MatchName matches a file name against a name pattern. Patterns without
// metacharacters are literals and must equal the name exactly. Otherwise "?"
// matches exactly one character and "*" matches zero or more characters.
// Case-insensitive matching lower-cases both operands first.
func MatchName(name, pattern string, ignoreCase bool) bool {
	if ignoreCase {
		name = strings.ToLower(name)
		pattern = strings.ToLower(pattern)
	}

	if !IsWildcard(pattern) {
		return name == pattern
	}
	return wildcardMatch([]rune(name), []rune(pattern))
}

// wildcardMatch is a greedy matcher that backtracks only to the most recent
// "*", which bounds it to O(len(name)*len(pattern)).
func wildcardMatch(name, pattern []rune) bool {
	n, p := 0, 0
	star, mark := -1, 0

	for n < len(name) {
		switch {
		case p < len(pattern) && (pattern[p] == '?' || pattern[p] == name[n]):
			n++
			p++
		case p < len(pattern) && pattern[p] == '*':
			star = p
			mark = n
			p++
		case star >= 0:
			// Let the last "*" absorb one more character and retry.
			p = star + 1
			mark++
			n = mark
		default:
			return false
		}
	}

	for p < len(pattern) && pattern[p] == '*' {
		p++
	}
	return p == len(pattern)
}
