// Package classes joins class-name fragments into a single class attribute value.
package classes

import "strings"

// Merge joins every whitespace-separated token of parts, keeping the first occurrence of
// each token. Merging is additive: a later part never removes an earlier token.
func Merge(parts ...string) string {
	seen := make(map[string]struct{})
	tokens := make([]string, 0, len(parts))
	for _, part := range parts {
		for _, token := range strings.Fields(part) {
			if _, dup := seen[token]; dup {
				continue
			}
			seen[token] = struct{}{}
			tokens = append(tokens, token)
		}
	}
	return strings.Join(tokens, " ")
}

// Join concatenates parts with single spaces, dropping empty segments. Unlike Merge it
// keeps repeated tokens.
func Join(parts ...string) string {
	return strings.Join(strings.Fields(strings.Join(parts, " ")), " ")
}

// If returns class when cond holds and "" otherwise.
func If(cond bool, class string) string {
	if cond {
		return class
	}
	return ""
}
