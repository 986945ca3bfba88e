package engine

import "strings"

// hasPrefixFold reports whether s begins with prefix, ignoring case.
func hasPrefixFold(s, prefix string) bool {
	if len(s) < len(prefix) {
		return false
	}
	return strings.EqualFold(s[:len(prefix)], prefix)
}

// trimPrefixFold removes prefix from the front of s (case-insensitive)
// and trims surrounding whitespace from what remains. It assumes the
// caller already checked hasPrefixFold.
func trimPrefixFold(s, prefix string) string {
	return strings.TrimSpace(s[len(prefix):])
}

// unquote strips a single layer of matching quotes (both single and
// double) from lit, only when both ends carry the same quote character
// (§4.13). Unmatched or unquoted literals are returned unchanged.
func unquote(lit string) string {
	if len(lit) < 2 {
		return lit
	}
	first, last := lit[0], lit[len(lit)-1]
	if (first == '\'' || first == '"') && first == last {
		return lit[1 : len(lit)-1]
	}
	return lit
}

// splitTopLevel splits s on sep, treating single- or double-quoted
// spans as atomic (a separator inside a quoted span is not a split
// point). Used to tokenize INSERT value lists and column lists
// (§4.6).
func splitTopLevel(s string, sep byte) []string {
	var parts []string
	var cur strings.Builder
	var quote byte
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case quote != 0:
			cur.WriteByte(c)
			if c == quote {
				quote = 0
			}
		case c == '\'' || c == '"':
			quote = c
			cur.WriteByte(c)
		case c == sep:
			parts = append(parts, cur.String())
			cur.Reset()
		default:
			cur.WriteByte(c)
		}
	}
	parts = append(parts, cur.String())
	for i, p := range parts {
		parts[i] = strings.TrimSpace(p)
	}
	return parts
}

// splitParen extracts the content between the first '(' and the
// matching last ')' in s, trimmed. ok is false if either is missing or
// the close precedes the open.
func splitParen(s string) (inner string, ok bool) {
	open := strings.IndexByte(s, '(')
	closeAt := strings.LastIndexByte(s, ')')
	if open < 0 || closeAt < 0 || closeAt < open {
		return "", false
	}
	return strings.TrimSpace(s[open+1 : closeAt]), true
}
