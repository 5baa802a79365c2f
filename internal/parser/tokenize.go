package parser

import "strings"

// splitTopLevel splits s on sep, but never inside single- or
// double-quoted strings nor inside balanced parentheses (spec §4.1:
// "the comma splitter respects quoted strings ... and balanced
// parentheses"). Used for CREATE TABLE column lists, VALUES tuples, and
// column-name lists.
func splitTopLevel(s string, sep byte) []string {
	var parts []string
	var cur strings.Builder
	depth := 0
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
		case c == '(':
			depth++
			cur.WriteByte(c)
		case c == ')':
			if depth > 0 {
				depth--
			}
			cur.WriteByte(c)
		case c == sep && depth == 0:
			parts = append(parts, cur.String())
			cur.Reset()
		default:
			cur.WriteByte(c)
		}
	}
	parts = append(parts, cur.String())

	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}

// outerParens locates the first '(' and its matching ')' in s, counting
// nested depth and skipping over quoted content, and returns the
// substring strictly between them. ok is false if no balanced pair is
// found.
func outerParens(s string) (inner string, ok bool) {
	start := strings.IndexByte(s, '(')
	if start < 0 {
		return "", false
	}
	depth := 0
	var quote byte
	for i := start; i < len(s); i++ {
		c := s[i]
		switch {
		case quote != 0:
			if c == quote {
				quote = 0
			}
		case c == '\'' || c == '"':
			quote = c
		case c == '(':
			depth++
		case c == ')':
			depth--
			if depth == 0 {
				return s[start+1 : i], true
			}
		}
	}
	return "", false
}

// fieldsN splits s on runs of whitespace, like strings.Fields, but stops
// collecting into a new field after the first n-1 splits, returning the
// remainder of the string verbatim as the last element. Used to split a
// column definition into name, type, and "the rest" (constraint
// keywords) without disturbing whitespace inside the rest.
func fieldsN(s string, n int) []string {
	fields := strings.Fields(s)
	if len(fields) <= n {
		return fields
	}
	// Recombine everything from the n-th field onward using the
	// original spacing by locating it in s.
	head := fields[:n-1]
	idx := 0
	for _, f := range head {
		at := strings.Index(s[idx:], f)
		idx += at + len(f)
	}
	rest := strings.TrimSpace(s[idx:])
	return append(append([]string{}, head...), rest)
}
