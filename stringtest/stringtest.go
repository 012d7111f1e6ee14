// Package stringtest provides helpers for building multi-line test input.
package stringtest

import "strings"

// Input removes the common indentation from a raw string literal, together
// with its first line break and the whitespace before its closing backquote.
// Use this to write multi-line input indented along with the test code.
//
// Example:
//
//	in := stringtest.Input(`
//		Short description.
//
//		@return void
//	`) // -> "Short description.\n\n@return void"
func Input(s string) string {
	s = strings.TrimPrefix(s, "\n")

	lines := strings.Split(s, "\n")
	if n := len(lines); n > 1 && strings.TrimSpace(lines[n-1]) == "" {
		lines = lines[:n-1]
	}

	indent := -1

	for _, l := range lines {
		if strings.TrimSpace(l) == "" {
			continue
		}

		n := len(l) - len(strings.TrimLeft(l, " \t"))
		if indent < 0 || n < indent {
			indent = n
		}
	}

	for i, l := range lines {
		if strings.TrimSpace(l) == "" {
			lines[i] = ""

			continue
		}

		lines[i] = l[max(indent, 0):]
	}

	return strings.Join(lines, "\n")
}

// Comment wraps lines in doc comment decoration, one " * " prefixed line per
// input line, between "/**" and " */". Empty lines become " *".
//
// Example:
//
//	stringtest.Comment(
//		"Short.",
//		"",
//		"@return void",
//	) // -> "/**\n * Short.\n *\n * @return void\n */"
func Comment(lines ...string) string {
	var sb strings.Builder

	sb.WriteString("/**\n")

	for _, l := range lines {
		if l == "" {
			sb.WriteString(" *\n")

			continue
		}

		sb.WriteString(" * ")
		sb.WriteString(l)
		sb.WriteByte('\n')
	}

	sb.WriteString(" */")

	return sb.String()
}

// JoinLF joins multiple strings with LF line endings.
// Use this to construct expected test output with explicit line endings.
func JoinLF(ss ...string) string {
	return strings.Join(ss, "\n")
}

// JoinCRLF joins multiple strings with CRLF line endings.
// Use this to construct input with Windows line endings.
func JoinCRLF(ss ...string) string {
	return strings.Join(ss, "\r\n")
}
