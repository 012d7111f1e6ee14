package docblock

import "strings"

const (
	commentOpen  = "/**"
	commentClose = "*/"
)

// Normalize strips doc comment decoration from comment and normalizes its line
// endings to "\n".
//
// A decorated comment is one whose text begins with "/**". For each of its
// lines the leading horizontal whitespace is removed, followed by one of
// "/**", "*/" or "*", followed by at most one space. The result is trimmed,
// and a "*/" left on the last line (the single-line form
// "/** text */") is removed.
//
// Text that is not decorated is only line-ending-normalized and trimmed, so
// Normalize(Normalize(s)) == Normalize(s).
func Normalize(comment string) string {
	comment = normalizeLineEndings(comment)

	if !strings.HasPrefix(strings.TrimLeft(comment, " \t\n"), commentOpen) {
		return strings.TrimSpace(comment)
	}

	var sb strings.Builder

	sb.Grow(len(comment))

	for i, line := range strings.Split(comment, "\n") {
		if i > 0 {
			sb.WriteByte('\n')
		}

		sb.WriteString(stripDecoration(line))
	}

	out := strings.TrimSpace(sb.String())

	// Line stripping only removes a terminator that starts its line.
	if rest, ok := strings.CutSuffix(out, commentClose); ok {
		out = strings.TrimSpace(rest)
	}

	return out
}

// stripDecoration removes the comment marker from the start of a single line.
func stripDecoration(line string) string {
	line = strings.TrimLeft(line, " \t")

	switch {
	case strings.HasPrefix(line, commentOpen):
		line = line[len(commentOpen):]
	case strings.HasPrefix(line, commentClose):
		line = line[len(commentClose):]
	case strings.HasPrefix(line, "*"):
		line = line[1:]
	}

	return strings.TrimPrefix(line, " ")
}

func normalizeLineEndings(s string) string {
	if !strings.Contains(s, "\r") {
		return s
	}

	s = strings.ReplaceAll(s, "\r\n", "\n")

	return strings.ReplaceAll(s, "\r", "\n")
}
