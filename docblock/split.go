package docblock

import "strings"

// TagMarker is the character that introduces a tag.
const TagMarker = '@'

// scanState is a state of the description scanner.
type scanState int

const (
	scanningShort scanState = iota
	scanningLong
	collectingTags
)

func (s scanState) String() string {
	switch s {
	case scanningShort:
		return "scanning-short"
	case scanningLong:
		return "scanning-long"
	case collectingTags:
		return "collecting-tags"
	}

	return "unknown"
}

// Split partitions normalized comment text into its short description, long
// description and raw tag block. Any of the three may be empty.
//
// Text that begins with [TagMarker] is entirely tag block. Otherwise:
//
//   - The short description runs line by line until a line ends with "." or
//     is followed by a blank line, or until the next line starts a tag.
//   - The long description starts at the first non-blank line after the short
//     description, unless that line starts a tag, and runs until a line starts
//     a tag or the text ends.
//   - The raw tag block is everything that follows, separating whitespace
//     included.
//
// Trailing horizontal whitespace is removed from every line before scanning.
// The scan visits each line once and never backtracks.
func Split(text string) (short, long, tags string) {
	text = strings.TrimSpace(text)
	if text == "" {
		return "", "", ""
	}

	if text[0] == TagMarker {
		return "", "", text
	}

	sc := newScanner(trimLineEnds(text))

	return sc.run()
}

// line is one line of the scanned text and the byte offsets it occupies.
type line struct {
	text       string
	start, end int
}

func (l line) blank() bool {
	return l.text == ""
}

func (l line) endsSentence() bool {
	return strings.HasSuffix(l.text, ".")
}

// scanner is the forward, single-pass state machine behind [Split].
type scanner struct {
	text  string
	lines []line
	state scanState
	pos   int // Index of the current line.
}

func newScanner(text string) *scanner {
	sc := &scanner{text: text}

	start := 0

	for i := 0; i <= len(text); i++ {
		if i == len(text) || text[i] == '\n' {
			sc.lines = append(sc.lines, line{text: text[start:i], start: start, end: i})
			start = i + 1
		}
	}

	return sc
}

func (sc *scanner) run() (short, long, tags string) {
	var (
		shortEnd int
		longFrom int
		longEnd  = -1
	)

	for sc.state != collectingTags {
		switch sc.state {
		case scanningShort:
			shortEnd = sc.scanShort()
			sc.state = scanningLong

		case scanningLong:
			longFrom, longEnd = sc.scanLong()
			sc.state = collectingTags
		}
	}

	short = sc.text[:shortEnd]
	if longEnd < 0 {
		return short, "", sc.text[shortEnd:]
	}

	long = strings.TrimLeft(sc.text[longFrom:longEnd], " \t")

	return short, long, sc.text[longEnd:]
}

// scanShort advances over the short description and returns the byte offset
// at which it ends. The first line is never blank and never a tag start.
func (sc *scanner) scanShort() int {
	for sc.pos+1 < len(sc.lines) {
		cur, next := sc.lines[sc.pos], sc.lines[sc.pos+1]
		if cur.endsSentence() || next.blank() || isTagStart(next.text) {
			break
		}

		sc.pos++
	}

	end := sc.lines[sc.pos].end
	sc.pos++

	return end
}

// scanLong advances over the long description. It returns the byte range of
// the description, or an end of -1 when there is none.
func (sc *scanner) scanLong() (from, to int) {
	for sc.pos < len(sc.lines) && sc.lines[sc.pos].blank() {
		sc.pos++
	}

	if sc.pos == len(sc.lines) || isTagStart(sc.lines[sc.pos].text) {
		return 0, -1
	}

	from = sc.lines[sc.pos].start
	to = sc.lines[sc.pos].end

	for sc.pos++; sc.pos < len(sc.lines); sc.pos++ {
		l := sc.lines[sc.pos]
		if l.blank() {
			continue
		}

		if isTagStart(l.text) {
			break
		}

		to = l.end
	}

	return from, to
}

// isTagStart reports whether s begins a tag: optional horizontal whitespace,
// the tag marker, then an ASCII letter.
func isTagStart(s string) bool {
	s = strings.TrimLeft(s, " \t")

	return len(s) > 1 && s[0] == TagMarker && isLetter(s[1])
}

func isLetter(c byte) bool {
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}

// trimLineEnds removes trailing horizontal whitespace from every line.
func trimLineEnds(s string) string {
	var sb strings.Builder

	sb.Grow(len(s))

	for i, l := range strings.Split(s, "\n") {
		if i > 0 {
			sb.WriteByte('\n')
		}

		sb.WriteString(strings.TrimRight(l, " \t"))
	}

	return sb.String()
}
