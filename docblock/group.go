package docblock

import "strings"

// GroupTags regroups the lines of a raw tag block into one text block per
// tag.
//
// Blank lines are skipped. A line that starts a tag (optional horizontal
// whitespace, then "@" and a letter) opens a new block beginning at the
// marker; any other line is appended verbatim, after a "\n", to the most
// recently opened block. Text that appears before the first tag makes the
// tag block invalid, and a [*TagBlockError] carrying the whole block is
// returned.
func GroupTags(block string) ([]string, error) {
	var (
		groups []string
		cur    *strings.Builder
	)

	flush := func() {
		if cur != nil {
			groups = append(groups, cur.String())
		}
	}

	for l := range strings.SplitSeq(strings.TrimSpace(block), "\n") {
		if strings.TrimSpace(l) == "" {
			continue
		}

		if isTagStart(l) {
			flush()

			cur = &strings.Builder{}
			cur.WriteString(strings.TrimLeft(l, " \t"))

			continue
		}

		if cur == nil {
			return nil, &TagBlockError{Block: block}
		}

		cur.WriteByte('\n')
		cur.WriteString(l)
	}

	flush()

	return groups, nil
}
