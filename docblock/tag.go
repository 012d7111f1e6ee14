package docblock

import (
	"log/slog"
	"maps"
	"slices"
	"strings"
)

// Tag is a single "@name body" annotation of a DocBlock.
type Tag interface {
	// Name returns the tag name without the leading marker.
	Name() string
	// Body returns everything after the name, continuation lines included.
	Body() string
}

// FieldTag is a [Tag] whose body was decomposed into named sub-fields by a
// specialized [TagParser].
type FieldTag interface {
	Tag

	// Fields returns the decomposed sub-fields, keyed by field name. The
	// returned map is a fresh copy.
	Fields() map[string]string
}

// GenericTag is the default [Tag] variant. It keeps the body verbatim.
//
// Specialized variants embed GenericTag to inherit [GenericTag.Name] and
// [GenericTag.Body].
type GenericTag struct {
	name string
	body string
}

// NewGenericTag returns a [GenericTag] with the given name and body.
func NewGenericTag(name, body string) GenericTag {
	return GenericTag{name: name, body: body}
}

// Name returns the tag name.
func (t GenericTag) Name() string {
	return t.name
}

// Body returns the tag body.
func (t GenericTag) Body() string {
	return t.body
}

// String returns the tag as it appears in a comment.
func (t GenericTag) String() string {
	if t.body == "" {
		return string(TagMarker) + t.name
	}

	return string(TagMarker) + t.name + " " + t.body
}

// TagParser builds a specialized [Tag] from a tag name and its body.
//
// Parsers are best-effort: when the body does not follow the expected
// grammar the unmatched fields are left empty. A parser may return nil to
// fall back to [GenericTag].
type TagParser func(name, body string) Tag

// Registry maps tag names to the [TagParser] that builds their specialized
// variant. Tags without an entry become a [GenericTag].
//
// A Registry is only read while parsing, so a single Registry may be shared
// by concurrent parses as long as nobody modifies it at the same time.
type Registry map[string]TagParser

// Add registers parser for each of the given tag names, replacing any
// existing entry.
func (r Registry) Add(parser TagParser, names ...string) {
	for _, name := range names {
		r[name] = parser
	}
}

// Clone returns a shallow copy of r.
func (r Registry) Clone() Registry {
	if r == nil {
		return Registry{}
	}

	return maps.Clone(r)
}

// Names returns the registered tag names in sorted order.
func (r Registry) Names() []string {
	return slices.Sorted(maps.Keys(r))
}

// Factory converts grouped tag blocks into [Tag] values.
//
// Create instances with [NewFactory].
type Factory struct {
	registry Registry
	logger   *slog.Logger
}

// NewFactory creates a [Factory] that consults registry for specialized tag
// variants. A nil registry produces only [GenericTag] values.
func NewFactory(registry Registry) *Factory {
	return &Factory{registry: registry, logger: slog.Default()}
}

// Create builds a [Tag] from one grouped tag block, as produced by
// [GroupTags]. The name is the run of letters, digits, "_" and "-" after the
// marker; the body is the rest of the block with surrounding whitespace
// removed.
func (f *Factory) Create(block string) (Tag, error) {
	name, body, ok := cutTag(block)
	if !ok {
		return nil, &TagBlockError{Block: block}
	}

	if parse, found := f.registry[name]; found && parse != nil {
		if tag := parse(name, body); tag != nil {
			return tag, nil
		}

		f.logger.Warn("tag parser returned no tag, using generic tag",
			slog.String("tag", name),
		)
	}

	return NewGenericTag(name, body), nil
}

// cutTag splits a tag block into its name and body.
func cutTag(block string) (name, body string, ok bool) {
	if !isTagStart(block) {
		return "", "", false
	}

	block = strings.TrimLeft(block, " \t")[1:]

	end := 0
	for end < len(block) && isNameByte(block[end]) {
		end++
	}

	return block[:end], strings.TrimSpace(block[end:]), true
}

func isNameByte(c byte) bool {
	return isLetter(c) || ('0' <= c && c <= '9') || c == '_' || c == '-'
}
