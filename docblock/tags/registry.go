package tags

import (
	"maps"
	"slices"

	"github.com/Sitethief/Docblox/docblock"
)

// Rule kind names, as used in rule files.
const (
	KindGeneric   = "generic"
	KindVariable  = "variable"
	KindTyped     = "typed"
	KindReference = "reference"
	KindAuthor    = "author"
	KindVersion   = "version"
)

// Kinds returns the built-in rule kinds mapped to their parsers. The generic
// kind maps to a nil parser, which makes the factory keep the body verbatim.
func Kinds() map[string]docblock.TagParser {
	return map[string]docblock.TagParser{
		KindGeneric:   nil,
		KindVariable:  ParseVariable,
		KindTyped:     ParseTyped,
		KindReference: ParseReference,
		KindAuthor:    ParseAuthor,
		KindVersion:   ParseVersion,
	}
}

// KindNames returns the sorted names of the built-in rule kinds.
func KindNames() []string {
	return slices.Sorted(maps.Keys(Kinds()))
}

// DefaultRegistry returns a [docblock.Registry] populated with the built-in
// specialized tags.
func DefaultRegistry() docblock.Registry {
	r := make(docblock.Registry)
	r.Add(ParseVariable, "param", "var", "property", "property-read", "property-write")
	r.Add(ParseTyped, "return", "throws")
	r.Add(ParseReference, "see", "uses", "link")
	r.Add(ParseAuthor, "author")
	r.Add(ParseVersion, "since", "version", "deprecated")

	return r
}
