package tags

import (
	"regexp"
	"strings"

	"github.com/Sitethief/Docblox/docblock"
)

var (
	// AuthorRegex splits "Name <email>" author bodies. Both parts are optional.
	authorRegex = regexp.MustCompile(`^([^<]*?)\s*(?:<([^>]*)>)?\s*$`)

	// VersionRegex matches version tokens like "1.2", "v2.0.0-rc1" or "7".
	versionRegex = regexp.MustCompile(`^v?\d+(?:\.\d+)*(?:[-+][0-9A-Za-z.-]+)?$`)
)

// VariableTag is a tag that documents a typed variable, such as @param or
// @var. The grammar is "[Type] [$variable] [description]".
type VariableTag struct {
	docblock.GenericTag

	Type        string
	Variable    string
	Description string
}

// Fields returns the type, variable and description.
func (t VariableTag) Fields() map[string]string {
	return map[string]string{
		"type":        t.Type,
		"variable":    t.Variable,
		"description": t.Description,
	}
}

// TypedTag is a tag that documents a type, such as @return or @throws. The
// grammar is "Type [description]".
type TypedTag struct {
	docblock.GenericTag

	Type        string
	Description string
}

// Fields returns the type and description.
func (t TypedTag) Fields() map[string]string {
	return map[string]string{
		"type":        t.Type,
		"description": t.Description,
	}
}

// ReferenceTag is a tag that points elsewhere, such as @see or @link. The
// grammar is "reference [description]".
type ReferenceTag struct {
	docblock.GenericTag

	Reference   string
	Description string
}

// Fields returns the reference and description.
func (t ReferenceTag) Fields() map[string]string {
	return map[string]string{
		"reference":   t.Reference,
		"description": t.Description,
	}
}

// AuthorTag is an @author tag. The grammar is "Name [<email>]".
type AuthorTag struct {
	docblock.GenericTag

	AuthorName string
	Email      string
}

// Fields returns the author name and email.
func (t AuthorTag) Fields() map[string]string {
	return map[string]string{
		"name":  t.AuthorName,
		"email": t.Email,
	}
}

// VersionTag is a tag that carries a version, such as @since or
// @deprecated. The grammar is "[version] [description]".
type VersionTag struct {
	docblock.GenericTag

	Version     string
	Description string
}

// Fields returns the version and description.
func (t VersionTag) Fields() map[string]string {
	return map[string]string{
		"version":     t.Version,
		"description": t.Description,
	}
}

// ParseVariable is the [docblock.TagParser] for [VariableTag].
func ParseVariable(name, body string) docblock.Tag {
	tag := VariableTag{GenericTag: docblock.NewGenericTag(name, body)}

	first, rest := cutField(body)

	switch {
	case first == "":
	case isVariable(first):
		tag.Variable = first
		tag.Description = rest
	default:
		tag.Type = first

		second, remainder := cutField(rest)
		if isVariable(second) {
			tag.Variable = second
			tag.Description = remainder
		} else {
			tag.Description = rest
		}
	}

	return tag
}

// ParseTyped is the [docblock.TagParser] for [TypedTag].
func ParseTyped(name, body string) docblock.Tag {
	tag := TypedTag{GenericTag: docblock.NewGenericTag(name, body)}
	tag.Type, tag.Description = cutField(body)

	return tag
}

// ParseReference is the [docblock.TagParser] for [ReferenceTag].
func ParseReference(name, body string) docblock.Tag {
	tag := ReferenceTag{GenericTag: docblock.NewGenericTag(name, body)}
	tag.Reference, tag.Description = cutField(body)

	return tag
}

// ParseAuthor is the [docblock.TagParser] for [AuthorTag].
func ParseAuthor(name, body string) docblock.Tag {
	tag := AuthorTag{GenericTag: docblock.NewGenericTag(name, body)}

	if m := authorRegex.FindStringSubmatch(body); m != nil {
		tag.AuthorName = m[1]
		tag.Email = m[2]
	} else {
		// Multi-line or otherwise unusual bodies keep the whole text as the name.
		tag.AuthorName = body
	}

	return tag
}

// ParseVersion is the [docblock.TagParser] for [VersionTag]. A body that does
// not start with a version is kept entirely as the description.
func ParseVersion(name, body string) docblock.Tag {
	tag := VersionTag{GenericTag: docblock.NewGenericTag(name, body)}

	first, rest := cutField(body)
	if versionRegex.MatchString(first) {
		tag.Version = first
		tag.Description = rest
	} else {
		tag.Description = body
	}

	return tag
}

// cutField splits s into its first whitespace-delimited field and the
// remaining text, with surrounding whitespace removed from both.
func cutField(s string) (field, rest string) {
	s = strings.TrimSpace(s)

	i := strings.IndexAny(s, " \t\n")
	if i < 0 {
		return s, ""
	}

	return s[:i], strings.TrimSpace(s[i:])
}

// isVariable reports whether field names a variable: "$name", "&$name" or
// "...$name".
func isVariable(field string) bool {
	field = strings.TrimPrefix(field, "&")
	field = strings.TrimPrefix(field, "...")

	return len(field) > 1 && field[0] == '$'
}
