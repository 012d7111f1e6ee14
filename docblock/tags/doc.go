// Package tags provides the built-in specialized tag variants for
// [docblock.Parser].
//
// Each variant is produced by a [docblock.TagParser] that decomposes the tag
// body into named fields on a best-effort basis. Parsers never fail: fields
// the body does not provide are left empty, and Body always returns the
// verbatim text.
//
//	| Variant      | Tags                                              |
//	|--------------|---------------------------------------------------|
//	| VariableTag  | param, var, property, property-read, property-write |
//	| TypedTag     | return, throws                                    |
//	| ReferenceTag | see, uses, link                                   |
//	| AuthorTag    | author                                            |
//	| VersionTag   | since, version, deprecated                        |
//
// Use [DefaultRegistry] to enable all of them:
//
//	block, err := docblock.New(comment,
//	    docblock.WithRegistry(tags.DefaultRegistry()),
//	)
//
// Additional tag names can be bound to a rule kind with a rule file, loaded
// with [LoadRules] or through [Config]:
//
//	tags:
//	  param-out: variable
//	  todo: generic
package tags
