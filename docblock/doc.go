// Package docblock parses structured documentation comments ("DocBlocks")
// into a short description, a long description and an ordered list of tags.
//
//	/**
//	 * Short description.
//	 *
//	 * Long description, which may span
//	 * several lines and paragraphs.
//	 *
//	 * @param string $name The name.
//	 * @return void
//	 */
//
// # Parsing Pipeline
//
// [Parser.Parse] processes one comment in four steps, each also available on
// its own:
//
//  1. [Normalize] strips the "/**", "*" and "*/" decoration and normalizes
//     line endings to "\n".
//
//  2. [Split] partitions the text into the short description, the long
//     description and the raw tag block using a single forward scan over
//     lines. The short description ends at a line ending in "." or at a
//     blank line. Neither description ever absorbs a line that starts a tag.
//
//  3. [GroupTags] merges continuation lines into the tag they follow. Text
//     before the first tag of the tag block is an error ([TagBlockError]).
//
//  4. A [Factory] turns each group into a [Tag]. Tags whose name is found in
//     the [Registry] are built by the registered [TagParser]; all others
//     become a [GenericTag]. Package
//     [github.com/Sitethief/Docblox/docblock/tags] provides the built-in
//     specialized variants.
//
// # Entry Points
//
// Use [New] for comment text, or [FromReflector] for values implementing
// [Reflector]. Both accept [Option] values such as [WithRegistry]. To parse
// many comments with the same configuration, create a [Parser] once with
// [NewParser]; it holds no mutable state and is safe for concurrent use.
//
// Parsing is all-or-nothing: on error no [DocBlock] is returned. Errors match
// [ErrInvalidInput] or [ErrMalformedTagBlock] with [errors.Is].
package docblock
