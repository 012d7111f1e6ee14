package docblock

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"
)

// Sentinel errors returned by the parser.
var (
	ErrInvalidInput      = errors.New("invalid input")
	ErrMalformedTagBlock = errors.New("malformed tag block")
	ErrInvalidOption     = errors.New("invalid option")
)

// TagBlockError reports a tag block that starts with text instead of a tag.
// It matches [ErrMalformedTagBlock] with [errors.Is].
type TagBlockError struct {
	// Block is the offending raw tag block.
	Block string
}

func (e *TagBlockError) Error() string {
	return fmt.Sprintf("%v: tag block starts with text instead of a tag: %q",
		ErrMalformedTagBlock, e.Block)
}

func (e *TagBlockError) Unwrap() error {
	return ErrMalformedTagBlock
}

// Reflector is implemented by values that can supply their own raw doc
// comment, such as a reflected class or method.
type Reflector interface {
	DocComment() string
}

// LongDescription holds the extended description of a [DocBlock]. The text
// may contain inline markup; it is kept as written.
type LongDescription struct {
	text string
}

// Text returns the description text.
func (d LongDescription) Text() string {
	return d.text
}

// String implements [fmt.Stringer].
func (d LongDescription) String() string {
	return d.text
}

// IsEmpty reports whether there is no long description.
func (d LongDescription) IsEmpty() bool {
	return d.text == ""
}

// DocBlock is the parsed form of one documentation comment. It is immutable
// once constructed.
//
// Create instances with [New], [FromReflector] or a [Parser].
type DocBlock struct {
	short string
	long  LongDescription
	tags  []Tag
}

// ShortDescription returns the opening summary of the comment.
func (d *DocBlock) ShortDescription() string {
	return d.short
}

// LongDescription returns the extended description of the comment.
func (d *DocBlock) LongDescription() LongDescription {
	return d.long
}

// Tags returns all tags in the order they appear. The returned slice is a
// copy and may be modified by the caller.
func (d *DocBlock) Tags() []Tag {
	return slices.Clone(d.tags)
}

// TagsByName returns the tags with the given name in the order they appear.
// It returns an empty slice if there are none.
func (d *DocBlock) TagsByName(name string) []Tag {
	result := []Tag{}

	for _, tag := range d.tags {
		if tag.Name() == name {
			result = append(result, tag)
		}
	}

	return result
}

// HasTag reports whether at least one tag has the given name.
func (d *DocBlock) HasTag(name string) bool {
	return slices.ContainsFunc(d.tags, func(tag Tag) bool {
		return tag.Name() == name
	})
}

// Parser turns raw doc comments into [DocBlock] values. A Parser holds only
// read-only configuration and is safe for concurrent use.
//
// Create instances with [NewParser].
type Parser struct {
	registry Registry
	logger   *slog.Logger
}

// Option configures a [Parser].
type Option func(*Parser)

// WithRegistry sets the registry of specialized tag parsers. Without it every
// tag becomes a [GenericTag].
func WithRegistry(registry Registry) Option {
	return func(p *Parser) {
		p.registry = registry
	}
}

// WithLogger sets the logger used for diagnostics. The default is
// [slog.Default].
func WithLogger(logger *slog.Logger) Option {
	return func(p *Parser) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// NewParser creates a [Parser] with the given options.
func NewParser(opts ...Option) *Parser {
	p := &Parser{
		logger: slog.Default(),
	}

	for _, opt := range opts {
		opt(p)
	}

	return p
}

// New parses a raw doc comment, with or without its "/**" decoration.
func New(comment string, opts ...Option) (*DocBlock, error) {
	return NewParser(opts...).Parse(comment)
}

// FromReflector parses the doc comment supplied by r.
func FromReflector(r Reflector, opts ...Option) (*DocBlock, error) {
	return NewParser(opts...).ParseReflector(r)
}

// ParseReflector parses the doc comment supplied by r. A nil r, or one whose
// DocComment panics (such as a typed nil pointer), fails with
// [ErrInvalidInput].
func (p *Parser) ParseReflector(r Reflector) (*DocBlock, error) {
	if r == nil {
		return nil, fmt.Errorf("%w: reflector must supply a doc comment", ErrInvalidInput)
	}

	comment, err := docComment(r)
	if err != nil {
		return nil, err
	}

	return p.Parse(comment)
}

func docComment(r Reflector) (comment string, err error) {
	defer func() {
		if v := recover(); v != nil {
			err = fmt.Errorf("%w: reading doc comment of %T: %v", ErrInvalidInput, r, v)
		}
	}()

	return r.DocComment(), nil
}

// Parse parses a raw doc comment. On error no [DocBlock] is returned.
func (p *Parser) Parse(comment string) (*DocBlock, error) {
	short, long, rawTags := Split(Normalize(comment))

	blocks, err := GroupTags(rawTags)
	if err != nil {
		return nil, err
	}

	factory := &Factory{registry: p.registry, logger: p.logger}
	tags := make([]Tag, 0, len(blocks))

	for _, block := range blocks {
		tag, err := factory.Create(block)
		if err != nil {
			return nil, err
		}

		tags = append(tags, tag)
	}

	p.logger.Debug("parsed docblock",
		slog.Int("short", len(short)),
		slog.Int("long", len(long)),
		slog.Int("tags", len(tags)),
	)

	return &DocBlock{
		short: short,
		long:  LongDescription{text: long},
		tags:  tags,
	}, nil
}
