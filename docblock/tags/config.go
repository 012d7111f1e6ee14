package tags

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/Sitethief/Docblox/docblock"
)

// Flags holds CLI flag names for tag configuration, allowing callers to
// customize flag names while keeping sensible defaults via [NewConfig].
type Flags struct {
	Tags  string
	Rules string
}

// NewConfig creates a new [Config] embedding these flag names.
func (f Flags) NewConfig() *Config {
	return &Config{
		Flags:    f,
		Registry: DefaultRegistry(),
	}
}

// Config holds CLI flag values for specialized tag configuration.
//
// Create instances with [NewConfig] and register CLI flags with
// [Config.RegisterFlags]. Use [Config.NewRegistry] to build the
// [docblock.Registry] handed to the parser.
type Config struct {
	// Registry holds the rules that may be enabled by name.
	Registry docblock.Registry
	Flags    Flags

	// Tags is a comma-separated list of enabled specialized tags. Empty
	// enables every tag in Registry.
	Tags string
	// Rules is the path of an optional rule file.
	Rules string
}

// NewConfig returns a new [Config] with default flag names and the
// [DefaultRegistry].
func NewConfig() *Config {
	f := Flags{
		Tags:  "tags",
		Rules: "tag-rules",
	}

	return f.NewConfig()
}

// RegisterFlags adds tag flags to the given [*pflag.FlagSet].
func (c *Config) RegisterFlags(flags *pflag.FlagSet) {
	flags.StringVar(&c.Tags, c.Flags.Tags, "",
		"comma-separated list of tags parsed into specialized variants (default all)")
	flags.StringVar(&c.Rules, c.Flags.Rules, "",
		fmt.Sprintf("rule file (yaml or toml) mapping tag names to one of: %s",
			strings.Join(KindNames(), ", ")))
}

// RegisterCompletions registers shell completions for tag flags on cmd.
func (c *Config) RegisterCompletions(cmd *cobra.Command) error {
	err := cmd.RegisterFlagCompletionFunc(c.Flags.Tags,
		cobra.FixedCompletions(c.Registry.Names(), cobra.ShellCompDirectiveNoFileComp))
	if err != nil {
		return fmt.Errorf("registering %s completion: %w", c.Flags.Tags, err)
	}

	err = cmd.MarkFlagFilename(c.Flags.Rules, "yaml", "yml", "json", "toml")
	if err != nil {
		return fmt.Errorf("registering %s completion: %w", c.Flags.Rules, err)
	}

	return nil
}

// NewRegistry builds the [docblock.Registry] selected by this [Config]: the
// enabled subset of Registry, overlaid with the rule file, if any.
func (c *Config) NewRegistry() (docblock.Registry, error) {
	r, err := c.enabled()
	if err != nil {
		return nil, err
	}

	if c.Rules == "" {
		return r, nil
	}

	rules, err := LoadRules(c.Rules)
	if err != nil {
		return nil, err
	}

	for name, parse := range rules {
		r.Add(parse, name)
	}

	return r, nil
}

// NewParser creates a [docblock.Parser] using this [Config] and the given
// options.
func (c *Config) NewParser(opts ...docblock.Option) (*docblock.Parser, error) {
	r, err := c.NewRegistry()
	if err != nil {
		return nil, err
	}

	return docblock.NewParser(append(opts, docblock.WithRegistry(r))...), nil
}

func (c *Config) enabled() (docblock.Registry, error) {
	if c.Tags == "" {
		return c.Registry.Clone(), nil
	}

	r := make(docblock.Registry)

	for name := range strings.SplitSeq(c.Tags, ",") {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}

		parse, ok := c.Registry[name]
		if !ok {
			return nil, fmt.Errorf("%w: unknown tag %q", docblock.ErrInvalidOption, name)
		}

		r.Add(parse, name)
	}

	return r, nil
}
