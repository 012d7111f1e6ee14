package log

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

const (
	// DefaultLevel is the level used when none is configured. Parsing logs
	// at debug level and warns about rule fallbacks, so only the latter is
	// shown by default.
	DefaultLevel = LevelWarn
	// DefaultFormat is the format used when none is configured.
	DefaultFormat = FormatText
)

// Flags holds the CLI flag names of a [Config].
type Flags struct {
	Level  string
	Format string
}

// NewConfig creates a [Config] using these flag names and the default level
// and format.
func (f Flags) NewConfig() *Config {
	return &Config{
		Flags:  f,
		Level:  string(DefaultLevel),
		Format: string(DefaultFormat),
	}
}

// Config holds the log level and format selected on the command line.
//
// A Config returned by [NewConfig] is usable as is; [Config.RegisterFlags]
// lets the CLI override it.
type Config struct {
	Level  string
	Format string
	Flags  Flags
}

// NewConfig returns a [Config] with the flag names "log-level" and
// "log-format".
func NewConfig() *Config {
	f := Flags{
		Level:  "log-level",
		Format: "log-format",
	}

	return f.NewConfig()
}

// RegisterFlags adds the level and format flags to flags. The current values
// of c become the flag defaults.
func (c *Config) RegisterFlags(flags *pflag.FlagSet) {
	flags.StringVar(&c.Level, c.Flags.Level, c.Level,
		fmt.Sprintf("log level, one of: %s", GetAllLevelStrings()))
	flags.StringVar(&c.Format, c.Flags.Format, c.Format,
		fmt.Sprintf("log format, one of: %s", GetAllFormatStrings()))
}

// RegisterCompletions registers shell completions for the flags added by
// [Config.RegisterFlags].
func (c *Config) RegisterCompletions(cmd *cobra.Command) error {
	completions := []struct {
		flag   string
		values []string
	}{
		{flag: c.Flags.Level, values: GetAllLevelStrings()},
		{flag: c.Flags.Format, values: GetAllFormatStrings()},
	}

	for _, comp := range completions {
		err := cmd.RegisterFlagCompletionFunc(comp.flag,
			cobra.FixedCompletions(comp.values, cobra.ShellCompDirectiveNoFileComp))
		if err != nil {
			return fmt.Errorf("registering %s completion: %w", comp.flag, err)
		}
	}

	return nil
}

// NewHandler creates a [Handler] writing to w with the configured level and
// format.
func (c *Config) NewHandler(w io.Writer) (Handler, error) {
	return NewHandlerFromStrings(w, c.Level, c.Format)
}

// NewLogger creates a [*slog.Logger] writing to w. It is handed to the
// parser with docblock.WithLogger.
func (c *Config) NewLogger(w io.Writer) (*slog.Logger, error) {
	h, err := c.NewHandler(w)
	if err != nil {
		return nil, err
	}

	return slog.New(h), nil
}
