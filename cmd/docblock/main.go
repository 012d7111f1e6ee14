// Command docblock parses documentation comments and prints their structure.
//
// Each input file holds one raw doc comment, with or without its "/**"
// decoration. The short description, long description and tags of every
// comment are printed in the selected format.
//
// # Usage
//
//	docblock [flags] [file|-] ...
//	docblock schema
//	docblock version
//
// With no arguments the comment is read from stdin.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
	"golang.org/x/term"

	"github.com/Sitethief/Docblox/docblock"
	"github.com/Sitethief/Docblox/docblock/tags"
	"github.com/Sitethief/Docblox/log"
	"github.com/Sitethief/Docblox/version"
)

var (
	// ErrReadInput indicates an input that could not be read.
	ErrReadInput = errors.New("read input")
	// ErrWriteOutput indicates output that could not be written.
	ErrWriteOutput = errors.New("write output")
	// ErrNoInput indicates that no input was given and stdin is a terminal.
	ErrNoInput = errors.New("no input: pass a file or pipe a comment to stdin")
)

const stdinName = "-"

func main() {
	err := newRootCmd(os.Stdin, os.Stdout, os.Stderr).ExecuteContext(context.Background())
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

// cli holds the configuration and streams shared by all subcommands.
type cli struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
	log    *log.Config
	tags   *tags.Config
	format string
}

func newRootCmd(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	c := &cli{
		stdin:  stdin,
		stdout: stdout,
		stderr: stderr,
		log:    log.NewConfig(),
		tags:   tags.NewConfig(),
	}

	rootCmd := &cobra.Command{
		Use:   "docblock [flags] [file|-] ...",
		Short: "Parse documentation comments",
		Long: `docblock parses documentation comments ("DocBlocks") into a short
description, a long description and a list of tags. Each input file holds one
raw comment; with no arguments the comment is read from stdin.`,
		Args:          cobra.ArbitraryArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runParse(cmd.Context(), args)
		},
	}

	c.log.RegisterFlags(rootCmd.PersistentFlags())
	c.tags.RegisterFlags(rootCmd.Flags())
	rootCmd.Flags().StringVarP(&c.format, "output", "o", string(formatJSON),
		fmt.Sprintf("output format, one of: %s", allFormatStrings()))

	rootCmd.AddCommand(c.newSchemaCmd(), c.newVersionCmd())

	err := errors.Join(
		c.log.RegisterCompletions(rootCmd),
		c.tags.RegisterCompletions(rootCmd),
		rootCmd.RegisterFlagCompletionFunc("output",
			cobra.FixedCompletions(allFormatStrings(), cobra.ShellCompDirectiveNoFileComp)),
	)
	if err != nil {
		fmt.Fprintf(stderr, "register completions: %v\n", err)
	}

	return rootCmd
}

func (c *cli) newSchemaCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "schema",
		Short: "Print the JSON Schema of the parse output",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return writeSchema(c.stdout)
		},
	}
}

func (c *cli) newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			_, err := fmt.Fprintln(c.stdout, version.Get())
			if err != nil {
				return fmt.Errorf("%w: %w", ErrWriteOutput, err)
			}

			return nil
		},
	}
}

func (c *cli) runParse(ctx context.Context, args []string) error {
	format, err := parseFormat(c.format)
	if err != nil {
		return err
	}

	logger, err := c.log.NewLogger(c.stderr)
	if err != nil {
		return err
	}

	parser, err := c.tags.NewParser(docblock.WithLogger(logger))
	if err != nil {
		return err
	}

	if len(args) == 0 {
		if f, ok := c.stdin.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
			return ErrNoInput
		}

		args = []string{stdinName}
	}

	inputs, err := c.readInputs(args)
	if err != nil {
		return err
	}

	docs, err := parseAll(ctx, parser, inputs)
	if err != nil {
		return err
	}

	logger.Debug("parsed inputs", slog.Int("count", len(docs)))

	err = writeDocuments(c.stdout, format, docs)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrWriteOutput, err)
	}

	return nil
}

// input is one raw comment and where it came from.
type input struct {
	source  string
	comment string
}

func (c *cli) readInputs(args []string) ([]input, error) {
	inputs := make([]input, 0, len(args))

	for _, arg := range args {
		var (
			data []byte
			err  error
		)

		if arg == stdinName {
			data, err = io.ReadAll(c.stdin)
			if err != nil {
				return nil, fmt.Errorf("%w: stdin: %w", ErrReadInput, err)
			}
		} else {
			data, err = os.ReadFile(arg)
			if err != nil {
				return nil, fmt.Errorf("%w: %w", ErrReadInput, err)
			}
		}

		inputs = append(inputs, input{source: arg, comment: string(data)})
	}

	return inputs, nil
}

// parseAll parses inputs concurrently. Results keep the input order.
func parseAll(ctx context.Context, parser *docblock.Parser, inputs []input) ([]document, error) {
	docs := make([]document, len(inputs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(1, min(runtime.GOMAXPROCS(0), len(inputs))))

	for i, in := range inputs {
		g.Go(func() error {
			if gctx.Err() != nil {
				return gctx.Err()
			}

			block, err := parser.Parse(in.comment)
			if err != nil {
				return fmt.Errorf("%s: %w", in.source, err)
			}

			docs[i] = newDocument(in.source, block)

			return nil
		})
	}

	err := g.Wait()
	if err != nil {
		return nil, err
	}

	return docs, nil
}
