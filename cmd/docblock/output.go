package main

import (
	"encoding/json"
	"fmt"
	"io"
	"maps"
	"slices"
	"strings"

	"github.com/fatih/color"
	"github.com/goccy/go-yaml"
	"github.com/google/jsonschema-go/jsonschema"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/Sitethief/Docblox/docblock"
)

// outputFormat is the encoding of the parse output.
type outputFormat string

const (
	formatJSON    outputFormat = "json"
	formatYAML    outputFormat = "yaml"
	formatMsgpack outputFormat = "msgpack"
	formatText    outputFormat = "text"
)

var allFormats = []outputFormat{formatJSON, formatYAML, formatMsgpack, formatText}

func allFormatStrings() []string {
	out := make([]string, 0, len(allFormats))
	for _, f := range allFormats {
		out = append(out, string(f))
	}

	return out
}

func parseFormat(s string) (outputFormat, error) {
	f := outputFormat(strings.ToLower(s))
	if !slices.Contains(allFormats, f) {
		return "", fmt.Errorf("%w: unknown output format %q", docblock.ErrInvalidOption, s)
	}

	return f, nil
}

// document is the exported form of one parsed comment.
type document struct {
	Source           string        `json:"source"           yaml:"source"`
	ShortDescription string        `json:"shortDescription" yaml:"shortDescription"`
	LongDescription  string        `json:"longDescription"  yaml:"longDescription"`
	Tags             []tagDocument `json:"tags"             yaml:"tags"`
}

// tagDocument is the exported form of one tag. Fields is only set for
// specialized tags.
type tagDocument struct {
	Fields map[string]string `json:"fields,omitempty" yaml:"fields,omitempty"`
	Name   string            `json:"name"             yaml:"name"`
	Body   string            `json:"body"             yaml:"body"`
}

func newDocument(source string, block *docblock.DocBlock) document {
	doc := document{
		Source:           source,
		ShortDescription: block.ShortDescription(),
		LongDescription:  block.LongDescription().Text(),
		Tags:             []tagDocument{},
	}

	for _, tag := range block.Tags() {
		td := tagDocument{Name: tag.Name(), Body: tag.Body()}
		if ft, ok := tag.(docblock.FieldTag); ok {
			td.Fields = ft.Fields()
		}

		doc.Tags = append(doc.Tags, td)
	}

	return doc
}

func writeDocuments(w io.Writer, format outputFormat, docs []document) error {
	switch format {
	case formatJSON:
		out, err := json.MarshalIndent(docs, "", "  ")
		if err != nil {
			return err
		}

		_, err = w.Write(append(out, '\n'))

		return err

	case formatYAML:
		out, err := yaml.Marshal(docs)
		if err != nil {
			return err
		}

		_, err = w.Write(out)

		return err

	case formatMsgpack:
		enc := msgpack.NewEncoder(w)
		enc.SetCustomStructTag("json")

		return enc.Encode(docs)

	case formatText:
		return writeText(w, docs)
	}

	return fmt.Errorf("%w: unknown output format %q", docblock.ErrInvalidOption, format)
}

var (
	sourceColor = color.New(color.FgYellow, color.Bold)
	shortColor  = color.New(color.Bold)
	tagColor    = color.New(color.FgCyan)
	fieldColor  = color.New(color.Faint)
)

func writeText(w io.Writer, docs []document) error {
	var sb strings.Builder

	for i, doc := range docs {
		if i > 0 {
			sb.WriteByte('\n')
		}

		sb.WriteString(sourceColor.Sprint("== " + doc.Source))
		sb.WriteByte('\n')

		if doc.ShortDescription != "" {
			sb.WriteString(shortColor.Sprint(doc.ShortDescription))
			sb.WriteByte('\n')
		}

		if doc.LongDescription != "" {
			sb.WriteByte('\n')
			sb.WriteString(doc.LongDescription)
			sb.WriteByte('\n')
		}

		if len(doc.Tags) > 0 {
			sb.WriteByte('\n')
		}

		for _, tag := range doc.Tags {
			sb.WriteString(tagColor.Sprint("@" + tag.Name))

			if tag.Body != "" {
				sb.WriteByte(' ')
				sb.WriteString(tag.Body)
			}

			sb.WriteByte('\n')

			for _, key := range slices.Sorted(maps.Keys(tag.Fields)) {
				if tag.Fields[key] == "" {
					continue
				}

				sb.WriteString(fieldColor.Sprintf("    %s: %s", key, tag.Fields[key]))
				sb.WriteByte('\n')
			}
		}
	}

	_, err := io.WriteString(w, sb.String())

	return err
}

func writeSchema(w io.Writer) error {
	schema, err := jsonschema.For[[]document](nil)
	if err != nil {
		return fmt.Errorf("derive schema: %w", err)
	}

	schema.Schema = "https://json-schema.org/draft/2020-12/schema"
	schema.Title = "docblock parse output"

	out, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: %w", ErrWriteOutput, err)
	}

	_, err = w.Write(append(out, '\n'))
	if err != nil {
		return fmt.Errorf("%w: %w", ErrWriteOutput, err)
	}

	return nil
}
