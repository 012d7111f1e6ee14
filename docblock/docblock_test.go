package docblock_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sitethief/Docblox/docblock"
	"github.com/Sitethief/Docblox/stringtest"
)

type method struct {
	comment string
}

func (m method) DocComment() string {
	return m.comment
}

type pointerMethod struct {
	comment string
}

func (m *pointerMethod) DocComment() string {
	return m.comment
}

func TestNew(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		input     string
		wantShort string
		wantLong  string
		wantTags  []docblock.Tag
	}{
		"single line comment": {
			input:     "/** Just a short description */",
			wantShort: "Just a short description",
			wantTags:  []docblock.Tag{},
		},
		"full comment": {
			input: stringtest.Comment(
				"Short desc.",
				"",
				"Long desc line one.",
				"Long desc line two.",
				"",
				"@param string $x Description",
			),
			wantShort: "Short desc.",
			wantLong:  "Long desc line one.\nLong desc line two.",
			wantTags: []docblock.Tag{
				docblock.NewGenericTag("param", "string $x Description"),
			},
		},
		"tags only": {
			input:    "@return void",
			wantTags: []docblock.Tag{docblock.NewGenericTag("return", "void")},
		},
		"decorated tags only": {
			input:    "/** @return void */",
			wantTags: []docblock.Tag{docblock.NewGenericTag("return", "void")},
		},
		"tag directly after sentence end": {
			input:     "/**\n * Ends here.\n * @var int\n */",
			wantShort: "Ends here.",
			wantTags:  []docblock.Tag{docblock.NewGenericTag("var", "int")},
		},
		"continuation lines": {
			input: stringtest.Comment(
				"Short.",
				"",
				"@param string $x First line",
				"continued line",
				"@return void",
			),
			wantShort: "Short.",
			wantTags: []docblock.Tag{
				docblock.NewGenericTag("param", "string $x First line\ncontinued line"),
				docblock.NewGenericTag("return", "void"),
			},
		},
		"windows line endings": {
			input: stringtest.JoinCRLF(
				"/**",
				" * Short.",
				" *",
				" * Long.",
				" *",
				" * @since 1.0",
				" */",
			),
			wantShort: "Short.",
			wantLong:  "Long.",
			wantTags:  []docblock.Tag{docblock.NewGenericTag("since", "1.0")},
		},
		"empty comment": {
			input:    "/** */",
			wantTags: []docblock.Tag{},
		},
		"file level comment": {
			input: stringtest.Input(`
				/**
				 * DocBlox
				 *
				 * @category   DocBlox
				 * @package    Static_Reflection
				 * @copyright  Copyright (c) 2010-2011 Mike van Riel / Naenius. (http://www.naenius.com)
				 */
			`),
			wantShort: "DocBlox",
			wantTags: []docblock.Tag{
				docblock.NewGenericTag("category", "DocBlox"),
				docblock.NewGenericTag("package", "Static_Reflection"),
				docblock.NewGenericTag("copyright",
					"Copyright (c) 2010-2011 Mike van Riel / Naenius. (http://www.naenius.com)"),
			},
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			block, err := docblock.New(tc.input)
			require.NoError(t, err)

			assert.Equal(t, tc.wantShort, block.ShortDescription())
			assert.Equal(t, tc.wantLong, block.LongDescription().Text())
			assert.Equal(t, tc.wantLong == "", block.LongDescription().IsEmpty())
			assert.Equal(t, tc.wantTags, block.Tags())
		})
	}
}

func TestNewMalformed(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		input     string
		wantBlock string
	}{
		"marker without name": {
			input:     "/**\n * @ foo\n * bar\n */",
			wantBlock: "@ foo\nbar",
		},
		"digit after marker": {
			input:     "@1 foo",
			wantBlock: "@1 foo",
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			block, err := docblock.New(tc.input)
			require.ErrorIs(t, err, docblock.ErrMalformedTagBlock)
			assert.Nil(t, block)

			var tbe *docblock.TagBlockError
			require.ErrorAs(t, err, &tbe)
			assert.Equal(t, tc.wantBlock, tbe.Block)
		})
	}
}

func TestFromReflector(t *testing.T) {
	t.Parallel()

	t.Run("reflector", func(t *testing.T) {
		t.Parallel()

		block, err := docblock.FromReflector(method{comment: stringtest.Comment(
			"Returns the name.",
			"",
			"@return string",
		)})
		require.NoError(t, err)
		assert.Equal(t, "Returns the name.", block.ShortDescription())
		assert.True(t, block.HasTag("return"))
	})

	t.Run("nil reflector", func(t *testing.T) {
		t.Parallel()

		block, err := docblock.FromReflector(nil)
		require.ErrorIs(t, err, docblock.ErrInvalidInput)
		assert.Nil(t, block)
	})

	t.Run("pointer reflector", func(t *testing.T) {
		t.Parallel()

		block, err := docblock.FromReflector(&pointerMethod{comment: "/** Short. */"})
		require.NoError(t, err)
		assert.Equal(t, "Short.", block.ShortDescription())
	})

	t.Run("typed nil reflector", func(t *testing.T) {
		t.Parallel()

		var r *pointerMethod

		block, err := docblock.FromReflector(r)
		require.ErrorIs(t, err, docblock.ErrInvalidInput)
		assert.Nil(t, block)
	})
}

func TestDocBlockQueries(t *testing.T) {
	t.Parallel()

	block, err := docblock.New(stringtest.Comment(
		"Sets the values.",
		"",
		"@param string $a First",
		"@throws Exception",
		"@param int $b Second",
		"@param bool $c Third",
	))
	require.NoError(t, err)

	tcs := map[string]struct {
		name string
		want []docblock.Tag
	}{
		"several matches keep order": {
			name: "param",
			want: []docblock.Tag{
				docblock.NewGenericTag("param", "string $a First"),
				docblock.NewGenericTag("param", "int $b Second"),
				docblock.NewGenericTag("param", "bool $c Third"),
			},
		},
		"single match": {
			name: "throws",
			want: []docblock.Tag{docblock.NewGenericTag("throws", "Exception")},
		},
		"no match": {
			name: "return",
			want: []docblock.Tag{},
		},
		"empty name": {
			name: "",
			want: []docblock.Tag{},
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			got := block.TagsByName(tc.name)
			require.NotNil(t, got)
			assert.Equal(t, tc.want, got)
			assert.Equal(t, len(got) > 0, block.HasTag(tc.name))
		})
	}
}

func TestDocBlockTagsIsCopy(t *testing.T) {
	t.Parallel()

	block, err := docblock.New("@return void\n@since 1.0")
	require.NoError(t, err)

	tags := block.Tags()
	tags[0] = docblock.NewGenericTag("changed", "")
	_ = append(tags[:1], docblock.NewGenericTag("appended", ""))

	assert.Equal(t, []docblock.Tag{
		docblock.NewGenericTag("return", "void"),
		docblock.NewGenericTag("since", "1.0"),
	}, block.Tags())
}

func TestParserConcurrent(t *testing.T) {
	t.Parallel()

	registry := docblock.Registry{}
	registry.Add(parseUpper, "param")

	parser := docblock.NewParser(docblock.WithRegistry(registry))

	var wg sync.WaitGroup

	results := make([]*docblock.DocBlock, 64)
	errs := make([]error, len(results))

	for i := range results {
		wg.Go(func() {
			results[i], errs[i] = parser.Parse(fmt.Sprintf("Comment %d.\n\n@param int $x%d", i, i))
		})
	}

	wg.Wait()

	for i, block := range results {
		require.NoError(t, errs[i])
		assert.Equal(t, fmt.Sprintf("Comment %d.", i), block.ShortDescription())

		params := block.TagsByName("param")
		require.Len(t, params, 1)
		assert.Equal(t, fmt.Sprintf("int $x%d", i), params[0].Body())
		assert.IsType(t, upperTag{}, params[0])
	}
}
