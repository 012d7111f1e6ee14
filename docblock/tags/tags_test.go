package tags_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sitethief/Docblox/docblock"
	"github.com/Sitethief/Docblox/docblock/tags"
	"github.com/Sitethief/Docblox/stringtest"
)

func TestVariableTag(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		body string
		want map[string]string
	}{
		"type variable description": {
			body: "string $x Description",
			want: map[string]string{"type": "string", "variable": "$x", "description": "Description"},
		},
		"type and variable": {
			body: "int[] $ids",
			want: map[string]string{"type": "int[]", "variable": "$ids", "description": ""},
		},
		"variable only": {
			body: "$x The value",
			want: map[string]string{"type": "", "variable": "$x", "description": "The value"},
		},
		"type and description": {
			body: "int The count",
			want: map[string]string{"type": "int", "variable": "", "description": "The count"},
		},
		"type only": {
			body: "Foo|null",
			want: map[string]string{"type": "Foo|null", "variable": "", "description": ""},
		},
		"reference variable": {
			body: "array &$items Items",
			want: map[string]string{"type": "array", "variable": "&$items", "description": "Items"},
		},
		"variadic variable": {
			body: "mixed ...$args",
			want: map[string]string{"type": "mixed", "variable": "...$args", "description": ""},
		},
		"multi-line description": {
			body: "string $x First line\ncontinued line",
			want: map[string]string{
				"type":        "string",
				"variable":    "$x",
				"description": "First line\ncontinued line",
			},
		},
		"dollar alone is not a variable": {
			body: "string $ cost",
			want: map[string]string{"type": "string", "variable": "", "description": "$ cost"},
		},
		"empty": {
			body: "",
			want: map[string]string{"type": "", "variable": "", "description": ""},
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			tag := tags.ParseVariable("param", tc.body)
			require.IsType(t, tags.VariableTag{}, tag)

			vt := tag.(tags.VariableTag) //nolint:forcetypeassert // Checked above.
			assert.Equal(t, "param", vt.Name())
			assert.Equal(t, tc.body, vt.Body())
			assert.Equal(t, tc.want, vt.Fields())
			assert.Equal(t, tc.want["type"], vt.Type)
			assert.Equal(t, tc.want["variable"], vt.Variable)
			assert.Equal(t, tc.want["description"], vt.Description)
		})
	}
}

func TestSimpleTags(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		parse docblock.TagParser
		name  string
		body  string
		want  map[string]string
	}{
		"return with description": {
			parse: tags.ParseTyped,
			name:  "return",
			body:  "string The name",
			want:  map[string]string{"type": "string", "description": "The name"},
		},
		"return type only": {
			parse: tags.ParseTyped,
			name:  "return",
			body:  "void",
			want:  map[string]string{"type": "void", "description": ""},
		},
		"throws": {
			parse: tags.ParseTyped,
			name:  "throws",
			body:  "DocBlox_Reflection_Exception\n  when the reflector is invalid",
			want: map[string]string{
				"type":        "DocBlox_Reflection_Exception",
				"description": "when the reflector is invalid",
			},
		},
		"see": {
			parse: tags.ParseReference,
			name:  "see",
			body:  "DocBlock::getTags() For all tags",
			want:  map[string]string{"reference": "DocBlock::getTags()", "description": "For all tags"},
		},
		"link": {
			parse: tags.ParseReference,
			name:  "link",
			body:  "http://www.naenius.com",
			want:  map[string]string{"reference": "http://www.naenius.com", "description": ""},
		},
		"author with email": {
			parse: tags.ParseAuthor,
			name:  "author",
			body:  "Mike van Riel <mike.vanriel@naenius.com>",
			want:  map[string]string{"name": "Mike van Riel", "email": "mike.vanriel@naenius.com"},
		},
		"author without email": {
			parse: tags.ParseAuthor,
			name:  "author",
			body:  "RichardJ",
			want:  map[string]string{"name": "RichardJ", "email": ""},
		},
		"author with trailing text": {
			parse: tags.ParseAuthor,
			name:  "author",
			body:  "A <a@example.com> and B",
			want:  map[string]string{"name": "A <a@example.com> and B", "email": ""},
		},
		"since version": {
			parse: tags.ParseVersion,
			name:  "since",
			body:  "1.0",
			want:  map[string]string{"version": "1.0", "description": ""},
		},
		"version with prefix and suffix": {
			parse: tags.ParseVersion,
			name:  "version",
			body:  "v2.1.0-rc1 Release candidate",
			want:  map[string]string{"version": "v2.1.0-rc1", "description": "Release candidate"},
		},
		"deprecated without version": {
			parse: tags.ParseVersion,
			name:  "deprecated",
			body:  "Use getTags() instead",
			want:  map[string]string{"version": "", "description": "Use getTags() instead"},
		},
		"deprecated with version": {
			parse: tags.ParseVersion,
			name:  "deprecated",
			body:  "3 Use getTags() instead",
			want:  map[string]string{"version": "3", "description": "Use getTags() instead"},
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			tag := tc.parse(tc.name, tc.body)
			require.NotNil(t, tag)
			assert.Equal(t, tc.name, tag.Name())
			assert.Equal(t, tc.body, tag.Body())

			ft, ok := tag.(docblock.FieldTag)
			require.True(t, ok, "%T is not a field tag", tag)
			assert.Equal(t, tc.want, ft.Fields())
		})
	}
}

func TestDefaultRegistry(t *testing.T) {
	t.Parallel()

	block, err := docblock.New(stringtest.Comment(
		"Provides the basic functionality for every static reflection class.",
		"",
		"@author  Mike van Riel <mike.vanriel@naenius.com>",
		"@param   string|Reflector $docblock A docblock comment (including asterisks)",
		"                                    or reflector supporting getDocComment.",
		"@throws  DocBlox_Reflection_Exception",
		"@return  void",
		"@todo    determine the exact format.",
	), docblock.WithRegistry(tags.DefaultRegistry()))
	require.NoError(t, err)

	got := block.Tags()
	require.Len(t, got, 5)

	assert.IsType(t, tags.AuthorTag{}, got[0])
	assert.IsType(t, tags.VariableTag{}, got[1])
	assert.IsType(t, tags.TypedTag{}, got[2])
	assert.IsType(t, tags.TypedTag{}, got[3])
	assert.IsType(t, docblock.GenericTag{}, got[4])

	param := got[1].(tags.VariableTag) //nolint:forcetypeassert // Checked above.
	assert.Equal(t, "string|Reflector", param.Type)
	assert.Equal(t, "$docblock", param.Variable)
	assert.Equal(t,
		"A docblock comment (including asterisks)\n"+
			"                                    or reflector supporting getDocComment.",
		param.Description)

	assert.Equal(t, []string{
		"author", "deprecated", "link", "param", "property", "property-read",
		"property-write", "return", "see", "since", "throws", "uses", "var", "version",
	}, tags.DefaultRegistry().Names())
}

func TestKinds(t *testing.T) {
	t.Parallel()

	kinds := tags.Kinds()

	assert.Equal(t, []string{
		tags.KindAuthor, tags.KindGeneric, tags.KindReference,
		tags.KindTyped, tags.KindVariable, tags.KindVersion,
	}, tags.KindNames())

	assert.Nil(t, kinds[tags.KindGeneric])

	for _, kind := range tags.KindNames() {
		if kind == tags.KindGeneric {
			continue
		}

		assert.NotNil(t, kinds[kind], kind)
	}
}
