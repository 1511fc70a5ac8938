package shape

import (
	"go/ast"
	"go/parser"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"builder-generator/internal/analyze"
	"builder-generator/internal/diagnostic"
)

func mustParseType(t *testing.T, src string) ast.Expr {
	t.Helper()

	expr, err := parser.ParseExpr(src)
	require.NoError(t, err)

	return expr
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name    string
		src     string
		kind    Kind
		form    Form
		inner   string
		wrapper string
	}{
		{name: "basic", src: "int64", kind: Plain, inner: "int64"},
		{name: "qualified plain", src: "time.Time", kind: Plain, inner: "time.Time"},
		{name: "optional", src: "Optional[string]", kind: Optional, form: FormWrapper, inner: "string", wrapper: "Optional"},
		{name: "qualified optional", src: "field.Optional[int]", kind: Optional, form: FormWrapper, inner: "int", wrapper: "Optional"},
		{name: "repeated", src: "Repeated[string]", kind: Repeated, form: FormWrapper, inner: "string", wrapper: "Repeated"},
		{name: "qualified repeated", src: "field.Repeated[*Node]", kind: Repeated, form: FormWrapper, inner: "*Node", wrapper: "Repeated"},
		{name: "parenthesized", src: "(Optional[bool])", kind: Optional, form: FormWrapper, inner: "bool", wrapper: "Optional"},
		{name: "nested keeps inner wrapper", src: "Repeated[Optional[int]]", kind: Repeated, form: FormWrapper, inner: "Optional[int]", wrapper: "Repeated"},
		{name: "optional of repeated", src: "Optional[Repeated[int]]", kind: Optional, form: FormWrapper, inner: "Repeated[int]", wrapper: "Optional"},
		{name: "other generic", src: "Box[string]", kind: Plain, inner: "Box[string]"},
		{name: "other generic two args", src: "Pair[string, int]", kind: Plain, inner: "Pair[string, int]"},
		{name: "slice", src: "[]string", kind: Repeated, form: FormBuiltin, inner: "string"},
		{name: "array stays plain", src: "[4]byte", kind: Plain, inner: "[4]byte"},
		{name: "pointer stays plain by default", src: "*Node", kind: Plain, inner: "*Node"},
		{name: "map", src: "map[string]int", kind: Plain, inner: "map[string]int"},
		{name: "func", src: "func() error", kind: Plain, inner: "func() error"},
	}

	c := NewClassifier(DefaultVocabulary())

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			declared := mustParseType(t, tt.src)

			s, err := c.Classify(declared)
			require.NoError(t, err)

			assert.Equal(t, tt.kind, s.Kind)
			assert.Equal(t, tt.form, s.Form)
			assert.Equal(t, tt.inner, analyze.TypeString(s.Inner))
			assert.Equal(t, tt.wrapper, s.Wrapper)
			assert.Same(t, declared, s.Type)
		})
	}
}

func TestClassify_MalformedWrapper(t *testing.T) {
	tests := []struct {
		src  string
		want string
	}{
		{src: "Optional", want: "Optional requires exactly one type argument, as in Optional[T]"},
		{src: "field.Repeated", want: "Repeated requires exactly one type argument, as in Repeated[T]"},
		{src: "Optional[string, int]", want: "Optional takes exactly one type argument, got 2 in Optional[string, int]"},
		{src: "field.Repeated[a, b, c]", want: "Repeated takes exactly one type argument, got 3 in field.Repeated[a, b, c]"},
	}

	c := NewClassifier(DefaultVocabulary())

	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			declared := mustParseType(t, tt.src)

			_, err := c.Classify(declared)
			require.Error(t, err)
			assert.Equal(t, diagnostic.KindMalformedWrapper, diagnostic.KindOf(err))
			assert.EqualError(t, err, tt.want)

			var gerr *diagnostic.Error
			require.ErrorAs(t, err, &gerr)
			assert.Equal(t, declared.Pos(), gerr.Pos)
			assert.Equal(t, declared.End(), gerr.End)
		})
	}
}

func TestClassify_CustomVocabulary(t *testing.T) {
	c := NewClassifier(Vocabulary{
		Optional:         []string{"Maybe", "Option"},
		Repeated:         []string{"List"},
		OptionalPointers: true,
	})

	s, err := c.Classify(mustParseType(t, "Maybe[int]"))
	require.NoError(t, err)
	assert.Equal(t, Optional, s.Kind)

	s, err = c.Classify(mustParseType(t, "opt.Option[int]"))
	require.NoError(t, err)
	assert.Equal(t, Optional, s.Kind)

	s, err = c.Classify(mustParseType(t, "List[int]"))
	require.NoError(t, err)
	assert.Equal(t, Repeated, s.Kind)

	// Default names are no longer recognized.
	s, err = c.Classify(mustParseType(t, "Optional[int]"))
	require.NoError(t, err)
	assert.Equal(t, Plain, s.Kind)

	s, err = c.Classify(mustParseType(t, "*Node"))
	require.NoError(t, err)
	assert.Equal(t, Optional, s.Kind)
	assert.Equal(t, FormBuiltin, s.Form)
	assert.Equal(t, "Node", analyze.TypeString(s.Inner))

	// Slices are plain when RepeatedSlices is off.
	s, err = c.Classify(mustParseType(t, "[]int"))
	require.NoError(t, err)
	assert.Equal(t, Plain, s.Kind)
}

func TestClassify_Idempotent(t *testing.T) {
	c := NewClassifier(DefaultVocabulary())
	declared := mustParseType(t, "Repeated[Repeated[int]]")

	first, err := c.Classify(declared)
	require.NoError(t, err)

	second, err := c.Classify(declared)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "plain", Plain.String())
	assert.Equal(t, "optional", Optional.String())
	assert.Equal(t, "repeated", Repeated.String())
	assert.Equal(t, "unknown", Kind(9).String())
}
