package plan

import (
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"builder-generator/internal/analyze"
	"builder-generator/internal/diagnostic"
	"builder-generator/internal/shape"
)

func newTestPlanner() *Planner {
	return NewPlanner(shape.NewClassifier(shape.DefaultVocabulary()))
}

func parseRecord(t *testing.T, src string) (analyze.Record, *analyze.Package) {
	t.Helper()

	pkg, err := analyze.ParseSource("rec.go", src)
	require.NoError(t, err)
	require.NotEmpty(t, pkg.Records)

	return pkg.Records[0], pkg
}

func TestPlan_Categories(t *testing.T) {
	rec, _ := parseRecord(t, `package p

type Entry struct {
	ID int64
	//builder:each="Tag"
	Tags field.Repeated[string]
	Note field.Optional[string]
	Raw  field.Repeated[int]
	//builder:each="Item"
	Items []string
	Lines []string
	Wrapped field.Optional[field.Repeated[int]]
}
`)

	p, err := newTestPlanner().Plan(rec)
	require.NoError(t, err, spew.Sdump(err))
	require.Len(t, p.Fields, 7)
	assert.Equal(t, "Entry", p.Name())

	tests := []struct {
		name     string
		category Category
		typ      string
		inner    string
		each     string
	}{
		{name: "ID", category: CategoryRequired, typ: "int64"},
		{name: "Tags", category: CategoryRepeated, typ: "field.Repeated[string]", inner: "string", each: "Tag"},
		{name: "Note", category: CategoryOptional, typ: "field.Optional[string]", inner: "string"},
		// Repeated shape without a directive stays a single required value.
		{name: "Raw", category: CategoryRequired, typ: "field.Repeated[int]", inner: "int"},
		{name: "Items", category: CategoryRepeated, typ: "[]string", inner: "string", each: "Item"},
		{name: "Lines", category: CategoryRequired, typ: "[]string", inner: "string"},
		{name: "Wrapped", category: CategoryOptional, typ: "field.Optional[field.Repeated[int]]", inner: "field.Repeated[int]"},
	}

	for i, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := p.Fields[i]
			assert.Equal(t, tt.name, f.Name)
			assert.Equal(t, tt.category, f.Category)
			assert.Equal(t, tt.typ, analyze.TypeString(f.Type))
			assert.Equal(t, tt.each, f.AppendName())

			if tt.inner == "" {
				assert.Nil(t, f.Inner())
			} else {
				assert.Equal(t, tt.inner, analyze.TypeString(f.Inner()))
			}
		})
	}
}

func TestPlan_DirectiveOnNonRepeatedShapeIsDeferred(t *testing.T) {
	rec, _ := parseRecord(t, `package p

type R struct {
	//builder:each="N"
	N int64
}
`)

	p, err := newTestPlanner().Plan(rec)
	require.NoError(t, err)
	require.Len(t, p.Fields, 1)

	f := p.Fields[0]
	assert.Equal(t, CategoryRepeated, f.Category)
	assert.Equal(t, shape.Plain, f.Shape.Kind)
	assert.True(t, f.AppendIsSetter())
}

func TestPlan_AppendIsSetter(t *testing.T) {
	rec, _ := parseRecord(t, `package p

type R struct {
	//builder:each="Env"
	Env []string
	//builder:each="Arg"
	Args []string
	Plain string
}
`)

	p, err := newTestPlanner().Plan(rec)
	require.NoError(t, err)

	assert.True(t, p.Fields[0].AppendIsSetter())
	assert.False(t, p.Fields[1].AppendIsSetter())
	assert.False(t, p.Fields[2].AppendIsSetter())
}

func TestPlan_MultiNameFields(t *testing.T) {
	rec, _ := parseRecord(t, `package p

type R struct {
	First, Last string
	A, B field.Optional[int]
}
`)

	p, err := newTestPlanner().Plan(rec)
	require.NoError(t, err)

	var names []string
	for _, f := range p.Fields {
		names = append(names, f.Name+":"+f.Category.String())
	}
	assert.Equal(t, []string{"First:Required", "Last:Required", "A:Optional", "B:Optional"}, names)
}

func TestPlan_Errors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		kind diagnostic.Kind
		msg  string
		line int
	}{
		{
			name: "empty record",
			src:  "package p\n\ntype R struct{}\n",
			kind: diagnostic.KindEmptyRecord,
			msg:  "R: record has no fields",
			line: 3,
		},
		{
			name: "embedded field",
			src:  "package p\n\ntype R struct {\n\tA int\n\tBase\n}\n",
			kind: diagnostic.KindUnsupportedField,
			msg:  "R: embedded field Base is not supported; give it a name",
			line: 5,
		},
		{
			name: "malformed wrapper",
			src:  "package p\n\ntype R struct {\n\tA int\n\tB Optional\n}\n",
			kind: diagnostic.KindMalformedWrapper,
			msg:  "R.B: Optional requires exactly one type argument, as in Optional[T]",
			line: 5,
		},
		{
			name: "malformed annotation",
			src:  "package p\n\ntype R struct {\n\t//builder:each=5\n\tA []int\n}\n",
			kind: diagnostic.KindMalformedAnnotation,
			msg:  "R.A: value of each must be a string literal",
			line: 4,
		},
		{
			name: "duplicate annotation",
			src:  "package p\n\ntype R struct {\n\t//builder:each=\"x\"\n\t//builder:each=\"x\"\n\tA []int\n}\n",
			kind: diagnostic.KindDuplicateAnnotation,
			msg:  "R.A: duplicate //builder directive; a field takes at most one",
			line: 5,
		},
		{
			name: "annotation error wins over wrapper error",
			src:  "package p\n\ntype R struct {\n\t//builder:each=5\n\tA Repeated\n}\n",
			kind: diagnostic.KindMalformedAnnotation,
			msg:  "R.A: value of each must be a string literal",
			line: 4,
		},
		{
			name: "first failing field wins",
			src:  "package p\n\ntype R struct {\n\tA Optional\n\tB Repeated\n}\n",
			kind: diagnostic.KindMalformedWrapper,
			msg:  "R.A: Optional requires exactly one type argument, as in Optional[T]",
			line: 4,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, pkg := parseRecord(t, tt.src)

			p, err := newTestPlanner().Plan(rec)
			require.Error(t, err)
			assert.Nil(t, p)
			assert.Equal(t, tt.kind, diagnostic.KindOf(err))
			assert.EqualError(t, err, tt.msg)

			var gerr *diagnostic.Error
			require.ErrorAs(t, err, &gerr)
			assert.Equal(t, tt.line, gerr.Position(pkg.Fset).Line)
		})
	}
}
