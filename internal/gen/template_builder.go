package gen

import (
	"go/token"
	"strings"

	"github.com/emirpasic/gods/sets/linkedhashset"

	"builder-generator/internal/analyze"
	"builder-generator/internal/common"
	"builder-generator/internal/diagnostic"
	"builder-generator/internal/plan"
	"builder-generator/internal/shape"
)

// builderData holds everything the artifact templates need for one record.
type builderData struct {
	Record      string // record name, e.g. "Pair"
	RecordType  string // instantiated record, e.g. "Pair[K, V]"
	Builder     string // accumulator name, e.g. "PairBuilder"
	BuilderType string // instantiated accumulator, e.g. "PairBuilder[K, V]"
	TypeParams  string // declared type parameters, e.g. "[K comparable, V any]"
	Constructor string
	Runtime     string // local name of package field
	Errors      string // local name of package errors
	CollectAll  bool
	HasInit     bool
	Slots       []slotData
	Setters     []setterData
	Required    []finalData
	Finals      []finalData

	imports *importSet
}

// slotData is one accumulator field.
type slotData struct {
	Name string
	Type string
	Init string // initial value, empty for the zero value
}

// setterData is one generated setter method.
type setterData struct {
	Receiver string
	Method   string
	Param    string
	Body     string
	Doc      string
}

// finalData is one field of the record literal returned by Build.
type finalData struct {
	Field string
	Slot  string
	Expr  string
}

// method is a setter name together with the syntax that asked for it.
type method struct {
	name string
	pos  token.Pos
	end  token.Pos
}

// buildTemplateData lays out storage, setters and finalization for p. It
// fails on the first field that cannot be synthesized.
func (g *Generator) buildTemplateData(p *plan.RecordPlan) (*builderData, error) {
	rec := &p.Record
	opts := g.optionsFor(rec.Name)

	data := &builderData{
		Record:      rec.Name,
		RecordType:  rec.Name + analyze.TypeParamsUse(rec.TypeParams),
		Builder:     opts.Builder,
		BuilderType: opts.Builder + analyze.TypeParamsUse(rec.TypeParams),
		TypeParams:  analyze.TypeParamsDecl(rec.TypeParams),
		Constructor: opts.Constructor,
		CollectAll:  opts.Missing == MissingAll,
		imports:     newImportSet(rec.Imports),
	}

	if rec.TypeParams != nil {
		data.imports.useQualifiers(rec.TypeParams)
	}

	methods, err := g.methods(p)
	if err != nil {
		return nil, err
	}

	slots, err := slotNames(p, methods)
	if err != nil {
		return nil, err
	}

	for i := range p.Fields {
		f := &p.Fields[i]
		slot := slots[i]

		data.imports.useQualifiers(f.Type)

		switch f.Category {
		case plan.CategoryRequired:
			g.addRequired(data, f, slot)
		case plan.CategoryOptional:
			g.addOptional(data, f, slot)
		case plan.CategoryRepeated:
			g.addRepeated(data, f, slot)
		}
	}

	if len(data.Required) > 0 {
		data.Runtime = data.imports.require(g.runtimePath(), "builder")
		if data.CollectAll {
			data.Errors = data.imports.require("errors", "std")
		}
	}

	return data, nil
}

func (g *Generator) addRequired(data *builderData, f *plan.FieldPlan, slot string) {
	typ := analyze.TypeString(f.Type)

	data.Slots = append(data.Slots, slotData{Name: slot, Type: "*" + typ})
	data.Setters = append(data.Setters, setterData{
		Receiver: data.BuilderType,
		Method:   f.Name,
		Param:    typ,
		Body:     "b." + slot + " = &v",
		Doc:      "sets the required field " + f.Name + ".",
	})

	final := finalData{Field: f.Name, Slot: slot, Expr: "*b." + slot}
	data.Required = append(data.Required, final)
	data.Finals = append(data.Finals, final)
}

func (g *Generator) addOptional(data *builderData, f *plan.FieldPlan, slot string) {
	setter := setterData{
		Receiver: data.BuilderType,
		Method:   f.Name,
		Param:    analyze.TypeString(f.Shape.Inner),
		Doc:      "sets the optional field " + f.Name + ".",
	}

	if f.Shape.Form == shape.FormBuiltin {
		setter.Body = "b." + slot + " = &v"
	} else {
		setter.Body = "b." + slot + ".Set(v)"
	}

	data.Slots = append(data.Slots, slotData{Name: slot, Type: analyze.TypeString(f.Type)})
	data.Setters = append(data.Setters, setter)
	data.Finals = append(data.Finals, finalData{Field: f.Name, Slot: slot, Expr: "b." + slot})
}

func (g *Generator) addRepeated(data *builderData, f *plan.FieldPlan, slot string) {
	typ := analyze.TypeString(f.Type)
	slices := data.imports.require("slices", "std")

	data.HasInit = true
	data.Slots = append(data.Slots, slotData{Name: slot, Type: typ, Init: typ + "{}"})

	if !f.AppendIsSetter() {
		data.Setters = append(data.Setters, setterData{
			Receiver: data.BuilderType,
			Method:   f.Name,
			Param:    typ,
			Body:     "b." + slot + " = append(" + typ + "{}, v...)",
			Doc:      "replaces every item of " + f.Name + ".",
		})
	}

	data.Setters = append(data.Setters, setterData{
		Receiver: data.BuilderType,
		Method:   f.AppendName(),
		Param:    analyze.TypeString(f.Shape.Inner),
		Body:     "b." + slot + " = append(b." + slot + ", v)",
		Doc:      "appends one item to " + f.Name + ".",
	})

	data.Finals = append(data.Finals, finalData{
		Field: f.Name,
		Slot:  slot,
		Expr:  slices + ".Clone(b." + slot + ")",
	})
}

// methods checks that every field can be synthesized and that no two
// generated methods share a name. It returns the set of method names,
// Build included, in emission order.
func (g *Generator) methods(p *plan.RecordPlan) (*linkedhashset.Set, error) {
	set := linkedhashset.New("Build")

	for i := range p.Fields {
		f := &p.Fields[i]

		wanted, err := fieldMethods(f)
		if err != nil {
			return nil, diagnostic.WithContext(err, p.Name(), f.Name)
		}

		for _, m := range wanted {
			if set.Contains(m.name) {
				err := diagnostic.At(diagnostic.KindConflictingMember, m.pos, m.end,
					"method %s is generated more than once for %s", m.name, p.Name())
				if m.name == "Build" {
					err.Msg = "method name Build is reserved for the finalization step"
				}

				return nil, diagnostic.WithContext(err, p.Name(), f.Name)
			}

			set.Add(m.name)
		}
	}

	return set, nil
}

// fieldMethods lists the setters of one field.
func fieldMethods(f *plan.FieldPlan) ([]method, error) {
	self := method{name: f.Name, pos: f.Ident.Pos(), end: f.Ident.End()}

	if f.Category != plan.CategoryRepeated {
		return []method{self}, nil
	}

	if f.Shape.Kind != shape.Repeated {
		return nil, diagnostic.Errorf(diagnostic.KindExpectedRepeatedType, f.Type,
			"each directive requires a repeated type, as in Repeated[T] or []T; %s is declared as %s",
			f.Name, analyze.TypeString(f.Type))
	}

	if f.AppendIsSetter() {
		return []method{self}, nil
	}

	return []method{self, {name: f.Each.Name, pos: f.Each.Pos, end: f.Each.End}}, nil
}

// slotNames picks an accumulator field name per field: the lower-first field
// name, with a Val suffix when that is a keyword or a method name.
func slotNames(p *plan.RecordPlan, methods *linkedhashset.Set) ([]string, error) {
	taken := linkedhashset.New()
	out := make([]string, 0, len(p.Fields))

	for i := range p.Fields {
		f := &p.Fields[i]
		base := common.LowerFirst(f.Name)

		slot := ""
		for _, candidate := range []string{base, base + "Val"} {
			if token.IsKeyword(candidate) || methods.Contains(candidate) || taken.Contains(candidate) {
				continue
			}

			slot = candidate
			break
		}

		if slot == "" {
			err := diagnostic.Errorf(diagnostic.KindConflictingMember, f.Ident,
				"no storage name left for %s: %s and %sVal are taken", f.Name, base, base)
			return nil, diagnostic.WithContext(err, p.Name(), f.Name)
		}

		taken.Add(slot)
		out = append(out, slot)
	}

	return out, nil
}

// optionsFor resolves the naming and missing-field options of a record.
func (g *Generator) optionsFor(record string) RecordOptions {
	opts := g.config.Records[record]

	if opts.Builder == "" {
		opts.Builder = record + "Builder"
	}

	if opts.Constructor == "" {
		opts.Constructor = constructorName(opts.Builder)
	}

	if opts.Missing == "" {
		opts.Missing = g.config.Missing
	}

	if opts.Missing == "" {
		opts.Missing = MissingFirst
	}

	return opts
}

// constructorName derives the factory name: NewFooBuilder for FooBuilder
// and newFooBuilder for fooBuilder.
func constructorName(builder string) string {
	if token.IsExported(builder) {
		return "New" + builder
	}

	return "new" + strings.ToUpper(builder[:1]) + builder[1:]
}

func (g *Generator) runtimePath() string {
	if g.config.RuntimePath == "" {
		return DefaultRuntimePath
	}

	return g.config.RuntimePath
}
