package plan

import (
	"builder-generator/internal/analyze"
	"builder-generator/internal/diagnostic"
	"builder-generator/internal/directive"
	"builder-generator/internal/shape"
)

// Planner builds record plans. It keeps no state between calls beyond its
// classifier, so one Planner may serve many records.
type Planner struct {
	classifier *shape.Classifier
}

// NewPlanner creates a Planner classifying types with c.
func NewPlanner(c *shape.Classifier) *Planner {
	return &Planner{classifier: c}
}

// Plan plans every field of rec in order and stops at the first error.
// Errors carry the record and field names.
func (p *Planner) Plan(rec analyze.Record) (*RecordPlan, error) {
	if len(rec.Fields) == 0 {
		err := diagnostic.Errorf(diagnostic.KindEmptyRecord, &rec, "record has no fields")
		return nil, diagnostic.WithContext(err, rec.Name, "")
	}

	out := &RecordPlan{
		Record: rec,
		Fields: make([]FieldPlan, 0, len(rec.Fields)),
	}

	for _, f := range rec.Fields {
		fp, err := p.PlanField(f)
		if err != nil {
			return nil, diagnostic.WithContext(err, rec.Name, f.Ident())
		}

		out.Fields = append(out.Fields, fp)
	}

	return out, nil
}

// PlanField categorizes a single field.
func (p *Planner) PlanField(f analyze.FieldDecl) (FieldPlan, error) {
	if f.Embedded() {
		return FieldPlan{}, diagnostic.Errorf(diagnostic.KindUnsupportedField, f.Type,
			"embedded field %s is not supported; give it a name", analyze.TypeString(f.Type))
	}

	each, err := directive.Parse(f.Annotations)
	if err != nil {
		return FieldPlan{}, err
	}

	s, err := p.classifier.Classify(f.Type)
	if err != nil {
		return FieldPlan{}, err
	}

	fp := FieldPlan{
		Name:  f.Name.Name,
		Ident: f.Name,
		Type:  f.Type,
		Shape: s,
	}

	switch {
	case each != nil:
		// Shape is checked during synthesis, where the per-item setter needs it.
		fp.Category = CategoryRepeated
		fp.Each = each
	case s.Kind == shape.Optional:
		fp.Category = CategoryOptional
	default:
		fp.Category = CategoryRequired
	}

	return fp, nil
}
