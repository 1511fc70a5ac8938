package plan

import (
	"gopkg.in/yaml.v3"

	"builder-generator/internal/analyze"
)

// ExportedRecord is the YAML view of a RecordPlan.
type ExportedRecord struct {
	Record string          `yaml:"record"`
	File   string          `yaml:"file,omitempty"`
	Fields []ExportedField `yaml:"fields"`
}

// ExportedField is the YAML view of a FieldPlan.
type ExportedField struct {
	Name     string `yaml:"name"`
	Category string `yaml:"category"`
	Type     string `yaml:"type"`
	Inner    string `yaml:"inner,omitempty"`
	Each     string `yaml:"each,omitempty"`
}

// Export converts plans into their YAML view, for reviewing what the
// generator will emit.
func Export(plans []*RecordPlan) []ExportedRecord {
	out := make([]ExportedRecord, 0, len(plans))

	for _, p := range plans {
		rec := ExportedRecord{
			Record: p.Name() + analyze.TypeParamsDecl(p.Record.TypeParams),
			File:   p.Record.Filename,
			Fields: make([]ExportedField, 0, len(p.Fields)),
		}

		for i := range p.Fields {
			f := &p.Fields[i]

			ef := ExportedField{
				Name:     f.Name,
				Category: f.Category.String(),
				Type:     analyze.TypeString(f.Type),
				Each:     f.AppendName(),
			}
			if inner := f.Inner(); inner != nil && f.Category != CategoryRequired {
				ef.Inner = analyze.TypeString(inner)
			}

			rec.Fields = append(rec.Fields, ef)
		}

		out = append(out, rec)
	}

	return out
}

// ExportYAML renders plans as a YAML document.
func ExportYAML(plans []*RecordPlan) ([]byte, error) {
	return yaml.Marshal(Export(plans))
}
