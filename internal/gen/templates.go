package gen

import "text/template"

var accumulatorTemplate = template.Must(template.New("accumulator").Parse(
	`// {{.Builder}} builds {{.Record}} values. Create one with {{.Constructor}}.
type {{.Builder}}{{.TypeParams}} struct {
{{- range .Slots}}
	{{.Name}} {{.Type}}
{{- end}}
}
`))

var factoryTemplate = template.Must(template.New("factory").Parse(
	`// {{.Constructor}} returns an empty {{.Builder}}.
func {{.Constructor}}{{.TypeParams}}() *{{.BuilderType}} {
{{- if .HasInit}}
	return &{{.BuilderType}}{
{{- range .Slots}}{{if .Init}}
		{{.Name}}: {{.Init}},
{{- end}}{{end}}
	}
{{- else}}
	return &{{.BuilderType}}{}
{{- end}}
}
`))

var setterTemplate = template.Must(template.New("setter").Parse(
	`// {{.Method}} {{.Doc}}
func (b *{{.Receiver}}) {{.Method}}(v {{.Param}}) *{{.Receiver}} {
	{{.Body}}
	return b
}
`))

var buildTemplate = template.Must(template.New("build").Parse(
	`// Build returns the {{.Record}} accumulated so far.
{{- if not .Required}} It never fails.
{{- else if .CollectAll}} It fails with every required field that was never set.
{{- else}} It fails with the first required field that was never set.
{{- end}}
func (b *{{.BuilderType}}) Build() ({{.RecordType}}, error) {
{{- if .Required}}
{{- if .CollectAll}}
	var errs []error
{{- range .Required}}
	if b.{{.Slot}} == nil {
		errs = append(errs, {{$.Runtime}}.Missing("{{$.Record}}", "{{.Field}}"))
	}
{{- end}}
	if len(errs) > 0 {
		return {{.RecordType}}{}, {{.Errors}}.Join(errs...)
	}
{{- else}}
{{- range .Required}}
	if b.{{.Slot}} == nil {
		return {{$.RecordType}}{}, {{$.Runtime}}.Missing("{{$.Record}}", "{{.Field}}")
	}
{{- end}}
{{- end}}
{{end}}
	return {{.RecordType}}{
{{- range .Finals}}
		{{.Field}}: {{.Expr}},
{{- end}}
	}, nil
}
`))

var fileTemplate = template.Must(template.New("file").Parse(
	`// Code generated by builder-generator. DO NOT EDIT.

package {{.PackageName}}
{{if .Imports}}
import (
{{range .Imports}}	{{if .Name}}{{.Name}} {{end}}"{{.Path}}"
{{end}})
{{end}}
{{.Accumulator}}
{{.Factory}}
{{- range .Setters}}
{{.}}
{{- end}}
{{.Build}}`))
