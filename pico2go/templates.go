package pico2go

import "text/template"

var (
	tmplFuncs = template.FuncMap{
		"toGoType":     toGoType,
		"varName":      varName,
		"funcName":     funcName,
		"formalParams": formalParams,
		"comment":      comment,
		"toExpr":       toExpr,
		"toTyped":      toTyped,
		"toIndex":      toIndex,
		"toCondition":  toCondition,
		"toStatement":  toStatement,
		"unhandled":    unhandled,
	}
	transpilerTemplate = template.Must(template.New("").Funcs(tmplFuncs).Parse(sourceTemplate))
)

const sourceTemplate = `
{{- define "main" -}}
{{ with .Header }}{{ comment . }}
{{ end -}}
package main

import (
	system "{{ .Runtime }}"
)

var _ = system.Print

{{ with .Program.Globals -}}
var (
{{- range $var := . }}
	{{ varName $var }} {{ toGoType $var.Type }}
{{- end }}
)
{{ end }}

{{- range $func := .Program.Functions }}
{{ template "function" $func }}
{{ end }}

// program {{ .Program.Name }}
func main() {
	{{- template "statements" .Program.Statements }}
}
{{ end }}

{{- define "function" }}
func {{ funcName . }}({{ formalParams .Params }}){{ if .ReturnType }} (picoResult {{ toGoType .ReturnType }}){{ end }} {
	{{- range $var := .Locals }}
	var {{ varName $var }} {{ toGoType $var.Type }}
	_ = {{ varName $var }}
	{{- end }}
	{{- template "statements" .Statements }}
	{{- if .ReturnType }}
	return
	{{- end }}
}
{{- end }}

{{- define "statements" }}
	{{- range $statement := . }}
		{{- template "statement" $statement }}
	{{- end -}}
{{ end }}

{{- define "statement" }}
	{{- if eq .Type 0 }}{{/* assignment */}}
	{{ varName .Variable }} = {{ toTyped .Value .Variable.Type }}
	{{- else if eq .Type 1 }}{{/* index assignment */}}
	{{ toExpr .Container }}.Set({{ toIndex .Container .Index }}, {{ toExpr .Value }})
	{{- else if eq .Type 2 }}{{/* expression */}}
	{{ toStatement .Expr }}
	{{- else if eq .Type 3 }}{{/* if */}}
	if {{ toCondition .Condition }} {
		{{- template "statements" .Statements }}
	{{- range $elseIf := .ElseIfs }}
	} else if {{ toCondition $elseIf.Condition }} {
		{{- template "statements" $elseIf.Statements }}
	{{- end }}
	{{- if .Else }}
	} else {
		{{- template "statements" .Else }}
	{{- end }}
	}
	{{- else if eq .Type 4 }}{{/* for */}}
	{{ varName .Variable }} = {{ toTyped .Initial .Variable.Type }}
	for ; system.ForCond({{ varName .Variable }}, {{ toTyped .Final .Variable.Type }}, {{ toTyped .Step .Variable.Type }}); {{ varName .Variable }} += {{ toTyped .Step .Variable.Type }} {
		{{- template "statements" .Statements }}
	}
	{{- else if eq .Type 5 }}{{/* while */}}
	for {{ toCondition .Condition }} {
		{{- template "statements" .Statements }}
	}
	{{- else if eq .Type 6 }}{{/* return */}}
	{{- if .Value }}
	return {{ toTyped .Value .Function.ReturnType }}
	{{- else }}
	return
	{{- end }}
	{{- else }}
	{{ unhandled "statement type" .Type }}
	{{- end }}
{{- end }}
`
