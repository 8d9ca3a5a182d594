package main

import (
	"fmt"
	"strings"
	"text/template"
)

// funcMap provides helper functions available to all templates.
var funcMap = template.FuncMap{
	"comment": comment,
	"hex":     func(v uint64) string { return fmt.Sprintf("%#x", v) },
}

// templates holds all parsed code generation templates.
var templates = template.Must(template.New("").Funcs(funcMap).Parse(
	fileTmpl +
		hostTmpl +
		fieldTmpl +
		registerTmpl,
))

// comment renders text as a block of line comments, one per line of text.
func comment(text string) string {
	text = strings.TrimSpace(text)
	if text == "" {
		return ""
	}
	var b strings.Builder
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimRight(line, " \t")
		if line == "" {
			b.WriteString("//\n")
			continue
		}
		b.WriteString("// ")
		b.WriteString(line)
		b.WriteByte('\n')
	}
	return b.String()
}

// --- Template data types ---

// fileData holds pre-computed data for one generated file.
type fileData struct {
	Package  string
	Source   string
	Hosts    []hostData
	Register bool // any host emits a register type
}

type hostData struct {
	Name     string
	Doc      string
	Members  []memberData
	Fields   []fieldData
	Register *registerData
}

type memberData struct {
	Name  string
	Width string
}

type registerData struct {
	Name    string
	Host    string
	Address uint64
	Member  string
	Width   string
}

type fieldData struct {
	Host     string
	Name     string
	Tag      string
	Member   string
	Width    string
	Type     string
	Doc      string
	Bits     string
	Offset   uint
	Length   uint
	Writable bool
	Try      bool
	Decode   string // expression of raw, or of raw returning (value, error) when Try
	Encode   string // expression of v
}

// --- Template definitions ---

const fileTmpl = `{{define "file"}}// Code generated by bitfieldgen from {{.Source}}. DO NOT EDIT.

package {{.Package}}

import (
	"github.com/zeebo/bitfield"
	"github.com/zeebo/bitfield/field"
{{- if .Register}}
	"github.com/zeebo/bitfield/register"
{{- end}}
)
{{range .Hosts}}
{{template "host" .}}
{{- end}}
{{end}}`

const hostTmpl = `{{define "host"}}
{{- if .Doc}}{{comment .Doc}}{{else}}// {{.Name}} holds the storage words of its fields.
{{end -}}
type {{.Name}} struct {
{{- range .Members}}
	{{.Name}} {{.Width}}
{{- end}}
}

var (
{{- range .Fields}}
{{- if .Writable}}
	_ field.Writer[{{.Host}}, {{.Type}}] = {{.Tag}}{}
{{- else}}
	_ field.Reader[{{.Host}}, {{.Type}}] = {{.Tag}}{}
{{- end}}
{{- if .Try}}
	_ field.TryReader[{{.Host}}, {{.Type}}] = {{.Tag}}{}
{{- end}}
{{- end}}
)
{{range .Fields}}
{{template "field" .}}
{{- end}}
{{- if .Register}}
{{template "register" .Register}}
{{- end}}
{{end}}`

const fieldTmpl = `{{define "field"}}
// {{.Tag}} is the {{.Name}} field of {{.Host}}, bits {{.Bits}} of {{.Member}}.
{{if .Doc}}//
{{comment .Doc}}{{end -}}
type {{.Tag}} struct{}

// Span is the bits of {{.Member}} the field occupies.
func ({{.Tag}}) Span() bitfield.Span { return bitfield.Span{Offset: {{.Offset}}, Length: {{.Length}}} }
{{if .Try}}
// TryRead decodes the field, returning a field.ConversionError if the bits
// do not hold a valid {{.Type}}.
func (f {{.Tag}}) TryRead(h *{{.Host}}) ({{.Type}}, error) {
	raw := bitfield.OfSpan(h.{{.Member}}, f.Span()).Read()
	v, err := {{.Decode}}
	if err != nil {
		return v, field.ConversionError.Wrap(err)
	}
	return v, nil
}

// Read decodes the field. It panics if the bits do not hold a valid {{.Type}}.
func (f {{.Tag}}) Read(h *{{.Host}}) {{.Type}} {
	v, err := f.TryRead(h)
	if err != nil {
		panic(err)
	}
	return v
}
{{else}}
// Read decodes the field.
func (f {{.Tag}}) Read(h *{{.Host}}) {{.Type}} {
	raw := bitfield.OfSpan(h.{{.Member}}, f.Span()).Read()
	return {{.Decode}}
}
{{end}}
{{- if .Writable}}
// Write encodes v into the field, leaving the other bits of {{.Member}} alone.
func (f {{.Tag}}) Write(h *{{.Host}}, v {{.Type}}) {
	h.{{.Member}} = bitfield.OfSpan(h.{{.Member}}, f.Span()).Write({{.Encode}})
}
{{end}}
// {{.Name}} reads the {{.Name}} field.
func (h *{{.Host}}) {{.Name}}() {{.Type}} { return {{.Tag}}{}.Read(h) }
{{- if .Writable}}

// Set{{.Name}} writes the {{.Name}} field and returns h for chaining.
func (h *{{.Host}}) Set{{.Name}}(v {{.Type}}) *{{.Host}} {
	{{.Tag}}{}.Write(h, v)
	return h
}
{{- end}}
{{end}}`

const registerTmpl = `{{define "register"}}
// {{.Name}} is the {{.Host}} register at address {{hex .Address}}.
type {{.Name}} struct{}

var _ register.Register[{{.Width}}, {{.Host}}] = {{.Name}}{}

func ({{.Name}}) Address() uint64 { return {{hex .Address}} }

func ({{.Name}}) FromRaw(raw {{.Width}}) {{.Host}} { return {{.Host}}{ {{- .Member}}: raw} }

func ({{.Name}}) ToRaw(h {{.Host}}) {{.Width}} { return h.{{.Member}} }
{{end}}`
