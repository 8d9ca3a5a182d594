package main

import (
	"path/filepath"
	"strings"
)

// Generate renders the Go source for a validated table. source names the
// table in the generated header.
func Generate(t *RawTable, source string) (string, error) {
	data := fileData{
		Package: t.Package,
		Source:  filepath.Base(source),
	}
	for i := range t.Hosts {
		h := buildHost(&t.Hosts[i])
		if h.Register != nil {
			data.Register = true
		}
		data.Hosts = append(data.Hosts, h)
	}

	var b strings.Builder
	if err := templates.ExecuteTemplate(&b, "file", data); err != nil {
		return "", Error.New("template: %v", err)
	}
	return b.String(), nil
}

func buildHost(h *RawHostDef) hostData {
	out := hostData{Name: h.Name, Doc: h.Doc}
	for _, m := range h.Members {
		out.Members = append(out.Members, memberData{Name: m.Name, Width: m.Width})
		for i := range m.Fields {
			out.Fields = append(out.Fields, buildField(h.Name, m, &m.Fields[i]))
		}
	}
	if h.Address != nil {
		m := h.Members[0]
		out.Register = &registerData{
			Name:    h.Name + "Register",
			Host:    h.Name,
			Address: *h.Address,
			Member:  m.Name,
			Width:   m.Width,
		}
	}
	return out
}

func buildField(host string, m RawMemberDef, f *RawFieldDef) fieldData {
	// the table is validated, so the span always resolves
	span, _ := f.Span(m.Width)

	out := fieldData{
		Host:     host,
		Name:     f.Name,
		Tag:      host + f.Name,
		Member:   m.Name,
		Width:    m.Width,
		Type:     f.Type,
		Doc:      f.Doc,
		Bits:     strings.TrimSpace(f.Bits),
		Offset:   span.Offset,
		Length:   span.Length,
		Writable: f.Access == "rw",
		Try:      f.TryOutputConverter != "",
	}

	switch {
	case f.decoder() != "":
		out.Decode = f.decoder()
	case f.Type == "bool":
		out.Decode = "raw == 1"
	default:
		out.Decode = f.Type + "(raw)"
	}

	switch {
	case f.InputConverter != "":
		out.Encode = f.InputConverter
	case f.Type == "bool":
		out.Encode = "field.Boolean[" + m.Width + "]().Encode(v)"
	default:
		out.Encode = m.Width + "(v)"
	}

	return out
}
