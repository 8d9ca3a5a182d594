package main

import (
	"go/token"
	"os"
	"strings"

	"github.com/zeebo/bitfield"
	"github.com/zeebo/errs"
	"gopkg.in/yaml.v3"
)

// Error is the class of errors reported for bad field tables.
var Error = errs.Class("bitfieldgen")

// RawTable is a field table loaded from YAML.
type RawTable struct {
	Package string       `yaml:"package"`
	Hosts   []RawHostDef `yaml:"hosts"`
}

// RawHostDef is a host struct and the storage words it holds.
type RawHostDef struct {
	Name    string         `yaml:"name"`
	Doc     string         `yaml:"doc"`
	Address *uint64        `yaml:"address"` // Optional: emits a register type
	Members []RawMemberDef `yaml:"members"`
}

// RawMemberDef is one storage word of a host.
type RawMemberDef struct {
	Name   string        `yaml:"name"`
	Width  string        `yaml:"width"` // "uint8", "uint16", "uint32", "uint64", "uint"
	Fields []RawFieldDef `yaml:"fields"`
}

// RawFieldDef is one field bound to a storage word.
type RawFieldDef struct {
	Name               string `yaml:"name"`
	Bits               string `yaml:"bits"`   // "3", "4..=7", "1..3", "2..", "..4", "..=4", ".."
	Access             string `yaml:"access"` // "ro", "rw"
	Type               string `yaml:"type"`
	Doc                string `yaml:"doc"`
	InputConverter     string `yaml:"input_converter"`      // expression of v, the value
	OutputConverter    string `yaml:"output_converter"`     // expression of raw, the bits
	TryOutputConverter string `yaml:"try_output_converter"` // expression of raw returning (value, error)
}

// widths maps the supported storage word types to their size in bits. A uint
// is checked as 32 bits so the generated code works on every platform, not
// just the one running the generator.
var widths = map[string]uint{
	"uint8":  8,
	"uint16": 16,
	"uint32": 32,
	"uint64": 64,
	"uint":   32,
}

// ParseTable parses and validates a field table from YAML bytes.
func ParseTable(data []byte) (*RawTable, error) {
	var table RawTable
	if err := yaml.Unmarshal(data, &table); err != nil {
		return nil, Error.New("parsing field table: %v", err)
	}
	if err := table.Validate(); err != nil {
		return nil, err
	}
	return &table, nil
}

// LoadTable loads and parses a field table from a file.
func LoadTable(path string) (*RawTable, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, Error.Wrap(err)
	}
	return ParseTable(data)
}

// Validate checks the table for everything that would otherwise only show up
// as a compile error in the generated code.
func (t *RawTable) Validate() error {
	if !token.IsIdentifier(t.Package) {
		return Error.New("invalid package name %q", t.Package)
	}
	if len(t.Hosts) == 0 {
		return Error.New("no hosts in table")
	}

	// hosts, field tags and register types all share the package namespace
	// along with the packages the generated code imports
	types := map[string]string{
		"bitfield": "import",
		"field":    "import",
		"register": "import",
	}
	claim := func(name, what string) error {
		if prev, ok := types[name]; ok {
			return Error.New("type %s of %s collides with %s", name, what, prev)
		}
		types[name] = what
		return nil
	}

	hosts := make(map[string]bool)
	for _, h := range t.Hosts {
		if !token.IsIdentifier(h.Name) {
			return Error.New("invalid host name %q", h.Name)
		}
		if hosts[h.Name] {
			return Error.New("duplicated host %s", h.Name)
		}
		hosts[h.Name] = true

		if err := h.validate(); err != nil {
			return err
		}

		if err := claim(h.Name, "host "+h.Name); err != nil {
			return err
		}
		if h.Address != nil {
			if err := claim(h.Name+"Register", "register of "+h.Name); err != nil {
				return err
			}
		}
		for _, m := range h.Members {
			for _, f := range m.Fields {
				if err := claim(h.Name+f.Name, "field "+h.Name+"."+f.Name); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

func (h *RawHostDef) validate() error {
	if len(h.Members) == 0 {
		return Error.New("host %s has no members", h.Name)
	}
	if h.Address != nil && len(h.Members) != 1 {
		return Error.New("host %s has an address but %d members", h.Name, len(h.Members))
	}

	// every member and every generated method shares the host's namespace
	names := make(map[string]string)
	claim := func(name, what string) error {
		if prev, ok := names[name]; ok {
			return Error.New("%s %s.%s collides with %s", what, h.Name, name, prev)
		}
		names[name] = what
		return nil
	}

	for _, m := range h.Members {
		if !token.IsIdentifier(m.Name) {
			return Error.New("invalid member name %q on host %s", m.Name, h.Name)
		}
		if err := claim(m.Name, "member"); err != nil {
			return err
		}
		if _, ok := widths[m.Width]; !ok {
			return Error.New("unsupported width %q on %s.%s", m.Width, h.Name, m.Name)
		}
	}

	for _, m := range h.Members {
		for _, f := range m.Fields {
			if err := f.validate(h.Name, m); err != nil {
				return err
			}
			if err := claim(f.Name, "field"); err != nil {
				return err
			}
			if f.Access == "rw" {
				if err := claim("Set"+f.Name, "setter"); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

func (f *RawFieldDef) validate(host string, m RawMemberDef) error {
	if !token.IsIdentifier(f.Name) {
		return Error.New("invalid field name %q on %s.%s", f.Name, host, m.Name)
	}
	where := host + "." + f.Name

	switch f.Access {
	case "ro", "rw":
	case "":
		return Error.New("field %s has no access", where)
	default:
		return Error.New(`field %s has invalid access %q, want "ro" or "rw"`, where, f.Access)
	}

	if strings.TrimSpace(f.Type) == "" {
		return Error.New("field %s has no type", where)
	}

	span, err := f.Span(m.Width)
	if err != nil {
		return Error.New("field %s: %v", where, err)
	}

	if f.OutputConverter != "" && f.TryOutputConverter != "" {
		return Error.New("field %s has both output_converter and try_output_converter", where)
	}
	if f.InputConverter != "" && f.Access == "ro" {
		return Error.New("field %s is read only but has an input_converter", where)
	}
	if f.Type == "bool" && span.Length != 1 && f.decoder() == "" {
		return Error.New("field %s is a bool over %d bits without an output_converter", where, span.Length)
	}
	return nil
}

// Span parses the bits of the field against the member width.
func (f *RawFieldDef) Span(width string) (bitfield.Span, error) {
	if strings.TrimSpace(f.Bits) == "" {
		return bitfield.Span{}, Error.New("no bits")
	}
	r, err := bitfield.ParseRange(f.Bits)
	if err != nil {
		return bitfield.Span{}, err
	}
	return r.Check(widths[width])
}

func (f *RawFieldDef) decoder() string {
	if f.OutputConverter != "" {
		return f.OutputConverter
	}
	return f.TryOutputConverter
}
