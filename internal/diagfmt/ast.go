package diagfmt

import (
	"encoding/json"
	"io"

	"gopkg.in/yaml.v3"

	"adtc/internal/ast"
	"adtc/internal/format"
)

type DocOutput struct {
	Source    string           `json:"source" yaml:"source"`
	Package   string           `json:"package,omitempty" yaml:"package,omitempty"`
	Imports   []string         `json:"imports" yaml:"imports"`
	DataTypes []DataTypeOutput `json:"data_types" yaml:"data_types"`
}

type DataTypeOutput struct {
	Name         string              `json:"name" yaml:"name"`
	TypeParams   []string            `json:"type_params,omitempty" yaml:"type_params,omitempty"`
	Strategy     string              `json:"strategy" yaml:"strategy"`
	Constructors []ConstructorOutput `json:"constructors" yaml:"constructors"`
}

type ConstructorOutput struct {
	Name   string        `json:"name" yaml:"name"`
	Fields []FieldOutput `json:"fields,omitempty" yaml:"fields,omitempty"`
}

type FieldOutput struct {
	Name string `json:"name" yaml:"name"`
	Type string `json:"type" yaml:"type"`
}

// BuildDocOutput converts doc into its serializable form.
func BuildDocOutput(doc *ast.Doc) DocOutput {
	out := DocOutput{
		Source:    doc.SrcInfo,
		Package:   doc.Package,
		Imports:   append([]string{}, doc.Imports...),
		DataTypes: make([]DataTypeOutput, 0, len(doc.DataTypes)),
	}
	for _, dt := range doc.DataTypes {
		dto := DataTypeOutput{
			Name:         dt.Name,
			TypeParams:   dt.TypeParams,
			Strategy:     "variant",
			Constructors: make([]ConstructorOutput, 0, len(dt.Constructors)),
		}
		if dt.IsRecord() {
			dto.Strategy = "record"
		}
		for _, c := range dt.Constructors {
			co := ConstructorOutput{Name: c.Name}
			for _, a := range c.Args {
				co.Fields = append(co.Fields, FieldOutput{Name: a.Name, Type: a.Type.String()})
			}
			dto.Constructors = append(dto.Constructors, co)
		}
		out.DataTypes = append(out.DataTypes, dto)
	}
	return out
}

// FormatDocPretty writes the canonical source rendering of doc.
func FormatDocPretty(w io.Writer, doc *ast.Doc) error {
	_, err := io.WriteString(w, format.Print(doc))
	return err
}

func FormatDocJSON(w io.Writer, doc *ast.Doc) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(BuildDocOutput(doc))
}

func FormatDocYAML(w io.Writer, doc *ast.Doc) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(BuildDocOutput(doc)); err != nil {
		return err
	}
	return encoder.Close()
}
