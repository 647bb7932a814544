package csharp

import (
	"fmt"
	"os"
	"text/template"

	"github.com/sharpcast/sharpcast/internal/decl"
	"github.com/sharpcast/sharpcast/internal/model"
	"github.com/sharpcast/sharpcast/internal/version"
)

type enumFileData struct {
	Namespace string
	Module    string
	Digest    string
	Version   string
	Enums     []*model.Enum
}

func writeEnumFile(outputPath string, m *decl.Module, ns *model.Namespace, enums []*model.Enum) error {
	data := enumFileData{
		Namespace: ns.Path,
		Module:    m.Name,
		Digest:    m.Digest,
		Version:   version.Get(),
		Enums:     enums,
	}

	f, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("creating file: %w", err)
	}
	defer f.Close()

	tmpl := template.Must(template.New("enums").Parse(enumsTemplate))
	if err := tmpl.Execute(f, data); err != nil {
		return fmt.Errorf("executing template: %w", err)
	}
	return nil
}

const enumsTemplate = `// <auto-generated>
//     Generated by sharpcast {{.Version}} from declaration set "{{.Module}}".
{{- if .Digest}}
//     Source digest: blake2b-256:{{.Digest}}
{{- end}}
//     Changes to this file will be lost when the code is regenerated.
// </auto-generated>
using System;

namespace {{.Namespace}};
{{range .Enums}}
{{if .IsFlags}}[Flags]
{{end}}public enum {{.Name}} : {{.Underlying.Name}}
{
{{range .Members}}    {{.Name}} = {{.Value}},
{{end}}}
{{end}}`
