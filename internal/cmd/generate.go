package cmd

import (
	"fmt"
	"log/slog"

	"github.com/sharpcast/sharpcast/internal/decl"
	"github.com/sharpcast/sharpcast/internal/emit/csharp"
	"github.com/sharpcast/sharpcast/internal/model"
	"github.com/sharpcast/sharpcast/internal/transform"
)

type Generate struct {
	Input        string            `arg:"" help:"Declaration set file (.json, .yaml or .toml)" type:"existingfile"`
	Output       string            `help:"Output directory for generated sources" default:"./generated" env:"SHARPCAST_OUTPUT"`
	Namespace    string            `help:"Root namespace for generated types" default:"Native.Interop" env:"SHARPCAST_NAMESPACE"`
	NamespaceMap map[string]string `help:"Route declarations into other namespaces by native name prefix (prefix=Namespace.Path)" env:"SHARPCAST_NAMESPACE_MAP"`
	Strict       bool              `help:"Exit non-zero when generation diagnostics are recorded" env:"SHARPCAST_STRICT"`
}

// Run is called by Kong when the generate command is executed.
func (g *Generate) Run(logger *slog.Logger) error {
	logger.Info("Starting binding generation", "input", g.Input, "output", g.Output)

	m, err := decl.Load(g.Input)
	if err != nil {
		return err
	}
	logger.Info("Loaded declaration set", "module", m.Name, "enums", len(m.Enums))

	var rules []model.NamespaceRule
	for prefix, path := range g.NamespaceMap {
		rules = append(rules, model.NamespaceRule{Prefix: prefix, Path: path})
	}

	p := transform.NewPipeline(g.Namespace, rules, logger)
	if err := p.Run(m); err != nil {
		return err
	}

	for _, d := range p.Diags.All() {
		logger.Error("generation diagnostic", "code", string(d.Code), "detail", d.String())
	}

	if err := csharp.Generate(logger, g.Output, m, p.Namespaces); err != nil {
		return err
	}

	if g.Strict && p.Diags.Len() > 0 {
		return fmt.Errorf("generation recorded %d diagnostic(s)", p.Diags.Len())
	}
	logger.Info("Binding generation complete", "output", g.Output)
	return nil
}
