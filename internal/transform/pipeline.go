// Package transform turns native declaration sets into the generated C#
// object model. It runs in two full passes: every declaration is
// prepared (stub created and bound) before any declaration is processed,
// which breaks forward and circular references between declarations.
package transform

import (
	"log/slog"

	"github.com/sharpcast/sharpcast/internal/decl"
	"github.com/sharpcast/sharpcast/internal/model"
	"github.com/sharpcast/sharpcast/internal/naming"
)

// Pipeline owns the shared registries for one generation run. It is not
// safe for concurrent use; the passes run on a single goroutine.
type Pipeline struct {
	Registry   *model.Registry
	Namespaces *model.NamespaceSet
	Diags      *Diags

	namer  naming.Policy
	logger *slog.Logger
}

// NewPipeline builds a pipeline generating into the given root namespace.
func NewPipeline(rootNamespace string, rules []model.NamespaceRule, logger *slog.Logger) *Pipeline {
	return &Pipeline{
		Registry:   model.NewRegistry(),
		Namespaces: model.NewNamespaceSet(rootNamespace, rules),
		Diags:      &Diags{},
		logger:     logger,
	}
}

// Run transforms the whole declaration set. Diagnostics recorded along
// the way are available on p.Diags afterwards; they do not abort the
// run.
func (p *Pipeline) Run(m *decl.Module) error {
	t := &enumTransform{
		registry:   p.Registry,
		namespaces: p.Namespaces,
		namer:      p.namer,
		diags:      p.Diags,
		logger:     p.logger,
	}

	for i := range m.Enums {
		t.Prepare(&m.Enums[i])
	}
	for i := range m.Enums {
		if _, err := t.Process(&m.Enums[i]); err != nil {
			return err
		}
	}

	p.logger.Info("transformed declaration set",
		"module", m.Name, "enums", len(m.Enums), "diagnostics", p.Diags.Len())
	return nil
}
