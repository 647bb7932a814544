// Package csharp emits C# source for the generated object model.
package csharp

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/sharpcast/sharpcast/internal/decl"
	"github.com/sharpcast/sharpcast/internal/model"
)

// Generate writes one C# source file per namespace that contains enums
// into outputDir. Output is deterministic for a given model: namespaces
// are emitted in creation order and members in model order.
func Generate(logger *slog.Logger, outputDir string, m *decl.Module, namespaces *model.NamespaceSet) error {
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	for _, ns := range namespaces.All() {
		enums := ns.Enums()
		if len(enums) == 0 {
			continue
		}

		outputPath := filepath.Join(outputDir, ns.Path+".Enums.cs")
		if err := writeEnumFile(outputPath, m, ns, enums); err != nil {
			return fmt.Errorf("emit %s: %w", ns.Path, err)
		}
		logger.Info("generated enums", "namespace", ns.Path, "count", len(enums), "path", outputPath)
	}
	return nil
}
