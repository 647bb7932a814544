package transform

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/sharpcast/sharpcast/internal/decl"
	"github.com/sharpcast/sharpcast/internal/model"
	"github.com/sharpcast/sharpcast/internal/naming"
)

// minRootPrefixLen is the shortest enum-name prefix worth stripping from
// member names.
const minRootPrefixLen = 4

// enumTransform converts one native enum declaration into its generated
// model in two phases. Prepare creates and registers an empty stub so
// other declarations can reference the enum by name before it has any
// members; Process fills the stub in place.
type enumTransform struct {
	registry   *model.Registry
	namespaces *model.NamespaceSet
	namer      naming.Policy
	diags      *Diags
	logger     *slog.Logger
}

// Prepare creates the generated enum stub for d, appends it to the
// declaration's namespace and binds the native name in the registry so
// later lookups resolve it even though no member exists yet.
func (t *enumTransform) Prepare(d *decl.EnumDecl) *model.Enum {
	e := &model.Enum{
		Name:       t.namer.Rename(d.Name),
		Underlying: t.registry.Import(model.Int32),
		Source:     d,
	}
	t.namespaces.Resolve(d).Add(e)
	t.registry.Bind(d.Name, e)
	t.logger.Debug("prepared enum stub", "native", d.Name, "name", e.Name)
	return e
}

// Process resolves the stub bound for d and fills it in: underlying
// width, renamed members in declaration order, flag classification and
// the optional synthetic None sentinel. The only diagnostic it can
// record is InvalidUnderlyingType, which degrades to the default width
// so generation keeps going.
func (t *enumTransform) Process(d *decl.EnumDecl) (*model.Enum, error) {
	ent, ok := t.registry.Lookup(d.Name)
	if !ok {
		return nil, fmt.Errorf("enum %q was not prepared", d.Name)
	}
	e, ok := ent.(*model.Enum)
	if !ok {
		return nil, fmt.Errorf("native name %q is bound to a non-enum entity", d.Name)
	}

	if kind, ok := model.ParseIntKind(d.UnderlyingType); ok {
		e.Underlying = t.registry.Import(kind)
	} else {
		// Keep the 32-bit signed default and continue, so one run can
		// surface every bad width in the declaration set.
		t.diags.Add(InvalidUnderlyingType, d.UnderlyingType, d.Name)
		t.logger.Warn("unsupported underlying type, defaulting to int",
			"enum", d.Name, "type", d.UnderlyingType)
	}

	prefix := rootPrefix(d)
	for i, item := range d.Items {
		e.Members = append(e.Members, model.EnumMember{
			Name:        t.namer.RenameTrimmed(item.Name, prefix),
			Value:       item.Value,
			SourceIndex: i,
		})
	}

	wantsNone := d.ForceHasNoneMember != nil && *d.ForceHasNoneMember
	if strings.HasSuffix(d.Name, "FLAG") || strings.HasSuffix(d.Name, "FLAGS") {
		e.IsFlags = true
		if d.ForceHasNoneMember == nil {
			wantsNone = !hasMemberNamed(e, "None")
		}
	}
	if wantsNone {
		// A forced override may duplicate an existing None member; the
		// duplicate is kept as-is, downstream stages decide what to do.
		e.Members = append(e.Members, model.EnumMember{Name: "None", Value: "0", SourceIndex: -1})
	}

	t.logger.Debug("processed enum",
		"native", d.Name, "members", len(e.Members), "flags", e.IsFlags,
		"underlying", e.Underlying.Name)
	return e, nil
}

// rootPrefix finds the longest prefix of the declaration's own name, at
// least minRootPrefixLen characters, that every item name starts with.
// Stripping it yields shorter member names ("D3D11_USAGE_DEFAULT" under
// "D3D11_USAGE" becomes "DEFAULT"). When no candidate qualifies the full
// declaration name is returned, which strips nothing from names that do
// not start with it.
func rootPrefix(d *decl.EnumDecl) string {
	name := d.Name
	for i := len(name); i >= minRootPrefixLen; i-- {
		p := name[:i]
		if allItemsStartWith(d.Items, p) {
			return p
		}
	}
	return name
}

func allItemsStartWith(items []decl.EnumItem, prefix string) bool {
	for _, it := range items {
		if !strings.HasPrefix(it.Name, prefix) {
			return false
		}
	}
	return true
}

func hasMemberNamed(e *model.Enum, name string) bool {
	for _, m := range e.Members {
		if m.Name == name {
			return true
		}
	}
	return false
}
