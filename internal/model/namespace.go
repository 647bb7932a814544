package model

import (
	"sort"
	"strings"

	"github.com/sharpcast/sharpcast/internal/decl"
)

// Namespace is a generated C# namespace. It owns the entities added to
// it and keeps them in insertion order.
type Namespace struct {
	Path     string
	Entities []Entity
}

// Add appends an entity; call order is preserved through emission.
func (ns *Namespace) Add(e Entity) {
	ns.Entities = append(ns.Entities, e)
}

// Enums returns the enum entities of the namespace in insertion order.
func (ns *Namespace) Enums() []*Enum {
	var out []*Enum
	for _, e := range ns.Entities {
		if en, ok := e.(*Enum); ok {
			out = append(out, en)
		}
	}
	return out
}

// NamespaceRule routes declarations whose native name starts with Prefix
// into the namespace at Path instead of the root namespace.
type NamespaceRule struct {
	Prefix string
	Path   string
}

// NamespaceSet resolves native declarations to their target namespace,
// creating namespaces on first use. Namespaces are handed out in
// creation order so emission is deterministic.
type NamespaceSet struct {
	root   string
	rules  []NamespaceRule
	byPath map[string]*Namespace
	order  []*Namespace
}

// NewNamespaceSet builds a set with the given root namespace path and
// optional prefix routing rules. Longer prefixes win over shorter ones.
func NewNamespaceSet(root string, rules []NamespaceRule) *NamespaceSet {
	sorted := make([]NamespaceRule, len(rules))
	copy(sorted, rules)
	sort.SliceStable(sorted, func(i, j int) bool {
		return len(sorted[i].Prefix) > len(sorted[j].Prefix)
	})
	return &NamespaceSet{
		root:   root,
		rules:  sorted,
		byPath: make(map[string]*Namespace),
	}
}

// Resolve returns the namespace a declaration belongs in.
func (s *NamespaceSet) Resolve(d *decl.EnumDecl) *Namespace {
	path := s.root
	for _, r := range s.rules {
		if strings.HasPrefix(d.Name, r.Prefix) {
			path = r.Path
			break
		}
	}
	return s.at(path)
}

func (s *NamespaceSet) at(path string) *Namespace {
	if ns, ok := s.byPath[path]; ok {
		return ns
	}
	ns := &Namespace{Path: path}
	s.byPath[path] = ns
	s.order = append(s.order, ns)
	return ns
}

// All returns every namespace in creation order.
func (s *NamespaceSet) All() []*Namespace {
	return s.order
}
