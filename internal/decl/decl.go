// Package decl holds the native API declaration model consumed by the
// transform pipeline. Declarations are produced by an upstream header
// parser and loaded from a serialized declaration set; nothing in this
// package mutates them.
package decl

// EnumItem is one named integer constant of a native enumeration. The
// value is carried as written in the native source and is not parsed or
// range-checked by this tool.
type EnumItem struct {
	Name  string `json:"name" yaml:"name" toml:"name"`
	Value string `json:"value" yaml:"value" toml:"value"`
}

// EnumDecl is a native enumeration declaration. UnderlyingType is the
// native spelling of the storage type, already resolved through any
// declaration-level type remapping upstream. Item order is the native
// declaration order and is preserved through generation.
type EnumDecl struct {
	Name           string     `json:"name" yaml:"name" toml:"name"`
	Items          []EnumItem `json:"items" yaml:"items" toml:"items"`
	UnderlyingType string     `json:"underlyingType" yaml:"underlyingType" toml:"underlyingType"`

	// ForceHasNoneMember overrides the flag-enum sentinel heuristic when
	// set: true always appends a synthetic None member, false never does.
	ForceHasNoneMember *bool `json:"forceHasNoneMember,omitempty" yaml:"forceHasNoneMember,omitempty" toml:"forceHasNoneMember,omitempty"`
}

// Module is one full declaration set.
type Module struct {
	Name  string     `json:"name" yaml:"name" toml:"name"`
	Enums []EnumDecl `json:"enums" yaml:"enums" toml:"enums"`

	// Digest is the hex BLAKE2b-256 of the raw input the module was
	// loaded from. Empty for modules built in memory.
	Digest string `json:"-" yaml:"-" toml:"-"`
}
