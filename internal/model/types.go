// Package model holds the generated C# object model the transform
// pipeline produces and the registries that make entities resolvable by
// their native names.
package model

import "github.com/sharpcast/sharpcast/internal/decl"

// IntKind enumerates the integer widths a generated enum can be backed
// by. Int32 is the zero value and the default width.
type IntKind int

const (
	Int32 IntKind = iota
	Uint8
	Int16
	Uint16
	Uint32
)

// ParseIntKind maps a native underlying-type spelling to its width.
// ok is false for any spelling outside the supported set; callers decide
// how to report the offending string.
func ParseIntKind(name string) (kind IntKind, ok bool) {
	switch name {
	case "byte":
		return Uint8, true
	case "short":
		return Int16, true
	case "ushort":
		return Uint16, true
	case "int":
		return Int32, true
	case "uint":
		return Uint32, true
	default:
		return Int32, false
	}
}

// Keyword returns the C# type keyword for the width.
func (k IntKind) Keyword() string {
	switch k {
	case Uint8:
		return "byte"
	case Int16:
		return "short"
	case Uint16:
		return "ushort"
	case Uint32:
		return "uint"
	default:
		return "int"
	}
}

func (k IntKind) String() string { return k.Keyword() }

// TypeRef is a generated type descriptor. Primitive descriptors are
// shared singletons owned by the registry; entities reference them
// without owning them.
type TypeRef struct {
	Kind IntKind
	Name string
}

// Entity is any generated declaration that can be registered in a
// namespace and bound to a native name.
type Entity interface {
	EntityName() string
}

// Enum is a generated C# enumeration. It is created as an empty stub
// during the prepare pass and filled in place during the process pass;
// the namespace it is added to owns it for the rest of the run.
type Enum struct {
	Name       string
	Underlying *TypeRef
	Members    []EnumMember
	IsFlags    bool

	// Source points back at the native declaration the enum was derived
	// from. Non-owning.
	Source *decl.EnumDecl
}

func (e *Enum) EntityName() string { return e.Name }

// EnumMember is one member of a generated enum. SourceIndex is the
// position of the originating item in the native declaration's item
// list, or -1 for synthetic members such as the None sentinel.
type EnumMember struct {
	Name        string
	Value       string
	SourceIndex int
}

// Synthetic reports whether the member has no native source item.
func (m EnumMember) Synthetic() bool { return m.SourceIndex < 0 }
