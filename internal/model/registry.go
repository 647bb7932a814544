package model

// Registry maps native type identities to generated type descriptors and
// entities. It is written sequentially by the transform passes; the
// pipeline guarantees no two transforms run concurrently.
type Registry struct {
	primitives map[IntKind]*TypeRef
	byName     map[string]Entity
}

func NewRegistry() *Registry {
	return &Registry{
		primitives: make(map[IntKind]*TypeRef),
		byName:     make(map[string]Entity),
	}
}

// Import returns the shared descriptor for a primitive width, creating
// it on first use. Repeated imports of the same width return the same
// handle.
func (r *Registry) Import(kind IntKind) *TypeRef {
	if ref, ok := r.primitives[kind]; ok {
		return ref
	}
	ref := &TypeRef{Kind: kind, Name: kind.Keyword()}
	r.primitives[kind] = ref
	return ref
}

// Bind associates a native declaration name with a generated entity.
// Rebinding an existing name overwrites it; the prepare pass relies on
// this to pre-register stubs before any declaration is processed.
func (r *Registry) Bind(nativeName string, e Entity) {
	r.byName[nativeName] = e
}

// Lookup resolves a native declaration name to the entity bound to it.
func (r *Registry) Lookup(nativeName string) (Entity, bool) {
	e, ok := r.byName[nativeName]
	return e, ok
}
