// resolve.go
//
// Resolution over type trees: single-step unwraps and the deep walk to a
// representative terminal node.
//
// The single-step functions are total passthroughs: a node of the wrong kind
// comes back unchanged, never nil-for-non-nil. ResolveDeepest applies a fixed
// per-kind descent heuristic (documented on the function); it is not type
// evaluation. All walks carry an identity-keyed visited set so a cyclic tree
// terminates instead of recursing forever.
package inspector

// AwaitedType unwraps one level of Promise or PromiseLike. Any other node is
// returned unchanged.
func AwaitedType(t Type) Type {
	switch n := t.(type) {
	case *Promise:
		return n.Inner
	case *PromiseLike:
		return n.Inner
	default:
		return t
	}
}

// ItemType unwraps one level of Array, ReadonlyArray, or Set. Any other node
// is returned unchanged.
func ItemType(t Type) Type {
	switch n := t.(type) {
	case *Array:
		return n.Inner
	case *ReadonlyArray:
		return n.Inner
	case *Set:
		return n.Inner
	default:
		return t
	}
}

// SubscribedType unwraps one level of Observable. Any other node is returned
// unchanged.
func SubscribedType(t Type) Type {
	switch n := t.(type) {
	case *Observable:
		return n.Inner
	default:
		return t
	}
}

// ResolveDeepest descends from t to a representative terminal node:
//
//   - containers (Promise, PromiseLike, Array, ReadonlyArray, Set,
//     Observable) descend into their inner type
//   - Map/Record descend into the value type (the key is discarded)
//   - Optional/Nullable descend into the inner type
//   - Union descends into the first member that is not Unknown; if every
//     member is Unknown the first member is returned as-is
//   - Intersection descends into the last member, read as most specific
//   - Function descends into the return type
//   - Generic descends into the first type parameter, Tuple into the first
//     element, TemplateLiteral into the first interpolated type; the empty
//     forms violate the input contract and resolve to Unknown
//   - Conditional always descends into the True branch; the check relation
//     is never evaluated
//   - Mapped descends into the value type
//   - Class, Interface, Object, Simple, Primitive, Literal, Enum,
//     IndexSignature, and Unknown are terminal
//
// Nil resolves to nil. A node revisited within the walk (a cyclic tree)
// terminates the descent and is returned as the partial result.
func ResolveDeepest(t Type) Type {
	if t == nil {
		return nil
	}
	return resolveDeepest(t, map[Type]struct{}{})
}

func resolveDeepest(t Type, seen map[Type]struct{}) Type {
	if t == nil {
		return &Unknown{}
	}
	if _, ok := seen[t]; ok {
		return t
	}
	seen[t] = struct{}{}

	switch n := t.(type) {
	case *Promise:
		return resolveDeepest(n.Inner, seen)
	case *PromiseLike:
		return resolveDeepest(n.Inner, seen)
	case *Array:
		return resolveDeepest(n.Inner, seen)
	case *ReadonlyArray:
		return resolveDeepest(n.Inner, seen)
	case *Set:
		return resolveDeepest(n.Inner, seen)
	case *Observable:
		return resolveDeepest(n.Inner, seen)
	case *Map:
		return resolveDeepest(n.Value, seen)
	case *Record:
		return resolveDeepest(n.Value, seen)
	case *Optional:
		return resolveDeepest(n.Inner, seen)
	case *Nullable:
		return resolveDeepest(n.Inner, seen)
	case *Union:
		if len(n.Types) == 0 {
			return &Unknown{}
		}
		for _, m := range n.Types {
			if m != nil && m.Kind() != KindUnknown {
				return resolveDeepest(m, seen)
			}
		}
		return n.Types[0]
	case *Intersection:
		if len(n.Types) == 0 {
			return &Unknown{}
		}
		return resolveDeepest(n.Types[len(n.Types)-1], seen)
	case *Function:
		return resolveDeepest(n.Return, seen)
	case *Generic:
		if len(n.TypeParameters) == 0 {
			return &Unknown{}
		}
		return resolveDeepest(n.TypeParameters[0], seen)
	case *Tuple:
		if len(n.Elements) == 0 {
			return &Unknown{}
		}
		return resolveDeepest(n.Elements[0], seen)
	case *Conditional:
		return resolveDeepest(n.True, seen)
	case *Mapped:
		return resolveDeepest(n.Value, seen)
	case *TemplateLiteral:
		if len(n.Types) == 0 {
			return &Unknown{}
		}
		return resolveDeepest(n.Types[0], seen)
	case *Class, *Interface, *Object, *Simple, *Primitive, *Literal, *Enum, *IndexSignature, *Unknown:
		return t
	default:
		// Unreachable for values built through this package.
		return t
	}
}
