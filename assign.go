// assign.go
//
// Structural assignability over type trees: AssignableTo(source, target).
//
// The decision procedure is two-layered. When both nodes have the same kind,
// a kind-specific structural rule applies (tag equality for primitives,
// covariant element checks for collections, contravariant parameters for
// functions, width subtyping for property-bearing nodes, ...). When the kinds
// differ, a fixed, ordered list of cross-kind coercions is tried: optional
// unwrap, nullable unwrap-or-null-union, union introduction, intersection
// elimination, literal-to-primitive. The first matching rule decides; nothing
// is retried.
//
// Two deliberate looseness points are kept as-is rather than tightened:
//
//   - same-kind pairs without a listed structural rule (Simple, Observable,
//     Optional, Nullable, Generic, Enum, IndexSignature, Conditional, Mapped,
//     TemplateLiteral, Unknown, and the nominal parts of Class/Interface)
//     are compatible by default. This is a weak check, kept weak on purpose.
//   - Array/ReadonlyArray and Promise/PromiseLike mixed pairs have no
//     cross-kind rule and come out false; the two kinds in each pair are
//     treated as distinct and non-interchangeable.
package inspector

// AssignableTo reports whether a value of the source type can stand wherever
// the target type is expected. False when either argument is nil. The check
// is deterministic and side-effect-free.
//
// Cyclic trees terminate: a (source, target) pair already being decided
// higher in the call stack is taken as assignable — a cycle that produced no
// counterexample on the way down is compatible.
func AssignableTo(source, target Type) bool {
	c := assignCheck{active: map[assignPair]struct{}{}}
	return c.assignable(source, target)
}

type assignPair struct {
	src Type
	dst Type
}

type assignCheck struct {
	active map[assignPair]struct{}
}

func (c *assignCheck) assignable(src, dst Type) bool {
	if src == nil || dst == nil {
		return false
	}
	pair := assignPair{src, dst}
	if _, ok := c.active[pair]; ok {
		return true
	}
	c.active[pair] = struct{}{}
	defer delete(c.active, pair)

	if src.Kind() == dst.Kind() {
		return c.sameKind(src, dst)
	}
	return c.crossKind(src, dst)
}

// -----------------------------
// Same-kind rules
// -----------------------------

func (c *assignCheck) sameKind(src, dst Type) bool {
	switch s := src.(type) {
	case *Primitive:
		d := dst.(*Primitive)
		return s.Tag == d.Tag || s.Tag == TagAny || d.Tag == TagAny

	case *Literal:
		d := dst.(*Literal)
		return scalarEqual(s.Value, d.Value)

	case *Union:
		// Every alternative of the target must be covered by some
		// alternative of the source.
		d := dst.(*Union)
		return c.coversAll(s.Types, d.Types)

	case *Intersection:
		d := dst.(*Intersection)
		return c.coversAll(s.Types, d.Types)

	case *Array:
		return c.assignable(s.Inner, dst.(*Array).Inner)
	case *ReadonlyArray:
		return c.assignable(s.Inner, dst.(*ReadonlyArray).Inner)
	case *Set:
		return c.assignable(s.Inner, dst.(*Set).Inner)
	case *Promise:
		return c.assignable(s.Inner, dst.(*Promise).Inner)
	case *PromiseLike:
		return c.assignable(s.Inner, dst.(*PromiseLike).Inner)

	case *Map:
		d := dst.(*Map)
		return c.assignable(s.Key, d.Key) && c.assignable(s.Value, d.Value)
	case *Record:
		d := dst.(*Record)
		return c.assignable(s.Key, d.Key) && c.assignable(s.Value, d.Value)

	case *Function:
		d := dst.(*Function)
		if !c.assignable(s.Return, d.Return) {
			return false
		}
		return c.parametersCompatible(s.Parameters, d.Parameters)

	case *Tuple:
		d := dst.(*Tuple)
		if len(s.Elements) != len(d.Elements) {
			return false
		}
		for i := range s.Elements {
			if !c.assignable(s.Elements[i], d.Elements[i]) {
				return false
			}
		}
		return true

	case *Object:
		return c.propertiesAssignable(s.Properties, dst.(*Object).Properties)
	case *Class:
		// Structural: only properties are compared; name, constructor, and
		// methods do not participate.
		return c.propertiesAssignable(s.Properties, dst.(*Class).Properties)
	case *Interface:
		return c.propertiesAssignable(s.Properties, dst.(*Interface).Properties)

	default:
		// No structural rule for this kind pair; compatible by default.
		return true
	}
}

// coversAll reports whether every member of want is matched by some member
// of have.
func (c *assignCheck) coversAll(have, want []Type) bool {
	for _, w := range want {
		matched := false
		for _, h := range have {
			if c.assignable(h, w) {
				matched = true
				break
			}
		}
		if !matched {
			return false
		}
	}
	return true
}

// propertiesAssignable is width subtyping: every property the target
// declares must exist on the source with an assignable type; extra source
// properties are ignored. A property missing on the source fails through the
// nil guard in assignable.
func (c *assignCheck) propertiesAssignable(src, dst map[string]Type) bool {
	for name, want := range dst {
		if !c.assignable(src[name], want) {
			return false
		}
	}
	return true
}

// parametersCompatible requires equal arity and checks each position
// contravariantly: the target's declared parameter must be assignable to the
// source's, so the callee accepts at least what the caller hands over.
// Optional and variadic parameters are not modeled.
func (c *assignCheck) parametersCompatible(src, dst []Type) bool {
	if len(src) != len(dst) {
		return false
	}
	for i := range src {
		if !c.assignable(dst[i], src[i]) {
			return false
		}
	}
	return true
}

// -----------------------------
// Cross-kind rules, in priority order
// -----------------------------

func (c *assignCheck) crossKind(src, dst Type) bool {
	// Optional<T> stands wherever T does.
	if s, ok := src.(*Optional); ok {
		return c.assignable(s.Inner, dst)
	}

	// Nullable<T>: the inner type must fit, or the target must be a union
	// that admits null.
	if s, ok := src.(*Nullable); ok {
		if c.assignable(s.Inner, dst) {
			return true
		}
		return unionAdmitsNull(dst)
	}

	// The exact-kind Array/Array, Set/Set and Promise/Promise covariance
	// checks of the rule table are subsumed by the same-kind dispatch above.
	// ReadonlyArray and PromiseLike mixed with their mutable/concrete
	// counterparts deliberately fall through to the rules below and, absent
	// a match, to false.

	// Union introduction: source fits any alternative of a union target.
	if d, ok := dst.(*Union); ok {
		for _, m := range d.Types {
			if c.assignable(src, m) {
				return true
			}
		}
		return false
	}

	// Intersection elimination: an intersection source must satisfy the
	// target through every one of its parts.
	if s, ok := src.(*Intersection); ok {
		if len(s.Types) == 0 {
			return false
		}
		for _, m := range s.Types {
			if !c.assignable(m, dst) {
				return false
			}
		}
		return true
	}

	// Literal-to-primitive widening: the literal's runtime tag must match
	// the primitive's tag (or the primitive is the universal "any").
	if s, ok := src.(*Literal); ok {
		if d, ok := dst.(*Primitive); ok {
			return d.Tag == TagAny || scalarTag(s.Value) == d.Tag
		}
	}

	return false
}

// unionAdmitsNull reports whether t is a union with a null primitive member.
func unionAdmitsNull(t Type) bool {
	u, ok := t.(*Union)
	if !ok {
		return false
	}
	for _, m := range u.Types {
		if p, ok := m.(*Primitive); ok && p.Tag == TagNull {
			return true
		}
	}
	return false
}

// scalarTag maps a literal value to the primitive tag of its runtime type.
func scalarTag(v any) PrimitiveTag {
	switch v.(type) {
	case string:
		return TagString
	case float64:
		return TagNumber
	case bool:
		return TagBoolean
	default:
		return ""
	}
}

// scalarEqual compares two literal values by type and value. Numbers are
// normalized to float64 by Lit and the wire codec, so == is exact here.
func scalarEqual(a, b any) bool {
	if scalarTag(a) != scalarTag(b) || scalarTag(a) == "" {
		return false
	}
	return a == b
}
