// query.go
//
// Total predicates and extractors over the node algebra.
//
// Every function here is side-effect-free and total: a nil node or a node of
// the wrong kind yields false, the empty list/map, or an absent value —
// never a panic. Predicates answer exact kind membership, with three
// deliberate pairings: IsArray covers Array and ReadonlyArray, IsMap covers
// Map and Record, IsPromise covers Promise and PromiseLike.
package inspector

// -----------------------------
// Predicates
// -----------------------------

// IsSimple reports whether t is an opaque named type.
func IsSimple(t Type) bool { return t != nil && t.Kind() == KindSimple }

// IsPrimitive reports whether t is a built-in scalar.
func IsPrimitive(t Type) bool { return t != nil && t.Kind() == KindPrimitive }

// IsArray reports whether t is an Array or a ReadonlyArray.
func IsArray(t Type) bool {
	if t == nil {
		return false
	}
	k := t.Kind()
	return k == KindArray || k == KindReadonlyArray
}

// IsSet reports whether t is a Set.
func IsSet(t Type) bool { return t != nil && t.Kind() == KindSet }

// IsPromise reports whether t is a Promise or a PromiseLike.
func IsPromise(t Type) bool {
	if t == nil {
		return false
	}
	k := t.Kind()
	return k == KindPromise || k == KindPromiseLike
}

// IsObservable reports whether t is an Observable.
func IsObservable(t Type) bool { return t != nil && t.Kind() == KindObservable }

// IsMap reports whether t is a Map or a Record.
func IsMap(t Type) bool {
	if t == nil {
		return false
	}
	k := t.Kind()
	return k == KindMap || k == KindRecord
}

// IsUnion reports whether t is a Union.
func IsUnion(t Type) bool { return t != nil && t.Kind() == KindUnion }

// IsIntersection reports whether t is an Intersection.
func IsIntersection(t Type) bool { return t != nil && t.Kind() == KindIntersection }

// IsOptional reports whether t is an Optional.
func IsOptional(t Type) bool { return t != nil && t.Kind() == KindOptional }

// IsNullable reports whether t is a Nullable.
func IsNullable(t Type) bool { return t != nil && t.Kind() == KindNullable }

// IsFunction reports whether t is a callable signature.
func IsFunction(t Type) bool { return t != nil && t.Kind() == KindFunction }

// IsClass reports whether t is a Class.
func IsClass(t Type) bool { return t != nil && t.Kind() == KindClass }

// IsInterface reports whether t is an Interface.
func IsInterface(t Type) bool { return t != nil && t.Kind() == KindInterface }

// IsGeneric reports whether t is a parameterized named type.
func IsGeneric(t Type) bool { return t != nil && t.Kind() == KindGeneric }

// IsLiteral reports whether t is an exact-value type.
func IsLiteral(t Type) bool { return t != nil && t.Kind() == KindLiteral }

// IsEnum reports whether t is an Enum.
func IsEnum(t Type) bool { return t != nil && t.Kind() == KindEnum }

// IsTuple reports whether t is a Tuple.
func IsTuple(t Type) bool { return t != nil && t.Kind() == KindTuple }

// IsObject reports whether t is an anonymous structural record.
func IsObject(t Type) bool { return t != nil && t.Kind() == KindObject }

// IsIndexSignature reports whether t is a dynamic-keyed record.
func IsIndexSignature(t Type) bool { return t != nil && t.Kind() == KindIndexSignature }

// IsConditional reports whether t is a branch-selecting type.
func IsConditional(t Type) bool { return t != nil && t.Kind() == KindConditional }

// IsMapped reports whether t is a key-transformed record.
func IsMapped(t Type) bool { return t != nil && t.Kind() == KindMapped }

// IsTemplateLiteral reports whether t is an interpolated string type.
func IsTemplateLiteral(t Type) bool { return t != nil && t.Kind() == KindTemplateLiteral }

// IsUnknown reports whether t carries no type information.
func IsUnknown(t Type) bool { return t != nil && t.Kind() == KindUnknown }

// -----------------------------
// Extractors
// -----------------------------

// UnionTypes returns the alternatives of a Union, or nil for anything else.
func UnionTypes(t Type) []Type {
	if u, ok := t.(*Union); ok {
		return u.Types
	}
	return nil
}

// IntersectionTypes returns the parts of an Intersection, or nil.
func IntersectionTypes(t Type) []Type {
	if i, ok := t.(*Intersection); ok {
		return i.Types
	}
	return nil
}

// FunctionParameters returns a Function's parameter list, or nil.
func FunctionParameters(t Type) []Type {
	if f, ok := t.(*Function); ok {
		return f.Parameters
	}
	return nil
}

// FunctionReturnType returns a Function's return type, or nil.
func FunctionReturnType(t Type) Type {
	if f, ok := t.(*Function); ok {
		return f.Return
	}
	return nil
}

// TupleElements returns a Tuple's elements, or nil.
func TupleElements(t Type) []Type {
	if tp, ok := t.(*Tuple); ok {
		return tp.Elements
	}
	return nil
}

// ObjectProperties returns the property map of an Object, Class, or
// Interface, or nil for anything else. The returned map is shared with the
// node; callers must not mutate it.
func ObjectProperties(t Type) map[string]Type {
	switch n := t.(type) {
	case *Object:
		return n.Properties
	case *Class:
		return n.Properties
	case *Interface:
		return n.Properties
	default:
		return nil
	}
}

// GenericTypeParameters returns a Generic's type parameters, or nil.
func GenericTypeParameters(t Type) []Type {
	if g, ok := t.(*Generic); ok {
		return g.TypeParameters
	}
	return nil
}

// EnumValues returns an Enum's name→value map, or nil.
func EnumValues(t Type) map[string]any {
	if e, ok := t.(*Enum); ok {
		return e.Values
	}
	return nil
}

// LiteralValue returns a Literal's value. ok is false for any other node.
func LiteralValue(t Type) (value any, ok bool) {
	if l, ok := t.(*Literal); ok {
		return l.Value, true
	}
	return nil, false
}

// HasProperty reports whether an Object, Class, or Interface declares the
// named property.
func HasProperty(t Type, name string) bool {
	props := ObjectProperties(t)
	_, ok := props[name]
	return ok
}

// PropertyType returns the declared type of the named property on an Object,
// Class, or Interface, or nil when the node has no such property.
func PropertyType(t Type, name string) Type {
	return ObjectProperties(t)[name]
}
