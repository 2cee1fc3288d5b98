// node.go
//
// inspector type model (the node algebra)
//
// A type is represented as a tree of tagged nodes. The set of node kinds is
// closed: Type is a sealed interface (the unexported marker method keeps
// implementations inside this package), and there is exactly one struct per
// kind. Consumers dispatch with a type switch over the variants; because the
// set is sealed, a switch that lists every variant is exhaustive and its
// default branch can only be reached by a nil node.
//
// Nodes are built once — by a MetadataBridge, the wire codec in bridge.go, or
// test code assembling literal trees — and are read-only afterwards. Nothing
// in this package mutates a node. The model does not statically rule out
// cyclic trees (nodes are pointers), so every recursive walk in this package
// carries an identity-keyed visited set; see resolve.go, print.go, assign.go.
package inspector

// Kind identifies which variant of the node algebra a Type is.
type Kind uint8

const (
	KindSimple Kind = iota
	KindPrimitive
	KindArray
	KindReadonlyArray
	KindSet
	KindPromise
	KindPromiseLike
	KindObservable
	KindMap
	KindRecord
	KindUnion
	KindIntersection
	KindOptional
	KindNullable
	KindFunction
	KindClass
	KindInterface
	KindGeneric
	KindLiteral
	KindEnum
	KindTuple
	KindObject
	KindIndexSignature
	KindConditional
	KindMapped
	KindTemplateLiteral
	KindUnknown
)

// String returns the canonical name of the kind, as used on the wire and in
// formatter output.
func (k Kind) String() string {
	switch k {
	case KindSimple:
		return "simple"
	case KindPrimitive:
		return "primitive"
	case KindArray:
		return "array"
	case KindReadonlyArray:
		return "readonlyArray"
	case KindSet:
		return "set"
	case KindPromise:
		return "promise"
	case KindPromiseLike:
		return "promiseLike"
	case KindObservable:
		return "observable"
	case KindMap:
		return "map"
	case KindRecord:
		return "record"
	case KindUnion:
		return "union"
	case KindIntersection:
		return "intersection"
	case KindOptional:
		return "optional"
	case KindNullable:
		return "nullable"
	case KindFunction:
		return "function"
	case KindClass:
		return "class"
	case KindInterface:
		return "interface"
	case KindGeneric:
		return "generic"
	case KindLiteral:
		return "literal"
	case KindEnum:
		return "enum"
	case KindTuple:
		return "tuple"
	case KindObject:
		return "object"
	case KindIndexSignature:
		return "indexSignature"
	case KindConditional:
		return "conditional"
	case KindMapped:
		return "mapped"
	case KindTemplateLiteral:
		return "templateLiteral"
	case KindUnknown:
		return "unknown"
	default:
		return "invalid"
	}
}

// Type is the interface implemented by all node variants.
type Type interface {
	Kind() Kind

	// aType restricts implementations to this package, closing the variant set.
	aType()
}

// PrimitiveTag names a built-in scalar type.
type PrimitiveTag string

const (
	TagString    PrimitiveTag = "string"
	TagNumber    PrimitiveTag = "number"
	TagBoolean   PrimitiveTag = "boolean"
	TagBigint    PrimitiveTag = "bigint"
	TagSymbol    PrimitiveTag = "symbol"
	TagUndefined PrimitiveTag = "undefined"
	TagNull      PrimitiveTag = "null"

	// TagAny is the top scalar: compatible with every primitive in both
	// directions.
	TagAny PrimitiveTag = "any"
)

// -----------------------------
// Variants
// -----------------------------

// Simple is an opaque named type.
type Simple struct {
	Name string
}

// Primitive is a built-in scalar.
type Primitive struct {
	Tag PrimitiveTag
}

// Array is a homogeneous mutable collection.
type Array struct {
	Inner Type
}

// ReadonlyArray is a homogeneous read-only collection. It is a distinct kind
// from Array: the two are not interchangeable anywhere in this package.
type ReadonlyArray struct {
	Inner Type
}

// Set is a homogeneous collection of unique values.
type Set struct {
	Inner Type
}

// Promise is a deferred value.
type Promise struct {
	Inner Type
}

// PromiseLike is a thenable deferred value, distinct from Promise.
type PromiseLike struct {
	Inner Type
}

// Observable is a push-stream of values.
type Observable struct {
	Inner Type
}

// Map is a keyed collection.
type Map struct {
	Key   Type
	Value Type
}

// Record is a keyed record type, distinct from Map.
type Record struct {
	Key   Type
	Value Type
}

// Union is "one of" an ordered, non-empty list of alternatives.
type Union struct {
	Types []Type
}

// Intersection is "all of" an ordered, non-empty list of parts.
type Intersection struct {
	Types []Type
}

// Optional is a value that may be absent.
type Optional struct {
	Inner Type
}

// Nullable is a value that may be null.
type Nullable struct {
	Inner Type
}

// Function is a callable signature.
type Function struct {
	Parameters []Type
	Return     Type
}

// Class is a nominal, member-bearing type.
type Class struct {
	Name        string
	Constructor Type
	Methods     map[string]Type
	Properties  map[string]Type
}

// Interface is a nominal, property-bearing type.
type Interface struct {
	Name       string
	Properties map[string]Type
}

// Generic is a parameterized named type.
type Generic struct {
	Name           string
	TypeParameters []Type
}

// Literal is an exact-value type. Value is a string, float64, or bool;
// use Lit to build one from arbitrary Go scalars.
type Literal struct {
	Value any
}

// Enum is a closed set of named string-or-number values.
type Enum struct {
	Name   string
	Values map[string]any
}

// Tuple is a fixed-length heterogeneous sequence.
type Tuple struct {
	Elements []Type
}

// Object is an anonymous structural record.
type Object struct {
	Properties map[string]Type
}

// IndexSignature is a dynamic-keyed record.
type IndexSignature struct {
	Key   Type
	Value Type
}

// Conditional is a branch-selecting type. This package never evaluates the
// Check-extends-Extends relation; walks always take the True branch.
type Conditional struct {
	Check   Type
	Extends Type
	True    Type
	False   Type
}

// Mapped is a key-transformed record.
type Mapped struct {
	Key   Type
	Value Type
}

// TemplateLiteral is an interpolated string type: literal parts with
// interpolated types between them.
type TemplateLiteral struct {
	Parts []string
	Types []Type
}

// Unknown is the absence of type information.
type Unknown struct{}

func (*Simple) Kind() Kind          { return KindSimple }
func (*Primitive) Kind() Kind       { return KindPrimitive }
func (*Array) Kind() Kind           { return KindArray }
func (*ReadonlyArray) Kind() Kind   { return KindReadonlyArray }
func (*Set) Kind() Kind             { return KindSet }
func (*Promise) Kind() Kind         { return KindPromise }
func (*PromiseLike) Kind() Kind     { return KindPromiseLike }
func (*Observable) Kind() Kind      { return KindObservable }
func (*Map) Kind() Kind             { return KindMap }
func (*Record) Kind() Kind          { return KindRecord }
func (*Union) Kind() Kind           { return KindUnion }
func (*Intersection) Kind() Kind    { return KindIntersection }
func (*Optional) Kind() Kind        { return KindOptional }
func (*Nullable) Kind() Kind        { return KindNullable }
func (*Function) Kind() Kind        { return KindFunction }
func (*Class) Kind() Kind           { return KindClass }
func (*Interface) Kind() Kind       { return KindInterface }
func (*Generic) Kind() Kind         { return KindGeneric }
func (*Literal) Kind() Kind         { return KindLiteral }
func (*Enum) Kind() Kind            { return KindEnum }
func (*Tuple) Kind() Kind           { return KindTuple }
func (*Object) Kind() Kind          { return KindObject }
func (*IndexSignature) Kind() Kind  { return KindIndexSignature }
func (*Conditional) Kind() Kind     { return KindConditional }
func (*Mapped) Kind() Kind          { return KindMapped }
func (*TemplateLiteral) Kind() Kind { return KindTemplateLiteral }
func (*Unknown) Kind() Kind         { return KindUnknown }

func (*Simple) aType()          {}
func (*Primitive) aType()       {}
func (*Array) aType()           {}
func (*ReadonlyArray) aType()   {}
func (*Set) aType()             {}
func (*Promise) aType()         {}
func (*PromiseLike) aType()     {}
func (*Observable) aType()      {}
func (*Map) aType()             {}
func (*Record) aType()          {}
func (*Union) aType()           {}
func (*Intersection) aType()    {}
func (*Optional) aType()        {}
func (*Nullable) aType()        {}
func (*Function) aType()        {}
func (*Class) aType()           {}
func (*Interface) aType()       {}
func (*Generic) aType()         {}
func (*Literal) aType()         {}
func (*Enum) aType()            {}
func (*Tuple) aType()           {}
func (*Object) aType()          {}
func (*IndexSignature) aType()  {}
func (*Conditional) aType()     {}
func (*Mapped) aType()          {}
func (*TemplateLiteral) aType() {}
func (*Unknown) aType()         {}

// -----------------------------
// Small constructors
// -----------------------------

// Prim builds a primitive node.
func Prim(tag PrimitiveTag) *Primitive { return &Primitive{Tag: tag} }

// Lit builds a literal node, normalizing Go integer scalars to float64 so the
// literal value space is string | number | boolean with a single number
// representation (matching what the wire codec decodes).
func Lit(v any) *Literal { return &Literal{Value: normalizeScalar(v)} }

// normalizeScalar collapses the numeric Go scalars to float64. Strings and
// bools pass through; anything else is kept as-is and will simply never
// compare equal to a normalized value.
func normalizeScalar(v any) any {
	switch n := v.(type) {
	case int:
		return float64(n)
	case int32:
		return float64(n)
	case int64:
		return float64(n)
	case float32:
		return float64(n)
	default:
		return v
	}
}
