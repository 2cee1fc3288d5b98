package inspector

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// A reasonably deep tree touching most kinds, used for round-trips.
func sampleTree() Type {
	return &Class{
		Name:        "User",
		Constructor: fn(&Simple{Name: "User"}, Prim(TagString)),
		Methods: map[string]Type{
			"load": fn(&Promise{Inner: &Optional{Inner: obj(map[string]Type{
				"tags": &ReadonlyArray{Inner: Lit("admin")},
			})}}),
		},
		Properties: map[string]Type{
			"id":     Prim(TagNumber),
			"email":  &Nullable{Inner: Prim(TagString)},
			"roles":  union(Lit("admin"), Lit("user")),
			"extras": &Record{Key: Prim(TagString), Value: &Unknown{}},
		},
	}
}

func Test_Bridge_JSON_RoundTrip(t *testing.T) {
	orig := sampleTree()
	data, err := MarshalType(orig)
	require.NoError(t, err)

	decoded, err := ParseType(data)
	require.NoError(t, err)
	require.NotNil(t, decoded)

	// The codec preserves shape: identical rendering, and assignability in
	// both directions.
	require.Equal(t, TypeTree(orig), TypeTree(decoded))
	require.Equal(t, TypePath(orig), TypePath(decoded))
	require.True(t, AssignableTo(orig, decoded))
	require.True(t, AssignableTo(decoded, orig))
}

func Test_Bridge_JSON_AllKinds_RoundTrip(t *testing.T) {
	trees := []Type{
		&Simple{Name: "Opaque"},
		Prim(TagBigint),
		&Array{Inner: Prim(TagString)},
		&ReadonlyArray{Inner: Prim(TagString)},
		&Set{Inner: Prim(TagSymbol)},
		&Promise{Inner: Prim(TagUndefined)},
		&PromiseLike{Inner: Prim(TagNull)},
		&Observable{Inner: Prim(TagNumber)},
		&Map{Key: Prim(TagString), Value: Prim(TagNumber)},
		&Record{Key: Prim(TagString), Value: Prim(TagBoolean)},
		union(Prim(TagString), Prim(TagNumber)),
		intersection(obj(map[string]Type{"a": Prim(TagString)}), obj(map[string]Type{"b": Prim(TagNumber)})),
		&Optional{Inner: Prim(TagString)},
		&Nullable{Inner: Prim(TagString)},
		fn(Prim(TagString), Prim(TagNumber)),
		&Interface{Name: "HasID", Properties: map[string]Type{"id": Prim(TagNumber)}},
		&Generic{Name: "Box", TypeParameters: []Type{Prim(TagString)}},
		Lit("hello"),
		Lit(3.5),
		Lit(false),
		&Enum{Name: "Color", Values: map[string]any{"Red": 0.0, "Hex": "ff0000"}},
		&Tuple{Elements: []Type{Prim(TagString), Prim(TagNumber)}},
		&IndexSignature{Key: Prim(TagString), Value: Prim(TagNumber)},
		&Conditional{Check: &Simple{Name: "T"}, Extends: Prim(TagString), True: Lit(1), False: Lit(0)},
		&Mapped{Key: Prim(TagString), Value: Prim(TagBoolean)},
		&TemplateLiteral{Parts: []string{"id-", ""}, Types: []Type{Prim(TagNumber)}},
		&Unknown{},
	}
	for _, orig := range trees {
		data, err := MarshalType(orig)
		require.NoError(t, err, TypePath(orig))
		decoded, err := ParseType(data)
		require.NoError(t, err, TypePath(orig))
		require.Equal(t, TypeTree(orig), TypeTree(decoded), TypePath(orig))
	}
}

func Test_Bridge_YAML_Decode(t *testing.T) {
	doc := []byte(`
kind: function
parameters:
  - kind: primitive
    tag: string
returnType:
  kind: promise
  inner:
    kind: array
    inner:
      kind: literal
      value: 7
`)
	decoded, err := ParseTypeYAML(doc)
	require.NoError(t, err)
	require.Equal(t, "Function -> Promise -> Array -> Literal<7>", TypePath(decoded))
}

func Test_Bridge_Decode_Malformed(t *testing.T) {
	cases := map[string]string{
		"not json":           `{"kind": "array"`,
		"missing kind":       `{"inner": {"kind": "unknown"}}`,
		"unknown kind":       `{"kind": "quantum"}`,
		"bad primitive tag":  `{"kind": "primitive", "tag": "float"}`,
		"empty union":        `{"kind": "union", "types": []}`,
		"empty intersection": `{"kind": "intersection", "types": []}`,
		"bad literal value":  `{"kind": "literal", "value": [1, 2]}`,
		"missing inner":      `{"kind": "array"}`,
		"bad enum value":     `{"kind": "enum", "name": "E", "values": {"A": true}}`,
		"bad template parts": `{"kind": "templateLiteral", "parts": [1], "types": []}`,
	}
	for name, doc := range cases {
		_, err := ParseType([]byte(doc))
		require.Error(t, err, name)
	}
}

func Test_Bridge_Marshal_Cyclic_EmitsUnknown(t *testing.T) {
	// type Node = { next: Node }: the back-edge serializes as the unknown
	// node instead of recursing forever.
	node := &Object{Properties: map[string]Type{}}
	node.Properties["next"] = node

	data, err := MarshalType(node)
	require.NoError(t, err)

	decoded, err := ParseType(data)
	require.NoError(t, err)
	require.Equal(t, strings.Join([]string{
		"Object",
		"  next: unknown",
	}, "\n"), TypeTree(decoded))
}

func Test_Bridge_Marshal_SharedSubtree_NotACycle(t *testing.T) {
	// The same node reachable twice without a back-edge is not a cycle and
	// must serialize fully both times.
	shared := obj(map[string]Type{"id": Prim(TagNumber)})
	tree := &Tuple{Elements: []Type{shared, shared}}

	data, err := MarshalType(tree)
	require.NoError(t, err)
	decoded, err := ParseType(data)
	require.NoError(t, err)
	require.Equal(t, TypeTree(tree), TypeTree(decoded))
}

func Test_Bridge_Static(t *testing.T) {
	d := MemberDescriptor{Owner: "UserService", Member: "findById"}
	b := StaticBridge{d: fn(&Promise{Inner: &Simple{Name: "User"}}, Prim(TagNumber))}

	got, ok := b.TypeFor(d)
	require.True(t, ok)
	require.Equal(t, "Function -> Promise -> Simple<User>", TypePath(got))

	_, ok = b.TypeFor(MemberDescriptor{Owner: "UserService", Member: "missing"})
	require.False(t, ok)
}

func Test_Bridge_Wire_MalformedIsAbsent(t *testing.T) {
	good := MemberDescriptor{Owner: "Svc", Member: "ok"}
	badDoc := MemberDescriptor{Owner: "Svc", Member: "broken"}
	b := WireBridge{
		good:   []byte(`{"kind": "primitive", "tag": "string"}`),
		badDoc: []byte(`{"kind": "no-such-kind"}`),
	}

	got, ok := b.TypeFor(good)
	require.True(t, ok)
	require.True(t, IsPrimitive(got))

	// A capture that cannot be decoded behaves exactly like a missing one.
	_, ok = b.TypeFor(badDoc)
	require.False(t, ok)
	_, ok = b.TypeFor(MemberDescriptor{Owner: "Svc", Member: "absent"})
	require.False(t, ok)
}

func Test_Bridge_Wire_YAMLDocuments(t *testing.T) {
	d := MemberDescriptor{Owner: "Cfg", Member: "ids"}
	b := WireBridge{
		d: []byte("kind: set\ninner:\n  kind: primitive\n  tag: number\n"),
	}
	got, ok := b.TypeFor(d)
	require.True(t, ok)
	require.Equal(t, "Set -> number", TypePath(got))
}
