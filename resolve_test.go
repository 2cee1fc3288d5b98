package inspector

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// --- single-step unwraps ------------------------------------------------

func Test_Resolve_AwaitedType(t *testing.T) {
	inner := Prim(TagString)
	require.Same(t, Type(inner), AwaitedType(&Promise{Inner: inner}))
	require.Same(t, Type(inner), AwaitedType(&PromiseLike{Inner: inner}))

	// Everything else passes through unchanged, including nil.
	arr := &Array{Inner: inner}
	require.Same(t, Type(arr), AwaitedType(arr))
	require.Nil(t, AwaitedType(nil))
}

func Test_Resolve_ItemType(t *testing.T) {
	inner := Prim(TagNumber)
	require.Same(t, Type(inner), ItemType(&Array{Inner: inner}))
	require.Same(t, Type(inner), ItemType(&ReadonlyArray{Inner: inner}))
	require.Same(t, Type(inner), ItemType(&Set{Inner: inner}))

	p := &Promise{Inner: inner}
	require.Same(t, Type(p), ItemType(p))
	require.Nil(t, ItemType(nil))
}

func Test_Resolve_SubscribedType(t *testing.T) {
	inner := Prim(TagBoolean)
	require.Same(t, Type(inner), SubscribedType(&Observable{Inner: inner}))

	u := union(inner)
	require.Same(t, Type(u), SubscribedType(u))
	require.Nil(t, SubscribedType(nil))
}

// --- deep resolution ------------------------------------------------------

func Test_ResolveDeepest_Union_FirstNonUnknown(t *testing.T) {
	num := Prim(TagNumber)
	u := union(&Unknown{}, num)
	require.Same(t, Type(num), ResolveDeepest(u))
}

func Test_ResolveDeepest_Union_AllUnknown(t *testing.T) {
	first := &Unknown{}
	u := union(first, &Unknown{})
	require.Same(t, Type(first), ResolveDeepest(u))
}

func Test_ResolveDeepest_Containers(t *testing.T) {
	leaf := Lit("done")
	tree := &Promise{Inner: &Array{Inner: &Optional{Inner: leaf}}}
	require.Same(t, Type(leaf), ResolveDeepest(tree))

	require.Same(t, Type(leaf), ResolveDeepest(&Observable{Inner: &Set{Inner: leaf}}))
	require.Same(t, Type(leaf), ResolveDeepest(&Nullable{Inner: &ReadonlyArray{Inner: leaf}}))
}

func Test_ResolveDeepest_MapValue_KeyDiscarded(t *testing.T) {
	value := Prim(TagNumber)
	require.Same(t, Type(value), ResolveDeepest(&Map{Key: Prim(TagString), Value: value}))
	require.Same(t, Type(value), ResolveDeepest(&Record{Key: Prim(TagString), Value: value}))
	require.Same(t, Type(value), ResolveDeepest(&Mapped{Key: Prim(TagString), Value: value}))
}

func Test_ResolveDeepest_Intersection_LastMember(t *testing.T) {
	last := &Interface{Name: "Narrow"}
	i := intersection(&Interface{Name: "Wide"}, last)
	require.Same(t, Type(last), ResolveDeepest(i))
}

func Test_ResolveDeepest_Function_ReturnType(t *testing.T) {
	ret := Prim(TagString)
	require.Same(t, Type(ret), ResolveDeepest(fn(ret, Prim(TagNumber))))
}

func Test_ResolveDeepest_Generic_And_Tuple(t *testing.T) {
	first := Prim(TagString)
	require.Same(t, Type(first), ResolveDeepest(&Generic{Name: "Box", TypeParameters: []Type{first, Prim(TagNumber)}}))
	require.Same(t, Type(first), ResolveDeepest(&Tuple{Elements: []Type{first, Prim(TagNumber)}}))

	// Empty parameter/element lists violate the input contract and resolve
	// to Unknown.
	require.Equal(t, KindUnknown, ResolveDeepest(&Generic{Name: "Box"}).Kind())
	require.Equal(t, KindUnknown, ResolveDeepest(&Tuple{}).Kind())
	require.Equal(t, KindUnknown, ResolveDeepest(&TemplateLiteral{Parts: []string{"a"}}).Kind())
}

func Test_ResolveDeepest_Conditional_TrueBranch(t *testing.T) {
	trueT := Lit("yes")
	c := &Conditional{
		Check:   &Simple{Name: "T"},
		Extends: Prim(TagString),
		True:    trueT,
		False:   Lit("no"),
	}
	// The check relation is never evaluated; the true branch always wins.
	require.Same(t, Type(trueT), ResolveDeepest(c))
}

func Test_ResolveDeepest_TemplateLiteral_FirstType(t *testing.T) {
	first := Prim(TagString)
	tl := &TemplateLiteral{Parts: []string{"id-", ""}, Types: []Type{first, Prim(TagNumber)}}
	require.Same(t, Type(first), ResolveDeepest(tl))
}

func Test_ResolveDeepest_Terminals_ReturnedAsIs(t *testing.T) {
	terminals := []Type{
		&Class{Name: "User"},
		&Interface{Name: "HasID"},
		obj(map[string]Type{"id": Prim(TagNumber)}),
		&Simple{Name: "Opaque"},
		Prim(TagBigint),
		Lit(42),
		&Enum{Name: "Color", Values: map[string]any{"Red": 0.0}},
		&IndexSignature{Key: Prim(TagString), Value: Prim(TagNumber)},
		&Unknown{},
	}
	for _, term := range terminals {
		require.Same(t, term, ResolveDeepest(term))
	}
}

func Test_ResolveDeepest_NilInput(t *testing.T) {
	require.Nil(t, ResolveDeepest(nil))
}

func Test_ResolveDeepest_Cyclic_Terminates(t *testing.T) {
	arr := &Array{}
	arr.Inner = arr
	require.Same(t, Type(arr), ResolveDeepest(arr))

	// A cycle through several nodes also terminates.
	p := &Promise{}
	o := &Optional{Inner: p}
	p.Inner = o
	got := ResolveDeepest(p)
	require.NotNil(t, got)
}
