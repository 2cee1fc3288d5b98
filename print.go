// print.go
//
// Textual renderings of type trees: a one-line path (TypePath) and a full
// indented dump (TypeTree). Both are deterministic — property maps are
// rendered in sorted key order — so formatting the same tree twice yields
// identical text, which is what the tests lean on.
package inspector

import (
	"sort"
	"strconv"
	"strings"
)

const indentStep = "  "

// -----------------------------
// Shared label helpers
// -----------------------------

// formatScalar renders a literal or enum value. Strings are quoted; numbers
// use the shortest exact representation.
func formatScalar(v any) string {
	switch s := v.(type) {
	case string:
		return quoteString(s)
	case float64:
		return strconv.FormatFloat(s, 'g', -1, 64)
	case bool:
		return strconv.FormatBool(s)
	default:
		return "?"
	}
}

func quoteString(s string) string {
	var b strings.Builder
	b.WriteByte('"')
	for _, r := range s {
		switch r {
		case '\\':
			b.WriteString(`\\`)
		case '"':
			b.WriteString(`\"`)
		case '\n':
			b.WriteString(`\n`)
		case '\t':
			b.WriteString(`\t`)
		default:
			b.WriteRune(r)
		}
	}
	b.WriteByte('"')
	return b.String()
}

// headline is the one-line label of a node: the kind name, with the nominal
// name or value attached where the node carries one.
func headline(t Type) string {
	switch n := t.(type) {
	case *Simple:
		return "Simple<" + n.Name + ">"
	case *Primitive:
		return string(n.Tag)
	case *Array:
		return "Array"
	case *ReadonlyArray:
		return "ReadonlyArray"
	case *Set:
		return "Set"
	case *Promise:
		return "Promise"
	case *PromiseLike:
		return "PromiseLike"
	case *Observable:
		return "Observable"
	case *Map:
		return "Map"
	case *Record:
		return "Record"
	case *Union:
		return "Union"
	case *Intersection:
		return "Intersection"
	case *Optional:
		return "Optional"
	case *Nullable:
		return "Nullable"
	case *Function:
		return "Function"
	case *Class:
		return "Class<" + n.Name + ">"
	case *Interface:
		return "Interface<" + n.Name + ">"
	case *Generic:
		return "Generic<" + n.Name + ">"
	case *Literal:
		return "Literal<" + formatScalar(n.Value) + ">"
	case *Enum:
		return "Enum<" + n.Name + ">"
	case *Tuple:
		return "Tuple"
	case *Object:
		return "Object"
	case *IndexSignature:
		return "IndexSignature"
	case *Conditional:
		return "Conditional"
	case *Mapped:
		return "Mapped"
	case *TemplateLiteral:
		return "TemplateLiteral"
	case *Unknown:
		return "unknown"
	default:
		return "undefined"
	}
}

// -----------------------------
// TypePath
// -----------------------------

// pathStep returns the node's contribution to a path line and the child the
// walk continues into. terminal is true when the walk stops here.
//
// The step convention mirrors ResolveDeepest (union → first non-Unknown
// member, intersection → last member, function → return, ...) with one
// addition: an index signature steps into its value type.
func pathStep(t Type) (label string, next Type, terminal bool) {
	switch n := t.(type) {
	case *Promise:
		return "Promise", n.Inner, false
	case *PromiseLike:
		return "PromiseLike", n.Inner, false
	case *Array:
		return "Array", n.Inner, false
	case *ReadonlyArray:
		return "ReadonlyArray", n.Inner, false
	case *Set:
		return "Set", n.Inner, false
	case *Observable:
		return "Observable", n.Inner, false
	case *Map:
		return "Map", n.Value, false
	case *Record:
		return "Record", n.Value, false
	case *Optional:
		return "Optional", n.Inner, false
	case *Nullable:
		return "Nullable", n.Inner, false
	case *Union:
		if len(n.Types) == 0 {
			return "Union", nil, true
		}
		for _, m := range n.Types {
			if m != nil && m.Kind() != KindUnknown {
				return "Union", m, false
			}
		}
		return "Union", n.Types[0], false
	case *Intersection:
		if len(n.Types) == 0 {
			return "Intersection", nil, true
		}
		return "Intersection", n.Types[len(n.Types)-1], false
	case *Function:
		return "Function", n.Return, false
	case *Generic:
		if len(n.TypeParameters) == 0 {
			return headline(t), nil, true
		}
		return headline(t), n.TypeParameters[0], false
	case *Tuple:
		if len(n.Elements) == 0 {
			return "Tuple", nil, true
		}
		return "Tuple", n.Elements[0], false
	case *IndexSignature:
		return "IndexSignature", n.Value, false
	case *Conditional:
		return "Conditional", n.True, false
	case *Mapped:
		return "Mapped", n.Value, false
	case *TemplateLiteral:
		if len(n.Types) == 0 {
			return "TemplateLiteral", nil, true
		}
		return "TemplateLiteral", n.Types[0], false
	default:
		// Simple, Primitive, Literal, Class, Interface, Object, Enum, Unknown
		return headline(t), nil, true
	}
}

// TypePath renders a single " -> "-joined line following one child per node
// until a terminal kind is reached. Nil renders as the text "undefined".
// A revisited node (cyclic tree) ends the line with "...".
func TypePath(t Type) string {
	if t == nil {
		return "undefined"
	}
	var parts []string
	seen := map[Type]struct{}{}
	for {
		if t == nil {
			parts = append(parts, "undefined")
			break
		}
		if _, ok := seen[t]; ok {
			parts = append(parts, "...")
			break
		}
		seen[t] = struct{}{}
		label, next, terminal := pathStep(t)
		parts = append(parts, label)
		if terminal {
			break
		}
		t = next
	}
	return strings.Join(parts, " -> ")
}

// -----------------------------
// TypeTree
// -----------------------------

// treeOut is a minimal indenting writer.
type treeOut struct {
	b     strings.Builder
	depth int
}

func (o *treeOut) line(s string) {
	for i := 0; i < o.depth; i++ {
		o.b.WriteString(indentStep)
	}
	o.b.WriteString(s)
	o.b.WriteByte('\n')
}

func (o *treeOut) withIndent(fn func()) {
	o.depth++
	fn()
	o.depth--
}

// TypeTree renders the entire tree, one node per line, children indented by
// two spaces per level. Every child of a composite is rendered, not just the
// path child. Nil renders as "undefined"; a node revisited within its own
// ancestry is rendered as its headline with a "(cycle)" marker and is not
// descended into again.
func TypeTree(t Type) string {
	o := &treeOut{}
	writeTree(o, "", t, map[Type]struct{}{})
	return strings.TrimRight(o.b.String(), "\n")
}

func writeTree(o *treeOut, prefix string, t Type, seen map[Type]struct{}) {
	if t == nil {
		o.line(prefix + "undefined")
		return
	}
	if _, ok := seen[t]; ok {
		o.line(prefix + headline(t) + " (cycle)")
		return
	}
	seen[t] = struct{}{}
	defer delete(seen, t)

	o.line(prefix + headline(t))
	switch n := t.(type) {
	case *Array:
		o.withIndent(func() { writeTree(o, "", n.Inner, seen) })
	case *ReadonlyArray:
		o.withIndent(func() { writeTree(o, "", n.Inner, seen) })
	case *Set:
		o.withIndent(func() { writeTree(o, "", n.Inner, seen) })
	case *Promise:
		o.withIndent(func() { writeTree(o, "", n.Inner, seen) })
	case *PromiseLike:
		o.withIndent(func() { writeTree(o, "", n.Inner, seen) })
	case *Observable:
		o.withIndent(func() { writeTree(o, "", n.Inner, seen) })
	case *Optional:
		o.withIndent(func() { writeTree(o, "", n.Inner, seen) })
	case *Nullable:
		o.withIndent(func() { writeTree(o, "", n.Inner, seen) })
	case *Map:
		writeKeyed(o, n.Key, n.Value, seen)
	case *Record:
		writeKeyed(o, n.Key, n.Value, seen)
	case *IndexSignature:
		writeKeyed(o, n.Key, n.Value, seen)
	case *Mapped:
		writeKeyed(o, n.Key, n.Value, seen)
	case *Union:
		o.withIndent(func() {
			for _, m := range n.Types {
				writeTree(o, "", m, seen)
			}
		})
	case *Intersection:
		o.withIndent(func() {
			for _, m := range n.Types {
				writeTree(o, "", m, seen)
			}
		})
	case *Tuple:
		o.withIndent(func() {
			for _, e := range n.Elements {
				writeTree(o, "", e, seen)
			}
		})
	case *Function:
		o.withIndent(func() {
			for i, p := range n.Parameters {
				writeTree(o, "param "+strconv.Itoa(i)+": ", p, seen)
			}
			writeTree(o, "returns: ", n.Return, seen)
		})
	case *Generic:
		o.withIndent(func() {
			for _, p := range n.TypeParameters {
				writeTree(o, "", p, seen)
			}
		})
	case *Class:
		o.withIndent(func() {
			if n.Constructor != nil {
				writeTree(o, "constructor: ", n.Constructor, seen)
			}
			for _, name := range sortedKeys(n.Methods) {
				writeTree(o, name+"(): ", n.Methods[name], seen)
			}
			for _, name := range sortedKeys(n.Properties) {
				writeTree(o, name+": ", n.Properties[name], seen)
			}
		})
	case *Interface:
		writeProps(o, n.Properties, seen)
	case *Object:
		writeProps(o, n.Properties, seen)
	case *Enum:
		o.withIndent(func() {
			for _, name := range sortedScalarKeys(n.Values) {
				o.line(name + " = " + formatScalar(normalizeScalar(n.Values[name])))
			}
		})
	case *Conditional:
		o.withIndent(func() {
			writeTree(o, "check: ", n.Check, seen)
			writeTree(o, "extends: ", n.Extends, seen)
			writeTree(o, "true: ", n.True, seen)
			writeTree(o, "false: ", n.False, seen)
		})
	case *TemplateLiteral:
		o.withIndent(func() {
			for _, p := range n.Parts {
				o.line("part: " + quoteString(p))
			}
			for _, tt := range n.Types {
				writeTree(o, "", tt, seen)
			}
		})
	case *Simple, *Primitive, *Literal, *Unknown:
		// Leaf; the headline says it all.
	}
}

func writeKeyed(o *treeOut, key, value Type, seen map[Type]struct{}) {
	o.withIndent(func() {
		writeTree(o, "key: ", key, seen)
		writeTree(o, "value: ", value, seen)
	})
}

func writeProps(o *treeOut, props map[string]Type, seen map[Type]struct{}) {
	o.withIndent(func() {
		for _, name := range sortedKeys(props) {
			writeTree(o, name+": ", props[name], seen)
		}
	})
}

func sortedKeys(m map[string]Type) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func sortedScalarKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
