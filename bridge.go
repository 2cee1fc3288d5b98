// bridge.go
//
// The metadata bridge contract and the wire codec for type-description
// trees.
//
// The bridge is the external collaborator that captures type trees from a
// host reflection or annotation mechanism. The core never drives it: callers
// pass an explicit member descriptor and get back an optional tree. There is
// no ambient registry and no caching — every lookup is independent.
//
// The codec serializes the trees themselves (not runtime values): a JSON or
// YAML object per node with a "kind" discriminator and kind-specific fields.
// Decoding is lenient at the bridge boundary: a malformed or unrecognized
// document is indistinguishable from an absent one, which matches how the
// rest of the package treats missing input.
package inspector

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// MemberDescriptor names a member of an owner: a method parameter, a
// property, a field — whatever the capture side indexed its metadata by.
type MemberDescriptor struct {
	Owner  string
	Member string
}

// MetadataBridge resolves a member descriptor to a type tree. ok is false
// when no metadata exists for the descriptor. Implementations must be
// stateless from the caller's point of view: same descriptor, same answer.
type MetadataBridge interface {
	TypeFor(d MemberDescriptor) (Type, bool)
}

// StaticBridge is a MetadataBridge over a fixed descriptor→tree table, the
// form demo and test code uses.
type StaticBridge map[MemberDescriptor]Type

func (b StaticBridge) TypeFor(d MemberDescriptor) (Type, bool) {
	t, ok := b[d]
	if t == nil {
		return nil, false
	}
	return t, ok
}

// WireBridge is a MetadataBridge over raw serialized documents, decoded on
// each lookup. An entry that fails to decode is reported as absent — a
// broken capture never surfaces as an error here.
type WireBridge map[MemberDescriptor][]byte

func (b WireBridge) TypeFor(d MemberDescriptor) (Type, bool) {
	raw, ok := b[d]
	if !ok {
		return nil, false
	}
	t, err := ParseType(raw)
	if err != nil {
		t, err = ParseTypeYAML(raw)
	}
	if err != nil || t == nil {
		return nil, false
	}
	return t, true
}

// -----------------------------
// Encoding
// -----------------------------

// MarshalType serializes a tree as JSON. Nil marshals as JSON null. A node
// revisited within its own ancestry (a cyclic tree) is emitted as the
// unknown node, the same current-partial-result treatment the walks in
// resolve.go and print.go apply.
func MarshalType(t Type) ([]byte, error) {
	return json.Marshal(wireNode(t, map[Type]struct{}{}))
}

func wireNode(t Type, seen map[Type]struct{}) map[string]any {
	if t == nil {
		return nil
	}
	if _, ok := seen[t]; ok {
		return map[string]any{"kind": KindUnknown.String()}
	}
	seen[t] = struct{}{}
	defer delete(seen, t)

	doc := map[string]any{"kind": t.Kind().String()}
	switch n := t.(type) {
	case *Simple:
		doc["name"] = n.Name
	case *Primitive:
		doc["tag"] = string(n.Tag)
	case *Array:
		doc["inner"] = wireNode(n.Inner, seen)
	case *ReadonlyArray:
		doc["inner"] = wireNode(n.Inner, seen)
	case *Set:
		doc["inner"] = wireNode(n.Inner, seen)
	case *Promise:
		doc["inner"] = wireNode(n.Inner, seen)
	case *PromiseLike:
		doc["inner"] = wireNode(n.Inner, seen)
	case *Observable:
		doc["inner"] = wireNode(n.Inner, seen)
	case *Map:
		doc["key"] = wireNode(n.Key, seen)
		doc["value"] = wireNode(n.Value, seen)
	case *Record:
		doc["key"] = wireNode(n.Key, seen)
		doc["value"] = wireNode(n.Value, seen)
	case *Union:
		doc["types"] = wireList(n.Types, seen)
	case *Intersection:
		doc["types"] = wireList(n.Types, seen)
	case *Optional:
		doc["inner"] = wireNode(n.Inner, seen)
	case *Nullable:
		doc["inner"] = wireNode(n.Inner, seen)
	case *Function:
		doc["parameters"] = wireList(n.Parameters, seen)
		doc["returnType"] = wireNode(n.Return, seen)
	case *Class:
		doc["name"] = n.Name
		doc["constructorType"] = wireNode(n.Constructor, seen)
		doc["methods"] = wireProps(n.Methods, seen)
		doc["properties"] = wireProps(n.Properties, seen)
	case *Interface:
		doc["name"] = n.Name
		doc["properties"] = wireProps(n.Properties, seen)
	case *Generic:
		doc["name"] = n.Name
		doc["typeParameters"] = wireList(n.TypeParameters, seen)
	case *Literal:
		doc["value"] = n.Value
	case *Enum:
		doc["name"] = n.Name
		doc["values"] = n.Values
	case *Tuple:
		doc["elements"] = wireList(n.Elements, seen)
	case *Object:
		doc["properties"] = wireProps(n.Properties, seen)
	case *IndexSignature:
		doc["keyType"] = wireNode(n.Key, seen)
		doc["valueType"] = wireNode(n.Value, seen)
	case *Conditional:
		doc["checkType"] = wireNode(n.Check, seen)
		doc["extendsType"] = wireNode(n.Extends, seen)
		doc["trueType"] = wireNode(n.True, seen)
		doc["falseType"] = wireNode(n.False, seen)
	case *Mapped:
		doc["keyType"] = wireNode(n.Key, seen)
		doc["valueType"] = wireNode(n.Value, seen)
	case *TemplateLiteral:
		doc["parts"] = n.Parts
		doc["types"] = wireList(n.Types, seen)
	case *Unknown:
		// kind only
	}
	return doc
}

func wireList(ts []Type, seen map[Type]struct{}) []any {
	out := make([]any, 0, len(ts))
	for _, t := range ts {
		out = append(out, wireNode(t, seen))
	}
	return out
}

func wireProps(props map[string]Type, seen map[Type]struct{}) map[string]any {
	out := make(map[string]any, len(props))
	for name, t := range props {
		out[name] = wireNode(t, seen)
	}
	return out
}

// -----------------------------
// Decoding
// -----------------------------

// ParseType decodes a JSON tree document. A syntactically valid document
// with an unrecognized kind or missing fields is an error; bridge
// implementations translate any error to "absent".
func ParseType(data []byte) (Type, error) {
	var doc map[string]any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse type document: %w", err)
	}
	return decodeNode(doc)
}

// ParseTypeYAML decodes a YAML tree document with the same field layout as
// the JSON form.
func ParseTypeYAML(data []byte) (Type, error) {
	var doc map[string]any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse type document: %w", err)
	}
	return decodeNode(doc)
}

func decodeNode(doc map[string]any) (Type, error) {
	if doc == nil {
		return nil, nil
	}
	kind, ok := doc["kind"].(string)
	if !ok {
		return nil, fmt.Errorf("type document missing kind")
	}
	switch kind {
	case "simple":
		name, err := docString(doc, "name")
		if err != nil {
			return nil, err
		}
		return &Simple{Name: name}, nil
	case "primitive":
		tag, err := docString(doc, "tag")
		if err != nil {
			return nil, err
		}
		switch PrimitiveTag(tag) {
		case TagString, TagNumber, TagBoolean, TagBigint, TagSymbol, TagUndefined, TagNull, TagAny:
			return &Primitive{Tag: PrimitiveTag(tag)}, nil
		}
		return nil, fmt.Errorf("unknown primitive tag %q", tag)
	case "array":
		inner, err := docChild(doc, "inner")
		if err != nil {
			return nil, err
		}
		return &Array{Inner: inner}, nil
	case "readonlyArray":
		inner, err := docChild(doc, "inner")
		if err != nil {
			return nil, err
		}
		return &ReadonlyArray{Inner: inner}, nil
	case "set":
		inner, err := docChild(doc, "inner")
		if err != nil {
			return nil, err
		}
		return &Set{Inner: inner}, nil
	case "promise":
		inner, err := docChild(doc, "inner")
		if err != nil {
			return nil, err
		}
		return &Promise{Inner: inner}, nil
	case "promiseLike":
		inner, err := docChild(doc, "inner")
		if err != nil {
			return nil, err
		}
		return &PromiseLike{Inner: inner}, nil
	case "observable":
		inner, err := docChild(doc, "inner")
		if err != nil {
			return nil, err
		}
		return &Observable{Inner: inner}, nil
	case "map":
		key, value, err := docKeyValue(doc, "key", "value")
		if err != nil {
			return nil, err
		}
		return &Map{Key: key, Value: value}, nil
	case "record":
		key, value, err := docKeyValue(doc, "key", "value")
		if err != nil {
			return nil, err
		}
		return &Record{Key: key, Value: value}, nil
	case "union":
		types, err := docChildren(doc, "types")
		if err != nil {
			return nil, err
		}
		if len(types) == 0 {
			return nil, fmt.Errorf("union with no members")
		}
		return &Union{Types: types}, nil
	case "intersection":
		types, err := docChildren(doc, "types")
		if err != nil {
			return nil, err
		}
		if len(types) == 0 {
			return nil, fmt.Errorf("intersection with no members")
		}
		return &Intersection{Types: types}, nil
	case "optional":
		inner, err := docChild(doc, "inner")
		if err != nil {
			return nil, err
		}
		return &Optional{Inner: inner}, nil
	case "nullable":
		inner, err := docChild(doc, "inner")
		if err != nil {
			return nil, err
		}
		return &Nullable{Inner: inner}, nil
	case "function":
		params, err := docChildren(doc, "parameters")
		if err != nil {
			return nil, err
		}
		ret, err := docChild(doc, "returnType")
		if err != nil {
			return nil, err
		}
		return &Function{Parameters: params, Return: ret}, nil
	case "class":
		name, err := docString(doc, "name")
		if err != nil {
			return nil, err
		}
		ctor, err := docChildOptional(doc, "constructorType")
		if err != nil {
			return nil, err
		}
		methods, err := docProps(doc, "methods")
		if err != nil {
			return nil, err
		}
		props, err := docProps(doc, "properties")
		if err != nil {
			return nil, err
		}
		return &Class{Name: name, Constructor: ctor, Methods: methods, Properties: props}, nil
	case "interface":
		name, err := docString(doc, "name")
		if err != nil {
			return nil, err
		}
		props, err := docProps(doc, "properties")
		if err != nil {
			return nil, err
		}
		return &Interface{Name: name, Properties: props}, nil
	case "generic":
		name, err := docString(doc, "name")
		if err != nil {
			return nil, err
		}
		params, err := docChildren(doc, "typeParameters")
		if err != nil {
			return nil, err
		}
		return &Generic{Name: name, TypeParameters: params}, nil
	case "literal":
		switch v := doc["value"].(type) {
		case string, bool:
			return &Literal{Value: v}, nil
		case float64, int, int64:
			return Lit(v), nil
		default:
			return nil, fmt.Errorf("literal value must be string, number, or boolean")
		}
	case "enum":
		name, err := docString(doc, "name")
		if err != nil {
			return nil, err
		}
		values, err := docScalars(doc, "values")
		if err != nil {
			return nil, err
		}
		return &Enum{Name: name, Values: values}, nil
	case "tuple":
		elems, err := docChildren(doc, "elements")
		if err != nil {
			return nil, err
		}
		return &Tuple{Elements: elems}, nil
	case "object":
		props, err := docProps(doc, "properties")
		if err != nil {
			return nil, err
		}
		return &Object{Properties: props}, nil
	case "indexSignature":
		key, value, err := docKeyValue(doc, "keyType", "valueType")
		if err != nil {
			return nil, err
		}
		return &IndexSignature{Key: key, Value: value}, nil
	case "conditional":
		check, err := docChild(doc, "checkType")
		if err != nil {
			return nil, err
		}
		extends, err := docChild(doc, "extendsType")
		if err != nil {
			return nil, err
		}
		trueT, err := docChild(doc, "trueType")
		if err != nil {
			return nil, err
		}
		falseT, err := docChild(doc, "falseType")
		if err != nil {
			return nil, err
		}
		return &Conditional{Check: check, Extends: extends, True: trueT, False: falseT}, nil
	case "mapped":
		key, value, err := docKeyValue(doc, "keyType", "valueType")
		if err != nil {
			return nil, err
		}
		return &Mapped{Key: key, Value: value}, nil
	case "templateLiteral":
		parts, err := docStrings(doc, "parts")
		if err != nil {
			return nil, err
		}
		types, err := docChildren(doc, "types")
		if err != nil {
			return nil, err
		}
		return &TemplateLiteral{Parts: parts, Types: types}, nil
	case "unknown":
		return &Unknown{}, nil
	default:
		return nil, fmt.Errorf("unknown type kind %q", kind)
	}
}

func docString(doc map[string]any, field string) (string, error) {
	s, ok := doc[field].(string)
	if !ok {
		return "", fmt.Errorf("field %q missing or not a string", field)
	}
	return s, nil
}

func docChild(doc map[string]any, field string) (Type, error) {
	sub, ok := doc[field].(map[string]any)
	if !ok {
		return nil, fmt.Errorf("field %q missing or not a node", field)
	}
	return decodeNode(sub)
}

func docChildOptional(doc map[string]any, field string) (Type, error) {
	raw, ok := doc[field]
	if !ok || raw == nil {
		return nil, nil
	}
	sub, ok := raw.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("field %q not a node", field)
	}
	return decodeNode(sub)
}

func docKeyValue(doc map[string]any, keyField, valueField string) (Type, Type, error) {
	key, err := docChild(doc, keyField)
	if err != nil {
		return nil, nil, err
	}
	value, err := docChild(doc, valueField)
	if err != nil {
		return nil, nil, err
	}
	return key, value, nil
}

func docChildren(doc map[string]any, field string) ([]Type, error) {
	raw, ok := doc[field]
	if !ok || raw == nil {
		return nil, nil
	}
	list, ok := raw.([]any)
	if !ok {
		return nil, fmt.Errorf("field %q not a list", field)
	}
	out := make([]Type, 0, len(list))
	for _, item := range list {
		sub, ok := item.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("field %q holds a non-node entry", field)
		}
		t, err := decodeNode(sub)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, nil
}

func docStrings(doc map[string]any, field string) ([]string, error) {
	raw, ok := doc[field]
	if !ok || raw == nil {
		return nil, nil
	}
	list, ok := raw.([]any)
	if !ok {
		return nil, fmt.Errorf("field %q not a list", field)
	}
	out := make([]string, 0, len(list))
	for _, item := range list {
		s, ok := item.(string)
		if !ok {
			return nil, fmt.Errorf("field %q holds a non-string entry", field)
		}
		out = append(out, s)
	}
	return out, nil
}

func docProps(doc map[string]any, field string) (map[string]Type, error) {
	raw, ok := doc[field]
	if !ok || raw == nil {
		return nil, nil
	}
	m, ok := raw.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("field %q not a property map", field)
	}
	out := make(map[string]Type, len(m))
	for name, item := range m {
		sub, ok := item.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("property %q is not a node", name)
		}
		t, err := decodeNode(sub)
		if err != nil {
			return nil, err
		}
		out[name] = t
	}
	return out, nil
}

func docScalars(doc map[string]any, field string) (map[string]any, error) {
	raw, ok := doc[field]
	if !ok || raw == nil {
		return nil, nil
	}
	m, ok := raw.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("field %q not a value map", field)
	}
	out := make(map[string]any, len(m))
	for name, v := range m {
		switch v.(type) {
		case string, float64, int, int64:
			out[name] = normalizeScalar(v)
		default:
			return nil, fmt.Errorf("enum value %q must be a string or number", name)
		}
	}
	return out, nil
}
