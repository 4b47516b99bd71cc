package jsvalue

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/vmihailenco/msgpack/v5"
	"gopkg.in/yaml.v3"
)

// Sentinel errors for document decoding.
var (
	ErrInvalidDocument = errors.New("jsvalue: invalid document")
	ErrUnknownFormat   = errors.New("jsvalue: unknown document format")
)

// RawTag is the YAML tag that marks a scalar as Raw JavaScript:
//
//	toggle: !raw "function() { this.open = !this.open }"
const RawTag = "!raw"

// Format names a document encoding accepted by Decode.
type Format string

const (
	FormatJSON    Format = "json"
	FormatYAML    Format = "yaml"
	FormatMsgpack Format = "msgpack"
)

// ParseFormat maps a format name or file extension ("yaml", ".yml",
// "msgpack", ".mp", ...) to a Format.
func ParseFormat(name string) (Format, error) {
	switch name {
	case "json", ".json":
		return FormatJSON, nil
	case "yaml", "yml", ".yaml", ".yml":
		return FormatYAML, nil
	case "msgpack", "mp", ".msgpack", ".mp":
		return FormatMsgpack, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, name)
}

// Decode reads a document in the given format.
func Decode(format Format, data []byte) (Value, error) {
	switch format {
	case FormatJSON:
		return FromJSON(data)
	case FormatYAML:
		return FromYAML(data)
	case FormatMsgpack:
		return FromMsgpack(data)
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
}

// FromJSON decodes a JSON document into a Value. Object members keep the
// order they have in the document, which decoding into map[string]any loses.
func FromJSON(data []byte) (Value, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	v, err := decodeJSON(dec)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, fmt.Errorf("%w: trailing data after top-level value", ErrInvalidDocument)
	}
	return v, nil
}

func decodeJSON(dec *json.Decoder) (Value, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '[':
			a := Array{}
			for dec.More() {
				e, err := decodeJSON(dec)
				if err != nil {
					return nil, err
				}
				a = append(a, e)
			}
			if _, err := dec.Token(); err != nil {
				return nil, err
			}
			return a, nil
		case '{':
			o := Object{}
			for dec.More() {
				kt, err := dec.Token()
				if err != nil {
					return nil, err
				}
				key, ok := kt.(string)
				if !ok {
					return nil, fmt.Errorf("unexpected object key %v", kt)
				}
				e, err := decodeJSON(dec)
				if err != nil {
					return nil, err
				}
				o = o.Set(key, e)
			}
			if _, err := dec.Token(); err != nil {
				return nil, err
			}
			return o, nil
		}
		return nil, fmt.Errorf("unexpected delimiter %v", t)
	}
	return From(tok), nil
}

// FromYAML decodes a YAML document into a Value. Mapping keys keep document
// order, aliases are resolved and scalars tagged !raw become Raw.
func FromYAML(data []byte) (Value, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}
	if doc.Kind == 0 {
		// Empty input.
		return Null{}, nil
	}
	v, err := fromYAMLNode(&doc)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}
	return v, nil
}

func fromYAMLNode(n *yaml.Node) (Value, error) {
	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return Null{}, nil
		}
		return fromYAMLNode(n.Content[0])
	case yaml.AliasNode:
		return fromYAMLNode(n.Alias)
	case yaml.SequenceNode:
		a := make(Array, 0, len(n.Content))
		for _, c := range n.Content {
			e, err := fromYAMLNode(c)
			if err != nil {
				return nil, err
			}
			a = append(a, e)
		}
		return a, nil
	case yaml.MappingNode:
		return fromYAMLMapping(n)
	case yaml.ScalarNode:
		if n.Tag == RawTag {
			return Raw(n.Value), nil
		}
		var x any
		if err := n.Decode(&x); err != nil {
			return nil, fmt.Errorf("line %d: %v", n.Line, err)
		}
		return From(x), nil
	}
	return nil, fmt.Errorf("line %d: unsupported node kind %d", n.Line, n.Kind)
}

// fromYAMLMapping converts a mapping, splicing in merge keys (<<). Keys
// written in the mapping itself win over merged ones, and among merged
// mappings the first one listed wins.
func fromYAMLMapping(n *yaml.Node) (Value, error) {
	local := make(map[string]bool, len(n.Content)/2)
	for i := 0; i+1 < len(n.Content); i += 2 {
		k := n.Content[i]
		if k.Kind != yaml.ScalarNode {
			return nil, fmt.Errorf("line %d: mapping key must be a scalar", k.Line)
		}
		if !isMergeKey(k) {
			local[k.Value] = true
		}
	}

	o := make(Object, 0, len(n.Content)/2)
	for i := 0; i+1 < len(n.Content); i += 2 {
		k, v := n.Content[i], n.Content[i+1]
		if !isMergeKey(k) {
			e, err := fromYAMLNode(v)
			if err != nil {
				return nil, err
			}
			o = o.Set(k.Value, e)
			continue
		}

		sources := []*yaml.Node{v}
		if v := resolveAlias(v); v.Kind == yaml.SequenceNode {
			sources = v.Content
		}
		for _, src := range sources {
			if resolveAlias(src).Kind != yaml.MappingNode {
				return nil, fmt.Errorf("line %d: merge value must be a mapping or a sequence of mappings", src.Line)
			}
			merged, err := fromYAMLNode(src)
			if err != nil {
				return nil, err
			}
			for _, m := range merged.(Object) {
				if local[m.Key] {
					continue
				}
				if _, ok := o.Get(m.Key); ok {
					continue
				}
				o = append(o, m)
			}
		}
	}
	return o, nil
}

func isMergeKey(k *yaml.Node) bool {
	return k.Kind == yaml.ScalarNode && k.ShortTag() == "!!merge"
}

func resolveAlias(n *yaml.Node) *yaml.Node {
	for n.Kind == yaml.AliasNode {
		n = n.Alias
	}
	return n
}

// FromMsgpack decodes a MessagePack document into a Value. Map entries keep
// the order they were encoded in.
func FromMsgpack(data []byte) (Value, error) {
	r := bytes.NewReader(data)
	dec := msgpack.NewDecoder(r)
	dec.SetMapDecoder(decodeMsgpackMap)
	x, err := dec.DecodeInterface()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}
	if r.Len() > 0 {
		return nil, fmt.Errorf("%w: trailing data after top-level value", ErrInvalidDocument)
	}
	return From(x), nil
}

// decodeMsgpackMap decodes a map as an ordered Object. Nested maps reach it
// again through DecodeInterface.
func decodeMsgpackMap(dec *msgpack.Decoder) (any, error) {
	n, err := dec.DecodeMapLen()
	if err != nil {
		return nil, err
	}
	if n == -1 {
		return Null{}, nil
	}
	o := make(Object, 0, n)
	for i := 0; i < n; i++ {
		k, err := dec.DecodeInterface()
		if err != nil {
			return nil, err
		}
		key, ok := k.(string)
		if !ok {
			key = fmt.Sprint(k)
		}
		v, err := dec.DecodeInterface()
		if err != nil {
			return nil, err
		}
		o = o.Set(key, From(v))
	}
	return o, nil
}
