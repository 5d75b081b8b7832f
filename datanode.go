package monocle

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/buger/jsonparser"
)

// dataNode is the engine's own TaggedValue. Resource maps are parsed into
// dataNode trees once at load time and never mutated afterwards.
type dataNode struct {
	tag    DataTag
	b      bool
	n      float64
	s      []byte
	items  []*dataNode
	fields map[string]*dataNode
}

var nullNode = &dataNode{tag: DataNull}

func (n *dataNode) Tag() DataTag    { return n.tag }
func (n *dataNode) Boolean() bool   { return n.b }
func (n *dataNode) Number() float64 { return n.n }
func (n *dataNode) Bytes() []byte   { return n.s }
func (n *dataNode) Len() int        { return len(n.items) }

func (n *dataNode) Index(i int) TaggedValue {
	if i < 0 || i >= len(n.items) {
		return nil
	}
	return n.items[i]
}

// Each visits object members in Go map order.
func (n *dataNode) Each(fn func(key []byte, value TaggedValue)) {
	for k, v := range n.fields {
		fn([]byte(k), v)
	}
}

// lookup returns the member with the given key, or nil when n is not an
// object or has no such member.
func (n *dataNode) lookup(key string) *dataNode {
	if n == nil || n.tag != DataObject {
		return nil
	}
	return n.fields[key]
}

// number returns the numeric member key, or def when it is missing or not a
// number.
func (n *dataNode) number(key string, def float64) float64 {
	if v := n.lookup(key); v != nil && v.tag == DataNumber {
		return v.n
	}
	return def
}

// str returns the string member key and whether it was present as a string.
func (n *dataNode) str(key string) (string, bool) {
	if v := n.lookup(key); v != nil && v.tag == DataString {
		return string(v.s), true
	}
	return "", false
}

// maxParseDepth bounds parser recursion on hostile resource files.
const maxParseDepth = 4096

// parseData parses a JSON document into an engine-owned tree. The whole
// document must be valid JSON; jsonparser only scans what it extracts.
func parseData(data []byte) (*dataNode, error) {
	if !json.Valid(data) {
		return nil, fmt.Errorf("monocle: parse data: document is not valid JSON")
	}
	value, typ, end, err := jsonparser.Get(data)
	if err != nil {
		return nil, fmt.Errorf("monocle: parse data: %w", err)
	}
	if len(bytes.TrimSpace(data[end:])) > 0 {
		return nil, fmt.Errorf("monocle: parse data: trailing content at offset %d", end)
	}
	return parseValue(value, typ, 0)
}

// unescape decodes the body of a JSON string. jsonparser rejects lone
// surrogates; those fall back to encoding/json, which maps them to U+FFFD.
func unescape(raw []byte) ([]byte, error) {
	s, err := jsonparser.Unescape(raw, nil)
	if err == nil {
		return s, nil
	}
	quoted := make([]byte, 0, len(raw)+2)
	quoted = append(append(append(quoted, '"'), raw...), '"')
	var str string
	if jerr := json.Unmarshal(quoted, &str); jerr != nil {
		return nil, err
	}
	return []byte(str), nil
}

func parseValue(value []byte, typ jsonparser.ValueType, depth int) (*dataNode, error) {
	if depth > maxParseDepth {
		return nil, fmt.Errorf("monocle: parse data: nesting exceeds %d", maxParseDepth)
	}
	switch typ {
	case jsonparser.Null:
		return nullNode, nil
	case jsonparser.Boolean:
		b, err := jsonparser.ParseBoolean(value)
		if err != nil {
			return nil, fmt.Errorf("monocle: parse boolean: %w", err)
		}
		return &dataNode{tag: DataBoolean, b: b}, nil
	case jsonparser.Number:
		f, err := jsonparser.ParseFloat(value)
		if err != nil {
			return nil, fmt.Errorf("monocle: parse number %q: %w", value, err)
		}
		return &dataNode{tag: DataNumber, n: f}, nil
	case jsonparser.String:
		s, err := unescape(value)
		if err != nil {
			return nil, fmt.Errorf("monocle: parse string: %w", err)
		}
		// Unescape may return its input; the tree must not alias the file.
		return &dataNode{tag: DataString, s: append([]byte(nil), s...)}, nil
	case jsonparser.Array:
		node := &dataNode{tag: DataArray}
		var inner error
		_, err := jsonparser.ArrayEach(value, func(v []byte, t jsonparser.ValueType, _ int, err error) {
			if inner != nil {
				return
			}
			if err != nil {
				inner = err
				return
			}
			child, err := parseValue(v, t, depth+1)
			if err != nil {
				inner = err
				return
			}
			node.items = append(node.items, child)
		})
		if inner != nil {
			return nil, inner
		}
		if err != nil {
			return nil, fmt.Errorf("monocle: parse array: %w", err)
		}
		return node, nil
	case jsonparser.Object:
		node := &dataNode{tag: DataObject, fields: make(map[string]*dataNode)}
		err := jsonparser.ObjectEach(value, func(k, v []byte, t jsonparser.ValueType, _ int) error {
			key, err := unescape(k)
			if err != nil {
				return fmt.Errorf("monocle: parse key %q: %w", k, err)
			}
			child, err := parseValue(v, t, depth+1)
			if err != nil {
				return err
			}
			node.fields[string(key)] = child
			return nil
		})
		if err != nil {
			return nil, err
		}
		return node, nil
	default:
		return nil, fmt.Errorf("monocle: parse data: unexpected value %q", value)
	}
}
