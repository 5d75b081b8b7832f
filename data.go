package monocle

import (
	"fmt"
	"strconv"
	"unicode/utf8"
)

// DataTag identifies the payload of a TaggedValue.
type DataTag uint8

const (
	DataNull    DataTag = iota // no payload
	DataBoolean                // Boolean()
	DataNumber                 // Number(), always float64
	DataString                 // Bytes()
	DataArray                  // Len() and Index()
	DataObject                 // Each()
)

// String returns the tag name.
func (t DataTag) String() string {
	switch t {
	case DataNull:
		return "null"
	case DataBoolean:
		return "boolean"
	case DataNumber:
		return "number"
	case DataString:
		return "string"
	case DataArray:
		return "array"
	case DataObject:
		return "object"
	default:
		return "DataTag(" + strconv.Itoa(int(t)) + ")"
	}
}

// TaggedValue is semi-structured data owned by the engine. Only the accessor
// matching Tag is meaningful. Bytes may alias engine memory and Each visits
// object members in an unspecified order.
//
// A TaggedValue is only valid until the engine unloads the resource map that
// produced it; use Decode to get an independent copy.
type TaggedValue interface {
	Tag() DataTag
	Boolean() bool
	Number() float64
	Bytes() []byte
	Len() int
	Index(i int) TaggedValue
	Each(fn func(key []byte, value TaggedValue))
}

// DefaultMaxDepth is the nesting limit used by Decode.
const DefaultMaxDepth = 1000

// Decode converts an engine-owned tagged tree into plain Go values:
// nil, bool, float64, string, []any and map[string]any. The result shares no
// memory with v. A nil v decodes to nil.
//
// Decoding is all or nothing: on error the returned value is nil.
func Decode(v TaggedValue) (any, error) {
	return DecodeDepth(v, DefaultMaxDepth)
}

// DecodeDepth is Decode with an explicit nesting limit. The root sits at
// depth 0; a value deeper than maxDepth fails with ErrDataTooDeep.
// A non-positive maxDepth selects DefaultMaxDepth.
func DecodeDepth(v TaggedValue, maxDepth int) (any, error) {
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}
	d := decoder{maxDepth: maxDepth}
	out, err := d.decode(v, 0)
	if err != nil {
		return nil, err
	}
	return out, nil
}

type decoder struct {
	maxDepth int
	path     []string
}

func (d *decoder) fail(err error, detail string) error {
	return &DecodeError{
		Op:     "decode",
		Path:   append([]string(nil), d.path...),
		Detail: detail,
		Err:    err,
	}
}

func (d *decoder) decode(v TaggedValue, depth int) (any, error) {
	if v == nil {
		return nil, nil
	}
	if depth > d.maxDepth {
		return nil, d.fail(ErrDataTooDeep, fmt.Sprintf("limit %d", d.maxDepth))
	}

	switch tag := v.Tag(); tag {
	case DataNull:
		return nil, nil
	case DataBoolean:
		return v.Boolean(), nil
	case DataNumber:
		return v.Number(), nil
	case DataString:
		b := v.Bytes()
		if !utf8.Valid(b) {
			return nil, d.fail(ErrMalformedData, "string is not valid UTF-8")
		}
		return string(b), nil
	case DataArray:
		n := v.Len()
		list := make([]any, n)
		for i := 0; i < n; i++ {
			d.path = append(d.path, "["+strconv.Itoa(i)+"]")
			item, err := d.decode(v.Index(i), depth+1)
			if err != nil {
				return nil, err
			}
			d.path = d.path[:len(d.path)-1]
			list[i] = item
		}
		return list, nil
	case DataObject:
		m := make(map[string]any)
		var err error
		v.Each(func(key []byte, child TaggedValue) {
			if err != nil {
				return
			}
			if !utf8.Valid(key) {
				err = d.fail(ErrMalformedData, "key is not valid UTF-8")
				return
			}
			k := string(key)
			d.path = append(d.path, k)
			var item any
			item, err = d.decode(child, depth+1)
			if err != nil {
				return
			}
			d.path = d.path[:len(d.path)-1]
			m[k] = item
		})
		if err != nil {
			return nil, err
		}
		return m, nil
	default:
		return nil, d.fail(ErrMalformedData, "tag "+tag.String())
	}
}
