package sortedmap

import (
	"bytes"
	"encoding/json"

	"github.com/UnsavedDragon/RedBlackTree/merrs"
	"github.com/spf13/cast"
)

// MarshalJSON encodes sm as a JSON object with the keys in map order.
// Non-string keys are cast to their string form.
func MarshalJSON(sm SortedMap) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	var err error
	first := true
	sm.Fetch(func(key interface{}, value interface{}) bool {
		if !first {
			buf.WriteByte(',')
		}
		first = false
		var kbs, vbs []byte
		if kbs, err = json.Marshal(cast.ToString(key)); err != nil {
			return false
		}
		if vbs, err = json.Marshal(value); err != nil {
			return false
		}
		buf.Write(kbs)
		buf.WriteByte(':')
		buf.Write(vbs)
		return true
	})
	if err != nil {
		return nil, err
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON decodes a JSON object into sm, keeping the document's
// key order. Nested objects decode as *TreeMap so their order survives
// too; arrays decode as []interface{}.
func UnmarshalJSON(sm SortedMap, bs []byte) error {
	dec := json.NewDecoder(bytes.NewReader(bs))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return merrs.ErrParams.New("not a JSON object: starts with %v", tok)
	}
	return decodeObjectInto(dec, sm)
}

func decodeObjectInto(dec *json.Decoder, sm SortedMap) error {
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := tok.(string)
		if !ok {
			return merrs.ErrParams.New("object key %v is not a string", tok)
		}
		value, err := decodeValue(dec)
		if err != nil {
			return err
		}
		sm.Put(key, value)
	}
	// consume the closing brace
	_, err := dec.Token()
	return err
}

func decodeValue(dec *json.Decoder) (interface{}, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	switch tok := tok.(type) {
	case json.Delim:
		switch tok {
		case '{':
			sm := NewTreeMap()
			if err := decodeObjectInto(dec, sm); err != nil {
				return nil, err
			}
			return sm, nil
		case '[':
			arr := []interface{}{}
			for dec.More() {
				v, err := decodeValue(dec)
				if err != nil {
					return nil, err
				}
				arr = append(arr, v)
			}
			if _, err := dec.Token(); err != nil {
				return nil, err
			}
			return arr, nil
		default:
			return nil, merrs.ErrParams.New("unexpected delimiter %v", tok)
		}
	default:
		return tok, nil
	}
}
