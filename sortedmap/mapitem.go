package sortedmap

import (
	"bytes"
	"reflect"
	"time"

	"github.com/UnsavedDragon/RedBlackTree/merrs"
	"github.com/spf13/cast"
)

// Item can be anything.
type Item interface{}

// MapItem is one key/value pair of a sorted map.
type MapItem struct {
	Key   interface{}
	Value interface{}
}

func StringCompare(a, b string) int {
	return bytes.Compare([]byte(a), []byte(b))
}

func IntCompare(a, b int) int {
	return a - b
}

func Int64Compare(a, b int64) int {
	return int(a - b)
}

// KeyCompare orders map keys. Keys of different kinds fall back to a
// string comparison of their cast form; same-kind keys compare
// natively. Unsupported key types abort.
func KeyCompare(a, b interface{}) int {
	ta := reflect.TypeOf(a).Kind()
	if ta != reflect.TypeOf(b).Kind() {
		return bytes.Compare([]byte(cast.ToString(a)), []byte(cast.ToString(b)))
	}
	switch aa := a.(type) {
	case string:
		return StringCompare(aa, b.(string))
	case int:
		return IntCompare(aa, b.(int))
	case int8, int16, int32, uint8, uint16, uint32, uint64:
		return IntCompare(cast.ToInt(aa), cast.ToInt(b))
	case int64:
		return Int64Compare(aa, b.(int64))
	case time.Time:
		return Int64Compare(aa.UnixNano(), b.(time.Time).UnixNano())
	case *time.Time:
		return Int64Compare(aa.UnixNano(), b.(*time.Time).UnixNano())
	default:
		panic(merrs.ErrParams.New("no comparison defined for key type %T", aa))
	}
}

// MapItemCompare unwraps *MapItem operands before comparing their keys,
// so a bare key can be compared against stored pairs.
func MapItemCompare(a, b interface{}) int {
	var ka, kb interface{}
	if mi, ok := a.(*MapItem); ok {
		ka = mi.Key
	} else {
		ka = a
	}
	if mi, ok := b.(*MapItem); ok {
		kb = mi.Key
	} else {
		kb = b
	}
	return KeyCompare(ka, kb)
}
