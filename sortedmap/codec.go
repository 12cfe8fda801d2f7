package sortedmap

import (
	"github.com/UnsavedDragon/RedBlackTree/msgpack"
	"github.com/UnsavedDragon/RedBlackTree/rbtree"
)

// Snapshot encodes the map's key/value pairs in map order with
// msgpack.
func (m *TreeMap) Snapshot() ([]byte, error) {
	m.RLock()
	defer m.RUnlock()
	pairs := make([][2]interface{}, 0, len(m.mm))
	m.tree.InOrder(func(i interface{}, _ rbtree.Color) bool {
		if mi, ok := i.(*MapItem); ok {
			pairs = append(pairs, [2]interface{}{mi.Key, mi.Value})
		}
		return true
	})
	return msgpack.Encode(pairs)
}

// Restore replaces the map's content with a Snapshot encoding.
// Numeric keys and values come back as the narrowest msgpack type that
// fits, see msgpack.Decode.
func (m *TreeMap) Restore(bs []byte) error {
	var pairs [][2]interface{}
	if err := msgpack.Decode(bs, &pairs); err != nil {
		return err
	}
	m.Clear()
	for _, kv := range pairs {
		m.Put(kv[0], kv[1])
	}
	return nil
}
