package sortedmap

import (
	"encoding/json"
	"sync"

	"github.com/UnsavedDragon/RedBlackTree/rbtree"
)

// TreeMap is a sorted map backed by a red-black tree ordered through
// KeyCompare, with a hash map alongside for point lookups. Keys stay
// unique: Put of an existing key replaces its pair in the tree.
type TreeMap struct {
	sync.RWMutex
	tree *rbtree.Tree
	mm   map[interface{}]interface{}
}

var _ SortedMap = &TreeMap{}

func NewTreeMap() *TreeMap {
	return &TreeMap{tree: rbtree.New(MapItemCompare), mm: map[interface{}]interface{}{}}
}

func (m *TreeMap) FirstItem() *MapItem {
	m.RLock()
	defer m.RUnlock()
	mi := m.tree.Min()
	if mi == nil {
		return nil
	}
	return mi.(*MapItem)
}

func (m *TreeMap) LastItem() *MapItem {
	m.RLock()
	defer m.RUnlock()
	mi := m.tree.Max()
	if mi == nil {
		return nil
	}
	return mi.(*MapItem)
}

func (m *TreeMap) Get(key interface{}, defaultValue ...interface{}) (interface{}, bool) {
	m.RLock()
	defer m.RUnlock()
	value, ok := m.mm[key]
	if ok {
		return value, true
	}
	if len(defaultValue) > 0 {
		return defaultValue[0], false
	}
	return nil, false
}

func (m *TreeMap) GetValue(key interface{}, defaultValue ...interface{}) interface{} {
	value, _ := m.Get(key, defaultValue...)
	return value
}

func (m *TreeMap) Has(key interface{}) bool {
	m.RLock()
	defer m.RUnlock()
	_, ok := m.mm[key]
	return ok
}

func (m *TreeMap) Put(key interface{}, value interface{}) bool {
	m.Lock()
	defer m.Unlock()
	_, exist := m.mm[key]
	if exist {
		// The tree tolerates duplicates, the map does not: drop the
		// old pair before inserting the replacement.
		m.tree.Delete(Item(key))
	}
	m.tree.Insert(Item(&MapItem{Key: key, Value: value}))
	m.mm[key] = value
	return !exist
}

func (m *TreeMap) Delete(key interface{}) (didDeleted bool) {
	m.Lock()
	defer m.Unlock()
	_, didDeleted = m.mm[key]
	if didDeleted {
		m.tree.Delete(Item(key))
		delete(m.mm, key)
	}
	return
}

func (m *TreeMap) Clear() {
	m.Lock()
	defer m.Unlock()
	m.tree = rbtree.New(MapItemCompare)
	m.mm = map[interface{}]interface{}{}
}

func (m *TreeMap) Len() int {
	m.RLock()
	defer m.RUnlock()
	return len(m.mm)
}

func (m *TreeMap) Keys() []interface{} {
	m.RLock()
	defer m.RUnlock()
	keys := []interface{}{}
	m.tree.InOrder(func(i interface{}, _ rbtree.Color) bool {
		if mi, ok := i.(*MapItem); ok {
			keys = append(keys, mi.Key)
		}
		return true
	})
	return keys
}

func (m *TreeMap) Values() []interface{} {
	m.RLock()
	defer m.RUnlock()
	vals := []interface{}{}
	m.tree.InOrder(func(i interface{}, _ rbtree.Color) bool {
		if mi, ok := i.(*MapItem); ok {
			vals = append(vals, mi.Value)
		}
		return true
	})
	return vals
}

func (m *TreeMap) Fetch(p func(key interface{}, value interface{}) bool) {
	m.RLock()
	defer m.RUnlock()
	m.fetch(p, false)
}

func (m *TreeMap) FetchReverse(p func(key interface{}, value interface{}) bool) {
	m.RLock()
	defer m.RUnlock()
	m.fetch(p, true)
}

func (m *TreeMap) fetch(p func(key interface{}, value interface{}) bool, reverse bool) {
	if len(m.mm) == 0 {
		return
	}
	visit := func(i interface{}, _ rbtree.Color) bool {
		if mi, ok := i.(*MapItem); ok {
			return p(mi.Key, mi.Value)
		}
		return true
	}
	if reverse {
		m.tree.InOrderReverse(visit)
	} else {
		m.tree.InOrder(visit)
	}
}

func (m *TreeMap) FetchRange(from interface{}, to interface{}, p func(key interface{}, value interface{}) bool, reverse bool) {
	m.RLock()
	defer m.RUnlock()
	if len(m.mm) == 0 {
		return
	}
	if reverse {
		m.tree.InOrderReverse(func(i interface{}, _ rbtree.Color) bool {
			mi, ok := i.(*MapItem)
			if !ok {
				return true
			}
			if to != nil && KeyCompare(mi.Key, to) > 0 {
				return true
			}
			if from != nil && KeyCompare(mi.Key, from) < 0 {
				return false
			}
			return p(mi.Key, mi.Value)
		})
	} else {
		m.tree.InOrder(func(i interface{}, _ rbtree.Color) bool {
			mi, ok := i.(*MapItem)
			if !ok {
				return true
			}
			if from != nil && KeyCompare(mi.Key, from) < 0 {
				return true
			}
			if to != nil && KeyCompare(mi.Key, to) > 0 {
				return false
			}
			return p(mi.Key, mi.Value)
		})
	}
}

func (m *TreeMap) UnmarshalJSON(bs []byte) (err error) {
	return UnmarshalJSON(m, bs)
}

func (m *TreeMap) MarshalJSON() ([]byte, error) {
	return MarshalJSON(m)
}

func (m *TreeMap) String() string {
	bs, _ := json.MarshalIndent(m, "", "    ")
	return string(bs)
}
