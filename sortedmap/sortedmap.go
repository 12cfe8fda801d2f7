package sortedmap

type Map interface {
	// Put will set (or replace) a value for a key. If the key was new, then true
	// will be returned. The returned value will be false if the value was replaced
	// (even if the value was the same).
	Put(key interface{}, value interface{}) bool
	Delete(key interface{}) bool
	Get(key interface{}, defaultValue ...interface{}) (interface{}, bool)
	GetValue(key interface{}, defaultValue ...interface{}) interface{}
	Has(key interface{}) bool
	Len() int
	Keys() []interface{}
	Values() []interface{}
	Fetch(p func(key interface{}, value interface{}) bool)
}

type SortedMap interface {
	Map
	Clear()
	FirstItem() *MapItem
	LastItem() *MapItem
	FetchReverse(p func(key interface{}, value interface{}) bool)
	FetchRange(from interface{}, to interface{}, p func(key interface{}, value interface{}) bool, reverse bool)
	//
	UnmarshalJSON(bs []byte) (err error)
	MarshalJSON() ([]byte, error)
	String() string
}
