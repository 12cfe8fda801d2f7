package msgpack

import (
	"bytes"

	"github.com/vmihailenco/msgpack/v5"
)

// Encode serializes v with pooled encoders, deterministic map key
// order and non-compact numbers so equal inputs produce equal bytes.
func Encode(v interface{}) ([]byte, error) {
	enc := msgpack.GetEncoder()

	var buf bytes.Buffer
	enc.Reset(&buf)

	enc.UseCompactFloats(false)
	enc.UseCompactInts(false)
	enc.SetSortMapKeys(true)
	err := enc.Encode(v)
	b := buf.Bytes()

	msgpack.PutEncoder(enc)

	if err != nil {
		return nil, err
	}
	return b, nil
}

// Decode deserializes data into v. Note that interface{} slots decode
// to the narrowest numeric type that fits, not the encoded one.
func Decode(data []byte, v interface{}) error {
	dec := msgpack.GetDecoder()

	dec.Reset(bytes.NewReader(data))
	err := dec.Decode(v)

	msgpack.PutDecoder(dec)

	return err
}

func MustEncode(v interface{}) []byte {
	bs, e := Encode(v)
	if e != nil {
		panic(e)
	}
	return bs
}

func MustDecode(bs []byte, v interface{}) {
	e := Decode(bs, v)
	if e != nil {
		panic(e)
	}
}
