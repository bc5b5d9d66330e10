package cadence

import (
	"bytes"
	"fmt"

	"github.com/vmihailenco/msgpack/v4"
)

// MsgPackDataConverter carries workflow and activity arguments as a msgpack
// stream. Registered on both the client and the worker so the two sides
// agree on the payload encoding.
type MsgPackDataConverter struct{}

func NewMsgPackDataConverter() *MsgPackDataConverter {
	return &MsgPackDataConverter{}
}

// ToData encodes a list of argument values into one payload.
func (c *MsgPackDataConverter) ToData(value ...interface{}) ([]byte, error) {
	var buf bytes.Buffer
	enc := msgpack.NewEncoder(&buf)
	for i, obj := range value {
		if err := enc.Encode(obj); err != nil {
			return nil, fmt.Errorf("encode argument %d (%T) with msgpack: %v", i, obj, err)
		}
	}
	return buf.Bytes(), nil
}

// FromData decodes a payload back into the given value pointers, in the
// order they were encoded.
func (c *MsgPackDataConverter) FromData(input []byte, valuePtr ...interface{}) error {
	dec := msgpack.NewDecoder(bytes.NewReader(input))
	for i, obj := range valuePtr {
		if err := dec.Decode(obj); err != nil {
			return fmt.Errorf("decode argument %d (%T) with msgpack: %v", i, obj, err)
		}
	}
	return nil
}
