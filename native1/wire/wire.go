// Package wire implements the canonical binary codec for the native markup
// messages. The framing matches the reference protocol-buffer wire format:
// every field is a varint tag carrying the field number and a wire type,
// followed by a varint, a fixed-width value, or a length-prefixed byte
// region. Nested messages and strings are length-prefixed, repeated fields
// keep their wire order, and fields in the reserved 100-199 range are
// captured verbatim so a decode/re-encode pass preserves them byte for byte.
//
// Encoding fails fast on a missing required field. Decoding is strict by
// default and rejects undeclared fields outside the extension range; a
// permissive mode drops them instead and reports the loss as a warning.
package wire

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/leerob727/openrtb/errortypes"
	"github.com/leerob727/openrtb/native1"
)

// maxFieldNumber is the largest field number the tag encoding can carry.
const maxFieldNumber = 1<<29 - 1

func makeTag(num int32, wt native1.WireType) uint64 {
	return uint64(num)<<3 | uint64(wt)
}

func appendTag(b []byte, num int32, wt native1.WireType) []byte {
	return binary.AppendUvarint(b, makeTag(num, wt))
}

func appendVarint(b []byte, v uint64) []byte {
	return binary.AppendUvarint(b, v)
}

// appendInt32 encodes a signed value the way the reference format encodes
// int32: sign-extended to 64 bits, so negative values occupy ten bytes.
func appendInt32(b []byte, v int32) []byte {
	return binary.AppendUvarint(b, uint64(int64(v)))
}

func appendBool(b []byte, v bool) []byte {
	if v {
		return append(b, 1)
	}
	return append(b, 0)
}

func appendString(b []byte, num int32, v string) []byte {
	b = appendTag(b, num, native1.WireBytes)
	b = appendVarint(b, uint64(len(v)))
	return append(b, v...)
}

func appendMessage(b []byte, num int32, body []byte) []byte {
	b = appendTag(b, num, native1.WireBytes)
	b = appendVarint(b, uint64(len(body)))
	return append(b, body...)
}

// decoder is a cursor over one message's bytes. Nested messages decode
// through a child decoder over the length-prefixed region; base keeps error
// offsets absolute within the outermost payload, and dropped is shared so
// permissive drops anywhere in the tree land in one report.
type decoder struct {
	data []byte
	pos  int
	base int

	opts    DecodeOptions
	dropped *[]errortypes.DroppedField
}

func (d *decoder) offset() int {
	return d.base + d.pos
}

func (d *decoder) remaining() bool {
	return d.pos < len(d.data)
}

func (d *decoder) truncated(messageName string) error {
	return &errortypes.Truncated{MessageName: messageName, Offset: d.offset()}
}

// readVarint consumes one varint, or fails with a truncation or overflow
// error located at the current offset.
func (d *decoder) readVarint(messageName string) (uint64, error) {
	v, n := binary.Uvarint(d.data[d.pos:])
	if n == 0 {
		return 0, d.truncated(messageName)
	}
	if n < 0 {
		return 0, &errortypes.MalformedField{
			MessageName: messageName,
			Reason:      fmt.Sprintf("varint at offset %d overflows 64 bits", d.offset()),
		}
	}
	d.pos += n
	return v, nil
}

// readTag consumes a field tag and splits it into number and wire type.
func (d *decoder) readTag(messageName string) (int32, native1.WireType, error) {
	start := d.offset()
	tag, err := d.readVarint(messageName)
	if err != nil {
		return 0, 0, err
	}

	num := tag >> 3
	wt := native1.WireType(tag & 0x7)
	if num < 1 || num > maxFieldNumber {
		return 0, 0, &errortypes.MalformedField{
			MessageName: messageName,
			Reason:      fmt.Sprintf("tag at offset %d carries invalid field number %d", start, num),
		}
	}
	return int32(num), wt, nil
}

// readBytes consumes a length-prefixed region and returns it without copying.
func (d *decoder) readBytes(messageName string) ([]byte, error) {
	length, err := d.readVarint(messageName)
	if err != nil {
		return nil, err
	}
	if length > uint64(len(d.data)-d.pos) {
		return nil, d.truncated(messageName)
	}
	region := d.data[d.pos : d.pos+int(length)]
	d.pos += int(length)
	return region, nil
}

func (d *decoder) readFixed32(messageName string) (uint32, error) {
	if len(d.data)-d.pos < 4 {
		return 0, d.truncated(messageName)
	}
	v := binary.LittleEndian.Uint32(d.data[d.pos:])
	d.pos += 4
	return v, nil
}

func (d *decoder) readFixed64(messageName string) (uint64, error) {
	if len(d.data)-d.pos < 8 {
		return 0, d.truncated(messageName)
	}
	v := binary.LittleEndian.Uint64(d.data[d.pos:])
	d.pos += 8
	return v, nil
}

// child returns a decoder over a nested message region, keeping offsets
// absolute and sharing the permissive-drop accounting with the parent.
func (d *decoder) child(region []byte) *decoder {
	return &decoder{
		data:    region,
		base:    d.offset() - len(region),
		opts:    d.opts,
		dropped: d.dropped,
	}
}

func int32FromVarint(v uint64) int32 {
	return int32(uint32(v & math.MaxUint32))
}
