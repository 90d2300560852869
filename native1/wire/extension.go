package wire

import (
	"encoding/binary"
	"fmt"

	"github.com/leerob727/openrtb/errortypes"
	"github.com/leerob727/openrtb/native1"
	"github.com/leerob727/openrtb/util/sliceutil"
)

// VarintExtension builds an extension entry carrying a varint payload.
func VarintExtension(num int32, v uint64) (native1.RawExtension, error) {
	if err := checkExtensionNumber(num); err != nil {
		return native1.RawExtension{}, err
	}
	return native1.RawExtension{
		FieldNumber: num,
		WireType:    native1.WireVarint,
		Data:        appendVarint(nil, v),
	}, nil
}

// BytesExtension builds an extension entry carrying a length-prefixed byte
// payload. The given bytes are copied.
func BytesExtension(num int32, data []byte) (native1.RawExtension, error) {
	if err := checkExtensionNumber(num); err != nil {
		return native1.RawExtension{}, err
	}
	body := appendVarint(nil, uint64(len(data)))
	return native1.RawExtension{
		FieldNumber: num,
		WireType:    native1.WireBytes,
		Data:        append(body, data...),
	}, nil
}

// StringExtension builds an extension entry carrying a length-prefixed
// string payload.
func StringExtension(num int32, v string) (native1.RawExtension, error) {
	return BytesExtension(num, []byte(v))
}

// Fixed32Extension builds an extension entry carrying a little-endian
// 32-bit payload.
func Fixed32Extension(num int32, v uint32) (native1.RawExtension, error) {
	if err := checkExtensionNumber(num); err != nil {
		return native1.RawExtension{}, err
	}
	return native1.RawExtension{
		FieldNumber: num,
		WireType:    native1.WireFixed32,
		Data:        binary.LittleEndian.AppendUint32(nil, v),
	}, nil
}

// Fixed64Extension builds an extension entry carrying a little-endian
// 64-bit payload.
func Fixed64Extension(num int32, v uint64) (native1.RawExtension, error) {
	if err := checkExtensionNumber(num); err != nil {
		return native1.RawExtension{}, err
	}
	return native1.RawExtension{
		FieldNumber: num,
		WireType:    native1.WireFixed64,
		Data:        binary.LittleEndian.AppendUint64(nil, v),
	}, nil
}

// ExtensionBytes returns the content of a bytes-typed extension with the
// length prefix stripped, copied out of the stored payload.
func ExtensionBytes(ext native1.RawExtension) ([]byte, error) {
	if ext.WireType != native1.WireBytes {
		return nil, &errortypes.MalformedField{
			FieldNumber: ext.FieldNumber,
			Reason:      fmt.Sprintf("extension carries wire type %s, not bytes", wireTypeName(ext.WireType)),
		}
	}
	d := &decoder{data: ext.Data}
	region, err := d.readBytes("extension")
	if err != nil {
		return nil, err
	}
	if d.remaining() {
		return nil, &errortypes.MalformedField{
			FieldNumber: ext.FieldNumber,
			Reason:      "extension payload has trailing bytes after its length-prefixed content",
		}
	}
	return sliceutil.Clone(region), nil
}

// ExtensionVarint returns the value of a varint-typed extension.
func ExtensionVarint(ext native1.RawExtension) (uint64, error) {
	if ext.WireType != native1.WireVarint {
		return 0, &errortypes.MalformedField{
			FieldNumber: ext.FieldNumber,
			Reason:      fmt.Sprintf("extension carries wire type %s, not varint", wireTypeName(ext.WireType)),
		}
	}
	d := &decoder{data: ext.Data}
	v, err := d.readVarint("extension")
	if err != nil {
		return 0, err
	}
	if d.remaining() {
		return 0, &errortypes.MalformedField{
			FieldNumber: ext.FieldNumber,
			Reason:      "extension payload has trailing bytes after its varint",
		}
	}
	return v, nil
}

func checkExtensionNumber(num int32) error {
	if !native1.InExtensionRange(num) {
		return &errortypes.MalformedField{
			FieldNumber: num,
			Reason:      fmt.Sprintf("extension number outside the range %d-%d", native1.ExtensionRangeStart, native1.ExtensionRangeEnd),
		}
	}
	return nil
}
