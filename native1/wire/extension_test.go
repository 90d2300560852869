package wire

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leerob727/openrtb/errortypes"
	"github.com/leerob727/openrtb/native1"
	"github.com/leerob727/openrtb/native1/request"
	"github.com/leerob727/openrtb/util/ptrutil"
)

func TestVarintExtension(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		ext, err := VarintExtension(150, 42)
		require.NoError(t, err)

		expected := native1.RawExtension{FieldNumber: 150, WireType: native1.WireVarint, Data: []byte{0x2a}}
		assert.Equal(t, expected, ext)

		value, err := ExtensionVarint(ext)
		require.NoError(t, err)
		assert.Equal(t, uint64(42), value)
	})

	t.Run("multi byte value", func(t *testing.T) {
		ext, err := VarintExtension(101, 300)
		require.NoError(t, err)
		assert.Equal(t, []byte{0xac, 0x02}, ext.Data)
	})

	t.Run("number below range", func(t *testing.T) {
		_, err := VarintExtension(99, 1)
		require.EqualError(t, err, "field 99: extension number outside the range 100-199")
		assert.Equal(t, errortypes.MalformedFieldErrorCode, errortypes.ReadCode(err))
	})

	t.Run("number above range", func(t *testing.T) {
		_, err := VarintExtension(200, 1)
		require.Error(t, err)
		assert.Equal(t, errortypes.MalformedFieldErrorCode, errortypes.ReadCode(err))
	})
}

func TestBytesExtension(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		ext, err := BytesExtension(101, []byte("hi"))
		require.NoError(t, err)

		expected := native1.RawExtension{FieldNumber: 101, WireType: native1.WireBytes, Data: []byte{0x02, 0x68, 0x69}}
		assert.Equal(t, expected, ext)

		content, err := ExtensionBytes(ext)
		require.NoError(t, err)
		assert.Equal(t, []byte("hi"), content)
	})

	t.Run("empty payload", func(t *testing.T) {
		ext, err := BytesExtension(101, nil)
		require.NoError(t, err)
		assert.Equal(t, []byte{0x00}, ext.Data)
	})

	t.Run("input is copied", func(t *testing.T) {
		given := []byte("hi")
		ext, err := BytesExtension(101, given)
		require.NoError(t, err)

		given[0] = 'X'
		assert.Equal(t, []byte{0x02, 0x68, 0x69}, ext.Data)
	})

	t.Run("number outside range", func(t *testing.T) {
		_, err := BytesExtension(99, []byte("hi"))
		require.Error(t, err)
		assert.Equal(t, errortypes.MalformedFieldErrorCode, errortypes.ReadCode(err))
	})
}

func TestStringExtension(t *testing.T) {
	ext, err := StringExtension(101, "hi")
	require.NoError(t, err)
	assert.Equal(t, native1.RawExtension{FieldNumber: 101, WireType: native1.WireBytes, Data: []byte{0x02, 0x68, 0x69}}, ext)
}

func TestFixedExtensions(t *testing.T) {
	t.Run("fixed32", func(t *testing.T) {
		ext, err := Fixed32Extension(199, 1)
		require.NoError(t, err)
		assert.Equal(t, native1.RawExtension{FieldNumber: 199, WireType: native1.WireFixed32, Data: []byte{0x01, 0x00, 0x00, 0x00}}, ext)
	})

	t.Run("fixed64", func(t *testing.T) {
		ext, err := Fixed64Extension(100, 1)
		require.NoError(t, err)
		assert.Equal(t, native1.RawExtension{FieldNumber: 100, WireType: native1.WireFixed64, Data: []byte{0x01, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}}, ext)
	})

	t.Run("out of range", func(t *testing.T) {
		_, err := Fixed32Extension(99, 1)
		require.Error(t, err)
		_, err = Fixed64Extension(200, 1)
		require.Error(t, err)
	})
}

func TestExtensionVarintErrors(t *testing.T) {
	t.Run("wrong wire type", func(t *testing.T) {
		_, err := ExtensionVarint(native1.RawExtension{FieldNumber: 150, WireType: native1.WireBytes, Data: []byte{0x00}})
		require.EqualError(t, err, "field 150: extension carries wire type bytes, not varint")
	})

	t.Run("trailing bytes", func(t *testing.T) {
		_, err := ExtensionVarint(native1.RawExtension{FieldNumber: 150, WireType: native1.WireVarint, Data: []byte{0x2a, 0x00}})
		require.EqualError(t, err, "field 150: extension payload has trailing bytes after its varint")
	})

	t.Run("truncated payload", func(t *testing.T) {
		_, err := ExtensionVarint(native1.RawExtension{FieldNumber: 150, WireType: native1.WireVarint, Data: []byte{0xff}})
		require.Error(t, err)
		assert.Equal(t, errortypes.TruncatedErrorCode, errortypes.ReadCode(err))
	})
}

func TestExtensionBytesErrors(t *testing.T) {
	t.Run("wrong wire type", func(t *testing.T) {
		_, err := ExtensionBytes(native1.RawExtension{FieldNumber: 150, WireType: native1.WireVarint, Data: []byte{0x2a}})
		require.EqualError(t, err, "field 150: extension carries wire type varint, not bytes")
	})

	t.Run("trailing bytes", func(t *testing.T) {
		_, err := ExtensionBytes(native1.RawExtension{FieldNumber: 150, WireType: native1.WireBytes, Data: []byte{0x01, 0x68, 0x69}})
		require.EqualError(t, err, "field 150: extension payload has trailing bytes after its length-prefixed content")
	})

	t.Run("length past end", func(t *testing.T) {
		_, err := ExtensionBytes(native1.RawExtension{FieldNumber: 150, WireType: native1.WireBytes, Data: []byte{0x05, 0x68}})
		require.Error(t, err)
		assert.Equal(t, errortypes.TruncatedErrorCode, errortypes.ReadCode(err))
	})
}

func TestProducedExtensionRoundTrips(t *testing.T) {
	ext, err := StringExtension(150, "partner-seat-7")
	require.NoError(t, err)

	given := &request.Request{Ver: ptrutil.ToPtr("1.2")}
	require.NoError(t, given.Ext.Add(ext))

	encoded, err := EncodeRequest(given)
	require.NoError(t, err)

	decoded, err := DecodeRequest(encoded)
	require.NoError(t, err)

	require.Len(t, decoded.Ext, 1)
	assert.Equal(t, ext, decoded.Ext[0])

	content, err := ExtensionBytes(decoded.Ext[0])
	require.NoError(t, err)
	assert.Equal(t, "partner-seat-7", string(content))
}
