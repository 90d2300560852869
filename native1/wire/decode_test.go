package wire

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leerob727/openrtb/errortypes"
	"github.com/leerob727/openrtb/native1"
	"github.com/leerob727/openrtb/native1/request"
	"github.com/leerob727/openrtb/native1/response"
	"github.com/leerob727/openrtb/util/ptrutil"
)

func TestDecodeRequest(t *testing.T) {
	testCases := []struct {
		description     string
		givenBytes      []byte
		expectedRequest *request.Request
	}{
		{
			description:     "empty payload",
			givenBytes:      nil,
			expectedRequest: &request.Request{},
		},
		{
			description:     "version only",
			givenBytes:      joinBytes([]byte{0x0a, 0x03}, []byte("1.2")),
			expectedRequest: &request.Request{Ver: ptrutil.ToPtr("1.2")},
		},
		{
			description: "scalar fields",
			givenBytes: joinBytes(
				[]byte{0x0a, 0x03}, []byte("1.2"),
				[]byte{0x10, 0x01, 0x18, 0x02, 0x20, 0x04, 0x28, 0x02},
			),
			expectedRequest: &request.Request{
				Ver:      ptrutil.ToPtr("1.2"),
				Layout:   ptrutil.ToPtr(native1.LayoutContentWall),
				AdUnit:   ptrutil.ToPtr(native1.AdUnitRecommendationWidget),
				PlcmtCnt: ptrutil.ToPtr(int32(4)),
				Seq:      ptrutil.ToPtr(int32(2)),
			},
		},
		{
			description: "title asset",
			givenBytes: joinBytes(
				[]byte{0x0a, 0x03}, []byte("1.2"),
				[]byte{0x32, 0x08, 0x08, 0x01, 0x10, 0x01, 0x1a, 0x02, 0x08, 0x5a},
			),
			expectedRequest: &request.Request{
				Ver: ptrutil.ToPtr("1.2"),
				Assets: []request.Asset{
					{
						ID:       ptrutil.ToPtr(int32(1)),
						Required: ptrutil.ToPtr(true),
						Title:    &request.Title{Len: ptrutil.ToPtr(int32(90))},
					},
				},
			},
		},
		{
			description: "last value wins for singular fields",
			givenBytes: joinBytes(
				[]byte{0x0a, 0x03}, []byte("1.1"),
				[]byte{0x0a, 0x03}, []byte("1.2"),
			),
			expectedRequest: &request.Request{Ver: ptrutil.ToPtr("1.2")},
		},
		{
			description: "negative int32 round trips",
			givenBytes: joinBytes(
				[]byte{0x32, 0x0d, 0x1a, 0x0b},
				[]byte{0x08, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0x01},
			),
			expectedRequest: &request.Request{
				Assets: []request.Asset{
					{Title: &request.Title{Len: ptrutil.ToPtr(int32(-1))}},
				},
			},
		},
	}

	for _, test := range testCases {
		t.Run(test.description, func(t *testing.T) {
			result, err := DecodeRequest(test.givenBytes)
			require.NoError(t, err)
			assert.Equal(t, test.expectedRequest, result)
		})
	}
}

func TestDecodeRequestExtensions(t *testing.T) {
	t.Run("varint extension captured", func(t *testing.T) {
		given := joinBytes([]byte{0x0a, 0x03}, []byte("1.2"), []byte{0xb0, 0x09, 0x2a})

		result, err := DecodeRequest(given)
		require.NoError(t, err)

		expected := native1.Extensions{
			{FieldNumber: 150, WireType: native1.WireVarint, Data: []byte{0x2a}},
		}
		assert.Equal(t, expected, result.Ext)
	})

	t.Run("bytes extension keeps length prefix", func(t *testing.T) {
		given := joinBytes([]byte{0x0a, 0x03}, []byte("1.2"), []byte{0xb2, 0x09, 0x03, 0x68, 0x69, 0x21})

		result, err := DecodeRequest(given)
		require.NoError(t, err)

		expected := native1.Extensions{
			{FieldNumber: 150, WireType: native1.WireBytes, Data: []byte{0x03, 0x68, 0x69, 0x21}},
		}
		assert.Equal(t, expected, result.Ext)
	})

	t.Run("extension inside nested asset", func(t *testing.T) {
		given := []byte{0x32, 0x05, 0x08, 0x01, 0xb0, 0x09, 0x2a}

		result, err := DecodeRequest(given)
		require.NoError(t, err)

		require.Len(t, result.Assets, 1)
		expected := native1.Extensions{
			{FieldNumber: 150, WireType: native1.WireVarint, Data: []byte{0x2a}},
		}
		assert.Equal(t, expected, result.Assets[0].Ext)
	})

	t.Run("stored order preserves repeats", func(t *testing.T) {
		given := joinBytes(
			[]byte{0x0a, 0x03}, []byte("1.2"),
			[]byte{0xb0, 0x09, 0x2a},
			[]byte{0xaa, 0x06, 0x02, 0x68, 0x69},
			[]byte{0xb0, 0x09, 0x07},
		)

		result, err := DecodeRequest(given)
		require.NoError(t, err)

		expected := native1.Extensions{
			{FieldNumber: 150, WireType: native1.WireVarint, Data: []byte{0x2a}},
			{FieldNumber: 101, WireType: native1.WireBytes, Data: []byte{0x02, 0x68, 0x69}},
			{FieldNumber: 150, WireType: native1.WireVarint, Data: []byte{0x07}},
		}
		assert.Equal(t, expected, result.Ext)
	})

	t.Run("payload does not alias input buffer", func(t *testing.T) {
		given := joinBytes([]byte{0x0a, 0x03}, []byte("1.2"), []byte{0xb0, 0x09, 0x2a})

		result, err := DecodeRequest(given)
		require.NoError(t, err)

		require.Len(t, result.Ext, 1)
		result.Ext[0].Data[0] = 0xff
		assert.Equal(t, byte(0x2a), given[len(given)-1])
	})
}

func TestDecodeRequestStrictUnknownField(t *testing.T) {
	testCases := []struct {
		description   string
		givenBytes    []byte
		expectedError string
	}{
		{
			description:   "top level",
			givenBytes:    joinBytes([]byte{0x0a, 0x03}, []byte("1.2"), []byte{0x38, 0x01}),
			expectedError: "NativeRequest.field 7: undeclared field outside the extension range",
		},
		{
			description:   "inside nested asset",
			givenBytes:    []byte{0x32, 0x04, 0x08, 0x01, 0x48, 0x07},
			expectedError: "Asset.field 9: undeclared field outside the extension range",
		},
	}

	for _, test := range testCases {
		t.Run(test.description, func(t *testing.T) {
			result, err := DecodeRequest(test.givenBytes)
			assert.Nil(t, result)
			require.EqualError(t, err, test.expectedError)
			assert.Equal(t, errortypes.MalformedFieldErrorCode, errortypes.ReadCode(err))
		})
	}
}

func TestDecodeRequestPermissive(t *testing.T) {
	t.Run("unknown fields dropped with warning", func(t *testing.T) {
		given := joinBytes(
			[]byte{0x0a, 0x03}, []byte("1.2"),
			[]byte{0x38, 0x01},
			[]byte{0x32, 0x04, 0x08, 0x01, 0x48, 0x07},
		)

		result, err := DecodeRequestOptions(given, DecodeOptions{Permissive: true})
		require.NotNil(t, result)
		require.Error(t, err)

		assert.Equal(t, errortypes.LossyDecodeWarningCode, errortypes.ReadCode(err))
		assert.False(t, errortypes.ContainsFatalError([]error{err}))

		lossy, ok := err.(*errortypes.LossyDecode)
		require.True(t, ok)
		expectedDropped := []errortypes.DroppedField{
			{MessageName: "NativeRequest", FieldNumber: 7},
			{MessageName: "Asset", FieldNumber: 9},
		}
		assert.Equal(t, expectedDropped, lossy.Dropped)

		assert.Equal(t, "1.2", result.GetVer())
		require.Len(t, result.Assets, 1)
		assert.Equal(t, int32(1), result.Assets[0].GetID())
	})

	t.Run("clean payload yields no warning", func(t *testing.T) {
		given := joinBytes([]byte{0x0a, 0x03}, []byte("1.2"))

		result, err := DecodeRequestOptions(given, DecodeOptions{Permissive: true})
		require.NoError(t, err)
		assert.Equal(t, "1.2", result.GetVer())
	})

	t.Run("malformed input still fails", func(t *testing.T) {
		result, err := DecodeRequestOptions([]byte{0x0a}, DecodeOptions{Permissive: true})
		assert.Nil(t, result)
		require.Error(t, err)
		assert.Equal(t, errortypes.TruncatedErrorCode, errortypes.ReadCode(err))
	})
}

func TestDecodeRequestMalformed(t *testing.T) {
	testCases := []struct {
		description   string
		givenBytes    []byte
		expectedError string
		expectedCode  int
	}{
		{
			description:   "truncated tag value",
			givenBytes:    []byte{0x0a},
			expectedError: "NativeRequest: truncated message at offset 1",
			expectedCode:  errortypes.TruncatedErrorCode,
		},
		{
			description:   "length past end of payload",
			givenBytes:    joinBytes([]byte{0x0a, 0x05}, []byte("1.2")),
			expectedError: "NativeRequest: truncated message at offset 2",
			expectedCode:  errortypes.TruncatedErrorCode,
		},
		{
			description:   "nested message truncated",
			givenBytes:    []byte{0x32, 0x03, 0x08, 0x01, 0x1a},
			expectedError: "Asset: truncated message at offset 5",
			expectedCode:  errortypes.TruncatedErrorCode,
		},
		{
			description:   "extension payload truncated",
			givenBytes:    []byte{0xb2, 0x09, 0x05, 0x68},
			expectedError: "NativeRequest: truncated message at offset 3",
			expectedCode:  errortypes.TruncatedErrorCode,
		},
		{
			description:   "invalid field number zero",
			givenBytes:    []byte{0x00},
			expectedError: "NativeRequest: tag at offset 0 carries invalid field number 0",
			expectedCode:  errortypes.MalformedFieldErrorCode,
		},
		{
			description:   "varint overflows 64 bits",
			givenBytes:    []byte{0x20, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0x02},
			expectedError: "NativeRequest: varint at offset 1 overflows 64 bits",
			expectedCode:  errortypes.MalformedFieldErrorCode,
		},
		{
			description:   "group wire type rejected",
			givenBytes:    []byte{0xb3, 0x09},
			expectedError: "NativeRequest.field 150: unsupported wire type 3",
			expectedCode:  errortypes.MalformedFieldErrorCode,
		},
		{
			description:   "wire type mismatch on known field",
			givenBytes:    []byte{0x08, 0x01},
			expectedError: "NativeRequest.ver: wire type varint where bytes expected",
			expectedCode:  errortypes.MalformedFieldErrorCode,
		},
	}

	for _, test := range testCases {
		t.Run(test.description, func(t *testing.T) {
			result, err := DecodeRequest(test.givenBytes)
			assert.Nil(t, result)
			require.EqualError(t, err, test.expectedError)
			assert.Equal(t, test.expectedCode, errortypes.ReadCode(err))
		})
	}
}

func TestDecodeVideoProtocols(t *testing.T) {
	t.Run("packed equals unpacked", func(t *testing.T) {
		unpacked := []byte{0x20, 0x02, 0x20, 0x03, 0x20, 0x05}
		packed := []byte{0x22, 0x03, 0x02, 0x03, 0x05}

		fromUnpacked, err := decodeRequestVideo(&decoder{data: unpacked, dropped: new([]errortypes.DroppedField)})
		require.NoError(t, err)

		fromPacked, err := decodeRequestVideo(&decoder{data: packed, dropped: new([]errortypes.DroppedField)})
		require.NoError(t, err)

		expected := []native1.Protocol{native1.ProtocolVAST20, native1.ProtocolVAST30, native1.ProtocolVAST20Wrapper}
		assert.Equal(t, expected, fromUnpacked.Protocols)
		assert.Equal(t, fromUnpacked, fromPacked)
	})

	t.Run("mixed forms concatenate in wire order", func(t *testing.T) {
		given := []byte{0x20, 0x02, 0x22, 0x02, 0x03, 0x05}

		result, err := decodeRequestVideo(&decoder{data: given, dropped: new([]errortypes.DroppedField)})
		require.NoError(t, err)

		expected := []native1.Protocol{native1.ProtocolVAST20, native1.ProtocolVAST30, native1.ProtocolVAST20Wrapper}
		assert.Equal(t, expected, result.Protocols)
	})
}

func TestDecodeResponse(t *testing.T) {
	linkBytes := joinBytes([]byte{0x0a, 0x0d}, []byte("https://e.com"))

	testCases := []struct {
		description      string
		givenBytes       []byte
		expectedResponse *response.Response
	}{
		{
			description: "link only",
			givenBytes:  joinBytes([]byte{0x1a, 0x0f}, linkBytes),
			expectedResponse: &response.Response{
				Link: &response.Link{URL: ptrutil.ToPtr("https://e.com")},
			},
		},
		{
			description: "asset link at field seven",
			givenBytes: joinBytes(
				[]byte{0x12, 0x13, 0x08, 0x01, 0x3a, 0x0f}, linkBytes,
				[]byte{0x1a, 0x0f}, linkBytes,
			),
			expectedResponse: &response.Response{
				Assets: []response.Asset{
					{ID: ptrutil.ToPtr(int32(1)), Link: &response.Link{URL: ptrutil.ToPtr("https://e.com")}},
				},
				Link: &response.Link{URL: ptrutil.ToPtr("https://e.com")},
			},
		},
		{
			description: "trackers accumulate in wire order",
			givenBytes: joinBytes(
				[]byte{0x1a, 0x0f}, linkBytes,
				[]byte{0x22, 0x0d}, []byte("https://i.com"),
				[]byte{0x22, 0x0d}, []byte("https://j.com"),
			),
			expectedResponse: &response.Response{
				Link:        &response.Link{URL: ptrutil.ToPtr("https://e.com")},
				ImpTrackers: []string{"https://i.com", "https://j.com"},
			},
		},
	}

	for _, test := range testCases {
		t.Run(test.description, func(t *testing.T) {
			result, err := DecodeResponse(test.givenBytes)
			require.NoError(t, err)
			assert.Equal(t, test.expectedResponse, result)
		})
	}
}

func TestDecodeResponseStrictUnknownField(t *testing.T) {
	given := joinBytes([]byte{0x1a, 0x0f, 0x0a, 0x0d}, []byte("https://e.com"), []byte{0x30, 0x01})

	result, err := DecodeResponse(given)
	assert.Nil(t, result)
	require.EqualError(t, err, "NativeResponse.field 6: undeclared field outside the extension range")
	assert.Equal(t, errortypes.MalformedFieldErrorCode, errortypes.ReadCode(err))
}
