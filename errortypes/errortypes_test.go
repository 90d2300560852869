package errortypes

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorMessages(t *testing.T) {
	testCases := []struct {
		description string
		err         error
		expected    string
	}{
		{
			description: "missing required field",
			err:         &MissingRequiredField{MessageName: "Link", FieldName: "url"},
			expected:    "Link.url: required field is missing",
		},
		{
			description: "malformed field with name",
			err:         &MalformedField{MessageName: "Image", FieldName: "w", FieldNumber: 2, Reason: "wire type 2 where varint expected"},
			expected:    "Image.w: wire type 2 where varint expected",
		},
		{
			description: "malformed field number only",
			err:         &MalformedField{FieldNumber: 102, Reason: "extension field number out of range [100, 199]"},
			expected:    "field 102: extension field number out of range [100, 199]",
		},
		{
			description: "malformed field message only",
			err:         &MalformedField{MessageName: "NativeRequest", Reason: "varint at offset 3 overflows 64 bits"},
			expected:    "NativeRequest: varint at offset 3 overflows 64 bits",
		},
		{
			description: "truncated",
			err:         &Truncated{MessageName: "NativeResponse", Offset: 17},
			expected:    "NativeResponse: truncated message at offset 17",
		},
		{
			description: "conflicting asset variant",
			err:         &ConflictingAssetVariant{AssetID: 3, Populated: []string{"img", "video"}},
			expected:    "asset 3: more than one variant populated (img, video)",
		},
		{
			description: "duplicate asset id",
			err:         &DuplicateAssetID{AssetID: 7},
			expected:    "asset id 7 is used by more than one asset",
		},
		{
			description: "unmatched response asset with kind",
			err:         &UnmatchedResponseAsset{AssetID: 4, Kind: "img"},
			expected:    "response img asset with id 4 does not match any request asset",
		},
		{
			description: "unmatched response asset without kind",
			err:         &UnmatchedResponseAsset{AssetID: 4},
			expected:    "response asset with id 4 does not match any request asset",
		},
		{
			description: "unknown core enum value",
			err:         &UnknownCoreEnumValue{MessageName: "NativeRequest", FieldName: "layout", Value: 42},
			expected:    "NativeRequest.layout: value 42 is not a known core enum value",
		},
		{
			description: "unknown spec version",
			err:         &UnknownSpecVersion{MessageName: "NativeRequest", Ver: "3.0"},
			expected:    `NativeRequest.ver: unrecognized spec version "3.0"`,
		},
		{
			description: "lossy decode",
			err: &LossyDecode{Dropped: []DroppedField{
				{MessageName: "NativeRequest", FieldNumber: 7},
				{MessageName: "Asset", FieldNumber: 9},
			}},
			expected: "decode dropped 2 unknown field(s): NativeRequest field 7, Asset field 9",
		},
		{
			description: "lossy decode with named keys",
			err: &LossyDecode{Dropped: []DroppedField{
				{MessageName: "NativeRequest", FieldName: "context"},
				{MessageName: "Asset", FieldNumber: 9},
			}},
			expected: `decode dropped 2 unknown field(s): NativeRequest field "context", Asset field 9`,
		},
	}

	for _, test := range testCases {
		assert.Equal(t, test.expected, test.err.Error(), test.description)
	}
}

func TestAggregateErrors(t *testing.T) {
	testCases := []struct {
		description string
		agg         AggregateErrors
		expected    string
	}{
		{
			description: "none",
			agg:         NewAggregateErrors("payload invalid", nil),
			expected:    "",
		},
		{
			description: "one",
			agg: NewAggregateErrors("payload invalid", []error{
				&MissingRequiredField{MessageName: "Link", FieldName: "url"},
			}),
			expected: "payload invalid (1 error):\n  1: Link.url: required field is missing\n",
		},
		{
			description: "many",
			agg: NewAggregateErrors("payload invalid", []error{
				&DuplicateAssetID{AssetID: 1},
				&DuplicateAssetID{AssetID: 2},
			}),
			expected: "payload invalid (2 errors):\n  1: asset id 1 is used by more than one asset\n  2: asset id 2 is used by more than one asset\n",
		},
	}

	for _, test := range testCases {
		assert.Equal(t, test.expected, test.agg.Error(), test.description)
	}
}
