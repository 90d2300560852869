package native1

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"

	"github.com/leerob727/openrtb/errortypes"
)

// Extension field numbers reserved for exchange-specific data in every
// message of the native markup schema.
const (
	ExtensionRangeStart int32 = 100
	ExtensionRangeEnd   int32 = 199
)

// InExtensionRange reports whether a field number belongs to the reserved
// extension range.
func InExtensionRange(num int32) bool {
	return num >= ExtensionRangeStart && num <= ExtensionRangeEnd
}

// WireType identifies the encoding of a field value on the binary wire,
// matching the reference protocol-buffer framing.
type WireType uint8

const (
	WireVarint  WireType = 0 // varint-encoded integers, bools and enums
	WireFixed64 WireType = 1 // 8-byte little-endian values
	WireBytes   WireType = 2 // length-prefixed strings, bytes and nested messages
	WireFixed32 WireType = 5 // 4-byte little-endian values
)

// Valid reports whether the wire type is one this schema can carry.
func (w WireType) Valid() bool {
	switch w {
	case WireVarint, WireFixed64, WireBytes, WireFixed32:
		return true
	}
	return false
}

// RawExtension is a single exchange-specific field attached to a message
// instance: the field number, its wire type, and the field's value exactly as
// it appears on the wire after the tag (for length-prefixed values the length
// prefix is part of Data). The core never interprets Data; it only stores it
// and re-emits it verbatim so that vendor payloads survive a decode/re-encode
// pass byte for byte.
type RawExtension struct {
	FieldNumber int32
	WireType    WireType
	Data        []byte
}

// Clone returns a copy that owns its payload bytes.
func (r RawExtension) Clone() RawExtension {
	c := r
	if r.Data != nil {
		c.Data = make([]byte, len(r.Data))
		copy(c.Data, r.Data)
	}
	return c
}

// Extensions is the ordered set of exchange-specific fields of one message
// instance. Order follows the wire: entries are kept exactly as encountered
// and re-emitted in the same sequence. A field number may repeat.
//
// The container is owned exclusively by its enclosing message and is
// destroyed with it; Clone the message to share the data.
type Extensions []RawExtension

// Add appends an extension after checking that its field number lies inside
// the reserved range and its wire type is well formed. It is the only
// validation the extension mechanism performs.
func (e *Extensions) Add(ext RawExtension) error {
	if !InExtensionRange(ext.FieldNumber) {
		return &errortypes.MalformedField{
			FieldNumber: ext.FieldNumber,
			Reason:      fmt.Sprintf("field number outside the extension range %d-%d", ExtensionRangeStart, ExtensionRangeEnd),
		}
	}
	if !ext.WireType.Valid() {
		return &errortypes.MalformedField{
			FieldNumber: ext.FieldNumber,
			Reason:      fmt.Sprintf("unsupported wire type %d", ext.WireType),
		}
	}
	*e = append(*e, ext)
	return nil
}

// ByNumber returns the entries carrying the given field number, preserving
// their stored order.
func (e Extensions) ByNumber(num int32) []RawExtension {
	var out []RawExtension
	for _, ext := range e {
		if ext.FieldNumber == num {
			out = append(out, ext)
		}
	}
	return out
}

// Clone returns a copy whose entries own their payload bytes.
func (e Extensions) Clone() Extensions {
	if e == nil {
		return nil
	}
	c := make(Extensions, len(e))
	for i, ext := range e {
		c[i] = ext.Clone()
	}
	return c
}

// extensionValue is the textual form of one stored extension payload.
type extensionValue struct {
	Wire WireType `json:"wire"`
	Data []byte   `json:"data"`
}

// MarshalJSON renders the container as an object keyed by decimal field
// number, each holding the entries for that number in stored order. Numbers
// are emitted in ascending order. The binary surface remains the canonical
// one; the textual form preserves values, not inter-number wire ordering.
func (e Extensions) MarshalJSON() ([]byte, error) {
	grouped := make(map[string][]extensionValue, len(e))
	for _, ext := range e {
		key := strconv.FormatInt(int64(ext.FieldNumber), 10)
		grouped[key] = append(grouped[key], extensionValue{Wire: ext.WireType, Data: ext.Data})
	}
	// Keys are all three digits, so the lexical order encoding/json applies
	// to map keys is already numeric.
	return json.Marshal(grouped)
}

// UnmarshalJSON rebuilds the container from its textual form, ascending by
// field number and preserving per-number order. Entries outside the
// extension range or with an unknown wire type are rejected.
func (e *Extensions) UnmarshalJSON(data []byte) error {
	var grouped map[string][]extensionValue
	if err := json.Unmarshal(data, &grouped); err != nil {
		return err
	}

	keys := make([]string, 0, len(grouped))
	for key := range grouped {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	rebuilt := make(Extensions, 0, len(keys))
	for _, key := range keys {
		num, err := strconv.ParseInt(key, 10, 32)
		if err != nil {
			return &errortypes.MalformedField{Reason: fmt.Sprintf("extension key %q is not a field number", key)}
		}
		for _, value := range grouped[key] {
			if err := rebuilt.Add(RawExtension{FieldNumber: int32(num), WireType: value.Wire, Data: value.Data}); err != nil {
				return err
			}
		}
	}

	*e = rebuilt
	return nil
}
