// Package native1 provides shared types for the OpenRTB Native 1.x protocol:
// the open enumerations referenced by the request and response markup objects,
// the well-known protocol version strings, and the opaque extension container
// every message carries for exchange-specific data.
//
// https://iabtechlab.com/standards/openrtb-native/
package native1

// Well-known values of the "ver" fields of the native markup request and
// response objects.
const (
	Version10 = "1.0"
	Version11 = "1.1"
	Version12 = "1.2"
)

// Declared defaults for the optional fields that carry one. Getters report
// these when the field is absent, and encoders elide fields explicitly set to
// them.
const (
	DefaultPlcmtCnt int32 = 1
	DefaultSeq      int32 = 0

	DefaultAssetRequired = false
)

// ExchangeSpecificBoundary splits every enumeration declared by this package
// in two: values up to and including the boundary are reserved for the core
// specification, values above it are exchange-specific and must always be
// accepted and preserved by generic tooling.
const ExchangeSpecificBoundary int32 = 500

// IsExchangeSpecific reports whether an enumeration value lies in the
// exchange-specific band above the reserved range.
func IsExchangeSpecific(value int32) bool {
	return value > ExchangeSpecificBoundary
}
