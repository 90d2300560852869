package response

import "github.com/leerob727/openrtb/native1"

// 5.5 Video Object
//
// Corresponds to the Video Object in the request, yet containing a value of a
// conforming VAST tag as a value.
type Video struct {

	// Field:
	//   vasttag
	// Scope:
	//   optional
	// Type:
	//   array of strings
	// Description:
	//   VAST XML documents answering the request Video object, in preference
	//   order.
	VASTTag []string `json:"vasttag,omitempty"`

	// Field:
	//   ext
	// Scope:
	//   optional
	// Type:
	//   extension slot
	// Description:
	//   Exchange-specific fields carried in the reserved 100-199 field number
	//   range, preserved verbatim across decode and re-encode.
	Ext native1.Extensions `json:"ext,omitempty"`
}
