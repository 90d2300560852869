package request

import (
	"github.com/leerob727/openrtb/native1"
	"github.com/leerob727/openrtb/util/ptrutil"
)

// 4.3 Title Object
//
// The Title object is to be used for title element of the Native ad.
type Title struct {

	// Field:
	//   len
	// Scope:
	//   required
	// Type:
	//   integer
	// Description:
	//   Maximum length of the text in the title element.
	//   Recommended to be 25, 90, or 140.
	Len *int32 `json:"len"`

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

// GetLen returns the maximum title length, or 0 when unset.
func (t *Title) GetLen() int32 {
	return ptrutil.ValueOrDefault(t.Len)
}
