package request

import (
	"github.com/leerob727/openrtb/native1"
	"github.com/leerob727/openrtb/util/ptrutil"
)

// 4.6 Data Object
//
// The Data Object is to be used for all non-core elements of the native unit
// such as Brand Name, Ratings, Review Count, Stars, Download count,
// descriptions etc. It is also generic for future native elements not
// contemplated at the time of the writing of this document.
type Data struct {

	// Field:
	//   type
	// Scope:
	//   required
	// Type:
	//   integer
	// Description:
	//   Type ID of the element supported by the publisher.
	//   The publisher can display this information in an appropriate format.
	//   See Data Asset Types table for commonly used examples.
	Type *native1.DataAssetType `json:"type"`

	// Field:
	//   len
	// Scope:
	//   optional
	// Type:
	//   integer
	// Description:
	//   Maximum length of the text in the element's response.
	Len *int32 `json:"len,omitempty"`

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

// GetType returns the data asset type, or 0 when unset.
func (d *Data) GetType() native1.DataAssetType {
	return ptrutil.ValueOrDefault(d.Type)
}

// GetLen returns the maximum response text length, or 0 when unset.
func (d *Data) GetLen() int32 {
	return ptrutil.ValueOrDefault(d.Len)
}
