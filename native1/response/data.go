package response

import (
	"github.com/leerob727/openrtb/native1"
	"github.com/leerob727/openrtb/util/ptrutil"
)

// 5.6 Data Object
//
// Corresponds to the Data Object in the request, with the value filled in.
// The Data Object is to be used for all miscellaneous elements of the native
// unit such as Brand Name, Ratings, Review Count, Stars, Downloads, etc.
type Data struct {

	// Field:
	//   label
	// Scope:
	//   optional
	// Type:
	//   string
	// Description:
	//   The optional formatted string name of the data type to be displayed.
	Label *string `json:"label,omitempty"`

	// Field:
	//   value
	// Scope:
	//   required
	// Type:
	//   string
	// Description:
	//   The formatted string of data to be displayed.
	//   Can contain a formatted value such as "5 stars" or "$10" or "3.4 stars out of 5".
	Value *string `json:"value"`

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

// GetLabel returns the display name of the data type, or the empty string
// when unset.
func (d *Data) GetLabel() string {
	return ptrutil.ValueOrDefault(d.Label)
}

// GetValue returns the formatted data value, or the empty string when unset.
func (d *Data) GetValue() string {
	return ptrutil.ValueOrDefault(d.Value)
}
