package response

import (
	"github.com/leerob727/openrtb/native1"
	"github.com/leerob727/openrtb/util/ptrutil"
)

// 5.4 Image Object
//
// Corresponds to the Image Object in the request. The Image object to be used
// for all image elements of the Native ad such as Icons, Main Image, etc.
type Image struct {

	// Field:
	//   url
	// Scope:
	//   optional
	// Type:
	//   string
	// Description:
	//   URL of the image asset.
	URL *string `json:"url,omitempty"`

	// Field:
	//   w
	// Scope:
	//   recommended
	// Type:
	//   integer
	// Description:
	//   Width of the image in pixels.
	W *int32 `json:"w,omitempty"`

	// Field:
	//   h
	// Scope:
	//   recommended
	// Type:
	//   integer
	// Description:
	//   Height of the image in pixels.
	H *int32 `json:"h,omitempty"`

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

// GetURL returns the image URL, or the empty string when unset.
func (i *Image) GetURL() string {
	return ptrutil.ValueOrDefault(i.URL)
}

// GetW returns the image width, or 0 when unset.
func (i *Image) GetW() int32 {
	return ptrutil.ValueOrDefault(i.W)
}

// GetH returns the image height, or 0 when unset.
func (i *Image) GetH() int32 {
	return ptrutil.ValueOrDefault(i.H)
}
