package request

import (
	"github.com/leerob727/openrtb/native1"
	"github.com/leerob727/openrtb/util/ptrutil"
)

// 4.4 Image Object
//
// The Image object to be used for all image elements of the Native ad such as
// Icons, Main Image, etc. Recommended sizes and aspect ratios are included in
// the Image Asset Types table.
type Image struct {

	// Field:
	//   type
	// Scope:
	//   optional
	// Type:
	//   integer
	// Description:
	//   Type ID of the image element supported by the publisher.
	//   The publisher can display this information in an appropriate format.
	//   See Table Image Asset Types.
	Type *native1.ImageAssetType `json:"type,omitempty"`

	// Field:
	//   w
	// Scope:
	//   optional
	// Type:
	//   integer
	// Description:
	//   Width of the image in pixels.
	W *int32 `json:"w,omitempty"`

	// Field:
	//   h
	// Scope:
	//   optional
	// Type:
	//   integer
	// Description:
	//   Height of the image in pixels.
	H *int32 `json:"h,omitempty"`

	// Field:
	//   wmin
	// Scope:
	//   recommended
	// Type:
	//   integer
	// Description:
	//   The minimum requested width of the image in pixels.
	//   This option should be used for any rescaling of images by the client.
	//   Either w or wmin should be transmitted.
	//   If only w is included, it should be considered an exact requirement.
	WMin *int32 `json:"wmin,omitempty"`

	// Field:
	//   hmin
	// Scope:
	//   recommended
	// Type:
	//   integer
	// Description:
	//   The minimum requested height of the image in pixels.
	//   This option should be used for any rescaling of images by the client.
	//   Either h or hmin should be transmitted.
	//   If only h is included, it should be considered an exact requirement.
	HMin *int32 `json:"hmin,omitempty"`

	// Field:
	//   mimes
	// Scope:
	//   optional
	// Type:
	//   array of strings
	// Default:
	//   All types allowed
	// Description:
	//   Whitelist of content MIME types supported.
	//   Popular MIME types include, but are not limited to "image/jpg" and
	//   "image/gif". If blank, assume all types are allowed.
	MIMEs []string `json:"mimes,omitempty"`

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

// GetType returns the image asset type, or 0 when unset.
func (i *Image) GetType() native1.ImageAssetType {
	return ptrutil.ValueOrDefault(i.Type)
}

// GetW returns the image width, or 0 when unset.
func (i *Image) GetW() int32 {
	return ptrutil.ValueOrDefault(i.W)
}

// GetH returns the image height, or 0 when unset.
func (i *Image) GetH() int32 {
	return ptrutil.ValueOrDefault(i.H)
}

// GetWMin returns the minimum requested width, or 0 when unset.
func (i *Image) GetWMin() int32 {
	return ptrutil.ValueOrDefault(i.WMin)
}

// GetHMin returns the minimum requested height, or 0 when unset.
func (i *Image) GetHMin() int32 {
	return ptrutil.ValueOrDefault(i.HMin)
}
