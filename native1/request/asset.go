package request

import (
	"github.com/leerob727/openrtb/native1"
	"github.com/leerob727/openrtb/util/ptrutil"
)

// 4.2 Asset Object
//
// The main container object for each asset requested or supported by Exchange
// on behalf of the rendering client. Any object that is required is to be
// flagged as such. Only one of the {title,img,video,data} objects should be
// present in each object. All others should be null/absent. The id is to be
// unique within the AssetObject array so that the response can be aligned.
type Asset struct {

	// Field:
	//   id
	// Scope:
	//   required
	// Type:
	//   int
	// Description:
	//   Unique asset ID, assigned by exchange. Typically a counter for the array.
	ID *int32 `json:"id"`

	// Field:
	//   required
	// Scope:
	//   optional
	// Type:
	//   int
	// Default:
	//   0
	// Description:
	//   Set to 1 if asset is required (exchange will not accept a bid without it).
	Required *bool `json:"required,omitempty"`

	// Field:
	//   title
	// Scope:
	//   recommended (each asset object may contain only one of title, img, data or video)
	// Type:
	//   object
	// Description:
	//   Title object for title assets.
	Title *Title `json:"title,omitempty"`

	// Field:
	//   img
	// Scope:
	//   recommended (each asset object may contain only one of title, img, data or video)
	// Type:
	//   object
	// Description:
	//   Image object for image assets.
	Img *Image `json:"img,omitempty"`

	// Field:
	//   video
	// Scope:
	//   optional (each asset object may contain only one of title, img, data or video)
	// Type:
	//   object
	// Description:
	//   Video object for video assets.
	//   Note that in-stream (ie preroll, etc) video ads are not part of Native.
	//   Native ads may contain a video as the ad creative itself.
	Video *Video `json:"video,omitempty"`

	// Field:
	//   data
	// Scope:
	//   recommended (each asset object may contain only one of title, img, data or video)
	// Type:
	//   object
	// Description:
	//   Data object for brand name, description, ratings, prices etc.
	Data *Data `json:"data,omitempty"`

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

// GetID returns the asset ID, or 0 when unset.
func (a *Asset) GetID() int32 {
	return ptrutil.ValueOrDefault(a.ID)
}

// GetRequired reports whether the asset is flagged as required, applying the
// declared default when unset.
func (a *Asset) GetRequired() bool {
	return ptrutil.ValueOr(a.Required, native1.DefaultAssetRequired)
}
