package request

import (
	"github.com/leerob727/openrtb/native1"
	"github.com/leerob727/openrtb/util/ptrutil"
)

// 4.5 Video Object
//
// The video object to be used for all video elements supported in the Native
// Ad. This corresponds to the Video object of OpenRTB. Exchange implementers
// can impose their own specific restrictions. Here are the required
// attributes of the Video Object. For optional attributes please refer to
// OpenRTB.
type Video struct {

	// Field:
	//   mimes
	// Scope:
	//   required
	// Type:
	//   array of string
	// Description:
	//   Content MIME types supported.
	//   Popular MIME types include, but are not limited to "video/x-ms-wmv"
	//   for Windows Media and "video/x-flv" for Flash Video, or "video/mp4".
	//   Note that native frequently does not support flash.
	MIMEs []string `json:"mimes"`

	// Field:
	//   minduration
	// Scope:
	//   required
	// Type:
	//   integer
	// Description:
	//   Minimum video ad duration in seconds.
	MinDuration *int32 `json:"minduration"`

	// Field:
	//   maxduration
	// Scope:
	//   required
	// Type:
	//   integer
	// Description:
	//   Maximum video ad duration in seconds.
	MaxDuration *int32 `json:"maxduration"`

	// Field:
	//   protocols
	// Scope:
	//   required
	// Type:
	//   array of integers
	// Description:
	//   An array of video protocols the publisher can accept in the bid
	//   response. See OpenRTB Table "Video Bid Response Protocols" for a list
	//   of possible values.
	Protocols []native1.Protocol `json:"protocols"`

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

// GetMinDuration returns the minimum ad duration in seconds, or 0 when unset.
func (v *Video) GetMinDuration() int32 {
	return ptrutil.ValueOrDefault(v.MinDuration)
}

// GetMaxDuration returns the maximum ad duration in seconds, or 0 when unset.
func (v *Video) GetMaxDuration() int32 {
	return ptrutil.ValueOrDefault(v.MaxDuration)
}
