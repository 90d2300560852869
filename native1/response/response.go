// Package response provides the OpenRTB Native 1.x response types
// (section "5 Native Ad Response Markup Details").
//
// Scalar fields are pointers so that an absent field can be told apart from
// one explicitly set to its zero value; the Get accessors report the declared
// default for absent fields. Construction never validates, so partially built
// values may exist during assembly. Use the validate package before encoding.
//
// https://iabtechlab.com/standards/openrtb-native/
package response

import (
	"github.com/leerob727/openrtb/native1"
	"github.com/leerob727/openrtb/util/ptrutil"
)

// 5.1 Native Markup Response Object
//
// The native object is the top level JSON object which identifies a native
// response. The native object answers the native request it was produced for:
// each asset answers the request asset carrying the same id, and the link
// object supplies the default destination for clicks on the ad.
type Response struct {

	// Field:
	//   ver
	// Scope:
	//   optional
	// Type:
	//   string
	// Description:
	//   Version of the Native Markup version in use.
	Ver *string `json:"ver,omitempty"`

	// Field:
	//   assets
	// Scope:
	//   recommended
	// Type:
	//   array of objects
	// Description:
	//   List of native ad's assets.
	Assets []Asset `json:"assets,omitempty"`

	// Field:
	//   link
	// Scope:
	//   required
	// Type:
	//   object
	// Description:
	//   Destination Link. This is default link object for the ad.
	//   Individual assets can also have a link object which applies if the
	//   asset is activated (clicked). If the asset doesn't have a link object,
	//   the parent link object applies.
	Link *Link `json:"link"`

	// Field:
	//   imptrackers
	// Scope:
	//   optional
	// Type:
	//   array of strings
	// Description:
	//   Array of impression tracking URLs, expected to return a 1x1 image or
	//   204 response - typically only passed when using 3rd party trackers.
	//   Firing order is significant and preserved as given.
	ImpTrackers []string `json:"imptrackers,omitempty"`

	// Field:
	//   jstracker
	// Scope:
	//   optional
	// Type:
	//   string
	// Description:
	//   Optional JavaScript impression tracker. This is a valid HTML,
	//   Javascript is already wrapped in <script> tags. It should be executed
	//   at impression time where it can be supported.
	JSTracker *string `json:"jstracker,omitempty"`

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

// GetVer returns the markup version, or the empty string when unset.
func (r *Response) GetVer() string {
	return ptrutil.ValueOrDefault(r.Ver)
}

// GetJSTracker returns the JavaScript impression tracker, or the empty string
// when unset.
func (r *Response) GetJSTracker() string {
	return ptrutil.ValueOrDefault(r.JSTracker)
}
