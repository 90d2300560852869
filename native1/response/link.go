package response

import (
	"github.com/leerob727/openrtb/native1"
	"github.com/leerob727/openrtb/util/ptrutil"
)

// 5.7 Link Object
//
// Used for "call to action" assets, or other links from the Native ad. This
// Object should be associated to its peer object in the parent Asset Object
// or as the master link in the top level Native Ad response object. When that
// peer object is activated (clicked) the action should take the user to the
// location of the link.
type Link struct {

	// Field:
	//   url
	// Scope:
	//   required
	// Type:
	//   string
	// Description:
	//   Landing URL of the clickable link.
	URL *string `json:"url"`

	// Field:
	//   clicktrackers
	// Scope:
	//   optional
	// Type:
	//   array of strings
	// Description:
	//   List of third-party tracker URLs to be fired on click of the URL.
	//   Firing order is significant and preserved as given.
	ClickTrackers []string `json:"clicktrackers,omitempty"`

	// Field:
	//   fallback
	// Scope:
	//   optional
	// Type:
	//   string
	// Description:
	//   Fallback URL for deeplink. To be used if the URL given in url is not
	//   supported by the device.
	Fallback *string `json:"fallback,omitempty"`

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

// GetURL returns the landing URL, or the empty string when unset.
func (l *Link) GetURL() string {
	return ptrutil.ValueOrDefault(l.URL)
}

// GetFallback returns the deeplink fallback URL, or the empty string when
// unset.
func (l *Link) GetFallback() string {
	return ptrutil.ValueOrDefault(l.Fallback)
}
