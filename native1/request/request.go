// Package request provides the OpenRTB Native 1.x request types
// (section "4 Native Ad Request Markup Details").
//
// Scalar fields are pointers so that an absent field can be told apart from
// one explicitly set to its zero value; the Get accessors report the declared
// default for absent fields. Construction never validates, so partially built
// values may exist during assembly. Use the validate package before encoding.
//
// https://iabtechlab.com/standards/openrtb-native/
package request

import (
	"github.com/leerob727/openrtb/native1"
	"github.com/leerob727/openrtb/util/ptrutil"
)

// 4.1 Native Markup Request Object
//
// The Native Object defines the native advertising opportunity available for
// bid via this bid request. The Native Markup Request Object is the root
// object; prior to version 1.1 it could also be wrapped in a root node with a
// single "native" field, which decoders still accept.
type Request struct {

	// Field:
	//   ver
	// Scope:
	//   required
	// Type:
	//   string
	// Default:
	//   1.2
	// Description:
	//   Version of the Native Markup version in use.
	Ver *string `json:"ver"`

	// Field:
	//   layout
	// Scope:
	//   recommended in 1.0, deprecated/removed in 1.2
	// Type:
	//   integer
	// Description:
	//   The Layout ID of the native ad unit.
	//   See the Table of Layout IDs below.
	Layout *native1.LayoutID `json:"layout,omitempty"`

	// Field:
	//   adunit
	// Scope:
	//   recommended in 1.0, deprecated/removed in 1.2
	// Type:
	//   integer
	// Description:
	//   The Ad unit ID of the native ad unit.
	//   See Table of Ad Unit IDs below for a list of supported core ad units.
	AdUnit *native1.AdUnitID `json:"adunit,omitempty"`

	// Field:
	//   plcmtcnt
	// Scope:
	//   optional
	// Type:
	//   integer
	// Default:
	//   1
	// Description:
	//   The number of identical placements in this Layout.
	PlcmtCnt *int32 `json:"plcmtcnt,omitempty"`

	// Field:
	//   seq
	// Scope:
	//   optional
	// Type:
	//   integer
	// Default:
	//   0
	// Description:
	//   0 for the first ad, 1 for the second ad, and so on.
	//   Note this would generally NOT be used in combination with plcmtcnt -
	//   either you are auctioning multiple identical placements (in which case
	//   plcmtcnt>1, seq=0) or you are holding separate auctions for distinct
	//   items in the feed (in which case plcmtcnt=1, seq>=1).
	Seq *int32 `json:"seq,omitempty"`

	// Field:
	//   assets
	// Scope:
	//   required
	// Type:
	//   array of objects
	// Description:
	//   An array of Asset Objects.
	//   Any bid response must comply with the array of elements expressed in
	//   the bid request.
	Assets []Asset `json:"assets"`

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
func (r *Request) GetVer() string {
	return ptrutil.ValueOrDefault(r.Ver)
}

// GetLayout returns the layout ID, or 0 when unset.
func (r *Request) GetLayout() native1.LayoutID {
	return ptrutil.ValueOrDefault(r.Layout)
}

// GetAdUnit returns the ad unit ID, or 0 when unset.
func (r *Request) GetAdUnit() native1.AdUnitID {
	return ptrutil.ValueOrDefault(r.AdUnit)
}

// GetPlcmtCnt returns the number of identical placements, or the declared
// default when unset.
func (r *Request) GetPlcmtCnt() int32 {
	return ptrutil.ValueOr(r.PlcmtCnt, native1.DefaultPlcmtCnt)
}

// GetSeq returns the sequence number of the ad, or the declared default when
// unset.
func (r *Request) GetSeq() int32 {
	return ptrutil.ValueOr(r.Seq, native1.DefaultSeq)
}
