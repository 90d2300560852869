package nativejson

import (
	"encoding/json"

	"github.com/leerob727/openrtb/errortypes"
	"github.com/leerob727/openrtb/native1/request"
	"github.com/leerob727/openrtb/native1/response"
	"github.com/leerob727/openrtb/native1/schema"
)

// UnmarshalRequest parses the JSON form of a native markup request,
// accepting the bare object or the pre-1.1 {"native": {...}} wrapper.
// Undeclared keys outside ext slots fail the parse.
func UnmarshalRequest(data []byte) (*request.Request, error) {
	return UnmarshalRequestOptions(data, UnmarshalOptions{})
}

// UnmarshalRequestOptions parses like UnmarshalRequest under the given
// options. A permissive parse that dropped keys returns the request together
// with a warning-severity *errortypes.LossyDecode describing the drops.
func UnmarshalRequestOptions(data []byte, opts UnmarshalOptions) (*request.Request, error) {
	body := unwrap(data)

	var dropped []errortypes.DroppedField
	if err := checkKeys(body, schema.Request(), opts, &dropped); err != nil {
		return nil, decodeError(schema.Request(), err)
	}

	r := &request.Request{}
	if err := json.Unmarshal(body, r); err != nil {
		return nil, decodeError(schema.Request(), err)
	}
	if len(dropped) > 0 {
		return r, &errortypes.LossyDecode{Dropped: dropped}
	}
	return r, nil
}

// UnmarshalResponse parses the JSON form of a native markup response,
// accepting the bare object or the pre-1.1 {"native": {...}} wrapper.
// Undeclared keys outside ext slots fail the parse.
func UnmarshalResponse(data []byte) (*response.Response, error) {
	return UnmarshalResponseOptions(data, UnmarshalOptions{})
}

// UnmarshalResponseOptions parses like UnmarshalResponse under the given
// options. A permissive parse that dropped keys returns the response
// together with a warning-severity *errortypes.LossyDecode describing the
// drops.
func UnmarshalResponseOptions(data []byte, opts UnmarshalOptions) (*response.Response, error) {
	body := unwrap(data)

	var dropped []errortypes.DroppedField
	if err := checkKeys(body, schema.Response(), opts, &dropped); err != nil {
		return nil, decodeError(schema.Response(), err)
	}

	r := &response.Response{}
	if err := json.Unmarshal(body, r); err != nil {
		return nil, decodeError(schema.Response(), err)
	}
	if len(dropped) > 0 {
		return r, &errortypes.LossyDecode{Dropped: dropped}
	}
	return r, nil
}
