package nativejson

import (
	"encoding/json"

	"github.com/leerob727/openrtb/errortypes"
	"github.com/leerob727/openrtb/native1"
	"github.com/leerob727/openrtb/native1/request"
	"github.com/leerob727/openrtb/native1/response"
	"github.com/leerob727/openrtb/native1/validate"
)

// MarshalRequest renders the request as its bare JSON object. Marshal fails
// fast on the first required field found missing; every other conformance
// matter is the validate package's business, not a framing obstacle.
// Optional fields explicitly holding their declared defaults are elided.
// The given request is not modified.
func MarshalRequest(r *request.Request) ([]byte, error) {
	if r == nil {
		return nil, &errortypes.ConfigurationError{Message: "nativejson: nil request"}
	}
	if err := firstMissingRequired(validate.ValidateRequest(r)); err != nil {
		return nil, err
	}
	return json.Marshal(stripRequestDefaults(request.CloneRequest(r)))
}

// MarshalResponse renders the response as its bare JSON object under the
// same contract as MarshalRequest.
func MarshalResponse(r *response.Response) ([]byte, error) {
	if r == nil {
		return nil, &errortypes.ConfigurationError{Message: "nativejson: nil response"}
	}
	if err := firstMissingRequired(validate.ValidateResponse(r)); err != nil {
		return nil, err
	}
	return json.Marshal(stripResponseDefaults(response.CloneResponse(r)))
}

// firstMissingRequired picks the leading missing-required finding out of a
// validation result. Findings walk the message in field number order, so the
// pick matches what the binary encoder would trip over first.
func firstMissingRequired(findings []error) error {
	for _, err := range findings {
		if errortypes.ReadCode(err) == errortypes.MissingRequiredFieldErrorCode {
			return err
		}
	}
	return nil
}

// stripRequestDefaults clears optional fields explicitly set to their
// declared defaults. Operates on a clone owned by the marshal.
func stripRequestDefaults(r *request.Request) *request.Request {
	if r.PlcmtCnt != nil && *r.PlcmtCnt == native1.DefaultPlcmtCnt {
		r.PlcmtCnt = nil
	}
	if r.Seq != nil && *r.Seq == native1.DefaultSeq {
		r.Seq = nil
	}
	for i := range r.Assets {
		if r.Assets[i].Required != nil && *r.Assets[i].Required == native1.DefaultAssetRequired {
			r.Assets[i].Required = nil
		}
	}
	return r
}

func stripResponseDefaults(r *response.Response) *response.Response {
	for i := range r.Assets {
		if r.Assets[i].Required != nil && *r.Assets[i].Required == native1.DefaultAssetRequired {
			r.Assets[i].Required = nil
		}
	}
	return r
}
