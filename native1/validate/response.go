package validate

import (
	"github.com/leerob727/openrtb/errortypes"
	"github.com/leerob727/openrtb/native1/request"
	"github.com/leerob727/openrtb/native1/response"
	"github.com/leerob727/openrtb/native1/schema"
)

// ValidateResponse checks a native markup response against the protocol
// rules and returns every finding in walk order. A conforming response
// yields an empty slice.
func ValidateResponse(r *response.Response) []error {
	if r == nil {
		return []error{&errortypes.ConfigurationError{Message: "validate: nil response"}}
	}

	md := schema.Response()

	var errs []error
	errs = checkRequired(errs, md, map[string]bool{
		"link": r.Link != nil,
	})
	errs = checkVersion(errs, md, r.Ver)

	for i := range r.Assets {
		errs = validateResponseAsset(errs, &r.Assets[i])
	}

	if r.Link != nil {
		errs = validateLink(errs, r.Link)
	}

	return errs
}

// ValidateResponseAgainstRequest checks id alignment between a response and
// the request it answers. Every response asset id must name an asset of the
// originating request, and that request asset must solicit the variant the
// response asset populates. Assets without an id are skipped here;
// ValidateResponse already reports the missing field.
func ValidateResponseAgainstRequest(rsp *response.Response, req *request.Request) []error {
	if rsp == nil || req == nil {
		return []error{&errortypes.ConfigurationError{Message: "validate: nil message"}}
	}

	var errs []error
	for i := range rsp.Assets {
		a := &rsp.Assets[i]
		if a.ID == nil {
			continue
		}

		match := assetByID(req.Assets, *a.ID)
		if match == nil || !variantAnswered(a, match) {
			errs = append(errs, &errortypes.UnmatchedResponseAsset{AssetID: *a.ID, Kind: variantKind(a)})
		}
	}

	return errs
}

func validateResponseAsset(errs []error, a *response.Asset) []error {
	md := schema.ResponseAsset()

	errs = checkRequired(errs, md, map[string]bool{
		"id": a.ID != nil,
	})

	populated := populatedVariants(a.Title != nil, a.Img != nil, a.Video != nil, a.Data != nil)
	if len(populated) > 1 {
		errs = append(errs, &errortypes.ConflictingAssetVariant{AssetID: a.GetID(), Populated: populated})
	}

	if a.Title != nil {
		errs = checkRequired(errs, schema.ResponseTitle(), map[string]bool{
			"text": a.Title.Text != nil,
		})
	}

	if a.Data != nil {
		errs = checkRequired(errs, schema.ResponseData(), map[string]bool{
			"value": a.Data.Value != nil,
		})
	}

	if a.Link != nil {
		errs = validateLink(errs, a.Link)
	}

	return errs
}

func validateLink(errs []error, l *response.Link) []error {
	return checkRequired(errs, schema.Link(), map[string]bool{
		"url": l.URL != nil,
	})
}

// assetByID returns the first request asset carrying the given id.
func assetByID(assets []request.Asset, id int32) *request.Asset {
	for i := range assets {
		if assets[i].ID != nil && *assets[i].ID == id {
			return &assets[i]
		}
	}
	return nil
}

// variantKind names the single populated variant of a response asset, or
// returns an empty string when none or several are populated.
func variantKind(a *response.Asset) string {
	populated := populatedVariants(a.Title != nil, a.Img != nil, a.Video != nil, a.Data != nil)
	if len(populated) == 1 {
		return populated[0]
	}
	return ""
}

// variantAnswered reports whether the request asset solicits the variant the
// response asset populates. A response asset with no payload matches any
// request asset with its id.
func variantAnswered(rsp *response.Asset, req *request.Asset) bool {
	if rsp.Title != nil && req.Title == nil {
		return false
	}
	if rsp.Img != nil && req.Img == nil {
		return false
	}
	if rsp.Video != nil && req.Video == nil {
		return false
	}
	if rsp.Data != nil && req.Data == nil {
		return false
	}
	return true
}
